package gc

import "errors"

// ErrAllocationExhausted is returned by Alloc when a Collector constructed
// with a budget (see Config) cannot service the requested allocation without
// exceeding that budget. The Collector's state is unchanged when this error
// is returned.
var ErrAllocationExhausted = errors.New("gc: allocation exhausted")
