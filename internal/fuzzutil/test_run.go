package fuzzutil

// Step is one action of a fuzz-driven test run.
type Step interface {
	DoStep()
}

// TestRun is a fixed sequence of Steps, decoded once from a byte slice by
// repeatedly calling stepMaker until the ByteConsumer is exhausted.
type TestRun struct {
	steps []Step
}

// NewTestRun decodes bytes into a sequence of Steps via stepMaker, called
// once per step until the underlying ByteConsumer is drained.
func NewTestRun(bytes []byte, stepMaker func(*ByteConsumer) Step) *TestRun {
	tr := &TestRun{steps: make([]Step, 0)}
	byteConsumer := NewByteConsumer(bytes)

	for byteConsumer.Len() > 0 {
		tr.steps = append(tr.steps, stepMaker(byteConsumer))
	}
	return tr
}

// Run executes every step in order.
func (t *TestRun) Run() {
	for _, step := range t.steps {
		step.DoStep()
	}
}
