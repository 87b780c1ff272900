package gc

// Config bounds the resources a Collector is willing to use. The zero
// Config places no bounds at all, which is what New() constructs.
type Config struct {
	// MaxLive bounds the number of simultaneously live blocks a Collector
	// will hold. <= 0 means no limit.
	MaxLive int

	// MaxBytes bounds the total header+payload bytes of live blocks a
	// Collector will hold. <= 0 means no limit.
	MaxBytes int
}

func (c *Config) getMaxLive() int {
	return c.MaxLive
}

func (c *Config) getMaxBytes() int {
	return c.MaxBytes
}
