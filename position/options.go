package position

// Option configures Between, N and Generator.
type Option func(*config)

// config holds the resolved options of a single call.
type config struct {
	factor    float64
	factorFn  func() float64
	inclusive *bool
	blocked   Blocklist
}

func newConfig(opts []Option) *config {
	c := &config{
		factor:  0.5,
		blocked: defaultBlocklist,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithFactor sets a fixed interpolation factor in [0, 1] that selects where
// among the shortest candidates the result falls: 0 picks the lowest, 1 the
// highest. Defaults to 0.5.
func WithFactor(f float64) Option {
	return func(c *config) {
		c.factor = f
		c.factorFn = nil
	}
}

// WithFactorFunc draws the interpolation factor from fn every time a choice
// between candidates is made, e.g. rand.Float64. Unless WithInclusiveOfOne
// says otherwise, fn is treated as returning values in [0, 1).
func WithFactorFunc(fn func() float64) Option {
	return func(c *config) {
		if fn != nil {
			c.factorFn = fn
		}
	}
}

// WithInclusiveOfOne controls whether a factor of exactly 1 maps onto the
// last candidate. By default a fixed factor is inclusive of one and a factor
// function is not, which lets both WithFactor(1) and WithFactorFunc(rand.Float64)
// cover the whole candidate range evenly.
func WithInclusiveOfOne(inclusive bool) Option {
	return func(c *config) {
		c.inclusive = &inclusive
	}
}

// WithBlocked replaces the built-in blocklist. Passing nil disables blocking.
func WithBlocked(b Blocklist) Option {
	return func(c *config) {
		if b == nil {
			b = None
		}
		c.blocked = b
	}
}

func (c *config) factorValue() float64 {
	if c.factorFn != nil {
		return c.factorFn()
	}
	return c.factor
}

func (c *config) inclusiveOfOne() bool {
	if c.inclusive != nil {
		return *c.inclusive
	}
	return c.factorFn == nil
}
