package position

// Generator bundles a set of options so callers can configure position
// generation once, typically at start-up, and reuse it.
// It is safe for concurrent use when its factor function is.
type Generator struct {
	opts []Option
}

// New returns a Generator that applies opts to every call.
func New(opts ...Option) *Generator {
	return &Generator{opts: append([]Option(nil), opts...)}
}

// Between is the package-level Between with the generator's options, followed
// by any per-call opts.
func (g *Generator) Between(start, end string, opts ...Option) (string, error) {
	return Between(start, end, g.with(opts)...)
}

// N is the package-level N with the generator's blocklist.
func (g *Generator) N(count int, start, end string) ([]string, error) {
	return N(count, start, end, g.opts...)
}

// Blocklist returns the blocklist the generator applies.
func (g *Generator) Blocklist() Blocklist {
	return newConfig(g.opts).blocked
}

func (g *Generator) with(opts []Option) []Option {
	if len(opts) == 0 {
		return g.opts
	}
	all := make([]Option, 0, len(g.opts)+len(opts))
	all = append(all, g.opts...)
	return append(all, opts...)
}
