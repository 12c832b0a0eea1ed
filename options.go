package trie

// Option configures a Trie at construction via a chainable functional-option
// slice passed to New.
type Option func(*options)

type options struct {
	logger *optionLogger
}

// WithLogger attaches a zerolog logger that receives Debug-level events for
// Store and Similar. Unset (the default), the trie emits nothing, matching
// the "no log output" contract in normal operation.
func WithLogger(l optionLogger) Option {
	return func(o *options) { o.logger = &l }
}

func applyOptions(opts []Option) *options {
	cfg := &options{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
