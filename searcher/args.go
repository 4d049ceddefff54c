package searcher

type Option func(o *options)

type options struct {
	counter NodeCounter
}

func newOptions(opts []Option) options {
	o := options{ // Default values
		counter: NewNoNodeCounter(),
	}
	for _, option := range opts {
		option(&o)
	}
	return o
}

// WithNodeCounting gives the searcher its own node counter.
func WithNodeCounting() Option {
	return func(o *options) {
		o.counter = NewNodeCounter()
	}
}

// WithNodeCounter makes the searcher report visits to counter.
func WithNodeCounter(counter NodeCounter) Option {
	return func(o *options) {
		if counter != nil {
			o.counter = counter
		}
	}
}
