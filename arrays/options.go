package arrays

import "log/slog"

type arrayOptions struct {
	name      string
	ascending bool
	logger    *slog.Logger
}

// Option configures a container at construction time.
type Option func(*arrayOptions)

func newArrayOptions(opts []Option) *arrayOptions {
	options := &arrayOptions{
		name:      "array",
		ascending: true,
	}

	for _, opt := range opts {
		opt(options)
	}

	return options
}

// Descending fixes an OrderedArray to descending order for its whole
// lifetime. The default is ascending. DynamicArray ignores this option.
func Descending() Option {
	return func(o *arrayOptions) {
		o.ascending = false
	}
}

// WithName sets the name used as the metrics label for this container.
// Containers sharing a name share metric series.
func WithName(name string) Option {
	return func(o *arrayOptions) {
		o.name = name
	}
}

// WithLogger attaches a logger to the container. The container logs buffer
// growth events at Debug level; without a logger it stays silent.
func WithLogger(logger *slog.Logger) Option {
	return func(o *arrayOptions) {
		o.logger = logger
	}
}
