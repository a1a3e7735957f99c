package signals

import (
	"io"
	"log/slog"
)

type Option func(*options)

type options struct {
	name string
	log  *slog.Logger
}

// WithName labels the signal in log records.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

func resolveOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

func resolvePriority(priority []Priority) Priority {
	if len(priority) > 0 {
		return priority[0]
	}
	return Back
}
