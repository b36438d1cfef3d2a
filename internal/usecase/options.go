package usecase

import (
	"io"
	"log/slog"
)

type Option func(*options)

type options struct {
	log *slog.Logger
}

// WithLogger routes use case diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
