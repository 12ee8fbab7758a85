package jj

import "log/slog"

// Option configures wrappers created by New and NewDecoder.
type Option func(*options)

// options is shared by every wrapper derived from one root and is never
// modified after construction.
type options struct {
	logger *slog.Logger
}

var noOptions = &options{}

func buildOptions(opts []Option) *options {
	if len(opts) == 0 {
		return noOptions
	}
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger enables diagnostics such as deprecated-field warnings.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
