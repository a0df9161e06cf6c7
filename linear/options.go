package linear

import "github.com/YuminosukeSato/simplereg/pkg/log"

// Option is a function that configures Regression
type Option func(*Regression)

// WithLogger sets the logger used for fit and predict records.
// Without it the process-wide logger from log.GetLogger is used.
func WithLogger(l log.Logger) Option {
	return func(r *Regression) {
		r.logger = l
	}
}

// WithName sets an identifier attached to every log record of the model
func WithName(name string) Option {
	return func(r *Regression) {
		r.name = name
	}
}
