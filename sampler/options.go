package sampler

import "github.com/viant/bluenoise/logging"

// ProgressFunc is called after every accepted point.
type ProgressFunc func(accepted, target int)

type options struct {
	logger   *logging.Logger
	progress ProgressFunc
}

// Option configures a Sampler.
type Option func(*options)

// WithLogger sets the logger used for run start and completion records.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithProgress registers a callback reporting accepted points.
func WithProgress(fn ProgressFunc) Option {
	return func(o *options) { o.progress = fn }
}
