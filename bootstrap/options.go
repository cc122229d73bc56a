package bootstrap

import (
	"github.com/kbukum/dikit/di"
	"github.com/kbukum/dikit/logger"
)

// Provider registers an application's own bindings on the container.
type Provider func(di.Container) error

// Option configures the App during creation.
// Options are non-generic so they can be used with any config type.
type Option func(*appOptions)

// appOptions collects all option values before applying to App.
type appOptions struct {
	logger     *logger.Logger
	container  di.Container
	providers  []Provider
	setDefault bool
}

// resolveOptions applies all options and returns the collected values.
func resolveOptions(opts []Option) *appOptions {
	o := &appOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets a custom logger for the application.
// If not set, the logger is auto-initialized from the config's Logging field.
func WithLogger(l *logger.Logger) Option {
	return func(o *appOptions) {
		o.logger = l
	}
}

// WithContainer sets a custom DI container for the application.
func WithContainer(c di.Container) Option {
	return func(o *appOptions) {
		o.container = c
	}
}

// WithProviders appends provider hooks, run in order after the built-in
// config and logger registrations.
func WithProviders(providers ...Provider) Option {
	return func(o *appOptions) {
		o.providers = append(o.providers, providers...)
	}
}

// WithSetDefault publishes the app's container as the process-wide default
// once construction succeeds.
func WithSetDefault() Option {
	return func(o *appOptions) {
		o.setDefault = true
	}
}
