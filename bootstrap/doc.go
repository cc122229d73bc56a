// Package bootstrap wires configuration, logging and a dependency injection
// container into an application value with one call.
//
//	type AppConfig struct {
//	    config.Settings `yaml:",inline" mapstructure:",squash"`
//	}
//
//	app, err := bootstrap.New(&cfg,
//	    bootstrap.WithProviders(registerRepositories),
//	    bootstrap.WithSetDefault(),
//	)
//
// New applies config defaults, validates, initializes the logger from the
// config's logging section, creates a container carrying that logger,
// registers the config and logger under the "config" and "logger" keys, and
// runs the application's own provider hooks.
package bootstrap
