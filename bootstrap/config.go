package bootstrap

import (
	"github.com/kbukum/dikit/config"
)

// Config is the interface constraint for application configuration types.
// Any struct that embeds config.Settings automatically satisfies this
// interface via promoted methods.
//
// Example:
//
//	type AppConfig struct {
//	    config.Settings `yaml:",inline" mapstructure:",squash"`
//	    Database DatabaseConfig `yaml:"database" mapstructure:"database"`
//	}
type Config interface {
	GetSettings() *config.Settings
	ApplyDefaults()
	Validate() error
}
