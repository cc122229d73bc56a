package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/kbukum/dikit/logger"
)

var validate = validator.New()

// Settings contains the configuration fields every dikit application needs.
// Projects extend this by embedding it in their own config structs.
//
// Example:
//
//	type MyConfig struct {
//	    config.Settings `yaml:",inline" mapstructure:",squash"`
//	    Database        DatabaseConfig `yaml:"database" mapstructure:"database"`
//	}
type Settings struct {
	Name        string        `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string        `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Version     string        `yaml:"version" mapstructure:"version"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
}

// GetSettings returns the base Settings. When embedded in a larger config
// struct this method is promoted, so the embedding struct automatically
// satisfies interfaces that need it.
func (s *Settings) GetSettings() *Settings {
	return s
}

// ApplyDefaults applies default values to the base configuration.
// Override this in embedding structs and call s.Settings.ApplyDefaults() first.
func (s *Settings) ApplyDefaults() {
	if s.Environment == "" {
		s.Environment = "development"
	}
	if s.Environment == "development" {
		s.Debug = true
	}
	// Propagate the application name into logging so Init tags correctly.
	if s.Logging.ServiceName == "" && s.Name != "" {
		s.Logging.ServiceName = s.Name
	}
	s.Logging.ApplyDefaults()
}

// Validate validates the base configuration fields.
// Override this in embedding structs and call s.Settings.Validate() first.
func (s *Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config.%s failed %q validation (got: %v)", fe.Field(), fe.Tag(), fe.Value())
		}
		return err
	}
	return s.Logging.Validate()
}
