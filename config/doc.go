// Package config loads and validates application settings for dikit-based
// applications.
//
// Settings come from a YAML file (viper), overridden by environment
// variables, with optional .env loading (godotenv). Struct validation uses
// go-playground/validator tags plus the logging section's own Validate.
package config
