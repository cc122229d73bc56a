// Package logger provides structured logging for dikit-based applications
// using zerolog.
//
// It supports multiple output formats (JSON, console), log level
// configuration, and component-scoped loggers with structured fields.
//
// # Usage
//
//	log := logger.WithComponent("di")
//	log.Debug("provider registered", logger.Fields(logger.FieldProviderKey, "db"))
package logger
