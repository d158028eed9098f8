package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	errors = append(errors, c.validateSource()...)
	errors = append(errors, c.validateUnits()...)
	errors = append(errors, c.validateReport()...)
	errors = append(errors, c.validateLogging()...)

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateSource() ValidationErrors {
	var errors ValidationErrors

	switch c.Source.Type {
	case SourceFile:
		if c.Source.Path == "" {
			errors = append(errors, ValidationError{
				Field:   "source.path",
				Message: "path is required for file source",
			})
		}
	case SourceMySQL:
		if c.Source.Table == "" {
			errors = append(errors, ValidationError{
				Field:   "source.table",
				Message: "table is required for mysql source",
			})
		}
		errors = append(errors, c.validateDatabase("source.database", &c.Source.Database)...)
	default:
		errors = append(errors, ValidationError{
			Field:   "source.type",
			Message: "type must be 'file' or 'mysql'",
		})
	}

	return errors
}

func (c *Config) validateDatabase(prefix string, db *DatabaseConfig) ValidationErrors {
	var errors ValidationErrors

	if db.Host == "" {
		errors = append(errors, ValidationError{
			Field:   prefix + ".host",
			Message: "host is required",
		})
	}

	if db.Port <= 0 || db.Port > 65535 {
		errors = append(errors, ValidationError{
			Field:   prefix + ".port",
			Message: "port must be between 1 and 65535",
		})
	}

	if db.User == "" {
		errors = append(errors, ValidationError{
			Field:   prefix + ".user",
			Message: "user is required",
		})
	}

	if db.Database == "" {
		errors = append(errors, ValidationError{
			Field:   prefix + ".database",
			Message: "database name is required",
		})
	}

	validTLS := map[string]bool{"disable": true, "preferred": true, "required": true, "": true}
	if !validTLS[db.TLS] {
		errors = append(errors, ValidationError{
			Field:   prefix + ".tls",
			Message: "tls must be 'disable', 'preferred', or 'required'",
		})
	}

	if db.MaxConnections < 0 {
		errors = append(errors, ValidationError{
			Field:   prefix + ".max_connections",
			Message: "max_connections cannot be negative",
		})
	}

	if db.MaxIdleConnections < 0 {
		errors = append(errors, ValidationError{
			Field:   prefix + ".max_idle_connections",
			Message: "max_idle_connections cannot be negative",
		})
	}

	return errors
}

func (c *Config) validateUnits() ValidationErrors {
	var errors ValidationErrors

	validUnits := map[string]bool{"mm": true, "cm": true, "m": true, "in": true, "ft": true, "": true}
	if !validUnits[strings.ToLower(strings.TrimSpace(c.Units.Length))] {
		errors = append(errors, ValidationError{
			Field:   "units.length",
			Message: "length must be 'mm', 'cm', 'm', 'in', or 'ft'",
		})
	}

	if c.Units.Precision < 0 || c.Units.Precision > 8 {
		errors = append(errors, ValidationError{
			Field:   "units.precision",
			Message: "precision must be between 0 and 8",
		})
	}

	return errors
}

func (c *Config) validateReport() ValidationErrors {
	var errors ValidationErrors

	validFormats := map[string]bool{FormatHTML: true, FormatText: true}
	if !validFormats[c.Report.Format] {
		errors = append(errors, ValidationError{
			Field:   "report.format",
			Message: "format must be 'html' or 'text'",
		})
	}

	validSorts := map[string]bool{"lexical": true, "numeric": true, "": true}
	if !validSorts[c.Report.Sort] {
		errors = append(errors, ValidationError{
			Field:   "report.sort",
			Message: "sort must be 'lexical' or 'numeric'",
		})
	}

	if c.Report.Output == "" {
		errors = append(errors, ValidationError{
			Field:   "report.output",
			Message: "output is required (use 'stdout' for the terminal)",
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[c.Logging.Level] {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: "level must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "": true}
	if !validFormats[c.Logging.Format] {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be 'json' or 'text'",
		})
	}

	return errors
}
