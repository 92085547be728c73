// Package config provides configuration management for the template generator.
package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError represents a single validation error with user-friendly message.
type ValidationError struct {
	Field   string      // Field path (e.g., "intervals.item")
	Tag     string      // Validation tag that failed (e.g., "required", "gte")
	Value   interface{} // Actual value that failed validation
	Message string      // User-friendly error message
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  - %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// validate is the package-level validator instance.
var validate *validator.Validate

// init initializes the validator so that field paths use the file keys
// (yaml or mapstructure tag) rather than Go field names.
func init() {
	validate = validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"yaml", "mapstructure"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
}

// Validate validates the configuration and returns user-friendly error messages.
func Validate(cfg *Config) error {
	validationErrors := collectErrors(validate.Struct(cfg))

	if errs := validateRetention(cfg); len(errs) > 0 {
		validationErrors = append(validationErrors, errs...)
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

// collectErrors converts validator field errors into ValidationErrors.
func collectErrors(err error) ValidationErrors {
	var validationErrors ValidationErrors
	if err == nil {
		return validationErrors
	}
	if fieldErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range fieldErrors {
			validationErrors = append(validationErrors, &ValidationError{
				Field:   formatFieldName(fe.Namespace()),
				Tag:     fe.Tag(),
				Value:   fe.Value(),
				Message: translateError(fe),
			})
		}
	}
	return validationErrors
}

// validateRetention checks that trends are kept at least as long as history.
func validateRetention(cfg *Config) ValidationErrors {
	var errors ValidationErrors

	if cfg.Retention.TrendsDays > 0 && cfg.Retention.TrendsDays < cfg.Retention.HistoryDays {
		errors = append(errors, &ValidationError{
			Field:   "retention",
			Tag:     "retention_order",
			Value:   fmt.Sprintf("history=%d, trends=%d", cfg.Retention.HistoryDays, cfg.Retention.TrendsDays),
			Message: fmt.Sprintf("trends (%d days) must not be shorter than history (%d days)", cfg.Retention.TrendsDays, cfg.Retention.HistoryDays),
		})
	}

	return errors
}

// formatFieldName converts the validator field namespace to a user-friendly format.
// Example: "Config.intervals.item" -> "intervals.item"
func formatFieldName(namespace string) string {
	// Remove the root struct name (e.g., "Config.")
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}

	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}

	return strings.Join(parts, ".")
}

// translateError converts a validator.FieldError to a user-friendly message.
func translateError(fe validator.FieldError) string {
	field := formatFieldName(fe.Namespace())

	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "gte":
		return fmt.Sprintf("value must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("value must be less than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("value must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("validation failed on '%s' tag for field '%s'", fe.Tag(), field)
	}
}
