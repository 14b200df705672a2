package schema

import (
	"errors"
	"fmt"
)

// Sentinel configuration errors. Constructors wrap them in a *ConfigError so
// callers can match the failure kind with errors.Is while still seeing which
// declaration was at fault.
var (
	ErrUnknownFieldType   = errors.New("schema: field type is not in the field type vocabulary")
	ErrTitleRequired      = errors.New("schema: field title is required")
	ErrBoundsRequired     = errors.New("schema: slider fields require both min and max")
	ErrBoundsReversed     = errors.New("schema: min must not exceed max")
	ErrStepNotPositive    = errors.New("schema: step must be greater than zero")
	ErrNoOptions          = errors.New("schema: options are required")
	ErrOptionValueMissing = errors.New("schema: option value is required")
	ErrDuplicateOption    = errors.New("schema: option values must be unique within their list")
	ErrAliasMissing       = errors.New("schema: advanced fields must carry an alias")
	ErrNoContents         = errors.New("schema: control requires at least one supported content")
	ErrUnknownContentKind = errors.New("schema: content kind is not in the content kind vocabulary")
	ErrDefaultConflict    = errors.New("schema: default and default generator are mutually exclusive")
	ErrUnknownGenerator   = errors.New("schema: unknown generator type")
	ErrGeneratorKind      = errors.New("schema: default generators apply to numeric fields only")
	ErrConditionalKind    = errors.New("schema: unknown conditional kind")
	ErrConditionalField   = errors.New("schema: conditional must reference a field by name")
)

// ConfigError reports an invalid declaration detected while constructing a
// field, option, control, or conditional.
type ConfigError struct {
	// Subject identifies the offending declaration, typically the field title
	// or option value.
	Subject string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Subject == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.Subject)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func configErr(subject string, err error) error {
	var cfg *ConfigError
	if errors.As(err, &cfg) {
		// Keep the innermost subject; it names the actual offender.
		return err
	}
	return &ConfigError{Subject: subject, Err: err}
}
