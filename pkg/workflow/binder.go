package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/rossaai/workflows/pkg/schema"
)

// Binding errors. A recognized argument failing its declared constraint
// surfaces as a *BindError wrapping one of these; unrecognized arguments are
// dropped silently and never raised.
var (
	ErrNotAString    = errors.New("workflow: value must be a string")
	ErrNotANumber    = errors.New("workflow: value must be a number")
	ErrNotAnInteger  = errors.New("workflow: value must be a whole number")
	ErrNotABoolean   = errors.New("workflow: value must be a boolean")
	ErrOutOfRange    = errors.New("workflow: value is outside the declared bounds")
	ErrUnknownOption = errors.New("workflow: value is not a declared option")
)

// BindError reports which parameter failed validation and why.
type BindError struct {
	Param string
	Err   error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("workflow: invalid argument %q: %v", e.Param, e.Err)
}

func (e *BindError) Unwrap() error { return e.Err }

// Run binds kwargs onto the declared parameters and invokes the handler.
// Keys absent from the declared parameter list are dropped silently, so
// stale or extra caller-supplied parameters never crash the workflow.
// Declared keys are validated and coerced against their descriptor; omitted
// ones fall back to the static default, a fresh generator draw, or the plain
// Value of a non-field parameter.
func (w *Workflow) Run(ctx context.Context, kwargs map[string]any) (any, error) {
	if w.handler == nil {
		return nil, ErrHandlerRequired
	}
	args := make(map[string]any, len(w.params))
	for _, param := range w.params {
		raw, supplied := kwargs[param.Name]
		if !supplied {
			if !param.Field.Declared() {
				if param.Value != nil {
					args[param.Name] = param.Value
				}
				continue
			}
			if def, ok := param.Field.DefaultOrGenerate(); ok {
				args[param.Name] = def
			}
			continue
		}
		if !param.Field.Declared() {
			args[param.Name] = raw
			continue
		}
		value, err := bindValue(param.Field, raw)
		if err != nil {
			return nil, &BindError{Param: param.Name, Err: err}
		}
		args[param.Name] = value
	}
	return w.handler(ctx, args)
}

func bindValue(field schema.Field, raw any) (any, error) {
	switch {
	case field.Type.Textual():
		s, ok := raw.(string)
		if !ok {
			return nil, ErrNotAString
		}
		return s, nil
	case field.Type.Numeric():
		return bindNumber(field, raw)
	case field.Type == schema.FieldCheckbox:
		b, ok := raw.(bool)
		if !ok {
			return nil, ErrNotABoolean
		}
		return b, nil
	case field.Type == schema.FieldControls:
		return bindControls(field, raw)
	case field.Type.Enumerated():
		return bindSelection(field, raw)
	}
	return raw, nil
}

func bindNumber(field schema.Field, raw any) (any, error) {
	value, err := toFloat(raw)
	if err != nil {
		return nil, err
	}
	if field.Min != nil && value < *field.Min {
		return nil, fmt.Errorf("%w: %v < %v", ErrOutOfRange, value, *field.Min)
	}
	if field.Max != nil && value > *field.Max {
		return nil, fmt.Errorf("%w: %v > %v", ErrOutOfRange, value, *field.Max)
	}
	if field.Type == schema.FieldInteger {
		if value != math.Trunc(value) {
			return nil, ErrNotAnInteger
		}
		return int64(value), nil
	}
	return value, nil
}

// bindSelection accepts a bare option value, an option value object with a
// "type" discriminator, or a list of either. Every referenced value must be
// declared in the field's option list.
func bindSelection(field schema.Field, raw any) (any, error) {
	declared := make(map[string]struct{}, len(field.Options))
	for _, opt := range field.Options {
		declared[opt.OptionValue()] = struct{}{}
	}
	check := func(value string) error {
		if _, ok := declared[value]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownOption, value)
		}
		return nil
	}
	switch v := raw.(type) {
	case string:
		return v, check(v)
	case map[string]any:
		value, _ := v["type"].(string)
		return v, check(value)
	case []any:
		for _, item := range v {
			switch entry := item.(type) {
			case string:
				if err := check(entry); err != nil {
					return nil, err
				}
			case map[string]any:
				value, _ := entry["type"].(string)
				if err := check(value); err != nil {
					return nil, err
				}
			default:
				return nil, fmt.Errorf("%w: %T", ErrUnknownOption, item)
			}
		}
		return v, nil
	case []string:
		for _, entry := range v {
			if err := check(entry); err != nil {
				return nil, err
			}
		}
		return v, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnknownOption, raw)
}

func bindControls(field schema.Field, raw any) ([]ControlValue, error) {
	values, err := DecodeControlValues(raw)
	if err != nil {
		return nil, err
	}
	declared := make(map[string]struct{}, len(field.Options))
	for _, opt := range field.Options {
		declared[opt.OptionValue()] = struct{}{}
	}
	for _, value := range values {
		if _, ok := declared[value.Type]; !ok {
			return nil, fmt.Errorf("%w: control %q", ErrUnknownOption, value.Type)
		}
	}
	return values, nil
}

func toFloat(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case json.Number:
		return v.Float64()
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, ErrNotANumber
		}
		return parsed, nil
	}
	return 0, ErrNotANumber
}
