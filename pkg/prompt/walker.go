package prompt

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/rossaai/workflows/pkg/schema"
	"github.com/rossaai/workflows/pkg/workflow"
)

// Collect walks the declared parameters in order and gathers a kwargs map
// ready for Workflow.Run. Parameters without a field descriptor are skipped;
// their defaults are filled in by the binder.
func Collect(ctx context.Context, driver Driver, params []workflow.Param) (map[string]any, error) {
	args := make(map[string]any, len(params))
	for _, param := range params {
		if !param.Field.Declared() {
			continue
		}
		value, err := collectField(ctx, driver, param.Field)
		if err != nil {
			return nil, err
		}
		if value != nil {
			args[param.Name] = value
		}
	}
	return args, nil
}

func collectField(ctx context.Context, driver Driver, field schema.Field) (any, error) {
	switch {
	case field.Type.Textual():
		def, _ := field.Default()
		text, _ := def.(string)
		return driver.Input(ctx, InputConfig{
			Message:     field.Title,
			Default:     text,
			Help:        field.Description,
			Placeholder: field.Placeholder,
		})
	case field.Type.Numeric():
		return collectNumber(ctx, driver, field)
	case field.Type == schema.FieldCheckbox:
		def, _ := field.Default()
		checked, _ := def.(bool)
		return driver.Confirm(ctx, ConfirmConfig{
			Message: field.Title,
			Default: checked,
			Help:    field.Description,
		})
	case field.Type == schema.FieldControls:
		return collectControls(ctx, driver, field)
	case field.Type.Enumerated():
		return collectSelection(ctx, driver, field)
	}
	return nil, nil
}

func collectNumber(ctx context.Context, driver Driver, field schema.Field) (any, error) {
	def := ""
	if value, ok := field.DefaultOrGenerate(); ok {
		def = fmt.Sprint(value)
	}
	text, err := driver.Input(ctx, InputConfig{
		Message:     field.Title,
		Default:     def,
		Help:        field.Description,
		Placeholder: field.Placeholder,
		Validator:   numberValidator(field),
	})
	if err != nil {
		return nil, err
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, fmt.Errorf("prompt: %s: %w", field.Title, err)
	}
	if field.Type == schema.FieldInteger {
		return int64(value), nil
	}
	return value, nil
}

func numberValidator(field schema.Field) func(string) error {
	return func(text string) error {
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fmt.Errorf("enter a number")
		}
		if field.Type == schema.FieldInteger && value != math.Trunc(value) {
			return fmt.Errorf("enter a whole number")
		}
		if field.Min != nil && value < *field.Min {
			return fmt.Errorf("minimum is %v", *field.Min)
		}
		if field.Max != nil && value > *field.Max {
			return fmt.Errorf("maximum is %v", *field.Max)
		}
		return nil
	}
}

func collectSelection(ctx context.Context, driver Driver, field schema.Field) (any, error) {
	labels := make([]string, 0, len(field.Options))
	for _, opt := range field.Options {
		labels = append(labels, optionLabel(opt))
	}
	idx, err := driver.Select(ctx, SelectConfig{
		Message: field.Title,
		Options: labels,
		Help:    field.Description,
	})
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(field.Options) {
		return nil, fmt.Errorf("prompt: %s: selection out of range", field.Title)
	}
	chosen := field.Options[idx]
	if field.Type != schema.FieldDynamicForm {
		return chosen.OptionValue(), nil
	}
	settings, err := collectNested(ctx, driver, optionFields(chosen))
	if err != nil {
		return nil, err
	}
	value := map[string]any{"type": chosen.OptionValue()}
	if len(settings) > 0 {
		value["settings"] = settings
	}
	return value, nil
}

func collectControls(ctx context.Context, driver Driver, field schema.Field) (any, error) {
	labels := make([]string, 0, len(field.Options))
	for _, opt := range field.Options {
		labels = append(labels, optionLabel(opt))
	}
	indices, err := driver.MultiSelect(ctx, SelectConfig{
		Message: field.Title,
		Options: labels,
		Help:    field.Description,
	})
	if err != nil {
		return nil, err
	}
	values := make([]any, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(field.Options) {
			continue
		}
		chosen := field.Options[idx]
		contentValue, err := driver.Input(ctx, InputConfig{
			Message: optionLabel(chosen) + " content",
			Help:    "URL, data-URL, or file path",
		})
		if err != nil {
			return nil, err
		}
		settings, err := collectNested(ctx, driver, advancedFields(chosen))
		if err != nil {
			return nil, err
		}
		value := map[string]any{
			"type":    chosen.OptionValue(),
			"content": contentValue,
		}
		if len(settings) > 0 {
			value["settings"] = settings
		}
		values = append(values, value)
	}
	return values, nil
}

func collectNested(ctx context.Context, driver Driver, fields []schema.Field) (map[string]any, error) {
	if len(fields) == 0 {
		return nil, nil
	}
	settings := make(map[string]any, len(fields))
	for _, field := range fields {
		value, err := collectField(ctx, driver, field)
		if err != nil {
			return nil, err
		}
		key := field.Alias
		if key == "" {
			key = field.Title
		}
		if value != nil {
			settings[key] = value
		}
	}
	return settings, nil
}

func optionLabel(opt schema.Opt) string {
	switch o := opt.(type) {
	case schema.Option:
		if o.Title != "" {
			return o.Title
		}
	case schema.Control:
		if o.Title != "" {
			return o.Title
		}
	}
	return opt.OptionValue()
}

func optionFields(opt schema.Opt) []schema.Field {
	switch o := opt.(type) {
	case schema.Option:
		return o.Fields
	case schema.Control:
		return o.Fields
	}
	return nil
}

func advancedFields(opt schema.Opt) []schema.Field {
	switch o := opt.(type) {
	case schema.Option:
		return o.AdvancedFields
	case schema.Control:
		return o.AdvancedFields
	}
	return nil
}
