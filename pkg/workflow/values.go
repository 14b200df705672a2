package workflow

import (
	"errors"
	"fmt"

	"github.com/rossaai/workflows/pkg/schema"
)

// ErrControlShape reports a submitted control value that is not a control
// object or list of control objects.
var ErrControlShape = errors.New("workflow: control values must be objects with a type and content")

// ControlValue is the runtime-submitted binding for a declared control. It is
// built per incoming request, validated against the declared control list by
// the binder, consumed by the workflow body, and discarded afterwards.
type ControlValue struct {
	// Type matches the declared control's option value.
	Type string
	// Content is the submitted payload: a URL, data-URL, path, raw bytes, or
	// whatever the content layer understands.
	Content any
	// Settings carries per-control tuning values keyed by the aliases of the
	// control's advanced fields.
	Settings map[string]any
}

// Setting returns the named setting, or fallback when absent.
func (v ControlValue) Setting(key string, fallback any) any {
	if value, ok := v.Settings[key]; ok {
		return value
	}
	return fallback
}

// Influence returns how strongly the control should steer generation, read
// from the influence setting and defaulting to schema.InfluenceDefault.
func (v ControlValue) Influence() float64 {
	raw := v.Setting(schema.InfluenceSettingKey, nil)
	if raw == nil {
		return schema.InfluenceDefault
	}
	value, err := toFloat(raw)
	if err != nil {
		return schema.InfluenceDefault
	}
	return value
}

// DecodeControlValues converts a submitted argument into control values. It
// accepts ControlValue slices as-is and decodes generic JSON shapes: a single
// object or a list of objects, each carrying a type (or control_type),
// content, optional settings, and an optional top-level influence that folds
// into the settings map.
func DecodeControlValues(raw any) ([]ControlValue, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []ControlValue:
		return v, nil
	case ControlValue:
		return []ControlValue{v}, nil
	case map[string]any:
		value, err := decodeControlValue(v)
		if err != nil {
			return nil, err
		}
		return []ControlValue{value}, nil
	case []any:
		values := make([]ControlValue, 0, len(v))
		for _, item := range v {
			entry, ok := item.(map[string]any)
			if !ok {
				if value, isValue := item.(ControlValue); isValue {
					values = append(values, value)
					continue
				}
				return nil, fmt.Errorf("%w: got %T", ErrControlShape, item)
			}
			value, err := decodeControlValue(entry)
			if err != nil {
				return nil, err
			}
			values = append(values, value)
		}
		return values, nil
	}
	return nil, fmt.Errorf("%w: got %T", ErrControlShape, raw)
}

func decodeControlValue(entry map[string]any) (ControlValue, error) {
	kind, _ := entry["type"].(string)
	if kind == "" {
		kind, _ = entry["control_type"].(string)
	}
	if kind == "" {
		return ControlValue{}, fmt.Errorf("%w: missing type", ErrControlShape)
	}
	value := ControlValue{
		Type:    kind,
		Content: entry["content"],
	}
	if settings, ok := entry["settings"].(map[string]any); ok {
		value.Settings = settings
	}
	if influence, ok := entry[schema.InfluenceSettingKey]; ok {
		if value.Settings == nil {
			value.Settings = make(map[string]any, 1)
		}
		if _, set := value.Settings[schema.InfluenceSettingKey]; !set {
			value.Settings[schema.InfluenceSettingKey] = influence
		}
	}
	return value, nil
}

// NextControl returns the first submitted value matching the declared
// control.
func NextControl(values []ControlValue, control schema.Control) (ControlValue, bool) {
	for _, value := range values {
		if value.Type == control.Value {
			return value, true
		}
	}
	return ControlValue{}, false
}
