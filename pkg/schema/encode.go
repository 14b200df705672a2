package schema

// Encode serializes the field into the plain, JSON-serializable shape an
// external renderer consumes. Options are rebuilt from the normalized list,
// nil-valued keys are dropped, and the true default is rehydrated from its
// internal storage slot under the public "default" key. Generator-backed
// fields draw a fresh default on every call.
func (f Field) Encode() map[string]any {
	doc := map[string]any{
		"title":   f.Title,
		"type":    string(f.Type),
		"options": encodeOptions(f.Options),
	}
	if f.Alias != "" {
		doc["alias"] = f.Alias
	}
	if f.Description != "" {
		doc["description"] = sanitizeMarkup(f.Description)
	}
	if f.Placeholder != "" {
		doc["placeholder"] = f.Placeholder
	}
	if f.Min != nil {
		doc["min"] = *f.Min
	}
	if f.Max != nil {
		doc["max"] = *f.Max
	}
	if f.Step != nil {
		doc["step"] = *f.Step
	}
	if def, ok := f.DefaultOrGenerate(); ok {
		doc["default"] = Normalize(def)
	}
	if rules := encodeConditionals(f.ShowIf); rules != nil {
		doc["show_if"] = rules
	}
	if rules := encodeConditionals(f.DisableIf); rules != nil {
		doc["disable_if"] = rules
	}
	return doc
}

func encodeFields(fields []Field) []map[string]any {
	out := make([]map[string]any, 0, len(fields))
	for _, field := range fields {
		out = append(out, field.Encode())
	}
	return out
}

func encodeOptions(options []Opt) []map[string]any {
	out := make([]map[string]any, 0, len(options))
	for _, option := range options {
		out = append(out, option.Encode())
	}
	return out
}

// Normalize recursively converts heterogeneous metadata into plain values.
// Descriptors serialize through their Encode methods; lists and mappings
// normalize element-wise with keys preserved; anything else passes through
// untouched. Recursion is driven by the value's shape, so arbitrarily deep
// nesting (a control whose advanced field is itself a controls field) is
// handled without a fixed schema depth.
func Normalize(value any) any {
	switch v := value.(type) {
	case Field:
		return v.Encode()
	case *Field:
		if v == nil {
			return nil
		}
		return v.Encode()
	case Opt:
		return v.Encode()
	case ControlContent:
		return v.Encode()
	case Conditional:
		return v.Encode()
	case []Field:
		return encodeFields(v)
	case []Opt:
		return encodeOptions(v)
	case []Option:
		out := make([]any, 0, len(v))
		for _, item := range v {
			out = append(out, item.Encode())
		}
		return out
	case []Control:
		out := make([]any, 0, len(v))
		for _, item := range v {
			out = append(out, item.Encode())
		}
		return out
	case []ControlContent:
		out := make([]any, 0, len(v))
		for _, item := range v {
			out = append(out, item.Encode())
		}
		return out
	case []Conditional:
		return encodeConditionals(v)
	case []any:
		out := make([]any, 0, len(v))
		for _, item := range v {
			out = append(out, Normalize(item))
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			if item == nil {
				continue
			}
			out[key] = Normalize(item)
		}
		return out
	default:
		return value
	}
}
