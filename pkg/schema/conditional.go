package schema

// ConditionalKind tags one variant of the conditional rule set.
type ConditionalKind string

const (
	ConditionalEquals    ConditionalKind = "if_value"
	ConditionalNotEquals ConditionalKind = "if_not_value"
	ConditionalMinLength ConditionalKind = "if_min_length"
	ConditionalMaxLength ConditionalKind = "if_max_length"
)

// Conditional gates a field's visibility or enabled state on another field's
// value. The engine serializes conditionals opaquely; evaluation belongs to
// the renderer. When a field carries several conditionals in one list, all of
// them must hold for the rule to pass (AND).
type Conditional struct {
	Kind  ConditionalKind
	Field string
	// Value is the comparison operand for the equals/not-equals kinds.
	Value string
	// Length is the operand for the min/max length kinds.
	Length int
}

// FieldEquals builds a rule that holds when the named field equals value.
func FieldEquals(field, value string) Conditional {
	return Conditional{Kind: ConditionalEquals, Field: field, Value: value}
}

// FieldNotEquals builds a rule that holds when the named field differs from
// value.
func FieldNotEquals(field, value string) Conditional {
	return Conditional{Kind: ConditionalNotEquals, Field: field, Value: value}
}

// FieldMinLength builds a rule that holds when the named field's value is at
// least length characters long.
func FieldMinLength(field string, length int) Conditional {
	return Conditional{Kind: ConditionalMinLength, Field: field, Length: length}
}

// FieldMaxLength builds a rule that holds when the named field's value is at
// most length characters long.
func FieldMaxLength(field string, length int) Conditional {
	return Conditional{Kind: ConditionalMaxLength, Field: field, Length: length}
}

// Validate checks the rule references a field and uses a recognized kind.
func (c Conditional) Validate() error {
	switch c.Kind {
	case ConditionalEquals, ConditionalNotEquals, ConditionalMinLength, ConditionalMaxLength:
	default:
		return configErr(c.Field, ErrConditionalKind)
	}
	if c.Field == "" {
		return configErr(string(c.Kind), ErrConditionalField)
	}
	return nil
}

// Encode serializes the rule into the wire shape consumed by renderers.
func (c Conditional) Encode() map[string]any {
	doc := map[string]any{
		"type":  string(c.Kind),
		"field": c.Field,
	}
	switch c.Kind {
	case ConditionalEquals, ConditionalNotEquals:
		doc["value"] = c.Value
	case ConditionalMinLength:
		doc["min_length"] = c.Length
	case ConditionalMaxLength:
		doc["max_length"] = c.Length
	}
	return doc
}

func validateConditionals(rules []Conditional) error {
	for _, rule := range rules {
		if err := rule.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func encodeConditionals(rules []Conditional) []map[string]any {
	if len(rules) == 0 {
		return nil
	}
	out := make([]map[string]any, 0, len(rules))
	for _, rule := range rules {
		out = append(out, rule.Encode())
	}
	return out
}
