package schema_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rossaai/workflows/pkg/schema"
)

func TestEncodeIntegerField(t *testing.T) {
	field, err := schema.Integer(schema.NumberConfig{
		Title:       "Steps",
		Description: "Denoising steps.",
		Min:         schema.Ptr(0.0),
		Max:         schema.Ptr(10.0),
		Default:     5,
	})
	if err != nil {
		t.Fatalf("integer: %v", err)
	}

	want := map[string]any{
		"title":       "Steps",
		"type":        "integer",
		"description": "Denoising steps.",
		"options":     []map[string]any{},
		"min":         0.0,
		"max":         10.0,
		"default":     5,
	}
	if diff := cmp.Diff(want, field.Encode()); diff != "" {
		t.Fatalf("encode mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeDropsUnsetAttributes(t *testing.T) {
	field, err := schema.Text(schema.TextConfig{Title: "Name"})
	if err != nil {
		t.Fatalf("text: %v", err)
	}
	doc := field.Encode()
	for _, key := range []string{"description", "placeholder", "min", "max", "step", "default", "show_if", "disable_if", "alias"} {
		if _, present := doc[key]; present {
			t.Errorf("key %q must be absent when unset", key)
		}
	}
}

// A control's advanced field can itself be a controls field; serialization
// depth follows the declared shape.
func TestEncodeRecursesThroughControlAdvancedFields(t *testing.T) {
	note, err := schema.TextArea(schema.TextConfig{
		Title: "Note",
		Alias: "note",
	})
	if err != nil {
		t.Fatalf("textarea: %v", err)
	}

	inner, err := schema.Controls(schema.ControlsConfig{
		Options: []schema.Control{{
			Option:            schema.Option{Value: "mask", Title: "Mask"},
			SupportedContents: []schema.ControlContent{schema.MaskContent(false)},
		}},
	})
	if err != nil {
		t.Fatalf("inner controls: %v", err)
	}
	inner.Alias = "nested_controls"

	field, err := schema.Controls(schema.ControlsConfig{
		Options: []schema.Control{{
			Option: schema.Option{
				Value:          "input",
				Title:          "Source",
				AdvancedFields: []schema.Field{note, inner},
			},
			SupportedContents: []schema.ControlContent{schema.ImageContent(true)},
		}},
	})
	if err != nil {
		t.Fatalf("controls: %v", err)
	}

	doc := field.Encode()
	options, ok := doc["options"].([]map[string]any)
	if !ok || len(options) != 1 {
		t.Fatalf("options = %v", doc["options"])
	}
	advanced, ok := options[0]["advanced_fields"].([]map[string]any)
	if !ok || len(advanced) != 2 {
		t.Fatalf("advanced_fields = %v", options[0]["advanced_fields"])
	}
	if advanced[0]["alias"] != "note" || advanced[0]["title"] != "Note" || advanced[0]["type"] != "textarea" {
		t.Fatalf("first advanced field mismatch: %v", advanced[0])
	}

	nested, ok := advanced[1]["options"].([]map[string]any)
	if !ok || len(nested) != 1 {
		t.Fatalf("nested options = %v", advanced[1]["options"])
	}
	contents, ok := nested[0]["supported_contents"].([]map[string]any)
	if !ok || len(contents) != 1 || contents[0]["content"] != "mask" {
		t.Fatalf("nested supported_contents = %v", nested[0]["supported_contents"])
	}
}

func TestEncodeGeneratedDefault(t *testing.T) {
	field, err := schema.Integer(schema.NumberConfig{
		Title:     "Seed",
		Min:       schema.Ptr(0.0),
		Max:       schema.Ptr(1000.0),
		Generator: schema.GeneratorRandomInteger,
	})
	if err != nil {
		t.Fatalf("integer: %v", err)
	}
	for i := 0; i < 20; i++ {
		doc := field.Encode()
		def, ok := doc["default"].(int64)
		if !ok {
			t.Fatalf("default is %T, want int64", doc["default"])
		}
		if def < 0 || def > 1000 {
			t.Fatalf("generated default %d outside [0, 1000]", def)
		}
	}
}

func TestEncodeSanitizesDescriptionMarkup(t *testing.T) {
	field, err := schema.Text(schema.TextConfig{
		Title:       "Name",
		Description: `A <b>bold</b> hint<script>alert("x")</script>`,
	})
	if err != nil {
		t.Fatalf("text: %v", err)
	}
	description, _ := field.Encode()["description"].(string)
	if strings.Contains(description, "script") {
		t.Fatalf("script tag survived sanitization: %q", description)
	}
	if !strings.Contains(description, "<b>bold</b>") {
		t.Fatalf("inline formatting was stripped: %q", description)
	}
}

func TestNormalizePreservesShapes(t *testing.T) {
	field, err := schema.Text(schema.TextConfig{Title: "Name"})
	if err != nil {
		t.Fatalf("text: %v", err)
	}
	got := schema.Normalize(map[string]any{
		"field":   field,
		"list":    []any{1, "two", nil},
		"nested":  map[string]any{"keep": 1, "drop": nil},
		"scalar":  42,
		"dropped": nil,
	})
	doc, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("normalize returned %T", got)
	}
	if _, present := doc["dropped"]; present {
		t.Error("nil values must be dropped from mappings")
	}
	nested := doc["nested"].(map[string]any)
	if _, present := nested["drop"]; present {
		t.Error("nil values must be dropped from nested mappings")
	}
	if doc["scalar"] != 42 {
		t.Errorf("scalar = %v, want 42", doc["scalar"])
	}
	inner, ok := doc["field"].(map[string]any)
	if !ok || inner["type"] != "text" {
		t.Errorf("field did not serialize: %v", doc["field"])
	}
}
