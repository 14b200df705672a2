package schema_test

import (
	"errors"
	"testing"

	"github.com/rossaai/workflows/pkg/schema"
)

func TestSliderBoundsValidation(t *testing.T) {
	cases := []struct {
		name    string
		min     *float64
		max     *float64
		step    *float64
		wantErr error
	}{
		{name: "valid bounds", min: schema.Ptr(0.0), max: schema.Ptr(10.0)},
		{name: "equal bounds", min: schema.Ptr(5.0), max: schema.Ptr(5.0)},
		{name: "valid step", min: schema.Ptr(0.0), max: schema.Ptr(1.0), step: schema.Ptr(0.1)},
		{name: "reversed bounds", min: schema.Ptr(10.0), max: schema.Ptr(0.0), wantErr: schema.ErrBoundsReversed},
		{name: "zero step", min: schema.Ptr(0.0), max: schema.Ptr(1.0), step: schema.Ptr(0.0), wantErr: schema.ErrStepNotPositive},
		{name: "negative step", min: schema.Ptr(0.0), max: schema.Ptr(1.0), step: schema.Ptr(-1.0), wantErr: schema.ErrStepNotPositive},
		{name: "missing min", max: schema.Ptr(1.0), wantErr: schema.ErrBoundsRequired},
		{name: "missing max", min: schema.Ptr(0.0), wantErr: schema.ErrBoundsRequired},
		{name: "missing both", wantErr: schema.ErrBoundsRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := schema.Slider(schema.NumberConfig{
				Title: "Strength",
				Min:   tc.min,
				Max:   tc.max,
				Step:  tc.step,
			})
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestPercentageSliderDefaultsBounds(t *testing.T) {
	field, err := schema.PercentageSlider(schema.NumberConfig{Title: "Opacity"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if field.Min == nil || *field.Min != 0 {
		t.Fatalf("min = %v, want 0", field.Min)
	}
	if field.Max == nil || *field.Max != 100 {
		t.Fatalf("max = %v, want 100", field.Max)
	}
	if field.Type != schema.FieldSlider {
		t.Fatalf("type = %q, want %q", field.Type, schema.FieldSlider)
	}
}

func TestDefaultGeneratorConflict(t *testing.T) {
	_, err := schema.Integer(schema.NumberConfig{
		Title:     "Seed",
		Default:   5,
		Generator: schema.GeneratorRandomInteger,
	})
	if !errors.Is(err, schema.ErrDefaultConflict) {
		t.Fatalf("got %v, want %v", err, schema.ErrDefaultConflict)
	}
}

func TestGeneratorValidation(t *testing.T) {
	_, err := schema.Number(schema.NumberConfig{Title: "Seed", Generator: schema.GeneratorRandomInteger})
	if err != nil {
		t.Fatalf("generator on numeric field: %v", err)
	}

	_, err = schema.Integer(schema.NumberConfig{Title: "Seed", Generator: schema.GeneratorType("coin_flip")})
	if !errors.Is(err, schema.ErrUnknownGenerator) {
		t.Fatalf("got %v, want %v", err, schema.ErrUnknownGenerator)
	}

	// A generator smuggled onto a non-numeric field through an option's
	// nested fields is rejected when the option validates.
	_, err = schema.Select(schema.SelectConfig{
		Title: "Style",
		Options: []schema.Option{{
			Value: "anime",
			Title: "Anime",
			Fields: []schema.Field{{
				Type:      schema.FieldText,
				Title:     "Variant",
				Generator: schema.GeneratorRandomInteger,
			}},
		}},
	})
	if !errors.Is(err, schema.ErrGeneratorKind) {
		t.Fatalf("got %v, want %v", err, schema.ErrGeneratorKind)
	}
}

func TestSelectRequiresOptions(t *testing.T) {
	_, err := schema.Select(schema.SelectConfig{Title: "Style"})
	if !errors.Is(err, schema.ErrNoOptions) {
		t.Fatalf("got %v, want %v", err, schema.ErrNoOptions)
	}
}

func TestSelectRejectsDuplicateOptionValues(t *testing.T) {
	_, err := schema.Select(schema.SelectConfig{
		Title: "Style",
		Options: []schema.Option{
			{Value: "anime", Title: "Anime"},
			{Value: "anime", Title: "Anime Again"},
		},
	})
	if !errors.Is(err, schema.ErrDuplicateOption) {
		t.Fatalf("got %v, want %v", err, schema.ErrDuplicateOption)
	}
}

func TestAdvancedFieldRequiresAlias(t *testing.T) {
	strength, err := schema.Slider(schema.NumberConfig{
		Title: "Strength",
		Min:   schema.Ptr(0.0),
		Max:   schema.Ptr(1.0),
	})
	if err != nil {
		t.Fatalf("slider: %v", err)
	}

	_, err = schema.Controls(schema.ControlsConfig{
		Options: []schema.Control{{
			Option: schema.Option{
				Value:          "input",
				Title:          "Source",
				AdvancedFields: []schema.Field{strength},
			},
			SupportedContents: []schema.ControlContent{schema.ImageContent(true)},
		}},
	})
	if !errors.Is(err, schema.ErrAliasMissing) {
		t.Fatalf("got %v, want %v", err, schema.ErrAliasMissing)
	}

	strength.Alias = "strength"
	_, err = schema.Controls(schema.ControlsConfig{
		Options: []schema.Control{{
			Option: schema.Option{
				Value:          "input",
				Title:          "Source",
				AdvancedFields: []schema.Field{strength},
			},
			SupportedContents: []schema.ControlContent{schema.ImageContent(true)},
		}},
	})
	if err != nil {
		t.Fatalf("aliased advanced field: %v", err)
	}
}

func TestControlRequiresSupportedContents(t *testing.T) {
	_, err := schema.Controls(schema.ControlsConfig{
		Options: []schema.Control{{
			Option: schema.Option{Value: "input", Title: "Source"},
		}},
	})
	if !errors.Is(err, schema.ErrNoContents) {
		t.Fatalf("got %v, want %v", err, schema.ErrNoContents)
	}
}

func TestControlRejectsUnknownContentKind(t *testing.T) {
	_, err := schema.Controls(schema.ControlsConfig{
		Options: []schema.Control{{
			Option: schema.Option{Value: "input", Title: "Source"},
			SupportedContents: []schema.ControlContent{
				{Kind: schema.ContentKind("hologram")},
			},
		}},
	})
	if !errors.Is(err, schema.ErrUnknownContentKind) {
		t.Fatalf("got %v, want %v", err, schema.ErrUnknownContentKind)
	}
}

func TestCheckboxCarriesDefault(t *testing.T) {
	field, err := schema.Checkbox(schema.CheckboxConfig{Title: "Tiling"})
	if err != nil {
		t.Fatalf("checkbox: %v", err)
	}
	def, ok := field.Default()
	if !ok {
		t.Fatal("checkbox must always declare a default")
	}
	if def != false {
		t.Fatalf("default = %v, want false", def)
	}
}

func TestPromptReservedAliases(t *testing.T) {
	prompt, err := schema.Prompt(schema.PromptConfig{})
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if prompt.Alias != schema.PromptAlias {
		t.Fatalf("alias = %q, want %q", prompt.Alias, schema.PromptAlias)
	}
	if def, _ := prompt.Default(); def != "" {
		t.Fatalf("default = %v, want empty string", def)
	}

	negative, err := schema.NegativePrompt(schema.PromptConfig{})
	if err != nil {
		t.Fatalf("negative prompt: %v", err)
	}
	if negative.Alias != schema.NegativePromptAlias {
		t.Fatalf("alias = %q, want %q", negative.Alias, schema.NegativePromptAlias)
	}
}
