package schema_test

import (
	"math"
	"testing"

	"github.com/rossaai/workflows/pkg/schema"
)

func TestRandomIntegerStaysWithinBounds(t *testing.T) {
	for i := 0; i < 200; i++ {
		value := schema.GeneratorRandomInteger.Generate(schema.Ptr(10.0), schema.Ptr(20.0))
		if value < 10 || value > 20 {
			t.Fatalf("draw %v outside [10, 20]", value)
		}
		if value != math.Trunc(value) {
			t.Fatalf("draw %v is not an integer", value)
		}
	}
}

func TestRandomDecimalStaysWithinBounds(t *testing.T) {
	for i := 0; i < 200; i++ {
		value := schema.GeneratorRandomDecimal.Generate(schema.Ptr(0.5), schema.Ptr(0.75))
		if value < 0.5 || value > 0.75 {
			t.Fatalf("draw %v outside [0.5, 0.75]", value)
		}
	}
}

func TestUnboundedDrawsUseSafeCeiling(t *testing.T) {
	for i := 0; i < 50; i++ {
		value := schema.GeneratorRandomInteger.Generate(nil, nil)
		if value < 0 || value > schema.MaxSafeInteger {
			t.Fatalf("draw %v outside [0, MaxSafeInteger]", value)
		}
	}
	for i := 0; i < 50; i++ {
		value := schema.GeneratorRandomDecimal.Generate(nil, nil)
		if value < 0 || value > schema.MaxSafeDecimal {
			t.Fatalf("draw %v outside [0, MaxSafeDecimal]", value)
		}
	}
}

func TestDegenerateBoundsReturnLowerBound(t *testing.T) {
	if got := schema.GeneratorRandomInteger.Generate(schema.Ptr(7.0), schema.Ptr(7.0)); got != 7 {
		t.Fatalf("got %v, want 7", got)
	}
	if got := schema.GeneratorRandomDecimal.Generate(schema.Ptr(0.25), schema.Ptr(0.25)); got != 0.25 {
		t.Fatalf("got %v, want 0.25", got)
	}
}

func TestUnknownGeneratorIsInvalid(t *testing.T) {
	if schema.GeneratorType("coin_flip").Valid() {
		t.Fatal("unexpected valid generator")
	}
	if !schema.GeneratorRandomDecimal.Valid() {
		t.Fatal("random decimal must be valid")
	}
}
