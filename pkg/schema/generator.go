package schema

import "math/rand"

// GeneratorType computes a fresh default value every time a schema is
// extracted, so a workflow can ship pre-randomized defaults (seeds, jitter)
// without requiring caller input. A generator never coexists with a static
// default on the same field.
type GeneratorType string

const (
	GeneratorRandomInteger GeneratorType = "random_integer"
	GeneratorRandomDecimal GeneratorType = "random_decimal"
)

// Valid reports whether the generator is a recognized member of the enum.
func (g GeneratorType) Valid() bool {
	switch g {
	case GeneratorRandomInteger, GeneratorRandomDecimal:
		return true
	}
	return false
}

// Generate draws a bounded random value. Missing bounds fall back to zero and
// the safe numeric ceiling so unbounded fields still produce values that
// survive a float64 round trip.
func (g GeneratorType) Generate(min, max *float64) float64 {
	switch g {
	case GeneratorRandomInteger:
		lo := int64(0)
		hi := int64(MaxSafeInteger)
		if min != nil {
			lo = int64(*min)
		}
		if max != nil {
			hi = int64(*max)
		}
		if hi <= lo {
			return float64(lo)
		}
		return float64(lo + rand.Int63n(hi-lo+1))
	case GeneratorRandomDecimal:
		lo := 0.0
		hi := MaxSafeDecimal
		if min != nil {
			lo = *min
		}
		if max != nil {
			hi = *max
		}
		if hi <= lo {
			return lo
		}
		return lo + rand.Float64()*(hi-lo)
	}
	return 0
}
