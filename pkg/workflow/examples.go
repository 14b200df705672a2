package workflow

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ExamplesFromYAML parses example invocations from a YAML list of
// {title, description, data} entries, so authors can keep example payloads
// next to their workflow source instead of inlining them.
func ExamplesFromYAML(data []byte) ([]Example, error) {
	var examples []Example
	if err := yaml.Unmarshal(data, &examples); err != nil {
		return nil, fmt.Errorf("workflow: parse examples: %w", err)
	}
	for i, example := range examples {
		if example.Title == "" {
			return nil, fmt.Errorf("workflow: example %d is missing a title", i)
		}
	}
	return examples, nil
}
