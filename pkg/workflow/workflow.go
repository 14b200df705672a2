// Package workflow extracts renderer-facing schemas from declared workflow
// parameters and binds caller-supplied arguments back onto the workflow
// handler. Descriptors are declared once, at construction, through an
// explicit ordered parameter list; they are immutable afterwards and shared
// safely across concurrent Schema and Run calls.
package workflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/rossaai/workflows/pkg/schema"
)

var (
	ErrTitleRequired   = errors.New("workflow: title must be a non-empty string")
	ErrVersionRequired = errors.New("workflow: version must be a non-empty string")
	ErrHandlerRequired = errors.New("workflow: handler is required")
	ErrParamName       = errors.New("workflow: parameter name is required")
	ErrDuplicateParam  = errors.New("workflow: duplicate parameter name")
)

// Example is a ready-made invocation advertised alongside the schema.
type Example struct {
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	Data        map[string]any `yaml:"data"`
}

// Config is the immutable top-level metadata of a workflow.
type Config struct {
	Title       string
	Version     string
	Description string
	Examples    []Example
}

// Param declares one named parameter. Field carries the UI descriptor; a
// zero Field with a plain Value models a non-field default, which the
// extraction engine soft-skips and the binder passes through unvalidated.
type Param struct {
	Name  string
	Field schema.Field
	Value any
}

// Handler is the workflow body. It receives only arguments that survived
// binding: unknown keys are dropped and declared keys are validated before
// the handler runs.
type Handler func(ctx context.Context, args map[string]any) (any, error)

// Workflow pairs an immutable configuration and parameter list with a
// handler.
type Workflow struct {
	cfg     Config
	params  []Param
	index   map[string]int
	handler Handler
}

// New builds a workflow, validating the configuration and parameter list
// eagerly so misdeclarations fail before any schema or request processing.
func New(cfg Config, params []Param, handler Handler) (*Workflow, error) {
	if cfg.Title == "" {
		return nil, ErrTitleRequired
	}
	if cfg.Version == "" {
		return nil, ErrVersionRequired
	}
	if handler == nil {
		return nil, ErrHandlerRequired
	}
	index := make(map[string]int, len(params))
	for i, param := range params {
		if param.Name == "" {
			return nil, fmt.Errorf("%w (position %d)", ErrParamName, i)
		}
		if _, dup := index[param.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateParam, param.Name)
		}
		index[param.Name] = i
	}
	return &Workflow{
		cfg:     cfg,
		params:  append([]Param(nil), params...),
		index:   index,
		handler: handler,
	}, nil
}

// Config returns the workflow configuration.
func (w *Workflow) Config() Config { return w.cfg }

// Params returns a copy of the declared parameter list in declaration order.
func (w *Workflow) Params() []Param {
	return append([]Param(nil), w.params...)
}

// Schema produces the plain, JSON-serializable schema document. It aborts
// entirely on invalid top-level metadata; parameters without a recognized
// field descriptor are omitted from the field list without failing the
// extraction.
func (w *Workflow) Schema() (map[string]any, error) {
	if w.cfg.Title == "" {
		return nil, ErrTitleRequired
	}
	if w.cfg.Version == "" {
		return nil, ErrVersionRequired
	}

	fields := make([]map[string]any, 0, len(w.params))
	for _, param := range w.params {
		if !param.Field.Declared() {
			continue
		}
		doc := param.Field.Encode()
		doc["name"] = param.Name
		fields = append(fields, doc)
	}

	examples := make([]map[string]any, 0, len(w.cfg.Examples))
	for _, example := range w.cfg.Examples {
		entry := map[string]any{
			"title": example.Title,
			"data":  schema.Normalize(example.Data),
		}
		if example.Description != "" {
			entry["description"] = example.Description
		}
		examples = append(examples, entry)
	}

	return map[string]any{
		"title":       w.cfg.Title,
		"version":     w.cfg.Version,
		"description": w.cfg.Description,
		"examples":    examples,
		"fields":      fields,
	}, nil
}
