// Package openapi exports a workflow's declared fields as an OpenAPI 3
// document, so renderer tooling that already speaks OpenAPI can consume a
// workflow without understanding the native schema shape.
package openapi

import (
	"errors"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/rossaai/workflows/pkg/schema"
	"github.com/rossaai/workflows/pkg/workflow"
)

// ErrWorkflowRequired reports an export without a workflow.
var ErrWorkflowRequired = errors.New("openapi: workflow is required")

// Extension keys carrying metadata OpenAPI has no native slot for.
const (
	FieldTypeExtension = "x-field-type"
	OptionsExtension   = "x-options"
	ShowIfExtension    = "x-show-if"
	DisableIfExtension = "x-disable-if"
	AliasExtension     = "x-alias"
	GeneratedExtension = "x-default-generated"
)

// Export maps the workflow to an OpenAPI document with a single POST /run
// operation whose request body mirrors the declared fields. Parameters
// without a field descriptor are omitted, matching schema extraction.
func Export(w *workflow.Workflow) (*openapi3.T, error) {
	if w == nil {
		return nil, ErrWorkflowRequired
	}
	cfg := w.Config()
	if cfg.Title == "" {
		return nil, workflow.ErrTitleRequired
	}
	if cfg.Version == "" {
		return nil, workflow.ErrVersionRequired
	}

	root := openapi3.NewObjectSchema()
	for _, param := range w.Params() {
		if !param.Field.Declared() {
			continue
		}
		root.WithProperty(param.Name, fieldSchema(param.Field))
	}

	body := openapi3.NewRequestBody().WithJSONSchema(root)
	operation := &openapi3.Operation{
		OperationID: "run",
		Summary:     cfg.Title,
		Description: cfg.Description,
		RequestBody: &openapi3.RequestBodyRef{Value: body},
		Responses:   openapi3.NewResponses(),
	}

	paths := openapi3.NewPaths()
	paths.Set("/run", &openapi3.PathItem{Post: operation})

	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       cfg.Title,
			Version:     cfg.Version,
			Description: cfg.Description,
		},
		Paths: paths,
	}, nil
}

func fieldSchema(field schema.Field) *openapi3.Schema {
	var out *openapi3.Schema
	switch field.Type {
	case schema.FieldNumber, schema.FieldSlider:
		out = openapi3.NewFloat64Schema()
	case schema.FieldInteger:
		out = openapi3.NewInt64Schema()
	case schema.FieldCheckbox:
		out = openapi3.NewBoolSchema()
	case schema.FieldControls:
		out = openapi3.NewArraySchema().WithItems(openapi3.NewObjectSchema())
	case schema.FieldSelect, schema.FieldRadio, schema.FieldDynamicForm:
		out = openapi3.NewStringSchema()
		values := make([]any, 0, len(field.Options))
		for _, opt := range field.Options {
			values = append(values, opt.OptionValue())
		}
		out.WithEnum(values...)
	default:
		out = openapi3.NewStringSchema()
	}

	out.Title = field.Title
	out.Description = field.Description
	out.Min = field.Min
	out.Max = field.Max

	ext := map[string]any{FieldTypeExtension: string(field.Type)}
	if field.Alias != "" {
		ext[AliasExtension] = field.Alias
	}
	if len(field.Options) > 0 {
		options := make([]any, 0, len(field.Options))
		for _, opt := range field.Options {
			options = append(options, opt.Encode())
		}
		ext[OptionsExtension] = options
	}
	if len(field.ShowIf) > 0 {
		ext[ShowIfExtension] = schema.Normalize(field.ShowIf)
	}
	if len(field.DisableIf) > 0 {
		ext[DisableIfExtension] = schema.Normalize(field.DisableIf)
	}
	if def, ok := field.Default(); ok {
		out.Default = schema.Normalize(def)
	} else if field.Generator != "" {
		// Advertise that defaults are drawn per request instead of baking a
		// random value into the document.
		ext[GeneratedExtension] = string(field.Generator)
	}
	out.Extensions = ext
	return out
}
