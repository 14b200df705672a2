package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/rossaai/workflows/pkg/schema"
	"github.com/rossaai/workflows/pkg/workflow"
)

var (
	// ErrNoOperation reports a document without an importable operation.
	ErrNoOperation = errors.New("openapi: document has no operation with a JSON request body")
	// ErrUnsupportedField reports a property that cannot be mapped back to a
	// field descriptor.
	ErrUnsupportedField = errors.New("openapi: property does not map to a field")
)

// Manifest is the workflow surface recovered from an OpenAPI document: its
// metadata plus a parameter list ready for workflow.New. Only the declared
// inputs travel through OpenAPI, so the handler is always supplied by the
// caller.
type Manifest struct {
	Title       string
	Version     string
	Description string
	Params      []workflow.Param
}

// Import parses an OpenAPI document and rebuilds field descriptors from the
// first operation carrying a JSON request body, preferring POST /run. It is
// the inverse of Export for documents Export produced, and a best-effort
// mapping for foreign documents: properties fall back to their OpenAPI type
// when the field-type extension is absent.
//
// Property order is not preserved by OpenAPI objects, so parameters come back
// sorted by name. Nested option inputs, advanced fields, and conditional
// rules are not reconstructed.
func Import(ctx context.Context, data []byte) (Manifest, error) {
	loader := &openapi3.Loader{Context: ctx, IsExternalRefsAllowed: true}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return Manifest{}, fmt.Errorf("openapi: load document: %w", err)
	}
	if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return Manifest{}, fmt.Errorf("openapi: validate document: %w", err)
	}

	manifest := Manifest{}
	if spec.Info != nil {
		manifest.Title = spec.Info.Title
		manifest.Version = spec.Info.Version
		manifest.Description = spec.Info.Description
	}

	body := requestBodySchema(spec)
	if body == nil {
		return Manifest{}, ErrNoOperation
	}

	names := make([]string, 0, len(body.Properties))
	for name := range body.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ref := body.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		field, err := buildField(ref.Value)
		if err != nil {
			return Manifest{}, fmt.Errorf("%w: %s", err, name)
		}
		manifest.Params = append(manifest.Params, workflow.Param{Name: name, Field: field})
	}
	return manifest, nil
}

func requestBodySchema(spec *openapi3.T) *openapi3.Schema {
	if spec.Paths == nil {
		return nil
	}
	if item := spec.Paths.Value("/run"); item != nil {
		if body := jsonBody(item.Post); body != nil {
			return body
		}
	}
	paths := make([]string, 0, spec.Paths.Len())
	for path := range spec.Paths.Map() {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		item := spec.Paths.Value(path)
		for _, operation := range []*openapi3.Operation{item.Post, item.Put, item.Patch} {
			if body := jsonBody(operation); body != nil {
				return body
			}
		}
	}
	return nil
}

func jsonBody(operation *openapi3.Operation) *openapi3.Schema {
	if operation == nil || operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return nil
	}
	media := operation.RequestBody.Value.Content.Get("application/json")
	if media == nil || media.Schema == nil {
		return nil
	}
	return media.Schema.Value
}

func buildField(sch *openapi3.Schema) (schema.Field, error) {
	kind := fieldKind(sch)
	alias, _ := sch.Extensions[AliasExtension].(string)
	generator := schema.GeneratorType("")
	if name, ok := sch.Extensions[GeneratedExtension].(string); ok {
		generator = schema.GeneratorType(name)
	}

	switch kind {
	case schema.FieldPrompt:
		return schema.Prompt(schema.PromptConfig{
			Title:       sch.Title,
			Description: sch.Description,
			Default:     sch.Default,
		})
	case schema.FieldNegativePrompt:
		return schema.NegativePrompt(schema.PromptConfig{
			Title:       sch.Title,
			Description: sch.Description,
			Default:     sch.Default,
		})
	case schema.FieldText, schema.FieldTextArea, schema.FieldColor:
		cfg := schema.TextConfig{
			Title:       sch.Title,
			Description: sch.Description,
			Alias:       alias,
			Default:     sch.Default,
		}
		switch kind {
		case schema.FieldTextArea:
			return schema.TextArea(cfg)
		case schema.FieldColor:
			return schema.Color(cfg)
		}
		return schema.Text(cfg)
	case schema.FieldNumber, schema.FieldInteger, schema.FieldSlider:
		cfg := schema.NumberConfig{
			Title:       sch.Title,
			Description: sch.Description,
			Alias:       alias,
			Min:         sch.Min,
			Max:         sch.Max,
			Default:     sch.Default,
			Generator:   generator,
		}
		switch kind {
		case schema.FieldInteger:
			return schema.Integer(cfg)
		case schema.FieldSlider:
			return schema.Slider(cfg)
		}
		return schema.Number(cfg)
	case schema.FieldCheckbox:
		checked, _ := sch.Default.(bool)
		return schema.Checkbox(schema.CheckboxConfig{
			Title:       sch.Title,
			Description: sch.Description,
			Alias:       alias,
			Default:     checked,
		})
	case schema.FieldSelect, schema.FieldRadio, schema.FieldDynamicForm:
		cfg := schema.SelectConfig{
			Title:       sch.Title,
			Description: sch.Description,
			Alias:       alias,
			Options:     buildOptions(sch),
		}
		switch kind {
		case schema.FieldRadio:
			return schema.Radio(cfg)
		case schema.FieldDynamicForm:
			return schema.DynamicForm(cfg)
		}
		return schema.Select(cfg)
	case schema.FieldControls:
		return schema.Controls(schema.ControlsConfig{
			Title:       sch.Title,
			Description: sch.Description,
			Options:     buildControls(sch),
		})
	}
	return schema.Field{}, ErrUnsupportedField
}

func fieldKind(sch *openapi3.Schema) schema.FieldType {
	if name, ok := sch.Extensions[FieldTypeExtension].(string); ok {
		if kind := schema.FieldType(name); kind.Valid() {
			return kind
		}
	}
	switch {
	case sch.Type.Is("integer"):
		return schema.FieldInteger
	case sch.Type.Is("number"):
		return schema.FieldNumber
	case sch.Type.Is("boolean"):
		return schema.FieldCheckbox
	case sch.Type.Is("string") && len(sch.Enum) > 0:
		return schema.FieldSelect
	case sch.Type.Is("string"):
		return schema.FieldText
	}
	return schema.FieldType("")
}

func buildOptions(sch *openapi3.Schema) []schema.Option {
	if encoded, ok := sch.Extensions[OptionsExtension].([]any); ok {
		options := make([]schema.Option, 0, len(encoded))
		for _, entry := range encoded {
			doc, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			options = append(options, decodeOption(doc))
		}
		return options
	}
	options := make([]schema.Option, 0, len(sch.Enum))
	for _, value := range sch.Enum {
		name, ok := value.(string)
		if !ok {
			continue
		}
		options = append(options, schema.Option{Value: name, Title: name})
	}
	return options
}

func buildControls(sch *openapi3.Schema) []schema.Control {
	encoded, ok := sch.Extensions[OptionsExtension].([]any)
	if !ok {
		return nil
	}
	controls := make([]schema.Control, 0, len(encoded))
	for _, entry := range encoded {
		doc, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		control := schema.Control{Option: decodeOption(doc)}
		contents, _ := doc["supported_contents"].([]any)
		for _, raw := range contents {
			content, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			kind, _ := content["content"].(string)
			required, _ := content["required"].(bool)
			control.SupportedContents = append(control.SupportedContents, schema.ControlContent{
				Kind:     schema.ContentKind(kind),
				Required: required,
			})
		}
		controls = append(controls, control)
	}
	return controls
}

func decodeOption(doc map[string]any) schema.Option {
	option := schema.Option{}
	option.Value, _ = doc["value"].(string)
	option.Title, _ = doc["title"].(string)
	option.Group, _ = doc["group"].(string)
	option.Description, _ = doc["description"].(string)
	option.Default, _ = doc["default"].(bool)
	if max, ok := doc["max"].(float64); ok {
		option.Max = int(max)
	}
	return option
}
