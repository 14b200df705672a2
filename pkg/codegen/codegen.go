// Package codegen turns a finished workflow into deployment source text.
// Adapters only generate code; nothing here talks to a deployment target.
package codegen

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/rossaai/workflows/pkg/workflow"
)

//go:embed templates/*.tpl
var templateFiles embed.FS

var (
	ErrWorkflowRequired = errors.New("codegen: workflow is required")
	ErrStubNameRequired = errors.New("codegen: stub name is required")
)

// Adapter converts a workflow into deployment source text for one target.
type Adapter interface {
	ConvertWorkflow(w *workflow.Workflow) (string, error)
}

var (
	templateSetOnce sync.Once
	templateSet     *pongo2.TemplateSet
	templateSetErr  error
)

func templates() (*pongo2.TemplateSet, error) {
	templateSetOnce.Do(func() {
		sub, err := fs.Sub(templateFiles, "templates")
		if err != nil {
			templateSetErr = fmt.Errorf("codegen: open templates: %w", err)
			return
		}
		templateSet = pongo2.NewSet("codegen", pongo2.NewFSLoader(sub))
	})
	return templateSet, templateSetErr
}

func render(name string, ctx pongo2.Context) (string, error) {
	set, err := templates()
	if err != nil {
		return "", err
	}
	tpl, err := set.FromFile(name)
	if err != nil {
		return "", fmt.Errorf("codegen: load template %s: %w", name, err)
	}
	out, err := tpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("codegen: render %s: %w", name, err)
	}
	return out, nil
}

func schemaJSON(w *workflow.Workflow) (string, error) {
	doc, err := w.Schema()
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("codegen: marshal schema: %w", err)
	}
	return string(data), nil
}
