package codegen

import (
	"errors"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/rossaai/workflows/pkg/workflow"
)

// ErrConstructorRequired reports a local adapter without a workflow
// constructor reference.
var ErrConstructorRequired = errors.New("codegen: import path and constructor are required")

// LocalConfig configures the local-process adapter.
type LocalConfig struct {
	// ImportPath is the Go import path of the package exposing the workflow.
	ImportPath string
	// Constructor is the exported function in that package returning
	// (*workflow.Workflow, error).
	Constructor string
	// OutputDir is where the generated runner writes example results.
	// Defaults to the OS temp dir at runtime when empty.
	OutputDir string
}

// Local generates a standalone runner that executes the workflow's examples
// on the local machine and saves each produced payload.
type Local struct {
	cfg LocalConfig
}

// NewLocal builds the adapter, validating its configuration eagerly.
func NewLocal(cfg LocalConfig) (*Local, error) {
	if strings.TrimSpace(cfg.ImportPath) == "" || strings.TrimSpace(cfg.Constructor) == "" {
		return nil, ErrConstructorRequired
	}
	return &Local{cfg: cfg}, nil
}

// ConvertWorkflow renders the runner source.
func (l *Local) ConvertWorkflow(w *workflow.Workflow) (string, error) {
	if w == nil {
		return "", ErrWorkflowRequired
	}
	schema, err := schemaJSON(w)
	if err != nil {
		return "", err
	}
	return render("local.go.tpl", pongo2.Context{
		"import_path": l.cfg.ImportPath,
		"constructor": l.cfg.Constructor,
		"output_dir":  l.cfg.OutputDir,
		"schema_json": schema,
		"title":       w.Config().Title,
	})
}
