package codegen

import (
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/rossaai/workflows/pkg/container"
	"github.com/rossaai/workflows/pkg/workflow"
)

// ModalConfig configures the Modal deployment adapter.
type ModalConfig struct {
	// StubName names the Modal stub. Required.
	StubName string
	// GPU optionally requests a GPU class (for example "A10G").
	GPU string
	// StubArgs is extra source text spliced into the stub class decorator.
	StubArgs string
	// Image provides the container definition shipped with the deployment.
	Image *container.Image
	// ServeCommand launches the workflow process inside the container.
	ServeCommand string
}

// Modal generates a Modal deployment script plus Dockerfile for a workflow.
type Modal struct {
	cfg ModalConfig
}

// NewModal builds the adapter, validating its configuration eagerly.
func NewModal(cfg ModalConfig) (*Modal, error) {
	if strings.TrimSpace(cfg.StubName) == "" {
		return nil, ErrStubNameRequired
	}
	if cfg.ServeCommand == "" {
		cfg.ServeCommand = "/app/workflow serve"
	}
	return &Modal{cfg: cfg}, nil
}

// ConvertWorkflow renders the deployment script. The workflow schema is
// embedded verbatim so the deployed stub can advertise it without calling
// back into the engine.
func (m *Modal) ConvertWorkflow(w *workflow.Workflow) (string, error) {
	if w == nil {
		return "", ErrWorkflowRequired
	}
	schema, err := schemaJSON(w)
	if err != nil {
		return "", err
	}
	dockerfile := ""
	if m.cfg.Image != nil {
		dockerfile, err = m.cfg.Image.Dockerfile()
		if err != nil {
			return "", err
		}
	}
	gpuArg := ""
	if m.cfg.GPU != "" {
		gpuArg = "gpu=modal.gpu." + m.cfg.GPU + "(),"
	}
	return render("modal.py.tpl", pongo2.Context{
		"stub_name":     m.cfg.StubName,
		"gpu_arg":       gpuArg,
		"stub_args":     m.cfg.StubArgs,
		"dockerfile":    dockerfile,
		"schema_json":   schema,
		"serve_command": m.cfg.ServeCommand,
	})
}
