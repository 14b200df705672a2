package codegen_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rossaai/workflows/pkg/codegen"
	"github.com/rossaai/workflows/pkg/container"
	"github.com/rossaai/workflows/pkg/schema"
	"github.com/rossaai/workflows/pkg/workflow"
)

func testWorkflow(t *testing.T) *workflow.Workflow {
	t.Helper()
	prompt, err := schema.Prompt(schema.PromptConfig{})
	if err != nil {
		t.Fatalf("prompt field: %v", err)
	}
	w, err := workflow.New(workflow.Config{
		Title:   "Image Generation",
		Version: "1.0.0",
	}, []workflow.Param{
		{Name: "prompt", Field: prompt},
	}, func(_ context.Context, args map[string]any) (any, error) {
		return args, nil
	})
	if err != nil {
		t.Fatalf("workflow: %v", err)
	}
	return w
}

func TestModalConvertWorkflow(t *testing.T) {
	adapter, err := codegen.NewModal(codegen.ModalConfig{
		StubName: "image-generation",
		GPU:      "A10G",
		StubArgs: "timeout=600,",
		Image:    container.DebianSlim("3.11").PipInstall("torch"),
	})
	if err != nil {
		t.Fatalf("adapter: %v", err)
	}

	src, err := adapter.ConvertWorkflow(testWorkflow(t))
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	for _, want := range []string{
		`"image-generation"`,
		"gpu=modal.gpu.A10G(),",
		"timeout=600,",
		"FROM python:3.11-slim-bookworm",
		`"title": "Image Generation"`,
		"/app/workflow serve",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source is missing %q", want)
		}
	}
}

func TestModalConvertWorkflowWithoutImage(t *testing.T) {
	adapter, err := codegen.NewModal(codegen.ModalConfig{StubName: "bare"})
	if err != nil {
		t.Fatalf("adapter: %v", err)
	}
	src, err := adapter.ConvertWorkflow(testWorkflow(t))
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if strings.Contains(src, "gpu=modal.gpu.") {
		t.Error("gpu argument generated without a GPU request")
	}
}

func TestModalConfigValidation(t *testing.T) {
	if _, err := codegen.NewModal(codegen.ModalConfig{StubName: "  "}); !errors.Is(err, codegen.ErrStubNameRequired) {
		t.Fatalf("got %v, want %v", err, codegen.ErrStubNameRequired)
	}

	adapter, err := codegen.NewModal(codegen.ModalConfig{StubName: "x"})
	if err != nil {
		t.Fatalf("adapter: %v", err)
	}
	if _, err := adapter.ConvertWorkflow(nil); !errors.Is(err, codegen.ErrWorkflowRequired) {
		t.Fatalf("got %v, want %v", err, codegen.ErrWorkflowRequired)
	}
}

func TestLocalConvertWorkflow(t *testing.T) {
	adapter, err := codegen.NewLocal(codegen.LocalConfig{
		ImportPath:  "example.com/flows/imagegen",
		Constructor: "New",
		OutputDir:   "/tmp/results",
	})
	if err != nil {
		t.Fatalf("adapter: %v", err)
	}

	src, err := adapter.ConvertWorkflow(testWorkflow(t))
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	for _, want := range []string{
		`"example.com/flows/imagegen"`,
		"New()",
		"/tmp/results",
		"package main",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source is missing %q", want)
		}
	}
}

func TestLocalConfigValidation(t *testing.T) {
	cases := []codegen.LocalConfig{
		{Constructor: "New"},
		{ImportPath: "example.com/flows/imagegen"},
		{ImportPath: "  ", Constructor: "  "},
	}
	for _, cfg := range cases {
		if _, err := codegen.NewLocal(cfg); !errors.Is(err, codegen.ErrConstructorRequired) {
			t.Fatalf("NewLocal(%+v) err = %v, want %v", cfg, err, codegen.ErrConstructorRequired)
		}
	}
}

func TestAdaptersImplementInterface(t *testing.T) {
	modal, err := codegen.NewModal(codegen.ModalConfig{StubName: "x"})
	if err != nil {
		t.Fatalf("modal: %v", err)
	}
	local, err := codegen.NewLocal(codegen.LocalConfig{ImportPath: "a", Constructor: "New"})
	if err != nil {
		t.Fatalf("local: %v", err)
	}
	for _, adapter := range []codegen.Adapter{modal, local} {
		if adapter == nil {
			t.Fatal("nil adapter")
		}
	}
}
