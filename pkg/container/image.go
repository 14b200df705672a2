// Package container assembles the Dockerfile a deployment adapter ships with
// a workflow. It is pure text assembly; nothing here builds or runs images.
package container

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrBaseImageRequired reports a build without a base image.
var ErrBaseImageRequired = errors.New("container: base image is required")

type layer struct {
	instruction string
	args        string
}

// Image accumulates Dockerfile layers in declaration order. The zero value
// is not usable; start from FromRegistry or DebianSlim.
type Image struct {
	base   string
	layers []layer
}

// FromRegistry starts an image from an arbitrary registry tag.
func FromRegistry(tag string) *Image {
	return &Image{base: strings.TrimSpace(tag)}
}

// DebianSlim starts from the slim Debian Python image commonly used for
// generative workloads. An empty version falls back to 3.11.
func DebianSlim(pythonVersion string) *Image {
	version := strings.TrimSpace(pythonVersion)
	if version == "" {
		version = "3.11"
	}
	return FromRegistry(fmt.Sprintf("python:%s-slim-bookworm", version))
}

// AptInstall appends an apt-get install layer.
func (i *Image) AptInstall(packages ...string) *Image {
	if len(packages) == 0 {
		return i
	}
	i.layers = append(i.layers, layer{
		instruction: "RUN",
		args: "apt-get update && apt-get install -y --no-install-recommends " +
			strings.Join(packages, " ") + " && rm -rf /var/lib/apt/lists/*",
	})
	return i
}

// PipInstall appends a pip install layer.
func (i *Image) PipInstall(packages ...string) *Image {
	if len(packages) == 0 {
		return i
	}
	i.layers = append(i.layers, layer{
		instruction: "RUN",
		args:        "pip install --no-cache-dir " + strings.Join(packages, " "),
	})
	return i
}

// RunCommands appends one RUN layer per command.
func (i *Image) RunCommands(commands ...string) *Image {
	for _, command := range commands {
		command = strings.TrimSpace(command)
		if command == "" {
			continue
		}
		i.layers = append(i.layers, layer{instruction: "RUN", args: command})
	}
	return i
}

// Env appends ENV layers, sorted by key so output is deterministic.
func (i *Image) Env(vars map[string]string) *Image {
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		i.layers = append(i.layers, layer{
			instruction: "ENV",
			args:        fmt.Sprintf("%s=%q", key, vars[key]),
		})
	}
	return i
}

// Workdir appends a WORKDIR layer.
func (i *Image) Workdir(path string) *Image {
	i.layers = append(i.layers, layer{instruction: "WORKDIR", args: path})
	return i
}

// Copy appends a COPY layer.
func (i *Image) Copy(src, dst string) *Image {
	i.layers = append(i.layers, layer{instruction: "COPY", args: src + " " + dst})
	return i
}

// Dockerfile renders the accumulated layers.
func (i *Image) Dockerfile() (string, error) {
	if i == nil || i.base == "" {
		return "", ErrBaseImageRequired
	}
	var b strings.Builder
	fmt.Fprintf(&b, "FROM %s\n", i.base)
	for _, l := range i.layers {
		fmt.Fprintf(&b, "%s %s\n", l.instruction, l.args)
	}
	return b.String(), nil
}
