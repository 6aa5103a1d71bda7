// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Veecle GmbH
// Source: github.com/veecle/pxbindgen

package pxbindgen

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/tools/imports"
)

// defaultArtifactName names the artifact when config leaves output empty.
const defaultArtifactName = "bindings_gen.go"

// GenerateResult carries the formatted artifact and non-fatal findings.
type GenerateResult struct {
	// Output is the formatted bindings artifact.
	Output []byte
	// Warnings lists declarations skipped during wrapper synthesis.
	Warnings []string
}

// Generate runs the full post-processing pipeline: obtain bindings source,
// synthesize safe wrappers, inject documentation and format the artifact.
func Generate(cfg *Config) (*GenerateResult, error) {
	src, err := loadBindings(cfg)
	if err != nil {
		return nil, err
	}

	decls, err := ParseDeclarations(src)
	if err != nil {
		return nil, err
	}

	wrappers, warnings := SynthesizeWrappers(decls, cfg)
	injected := InjectDocs([]byte(ensureTrailingNewline(string(src))+wrappers), cfg)

	formatted, err := imports.Process(cfg.artifactName(), injected, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormatOutput, err)
	}

	return &GenerateResult{Output: formatted, Warnings: warnings}, nil
}

// loadBindings returns bindings source from the configured file or generator.
func loadBindings(cfg *Config) ([]byte, error) {
	hasFile := strings.TrimSpace(cfg.Bindings) != ""
	hasGenerator := len(cfg.Generator.Command) > 0

	switch {
	case hasFile && hasGenerator:
		return nil, fmt.Errorf("%w: both bindings file and generator command are set", ErrInvalidConfig)
	case hasFile:
		data, err := os.ReadFile(cfg.Bindings)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadBindings, err)
		}

		return data, nil
	case hasGenerator:
		return runGenerator(cfg.Generator)
	default:
		return nil, fmt.Errorf("%w: no bindings file or generator command set", ErrInvalidConfig)
	}
}

// runGenerator executes the bindings generator and captures its stdout.
func runGenerator(generator GeneratorConfig) ([]byte, error) {
	command := exec.Command(generator.Command[0], generator.Command[1:]...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}

		return nil, fmt.Errorf("%w: %s: %s", ErrRunGenerator, strings.Join(generator.Command, " "), detail)
	}

	return stdout.Bytes(), nil
}

// artifactName returns the artifact file name used during formatting.
func (c *Config) artifactName() string {
	if strings.TrimSpace(c.Output) == "" {
		return defaultArtifactName
	}

	return c.Output
}
