// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Veecle GmbH
// Source: github.com/veecle/pxbindgen

package pxbindgen

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultCorpusDir is used when config does not set a description corpus.
	DefaultCorpusDir = "./api-src"
	// DefaultPrefix is the rename prefix carried by wrapper candidates.
	DefaultPrefix = "__"
	// DefaultMatch is the name prefix of documented kernel services.
	DefaultMatch = "Px"
)

//go:embed examples/pxbindgen.yaml
var exampleConfig string

// ExampleConfig returns a complete annotated configuration example with the
// PXROS-HR wrapper registry filled in.
func ExampleConfig() string {
	return exampleConfig
}

// GeneratorConfig describes the external command producing bindings source.
type GeneratorConfig struct {
	// Command is the generator argv; stdout must carry the bindings source.
	Command []string `yaml:"command"`
}

// SafeFunction is one audited kernel service eligible for a safe wrapper.
type SafeFunction struct {
	// Name is the service name without the rename prefix.
	Name string `yaml:"name"`
	// Reasoning lines explain why the 1:1 wrapper is sound.
	Reasoning []string `yaml:"reasoning"`
}

// Config drives one post-processing run.
type Config struct {
	// Generator produces bindings source when no bindings file is set.
	Generator GeneratorConfig `yaml:"generator"`
	// Bindings is a pre-generated bindings source file path.
	Bindings string `yaml:"bindings"`
	// Corpus is the directory holding one <name>.json description per service.
	Corpus string `yaml:"corpus"`
	// Output is the artifact path, stdout when empty.
	Output string `yaml:"output"`
	// Prefix is the rename prefix of wrapper candidate declarations.
	Prefix string `yaml:"prefix"`
	// Match is the name prefix of declarations owed documentation.
	Match string `yaml:"match"`
	// Platforms selects the documentation variant to keep.
	Platforms Platforms `yaml:"platforms"`
	// SafeFunctions is the audited wrapper registry.
	SafeFunctions []SafeFunction `yaml:"safe_functions"`
}

// DefaultConfig returns a config with PXROS-HR defaults and an empty registry.
func DefaultConfig() *Config {
	return &Config{
		Corpus:    DefaultCorpusDir,
		Prefix:    DefaultPrefix,
		Match:     DefaultMatch,
		Platforms: DefaultPlatforms(),
	}
}

// LoadConfig reads one YAML config file, fills defaults and validates it.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadConfig, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the structural invariants shared by all commands.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Corpus) == "" {
		return fmt.Errorf("%w: corpus directory is empty", ErrInvalidConfig)
	}

	if len(c.Prefix) != 2 {
		return fmt.Errorf("%w: rename prefix %q must be exactly two characters", ErrInvalidConfig, c.Prefix)
	}

	if c.Match == "" {
		return fmt.Errorf("%w: match prefix is empty", ErrInvalidConfig)
	}

	if strings.TrimSpace(c.Platforms.Primary) == "" {
		return fmt.Errorf("%w: primary platform is empty", ErrInvalidConfig)
	}

	seen := make(map[string]struct{}, len(c.SafeFunctions))
	for _, function := range c.SafeFunctions {
		if strings.TrimSpace(function.Name) == "" {
			return fmt.Errorf("%w: safe function with empty name", ErrInvalidConfig)
		}

		if _, ok := seen[function.Name]; ok {
			return fmt.Errorf("%w: duplicate safe function %q", ErrInvalidConfig, function.Name)
		}

		if len(function.Reasoning) == 0 {
			return fmt.Errorf("%w: safe function %q has no reasoning lines", ErrInvalidConfig, function.Name)
		}

		seen[function.Name] = struct{}{}
	}

	return nil
}
