// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Veecle GmbH
// Source: github.com/veecle/pxbindgen

package pxbindgen

import (
	"os"
	"path/filepath"
	"strings"
)

// CoverageRow describes documentation and wrapper status of one kernel service.
type CoverageRow struct {
	// Function is the unprefixed service name.
	Function string
	// Documented reports whether the corpus holds a description file.
	Documented bool
	// Wrapped reports whether a safe wrapper is synthesized for the name.
	Wrapped bool
	// Declared reports whether the name appears in the processed bindings.
	Declared bool
}

// Coverage summarizes documentation and wrapper status of one bindings run.
type Coverage struct {
	// Rows lists processed bindings names first, then registry entries
	// missing from the bindings.
	Rows []CoverageRow
	// Warnings lists declarations skipped during wrapper synthesis.
	Warnings []string
}

// BuildCoverage reports documentation and wrapper status for the configured
// bindings without writing an artifact.
func BuildCoverage(cfg *Config) (*Coverage, error) {
	src, err := loadBindings(cfg)
	if err != nil {
		return nil, err
	}

	decls, err := ParseDeclarations(src)
	if err != nil {
		return nil, err
	}

	wrappers, warnings := SynthesizeWrappers(decls, cfg)
	combined := []byte(ensureTrailingNewline(string(src)) + wrappers)

	registry := NewRegistry(cfg.SafeFunctions)
	wrapped := wrappedNames(decls, registry, cfg.Prefix)

	rows := make([]CoverageRow, 0, 16)
	seen := make(map[string]bool, 16)
	for _, match := range cfg.matchPattern().FindAllSubmatchIndex(combined, -1) {
		name := string(combined[match[2]:match[3]])
		if seen[name] {
			continue
		}

		seen[name] = true
		rows = append(rows, CoverageRow{
			Function:   name,
			Documented: documented(cfg.Corpus, name),
			Wrapped:    wrapped[name],
			Declared:   true,
		})
	}

	for _, function := range registry.Functions() {
		if seen[function.Name] {
			continue
		}

		rows = append(rows, CoverageRow{
			Function:   function.Name,
			Documented: documented(cfg.Corpus, function.Name),
		})
	}

	return &Coverage{Rows: rows, Warnings: warnings}, nil
}

// wrappedNames collects unprefixed names that receive a synthesized wrapper.
func wrappedNames(decls []Declaration, registry *Registry, prefix string) map[string]bool {
	wrapped := make(map[string]bool, len(decls))
	for _, decl := range decls {
		if decl.Kind != DeclForeignFunc || decl.Foreign.Incomplete {
			continue
		}

		name, ok := strings.CutPrefix(decl.Foreign.Name, prefix)
		if !ok {
			continue
		}

		if _, ok := registry.Lookup(name); ok {
			wrapped[name] = true
		}
	}

	return wrapped
}

// documented reports whether the corpus holds a description file for the name.
func documented(corpus, name string) bool {
	info, err := os.Stat(filepath.Join(corpus, name+".json"))
	return err == nil && !info.IsDir()
}
