// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Veecle GmbH
// Source: github.com/veecle/pxbindgen

package pxbindgen

import (
	"fmt"
	"strings"
)

// Registry resolves audited kernel functions by their unprefixed name.
type Registry struct {
	functions []SafeFunction
	byName    map[string]int
}

// NewRegistry builds a lookup registry preserving declaration order.
func NewRegistry(functions []SafeFunction) *Registry {
	registry := &Registry{
		functions: functions,
		byName:    make(map[string]int, len(functions)),
	}
	for index, function := range functions {
		registry.byName[function.Name] = index
	}

	return registry
}

// Lookup returns the registry entry for an unprefixed function name.
func (r *Registry) Lookup(name string) (SafeFunction, bool) {
	index, ok := r.byName[name]
	if !ok {
		return SafeFunction{}, false
	}

	return r.functions[index], true
}

// Functions returns registry entries in declaration order.
func (r *Registry) Functions() []SafeFunction {
	return r.functions
}

// SynthesizeWrappers emits one forwarding function per prefix-renamed
// declaration listed in the audited function registry.
//
// Declarations without the rename prefix and prefixed names missing from the
// registry are skipped silently. Registered declarations whose parameters
// cannot be forwarded are skipped with a warning.
func SynthesizeWrappers(decls []Declaration, cfg *Config) (string, []string) {
	registry := NewRegistry(cfg.SafeFunctions)

	var out strings.Builder
	var warnings []string
	for _, decl := range decls {
		if decl.Kind != DeclForeignFunc {
			continue
		}

		foreign := decl.Foreign
		name, ok := strings.CutPrefix(foreign.Name, cfg.Prefix)
		if !ok {
			continue
		}

		if _, ok := registry.Lookup(name); !ok {
			continue
		}

		if foreign.Incomplete {
			warnings = append(warnings, fmt.Sprintf("skipping wrapper for %s: parameters cannot be forwarded", foreign.Name))
			continue
		}

		out.WriteString("\n")
		writeWrapper(&out, name, foreign)
	}

	return out.String(), warnings
}

// writeWrapper emits one 1:1 forwarding function in canonical formatting.
func writeWrapper(out *strings.Builder, name string, foreign *ForeignFunc) {
	params := make([]string, 0, len(foreign.Params))
	args := make([]string, 0, len(foreign.Params))
	for _, param := range foreign.Params {
		params = append(params, param.Name+" "+param.Type)
		if strings.HasPrefix(param.Type, "...") {
			args = append(args, param.Name+"...")
		} else {
			args = append(args, param.Name)
		}
	}

	fmt.Fprintf(out, "func %s(%s)", name, strings.Join(params, ", "))
	if foreign.Result != "" {
		out.WriteString(" " + foreign.Result)
	}

	out.WriteString(" {\n\t")
	if foreign.Result != "" {
		out.WriteString("return ")
	}

	fmt.Fprintf(out, "%s(%s)\n}\n", foreign.Name, strings.Join(args, ", "))
}
