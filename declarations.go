// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Veecle GmbH
// Source: github.com/veecle/pxbindgen

package pxbindgen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
)

// DeclKind tags the declaration classes the wrapper synthesizer distinguishes.
type DeclKind int

const (
	// DeclOther covers declarations the wrapper synthesizer ignores.
	DeclOther DeclKind = iota
	// DeclForeignFunc is a body-less function declaration linked from the kernel.
	DeclForeignFunc
)

// Param is one named parameter of a foreign function declaration.
type Param struct {
	Name string
	Type string
}

// ForeignFunc models one body-less function declaration of the bindings.
type ForeignFunc struct {
	// Name is the declared function name.
	Name string
	// Params carries parameters in declaration order with verbatim type text.
	Params []Param
	// Result is the verbatim result list text, empty for no results.
	Result string
	// Incomplete marks declarations whose parameters cannot be forwarded.
	Incomplete bool
}

// Declaration is one top-level declaration of the generated bindings.
type Declaration struct {
	Kind    DeclKind
	Foreign *ForeignFunc
}

// ParseDeclarations parses bindings source and classifies its top-level
// declarations in source order.
func ParseDeclarations(src []byte) ([]Declaration, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "bindings.go", src, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseBindings, err)
	}

	decls := make([]Declaration, 0, len(file.Decls))
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Body != nil || fn.Recv != nil {
			decls = append(decls, Declaration{Kind: DeclOther})
			continue
		}

		decls = append(decls, Declaration{
			Kind:    DeclForeignFunc,
			Foreign: modelForeignFunc(fset, src, fn),
		})
	}

	return decls, nil
}

// modelForeignFunc extracts name, parameter and result text from one declaration.
func modelForeignFunc(fset *token.FileSet, src []byte, fn *ast.FuncDecl) *ForeignFunc {
	foreign := &ForeignFunc{Name: fn.Name.Name}

	if fn.Type.Params != nil {
		for _, field := range fn.Type.Params.List {
			typeText := nodeText(fset, src, field.Type)
			if len(field.Names) == 0 {
				foreign.Incomplete = true
				continue
			}

			for _, name := range field.Names {
				if name.Name == "_" {
					foreign.Incomplete = true
					continue
				}

				foreign.Params = append(foreign.Params, Param{Name: name.Name, Type: typeText})
			}
		}
	}

	if fn.Type.Results != nil && len(fn.Type.Results.List) > 0 {
		foreign.Result = nodeText(fset, src, fn.Type.Results)
	}

	return foreign
}

// nodeText slices the verbatim source text behind one syntax node.
func nodeText(fset *token.FileSet, src []byte, node ast.Node) string {
	start := fset.Position(node.Pos()).Offset
	end := fset.Position(node.End()).Offset
	return string(src[start:end])
}
