// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Veecle GmbH
// Source: github.com/veecle/pxbindgen

package pxbindgen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

// edit is one pending comment insertion into the bindings text.
type edit struct {
	offset int
	text   string
}

// matchPattern compiles the declaration scan pattern for the match prefix.
// Only line-anchored declarations count, so comment text never matches.
func (c *Config) matchPattern() *regexp.Regexp {
	return regexp.MustCompile(`(?m)^func\s+(` + regexp.QuoteMeta(c.Match) + `[a-zA-Z0-9_]*)\s*\(`)
}

// InjectDocs inserts rendered doc comments above every declaration whose
// name matches the configured pattern.
//
// Offsets are collected against the unmodified source and the insertions are
// applied from the last match backwards, so earlier edits never invalidate
// later offsets. Functions without a description file stay untouched, while
// unreadable or malformed descriptions leave an inline diagnostic comment.
func InjectDocs(src []byte, cfg *Config) []byte {
	matches := cfg.matchPattern().FindAllSubmatchIndex(src, -1)
	if len(matches) == 0 {
		return src
	}

	registry := NewRegistry(cfg.SafeFunctions)
	rendered := make(map[string]string, len(matches))
	edits := make([]edit, 0, len(matches))

	for _, match := range matches {
		name := string(src[match[2]:match[3]])
		text, ok := rendered[name]
		if !ok {
			text = renderFunctionDoc(cfg, registry, name)
			rendered[name] = text
		}

		if text == "" {
			continue
		}

		edits = append(edits, edit{offset: lineStart(src, match[0]), text: text})
	}

	out := slices.Clone(src)
	for index := len(edits) - 1; index >= 0; index-- {
		out = slices.Insert(out, edits[index].offset, []byte(edits[index].text)...)
	}

	return out
}

// renderFunctionDoc renders the full comment block owed to one function name.
func renderFunctionDoc(cfg *Config, registry *Registry, name string) string {
	path := filepath.Join(cfg.Corpus, name+".json")
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return ""
	}

	var doc string
	if err != nil {
		doc = diagnosticComment(path, fmt.Errorf("%w: %w", ErrReadDoc, err))
	} else if api, parseErr := ParseAPIDescription(data, cfg.Platforms); parseErr != nil {
		doc = diagnosticComment(path, parseErr)
	} else {
		doc = RenderDocComment(api)
	}

	if entry, ok := registry.Lookup(name); ok {
		doc += SafetyReasoningBlock(entry.Reasoning)
	}

	return doc
}

// diagnosticComment renders one description failure as a single comment line.
func diagnosticComment(path string, err error) string {
	detail := strings.TrimSpace(strings.ReplaceAll(err.Error(), "\n", "; "))
	return fmt.Sprintf("// cannot render %s: %s\n", filepath.Base(path), detail)
}

// lineStart returns the offset of the first byte of the line holding offset.
func lineStart(src []byte, offset int) int {
	if index := bytes.LastIndexByte(src[:offset], '\n'); index >= 0 {
		return index + 1
	}

	return 0
}
