// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Veecle GmbH
// Source: github.com/veecle/pxbindgen

package pxbindgen

import (
	"fmt"
	"strings"
)

const (
	// ScaffoldModeFull builds a description with every optional section.
	ScaffoldModeFull ScaffoldMode = "full"
	// ScaffoldModeRequired builds a description with mandatory fields only.
	ScaffoldModeRequired ScaffoldMode = "required"
)

// ScaffoldMode configures scaffold section coverage.
type ScaffoldMode string

// ScaffoldDoc builds a starter API description document for one kernel
// service, ready to be dropped into the corpus as <name>.json and edited.
//
// The document always carries the mandatory fields, so it parses and renders
// as-is; full mode adds every optional section with placeholder content.
func ScaffoldDoc(name string, mode ScaffoldMode) ([]byte, error) {
	mode, err := normalizeScaffoldMode(mode)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrScaffoldFunctionName
	}

	doc := map[string]any{
		"name": map[string]any{
			"key":     name,
			"display": name,
		},
		"appliesTo": []any{"Task"},
		"description": map[string]any{
			"short": "<one-line summary>.",
		},
	}

	if mode == ScaffoldModeFull {
		doc["synopsis"] = []any{fmt.Sprintf("void %s (void);", name)}
		doc["arguments"] = []any{map[string]any{
			"name":        "<ArgName>",
			"description": "<argument description>.",
		}}
		doc["retValues"] = []any{"<return value description>."}
		doc["errCodes"] = []any{"PXERR_CODE <error description>."}
		doc["seeAlso"] = []any{map[string]any{
			"key":     "<FunctionKey>",
			"display": "<FunctionName>",
		}}
		doc["usage"] = []any{fmt.Sprintf("%s();", name)}
		doc["cop"] = map[string]any{
			"BeforeCall":   []any{"<condition checked before the call>."},
			"AfterCall":    []any{"<condition holding after the call>."},
			"BestPractice": []any{"<recommended usage>."},
		}

		description := asMap(doc["description"])
		description["long"] = []any{map[string]any{
			"type": "PP",
			"text": "<first paragraph of the long description>.",
		}}
	}

	return marshalDocJSON(doc)
}

// normalizeScaffoldMode validates and normalizes caller mode value.
func normalizeScaffoldMode(mode ScaffoldMode) (ScaffoldMode, error) {
	normalized := ScaffoldMode(strings.ToLower(strings.TrimSpace(string(mode))))
	switch normalized {
	case ScaffoldModeFull, ScaffoldModeRequired:
		return normalized, nil
	case "":
		return ScaffoldModeFull, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownScaffoldMode, mode)
	}
}
