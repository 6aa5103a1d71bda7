// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Veecle GmbH
// Source: github.com/veecle/pxbindgen

package pxbindgen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Platforms selects the documentation variant kept during normalization.
type Platforms struct {
	// Primary is the platform tag whose content survives flattening.
	Primary string `yaml:"primary"`
	// Others are recognized platform tags with no content for the primary target.
	Others []string `yaml:"others"`
}

// DefaultPlatforms returns the PXROS-HR TriCore TC23 variant selection.
func DefaultPlatforms() Platforms {
	return Platforms{Primary: "TC23", Others: []string{"ARM-CMX"}}
}

// variantFields lists description fields that may carry per-platform variant objects.
var variantFields = []string{"synopsis", "arguments", "appliesTo", "errCodes", "usage"}

// conditionFields lists conditions-of-use fields that may carry per-platform variant objects.
var conditionFields = []string{"BeforeCall", "AfterCall", "BestPractice"}

// NormalizeDoc returns a copy of an API description with per-platform
// variants flattened to the primary platform. Already flat documents pass
// through unchanged, so normalization is idempotent.
func NormalizeDoc(doc map[string]any, platforms Platforms) map[string]any {
	out := asMap(cloneDocValue(doc))
	if out == nil {
		return nil
	}

	for _, field := range variantFields {
		flattenVariants(out, field, platforms)
	}

	mergeLongDescription(out, platforms)

	if cop := asMap(out["cop"]); cop != nil {
		for _, field := range conditionFields {
			flattenVariants(cop, field, platforms)
		}
	}

	return out
}

// NormalizeJSON decodes, normalizes and pretty-prints an API description document.
func NormalizeJSON(data []byte, platforms Platforms) ([]byte, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseDoc, err)
	}

	return marshalDocJSON(NormalizeDoc(doc, platforms))
}

// flattenVariants reduces a platform-keyed field in place to the primary platform content.
//
// The field is rewritten only when its value is a non-empty array whose first
// element is an object: primary-tagged arrays replace the field as-is,
// primary-tagged strings become single-element arrays, and elements tagged
// only for other platforms leave an empty array behind. Everything else is
// left untouched.
func flattenVariants(object map[string]any, field string, platforms Platforms) {
	items := asSlice(object[field])
	if len(items) == 0 {
		return
	}

	first := asMap(items[0])
	if first == nil {
		return
	}

	if value, ok := first[platforms.Primary]; ok {
		switch typed := value.(type) {
		case []any:
			object[field] = typed
			return
		case string:
			object[field] = []any{typed}
			return
		}
	}

	for _, tag := range platforms.Others {
		if _, ok := first[tag]; ok {
			object[field] = []any{}
			return
		}
	}
}

// mergeLongDescription folds the long description blocks into one paragraph block.
//
// Paragraph blocks contribute their text wrapped in line breaks, bullet-list
// blocks contribute one " * " line per item, and unknown block types are
// dropped. The merged text replaces the block list as a single "PP" entry.
func mergeLongDescription(doc map[string]any, platforms Platforms) {
	description := asMap(doc["description"])
	if description == nil {
		return
	}

	blocks := asSlice(description["long"])
	if blocks == nil {
		return
	}

	var merged strings.Builder
	for _, raw := range blocks {
		block := asMap(raw)
		if block == nil {
			continue
		}

		switch asString(block["type"]) {
		case "PP":
			if variant, ok := block[platforms.Primary].([]any); ok {
				for _, item := range variant {
					if text, ok := item.(string); ok {
						fmt.Fprintf(&merged, "\n%s\n", text)
					}
				}
			} else if text, ok := block["text"].(string); ok {
				fmt.Fprintf(&merged, "\n%s\n", text)
			}
		case "BL":
			if variant, ok := block[platforms.Primary].([]any); ok {
				for _, item := range variant {
					if text, ok := item.(string); ok {
						fmt.Fprintf(&merged, "\n * %s", text)
					}
				}
			} else if bullets, ok := block["text"].([]any); ok {
				for _, item := range bullets {
					if text, ok := item.(string); ok {
						fmt.Fprintf(&merged, "\n * %s", text)
					}
				}

				merged.WriteByte('\n')
			}
		}
	}

	description["long"] = []any{map[string]any{
		"type": "PP",
		"text": strings.TrimSpace(merged.String()),
	}}
}

// marshalDocJSON serializes a description document as pretty JSON.
func marshalDocJSON(doc map[string]any) ([]byte, error) {
	var out bytes.Buffer
	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeDoc, err)
	}

	return out.Bytes(), nil
}
