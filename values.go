// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Veecle GmbH
// Source: github.com/veecle/pxbindgen

package pxbindgen

// asString extracts string value or returns empty string.
func asString(value any) string {
	text, _ := value.(string)
	return text
}

// asSlice extracts slice value or returns nil.
func asSlice(value any) []any {
	items, _ := value.([]any)
	return items
}

// asMap extracts object value or returns nil.
func asMap(value any) map[string]any {
	object, _ := value.(map[string]any)
	return object
}

// cloneDocValue deep-copies maps and slices of a decoded description document.
func cloneDocValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[key] = cloneDocValue(item)
		}

		return out
	case []any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			out = append(out, cloneDocValue(item))
		}

		return out
	default:
		return typed
	}
}
