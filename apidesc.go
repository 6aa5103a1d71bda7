// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Veecle GmbH
// Source: github.com/veecle/pxbindgen

package pxbindgen

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// APIDescription is one normalized PXROS kernel service description.
type APIDescription struct {
	Name        NameRef          `mapstructure:"name"`
	Synopsis    []string         `mapstructure:"synopsis"`
	Arguments   []Argument       `mapstructure:"arguments"`
	RetValues   []string         `mapstructure:"retValues"`
	ErrCodes    []string         `mapstructure:"errCodes"`
	AppliesTo   []string         `mapstructure:"appliesTo"`
	Description Description      `mapstructure:"description"`
	SeeAlso     []NameRef        `mapstructure:"seeAlso"`
	Usage       []string         `mapstructure:"usage"`
	Cop         *ConditionsOfUse `mapstructure:"cop"`
}

// NameRef is a kernel service reference carrying lookup key and display name.
type NameRef struct {
	Key     string `mapstructure:"key"`
	Display string `mapstructure:"display"`
}

// Argument describes one documented service parameter.
type Argument struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
}

// Description holds the one-line summary and the merged long description.
type Description struct {
	Short string     `mapstructure:"short"`
	Long  []DocBlock `mapstructure:"long"`
}

// DocBlock is one typed block of long description text.
type DocBlock struct {
	Type string `mapstructure:"type"`
	Text string `mapstructure:"text"`
}

// ConditionsOfUse lists usage constraints around a kernel call.
type ConditionsOfUse struct {
	BeforeCall   []string `mapstructure:"BeforeCall"`
	AfterCall    []string `mapstructure:"AfterCall"`
	BestPractice []string `mapstructure:"BestPractice"`
}

// ParseAPIDescription decodes raw description JSON, normalizes platform
// variants and maps the result onto the typed model.
func ParseAPIDescription(data []byte, platforms Platforms) (*APIDescription, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseDoc, err)
	}

	return decodeDescription(NormalizeDoc(doc, platforms))
}

// decodeDescription maps a normalized document onto APIDescription and validates it.
func decodeDescription(doc map[string]any) (*APIDescription, error) {
	var api APIDescription
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: &api})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseDoc, err)
	}

	if err := decoder.Decode(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseDoc, err)
	}

	if api.Description.Short == "" {
		return nil, fmt.Errorf("%w: missing description.short", ErrParseDoc)
	}

	if api.AppliesTo == nil {
		return nil, fmt.Errorf("%w: missing appliesTo", ErrParseDoc)
	}

	return &api, nil
}
