// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Veecle GmbH
// Source: github.com/veecle/pxbindgen

package pxbindgen

import "errors"

var (
	// ErrReadConfig is returned when config file loading fails.
	ErrReadConfig = errors.New("read config file")
	// ErrInvalidConfig is returned when config content fails validation.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrRunGenerator is returned when the bindings generator command fails.
	ErrRunGenerator = errors.New("run bindings generator")
	// ErrReadBindings is returned when bindings file loading fails.
	ErrReadBindings = errors.New("read bindings file")
	// ErrParseBindings is returned when generated bindings source parsing fails.
	ErrParseBindings = errors.New("parse bindings source")
	// ErrFormatOutput is returned when the final artifact fails to format.
	ErrFormatOutput = errors.New("format output")
	// ErrReadDoc is returned when an API description file loading fails.
	ErrReadDoc = errors.New("read api description")
	// ErrParseDoc is returned when API description JSON decoding fails.
	ErrParseDoc = errors.New("parse api description")
	// ErrEncodeDoc is returned when normalized API description encoding fails.
	ErrEncodeDoc = errors.New("encode api description")
	// ErrUnknownScaffoldMode is returned when scaffold mode is not supported.
	ErrUnknownScaffoldMode = errors.New("unknown scaffold mode")
	// ErrScaffoldFunctionName is returned when scaffold function name is empty.
	ErrScaffoldFunctionName = errors.New("scaffold function name is empty")
)
