// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Veecle GmbH
// Source: github.com/veecle/pxbindgen

package pxbindgen

import (
	"regexp"
	"strings"
)

// literalPattern matches upper-case identifiers treated as code literals.
var literalPattern = regexp.MustCompile(`\b[A-Z_]+\b`)

// synopsisArgsPattern captures the argument list of a C prototype.
var synopsisArgsPattern = regexp.MustCompile(`\(([^)]*)\)`)

// normalizeBreaks joins interior line breaks of one text entry into spaces.
//
// Entries that start or end with a line break keep all breaks verbatim,
// matching the preformatted condition lines found in the corpus.
func normalizeBreaks(text string) string {
	if strings.HasPrefix(text, "\n") || strings.HasSuffix(text, "\n") {
		return text
	}

	return strings.ReplaceAll(text, "\n", " ")
}

// wrapLiterals wraps upper-case error code literals in backticks.
func wrapLiterals(text string) string {
	return literalPattern.ReplaceAllString(text, "`$0`")
}

// translateSynopsis rewrites one C prototype entry as a Go-style pseudo-signature.
//
// Entries with fewer than two whitespace-separated tokens pass through
// unchanged. Parameters keep their C type text after the name, "void"
// argument lists and return types are dropped, and arguments that do not
// split into two or three tokens are omitted.
func translateSynopsis(entry string) string {
	trimmed := strings.TrimSpace(entry)
	tokens := strings.Fields(trimmed)
	if len(tokens) < 2 {
		return trimmed
	}

	returnType := tokens[0]
	name, _, _ := strings.Cut(tokens[1], "(")

	params := make([]string, 0, 4)
	if match := synopsisArgsPattern.FindStringSubmatch(trimmed); match != nil {
		params = appendSynopsisParams(params, match[1])
	}

	var signature strings.Builder
	signature.WriteString("func ")
	signature.WriteString(name)
	signature.WriteString("(")
	signature.WriteString(strings.Join(params, ", "))
	signature.WriteString(")")

	if returnType != "void" {
		signature.WriteString(" -> ")
		signature.WriteString(returnType)
	}

	return signature.String()
}

// appendSynopsisParams converts raw C argument text into name: type parameter entries.
func appendSynopsisParams(params []string, raw string) []string {
	args := make([]string, 0, 4)
	for _, arg := range strings.Split(raw, ",") {
		arg = strings.TrimSpace(arg)
		if arg != "" {
			args = append(args, arg)
		}
	}

	if len(args) == 0 || args[0] == "void" {
		return params
	}

	for _, arg := range args {
		tokens := strings.Fields(arg)
		switch len(tokens) {
		case 2:
			params = append(params, tokens[1]+": "+tokens[0])
		case 3:
			params = append(params, tokens[2]+": "+tokens[0]+" "+tokens[1])
		}
	}

	return params
}

// normalizeLineEndings converts CRLF/CR to LF.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text
}

// ensureTrailingNewline guarantees exactly one trailing newline in output.
func ensureTrailingNewline(value string) string {
	value = strings.TrimRight(value, "\n")
	return value + "\n"
}
