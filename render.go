// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Veecle GmbH
// Source: github.com/veecle/pxbindgen

package pxbindgen

import (
	"fmt"
	"os"
	"strings"
)

// commentWriter accumulates line comment text for one rendered doc block.
type commentWriter struct {
	lines []string
}

// write appends text as comment lines, splitting embedded line breaks.
func (w *commentWriter) write(text string) {
	for _, line := range strings.Split(normalizeLineEndings(text), "\n") {
		w.writeLine(line)
	}
}

// writeLine appends one comment line, collapsing repeated blank comment lines.
func (w *commentWriter) writeLine(line string) {
	line = strings.TrimRight("// "+line, " \t")
	if line == "//" && len(w.lines) > 0 && w.lines[len(w.lines)-1] == "//" {
		return
	}

	w.lines = append(w.lines, line)
}

// blank appends one blank comment line.
func (w *commentWriter) blank() {
	w.writeLine("")
}

// section appends a blank separator followed by a "###" section title.
func (w *commentWriter) section(title string) {
	w.blank()
	w.writeLine("### " + title)
}

// listSection appends a section whose items render as bullet lines.
func (w *commentWriter) listSection(title string, items []string, literal bool) {
	w.section(title)
	for _, item := range items {
		if literal {
			item = wrapLiterals(item)
		}

		w.write("* " + item)
	}
}

// conditionLines appends one conditions-of-use subsection when it has content.
func (w *commentWriter) conditionLines(title string, lines []string) {
	if len(lines) == 0 {
		return
	}

	w.writeLine(title)
	for _, line := range lines {
		w.write(normalizeBreaks(line))
	}
}

// codeSection appends a fenced C code section with tabs flattened to spaces.
func (w *commentWriter) codeSection(title string, lines []string) {
	w.section(title)
	w.writeLine("```c")
	for _, line := range lines {
		w.write(strings.ReplaceAll(line, "\t", " "))
	}

	w.writeLine("```")
}

// String returns the accumulated comment block terminated by one newline.
func (w *commentWriter) String() string {
	lines := w.lines
	for len(lines) > 0 && lines[len(lines)-1] == "//" {
		lines = lines[:len(lines)-1]
	}

	if len(lines) == 0 {
		return ""
	}

	return strings.Join(lines, "\n") + "\n"
}

// RenderDocFile reads one API description file and renders its comment block.
func RenderDocFile(path string, platforms Platforms) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadDoc, err)
	}

	api, err := ParseAPIDescription(data, platforms)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	return RenderDocComment(api), nil
}

// RenderDocComment renders one API description as a line comment block.
//
// Sections come out in fixed order: short description, long description,
// Applies To, Synopsis, Arguments, Return Values, Error Codes, Conditions of
// Use, See Also and Usage. Absent or empty fields emit nothing.
func RenderDocComment(api *APIDescription) string {
	var w commentWriter

	w.write(api.Description.Short)
	for _, block := range api.Description.Long {
		if block.Text == "" {
			continue
		}

		w.blank()
		w.write(block.Text)
	}

	if len(api.AppliesTo) > 0 {
		w.listSection("Applies To", api.AppliesTo, false)
	}

	if len(api.Synopsis) > 0 {
		w.section("Synopsis")
		for _, entry := range api.Synopsis {
			w.write(translateSynopsis(entry))
		}
	}

	if len(api.Arguments) > 0 {
		w.section("Arguments")
		for _, arg := range api.Arguments {
			w.write(fmt.Sprintf("* `%s`: %s", arg.Name, arg.Description))
		}
	}

	if len(api.RetValues) > 0 {
		w.listSection("Return Values", api.RetValues, false)
	}

	if len(api.ErrCodes) > 0 {
		w.listSection("Error Codes", api.ErrCodes, true)
	}

	if api.Cop != nil {
		w.section("Conditions of Use")
		w.conditionLines("#### Before Call", api.Cop.BeforeCall)
		w.conditionLines("#### After Call", api.Cop.AfterCall)
		w.conditionLines("### Best Practice", api.Cop.BestPractice)
	}

	if len(api.SeeAlso) > 0 {
		w.section("See Also")
		for _, ref := range api.SeeAlso {
			w.write("* " + ref.Display)
		}
	}

	if len(api.Usage) > 0 {
		w.codeSection("Usage", api.Usage)
	}

	return w.String()
}

// SafetyReasoningBlock renders registry reasoning lines as a comment block
// separated from the preceding description by one blank comment line.
func SafetyReasoningBlock(reasoning []string) string {
	var w commentWriter

	w.blank()
	w.writeLine("### Safety reasoning:")
	for _, line := range reasoning {
		w.write(line)
	}

	return w.String()
}
