// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Veecle GmbH
// Source: github.com/veecle/pxbindgen

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunGenerateWritesArtifactToStdout(t *testing.T) {
	t.Parallel()

	configPath := writeProjectFixture(t)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"generate", "-c", configPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "func PxGetError() PxError_t {\n\treturn __PxGetError()\n}")
	assertContains(t, stdout.String(), "// ### Safety reasoning:")
	assertContains(t, stdout.String(), "// Returns the error code of the most recent kernel call.")
	assertContains(t, stderr.String(), "warning: skipping wrapper for __PxMsgRelease")
}

func TestRunGenerateWritesArtifactToOutputFile(t *testing.T) {
	t.Parallel()

	configPath := writeProjectFixture(t)
	outPath := filepath.Join(t.TempDir(), "bindings_gen.go")
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"generate", "-c", configPath, outPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if stdout.Len() != 0 {
		t.Fatalf("stdout should be empty when output path is provided, got: %s", stdout.String())
	}

	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}

	assertContains(t, string(content), "func PxGetError() PxError_t {")
}

func TestRunGenerateUsesConfigOutputPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	outPath := filepath.Join(dir, "bindings_gen.go")
	configPath := writeProjectFixtureWithOutput(t, dir, outPath)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"generate", "-c", configPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if stdout.Len() != 0 {
		t.Fatalf("stdout should be empty when config sets output, got: %s", stdout.String())
	}

	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}

	assertContains(t, string(content), "func PxGetError() PxError_t {")
}

func TestRunGenerateReturnsErrorForMissingConfig(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"generate", "-c", filepath.Join(t.TempDir(), "missing.yaml")}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stderr.String(), "load config")
}

func TestRunRenderWritesCommentToStdout(t *testing.T) {
	t.Parallel()

	docPath := writeDescriptionFixture(t, t.TempDir())
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"render", docPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "// Returns the error code of the most recent kernel call.")
	assertContains(t, stdout.String(), "// ### Synopsis")
	assertContains(t, stdout.String(), "// func PxGetError() -> PxError_t")
}

func TestRunRenderReadsDescriptionFromStdin(t *testing.T) {
	t.Parallel()

	stdin := strings.NewReader(descriptionFixture)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runWithIO([]string{"render"}, stdin, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "// ### Applies To")
}

func TestRunRenderWritesCommentToOutputFile(t *testing.T) {
	t.Parallel()

	docPath := writeDescriptionFixture(t, t.TempDir())
	outPath := filepath.Join(t.TempDir(), "PxGetError.txt")
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"render", docPath, outPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if stdout.Len() != 0 {
		t.Fatalf("stdout should be empty when output path is provided, got: %s", stdout.String())
	}

	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read comment file: %v", err)
	}

	assertContains(t, string(content), "// ### Return Values")
}

func TestRunRenderReturnsErrorForMalformedDescription(t *testing.T) {
	t.Parallel()

	stdin := strings.NewReader(`{"name": {"key"`)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runWithIO([]string{"render"}, stdin, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stderr.String(), "render description (stdin):")
}

func TestRunRenderAppendsSafetyReasoningForRegisteredFunctions(t *testing.T) {
	t.Parallel()

	configPath := writeProjectFixture(t)
	docPath := filepath.Join(filepath.Dir(configPath), "api-src", "PxGetError.json")
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"render", "-c", configPath, docPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "// ### Safety reasoning:\n// * Takes no parameters.")
}

func TestRunNormalizeFlattensPlatformVariants(t *testing.T) {
	t.Parallel()

	stdin := strings.NewReader(`{
  "name": {"key": "PxMsgSend", "display": "PxMsgSend"},
  "appliesTo": [{"TC23": ["Task"], "ARM-CMX": ["Task", "Handler"]}],
  "description": {"short": "Sends a message."}
}`)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runWithIO([]string{"normalize"}, stdin, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), `"Task"`)
	assertNotContains(t, stdout.String(), "TC23")
	assertNotContains(t, stdout.String(), "Handler")
}

func TestRunNormalizeWritesDescriptionToOutputFile(t *testing.T) {
	t.Parallel()

	docPath := writeDescriptionFixture(t, t.TempDir())
	outPath := filepath.Join(t.TempDir(), "PxGetError.json")
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"normalize", docPath, outPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read description file: %v", err)
	}

	assertContains(t, string(content), `"key": "PxGetError"`)
}

func TestRunNormalizeReturnsErrorForEmptyStdin(t *testing.T) {
	t.Parallel()

	stdin := strings.NewReader("   ")
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runWithIO([]string{"normalize"}, stdin, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stderr.String(), "empty input")
}

func TestRunScaffoldWritesDescriptionToStdout(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"scaffold", "PxMsgSend"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), `"key": "PxMsgSend"`)
	assertContains(t, stdout.String(), `"synopsis"`)
	assertContains(t, stdout.String(), `"BestPractice"`)
}

func TestRunScaffoldRequiredModeSkipsOptionalSections(t *testing.T) {
	t.Parallel()

	outPath := filepath.Join(t.TempDir(), "PxMsgSend.json")
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"scaffold", "--mode", "required", "PxMsgSend", outPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if stdout.Len() != 0 {
		t.Fatalf("stdout should be empty when output path is provided, got: %s", stdout.String())
	}

	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read description file: %v", err)
	}

	assertContains(t, string(content), `"key": "PxMsgSend"`)
	assertNotContains(t, string(content), `"synopsis"`)
}

func TestRunScaffoldReturnsErrorForUnknownMode(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"scaffold", "--mode", "everything", "PxMsgSend"}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("expected exit code 2, got %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stderr.String(), "Invalid value")
}

func TestRunScaffoldRequiresFunctionName(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"scaffold"}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("expected exit code 2, got %d, stderr: %s", code, stderr.String())
	}
}

func TestRunReportPrintsCoverageTable(t *testing.T) {
	t.Parallel()

	configPath := writeProjectFixture(t)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"report", "-c", configPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "FUNCTION")
	assertContains(t, stdout.String(), "DOCUMENTED")
	assertContains(t, stdout.String(), "PxGetError")
	assertContains(t, stdout.String(), "PxMsgRelease")
	assertContains(t, stdout.String(), "3 functions, 1 documented, 1 wrapped")
	assertContains(t, stderr.String(), "warning: skipping wrapper for __PxMsgRelease")
}

func TestRunConfigWritesExampleToStdout(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"config"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "safe_functions:")
	assertContains(t, stdout.String(), "PxMsgSetToAwaitRel")
}

func TestRunConfigWritesExampleToOutputFile(t *testing.T) {
	t.Parallel()

	outPath := filepath.Join(t.TempDir(), "pxbindgen.yaml")
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"config", outPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if stdout.Len() != 0 {
		t.Fatalf("stdout should be empty when output path is provided, got: %s", stdout.String())
	}

	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read config file: %v", err)
	}

	assertContains(t, string(content), "prefix: \"__\"")
}

func TestRunPrintsCommandHelp(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"generate", "--help"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "Run the full post-processing pipeline.")
}

func TestRunReturnsErrorForMissingCommand(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("expected exit code 2, got %d, stderr: %s", code, stderr.String())
	}
}

const descriptionFixture = `{
  "name": {
    "key": "PxGetError",
    "display": "PxGetError"
  },
  "synopsis": [
    "PxError_t PxGetError (void);"
  ],
  "retValues": [
    "Error code of the last failed kernel call."
  ],
  "appliesTo": [
    "Task",
    "Interrupt handler"
  ],
  "description": {
    "short": "Returns the error code of the most recent kernel call."
  }
}`

const bindingsFixture = `// Code generated by px-hdr-gen. DO NOT EDIT.

package pxros

type PxError_t uint32

type PxTask_t uint32

type PxMsg_t uint32

func __PxGetError() PxError_t

func __PxMsgRelease(PxMsg_t) PxError_t

func PxTaskSignalEvents(Task PxTask_t) PxError_t
`

// writeDescriptionFixture writes one PxGetError description into dir.
func writeDescriptionFixture(t *testing.T, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "PxGetError.json")
	if err := os.WriteFile(path, []byte(descriptionFixture), 0o600); err != nil {
		t.Fatalf("write description fixture: %v", err)
	}

	return path
}

// writeProjectFixture builds bindings, corpus and config in one temp dir.
func writeProjectFixture(t *testing.T) string {
	t.Helper()

	return writeProjectFixtureWithOutput(t, t.TempDir(), "")
}

// writeProjectFixtureWithOutput builds a project fixture with an output path baked in.
func writeProjectFixtureWithOutput(t *testing.T, dir, outputPath string) string {
	t.Helper()

	bindingsPath := filepath.Join(dir, "bindings.go")
	if err := os.WriteFile(bindingsPath, []byte(bindingsFixture), 0o600); err != nil {
		t.Fatalf("write bindings fixture: %v", err)
	}

	corpusDir := filepath.Join(dir, "api-src")
	if err := os.Mkdir(corpusDir, 0o700); err != nil {
		t.Fatalf("create corpus dir: %v", err)
	}

	writeDescriptionFixture(t, corpusDir)

	config := `bindings: ` + bindingsPath + `
corpus: ` + corpusDir + `
output: "` + outputPath + `"
safe_functions:
  - name: PxGetError
    reasoning:
      - "* Takes no parameters."
      - "* Returns a plain PxError_t value."
  - name: PxMsgRelease
    reasoning:
      - "* Parameters are copied and checked by PXROS."
`

	configPath := filepath.Join(dir, "pxbindgen.yaml")
	if err := os.WriteFile(configPath, []byte(config), 0o600); err != nil {
		t.Fatalf("write config fixture: %v", err)
	}

	return configPath
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if !strings.Contains(haystack, needle) {
		t.Fatalf("missing substring %q in:\n%s", needle, haystack)
	}
}

func assertNotContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if strings.Contains(haystack, needle) {
		t.Fatalf("unexpected substring %q in:\n%s", needle, haystack)
	}
}
