// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Veecle GmbH
// Source: github.com/veecle/pxbindgen

// pxbindgen post-processes generated PXROS-HR kernel bindings.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/olekukonko/tablewriter"

	"github.com/veecle/pxbindgen"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/veecle/pxbindgen"
	_buildTime string
)

// cliOptions describes pxbindgen CLI flags and subcommands.
type cliOptions struct {
	Version   versionCommand   `command:"version" description:"Print version information"`
	Generate  generateCommand  `command:"generate" description:"Run the bindings post-processing pipeline"`
	Render    renderCommand    `command:"render" description:"Render one API description as a Go comment block"`
	Normalize normalizeCommand `command:"normalize" description:"Flatten platform variants of one API description"`
	Scaffold  scaffoldCommand  `command:"scaffold" description:"Write a starter API description for one kernel service"`
	Report    reportCommand    `command:"report" description:"Report documentation and wrapper coverage"`
	Config    configCommand    `command:"config" description:"Print an example configuration"`
}

// configFlags groups config file selection for commands that require one.
type configFlags struct {
	Path string `short:"c" long:"config" description:"Path to pxbindgen YAML config" default:"pxbindgen.yaml"`
}

// optionalConfigFlags groups config selection for commands with built-in defaults.
type optionalConfigFlags struct {
	Path string `short:"c" long:"config" description:"Path to pxbindgen YAML config (optional; built-in defaults when omitted)"`
}

// generateCommand runs the full post-processing pipeline.
type generateCommand struct {
	runner *cliRunner

	ConfigFlags configFlags `group:"Configuration"`
	Args        struct {
		Output string `positional-arg-name:"output" description:"Output artifact path (optional; config output or stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs generate subcommand.
func (command *generateCommand) Execute(_ []string) error {
	return command.runner.runGenerate(command.ConfigFlags.Path, command.Args.Output)
}

// renderCommand renders one API description as a comment block.
type renderCommand struct {
	runner *cliRunner

	ConfigFlags optionalConfigFlags `group:"Configuration"`
	Args        struct {
		Input  string `positional-arg-name:"input" description:"Input description file path (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs render subcommand.
func (command *renderCommand) Execute(_ []string) error {
	return command.runner.runRender(command.ConfigFlags.Path, command.Args.Input, command.Args.Output)
}

// normalizeCommand flattens platform variants of one API description.
type normalizeCommand struct {
	runner *cliRunner

	ConfigFlags optionalConfigFlags `group:"Configuration"`
	Args        struct {
		Input  string `positional-arg-name:"input" description:"Input description file path (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output description file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs normalize subcommand.
func (command *normalizeCommand) Execute(_ []string) error {
	return command.runner.runNormalize(command.ConfigFlags.Path, command.Args.Input, command.Args.Output)
}

// scaffoldModeFlags groups scaffold section coverage selection.
type scaffoldModeFlags struct {
	Mode string `short:"m" long:"mode" description:"Scaffold section coverage" choice:"full" choice:"required" default:"full"`
}

// scaffoldCommand writes a starter API description document.
type scaffoldCommand struct {
	runner *cliRunner

	ModeFlags scaffoldModeFlags `group:"Scaffold Mode"`
	Args      struct {
		Function string `positional-arg-name:"function" description:"Kernel service name (for example: PxMsgSend)" required:"yes"`
		Output   string `positional-arg-name:"output" description:"Output description file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs scaffold subcommand.
func (command *scaffoldCommand) Execute(_ []string) error {
	return command.runner.runScaffold(command.Args.Function, command.ModeFlags.Mode, command.Args.Output)
}

// reportCommand prints documentation and wrapper coverage.
type reportCommand struct {
	runner *cliRunner

	ConfigFlags configFlags `group:"Configuration"`
}

// Execute runs report subcommand.
func (command *reportCommand) Execute(_ []string) error {
	return command.runner.runReport(command.ConfigFlags.Path)
}

// configCommand exports the embedded example configuration.
type configCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output config file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs config subcommand.
func (command *configCommand) Execute(_ []string) error {
	return command.runner.runExampleConfig(command.Args.Output)
}

// versionCommand prints version information.
type versionCommand struct {
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	printVersionInfo()
	return nil
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	programName string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "pxbindgen"
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// runGenerate executes the full pipeline and writes the formatted artifact.
func (runner *cliRunner) runGenerate(configPath, outputPath string) error {
	cfg, err := pxbindgen.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config %q: %w", configPath, err)
	}

	result, err := pxbindgen.Generate(cfg)
	if err != nil {
		return fmt.Errorf("generate bindings: %w", err)
	}

	runner.printWarnings(result.Warnings)

	if strings.TrimSpace(outputPath) == "" {
		outputPath = cfg.Output
	}

	if strings.TrimSpace(outputPath) == "" {
		if _, err := runner.stdout.Write(result.Output); err != nil {
			return fmt.Errorf("write artifact to stdout: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, result.Output, 0o600); err != nil {
		return fmt.Errorf("write artifact file %q: %w", outputPath, err)
	}

	return nil
}

// runRender renders one description document and writes the comment block,
// with the safety reasoning appended for registry entries.
func (runner *cliRunner) runRender(configPath, inputPath, outputPath string) error {
	cfg, err := runner.loadOptionalConfig(configPath)
	if err != nil {
		return err
	}

	data, source, err := runner.readDocInput(inputPath)
	if err != nil {
		return err
	}

	api, err := pxbindgen.ParseAPIDescription(data, cfg.Platforms)
	if err != nil {
		return fmt.Errorf("render description %s: %w", source, err)
	}

	rendered := pxbindgen.RenderDocComment(api)
	if entry, ok := pxbindgen.NewRegistry(cfg.SafeFunctions).Lookup(api.Name.Key); ok {
		rendered += pxbindgen.SafetyReasoningBlock(entry.Reasoning)
	}

	if strings.TrimSpace(outputPath) == "" {
		if _, err := io.WriteString(runner.stdout, rendered); err != nil {
			return fmt.Errorf("write comment to stdout: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, []byte(rendered), 0o600); err != nil {
		return fmt.Errorf("write comment file %q: %w", outputPath, err)
	}

	return nil
}

// runNormalize flattens one description document and writes the result.
func (runner *cliRunner) runNormalize(configPath, inputPath, outputPath string) error {
	cfg, err := runner.loadOptionalConfig(configPath)
	if err != nil {
		return err
	}

	data, _, err := runner.readDocInput(inputPath)
	if err != nil {
		return err
	}

	flat, err := pxbindgen.NormalizeJSON(data, cfg.Platforms)
	if err != nil {
		return fmt.Errorf("normalize description: %w", err)
	}

	if strings.TrimSpace(outputPath) == "" {
		if _, err := runner.stdout.Write(flat); err != nil {
			return fmt.Errorf("write description to stdout: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, flat, 0o600); err != nil {
		return fmt.Errorf("write description file %q: %w", outputPath, err)
	}

	return nil
}

// runReport prints the coverage table for the configured bindings.
func (runner *cliRunner) runReport(configPath string) error {
	cfg, err := pxbindgen.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config %q: %w", configPath, err)
	}

	coverage, err := pxbindgen.BuildCoverage(cfg)
	if err != nil {
		return fmt.Errorf("build coverage: %w", err)
	}

	runner.printWarnings(coverage.Warnings)

	documented := 0
	wrapped := 0
	rows := make([][]string, 0, len(coverage.Rows))
	for _, row := range coverage.Rows {
		if row.Documented {
			documented++
		}

		if row.Wrapped {
			wrapped++
		}

		rows = append(rows, []string{row.Function, yesNo(row.Documented), yesNo(row.Wrapped), yesNo(row.Declared)})
	}

	table := tablewriter.NewWriter(runner.stdout)
	table.SetHeader([]string{"FUNCTION", "DOCUMENTED", "WRAPPER", "DECLARED"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(rows)
	table.Render()

	_, _ = fmt.Fprintf(runner.stdout, "\n%d functions, %d documented, %d wrapped\n", len(coverage.Rows), documented, wrapped)
	return nil
}

// runScaffold writes a starter API description for one kernel service.
func (runner *cliRunner) runScaffold(function, mode, outputPath string) error {
	doc, err := pxbindgen.ScaffoldDoc(function, pxbindgen.ScaffoldMode(mode))
	if err != nil {
		return fmt.Errorf("scaffold description: %w", err)
	}

	if strings.TrimSpace(outputPath) == "" {
		if _, err := runner.stdout.Write(doc); err != nil {
			return fmt.Errorf("write description to stdout: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, doc, 0o600); err != nil {
		return fmt.Errorf("write description file %q: %w", outputPath, err)
	}

	return nil
}

// runExampleConfig writes the embedded example configuration.
func (runner *cliRunner) runExampleConfig(outputPath string) error {
	example := pxbindgen.ExampleConfig()

	if strings.TrimSpace(outputPath) == "" {
		if _, err := io.WriteString(runner.stdout, example); err != nil {
			return fmt.Errorf("write config to stdout: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, []byte(example), 0o600); err != nil {
		return fmt.Errorf("write config file %q: %w", outputPath, err)
	}

	return nil
}

// loadOptionalConfig loads the config file or falls back to built-in defaults.
func (runner *cliRunner) loadOptionalConfig(path string) (*pxbindgen.Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return pxbindgen.DefaultConfig(), nil
	}

	cfg, err := pxbindgen.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("load config %q: %w", path, err)
	}

	return cfg, nil
}

// readDocInput reads one description document from file path or stdin.
func (runner *cliRunner) readDocInput(path string) ([]byte, string, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("read description file %q: %w", path, err)
		}

		return data, path, nil
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, "", fmt.Errorf("read description from stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, "", errors.New("read description from stdin: empty input")
	}

	return data, "(stdin)", nil
}

// printWarnings reports non-fatal pipeline findings on stderr.
func (runner *cliRunner) printWarnings(warnings []string) {
	for _, warning := range warnings {
		_, _ = fmt.Fprintf(runner.stderr, "warning: %s\n", warning)
	}
}

// yesNo renders one coverage flag as table cell text.
func yesNo(value bool) string {
	if value {
		return "yes"
	}

	return "no"
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Generate.runner = runner
	options.Render.runner = runner
	options.Normalize.runner = runner
	options.Scaffold.runner = runner
	options.Report.runner = runner
	options.Config.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"generate": strings.TrimSpace(fmt.Sprintf(`
Run the full post-processing pipeline.
Obtains bindings source from the configured generator command or bindings file,
synthesizes safe wrappers, injects API documentation and formats the artifact.

Examples:
> $ %s generate
> $ %s generate -c pxbindgen.yaml bindings_gen.go
`, programName, programName)),
		"render": strings.TrimSpace(fmt.Sprintf(`
Render one API description JSON as a Go comment block.
Reads the description from file argument or stdin; writes the comment block to
file argument or stdout.

Examples:
> $ %s render api-src/PxMsgSend.json
> $ cat api-src/PxMsgSend.json | %s render > PxMsgSend.txt
`, programName, programName)),
		"normalize": strings.TrimSpace(fmt.Sprintf(`
Flatten per-platform variants of one API description to the primary platform.
The result is pretty-printed JSON; normalizing an already flat document is a
no-op, so files can be rewritten in place.

Examples:
> $ cat raw/PxMsgSend.json | %s normalize > api-src/PxMsgSend.json
> $ %s normalize api-src/PxMsgSend.json api-src/PxMsgSend.json
`, programName, programName)),
		"scaffold": strings.TrimSpace(fmt.Sprintf(`
Write a starter API description document for one kernel service.
The document parses and renders as-is; full mode (default) carries every
optional section with placeholder content, required mode only the mandatory
fields.

Examples:
> $ %s scaffold PxMsgSend api-src/PxMsgSend.json
> $ %s scaffold --mode required PxAwaitEvents
`, programName, programName)),
		"report": strings.TrimSpace(fmt.Sprintf(`
Report documentation and wrapper coverage for the configured bindings.
Lists every matched function with its description and wrapper status,
including registry entries missing from the bindings.

Examples:
> $ %s report
> $ %s report -c configs/pxbindgen.yaml
`, programName, programName)),
		"config": strings.TrimSpace(fmt.Sprintf(`
Print a complete annotated example configuration with the PXROS-HR wrapper
registry filled in. Use it as a starting point for a project config.

Examples:
> $ %s config > pxbindgen.yaml
> $ %s config pxbindgen.yaml
`, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func printVersionInfo() {
	fmt.Printf(`url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
