// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Veecle GmbH
// Source: github.com/veecle/pxbindgen

/*
Package pxbindgen post-processes generated PXROS-HR kernel bindings.

The package takes bindings source produced by a C header generator,
synthesizes safe 1:1 wrappers for audited kernel services, injects rendered
API documentation above matching declarations and formats the final artifact.
Kernel documentation comes from a corpus of per-service JSON descriptions
that may carry per-platform variants; those are flattened to the primary
platform before rendering.

Run the full pipeline from a config file:

	cfg, err := pxbindgen.LoadConfig("pxbindgen.yaml")
	if err != nil {
		return err
	}

	result, err := pxbindgen.Generate(cfg)
	if err != nil {
		return err
	}

	for _, warning := range result.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", warning)
	}

	fmt.Print(string(result.Output))

Render one kernel service description as a comment block:

	comment, err := pxbindgen.RenderDocFile("api-src/PxMsgSend.json", pxbindgen.DefaultPlatforms())
	if err != nil {
		return err
	}

	fmt.Print(comment)

Normalize a description document in place:

	data, err := os.ReadFile("api-src/PxMsgSend.json")
	if err != nil {
		return err
	}

	flat, err := pxbindgen.NormalizeJSON(data, pxbindgen.DefaultPlatforms())
	if err != nil {
		return err
	}

	fmt.Print(string(flat))

Scaffold a starter description for an undocumented kernel service:

	doc, err := pxbindgen.ScaffoldDoc("PxAwaitEvents", pxbindgen.ScaffoldModeFull)
	if err != nil {
		return err
	}

	if err := os.WriteFile("api-src/PxAwaitEvents.json", doc, 0o600); err != nil {
		return err
	}

Report documentation and wrapper coverage:

	coverage, err := pxbindgen.BuildCoverage(cfg)
	if err != nil {
		return err
	}

	for _, row := range coverage.Rows {
		fmt.Println(row.Function, row.Documented, row.Wrapped)
	}
*/
package pxbindgen
