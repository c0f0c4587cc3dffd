// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/doc-engine/internal/convert"
	"github.com/pdiddy/doc-engine/internal/rules"
	"github.com/pdiddy/doc-engine/internal/tool"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert Markdown files to AsciiDoc",
	Long: `Convert transforms Markdown files into AsciiDoc through the
shield-transpile-restore pipeline: configured constructs are shielded with
marker tokens, pandoc performs the base conversion, and restoration rebuilds
native AsciiDoc syntax and rewrites internal links into xrefs.

With no arguments, every supported file in the input directory is
converted.`,
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outDir, _ := cmd.Flags().GetString("out")
	if outDir == "" {
		outDir = cfg.Pipeline.OutputDir
	}

	targets := args
	if len(targets) == 0 {
		if targets, err = discoverTargets(cfg.Pipeline, ""); err != nil {
			return err
		}
	}
	if len(targets) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No source files detected.")
		return nil
	}

	set, err := rules.Compile(cfg.Conversion)
	if err != nil {
		return fmt.Errorf("compiling conversion rules: %w", err)
	}

	transpiler, err := convert.NewPandocTranspiler(tool.Default())
	if err != nil {
		return err
	}

	result := convert.ConvertBatch(convert.New(set, transpiler), targets, outDir, cmd.OutOrStdout())
	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", result.Failed)
	}
	return nil
}

func init() {
	convertCmd.Flags().String("out", "", "output directory (default: configured output_dir)")

	rootCmd.AddCommand(convertCmd)
}
