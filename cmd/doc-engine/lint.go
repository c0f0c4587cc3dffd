// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/doc-engine/internal/lint"
	"github.com/pdiddy/doc-engine/internal/tool"
)

var lintCmd = &cobra.Command{
	Use:   "lint [file...]",
	Short: "Validate AsciiDoc files against the style guide",
	Long: `Lint generates the vale configuration from pipeline settings, runs the
style checker against each file, and prints a validation report.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLint,
}

func runLint(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	checker, err := lint.NewChecker(tool.Default(), cfg.Linter, cfg.Patterns, ".vale.ini")
	if err != nil {
		return err
	}
	if err := checker.WriteConfig(); err != nil {
		return fmt.Errorf("writing vale config: %w", err)
	}

	out := cmd.OutOrStdout()
	total := 0
	for _, target := range args {
		findings, err := checker.Run(target, out)
		if err != nil {
			fmt.Fprintf(out, "failed: %s (%v)\n", target, err)
			continue
		}
		lint.Report(out, findings, cfg.Linter.GuideURL)
		for _, vs := range findings {
			total += len(vs)
		}
	}

	if total > 0 {
		return fmt.Errorf("%d violation(s) found", total)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(lintCmd)
}
