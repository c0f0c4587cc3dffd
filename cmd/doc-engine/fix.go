// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/doc-engine/internal/fix"
	"github.com/pdiddy/doc-engine/internal/knowledge"
	"github.com/pdiddy/doc-engine/internal/lint"
	"github.com/pdiddy/doc-engine/internal/nlp"
	"github.com/pdiddy/doc-engine/internal/tool"
)

var fixCmd = &cobra.Command{
	Use:   "fix [file...]",
	Short: "Auto-repair style violations in AsciiDoc files",
	Long: `Fix validates each file and applies automatic repairs for the reported
violations: vocabulary corrections from the knowledge store, surgical
removals, phrasal substitutions, spelling corrections (learned into the
store for later runs), and future-tense rewrites. A final enforcement pass
applies every known correction whether or not the checker flagged it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFix,
}

func runFix(cmd *cobra.Command, args []string) error {
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

	store := knowledge.Load(cfg.Pipeline.KnowledgeBase)
	fixer, err := fix.New(store, cfg.Patterns, cfg.Grammar, nlp.NewProse())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, target := range args {
		findings, err := checker.Run(target, out)
		if err != nil {
			fmt.Fprintf(out, "failed: %s (%v)\n", target, err)
			continue
		}

		violations := findingsFor(findings, target)
		fixes, err := fixer.FixFile(target, violations)
		if err != nil {
			fmt.Fprintf(out, "failed: %s (%v)\n", target, err)
			continue
		}
		fmt.Fprintf(out, "repaired: %s (%d line(s))\n", target, fixes)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(fixCmd)
}
