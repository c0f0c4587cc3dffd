// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/doc-engine/internal/convert"
	"github.com/pdiddy/doc-engine/internal/fix"
	"github.com/pdiddy/doc-engine/internal/history"
	"github.com/pdiddy/doc-engine/internal/knowledge"
	"github.com/pdiddy/doc-engine/internal/lint"
	"github.com/pdiddy/doc-engine/internal/nlp"
	"github.com/pdiddy/doc-engine/internal/rules"
	"github.com/pdiddy/doc-engine/internal/tool"
	"github.com/pdiddy/doc-engine/pkg/types"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full convert-validate-repair pipeline",
	Long: `Run converts every supported source file in the input directory to
AsciiDoc, validates the output against the configured style rule sets, and
optionally applies automatic repairs. A failing file does not stop the
batch.`,
	RunE: runPipeline,
}

func runPipeline(cmd *cobra.Command, args []string) error {
	fileName, _ := cmd.Flags().GetString("file")
	lintOnly, _ := cmd.Flags().GetBool("lint-only")
	applyFixes, _ := cmd.Flags().GetBool("fix")
	noHistory, _ := cmd.Flags().GetBool("no-history")
	out := cmd.OutOrStdout()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	targets, err := discoverTargets(cfg.Pipeline, fileName)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		fmt.Fprintln(out, "No source files detected.")
		return nil
	}

	set, err := rules.Compile(cfg.Conversion)
	if err != nil {
		return fmt.Errorf("compiling conversion rules: %w", err)
	}

	runner := tool.Default()

	var converter *convert.Converter
	if !lintOnly {
		transpiler, err := convert.NewPandocTranspiler(runner)
		if err != nil {
			return err
		}
		converter = convert.New(set, transpiler)
	}

	checker, err := lint.NewChecker(runner, cfg.Linter, cfg.Patterns, ".vale.ini")
	if err != nil {
		return err
	}
	if err := checker.WriteConfig(); err != nil {
		return fmt.Errorf("writing vale config: %w", err)
	}

	// One knowledge store instance owns the whole run, so corrections
	// learned on one file apply to the files after it.
	store := knowledge.Load(cfg.Pipeline.KnowledgeBase)
	fixer, err := fix.New(store, cfg.Patterns, cfg.Grammar, nlp.NewProse())
	if err != nil {
		return err
	}

	ctx := context.Background()
	var hist *history.Store
	var runID int64
	if !noHistory {
		hist, err = history.NewStore(cfg.Pipeline.HistoryDir)
		if err != nil {
			return err
		}
		defer hist.Close()
		if runID, err = hist.BeginRun(ctx); err != nil {
			return err
		}
	}

	for _, src := range targets {
		base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
		adocPath := filepath.Join(cfg.Pipeline.OutputDir, base+".adoc")

		if !lintOnly {
			fmt.Fprintf(out, "\nPhase 1: converting %s\n", filepath.Base(src))
			if err := converter.ConvertFile(src, adocPath); err != nil {
				fmt.Fprintf(out, "  failed: %v\n", err)
				recordFile(ctx, hist, runID, src, 0, 0, history.StatusFailed)
				continue
			}
		}

		if _, err := os.Stat(adocPath); err != nil {
			recordFile(ctx, hist, runID, src, 0, 0, history.StatusSkipped)
			continue
		}

		fmt.Fprintf(out, "Phase 2: validating %s\n", filepath.Base(adocPath))
		findings, err := checker.Run(adocPath, out)
		if err != nil {
			fmt.Fprintf(out, "  failed: %v\n", err)
			recordFile(ctx, hist, runID, src, 0, 0, history.StatusFailed)
			continue
		}
		lint.Report(out, findings, cfg.Linter.GuideURL)

		violations := findingsFor(findings, adocPath)

		fixes := 0
		if applyFixes && len(violations) > 0 {
			fmt.Fprintf(out, "Phase 3: repairing %s\n", filepath.Base(adocPath))
			fixes, err = fixer.FixFile(adocPath, violations)
			if err != nil {
				fmt.Fprintf(out, "  failed: %v\n", err)
				recordFile(ctx, hist, runID, src, len(violations), 0, history.StatusFailed)
				continue
			}
			if fixes > 0 {
				fmt.Fprintf(out, "  repaired %d line(s)\n", fixes)
				if recheck, err := checker.Run(adocPath, out); err == nil {
					lint.Report(out, recheck, cfg.Linter.GuideURL)
				}
			}
		}

		recordFile(ctx, hist, runID, src, len(violations), fixes, history.StatusOK)
	}

	return nil
}

// findingsFor selects the violations addressed to target from the checker's
// per-file report. The checker keys by absolute path; a single-entry report
// is taken as-is.
func findingsFor(findings map[string][]types.Violation, target string) []types.Violation {
	abs, err := filepath.Abs(target)
	if err == nil {
		if vs, ok := findings[abs]; ok {
			return vs
		}
	}
	if len(findings) == 1 {
		for _, vs := range findings {
			return vs
		}
	}
	return nil
}

func recordFile(ctx context.Context, hist *history.Store, runID int64, path string, violations, fixes int, status string) {
	if hist == nil {
		return
	}
	if err := hist.RecordFile(ctx, runID, path, violations, fixes, status); err != nil {
		fmt.Fprintf(os.Stderr, "warning: history record failed: %v\n", err)
	}
}

func init() {
	runCmd.Flags().String("file", "", "target a specific file in the input directory")
	runCmd.Flags().Bool("lint-only", false, "skip conversion, validate existing output only")
	runCmd.Flags().Bool("fix", false, "auto-repair style violations")
	runCmd.Flags().Bool("no-history", false, "do not record this run in the history database")

	rootCmd.AddCommand(runCmd)
}
