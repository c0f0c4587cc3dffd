// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/doc-engine/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent pipeline runs",
	Long: `History lists recent pipeline runs with per-run violation and fix
totals. Use --run to list the files of a single run.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := history.NewStore(cfg.Pipeline.HistoryDir)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	ctx := context.Background()

	runID, _ := cmd.Flags().GetInt64("run")
	if runID > 0 {
		files, err := store.RunFiles(ctx, runID)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			fmt.Fprintf(out, "No files recorded for run %d.\n", runID)
			return nil
		}
		fmt.Fprintf(out, "%-40s  %-10s  %-6s  %s\n", "File", "Violations", "Fixes", "Status")
		fmt.Fprintln(out, strings.Repeat("-", 72))
		for _, f := range files {
			fmt.Fprintf(out, "%-40s  %-10d  %-6d  %s\n", f.Path, f.Violations, f.Fixes, f.Status)
		}
		return nil
	}

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.RecentRuns(ctx, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded.")
		return nil
	}

	fmt.Fprintf(out, "%-5s  %-20s  %-6s  %-10s  %-6s  %s\n", "Run", "Started", "Files", "Violations", "Fixes", "Failed")
	fmt.Fprintln(out, strings.Repeat("-", 68))
	for _, r := range runs {
		fmt.Fprintf(out, "%-5d  %-20s  %-6d  %-10d  %-6d  %d\n",
			r.ID, r.StartedAt, r.Files, r.Violations, r.Fixes, r.Failed)
	}
	return nil
}

func init() {
	historyCmd.Flags().Int("limit", 10, "maximum number of runs to show")
	historyCmd.Flags().Int64("run", 0, "show the files of a specific run")

	rootCmd.AddCommand(historyCmd)
}
