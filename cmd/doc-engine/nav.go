// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/doc-engine/internal/nav"
)

var navCmd = &cobra.Command{
	Use:   "nav",
	Short: "Generate an Antora nav.adoc from a Docusaurus sidebar",
	Long: `Nav extracts the sidebar definition from a sidebars.js file and emits
the equivalent Antora navigation file with tiered xref bullets.`,
	RunE: runNav,
}

func runNav(cmd *cobra.Command, args []string) error {
	sidebar, _ := cmd.Flags().GetString("sidebar")
	outPath, _ := cmd.Flags().GetString("out")

	if err := nav.GenerateFile(sidebar, outPath); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "navigation written to %s\n", outPath)
	return nil
}

func init() {
	navCmd.Flags().String("sidebar", "sidebars.js", "path to the sidebar definition")
	navCmd.Flags().String("out", "nav.adoc", "path of the generated navigation file")

	rootCmd.AddCommand(navCmd)
}
