// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the doc-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the doc-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "doc-engine",
	Short: "Markdown-to-AsciiDoc pipeline with style validation and auto-repair",
	Long: `doc-engine converts Markdown documentation into AsciiDoc through a
shield-transpile-restore pipeline built around pandoc, validates the result
against a configured style guide with vale, and applies violation-driven
linguistic repairs backed by a persistent vocabulary knowledge store.

Each pipeline stage is a subcommand: convert, lint, fix, and nav. The run
command chains conversion, validation, and repair over a whole input
directory.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./doc-engine.yaml or ~/.config/doc-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("doc-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "doc-engine"))
		}
	}

	viper.SetEnvPrefix("DOC_ENGINE")
	viper.AutomaticEnv()

	// A missing config file is not an error: every stage defaults to an
	// empty rule set.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
