// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/pdiddy/doc-engine/pkg/types"
)

// loadConfig unmarshals the viper configuration into the pipeline config
// and applies defaults. An absent config file yields a usable zero
// configuration.
func loadConfig() (types.PipelineConfig, error) {
	var cfg types.PipelineConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.PipelineConfig{}, fmt.Errorf("parsing configuration: %w", err)
	}

	p := &cfg.Pipeline
	if p.InputDir == "" {
		p.InputDir = "data/inputs"
	}
	if p.OutputDir == "" {
		p.OutputDir = "data/outputs"
	}
	if len(p.SupportedExtensions) == 0 {
		p.SupportedExtensions = []string{".md", ".mdx"}
	}
	if p.KnowledgeBase == "" {
		p.KnowledgeBase = filepath.Join("data", "knowledge_base.yaml")
	}
	if p.HistoryDir == "" {
		p.HistoryDir = filepath.Join("data", "history")
	}
	return cfg, nil
}

// discoverTargets resolves the source files for a run: either the single
// named file, or every supported file in the input directory.
func discoverTargets(p types.PipelineSettings, fileName string) ([]string, error) {
	if fileName != "" {
		return []string{filepath.Join(p.InputDir, fileName)}, nil
	}

	entries, err := os.ReadDir(p.InputDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading input directory %s: %w", p.InputDir, err)
	}

	var targets []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		for _, supported := range p.SupportedExtensions {
			if ext == supported {
				targets = append(targets, filepath.Join(p.InputDir, entry.Name()))
				break
			}
		}
	}
	return targets, nil
}
