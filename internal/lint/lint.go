// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lint drives the vale style checker: it generates the vale
// configuration artifact from pipeline settings, runs the checker, and
// normalizes its JSON report into violation records.
package lint

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pdiddy/doc-engine/internal/tool"
	"github.com/pdiddy/doc-engine/pkg/types"
)

const binVale = "vale"

// DefaultExtraction captures a single-quoted token from a finding message.
const DefaultExtraction = `'(.*?)'`

// Checker orchestrates style validation for target files.
type Checker struct {
	runner    tool.Runner
	linter    types.LinterConfig
	patterns  types.PatternConfig
	iniPath   string
	extractRe *regexp.Regexp
}

// NewChecker creates a Checker. It verifies that vale is available on PATH
// and compiles the suggestion-extraction pattern (falling back to the
// single-quote default).
func NewChecker(r tool.Runner, linter types.LinterConfig, patterns types.PatternConfig, iniPath string) (*Checker, error) {
	if _, err := r.LookPath(binVale); err != nil {
		return nil, fmt.Errorf("vale not found on PATH: %w", err)
	}

	expr := patterns.SuggestionExtraction
	if expr == "" {
		expr = DefaultExtraction
	}
	extractRe, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("suggestion_extraction: %w", err)
	}

	return &Checker{
		runner:    r,
		linter:    linter,
		patterns:  patterns,
		iniPath:   iniPath,
		extractRe: extractRe,
	}, nil
}

// WriteConfig generates the vale configuration artifact: rule-set
// selection, minimum severity threshold, and the style search path.
func (c *Checker) WriteConfig() error {
	stylesPath := c.linter.StylesPath
	if stylesPath == "" {
		stylesPath = "styles"
	}
	abs, err := filepath.Abs(stylesPath)
	if err != nil {
		return fmt.Errorf("resolving styles path: %w", err)
	}

	styles := "Vale"
	if len(c.linter.Styles) > 0 {
		styles = strings.Join(c.linter.Styles, ", ")
	}

	level := c.linter.MinAlertLevel
	if level == "" {
		level = "suggestion"
	}

	content := fmt.Sprintf("StylesPath = %s\nMinAlertLevel = %s\n\n[*.{adoc,md}]\nBasedOnStyles = %s\n",
		filepath.ToSlash(abs), level, styles)

	return os.WriteFile(c.iniPath, []byte(content), 0o644)
}

// valeIssue mirrors one entry of vale's JSON report.
type valeIssue struct {
	Line        int    `json:"Line"`
	Check       string `json:"Check"`
	Severity    string `json:"Severity"`
	Message     string `json:"Message"`
	Description string `json:"Description"`
	Action      struct {
		Name   string   `json:"Name"`
		Params []string `json:"Params"`
	} `json:"Action"`
}

// Run executes vale against target and returns findings keyed by file
// path. Vale exits non-zero whenever it has findings, so the exit code is
// ignored when output is present; unparseable output degrades to zero
// findings with a warning on w. Findings without a resolvable line number
// are dropped.
func (c *Checker) Run(target string, w io.Writer) (map[string][]types.Violation, error) {
	abs, err := filepath.Abs(target)
	if err != nil {
		return nil, fmt.Errorf("resolving target: %w", err)
	}

	stdout, stderr, runErr := c.runner.Run(binVale,
		[]string{"--config", c.iniPath, "--output=JSON", abs}, nil)

	if len(strings.TrimSpace(string(stdout))) == 0 {
		if runErr != nil {
			return nil, fmt.Errorf("vale failed for %s: %v: %s",
				target, runErr, strings.TrimSpace(string(stderr)))
		}
		return map[string][]types.Violation{}, nil
	}

	var raw map[string][]valeIssue
	if err := json.Unmarshal(stdout, &raw); err != nil {
		fmt.Fprintf(w, "warning: unparseable vale output for %s: %v\n", target, err)
		return map[string][]types.Violation{}, nil
	}

	findings := make(map[string][]types.Violation, len(raw))
	for file, issues := range raw {
		vs := make([]types.Violation, 0, len(issues))
		for _, issue := range issues {
			if issue.Line <= 0 {
				continue
			}
			vs = append(vs, types.Violation{
				Line:        issue.Line,
				Check:       issue.Check,
				Severity:    types.Severity(strings.ToLower(issue.Severity)),
				Message:     issue.Message,
				Description: issue.Description,
				Suggestion:  c.extractSuggestion(issue),
			})
		}
		findings[file] = vs
	}
	return findings, nil
}

// extractSuggestion derives a repair suggestion from an issue: the first
// action parameter when it is not an ignored placeholder, otherwise the
// first extraction-pattern match over description and message.
func (c *Checker) extractSuggestion(issue valeIssue) string {
	if len(issue.Action.Params) > 0 {
		candidate := issue.Action.Params[0]
		if !contains(c.patterns.IgnoredPlaceholders, candidate) {
			return candidate
		}
	}

	pool := strings.TrimSpace(issue.Description + " " + issue.Message)
	if pool == "" {
		return ""
	}
	if m := c.extractRe.FindStringSubmatch(pool); len(m) > 1 {
		return m[1]
	}
	return ""
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
