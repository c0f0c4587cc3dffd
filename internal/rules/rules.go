// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rules compiles the configured pattern rule tables into an
// immutable, flat rule set. Mapped rules are expanded at compile time, one
// concrete rule per map entry, so the converter never re-expands templates
// per call. The package holds no transformation logic; the converter
// consumes the compiled set.
package rules

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/doc-engine/pkg/types"
)

// SpaceSentinel replaces spaces inside shielded titles so the external
// transpiler cannot wrap or collapse them. It must never collide with real
// content.
const SpaceSentinel = "PROTECT_SPACE"

// Hook identifies a built-in transform attached to a rule. String-keyed
// hook names from configuration are parsed into this closed enumeration.
type Hook int

const (
	// HookNone applies the rule as a plain regexp substitution.
	HookNone Hook = iota

	// HookProtectSpaces swaps spaces in the captured title for the
	// sentinel before substituting.
	HookProtectSpaces

	// HookRestoreSpaces reverses the sentinel substitution and re-trims.
	HookRestoreSpaces
)

var hookNames = map[string]Hook{
	"":               HookNone,
	"protect_spaces": HookProtectSpaces,
	"restore_spaces": HookRestoreSpaces,
}

// ParseHook resolves a configured hook name. Unknown names are an error so
// that a typo in configuration fails at compile time, not silently at
// conversion time.
func ParseHook(name string) (Hook, error) {
	h, ok := hookNames[name]
	if !ok {
		return HookNone, fmt.Errorf("unknown rule hook %q", name)
	}
	return h, nil
}

// Rule is one concrete, compiled pattern rule.
type Rule struct {
	// Pattern is the compiled match expression.
	Pattern *regexp.Regexp

	// Replacement is the substitution template ($1, $2 capture references).
	Replacement string

	// Hook selects a built-in transform instead of plain substitution.
	Hook Hook
}

// Set is the compiled, ordered rule set consumed by the converter. Rule
// order within each category is significant: later rules may target
// patterns produced by earlier ones.
type Set struct {
	Shielding         []Rule
	Cleanup           []Rule
	Restoration       []Rule
	PathNormalization []Rule

	// ExtensionMap rewrites link extensions during xref emission.
	ExtensionMap map[string]string

	// XrefDetection matches internal links eligible for rewriting, or nil
	// when no extension map is configured.
	XrefDetection *regexp.Regexp
}

// DefaultXrefDetection matches relative links with a rewritable extension.
// External links carry a scheme colon, which the path class forbids, so
// they are excluded by construction.
const DefaultXrefDetection = `link:([^:\s\[\]]*)\.(md|json|yaml|yml)`

// Compile builds a Set from configuration. A zero-value configuration
// compiles to an empty set, making shield and restore no-ops.
func Compile(cfg types.ConversionConfig) (*Set, error) {
	set := &Set{ExtensionMap: cfg.ExtensionMap}

	var err error
	// Shielding and restoration rules match block constructs, so they
	// compile in dotall mode. Cleanup and path rules operate per line.
	if set.Shielding, err = compileCategory(cfg.Shielding, true); err != nil {
		return nil, fmt.Errorf("shielding: %w", err)
	}
	if set.Cleanup, err = compileCategory(cfg.Cleanup, false); err != nil {
		return nil, fmt.Errorf("cleanup: %w", err)
	}
	if set.Restoration, err = compileCategory(cfg.Restoration, true); err != nil {
		return nil, fmt.Errorf("restoration: %w", err)
	}
	if set.PathNormalization, err = compileCategory(cfg.PathNormalization, false); err != nil {
		return nil, fmt.Errorf("path_normalization: %w", err)
	}

	if len(cfg.ExtensionMap) > 0 {
		expr := cfg.XrefDetection
		if expr == "" {
			expr = DefaultXrefDetection
		}
		if set.XrefDetection, err = regexp.Compile(expr); err != nil {
			return nil, fmt.Errorf("xref_detection: %w", err)
		}
	}

	return set, nil
}

func compileCategory(configs []types.RuleConfig, dotall bool) ([]Rule, error) {
	var out []Rule
	for i, rc := range configs {
		hook, err := ParseHook(rc.Hook)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}

		if len(rc.Map) > 0 {
			// Expand one concrete rule per map entry. Go maps have no
			// iteration order, so keys are sorted for determinism.
			keys := make([]string, 0, len(rc.Map))
			for k := range rc.Map {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, key := range keys {
				re, err := compilePattern(strings.ReplaceAll(rc.Regex, "{key}", key), dotall, rc.Multiline)
				if err != nil {
					return nil, fmt.Errorf("rule %d (key %q): %w", i, key, err)
				}
				out = append(out, Rule{
					Pattern:     re,
					Replacement: strings.ReplaceAll(rc.Replacement, "{val}", rc.Map[key]),
					Hook:        hook,
				})
			}
			continue
		}

		re, err := compilePattern(rc.Regex, dotall, rc.Multiline)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		out = append(out, Rule{Pattern: re, Replacement: rc.Replacement, Hook: hook})
	}
	return out, nil
}

func compilePattern(expr string, dotall, multiline bool) (*regexp.Regexp, error) {
	var flags string
	if dotall {
		flags += "s"
	}
	if multiline {
		flags += "m"
	}
	if flags != "" {
		expr = "(?" + flags + ")" + expr
	}
	return regexp.Compile(expr)
}
