// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package nav translates Docusaurus-style sidebar definitions into Antora
// navigation files. The sidebar object literal is extracted from the
// JavaScript source by pattern, normalized into strict JSON, and flattened
// into tiered xref bullets.
package nav

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

var (
	sidebarRe = regexp.MustCompile(`(?s)const sidebars = (\{.*\})`)
	jsKeyRe   = regexp.MustCompile(`(\w+):`)
)

// GenerateFile reads a sidebars.js file and writes the resulting
// navigation to adocPath. A missing source file or an unparseable sidebar
// produces no output and no error, keeping the pipeline stable.
func GenerateFile(jsPath, adocPath string) error {
	data, err := os.ReadFile(jsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", jsPath, err)
	}

	out := Generate(string(data))
	if out == "" {
		return nil
	}
	if err := os.WriteFile(adocPath, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", adocPath, err)
	}
	return nil
}

// Generate produces the navigation body from JavaScript sidebar source.
// Returns "" when no sidebar assignment is found or the normalized literal
// is not valid JSON.
func Generate(js string) string {
	m := sidebarRe.FindStringSubmatch(js)
	if m == nil {
		return ""
	}

	// Normalize the object literal into strict JSON: quote bare keys,
	// convert single quotes, drop newlines.
	jsonStr := jsKeyRe.ReplaceAllString(m[1], `"$1":`)
	jsonStr = strings.ReplaceAll(jsonStr, "'", `"`)
	jsonStr = strings.ReplaceAll(jsonStr, "\n", "")

	var sidebars map[string]any
	if err := json.Unmarshal([]byte(jsonStr), &sidebars); err != nil {
		return ""
	}

	// Sidebar sections in sorted order for deterministic output.
	names := make([]string, 0, len(sidebars))
	for name := range sidebars {
		names = append(names, name)
	}
	sort.Strings(names)

	var lines []string
	for _, name := range names {
		items, ok := sidebars[name].([]any)
		if !ok {
			continue
		}
		lines = append(lines, parseItems(items, 1)...)
	}
	return strings.Join(lines, "\n")
}

// parseItems recursively flattens sidebar items into Antora's tiered
// bullet syntax (*, **, ***).
func parseItems(items []any, depth int) []string {
	var lines []string
	prefix := strings.Repeat("*", depth)

	for _, item := range items {
		switch v := item.(type) {
		case string:
			lines = append(lines, fmt.Sprintf("%s xref:%s.adoc[%s]", prefix, v, titleLabel(v)))

		case map[string]any:
			label, _ := v["label"].(string)
			if label == "" {
				label = "Category"
			}

			if link, ok := v["link"].(map[string]any); ok {
				id, _ := link["id"].(string)
				lines = append(lines, fmt.Sprintf("%s xref:%s.adoc[%s]", prefix, id, label))
			} else {
				lines = append(lines, prefix+" "+label)
			}

			if children, ok := v["items"].([]any); ok {
				lines = append(lines, parseItems(children, depth+1)...)
			}
		}
	}
	return lines
}

// titleLabel turns a document ID into a display label: the last path
// segment, hyphens as spaces, title-cased.
func titleLabel(id string) string {
	segment := id
	if i := strings.LastIndex(id, "/"); i >= 0 {
		segment = id[i+1:]
	}
	words := strings.Split(strings.ReplaceAll(segment, "-", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
