// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements the Shield-Transpile-Restore conversion of
// Markdown into AsciiDoc. Shielding replaces fragile source constructs with
// stable markers before the external transpiler runs; restoration rebuilds
// the native AsciiDoc equivalents afterwards and rewrites internal links
// into xref syntax. Both transforms are pure and driven entirely by the
// compiled rule set.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/doc-engine/internal/rules"
)

// Transpiler performs the base structural conversion. Different backends
// (pandoc, or an identity transpiler in tests) implement this interface.
type Transpiler interface {
	// Transpile reads shielded Markdown at inputPath and returns the raw
	// structurally-converted text.
	Transpile(inputPath string) (string, error)
}

// ToolError reports an external tool failure, carrying the tool's
// diagnostic output.
type ToolError struct {
	Tool       string
	Diagnostic string
	Err        error
}

func (e *ToolError) Error() string {
	if e.Diagnostic != "" {
		return fmt.Sprintf("%s failed: %v: %s", e.Tool, e.Err, e.Diagnostic)
	}
	return fmt.Sprintf("%s failed: %v", e.Tool, e.Err)
}

func (e *ToolError) Unwrap() error { return e.Err }

// Converter orchestrates the three-phase conversion pipeline.
type Converter struct {
	rules      *rules.Set
	transpiler Transpiler
}

// New creates a Converter over a compiled rule set and a transpiler backend.
func New(set *rules.Set, t Transpiler) *Converter {
	return &Converter{rules: set, transpiler: t}
}

// Shield applies every shielding rule in order, replacing fragile Markdown
// constructs with marker tokens the external transpiler passes through
// untouched.
func (c *Converter) Shield(src string) string {
	return applyRules(src, c.rules.Shielding)
}

// Restore finalizes raw transpiler output: cleanup rules strip converter
// artifacts, restoration rules rebuild native AsciiDoc from the markers,
// and internal links are rewritten into xref syntax. The result is trimmed
// of leading and trailing whitespace.
func (c *Converter) Restore(raw string) string {
	out := applyRules(raw, c.rules.Cleanup)
	out = applyRules(out, c.rules.Restoration)
	out = c.rewriteXrefs(out)
	return strings.TrimSpace(out)
}

// Convert runs the full pipeline on source text. The shielded intermediate
// is handed to the transpiler through a temporary file that is removed on
// every exit path.
func (c *Converter) Convert(src string) (string, error) {
	shielded := c.Shield(src)

	tmp, err := os.CreateTemp("", "doc-engine-*.md")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(shielded); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing temp file: %w", err)
	}

	raw, err := c.transpiler.Transpile(tmp.Name())
	if err != nil {
		return "", err
	}

	return c.Restore(raw), nil
}

// ConvertFile converts a single source file, writing the final AsciiDoc to
// outputPath.
func (c *Converter) ConvertFile(inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	out, err := c.Convert(string(data))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(outputPath, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	return nil
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Failed    int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int { return r.Converted + r.Failed }

// HasFailures reports whether any files failed conversion.
func (r BatchResult) HasFailures() bool { return r.Failed > 0 }

// ConvertBatch converts each source path into outDir, printing per-file
// status to w and returning a summary. A failing file does not stop the
// batch.
func ConvertBatch(c *Converter, paths []string, outDir string, w io.Writer) BatchResult {
	var result BatchResult
	for _, p := range paths {
		base := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		outPath := filepath.Join(outDir, base+".adoc")

		if err := c.ConvertFile(p, outPath); err != nil {
			fmt.Fprintf(w, "failed:    %s (%v)\n", base, err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "converted: %s\n", base)
		result.Converted++
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed (total: %d)\n",
		result.Converted, result.Failed, result.Total())
	return result
}

// applyRules runs each rule sequentially over the content. Order matters:
// later rules may target patterns produced by earlier ones.
func applyRules(content string, rs []rules.Rule) string {
	for _, r := range rs {
		content = applyRule(content, r)
	}
	return content
}

func applyRule(content string, r rules.Rule) string {
	switch r.Hook {
	case rules.HookProtectSpaces:
		return r.Pattern.ReplaceAllStringFunc(content, func(m string) string {
			sub := r.Pattern.FindStringSubmatch(m)
			if len(sub) < 3 {
				return m
			}
			title := strings.ReplaceAll(strings.TrimSpace(sub[1]), " ", rules.SpaceSentinel)
			return expand(r.Replacement, title, strings.TrimSpace(sub[2]))
		})
	case rules.HookRestoreSpaces:
		return r.Pattern.ReplaceAllStringFunc(content, func(m string) string {
			sub := r.Pattern.FindStringSubmatch(m)
			if len(sub) < 3 {
				return m
			}
			title := strings.TrimSpace(strings.ReplaceAll(sub[1], rules.SpaceSentinel, " "))
			return expand(r.Replacement, title, strings.TrimSpace(sub[2]))
		})
	default:
		return r.Pattern.ReplaceAllString(content, r.Replacement)
	}
}

// expand substitutes the two hook capture groups into a replacement
// template. Hooked rules always carry exactly a title and a body group.
func expand(template, title, body string) string {
	out := strings.ReplaceAll(template, "$1", title)
	return strings.ReplaceAll(out, "$2", body)
}

// rewriteXrefs converts every detected internal link into target-format
// cross-reference syntax, normalizing the path and remapping the extension.
func (c *Converter) rewriteXrefs(content string) string {
	re := c.rules.XrefDetection
	if re == nil || len(c.rules.ExtensionMap) == 0 {
		return content
	}
	return re.ReplaceAllStringFunc(content, func(m string) string {
		sub := re.FindStringSubmatch(m)
		if len(sub) < 3 {
			return m
		}
		path, ext := sub[1], sub[2]
		for _, r := range c.rules.PathNormalization {
			path = r.Pattern.ReplaceAllString(path, r.Replacement)
		}
		if mapped, ok := c.rules.ExtensionMap[ext]; ok {
			ext = mapped
		}
		return "xref:" + path + "." + ext
	})
}
