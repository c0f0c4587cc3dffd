// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"strings"

	"github.com/pdiddy/doc-engine/internal/tool"
)

const binPandoc = "pandoc"

// PandocTranspiler performs the base Markdown-to-AsciiDoc conversion by
// invoking the pandoc binary through a tool.Runner injected at construction
// time.
type PandocTranspiler struct {
	runner tool.Runner
}

// NewPandocTranspiler creates a transpiler backed by pandoc. It verifies
// that the binary is available on PATH before returning.
func NewPandocTranspiler(r tool.Runner) (*PandocTranspiler, error) {
	if _, err := r.LookPath(binPandoc); err != nil {
		return nil, fmt.Errorf("pandoc not found on PATH: %w", err)
	}
	return &PandocTranspiler{runner: r}, nil
}

// Transpile converts the Markdown file at inputPath, returning the raw
// AsciiDoc. Wrapping is disabled so shielded titles survive intact. A
// non-zero exit surfaces as a ToolError carrying pandoc's diagnostics.
func (p *PandocTranspiler) Transpile(inputPath string) (string, error) {
	args := []string{"-f", "markdown", "-t", "asciidoc", "--wrap=none", inputPath}

	stdout, stderr, err := p.runner.Run(binPandoc, args, nil)
	if err != nil {
		return "", &ToolError{
			Tool:       binPandoc,
			Diagnostic: strings.TrimSpace(string(stderr)),
			Err:        err,
		}
	}
	return string(stdout), nil
}
