// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lint

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/doc-engine/pkg/types"
)

// Report writes a plain-text validation report to w. An empty finding set
// prints a pass message.
func Report(w io.Writer, findings map[string][]types.Violation, guideURL string) {
	total := 0
	for _, vs := range findings {
		total += len(vs)
	}
	if total == 0 {
		fmt.Fprintln(w, "Quality check passed.")
		return
	}

	fmt.Fprintf(w, "%-6s  %-10s  %-24s  %s\n", "Line", "Severity", "Rule", "Message")
	fmt.Fprintln(w, strings.Repeat("-", 90))

	for _, vs := range findings {
		for _, v := range vs {
			msg := v.Message
			if len(msg) > 46 {
				msg = msg[:43] + "..."
			}
			fmt.Fprintf(w, "%-6d  %-10s  %-24s  %s\n", v.Line, v.Severity, v.Check, msg)
		}
	}

	fmt.Fprintf(w, "\n%d violation(s)\n", total)
	if guideURL != "" {
		fmt.Fprintf(w, "Style guide: %s\n", guideURL)
	}
}
