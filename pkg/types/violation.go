// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Severity classifies a style violation. The set is open: checkers may
// report levels beyond the three standard ones.
type Severity string

const (
	SeverityError      Severity = "error"
	SeverityWarning    Severity = "warning"
	SeveritySuggestion Severity = "suggestion"
)

// Violation is one normalized style-checker finding, addressed to a single
// line. Findings without a resolvable line number are dropped during report
// parsing; a violation never spans multiple lines.
type Violation struct {
	// Line is the 1-based line number the finding refers to.
	Line int `json:"line" yaml:"line"`

	// Check is the rule identifier (e.g. "SUSE.Terms", "common.Will").
	Check string `json:"check" yaml:"check"`

	// Severity is the reported alert level.
	Severity Severity `json:"severity" yaml:"severity"`

	// Message is the human-readable finding text.
	Message string `json:"message" yaml:"message"`

	// Description is the optional extended rule description.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Suggestion is the single token or phrase extracted from the message
	// or description, or empty when nothing could be extracted.
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}
