// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared value types of the documentation pipeline:
// stage configuration, pattern rule declarations, and the normalized style
// violation record. Configuration is immutable input; no type in this
// package is mutated by the pipeline stages.
package types

// PipelineSettings holds the file-discovery and storage settings shared by
// the orchestration loop.
type PipelineSettings struct {
	// InputDir is the directory scanned for source Markdown files.
	InputDir string `json:"input_dir" yaml:"input_dir" mapstructure:"input_dir"`

	// OutputDir is the directory where converted AsciiDoc files are written.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// SupportedExtensions lists source extensions picked up in batch mode
	// (default ".md", ".mdx").
	SupportedExtensions []string `json:"supported_extensions" yaml:"supported_extensions" mapstructure:"supported_extensions"`

	// KnowledgeBase is the path of the persisted vocabulary store
	// (default "data/knowledge_base.yaml").
	KnowledgeBase string `json:"knowledge_base" yaml:"knowledge_base" mapstructure:"knowledge_base"`

	// HistoryDir is the directory holding the run-history database
	// (default "data/history").
	HistoryDir string `json:"history_dir" yaml:"history_dir" mapstructure:"history_dir"`
}

// RuleConfig declares one pattern rule as it appears in configuration.
// Mapped rules carry {key}/{val} placeholders and expand into one concrete
// rule per map entry at compile time.
type RuleConfig struct {
	// Regex is the match expression. Shielding and restoration rules are
	// compiled in dotall mode so block constructs can span lines.
	Regex string `json:"regex" yaml:"regex" mapstructure:"regex"`

	// Replacement is the substitution template. Capture groups are
	// referenced as $1, $2.
	Replacement string `json:"replacement" yaml:"replacement" mapstructure:"replacement"`

	// Hook names a built-in transform applied instead of plain
	// substitution: "protect_spaces" or "restore_spaces".
	Hook string `json:"hook,omitempty" yaml:"hook,omitempty" mapstructure:"hook"`

	// Map expands the rule into one concrete substitution per entry.
	Map map[string]string `json:"map,omitempty" yaml:"map,omitempty" mapstructure:"map"`

	// Multiline compiles the expression with ^/$ matching line boundaries.
	Multiline bool `json:"multiline,omitempty" yaml:"multiline,omitempty" mapstructure:"multiline"`
}

// ConversionConfig holds the pattern rule tables consumed by the converter.
// Absent categories mean "no rules applied"; shield and restore are safe
// no-ops on an empty configuration.
type ConversionConfig struct {
	// Shielding rules run before the external transpiler.
	Shielding []RuleConfig `json:"shielding" yaml:"shielding" mapstructure:"shielding"`

	// Cleanup rules strip transpiler artifacts from the raw output.
	Cleanup []RuleConfig `json:"cleanup" yaml:"cleanup" mapstructure:"cleanup"`

	// Restoration rules rebuild native AsciiDoc from shielding markers.
	Restoration []RuleConfig `json:"restoration" yaml:"restoration" mapstructure:"restoration"`

	// ExtensionMap rewrites link extensions (e.g. md -> adoc).
	ExtensionMap map[string]string `json:"extension_map" yaml:"extension_map" mapstructure:"extension_map"`

	// PathNormalization rules clean link paths before xref emission.
	PathNormalization []RuleConfig `json:"path_normalization" yaml:"path_normalization" mapstructure:"path_normalization"`

	// XrefDetection matches internal links eligible for rewriting.
	// External links are excluded by construction of the pattern.
	XrefDetection string `json:"xref_detection" yaml:"xref_detection" mapstructure:"xref_detection"`
}

// LinterConfig holds the style-checker settings used to generate the vale
// configuration artifact.
type LinterConfig struct {
	// Styles lists the rule sets enabled for validation (default "Vale").
	Styles []string `json:"styles" yaml:"styles" mapstructure:"styles"`

	// StylesPath is the directory containing the style rule definitions.
	StylesPath string `json:"styles_path" yaml:"styles_path" mapstructure:"styles_path"`

	// MinAlertLevel is the minimum severity reported: suggestion, warning,
	// or error (default "suggestion").
	MinAlertLevel string `json:"min_alert_level" yaml:"min_alert_level" mapstructure:"min_alert_level"`

	// GuideURL links the human-readable style guide shown under reports.
	GuideURL string `json:"guide_url,omitempty" yaml:"guide_url,omitempty" mapstructure:"guide_url"`
}

// GrammarConfig holds overrides for the tense transformer.
type GrammarConfig struct {
	// SpecialVerbs maps irregular verb lemmas to their progressive form
	// (e.g. setup -> "setting up"), taking priority over the algorithmic
	// morphology.
	SpecialVerbs map[string]string `json:"special_verbs" yaml:"special_verbs" mapstructure:"special_verbs"`
}

// PatternConfig holds the extraction patterns and trigger phrases used to
// categorize violations during repair.
type PatternConfig struct {
	// SuggestionExtraction captures the flagged token from a violation
	// message (default: single-quoted token).
	SuggestionExtraction string `json:"suggestion_extraction" yaml:"suggestion_extraction" mapstructure:"suggestion_extraction"`

	// RemovalTrigger marks messages asking for a surgical deletion
	// (default "removing").
	RemovalTrigger string `json:"removal_trigger" yaml:"removal_trigger" mapstructure:"removal_trigger"`

	// SwapTrigger marks messages carrying a correct/wrong token pair
	// (default "instead of").
	SwapTrigger string `json:"swap_trigger" yaml:"swap_trigger" mapstructure:"swap_trigger"`

	// SpellingCheck is the rule-identifier substring marking spelling
	// findings (default "Spelling").
	SpellingCheck string `json:"spelling_check" yaml:"spelling_check" mapstructure:"spelling_check"`

	// TenseCheck is the rule identifier for future-tense findings
	// (default "common.Will").
	TenseCheck string `json:"tense_check" yaml:"tense_check" mapstructure:"tense_check"`

	// IgnoredPlaceholders lists checker action parameters that are not
	// real suggestions (e.g. template placeholders).
	IgnoredPlaceholders []string `json:"ignored_placeholders" yaml:"ignored_placeholders" mapstructure:"ignored_placeholders"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Pipeline   PipelineSettings `json:"pipeline" yaml:"pipeline" mapstructure:"pipeline"`
	Conversion ConversionConfig `json:"conversion" yaml:"conversion" mapstructure:"conversion"`
	Linter     LinterConfig     `json:"linter" yaml:"linter" mapstructure:"linter"`
	Grammar    GrammarConfig    `json:"grammar" yaml:"grammar" mapstructure:"grammar"`
	Patterns   PatternConfig    `json:"patterns" yaml:"patterns" mapstructure:"patterns"`
}
