// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fix implements the violation-driven repair engine. Violations are
// grouped by line and applied in descending line order so that edits on
// later lines never invalidate the indices of earlier, not-yet-processed
// lines. Five repair categories run per violation (vocabulary correction,
// surgical removal, phrasal substitution, spelling discovery, tense shift),
// followed by a global enforcement pass that applies every known
// correction whether or not the checker flagged it.
package fix

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/doc-engine/internal/knowledge"
	"github.com/pdiddy/doc-engine/internal/nlp"
	"github.com/pdiddy/doc-engine/pkg/types"
)

// Default trigger phrases and check identifiers, overridable through
// pattern configuration.
const (
	DefaultRemovalTrigger = "removing"
	DefaultSwapTrigger    = "instead of"
	DefaultSpellingCheck  = "Spelling"
	DefaultTenseCheck     = "common.Will"
)

// Fixer repairs AsciiDoc text from style violations. It owns the knowledge
// store for the duration of a pipeline run: the store is read at
// construction and flushed after every FixFile call, so corrections learned
// on one file reach the next file of the same batch.
type Fixer struct {
	store     *knowledge.Store
	extractRe *regexp.Regexp
	removal   string
	swap      string
	spelling  string
	tenseID   string
	tense     *TenseShifter
}

// New creates a Fixer over an owned knowledge store. parser may be the
// identity parser; the tense category then degrades to a no-op.
func New(store *knowledge.Store, patterns types.PatternConfig, grammar types.GrammarConfig, parser nlp.Parser) (*Fixer, error) {
	expr := patterns.SuggestionExtraction
	if expr == "" {
		expr = `'(.*?)'`
	}
	extractRe, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("suggestion_extraction: %w", err)
	}

	f := &Fixer{
		store:     store,
		extractRe: extractRe,
		removal:   strings.ToLower(patterns.RemovalTrigger),
		swap:      strings.ToLower(patterns.SwapTrigger),
		spelling:  patterns.SpellingCheck,
		tenseID:   patterns.TenseCheck,
		tense:     NewTenseShifter(parser, grammar.SpecialVerbs),
	}
	if f.removal == "" {
		f.removal = DefaultRemovalTrigger
	}
	if f.swap == "" {
		f.swap = DefaultSwapTrigger
	}
	if f.spelling == "" {
		f.spelling = DefaultSpellingCheck
	}
	if f.tenseID == "" {
		f.tenseID = DefaultTenseCheck
	}
	return f, nil
}

// Store returns the owned knowledge store.
func (f *Fixer) Store() *knowledge.Store { return f.store }

// Repair applies all violations to content and returns the repaired text
// and the number of changed lines. Violations referencing lines outside
// the current bounds are skipped; a bad violation never aborts the rest.
func (f *Fixer) Repair(content string, violations []types.Violation) (string, int) {
	lines := strings.Split(content, "\n")

	byLine := make(map[int][]types.Violation)
	for _, v := range violations {
		byLine[v.Line] = append(byLine[v.Line], v)
	}

	nums := make([]int, 0, len(byLine))
	for n := range byLine {
		nums = append(nums, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(nums)))

	// Snapshot of the combined vocabulary for this pass. Terms learned
	// mid-pass take effect on the next file, once persisted.
	combined := f.store.Combined()

	fixes := 0
	for _, num := range nums {
		idx := num - 1
		if idx < 0 || idx >= len(lines) {
			continue
		}

		working := lines[idx]
		original := working

		for _, v := range byLine[num] {
			working = f.applyViolation(working, v, combined)
		}

		// Global enforcement: the checker may not flag every instance of
		// a known-bad term on a line that already triggered another
		// repair. Runs last so no category above reintroduces a wrong
		// term.
		for wrong, correct := range combined {
			working = replaceWord(working, wrong, correct)
		}

		if working != original {
			lines[idx] = working
			fixes++
		}
	}

	return strings.Join(lines, "\n"), fixes
}

// applyViolation runs one violation through the repair categories.
func (f *Fixer) applyViolation(line string, v types.Violation, combined map[string]string) string {
	msg := v.Message
	msgLower := strings.ToLower(msg)

	// Vocabulary correction: a known wrong term quoted in the message, in
	// straight or curly quotes.
	for wrong, correct := range combined {
		if strings.Contains(msgLower, "'"+wrong+"'") || strings.Contains(msgLower, "‘"+wrong+"’") {
			line = replaceWord(line, wrong, correct)
		}
	}

	switch {
	case strings.Contains(msgLower, f.removal):
		if target, ok := f.extractFirst(msg); ok {
			line = removeWord(line, target)
		}

	case strings.Contains(msgLower, f.swap):
		if terms := f.extractAll(msg); len(terms) >= 2 {
			line = replaceWord(line, terms[1], terms[0])
		}

	case strings.Contains(v.Check, f.spelling):
		if word, ok := f.extractFirst(msg); ok {
			if _, known := combined[strings.ToLower(word)]; !known {
				corrected := capitalize(word)
				line = replaceWord(line, word, corrected)
				f.store.Learn(word, corrected)
			}
		}
	}

	if v.Check == f.tenseID {
		line = f.tense.PresentProgressive(line)
	}

	return line
}

// FixFile repairs the file at path in place and persists the knowledge
// store unconditionally, even when zero fixes were made.
func (f *Fixer) FixFile(path string, violations []types.Violation) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}

	repaired, fixes := f.Repair(string(data), violations)

	if err := os.WriteFile(path, []byte(repaired), 0o644); err != nil {
		return 0, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.store.Save(); err != nil {
		return fixes, err
	}
	return fixes, nil
}

func (f *Fixer) extractFirst(msg string) (string, bool) {
	if m := f.extractRe.FindStringSubmatch(msg); len(m) > 1 && m[1] != "" {
		return m[1], true
	}
	return "", false
}

func (f *Fixer) extractAll(msg string) []string {
	var out []string
	for _, m := range f.extractRe.FindAllStringSubmatch(msg, -1) {
		if len(m) > 1 {
			out = append(out, m[1])
		}
	}
	return out
}

// replaceWord substitutes every whole-word, case-insensitive occurrence of
// word. Boundaries never match inside larger tokens: correcting "suse"
// leaves "suseX" untouched.
func replaceWord(line, word, replacement string) string {
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	if err != nil {
		return line
	}
	return re.ReplaceAllLiteralString(line, replacement)
}

// removeWord deletes every whole-word occurrence of word plus one trailing
// space, so no double space is left behind.
func removeWord(line, word string) string {
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(word) + `\b ?`)
	if err != nil {
		return line
	}
	return re.ReplaceAllLiteralString(line, "")
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(word string) string {
	if word == "" {
		return word
	}
	r := []rune(word)
	return strings.ToUpper(string(r[:1])) + strings.ToLower(string(r[1:]))
}
