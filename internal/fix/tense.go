// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fix

import (
	"regexp"
	"strings"

	"github.com/pdiddy/doc-engine/internal/nlp"
)

// pluralPronouns act as plural subjects regardless of morphology.
var pluralPronouns = map[string]bool{"we": true, "they": true, "you": true}

// TenseShifter rewrites future-tense constructions into present
// progressive form. It is stateless per invocation; the only external
// state consumed is the syntactic parse of the input line.
type TenseShifter struct {
	parser    nlp.Parser
	overrides map[string]string
}

// NewTenseShifter creates a shifter over the given parser. overrides maps
// irregular verb lemmas to their progressive form and takes priority over
// the algorithmic morphology. A nil parser selects the identity parser.
func NewTenseShifter(parser nlp.Parser, overrides map[string]string) *TenseShifter {
	if parser == nil {
		parser = nlp.Noop()
	}
	lowered := make(map[string]string, len(overrides))
	for k, v := range overrides {
		lowered[strings.ToLower(k)] = v
	}
	return &TenseShifter{parser: parser, overrides: lowered}
}

// PresentProgressive rewrites every "will <verb>" span on the line into
// "<is|are> <verb-ing>", choosing the auxiliary from the subject's number.
// Parse failures and the identity parser leave the line unchanged; the
// transform never fails the pipeline.
func (t *TenseShifter) PresentProgressive(line string) string {
	tokens, err := t.parser.Parse(line)
	if err != nil || len(tokens) == 0 {
		return line
	}

	working := line
	for i, tok := range tokens {
		if !strings.EqualFold(tok.Text, "will") {
			continue
		}

		verb, ok := nextVerb(tokens, i)
		if !ok {
			continue
		}

		aux := "is"
		if subjectIsPlural(tokens, i) {
			aux = "are"
		}
		prog := t.progressive(strings.ToLower(verb.Text))

		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(tok.Text) + `\s+` + regexp.QuoteMeta(verb.Text) + `\b`)
		if err != nil {
			continue
		}
		working = re.ReplaceAllLiteralString(working, aux+" "+prog)
	}
	return working
}

// nextVerb finds the verb governed by the auxiliary at index i: the first
// verb-tagged token to its right, stopping at sentence-final punctuation.
func nextVerb(tokens []nlp.Token, i int) (nlp.Token, bool) {
	for j := i + 1; j < len(tokens); j++ {
		if tokens[j].Tag == "." {
			break
		}
		if strings.HasPrefix(tokens[j].Tag, "VB") {
			return tokens[j], true
		}
	}
	return nlp.Token{}, false
}

// subjectIsPlural classifies the auxiliary's subject: the nearest noun or
// pronoun to its left, plural when morphologically plural or one of the
// plural-acting pronouns.
func subjectIsPlural(tokens []nlp.Token, i int) bool {
	for j := i - 1; j >= 0; j-- {
		switch tokens[j].Tag {
		case "NNS", "NNPS":
			return true
		case "NN", "NNP":
			return false
		case "PRP":
			return pluralPronouns[strings.ToLower(tokens[j].Text)]
		}
	}
	return false
}

// progressive computes the -ing form of a verb lemma: override table
// first, then silent-e dropping, then consonant doubling on an eligible
// consonant-vowel-consonant ending, then plain suffixing.
func (t *TenseShifter) progressive(lemma string) string {
	if p, ok := t.overrides[lemma]; ok {
		return p
	}
	if strings.HasSuffix(lemma, "e") && !strings.HasSuffix(lemma, "ee") {
		return lemma[:len(lemma)-1] + "ing"
	}
	if n := len(lemma); n > 2 && !isVowel(lemma[n-1]) && isVowel(lemma[n-2]) && !isVowel(lemma[n-3]) {
		return lemma + string(lemma[n-1]) + "ing"
	}
	return lemma + "ing"
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
