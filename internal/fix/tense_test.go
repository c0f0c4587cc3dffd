// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fix

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/doc-engine/internal/nlp"
)

// stubParser returns a fixed token sequence, standing in for the language
// model.
type stubParser struct {
	tokens []nlp.Token
	err    error
}

func (s *stubParser) Parse(string) ([]nlp.Token, error) {
	return s.tokens, s.err
}

// tagged builds a token sequence from "text/TAG" pairs.
func tagged(pairs ...string) []nlp.Token {
	out := make([]nlp.Token, len(pairs))
	for i, p := range pairs {
		idx := strings.LastIndex(p, "/")
		out[i] = nlp.Token{Text: p[:idx], Tag: p[idx+1:]}
	}
	return out
}

func TestPresentProgressive(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		tokens    []nlp.Token
		overrides map[string]string
		want      string
	}{
		{
			name:   "singular subject",
			line:   "The system will reboot.",
			tokens: tagged("The/DT", "system/NN", "will/MD", "reboot/VB", "./."),
			want:   "The system is rebooting.",
		},
		{
			name:   "plural pronoun subject",
			line:   "We will test the system.",
			tokens: tagged("We/PRP", "will/MD", "test/VB", "the/DT", "system/NN", "./."),
			want:   "We are testing the system.",
		},
		{
			name:   "morphologically plural subject",
			line:   "The systems will reboot.",
			tokens: tagged("The/DT", "systems/NNS", "will/MD", "reboot/VB", "./."),
			want:   "The systems are rebooting.",
		},
		{
			name:      "override table wins",
			line:      "We will setup the server.",
			tokens:    tagged("We/PRP", "will/MD", "setup/VB", "the/DT", "server/NN", "./."),
			overrides: map[string]string{"setup": "setting up"},
			want:      "We are setting up the server.",
		},
		{
			name:   "silent e dropped",
			line:   "The tool will make a backup.",
			tokens: tagged("The/DT", "tool/NN", "will/MD", "make/VB", "a/DT", "backup/NN", "./."),
			want:   "The tool is making a backup.",
		},
		{
			name:   "consonant doubling",
			line:   "The job will run nightly.",
			tokens: tagged("The/DT", "job/NN", "will/MD", "run/VB", "nightly/RB", "./."),
			want:   "The job is running nightly.",
		},
		{
			name:   "double e keeps e",
			line:   "They will agree eventually.",
			tokens: tagged("They/PRP", "will/MD", "agree/VB", "eventually/RB", "./."),
			want:   "They are agreeing eventually.",
		},
		{
			name:   "will without a verb untouched",
			line:   "Read the will carefully.",
			tokens: tagged("Read/VB", "the/DT", "will/NN", "carefully/RB", "./."),
			want:   "Read the will carefully.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shifter := NewTenseShifter(&stubParser{tokens: tt.tokens}, tt.overrides)
			assert.Equal(t, tt.want, shifter.PresentProgressive(tt.line))
		})
	}
}

func TestPresentProgressiveNoModel(t *testing.T) {
	shifter := NewTenseShifter(nlp.Noop(), nil)
	line := "The system will reboot."
	assert.Equal(t, line, shifter.PresentProgressive(line))
}

func TestPresentProgressiveParseError(t *testing.T) {
	shifter := NewTenseShifter(&stubParser{err: errors.New("model unavailable")}, nil)
	line := "The system will reboot."
	assert.Equal(t, line, shifter.PresentProgressive(line))
}

func TestPresentProgressiveNilParser(t *testing.T) {
	shifter := NewTenseShifter(nil, nil)
	line := "We will test."
	assert.Equal(t, line, shifter.PresentProgressive(line))
}
