// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package nlp

import (
	prose "github.com/jdkato/prose/v2"
)

// proseParser tags tokens with the prose English model.
type proseParser struct{}

// NewProse returns a Parser backed by the prose POS tagger.
func NewProse() Parser { return proseParser{} }

func (proseParser) Parse(line string) ([]Token, error) {
	doc, err := prose.NewDocument(line,
		prose.WithExtraction(false),
		prose.WithSegmentation(false))
	if err != nil {
		return nil, err
	}

	toks := doc.Tokens()
	out := make([]Token, len(toks))
	for i, t := range toks {
		out[i] = Token{Text: t.Text, Tag: t.Tag}
	}
	return out, nil
}
