// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package nlp exposes the natural-language parsing capability consumed by
// the tense transformer. The capability is injected at construction time;
// when no model is available the identity parser keeps the pipeline
// running with the transform degraded to a no-op.
package nlp

// Token is one POS-tagged token of a parsed line. Tags follow the Penn
// Treebank set (NN, NNS, PRP, VB, ...).
type Token struct {
	Text string
	Tag  string
}

// Parser produces the syntactic parse of a single line.
type Parser interface {
	Parse(line string) ([]Token, error)
}

// noop is the no-model parser: it yields no tokens, which makes every
// NLP-driven transform an identity.
type noop struct{}

func (noop) Parse(string) ([]Token, error) { return nil, nil }

// Noop returns the identity parser used when no language model is
// available.
func Noop() Parser { return noop{} }
