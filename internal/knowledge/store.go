// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package knowledge persists the vocabulary-correction memory shared across
// repair runs: a branding mapping (authoritative, human-curated) and a
// learned mapping (auto-discovered by the spelling repair). The store is
// loaded once at repair-engine construction, mutated in memory during a
// run, and flushed after every repaired file so discoveries reach the next
// file in the same batch.
package knowledge

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// document is the persisted shape: two top-level mappings of lowercase
// wrong term to canonical display-cased correction.
type document struct {
	Branding map[string]string `yaml:"branding"`
	Learned  map[string]string `yaml:"learned"`
}

// Store holds the in-memory vocabulary corrections. Lookups are
// case-insensitive; stored values keep their canonical casing.
type Store struct {
	path     string
	branding map[string]string
	learned  map[string]string
}

// Load reads the store at path. A missing or corrupt document resets to an
// empty store rather than failing; the store never aborts a pipeline run.
func Load(path string) *Store {
	s := &Store{
		path:     path,
		branding: map[string]string{},
		learned:  map[string]string{},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return s
	}

	// Keys are stored lowercase; normalize defensively on load.
	for k, v := range doc.Branding {
		s.branding[strings.ToLower(k)] = v
	}
	for k, v := range doc.Learned {
		s.learned[strings.ToLower(k)] = v
	}
	return s
}

// Save writes the store back to its document, creating parent directories
// as needed. Save is idempotent and called after every repaired file.
func (s *Store) Save() error {
	data, err := yaml.Marshal(document{Branding: s.branding, Learned: s.learned})
	if err != nil {
		return fmt.Errorf("encoding knowledge store: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating knowledge directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing knowledge store: %w", err)
	}
	return nil
}

// Combined merges learned and branding corrections, branding winning on
// conflicts since it is the authoritative mapping.
func (s *Store) Combined() map[string]string {
	out := make(map[string]string, len(s.branding)+len(s.learned))
	for k, v := range s.learned {
		out[k] = v
	}
	for k, v := range s.branding {
		out[k] = v
	}
	return out
}

// Correction returns the canonical correction for term, if known in either
// mapping.
func (s *Store) Correction(term string) (string, bool) {
	key := strings.ToLower(term)
	if v, ok := s.branding[key]; ok {
		return v, true
	}
	v, ok := s.learned[key]
	return v, ok
}

// IsBranding reports whether term is an authoritative branding entry.
func (s *Store) IsBranding(term string) bool {
	_, ok := s.branding[strings.ToLower(term)]
	return ok
}

// Learn records an auto-discovered correction. Branding entries are never
// overwritten by learning.
func (s *Store) Learn(wrong, correct string) {
	key := strings.ToLower(wrong)
	if _, ok := s.branding[key]; ok {
		return
	}
	s.learned[key] = correct
}

// SetBranding installs an authoritative correction. Used by curation
// tooling and tests; the repair engine itself only reads branding.
func (s *Store) SetBranding(wrong, correct string) {
	s.branding[strings.ToLower(wrong)] = correct
}

// Len returns the total number of known corrections.
func (s *Store) Len() int {
	return len(s.branding) + len(s.learned)
}
