// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package knowledge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	assert.Equal(t, 0, s.Len())
	_, ok := s.Correction("anything")
	assert.False(t, ok)
}

func TestLoadCorruptDocumentResetsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{{{not yaml"), 0o644))

	s := Load(path)
	assert.Equal(t, 0, s.Len())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "kb.yaml")

	s := Load(path)
	s.SetBranding("suse", "SUSE")
	s.Learn("kubernetes", "Kubernetes")
	require.NoError(t, s.Save())

	reloaded := Load(path)
	got, ok := reloaded.Correction("suse")
	require.True(t, ok)
	assert.Equal(t, "SUSE", got)

	got, ok = reloaded.Correction("KUBERNETES")
	require.True(t, ok, "lookup must be case-insensitive")
	assert.Equal(t, "Kubernetes", got)
}

func TestCombinedBrandingWins(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "kb.yaml"))
	s.SetBranding("suse", "SUSE")
	s.learned["suse"] = "Suse"
	s.Learn("foo", "Foo")

	combined := s.Combined()
	assert.Equal(t, "SUSE", combined["suse"])
	assert.Equal(t, "Foo", combined["foo"])
}

func TestLearnNeverOverwritesBranding(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "kb.yaml"))
	s.SetBranding("suse", "SUSE")

	s.Learn("SuSE", "Suse")

	got, _ := s.Correction("suse")
	assert.Equal(t, "SUSE", got)
	assert.True(t, s.IsBranding("SUSE"))
	assert.Equal(t, 1, s.Len())
}

func TestLoadNormalizesKeyCase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.yaml")
	doc := "branding:\n  SuSE: SUSE\nlearned:\n  KuBeRnEtEs: Kubernetes\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	s := Load(path)
	got, ok := s.Correction("suse")
	require.True(t, ok)
	assert.Equal(t, "SUSE", got)
	assert.True(t, s.IsBranding("suse"))
}

func TestSaveIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.yaml")
	s := Load(path)
	s.SetBranding("suse", "SUSE")

	require.NoError(t, s.Save())
	require.NoError(t, s.Save())

	assert.Equal(t, 1, Load(path).Len())
}
