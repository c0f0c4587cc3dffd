// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lint

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/doc-engine/pkg/types"
)

// fakeRunner implements tool.Runner with canned checker output.
type fakeRunner struct {
	missing  bool
	stdout   string
	stderr   string
	err      error
	lastArgs []string
}

func (f *fakeRunner) LookPath(bin string) (string, error) {
	if f.missing {
		return "", errors.New("executable file not found in $PATH")
	}
	return "/usr/bin/" + bin, nil
}

func (f *fakeRunner) Run(name string, args []string, stdin io.Reader) ([]byte, []byte, error) {
	f.lastArgs = args
	return []byte(f.stdout), []byte(f.stderr), f.err
}

func newChecker(t *testing.T, r *fakeRunner, linter types.LinterConfig, patterns types.PatternConfig) *Checker {
	t.Helper()
	c, err := NewChecker(r, linter, patterns, filepath.Join(t.TempDir(), ".vale.ini"))
	require.NoError(t, err)
	return c
}

func TestNewCheckerMissingBinary(t *testing.T) {
	_, err := NewChecker(&fakeRunner{missing: true}, types.LinterConfig{}, types.PatternConfig{}, ".vale.ini")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vale")
}

func TestWriteConfigDefaults(t *testing.T) {
	iniPath := filepath.Join(t.TempDir(), ".vale.ini")
	c, err := NewChecker(&fakeRunner{}, types.LinterConfig{}, types.PatternConfig{}, iniPath)
	require.NoError(t, err)
	require.NoError(t, c.WriteConfig())

	data, err := os.ReadFile(iniPath)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "MinAlertLevel = suggestion")
	assert.Contains(t, content, "BasedOnStyles = Vale")
	assert.Contains(t, content, "StylesPath = ")
}

func TestWriteConfigCustomStyles(t *testing.T) {
	iniPath := filepath.Join(t.TempDir(), ".vale.ini")
	linter := types.LinterConfig{
		Styles:        []string{"common", "branding"},
		StylesPath:    t.TempDir(),
		MinAlertLevel: "warning",
	}
	c, err := NewChecker(&fakeRunner{}, linter, types.PatternConfig{}, iniPath)
	require.NoError(t, err)
	require.NoError(t, c.WriteConfig())

	data, err := os.ReadFile(iniPath)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "MinAlertLevel = warning")
	assert.Contains(t, content, "BasedOnStyles = common, branding")
}

func TestRunParsesFindings(t *testing.T) {
	out := `{
		"/docs/page.adoc": [
			{"Line": 3, "Check": "common.Will", "Severity": "error",
			 "Message": "Avoid future tense.", "Description": "Use present."},
			{"Line": 0, "Check": "common.Broken", "Severity": "error",
			 "Message": "No line number."},
			{"Line": 7, "Check": "Vale.Spelling", "Severity": "warning",
			 "Message": "Did you really mean 'linux'?"}
		]
	}`
	r := &fakeRunner{stdout: out, err: errors.New("exit status 1")}
	c := newChecker(t, r, types.LinterConfig{}, types.PatternConfig{})

	var log bytes.Buffer
	findings, err := c.Run("/docs/page.adoc", &log)
	require.NoError(t, err, "non-zero exit with parseable output is not a failure")

	vs := findings["/docs/page.adoc"]
	require.Len(t, vs, 2, "findings without a line number are dropped")

	assert.Equal(t, 3, vs[0].Line)
	assert.Equal(t, types.SeverityError, vs[0].Severity)
	assert.Equal(t, "common.Will", vs[0].Check)
	assert.Equal(t, "linux", vs[1].Suggestion)
}

func TestRunCleanFile(t *testing.T) {
	c := newChecker(t, &fakeRunner{stdout: ""}, types.LinterConfig{}, types.PatternConfig{})

	findings, err := c.Run("/docs/clean.adoc", io.Discard)
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestRunCheckerFailure(t *testing.T) {
	r := &fakeRunner{stderr: "E100 no such file\n", err: errors.New("exit status 2")}
	c := newChecker(t, r, types.LinterConfig{}, types.PatternConfig{})

	_, err := c.Run("/docs/missing.adoc", io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such file")
}

func TestRunUnparseableOutputDegrades(t *testing.T) {
	c := newChecker(t, &fakeRunner{stdout: "not json at all"}, types.LinterConfig{}, types.PatternConfig{})

	var log bytes.Buffer
	findings, err := c.Run("/docs/page.adoc", &log)
	require.NoError(t, err)
	assert.Empty(t, findings)
	assert.Contains(t, log.String(), "warning")
}

func TestExtractSuggestionActionParam(t *testing.T) {
	c := newChecker(t, &fakeRunner{}, types.LinterConfig{}, types.PatternConfig{})

	issue := valeIssue{Message: "Use 'other' here."}
	issue.Action.Params = []string{"preferred"}
	assert.Equal(t, "preferred", c.extractSuggestion(issue))
}

func TestExtractSuggestionIgnoredPlaceholder(t *testing.T) {
	patterns := types.PatternConfig{IgnoredPlaceholders: []string{"REPLACEMENT"}}
	c := newChecker(t, &fakeRunner{}, types.LinterConfig{}, patterns)

	issue := valeIssue{Description: "Prefer 'fallback' instead."}
	issue.Action.Params = []string{"REPLACEMENT"}
	assert.Equal(t, "fallback", c.extractSuggestion(issue),
		"placeholder params fall through to pattern extraction")
}

func TestExtractSuggestionNothingToExtract(t *testing.T) {
	c := newChecker(t, &fakeRunner{}, types.LinterConfig{}, types.PatternConfig{})
	assert.Equal(t, "", c.extractSuggestion(valeIssue{Message: "No quotes here."}))
}

func TestReportPass(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, map[string][]types.Violation{}, "")
	assert.Contains(t, buf.String(), "Quality check passed.")
}

func TestReportFindings(t *testing.T) {
	findings := map[string][]types.Violation{
		"/docs/page.adoc": {
			{Line: 3, Check: "common.Will", Severity: types.SeverityError, Message: "Avoid future tense."},
			{Line: 9, Check: "Vale.Spelling", Severity: types.SeverityWarning,
				Message: strings.Repeat("long message ", 10)},
		},
	}

	var buf bytes.Buffer
	Report(&buf, findings, "https://example.com/style")
	out := buf.String()

	assert.Contains(t, out, "common.Will")
	assert.Contains(t, out, "2 violation(s)")
	assert.Contains(t, out, "Style guide: https://example.com/style")
	assert.Contains(t, out, "...", "long messages are truncated")
}
