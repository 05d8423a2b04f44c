package report

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/bashate/pkg/core"
	"github.com/leapstack-labs/bashate/pkg/lint"
	"github.com/leapstack-labs/bashate/pkg/token"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
	)
}

func diag(file string, line, col int, code string, sev core.Severity, msg string) lint.Diagnostic {
	return lint.Diagnostic{
		RuleID:   code,
		Severity: sev,
		Message:  msg,
		Pos:      token.Position{Line: line, Column: col},
		File:     file,
	}
}

// sample is deliberately out of order.
func sample() []lint.Diagnostic {
	return []lint.Diagnostic{
		diag("b.sh", 2, 1, "E040", core.SeverityError, "Syntax error: unexpected end of file"),
		diag("a.sh", 3, 80, "E006", core.SeverityWarning, "Line too long"),
		diag("a.sh", 1, 5, "E001", core.SeverityError, "Trailing Whitespace"),
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{"pretty", FormatPretty, false},
		{"sarif", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSort(t *testing.T) {
	diags := []lint.Diagnostic{
		diag("a.sh", 4, 1, "E003", core.SeverityError, "Indent not multiple of 4"),
		diag("a.sh", 4, 9, "E001", core.SeverityError, "Trailing Whitespace"),
		diag("a.sh", 2, 3, "E041", core.SeverityError, "Arithmetic expansion using $[ is deprecated for $(("),
		diag("a.sh", 2, 1, "E041", core.SeverityError, "Arithmetic expansion using $[ is deprecated for $(("),
		diag("0.sh", 9, 1, "E004", core.SeverityError, "File did not end with a newline"),
	}
	Sort(diags)

	var got []string
	for _, d := range diags {
		got = append(got, d.File+":"+d.Pos.String()+":"+d.RuleID)
	}
	assert.Equal(t, []string{
		"0.sh:9:1:E004",
		"a.sh:2:1:E041",
		"a.sh:2:3:E041",
		"a.sh:4:9:E001",
		"a.sh:4:1:E003",
	}, got)
}

func TestSummarizeAndExitCode(t *testing.T) {
	diags := sample()
	assert.Equal(t, Summary{Files: 2, Errors: 2, Warnings: 1}, Summarize(diags, 2))
	assert.Equal(t, 1, ExitCode(diags))

	warnings := []lint.Diagnostic{diag("a.sh", 3, 80, "E006", core.SeverityWarning, "Line too long")}
	assert.Equal(t, 0, ExitCode(warnings))
	assert.Equal(t, 0, ExitCode(nil))
}

func TestWrite(t *testing.T) {
	g := newGoldie(t)

	for _, format := range Formats {
		t.Run(string(format), func(t *testing.T) {
			diags := sample()
			Sort(diags)

			var buf bytes.Buffer
			require.NoError(t, Write(&buf, format, diags, Options{Files: 3}))
			g.Assert(t, string(format), buf.Bytes())
		})
	}
}

func TestWriteJSONIsParsable(t *testing.T) {
	diags := sample()
	Sort(diags)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, diags, Options{Files: 3}))

	var out jsonOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, Summary{Files: 3, Errors: 2, Warnings: 1}, out.Summary)
	require.Len(t, out.Diagnostics, 3)
	assert.Equal(t, "E001", out.Diagnostics[0].Code)
	assert.Equal(t, "warning", out.Diagnostics[1].Severity)
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatText, nil, Options{Files: 1}))
	assert.Empty(t, buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, FormatJSON, nil, Options{Files: 1}))
	assert.Contains(t, buf.String(), `"diagnostics": []`)

	buf.Reset()
	require.NoError(t, Write(&buf, FormatPretty, nil, Options{Files: 1}))
	assert.Equal(t, "No style issues found in 1 file(s)\n", buf.String())
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, Summary{Errors: 2, Warnings: 1}))
	assert.Equal(t, "1 bashate warning(s) found\n2 bashate error(s) found\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteSummary(&buf, Summary{Files: 4}))
	assert.Empty(t, buf.String())
}

func TestColorEnabled(t *testing.T) {
	assert.False(t, ColorEnabled(&bytes.Buffer{}))
}
