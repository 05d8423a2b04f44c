package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/bashate/internal/testutil"
	"github.com/leapstack-labs/bashate/pkg/core"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringSliceP("ignore", "i", nil, "")
	fs.StringSliceP("warn", "w", nil, "")
	fs.StringSliceP("error", "e", nil, "")
	fs.BoolP("verbose", "v", false, "")
	fs.Int("max-line-length", DefaultMaxLineLength, "")
	fs.StringP("format", "f", DefaultFormat, "")
	fs.String("config", "", "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	l := Loader{Dir: t.TempDir()}
	cfg, err := l.Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultMaxLineLength, cfg.MaxLineLength)
	assert.Equal(t, DefaultFormat, cfg.Format)
	assert.Equal(t, DefaultIndentWidth, cfg.IndentWidth)
	assert.True(t, cfg.AlignArguments)
	assert.Equal(t, DefaultPlacement, cfg.Placement)
	assert.Equal(t, []string{".sh"}, cfg.Suffixes)
	assert.Equal(t, "bash -n", cfg.SyntaxCommand)
	assert.Equal(t, 30*time.Second, cfg.SyntaxTimeout)
	assert.Empty(t, cfg.Ignore)
	assert.Empty(t, l.FileUsed())
}

func TestLoad_FileFoundUpward(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, `
ignore: [E006]
warn: E04
max_line_length: 100
placement: same-line
rules:
  e003:
    width: 2
`)
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	l := Loader{Dir: nested}
	cfg, err := l.Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, path, l.FileUsed())
	assert.Equal(t, []string{"E006"}, cfg.Ignore)
	assert.Equal(t, []string{"E04"}, cfg.Warn)
	assert.Equal(t, 100, cfg.MaxLineLength)
	assert.Equal(t, "same-line", cfg.Placement)

	lc := cfg.LintConfig()
	assert.Equal(t, 2, lc.GetRuleOptions("E003")["width"])
	assert.Equal(t, true, lc.GetRuleOptions("E003")["align_arguments"])
	assert.Equal(t, 100, lc.GetRuleOptions("E006")["max_length"])
	assert.True(t, lc.IsIgnored("E006"))
	assert.Equal(t, core.SeverityWarning, lc.GetSeverity("E041", core.SeverityError))
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: json\n"), 0o644))

	l := Loader{Dir: t.TempDir()}
	cfg, err := l.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, path, l.FileUsed())

	_, err = l.Load(filepath.Join(dir, "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "max_line_length: 100\nformat: json\nignore: [E001]\n")
	t.Setenv("BASHATE_MAX_LINE_LENGTH", "120")
	t.Setenv("BASHATE_IGNORE", "E002,E003")

	flags := testFlags()
	require.NoError(t, flags.Parse([]string{"--max-line-length", "140"}))

	l := Loader{Dir: dir}
	cfg, err := l.Load("", flags)
	require.NoError(t, err)

	// flag > env > file
	assert.Equal(t, 140, cfg.MaxLineLength)
	assert.Equal(t, []string{"E002", "E003"}, cfg.Ignore)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoad_UnsetFlagsDoNotOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "format: pretty\nverbose: true\n")

	flags := testFlags()
	require.NoError(t, flags.Parse([]string{"-i", "E001|E002", "-e", "E005"}))

	l := Loader{Dir: dir}
	cfg, err := l.Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, "pretty", cfg.Format)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, []string{"E001|E002"}, cfg.Ignore)
	assert.Equal(t, []string{"E005"}, cfg.Error)

	lc := cfg.LintConfig()
	assert.True(t, lc.IsIgnored("E002"))
	assert.Equal(t, core.SeverityError, lc.GetSeverity("E005", core.SeverityWarning))
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad format", "format: xml\n", "format must be one of"},
		{"bad length", "max_line_length: 0\n", "max_line_length must be at least 1"},
		{"bad placement", "placement: sideways\n", "placement must be one of"},
		{"bad code", "ignore: [trailing]\n", `"TRAILING" is not a rule code`},
		{"negative jobs", "jobs: -1\n", "jobs must be at least 0"},
		{"not yaml", "ignore: [E001\n", "error reading config file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			l := Loader{Dir: dir}
			_, err := l.Load("", nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidCode(t *testing.T) {
	for _, code := range []string{"E", "E0", "E04", "E042", "W001"} {
		assert.True(t, validCode(code), code)
	}
	for _, code := range []string{"", "0", "E0421", "EE", "e001"} {
		assert.False(t, validCode(code), code)
	}
}

func TestLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()))

	logger := testutil.NewTestLogger(t)
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, GetLogger(ctx))
}

func TestFromContext(t *testing.T) {
	cfg := FromContext(context.Background())
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultFormat, cfg.Format)
	assert.Equal(t, DefaultMaxLineLength, cfg.MaxLineLength)
	require.NoError(t, cfg.Validate())

	custom := &Config{Format: "json"}
	assert.Same(t, custom, FromContext(WithConfig(context.Background(), custom)))
}
