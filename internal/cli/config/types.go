// Package config loads bashate settings from defaults, a .bashate.yaml
// file, BASHATE_ environment variables and command-line flags.
package config

import (
	"strings"
	"time"

	"github.com/leapstack-labs/bashate/pkg/lint"
	"github.com/leapstack-labs/bashate/pkg/syntax"
)

// FileName is the configuration file searched for upward from the
// working directory.
const FileName = ".bashate.yaml"

// Defaults.
const (
	DefaultMaxLineLength = 79
	DefaultFormat        = "text"
	DefaultIndentWidth   = 4
	DefaultPlacement     = "separate"
	DefaultSyntaxTimeout = syntax.DefaultTimeout
)

// Config holds all bashate settings.
type Config struct {
	Ignore []string `koanf:"ignore" json:"ignore"`
	Warn   []string `koanf:"warn" json:"warn"`
	Error  []string `koanf:"error" json:"error"`

	Verbose       bool   `koanf:"verbose" json:"verbose"`
	Format        string `koanf:"format" json:"format" validate:"oneof=text json pretty"`
	Jobs          int    `koanf:"jobs" json:"jobs" validate:"gte=0"`
	MaxLineLength int    `koanf:"max_line_length" json:"max_line_length" validate:"gte=1"`

	IndentWidth    int      `koanf:"indent_width" json:"indent_width" validate:"gte=1,lte=16"`
	AlignArguments bool     `koanf:"align_arguments" json:"align_arguments"`
	Placement      string   `koanf:"placement" json:"placement" validate:"oneof=separate same-line same_line"`
	Suffixes       []string `koanf:"suffixes" json:"suffixes" validate:"dive,required"`

	SyntaxCommand string        `koanf:"syntax_command" json:"syntax_command"`
	NoSyntaxCheck bool          `koanf:"no_syntax_check" json:"no_syntax_check"`
	SyntaxTimeout time.Duration `koanf:"syntax_timeout" json:"syntax_timeout" validate:"gte=0"`

	// Rules holds per-code options, e.g. rules.E006.max_length. They are
	// applied after the top-level settings above.
	Rules map[string]map[string]any `koanf:"rules" json:"rules"`
}

// Defaults returns the built-in configuration as a flat koanf map.
func Defaults() map[string]any {
	return map[string]any{
		"format":          DefaultFormat,
		"jobs":            0,
		"max_line_length": DefaultMaxLineLength,
		"indent_width":    DefaultIndentWidth,
		"align_arguments": true,
		"placement":       DefaultPlacement,
		"suffixes":        []string{".sh"},
		"syntax_command":  syntax.DefaultCommand,
		"no_syntax_check": false,
		"syntax_timeout":  DefaultSyntaxTimeout.String(),
		"verbose":         false,
	}
}

// LintConfig turns the settings into an analyzer configuration: severity
// policy lists plus rule options.
func (c *Config) LintConfig() *lint.Config {
	lc := lint.NewConfig().
		Ignore(c.Ignore...).
		ForceWarning(c.Warn...).
		ForceError(c.Error...)

	lc.SetRuleOptions("E003", map[string]any{
		"width":           c.IndentWidth,
		"align_arguments": c.AlignArguments,
	})
	lc.SetRuleOptions("E005", map[string]any{"suffixes": c.Suffixes})
	lc.SetRuleOptions("E006", map[string]any{"max_length": c.MaxLineLength})
	lc.SetRuleOptions("E010", map[string]any{"placement": c.Placement})
	lc.SetRuleOptions("E011", map[string]any{"placement": c.Placement})

	for code, opts := range c.Rules {
		code = strings.ToUpper(code)
		merged := lc.GetRuleOptions(code)
		if merged == nil {
			merged = map[string]any{}
		}
		for k, v := range opts {
			merged[k] = v
		}
		lc.SetRuleOptions(code, merged)
	}
	return lc
}
