package lint

import (
	"strings"

	"github.com/leapstack-labs/bashate/pkg/core"
)

// Config controls which diagnostics are reported and at what severity.
//
// Code lists match by prefix: "E04" covers E041 through E049. A code in
// both the error and warning lists is an error.
type Config struct {
	ignore []string
	warn   []string
	errors []string

	// RuleOptions contains rule-specific configuration keyed by rule ID.
	RuleOptions map[string]map[string]any
}

// NewConfig creates a default configuration: every rule enabled at its
// default severity.
func NewConfig() *Config {
	return &Config{
		RuleOptions: make(map[string]map[string]any),
	}
}

// Ignore drops diagnostics whose code matches any of codes.
func (c *Config) Ignore(codes ...string) *Config {
	c.ignore = appendCodes(c.ignore, codes)
	return c
}

// ForceWarning reports matching codes as warnings.
func (c *Config) ForceWarning(codes ...string) *Config {
	c.warn = appendCodes(c.warn, codes)
	return c
}

// ForceError reports matching codes as errors. Takes precedence over
// ForceWarning.
func (c *Config) ForceError(codes ...string) *Config {
	c.errors = appendCodes(c.errors, codes)
	return c
}

// IsIgnored returns true if diagnostics for ruleID are dropped.
func (c *Config) IsIgnored(ruleID string) bool {
	if c == nil {
		return false
	}
	return matchAny(c.ignore, ruleID)
}

// GetSeverity returns the severity for a rule, applying the forced lists.
func (c *Config) GetSeverity(ruleID string, defaultSeverity core.Severity) core.Severity {
	if c == nil {
		return defaultSeverity
	}
	if matchAny(c.errors, ruleID) {
		return core.SeverityError
	}
	if matchAny(c.warn, ruleID) {
		return core.SeverityWarning
	}
	return defaultSeverity
}

// Resolve applies the policy to diags: ignored codes are dropped, then
// forced warnings and forced errors are applied. The input is not modified.
func (c *Config) Resolve(diags []Diagnostic) []Diagnostic {
	out := make([]Diagnostic, 0, len(diags))
	for _, d := range diags {
		if c.IsIgnored(d.RuleID) {
			continue
		}
		d.Severity = c.GetSeverity(d.RuleID, d.Severity)
		out = append(out, d)
	}
	return out
}

// SetRuleOptions sets options for a specific rule.
func (c *Config) SetRuleOptions(ruleID string, opts map[string]any) *Config {
	if c.RuleOptions == nil {
		c.RuleOptions = make(map[string]map[string]any)
	}
	c.RuleOptions[ruleID] = opts
	return c
}

// GetRuleOptions returns options for a specific rule, or nil.
func (c *Config) GetRuleOptions(ruleID string) map[string]any {
	if c == nil || c.RuleOptions == nil {
		return nil
	}
	return c.RuleOptions[ruleID]
}

// ParseCodeList splits a list such as "E001,E002|E003" into codes. Entries
// are separated by commas or pipes; blanks are trimmed and empty entries
// dropped.
func ParseCodeList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '|' })
	codes := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.ToUpper(strings.TrimSpace(f)); f != "" {
			codes = append(codes, f)
		}
	}
	return codes
}

func appendCodes(list, codes []string) []string {
	for _, code := range codes {
		list = append(list, ParseCodeList(code)...)
	}
	return list
}

func matchAny(prefixes []string, ruleID string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(ruleID, p) {
			return true
		}
	}
	return false
}
