package lint

import (
	"context"
	"errors"
	"log/slog"

	"github.com/leapstack-labs/bashate/pkg/scanner"
	"github.com/leapstack-labs/bashate/pkg/source"
	"github.com/leapstack-labs/bashate/pkg/syntax"
)

// Analyzer runs registered rules against shell files.
type Analyzer struct {
	config *Config
	syntax syntax.Checker
	logger *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithSyntaxChecker enables the syntax rules with checker c.
func WithSyntaxChecker(c syntax.Checker) Option {
	return func(a *Analyzer) { a.syntax = c }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

// NewAnalyzer creates a new analyzer with optional configuration.
func NewAnalyzer(config *Config, opts ...Option) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	a := &Analyzer{
		config: config,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Config returns the analyzer's configuration.
func (a *Analyzer) Config() *Config {
	return a.config
}

// AnalyzeSource decodes raw and analyzes it. Input that cannot be decoded
// yields only the malformed-input diagnostics.
func (a *Analyzer) AnalyzeSource(ctx context.Context, path string, raw []byte) []Diagnostic {
	f, err := source.Parse(path, raw)
	if err != nil {
		var malformed *source.MalformedError
		if errors.As(err, &malformed) {
			return a.AnalyzeMalformed(ctx, malformed)
		}
		// Parse only fails on malformed input.
		return a.AnalyzeMalformed(ctx, &source.MalformedError{Path: path, Line: 1, Reason: err.Error()})
	}
	return a.AnalyzeFile(ctx, f)
}

// AnalyzeFile drives one pass of the scanner over f and dispatches every
// record to the line rules that see its kind, then runs the file rules.
// The result has the policy applied.
func (a *Analyzer) AnalyzeFile(ctx context.Context, f *source.File) []Diagnostic {
	var lineRules, fileRules []RuleDef
	for _, rule := range a.rules() {
		switch rule.Scope {
		case ScopeLine:
			lineRules = append(lineRules, rule)
		case ScopeFile:
			fileRules = append(fileRules, rule)
		}
	}
	a.logger.Debug("analyzing file", "path", f.Path, "lines", f.NumLines(),
		"line_rules", len(lineRules), "file_rules", len(fileRules))

	var diagnostics []Diagnostic
	for rec := range scanner.New(f).Records() {
		if ctx.Err() != nil {
			break
		}
		for _, rule := range lineRules {
			if !rule.Sees(rec.Kind) {
				continue
			}
			in := Input{Ctx: ctx, File: f, Line: &rec, Prev: rec.Prev, Syntax: a.syntax}
			diagnostics = append(diagnostics, a.run(rule, in)...)
		}
	}

	for _, rule := range fileRules {
		in := Input{Ctx: ctx, File: f, Syntax: a.syntax}
		diagnostics = append(diagnostics, a.run(rule, in)...)
	}

	return a.config.Resolve(diagnostics)
}

// AnalyzeMalformed runs the input rules for a file that could not be
// decoded. No other rule sees the file.
func (a *Analyzer) AnalyzeMalformed(ctx context.Context, err *source.MalformedError) []Diagnostic {
	a.logger.Debug("malformed input", "path", err.Path, "line", err.Line, "reason", err.Reason)

	var diagnostics []Diagnostic
	for _, rule := range a.rules() {
		if rule.Scope != ScopeInput {
			continue
		}
		in := Input{Ctx: ctx, Malformed: err}
		diagnostics = append(diagnostics, a.run(rule, in)...)
	}
	return a.config.Resolve(diagnostics)
}

// rules returns the registered rules that can run and have at least one
// code left unignored. Catalogue-only entries have no Check; the rule that
// lists them in Reports runs on their behalf, and Resolve drops whatever
// codes are ignored.
func (a *Analyzer) rules() []RuleDef {
	all := GetAllRules()
	rules := all[:0]
	for _, rule := range all {
		if rule.Check == nil || !a.wanted(rule) {
			continue
		}
		rules = append(rules, rule)
	}
	return rules
}

func (a *Analyzer) wanted(rule RuleDef) bool {
	if !a.config.IsIgnored(rule.ID) {
		return true
	}
	for _, id := range rule.Reports {
		if !a.config.IsIgnored(id) {
			return true
		}
	}
	return false
}

func (a *Analyzer) run(rule RuleDef, in Input) []Diagnostic {
	diags := rule.Check(in, a.config.GetRuleOptions(rule.ID))
	for i := range diags {
		diags[i].File = in.Path()
		if diags[i].RuleID == "" {
			diags[i].RuleID = rule.ID
		}
	}
	return diags
}
