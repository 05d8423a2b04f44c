package lint

import (
	"context"

	"github.com/leapstack-labs/bashate/pkg/core"
	"github.com/leapstack-labs/bashate/pkg/scanner"
	"github.com/leapstack-labs/bashate/pkg/source"
	"github.com/leapstack-labs/bashate/pkg/syntax"
	"github.com/leapstack-labs/bashate/pkg/token"
)

// =============================================================================
// Rule Definitions
// =============================================================================

// RuleDef is a data-driven rule definition. Rules are stateless: all context
// comes through Input, and records are handed over by value so no rule can
// disturb the scanner.
type RuleDef struct {
	ID          string         // Code, e.g. "E001"
	Name        string         // Human-readable name, e.g. "whitespace.trailing"
	Group       string         // Category: "whitespace", "structure", "deprecated", "syntax"
	Description string         // One-line description; also the default message
	Severity    core.Severity  // Default severity
	Scope       Scope          // When the rule runs
	Kinds       []scanner.Kind // Record kinds a ScopeLine rule sees; nil means KindCommand
	Check       CheckFunc      // The check function
	ConfigKeys  []string       // Configuration keys this rule accepts
	Reports     []string       // Catalogue-only codes Check also emits

	// Documentation fields for the rule catalogue
	Rationale   string
	BadExample  string
	GoodExample string
	Fix         string
}

// CheckFunc inspects one input and returns diagnostics at the rule's default
// severity. The opts parameter carries rule-specific options.
type CheckFunc func(in Input, opts map[string]any) []Diagnostic

// Input is what a rule sees.
type Input struct {
	Ctx  context.Context
	File *source.File

	// Line is the record under inspection for ScopeLine rules; nil for the
	// other scopes.
	Line *scanner.LogicalLine

	// Prev is the trimmed code of the last code line before Line.
	Prev string

	// Syntax is the external checker; nil when syntax checking is off.
	Syntax syntax.Checker

	// Malformed is set for ScopeInput rules: the reason the file could not
	// be decoded. File is nil in that case.
	Malformed *source.MalformedError
}

// Path returns the path of the file under inspection.
func (in Input) Path() string {
	if in.File != nil {
		return in.File.Path
	}
	if in.Malformed != nil {
		return in.Malformed.Path
	}
	return ""
}

// =============================================================================
// Diagnostics
// =============================================================================

// Diagnostic represents a lint finding.
type Diagnostic struct {
	RuleID   string         `json:"code"`
	Severity core.Severity  `json:"severity"`
	Message  string         `json:"message"`
	Pos      token.Position `json:"-"`
	File     string         `json:"file"`
}

// At builds a diagnostic for rule def at pos with the rule's default
// severity.
func (def RuleDef) At(pos token.Position, msg string) Diagnostic {
	if msg == "" {
		msg = def.Description
	}
	return Diagnostic{
		RuleID:   def.ID,
		Severity: def.Severity,
		Message:  msg,
		Pos:      pos,
	}
}
