package lint

import (
	"slices"

	"github.com/leapstack-labs/bashate/pkg/core"
	"github.com/leapstack-labs/bashate/pkg/scanner"
)

// Scope says when the Analyzer runs a rule.
type Scope int

const (
	// ScopeLine rules run once per record whose kind is in RuleDef.Kinds.
	ScopeLine Scope = iota
	// ScopeFile rules run once per decoded file, after the record stream.
	ScopeFile
	// ScopeInput rules run only for files that could not be decoded.
	ScopeInput
)

// String returns the name used in the rule catalogue.
func (s Scope) String() string {
	switch s {
	case ScopeLine:
		return "line"
	case ScopeFile:
		return "file"
	case ScopeInput:
		return "input"
	default:
		return "unknown"
	}
}

// Sees reports whether a ScopeLine rule inspects records of kind k.
func (def RuleDef) Sees(k scanner.Kind) bool {
	if def.Scope != ScopeLine {
		return false
	}
	if len(def.Kinds) == 0 {
		return k == scanner.KindCommand
	}
	return slices.Contains(def.Kinds, k)
}

// Info extracts metadata for documentation and tooling.
func (def RuleDef) Info() core.RuleInfo {
	return core.RuleInfo{
		ID:              def.ID,
		Name:            def.Name,
		Group:           def.Group,
		Description:     def.Description,
		DefaultSeverity: def.Severity,
		ConfigKeys:      def.ConfigKeys,
		Scope:           def.Scope.String(),
		Rationale:       def.Rationale,
		BadExample:      def.BadExample,
		GoodExample:     def.GoodExample,
		Fix:             def.Fix,
	}
}
