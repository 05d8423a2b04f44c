// Package lint is the rule engine: rule definitions, the global registry,
// the Analyzer that feeds scanner records to rules, and the severity policy.
//
// # Rule Registration
//
// Rules register themselves from init() functions when their packages are
// imported:
//
//	import _ "github.com/leapstack-labs/bashate/pkg/lint/rules"
//
// # Rule Groups
//
//   - E00x (whitespace): indentation, trailing blanks, line length, file framing
//   - E01x/E02x (structure): do/then placement, heredocs, function declarations
//   - E04x (deprecated): obsolete or error-prone syntax
//   - E040/E049 (syntax): findings from the external syntax checker
//
// # Scopes
//
// A ScopeLine rule runs once per scanner record whose kind it lists in
// RuleDef.Kinds (commands only when Kinds is nil). ScopeFile rules run once
// per decoded file; ScopeInput rules run only when decoding failed.
//
// # Configuration
//
// Config drops and re-grades diagnostics by code prefix:
//
//	config := lint.NewConfig()
//	config.Ignore("E006")
//	config.ForceWarning("E04")
//	config.ForceError("E042")
//	config.SetRuleOptions("E003", map[string]any{"width": 2})
//
// Rules always emit their default severity; Config.Resolve is the only
// place severities change, so the same input always grades the same way.
package lint
