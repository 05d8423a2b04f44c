// Package rules registers every bashate rule.
//
// Rules are organized by category:
//   - whitespace: E001-E007
//   - structure: E010-E020
//   - deprecated: E041-E044
//   - syntax: E040, E049
//
// To register all rules with the global lint registry, import this package
// with a blank identifier:
//
//	import _ "github.com/leapstack-labs/bashate/pkg/lint/rules"
//
// Individual rule categories can also be imported:
//
//	import _ "github.com/leapstack-labs/bashate/pkg/lint/rules/whitespace"
package rules
