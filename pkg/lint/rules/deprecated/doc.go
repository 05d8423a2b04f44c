// Package deprecated provides lint rules for obsolete or error-prone shell
// syntax.
//
// Rules in this package:
//   - E041: $[ arithmetic expansion
//   - E042: local declaration hides errors
//   - E043: Arithmetic compound has inconsistent return semantics
//   - E044: Comparison operator inside a single-bracket test
package deprecated
