// Package syntax provides the lint rules backed by the external syntax
// checker (bash -n by default).
//
// Rules in this package:
//   - E040: Syntax error
//   - E049: Syntax checker unavailable
//
// Both are reported by the E040 check, which runs once per file when the
// Analyzer has a checker. Ignoring E040 skips the external call entirely.
package syntax
