// Package whitespace provides lint rules for indentation, trailing blanks,
// line length and file framing.
//
// Rules in this package:
//   - E001: Trailing whitespace
//   - E002: Tab indents
//   - E003: Indent not a multiple of the indent width
//   - E004: File did not end with a newline
//   - E005: File does not begin with #! or have a .sh suffix
//   - E006: Line too long
//   - E007: Malformed input
//
// None of these rules look inside heredoc bodies or at heredoc terminators.
package whitespace
