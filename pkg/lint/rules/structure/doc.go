// Package structure provides lint rules for compound-command layout,
// function declarations and heredoc closure.
//
// Rules in this package:
//   - E010: "do" placement relative to for/while/until
//   - E011: "then" placement relative to if/elif
//   - E012: Heredoc delimited by end of file
//   - E020: Function declaration not in format ^function name {$
//
// E010 and E011 take a "placement" option: "separate" (default) wants the
// keyword on its own line, "same-line" wants it at the end of the header.
package structure
