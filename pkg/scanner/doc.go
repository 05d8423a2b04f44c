// Package scanner turns the physical lines of a shell script into a stream
// of classified logical lines.
//
// # Pipeline
//
// Each physical line is first classified against the current State
// (Classify), then the Assembler folds the classifications into
// LogicalLine records:
//
//   - backslash-continued lines and lines inside a multi-line quoted string
//     are joined into one logical line; every record keeps the physical
//     lines it was built from so diagnostics can point at the right one
//   - heredoc operators (<<TOKEN, <<-TOKEN, <<'TOKEN', <<"TOKEN") queue a
//     terminator; the body starts after the logical line that opened it
//     completes and ends at a line equal to the token
//   - comment-only and blank lines are reported as their own records
//
// The stream always ends with a KindEOF record. If a heredoc is still open
// at end of file, that record carries it so rules can report the
// unterminated heredoc at its opening line.
//
// # Heuristics
//
// This is not a shell parser. Heredoc operators are found by lexical
// match (a << inside a string is still an operator) except inside an
// arithmetic (( ... )) or $[ ... ] span on the same line, and <<< is a
// here-string. Inline comments start at a # that begins a word outside
// quotes.
package scanner
