package scanner

import (
	"iter"

	"github.com/leapstack-labs/bashate/pkg/source"
)

// Assembler produces the logical-line stream for one file. It is
// forward-only: Records can be ranged over once; rescanning needs a new
// Assembler.
type Assembler struct {
	file  *source.File
	state State
}

// New returns an Assembler over f with a fresh State.
func New(f *source.File) *Assembler {
	return &Assembler{file: f}
}

// State returns a copy of the current scanner state.
func (a *Assembler) State() State {
	return a.state
}

// Records yields every record of the file in order, ending with KindEOF.
func (a *Assembler) Records() iter.Seq[LogicalLine] {
	return func(yield func(LogicalLine) bool) {
		for i, text := range a.file.Lines {
			c := Classify(&a.state, i+1, text)
			if ll, ok := a.state.Apply(c); ok {
				if !yield(ll) {
					return
				}
			}
		}

		// A continuation or quote still open at end of file is flushed as
		// it stands.
		if a.state.Open() {
			a.state.Quote = 0
			if !yield(a.state.flush()) {
				return
			}
		}

		eof := LogicalLine{Kind: KindEOF, Prev: a.state.Lookback}
		if h, ok := a.state.Unterminated(); ok {
			eof.Heredoc = &h
		}
		yield(eof)
	}
}

// Collect drains the stream into a slice. Mostly useful in tests.
func Collect(f *source.File) []LogicalLine {
	var out []LogicalLine
	for ll := range New(f).Records() {
		out = append(out, ll)
	}
	return out
}
