package scanner

// State is the scanner state carried across a single forward pass over one
// file. A fresh State is used for every file.
type State struct {
	// Pending holds heredocs opened on the logical line being built; their
	// bodies start once that logical line completes.
	Pending []Heredoc
	// Active holds heredocs whose bodies are being consumed, head first.
	Active []Heredoc
	// Buffer holds the physical lines of the logical line being built.
	Buffer []PhysicalLine
	// Quote is the quote left open by the previous line: 0, '\'', '"' or
	// '$' (an ANSI-C $'...' string).
	Quote byte
	// Lookback is the trimmed code of the last non-blank, non-comment line.
	Lookback string
}

// Open reports whether a logical line is being built.
func (s *State) Open() bool {
	return len(s.Buffer) > 0
}

// InHeredoc reports whether the next line belongs to a heredoc body.
func (s *State) InHeredoc() bool {
	return len(s.Active) > 0
}

// Unterminated returns the oldest heredoc that was never closed.
func (s *State) Unterminated() (Heredoc, bool) {
	if len(s.Active) > 0 {
		return s.Active[0], true
	}
	if len(s.Pending) > 0 {
		return s.Pending[0], true
	}
	return Heredoc{}, false
}
