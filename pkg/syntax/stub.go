package syntax

import (
	"context"
	"sync"
)

// Stub is a Checker with canned results, keyed by path.
type Stub struct {
	mu       sync.Mutex
	Findings map[string]*Finding
	Err      error // returned for every path when set
	calls    []string
}

// Check returns the canned finding for path.
func (s *Stub) Check(_ context.Context, path string) (*Finding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, path)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Findings[path], nil
}

// Calls returns the paths checked so far.
func (s *Stub) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}
