package explore

import (
	"sync"
	"time"

	"github.com/kailas-cloud/tutordex/internal/domain/subject"
)

// ResultsFunc receives the results of a settled search.
type ResultsFunc func(term string, results []subject.Subject)

// Session is one explore screen: it holds the current term and re-runs the search
// once typing settles. Loading is true from a term change until its results are delivered.
type Session struct {
	svc      *Service
	debounce *Debouncer
	onResult ResultsFunc

	flushMu sync.Mutex // serializes searches and result delivery

	mu      sync.Mutex
	term    string
	seq     uint64
	loading bool
	results []subject.Subject
}

// NewSession starts a session showing the whole catalog.
func (s *Service) NewSession(delay time.Duration, onResult ResultsFunc) *Session {
	return &Session{
		svc:      s,
		debounce: NewDebouncer(delay),
		onResult: onResult,
		results:  s.Search(""),
	}
}

// SetTerm records a new term and schedules the search.
func (s *Session) SetTerm(term string) {
	s.mu.Lock()
	s.term = term
	s.seq++
	s.loading = true
	s.mu.Unlock()

	s.debounce.Trigger(s.flush)
}

// Flush runs a pending search now and returns once its results are delivered.
func (s *Session) Flush() {
	s.debounce.Stop()
	s.flush()
}

func (s *Session) flush() {
	s.flushMu.Lock()
	defer s.flushMu.Unlock()

	s.mu.Lock()
	if !s.loading {
		s.mu.Unlock()
		return
	}
	term, seq := s.term, s.seq
	results := s.svc.Search(term)
	s.results = results
	s.mu.Unlock()

	if s.onResult != nil {
		s.onResult(term, clone(results))
	}

	s.mu.Lock()
	if s.seq == seq {
		s.loading = false
	}
	s.mu.Unlock()
}

// Term returns the current term.
func (s *Session) Term() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.term
}

// Loading reports whether a search is pending.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Results returns the results of the last settled search.
func (s *Session) Results() []subject.Subject {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.results)
}

// Close drops a pending search.
func (s *Session) Close() {
	s.debounce.Stop()
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func clone(in []subject.Subject) []subject.Subject {
	out := make([]subject.Subject, len(in))
	copy(out, in)
	return out
}
