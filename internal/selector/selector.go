// Package selector owns the current-mode state machine: manual pins vs
// auto detection, a bounded transition history, and change notifications
// delivered to an explicit observer list.
package selector

import (
	"sync"
	"time"

	"github.com/lyndonlyu/gearshift/internal/catalog"
	"github.com/lyndonlyu/gearshift/internal/detector"
	"github.com/lyndonlyu/gearshift/internal/scorer"
)

const (
	// historyCap bounds the transition history; the oldest entry is
	// evicted first once the buffer is full.
	historyCap = 100
	// queryTruncate is the number of query characters kept per history
	// entry.
	queryTruncate = 100
)

// HistoryEntry records one detection outcome.
type HistoryEntry struct {
	Mode      string    `json:"mode"`
	Timestamp time.Time `json:"timestamp"`
	Query     string    `json:"query"`
}

// ModeChangeEvent is the only outward signal the selector produces.
// Detection is nil for manual changes.
type ModeChangeEvent struct {
	From      string           `json:"from"`
	To        string           `json:"to"`
	Manual    bool             `json:"manual"`
	Detection *detector.Result `json:"detection,omitempty"`
}

// Listener receives mode-change events. Dispatch is synchronous on the
// caller's stack; listeners must not block indefinitely.
type Listener func(ModeChangeEvent)

// Selector composes a detector with mode state. One Selector per
// session; it is not meant to be shared across logical callers without
// external serialization.
type Selector struct {
	mu        sync.Mutex
	detector  detector.Detector
	current   string
	history   []HistoryEntry
	listeners map[int]Listener
	nextID    int
}

// New creates a Selector in auto mode with an empty history.
func New(d detector.Detector) *Selector {
	return &Selector{
		detector:  d,
		current:   catalog.Auto,
		listeners: make(map[int]Listener),
	}
}

// Subscribe registers a listener and returns its unsubscribe function.
func (s *Selector) Subscribe(l Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// SetMode pins the selector to mode unconditionally and emits exactly one
// manual change event. The identifier is not validated against the
// catalog here; that is the catalog's job.
func (s *Selector) SetMode(mode string) {
	s.mu.Lock()
	previous := s.current
	s.current = mode
	s.mu.Unlock()

	s.emit(ModeChangeEvent{From: previous, To: mode, Manual: true})
}

// ProcessQuery runs detection for the task and records the outcome.
// A pinned mode is passed to the detector as a hint; auto passes none.
// The detection is appended to history and an event fires only when the
// selector is in auto mode and the suggestion differs from it. The
// current mode itself is never changed here: detection observes and
// reports, it does not self-promote. Detector errors propagate unmodified
// and leave the history untouched.
func (s *Selector) ProcessQuery(task scorer.TaskContext) (detector.Result, error) {
	s.mu.Lock()
	current := s.current
	s.mu.Unlock()

	dctx := detector.Context{Task: task, PreviousMode: current}
	if current != catalog.Auto {
		dctx.UserPreference = current
	}

	result, err := s.detector.Detect(dctx)
	if err != nil {
		return detector.Result{}, err
	}

	s.mu.Lock()
	s.history = append(s.history, HistoryEntry{
		Mode:      result.Mode,
		Timestamp: time.Now(),
		Query:     truncate(task.Query, queryTruncate),
	})
	if len(s.history) > historyCap {
		s.history = s.history[len(s.history)-historyCap:]
	}
	shouldEmit := result.Mode != current && current == catalog.Auto
	s.mu.Unlock()

	if shouldEmit {
		d := result
		s.emit(ModeChangeEvent{From: current, To: result.Mode, Detection: &d})
	}
	return result, nil
}

// CurrentMode returns the selector's current mode.
func (s *Selector) CurrentMode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// History returns a copy of the transition history, oldest first.
// Mutating the returned slice never affects the selector.
func (s *Selector) History() []HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

// Stats returns history entry counts grouped by mode.
func (s *Selector) Stats() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := make(map[string]int, len(s.history))
	for _, e := range s.history {
		stats[e.Mode]++
	}
	return stats
}

// ClearHistory empties the history buffer. The current mode is untouched.
func (s *Selector) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}

// emit delivers the event to a snapshot of the listeners, outside the
// lock so a listener may call back into the selector.
func (s *Selector) emit(event ModeChangeEvent) {
	s.mu.Lock()
	snapshot := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		snapshot = append(snapshot, l)
	}
	s.mu.Unlock()

	for _, l := range snapshot {
		l(event)
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
