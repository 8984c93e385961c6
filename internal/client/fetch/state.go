// Package fetch models the transient state of one remote request as owned by
// a single screen: a small tagged value (idle/loading/loaded/failed) plus a
// generation counter that lets a newer request supersede a stale one.
package fetch

import "sync/atomic"

// Status enumerates the lifecycle of a screen-owned request.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusFailed
)

// State is the per-screen request state for one kind of fetch. Data is only
// meaningful when Status is StatusLoaded; Message only when StatusFailed.
// A screen resets its State on remount; it is never shared across screens.
type State[T any] struct {
	Status  Status
	Data    T
	Message string
}

// Loading flips the state to in-flight, clearing any previous error.
func (s *State[T]) Loading() {
	s.Status = StatusLoading
	s.Message = ""
}

// Loaded stores a successful result.
func (s *State[T]) Loaded(data T) {
	s.Status = StatusLoaded
	s.Data = data
	s.Message = ""
}

// Failed records a user-facing failure message. Previously loaded data is
// kept so the screen can keep rendering it behind the error notice.
func (s *State[T]) Failed(msg string) {
	s.Status = StatusFailed
	s.Message = msg
}

// Tracker hands out request generations for one kind of fetch. The result of
// the most recently issued request wins: a caller captures the generation
// returned by Begin before the remote call and checks IsCurrent afterwards;
// a stale result must be discarded without touching screen state.
type Tracker struct {
	gen atomic.Uint64
}

// Begin starts a new generation, superseding any request still in flight.
func (t *Tracker) Begin() uint64 {
	return t.gen.Add(1)
}

// IsCurrent reports whether gen is still the newest issued generation.
func (t *Tracker) IsCurrent(gen uint64) bool {
	return t.gen.Load() == gen
}
