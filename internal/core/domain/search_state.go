package domain

import "strings"

// Phase is the coarse state of a recommendation view.
type Phase string

const (
	// PhaseIdle accepts new submissions.
	PhaseIdle Phase = "idle"

	// PhaseBusy is waiting for an analysis to finish.
	PhaseBusy Phase = "busy"
)

// SearchState is the mutable state owned by one recommendation view.
// The zero value is the initial state: empty query, idle.
type SearchState struct {
	// Query is the current text in the search field.
	Query string

	// Busy is true while an analysis is pending.
	Busy bool
}

// SetQuery replaces the query. It never changes Busy.
func (s *SearchState) SetQuery(text string) {
	s.Query = text
}

// CanSubmit reports whether Begin would succeed.
func (s *SearchState) CanSubmit() bool {
	return !s.Busy && strings.TrimSpace(s.Query) != ""
}

// Begin moves the state from idle to busy.
// It returns false and changes nothing if the trimmed query is empty
// or an analysis is already pending.
func (s *SearchState) Begin() bool {
	if !s.CanSubmit() {
		return false
	}
	s.Busy = true
	return true
}

// Finish moves the state from busy back to idle.
// It returns false if the state was not busy.
func (s *SearchState) Finish() bool {
	if !s.Busy {
		return false
	}
	s.Busy = false
	return true
}

// Phase returns the current phase.
func (s *SearchState) Phase() Phase {
	if s.Busy {
		return PhaseBusy
	}
	return PhaseIdle
}
