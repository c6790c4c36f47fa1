package state

import (
	"time"

	"countryexplorer/internal/domain"
)

// AppState holds the inputs the view is derived from. Nothing derived from
// these fields is stored here.
type AppState struct {
	// Query outcome
	Loading   bool             // true until the countries query resolves
	Err       error            // set when the query failed
	Countries []domain.Country // full list from the last successful query

	// Timing, for the status line
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewAppState creates state for a query that has not resolved yet
func NewAppState() *AppState {
	return &AppState{
		Loading: true,
	}
}

// Start marks the query as in flight
func (s *AppState) Start(now time.Time) {
	s.Loading = true
	s.Err = nil
	s.StartedAt = now
	s.FinishedAt = time.Time{}
}

// Resolve records the query outcome. A failed query clears any countries.
func (s *AppState) Resolve(countries []domain.Country, err error, now time.Time) {
	s.Loading = false
	s.FinishedAt = now
	if err != nil {
		s.Err = err
		s.Countries = nil
		return
	}
	s.Err = nil
	s.Countries = countries
}

// Elapsed returns how long the query took, or zero while it is in flight
func (s *AppState) Elapsed() time.Duration {
	if s.Loading || s.StartedAt.IsZero() || s.FinishedAt.IsZero() {
		return 0
	}
	return s.FinishedAt.Sub(s.StartedAt)
}
