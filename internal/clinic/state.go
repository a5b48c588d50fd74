package clinic

import (
	"time"
)

// Status of the session timer
type Status int

const (
	StatusIdle Status = iota
	StatusActive
)

func (s Status) String() string {
	if s == StatusActive {
		return "active"
	}
	return "idle"
}

// SessionState is the value object behind Start/End Session. Only one
// session can be timed at a time.
type SessionState struct {
	Status    Status
	PatientID uint
	StartedAt time.Time
}

// Active reports whether a session is being timed
func (s SessionState) Active() bool {
	return s.Status == StatusActive
}

// Start returns the state of a session started for patientID at now
func (s SessionState) Start(patientID uint, now time.Time) (SessionState, error) {
	if patientID == 0 {
		return s, ErrNoPatientSelected
	}
	if s.Active() {
		return s, ErrSessionInProgress
	}
	return SessionState{Status: StatusActive, PatientID: patientID, StartedAt: now}, nil
}

// Elapsed returns how long the session has been running
func (s SessionState) Elapsed(now time.Time) time.Duration {
	if !s.Active() {
		return 0
	}
	elapsed := now.Sub(s.StartedAt)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// DurationMinutes returns whole elapsed minutes, truncated
func (s SessionState) DurationMinutes(now time.Time) int {
	return int(s.Elapsed(now)/time.Second) / 60
}
