package clinic

import (
	"errors"
	"testing"
	"time"
)

func TestSessionStateStart(t *testing.T) {
	now := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

	t.Run("idle to active", func(t *testing.T) {
		next, err := SessionState{}.Start(3, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !next.Active() || next.PatientID != 3 || !next.StartedAt.Equal(now) {
			t.Fatalf("unexpected state %+v", next)
		}
	})

	t.Run("no patient keeps state", func(t *testing.T) {
		idle := SessionState{}
		next, err := idle.Start(0, now)
		if !errors.Is(err, ErrNoPatientSelected) {
			t.Fatalf("expected ErrNoPatientSelected, got %v", err)
		}
		if next != idle {
			t.Fatalf("state changed: %+v", next)
		}
	})

	t.Run("already active keeps original start", func(t *testing.T) {
		active := SessionState{Status: StatusActive, PatientID: 1, StartedAt: now}
		next, err := active.Start(2, now.Add(time.Hour))
		if !errors.Is(err, ErrSessionInProgress) {
			t.Fatalf("expected ErrSessionInProgress, got %v", err)
		}
		if next != active {
			t.Fatalf("state changed: %+v", next)
		}
	})
}

func TestSessionStateDurationMinutes(t *testing.T) {
	start := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	state := SessionState{Status: StatusActive, PatientID: 1, StartedAt: start}

	tests := []struct {
		name    string
		elapsed time.Duration
		want    int
	}{
		{"immediately", 0, 0},
		{"59 seconds truncates", 59 * time.Second, 0},
		{"exactly one minute", time.Minute, 1},
		{"50m59s truncates", 50*time.Minute + 59*time.Second, 50},
		{"over a day keeps counting", 25 * time.Hour, 1500},
		{"clock went backwards", -time.Minute, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := state.DurationMinutes(start.Add(tt.elapsed)); got != tt.want {
				t.Errorf("DurationMinutes(+%s) = %d, want %d", tt.elapsed, got, tt.want)
			}
		})
	}

	if got := (SessionState{}).DurationMinutes(start); got != 0 {
		t.Errorf("idle state should report 0 minutes, got %d", got)
	}
}
