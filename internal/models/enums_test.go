package models

import "testing"

func TestParseSessionType(t *testing.T) {
	tests := []struct {
		input   string
		want    SessionType
		wantErr bool
	}{
		{"In-person", SessionInPerson, false},
		{"in person", SessionInPerson, false},
		{"INPERSON", SessionInPerson, false},
		{"Online", SessionOnline, false},
		{" online ", SessionOnline, false},
		{"phone", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSessionType(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSessionType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSessionType(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		input   string
		want    Platform
		wantErr bool
	}{
		{"Zoom", PlatformZoom, false},
		{"google meet", PlatformGoogleMeet, false},
		{"Google-Meet", PlatformGoogleMeet, false},
		{"meet", PlatformGoogleMeet, false},
		{"teams", PlatformTeams, false},
		{"skype", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePlatform(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePlatform(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePlatform(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsePaymentStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    PaymentStatus
		wantErr bool
	}{
		{"Paid", PaymentPaid, false},
		{"pending", PaymentPending, false},
		{"OVERDUE", PaymentOverdue, false},
		{"refunded", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePaymentStatus(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePaymentStatus(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePaymentStatus(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPatientLabel(t *testing.T) {
	p := Patient{ID: 7, Name: "Jane Doe"}
	if got := p.Label(); got != "7: Jane Doe" {
		t.Errorf("Label() = %q, want %q", got, "7: Jane Doe")
	}
}

func TestSessionIsScheduled(t *testing.T) {
	paid := PaymentPaid
	held := Session{Duration: 0, PaymentStatus: &paid}
	if held.IsScheduled() {
		t.Error("session with a payment status should not count as scheduled")
	}

	scheduled := Session{Duration: 0}
	if !scheduled.IsScheduled() {
		t.Error("zero-duration session without outcome should count as scheduled")
	}
}
