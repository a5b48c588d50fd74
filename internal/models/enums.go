package models

import (
	"fmt"
	"strings"
)

// SessionType is how a session is held
type SessionType string

const (
	SessionInPerson SessionType = "In-person"
	SessionOnline   SessionType = "Online"
)

// Platform is the video platform used for online sessions
type Platform string

const (
	PlatformZoom       Platform = "Zoom"
	PlatformGoogleMeet Platform = "Google Meet"
	PlatformTeams      Platform = "Teams"
)

// PaymentStatus tracks whether a session has been paid for
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentPending PaymentStatus = "Pending"
	PaymentOverdue PaymentStatus = "Overdue"
)

// SessionTypes lists the selectable session types in display order
var SessionTypes = []SessionType{SessionInPerson, SessionOnline}

// Platforms lists the selectable platforms in display order
var Platforms = []Platform{PlatformZoom, PlatformGoogleMeet, PlatformTeams}

// PaymentStatuses lists the selectable payment statuses in display order
var PaymentStatuses = []PaymentStatus{PaymentPaid, PaymentPending, PaymentOverdue}

// ParseSessionType converts user input into a SessionType.
// Matching ignores case, spaces and dashes so "in person" and "inperson" both work.
func ParseSessionType(input string) (SessionType, error) {
	key := enumKey(input)
	for _, t := range SessionTypes {
		if enumKey(string(t)) == key {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid session type '%s'. Use: In-person or Online", input)
}

// ParsePlatform converts user input into a Platform
func ParsePlatform(input string) (Platform, error) {
	key := enumKey(input)
	if key == "meet" || key == "googlemeet" {
		return PlatformGoogleMeet, nil
	}
	for _, p := range Platforms {
		if enumKey(string(p)) == key {
			return p, nil
		}
	}
	return "", fmt.Errorf("invalid platform '%s'. Use: Zoom, Google Meet or Teams", input)
}

// ParsePaymentStatus converts user input into a PaymentStatus
func ParsePaymentStatus(input string) (PaymentStatus, error) {
	key := enumKey(input)
	for _, s := range PaymentStatuses {
		if enumKey(string(s)) == key {
			return s, nil
		}
	}
	return "", fmt.Errorf("invalid payment status '%s'. Use: Paid, Pending or Overdue", input)
}

// enumKey normalizes an enum value for comparison
func enumKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}
