package clinic

import "errors"

var (
	ErrNoPatientSelected   = errors.New("please select a patient first")
	ErrNoSessionInProgress = errors.New("no session in progress")
	ErrSessionInProgress   = errors.New("a session is already in progress; end it first")
	// ErrNoSessions is informational: the patient exists but has no history yet.
	ErrNoSessions = errors.New("no sessions found for the selected patient")
)

// ValidationError is a user input problem. Message is shown to the user as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err is a user input problem
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
