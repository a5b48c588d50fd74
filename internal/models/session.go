package models

import (
	"github.com/shopspring/decimal"
)

// SessionDateLayout is the layout of session_date for sessions that were held
const SessionDateLayout = "2006-01-02 15:04:05"

// ScheduleDateLayout is the layout of the calendar part of a scheduled session_date
const ScheduleDateLayout = "2006-01-02"

// Session represents one therapy encounter, held or scheduled
type Session struct {
	ID          uint        `gorm:"primarykey" json:"id"`
	PatientID   uint        `gorm:"index" json:"patient_id"`
	SessionDate string      `json:"session_date"`
	Notes       string      `json:"notes"`
	Duration    int         `json:"duration"` // whole minutes, 0 for scheduled sessions
	SessionType SessionType `json:"session_type"`
	Platform    *Platform   `json:"platform"`

	// Outcome fields, NULL for scheduled sessions
	Cost          decimal.NullDecimal `gorm:"type:real" json:"cost"`
	PaymentStatus *PaymentStatus      `json:"payment_status"`
	Rating        *int                `json:"rating"`
	Feedback      *string             `json:"feedback"`
}

// IsScheduled reports whether the row is a future appointment rather than a held session
func (s Session) IsScheduled() bool {
	return s.Duration == 0 && !s.Cost.Valid && s.PaymentStatus == nil
}
