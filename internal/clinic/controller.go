package clinic

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/balkashynov/therapylog/internal/logging"
	"github.com/balkashynov/therapylog/internal/models"
	"github.com/balkashynov/therapylog/internal/parser"
)

// Store is the persistence the controller needs. *db.Store implements it.
type Store interface {
	AddPatient(patient *models.Patient) error
	ListPatients() ([]models.Patient, error)
	InsertSession(session *models.Session) error
	ListSessionsForPatient(patientID uint) ([]models.Session, error)
	ListSessions() ([]models.Session, error)
}

// Controller runs the patient and session operations behind the form and CLI.
// It is not safe for concurrent use; the UI drives it from one goroutine.
type Controller struct {
	store  Store
	logger *slog.Logger
	now    func() time.Time
	state  SessionState
}

// Option configures a Controller
type Option func(*Controller)

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// WithLogger sets the structured logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// New creates a controller backed by store
func New(store Store, opts ...Option) *Controller {
	c := &Controller{
		store:  store,
		logger: logging.Discard(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PatientInput holds the raw Add Patient form fields
type PatientInput struct {
	Name    string
	Age     string
	Contact string
}

// PatientOption is one entry of the patient selector
type PatientOption struct {
	ID    uint
	Label string
}

// SessionOutcome holds the End Session form fields
type SessionOutcome struct {
	Notes         string
	SessionType   string
	Platform      string // only kept for online sessions
	Cost          string
	PaymentStatus string
	Rating        int // 0 means not rated
	Feedback      string
}

// ScheduleInput holds the Schedule Session form fields
type ScheduleInput struct {
	PatientID uint
	Date      time.Time
	Time      string // free text, stored verbatim
	Platform  string
}

// State returns the current session timer state
func (c *Controller) State() SessionState {
	return c.state
}

// Now returns the controller's clock reading
func (c *Controller) Now() time.Time {
	return c.now()
}

// AddPatient validates the form and inserts a new patient
func (c *Controller) AddPatient(in PatientInput) (*models.Patient, error) {
	name := strings.TrimSpace(in.Name)
	ageText := strings.TrimSpace(in.Age)
	contact := strings.TrimSpace(in.Contact)

	if name == "" || ageText == "" || contact == "" {
		return nil, invalid("All fields are required!")
	}

	age, err := parser.ParseAge(ageText)
	if err != nil {
		return nil, invalid(err.Error())
	}

	patient := &models.Patient{
		Name:    name,
		Age:     &age,
		Contact: contact,
	}
	if err := c.store.AddPatient(patient); err != nil {
		c.logger.Error("add patient failed", "error", err)
		return nil, err
	}

	c.logger.Info("patient added", "patient_id", patient.ID)
	return patient, nil
}

// LoadPatients returns the selector entries for every patient
func (c *Controller) LoadPatients() ([]PatientOption, error) {
	patients, err := c.store.ListPatients()
	if err != nil {
		c.logger.Error("load patients failed", "error", err)
		return nil, err
	}

	options := make([]PatientOption, 0, len(patients))
	for _, p := range patients {
		options = append(options, PatientOption{ID: p.ID, Label: p.Label()})
	}
	return options, nil
}

// StartSession starts timing a session for the selected patient
func (c *Controller) StartSession(patientID uint) (SessionState, error) {
	next, err := c.state.Start(patientID, c.now())
	if err != nil {
		return c.state, err
	}

	c.state = next
	c.logger.Info("session started", "patient_id", patientID, "started_at", next.StartedAt)
	return c.state, nil
}

// EndSession stops the running session and records it.
// On a validation failure the session keeps running with its original
// start time.
func (c *Controller) EndSession(out SessionOutcome) (*models.Session, error) {
	if !c.state.Active() {
		return nil, ErrNoSessionInProgress
	}

	now := c.now()
	duration := c.state.DurationMinutes(now)

	notes := strings.TrimSpace(out.Notes)
	costText := strings.TrimSpace(out.Cost)
	if notes == "" || strings.TrimSpace(out.SessionType) == "" || costText == "" || strings.TrimSpace(out.PaymentStatus) == "" {
		return nil, invalid("Please fill all required fields!")
	}

	sessionType, err := models.ParseSessionType(out.SessionType)
	if err != nil {
		return nil, invalid(err.Error())
	}
	cost, err := parser.ParseCost(costText)
	if err != nil {
		return nil, invalid(err.Error())
	}
	payment, err := models.ParsePaymentStatus(out.PaymentStatus)
	if err != nil {
		return nil, invalid(err.Error())
	}

	var platform *models.Platform
	if sessionType == models.SessionOnline && strings.TrimSpace(out.Platform) != "" {
		p, err := models.ParsePlatform(out.Platform)
		if err != nil {
			return nil, invalid(err.Error())
		}
		platform = &p
	}

	var rating *int
	if out.Rating != 0 {
		if out.Rating < 1 || out.Rating > 5 {
			return nil, invalid("Rating must be between 1 and 5")
		}
		r := out.Rating
		rating = &r
	}

	feedback := strings.TrimSpace(out.Feedback)

	session := &models.Session{
		PatientID:     c.state.PatientID,
		SessionDate:   now.Format(models.SessionDateLayout),
		Notes:         notes,
		Duration:      duration,
		SessionType:   sessionType,
		Platform:      platform,
		Cost:          decimal.NewNullDecimal(cost),
		PaymentStatus: &payment,
		Rating:        rating,
		Feedback:      &feedback,
	}
	if err := c.store.InsertSession(session); err != nil {
		c.logger.Error("end session failed", "patient_id", session.PatientID, "error", err)
		return nil, err
	}

	c.state = SessionState{}
	c.logger.Info("session ended", "session_id", session.ID, "patient_id", session.PatientID, "duration_minutes", duration)
	return session, nil
}

// ScheduleSession records a future online session for a patient
func (c *Controller) ScheduleSession(in ScheduleInput) (*models.Session, error) {
	if in.PatientID == 0 {
		return nil, ErrNoPatientSelected
	}

	if strings.TrimSpace(in.Time) == "" || strings.TrimSpace(in.Platform) == "" {
		return nil, invalid("Please enter time and platform for the session!")
	}
	if in.Date.IsZero() {
		return nil, invalid("Please pick a date for the session!")
	}

	platform, err := models.ParsePlatform(in.Platform)
	if err != nil {
		return nil, invalid(err.Error())
	}

	session := &models.Session{
		PatientID:   in.PatientID,
		SessionDate: fmt.Sprintf("%s %s", in.Date.Format(models.ScheduleDateLayout), in.Time),
		Notes:       fmt.Sprintf("Scheduled on %s", platform),
		Duration:    0,
		SessionType: models.SessionOnline,
		Platform:    &platform,
	}
	if err := c.store.InsertSession(session); err != nil {
		c.logger.Error("schedule session failed", "patient_id", in.PatientID, "error", err)
		return nil, err
	}

	c.logger.Info("session scheduled", "session_id", session.ID, "patient_id", in.PatientID, "date", session.SessionDate)
	return session, nil
}

// Sessions returns one patient's sessions in storage order
func (c *Controller) Sessions(patientID uint) ([]models.Session, error) {
	if patientID == 0 {
		return nil, ErrNoPatientSelected
	}

	sessions, err := c.store.ListSessionsForPatient(patientID)
	if err != nil {
		c.logger.Error("list sessions failed", "patient_id", patientID, "error", err)
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, ErrNoSessions
	}
	return sessions, nil
}

// ViewSessions returns the formatted session history of a patient
func (c *Controller) ViewSessions(patientID uint) (string, error) {
	sessions, err := c.Sessions(patientID)
	if err != nil {
		return "", err
	}
	return FormatHistory(sessions), nil
}
