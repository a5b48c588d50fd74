package clinic

import (
	"errors"

	"github.com/balkashynov/therapylog/internal/models"
)

// memoryStore is an in-memory Store for controller tests
type memoryStore struct {
	patients []models.Patient
	sessions []models.Session

	// sessionQueries records the patient ids passed to ListSessionsForPatient
	sessionQueries []uint
	failWrites     bool
}

var errDiskFull = errors.New("disk full")

func (s *memoryStore) AddPatient(patient *models.Patient) error {
	if s.failWrites {
		return errDiskFull
	}
	patient.ID = uint(len(s.patients) + 1)
	s.patients = append(s.patients, *patient)
	return nil
}

func (s *memoryStore) ListPatients() ([]models.Patient, error) {
	return append([]models.Patient(nil), s.patients...), nil
}

func (s *memoryStore) InsertSession(session *models.Session) error {
	if s.failWrites {
		return errDiskFull
	}
	session.ID = uint(len(s.sessions) + 1)
	s.sessions = append(s.sessions, *session)
	return nil
}

func (s *memoryStore) ListSessionsForPatient(patientID uint) ([]models.Session, error) {
	s.sessionQueries = append(s.sessionQueries, patientID)
	var out []models.Session
	for _, session := range s.sessions {
		if session.PatientID == patientID {
			out = append(out, session)
		}
	}
	return out, nil
}

func (s *memoryStore) ListSessions() ([]models.Session, error) {
	return append([]models.Session(nil), s.sessions...), nil
}
