package db

import (
	"fmt"

	"github.com/balkashynov/therapylog/internal/models"
)

// InsertSession appends a session row. Sessions are never updated or deleted.
func (s *Store) InsertSession(session *models.Session) error {
	if err := s.db.Create(session).Error; err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

// ListSessionsForPatient returns one patient's sessions in storage order
func (s *Store) ListSessionsForPatient(patientID uint) ([]models.Session, error) {
	var sessions []models.Session

	// No ORDER BY: history is shown in the order rows come back
	if err := s.db.Where("patient_id = ?", patientID).Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to list sessions for patient #%d: %w", patientID, err)
	}

	return sessions, nil
}

// ListSessions returns every session across all patients
func (s *Store) ListSessions() ([]models.Session, error) {
	var sessions []models.Session

	if err := s.db.Order("patient_id ASC, id ASC").Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return sessions, nil
}
