package db

import (
	"fmt"

	"github.com/balkashynov/therapylog/internal/models"
)

// AddPatient inserts a new patient and fills in its generated ID
func (s *Store) AddPatient(patient *models.Patient) error {
	if err := s.db.Create(patient).Error; err != nil {
		return fmt.Errorf("failed to add patient: %w", err)
	}
	return nil
}

// ListPatients returns every patient in id order
func (s *Store) ListPatients() ([]models.Patient, error) {
	var patients []models.Patient

	if err := s.db.Order("id ASC").Find(&patients).Error; err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	return patients, nil
}

// GetPatient retrieves a patient by ID
func (s *Store) GetPatient(id uint) (*models.Patient, error) {
	var patient models.Patient

	if err := s.db.First(&patient, id).Error; err != nil {
		return nil, fmt.Errorf("patient #%d not found", id)
	}

	return &patient, nil
}
