package repository

import "github.com/tu-usuario/clinica-pro/internal/domain/entity"

// MedicalRecordRepository puerto de persistencia para MedicalRecord.
// GetHistoryByPet es la única lectura desnormalizada del sistema: registro +
// datos de la cita, ordenada por fecha de cita descendente.
type MedicalRecordRepository interface {
	Create(record *entity.MedicalRecord) error
	GetHistoryByPet(petID int64) ([]*entity.MedicalHistoryEntry, error)
}
