package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tu-usuario/clinica-pro/internal/domain/entity"
	"github.com/tu-usuario/clinica-pro/internal/domain/repository"
)

var _ repository.MedicalRecordRepository = (*MedicalRecordRepo)(nil)

// MedicalRecordRepo implementación de MedicalRecordRepository (usable con
// pool o tx).
type MedicalRecordRepo struct {
	q Querier
}

// NewMedicalRecordRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMedicalRecordRepository(q Querier) *MedicalRecordRepo {
	return &MedicalRecordRepo{q: q}
}

// Create persiste un registro clínico nuevo y asigna el ID generado.
// Notes vacío se guarda como NULL.
func (r *MedicalRecordRepo) Create(record *entity.MedicalRecord) error {
	query := `
		INSERT INTO medical_records (appointment_id, diagnosis, treatment, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		record.AppointmentID, record.Diagnosis, record.Treatment, nullIfEmpty(record.Notes),
	).Scan(&record.ID)
	if err != nil {
		return fmt.Errorf("insert medical record: %w", err)
	}
	return nil
}

// GetHistoryByPet devuelve el historial clínico de una mascota: registro +
// datos de su cita, ordenado por fecha de cita descendente.
func (r *MedicalRecordRepo) GetHistoryByPet(petID int64) ([]*entity.MedicalHistoryEntry, error) {
	query := `
		SELECT mr.id, a.date, a.reason, mr.diagnosis, mr.treatment, mr.notes
		FROM medical_records mr
		JOIN appointments a ON mr.appointment_id = a.id
		WHERE a.pet_id = $1
		ORDER BY a.date DESC`
	rows, err := r.q.Query(context.Background(), query, petID)
	if err != nil {
		return nil, fmt.Errorf("get medical history: %w", err)
	}
	defer rows.Close()
	var list []*entity.MedicalHistoryEntry
	for rows.Next() {
		var e entity.MedicalHistoryEntry
		var notes sql.NullString
		if err := rows.Scan(&e.RecordID, &e.Date, &e.Reason, &e.Diagnosis, &e.Treatment, &notes); err != nil {
			return nil, fmt.Errorf("scan medical history entry: %w", err)
		}
		e.Notes = notes.String
		list = append(list, &e)
	}
	return list, rows.Err()
}
