package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/clinica-pro/internal/domain/entity"
	"github.com/tu-usuario/clinica-pro/internal/domain/repository"
)

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

// AppointmentRepo implementación de AppointmentRepository (usable con pool o tx).
type AppointmentRepo struct {
	q Querier
}

// NewAppointmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAppointmentRepository(q Querier) *AppointmentRepo {
	return &AppointmentRepo{q: q}
}

// Create persiste una cita nueva y asigna el ID generado.
func (r *AppointmentRepo) Create(appt *entity.Appointment) error {
	query := `
		INSERT INTO appointments (pet_id, date, reason, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		appt.PetID, appt.Date, appt.Reason, appt.Status,
	).Scan(&appt.ID)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

// GetAll devuelve todas las citas en orden de ID.
func (r *AppointmentRepo) GetAll() ([]*entity.Appointment, error) {
	query := `SELECT id, pet_id, date, reason, status FROM appointments ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Appointment
	for rows.Next() {
		var a entity.Appointment
		if err := rows.Scan(&a.ID, &a.PetID, &a.Date, &a.Reason, &a.Status); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// GetByID obtiene una cita; (nil, nil) si no existe.
func (r *AppointmentRepo) GetByID(id int64) (*entity.Appointment, error) {
	query := `SELECT id, pet_id, date, reason, status FROM appointments WHERE id = $1`
	var a entity.Appointment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.PetID, &a.Date, &a.Reason, &a.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return &a, nil
}

// Update actualiza una cita; el bool indica si alguna fila fue afectada.
func (r *AppointmentRepo) Update(appt *entity.Appointment) (bool, error) {
	query := `
		UPDATE appointments SET pet_id = $2, date = $3, reason = $4, status = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		appt.ID, appt.PetID, appt.Date, appt.Reason, appt.Status,
	)
	if err != nil {
		return false, fmt.Errorf("update appointment: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete elimina una cita por ID (cascada sobre sus registros clínicos).
func (r *AppointmentRepo) Delete(id int64) (bool, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete appointment: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
