package repository

import "github.com/tu-usuario/clinica-pro/internal/domain/entity"

// AppointmentRepository puerto de persistencia para Appointment.
type AppointmentRepository interface {
	Create(appt *entity.Appointment) error
	GetAll() ([]*entity.Appointment, error)
	GetByID(id int64) (*entity.Appointment, error)
	Update(appt *entity.Appointment) (bool, error)
	Delete(id int64) (bool, error)
}
