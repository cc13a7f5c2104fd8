package clinic

import (
	"github.com/tu-usuario/clinica-pro/internal/domain"
	"github.com/tu-usuario/clinica-pro/internal/domain/entity"
	"github.com/tu-usuario/clinica-pro/internal/domain/validation"
)

// BookAppointment valida y agenda una cita. El estado inicial siempre es
// "Pendiente"; date llega como string YYYY-MM-DD desde la capa de
// presentación.
func (s *Service) BookAppointment(petID int64, date, reason string) (*entity.Appointment, error) {
	if !validation.IsNotEmpty(reason) {
		return nil, domain.Validationf("El motivo es obligatorio")
	}
	if !validation.IsValidDate(date) {
		return nil, domain.Validationf("Fecha inválida, use el formato YYYY-MM-DD")
	}
	day, _ := validation.ParseDate(date)
	appt := &entity.Appointment{
		PetID:  petID,
		Date:   day,
		Reason: reason,
		Status: entity.AppointmentPending,
	}
	if err := s.appts.Create(appt); err != nil {
		s.log.Errorf("error creando cita: %v", err)
		return nil, err
	}
	s.log.Infof("cita creada: %d", appt.ID)
	return appt, nil
}

// UpdateAppointment valida y actualiza una cita (incluye el cambio de estado
// Pendiente → Completada desde la agenda).
func (s *Service) UpdateAppointment(appt *entity.Appointment) (bool, error) {
	if !validation.IsNotEmpty(appt.Reason) {
		return false, domain.Validationf("El motivo es obligatorio")
	}
	if appt.Status != entity.AppointmentPending && appt.Status != entity.AppointmentCompleted {
		return false, domain.Validationf("Estado de cita inválido: %s", appt.Status)
	}
	ok, err := s.appts.Update(appt)
	if err != nil {
		s.log.Errorf("error actualizando cita %d: %v", appt.ID, err)
		return false, err
	}
	if ok {
		s.log.Infof("cita actualizada: %d", appt.ID)
	}
	return ok, nil
}

// ListAppointments devuelve todas las citas.
func (s *Service) ListAppointments() ([]*entity.Appointment, error) {
	return s.appts.GetAll()
}

// GetAppointmentByID devuelve la cita o (nil, nil) si no existe.
func (s *Service) GetAppointmentByID(id int64) (*entity.Appointment, error) {
	return s.appts.GetByID(id)
}

// DeleteAppointment elimina una cita (sus registros clínicos caen por cascada).
func (s *Service) DeleteAppointment(id int64) (bool, error) {
	ok, err := s.appts.Delete(id)
	if err != nil {
		s.log.Errorf("error eliminando cita %d: %v", id, err)
		return false, err
	}
	return ok, nil
}
