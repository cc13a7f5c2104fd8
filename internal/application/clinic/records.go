package clinic

import (
	"github.com/tu-usuario/clinica-pro/internal/domain"
	"github.com/tu-usuario/clinica-pro/internal/domain/entity"
	"github.com/tu-usuario/clinica-pro/internal/domain/validation"
)

// AddMedicalRecord valida y persiste un registro clínico. No comprueba que
// la cita exista: esa integridad la garantiza la clave foránea del esquema.
func (s *Service) AddMedicalRecord(appointmentID int64, diagnosis, treatment, notes string) (*entity.MedicalRecord, error) {
	if !validation.IsNotEmpty(diagnosis) {
		return nil, domain.Validationf("El diagnóstico es obligatorio")
	}
	if !validation.IsNotEmpty(treatment) {
		return nil, domain.Validationf("El tratamiento es obligatorio")
	}
	record := &entity.MedicalRecord{
		AppointmentID: appointmentID,
		Diagnosis:     diagnosis,
		Treatment:     treatment,
		Notes:         notes,
	}
	if err := s.records.Create(record); err != nil {
		s.log.Errorf("error creando registro clínico: %v", err)
		return nil, err
	}
	s.log.Infof("registro clínico creado: %d", record.ID)
	return record, nil
}

// GetMedicalHistoryByPet devuelve el historial clínico de una mascota:
// registro + datos de la cita, ordenado por fecha de cita descendente
// (lo más reciente primero).
func (s *Service) GetMedicalHistoryByPet(petID int64) ([]*entity.MedicalHistoryEntry, error) {
	return s.records.GetHistoryByPet(petID)
}
