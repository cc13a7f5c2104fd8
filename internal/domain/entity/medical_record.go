package entity

import "time"

// MedicalRecord representa el registro clínico generado en una cita.
// Notes es opcional (vacío = sin observaciones).
type MedicalRecord struct {
	ID            int64
	AppointmentID int64
	Diagnosis     string
	Treatment     string
	Notes         string
}

// MedicalHistoryEntry es la proyección desnormalizada del historial de una
// mascota: registro clínico + datos de su cita, ordenada por fecha de cita
// descendente. Solo lectura, pensada para la capa de presentación.
type MedicalHistoryEntry struct {
	RecordID  int64
	Date      time.Time
	Reason    string
	Diagnosis string
	Treatment string
	Notes     string
}
