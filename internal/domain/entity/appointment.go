package entity

import "time"

// Estados válidos de una cita.
const (
	AppointmentPending   = "Pendiente"
	AppointmentCompleted = "Completada"
)

// Appointment representa una cita de una mascota.
// Date se persiste como DATE (sin hora); el servicio la recibe como
// string ISO "YYYY-MM-DD" y la valida antes de construir la entidad.
type Appointment struct {
	ID     int64
	PetID  int64
	Date   time.Time
	Reason string
	Status string // ver constantes Appointment*
}
