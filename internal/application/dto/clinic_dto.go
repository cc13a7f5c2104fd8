package dto

import "github.com/shopspring/decimal"

// ── Clients ───────────────────────────────────────────────────────────────────

// ClientRequest cuerpo de creación/actualización de cliente.
type ClientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ClientResponse representación JSON de un cliente.
type ClientResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ── Pets ──────────────────────────────────────────────────────────────────────

// PetRequest cuerpo de creación/actualización de mascota.
type PetRequest struct {
	Name     string `json:"name"`
	Species  string `json:"species"`
	Breed    string `json:"breed"`
	Age      int    `json:"age"`
	ClientID int64  `json:"client_id"`
}

// PetResponse representación JSON de una mascota.
type PetResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Species  string `json:"species"`
	Breed    string `json:"breed"`
	Age      int    `json:"age"`
	ClientID int64  `json:"client_id"`
}

// ── Appointments ──────────────────────────────────────────────────────────────

// BookAppointmentRequest cuerpo de agendamiento de cita.
// Date en formato YYYY-MM-DD; el estado inicial siempre es "Pendiente".
type BookAppointmentRequest struct {
	PetID  int64  `json:"pet_id"`
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// UpdateAppointmentRequest cuerpo de actualización de cita.
type UpdateAppointmentRequest struct {
	PetID  int64  `json:"pet_id"`
	Date   string `json:"date"`
	Reason string `json:"reason"`
	Status string `json:"status"`
}

// AppointmentResponse representación JSON de una cita.
type AppointmentResponse struct {
	ID     int64  `json:"id"`
	PetID  int64  `json:"pet_id"`
	Date   string `json:"date"` // YYYY-MM-DD
	Reason string `json:"reason"`
	Status string `json:"status"`
}

// ── Medical records ───────────────────────────────────────────────────────────

// MedicalRecordRequest cuerpo de registro clínico. Notes es opcional.
type MedicalRecordRequest struct {
	AppointmentID int64  `json:"appointment_id"`
	Diagnosis     string `json:"diagnosis"`
	Treatment     string `json:"treatment"`
	Notes         string `json:"notes,omitempty"`
}

// MedicalRecordResponse representación JSON de un registro clínico.
type MedicalRecordResponse struct {
	ID            int64  `json:"id"`
	AppointmentID int64  `json:"appointment_id"`
	Diagnosis     string `json:"diagnosis"`
	Treatment     string `json:"treatment"`
	Notes         string `json:"notes,omitempty"`
}

// MedicalHistoryEntryResponse fila del historial clínico de una mascota
// (registro + cita, más reciente primero).
type MedicalHistoryEntryResponse struct {
	RecordID  int64  `json:"record_id"`
	Date      string `json:"date"` // fecha de la cita, YYYY-MM-DD
	Reason    string `json:"reason"`
	Diagnosis string `json:"diagnosis"`
	Treatment string `json:"treatment"`
	Notes     string `json:"notes,omitempty"`
}

// ── Invoices ──────────────────────────────────────────────────────────────────

// GenerateInvoiceRequest cuerpo de emisión de factura.
type GenerateInvoiceRequest struct {
	ClientID int64           `json:"client_id"`
	Total    decimal.Decimal `json:"total"`
	Date     string          `json:"date"` // YYYY-MM-DD
}

// UpdateInvoiceRequest cuerpo de actualización de factura (p. ej. marcar "Pagada").
type UpdateInvoiceRequest struct {
	ClientID int64           `json:"client_id"`
	Total    decimal.Decimal `json:"total"`
	Date     string          `json:"date"`
	Status   string          `json:"status"`
}

// InvoiceResponse representación JSON de una factura.
type InvoiceResponse struct {
	ID       int64           `json:"id"`
	ClientID int64           `json:"client_id"`
	Date     string          `json:"date"` // YYYY-MM-DD
	Total    decimal.Decimal `json:"total"`
	Status   string          `json:"status"`
}

// ── Reviews ───────────────────────────────────────────────────────────────────

// ReviewRequest cuerpo de reseña. Comment es opcional; Date vacía = hoy.
type ReviewRequest struct {
	ClientID int64  `json:"client_id"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment,omitempty"`
	Date     string `json:"date,omitempty"`
}

// ReviewResponse representación JSON de una reseña.
type ReviewResponse struct {
	ID       int64  `json:"id"`
	ClientID int64  `json:"client_id"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment,omitempty"`
	Date     string `json:"date"`
}
