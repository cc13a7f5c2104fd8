package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/clinica-pro/internal/application/dto"
	"github.com/tu-usuario/clinica-pro/internal/domain"
	"github.com/tu-usuario/clinica-pro/internal/domain/entity"
	"github.com/tu-usuario/clinica-pro/internal/domain/validation"
)

// serviceError traduce los errores del servicio a respuestas HTTP: las
// violaciones de validación son 400 con el mensaje de la regla; todo lo
// demás es un fallo de persistencia (500).
func serviceError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: verr.Rule})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func notFound(c *fiber.Ctx, what string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: what + " no encontrado"})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
}

// ── entidad → DTO ─────────────────────────────────────────────────────────────

func toClientResponse(c *entity.Client) dto.ClientResponse {
	return dto.ClientResponse{ID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone}
}

func toClientResponses(list []*entity.Client) []dto.ClientResponse {
	out := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClientResponse(c))
	}
	return out
}

func toPetResponse(p *entity.Pet) dto.PetResponse {
	return dto.PetResponse{ID: p.ID, Name: p.Name, Species: p.Species, Breed: p.Breed, Age: p.Age, ClientID: p.ClientID}
}

func toPetResponses(list []*entity.Pet) []dto.PetResponse {
	out := make([]dto.PetResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPetResponse(p))
	}
	return out
}

func toAppointmentResponse(a *entity.Appointment) dto.AppointmentResponse {
	return dto.AppointmentResponse{
		ID:     a.ID,
		PetID:  a.PetID,
		Date:   a.Date.Format(validation.DateLayout),
		Reason: a.Reason,
		Status: a.Status,
	}
}

func toAppointmentResponses(list []*entity.Appointment) []dto.AppointmentResponse {
	out := make([]dto.AppointmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAppointmentResponse(a))
	}
	return out
}

func toMedicalRecordResponse(r *entity.MedicalRecord) dto.MedicalRecordResponse {
	return dto.MedicalRecordResponse{
		ID:            r.ID,
		AppointmentID: r.AppointmentID,
		Diagnosis:     r.Diagnosis,
		Treatment:     r.Treatment,
		Notes:         r.Notes,
	}
}

func toHistoryResponses(list []*entity.MedicalHistoryEntry) []dto.MedicalHistoryEntryResponse {
	out := make([]dto.MedicalHistoryEntryResponse, 0, len(list))
	for _, e := range list {
		out = append(out, dto.MedicalHistoryEntryResponse{
			RecordID:  e.RecordID,
			Date:      e.Date.Format(validation.DateLayout),
			Reason:    e.Reason,
			Diagnosis: e.Diagnosis,
			Treatment: e.Treatment,
			Notes:     e.Notes,
		})
	}
	return out
}

func toInvoiceResponse(inv *entity.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:       inv.ID,
		ClientID: inv.ClientID,
		Date:     inv.Date.Format(validation.DateLayout),
		Total:    inv.Total,
		Status:   inv.Status,
	}
}

func toInvoiceResponses(list []*entity.Invoice) []dto.InvoiceResponse {
	out := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, toInvoiceResponse(inv))
	}
	return out
}

func toReviewResponse(rv *entity.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:       rv.ID,
		ClientID: rv.ClientID,
		Rating:   rv.Rating,
		Comment:  rv.Comment,
		Date:     rv.Date.Format(validation.DateLayout),
	}
}

func toReviewResponses(list []*entity.Review) []dto.ReviewResponse {
	out := make([]dto.ReviewResponse, 0, len(list))
	for _, rv := range list {
		out = append(out, toReviewResponse(rv))
	}
	return out
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Username: u.Username, Role: u.Role}
}
