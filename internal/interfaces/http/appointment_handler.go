package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/clinica-pro/internal/application/clinic"
	"github.com/tu-usuario/clinica-pro/internal/application/dto"
	"github.com/tu-usuario/clinica-pro/internal/domain"
	"github.com/tu-usuario/clinica-pro/internal/domain/entity"
	"github.com/tu-usuario/clinica-pro/internal/domain/validation"
)

// AppointmentHandler maneja las peticiones HTTP de citas y registros
// clínicos.
type AppointmentHandler struct {
	svc *clinic.Service
}

// NewAppointmentHandler construye el handler.
func NewAppointmentHandler(svc *clinic.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

// Book POST /api/appointments
func (h *AppointmentHandler) Book(c *fiber.Ctx) error {
	var in dto.BookAppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	appt, err := h.svc.BookAppointment(in.PetID, in.Date, in.Reason)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toAppointmentResponse(appt))
}

// List GET /api/appointments
func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	list, err := h.svc.ListAppointments()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(toAppointmentResponses(list))
}

// GetByID GET /api/appointments/:id
func (h *AppointmentHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return invalidID(c)
	}
	appt, err := h.svc.GetAppointmentByID(id)
	if err != nil {
		return serviceError(c, err)
	}
	if appt == nil {
		return notFound(c, "cita")
	}
	return c.JSON(toAppointmentResponse(appt))
}

// Update PUT /api/appointments/:id
func (h *AppointmentHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return invalidID(c)
	}
	var in dto.UpdateAppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if !validation.IsValidDate(in.Date) {
		return serviceError(c, domain.Validationf("Fecha inválida, use el formato YYYY-MM-DD"))
	}
	day, _ := validation.ParseDate(in.Date)
	ok, err := h.svc.UpdateAppointment(&entity.Appointment{
		ID:     id,
		PetID:  in.PetID,
		Date:   day,
		Reason: in.Reason,
		Status: in.Status,
	})
	if err != nil {
		return serviceError(c, err)
	}
	if !ok {
		return notFound(c, "cita")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete DELETE /api/appointments/:id
func (h *AppointmentHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return invalidID(c)
	}
	ok, err := h.svc.DeleteAppointment(id)
	if err != nil {
		return serviceError(c, err)
	}
	if !ok {
		return notFound(c, "cita")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddRecord POST /api/medical-records
func (h *AppointmentHandler) AddRecord(c *fiber.Ctx) error {
	var in dto.MedicalRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	record, err := h.svc.AddMedicalRecord(in.AppointmentID, in.Diagnosis, in.Treatment, in.Notes)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMedicalRecordResponse(record))
}
