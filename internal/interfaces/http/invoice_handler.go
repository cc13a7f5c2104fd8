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

// InvoicePDFGenerator genera la representación imprimible de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(invoice *entity.Invoice, client *entity.Client) ([]byte, error)
}

// InvoiceHandler maneja las peticiones HTTP de facturación.
type InvoiceHandler struct {
	svc *clinic.Service
	pdf InvoicePDFGenerator
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(svc *clinic.Service, pdf InvoicePDFGenerator) *InvoiceHandler {
	return &InvoiceHandler{svc: svc, pdf: pdf}
}

// Create POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.GenerateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	invoice, err := h.svc.GenerateInvoice(in.ClientID, in.Total, in.Date)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toInvoiceResponse(invoice))
}

// List GET /api/invoices
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	list, err := h.svc.ListInvoices()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(toInvoiceResponses(list))
}

// GetByID GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return invalidID(c)
	}
	invoice, err := h.svc.GetInvoiceByID(id)
	if err != nil {
		return serviceError(c, err)
	}
	if invoice == nil {
		return notFound(c, "factura")
	}
	return c.JSON(toInvoiceResponse(invoice))
}

// Update PUT /api/invoices/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return invalidID(c)
	}
	var in dto.UpdateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if !validation.IsValidDate(in.Date) {
		return serviceError(c, domain.Validationf("Fecha inválida, use el formato YYYY-MM-DD"))
	}
	day, _ := validation.ParseDate(in.Date)
	ok, err := h.svc.UpdateInvoice(&entity.Invoice{
		ID:       id,
		ClientID: in.ClientID,
		Date:     day,
		Total:    in.Total,
		Status:   in.Status,
	})
	if err != nil {
		return serviceError(c, err)
	}
	if !ok {
		return notFound(c, "factura")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return invalidID(c)
	}
	ok, err := h.svc.DeleteInvoice(id)
	if err != nil {
		return serviceError(c, err)
	}
	if !ok {
		return notFound(c, "factura")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PDF GET /api/invoices/:id/pdf
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return invalidID(c)
	}
	invoice, err := h.svc.GetInvoiceByID(id)
	if err != nil {
		return serviceError(c, err)
	}
	if invoice == nil {
		return notFound(c, "factura")
	}
	client, err := h.svc.GetClientByID(invoice.ClientID)
	if err != nil {
		return serviceError(c, err)
	}
	if client == nil {
		return notFound(c, "cliente")
	}
	doc, err := h.pdf.GenerateInvoicePDF(invoice, client)
	if err != nil {
		return serviceError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="factura-`+strconv.FormatInt(id, 10)+`.pdf"`)
	return c.Send(doc)
}
