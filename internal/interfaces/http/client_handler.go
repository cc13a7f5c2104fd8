package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/clinica-pro/internal/application/clinic"
	"github.com/tu-usuario/clinica-pro/internal/application/dto"
	"github.com/tu-usuario/clinica-pro/internal/domain/entity"
)

// ClientHandler maneja las peticiones HTTP de clientes.
type ClientHandler struct {
	svc *clinic.Service
}

// NewClientHandler construye el handler.
func NewClientHandler(svc *clinic.Service) *ClientHandler {
	return &ClientHandler{svc: svc}
}

// Create POST /api/clients
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.ClientRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	client, err := h.svc.AddClient(in.Name, in.Email, in.Phone)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toClientResponse(client))
}

// List GET /api/clients
func (h *ClientHandler) List(c *fiber.Ctx) error {
	list, err := h.svc.ListClients()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(toClientResponses(list))
}

// GetByID GET /api/clients/:id
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return invalidID(c)
	}
	client, err := h.svc.GetClientByID(id)
	if err != nil {
		return serviceError(c, err)
	}
	if client == nil {
		return notFound(c, "cliente")
	}
	return c.JSON(toClientResponse(client))
}

// Update PUT /api/clients/:id
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return invalidID(c)
	}
	var in dto.ClientRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	ok, err := h.svc.UpdateClient(&entity.Client{ID: id, Name: in.Name, Email: in.Email, Phone: in.Phone})
	if err != nil {
		return serviceError(c, err)
	}
	if !ok {
		return notFound(c, "cliente")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return invalidID(c)
	}
	ok, err := h.svc.DeleteClient(id)
	if err != nil {
		return serviceError(c, err)
	}
	if !ok {
		return notFound(c, "cliente")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
