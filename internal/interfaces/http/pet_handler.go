package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/clinica-pro/internal/application/clinic"
	"github.com/tu-usuario/clinica-pro/internal/application/dto"
	"github.com/tu-usuario/clinica-pro/internal/domain/entity"
)

// PetHandler maneja las peticiones HTTP de mascotas.
type PetHandler struct {
	svc *clinic.Service
}

// NewPetHandler construye el handler.
func NewPetHandler(svc *clinic.Service) *PetHandler {
	return &PetHandler{svc: svc}
}

// Create POST /api/pets
func (h *PetHandler) Create(c *fiber.Ctx) error {
	var in dto.PetRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	pet, err := h.svc.AddPet(in.Name, in.Species, in.Breed, in.Age, in.ClientID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toPetResponse(pet))
}

// List GET /api/pets?client_id=N
func (h *PetHandler) List(c *fiber.Ctx) error {
	if raw := c.Query("client_id"); raw != "" {
		clientID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return invalidID(c)
		}
		list, err := h.svc.ListPetsByClient(clientID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(toPetResponses(list))
	}
	list, err := h.svc.ListPets()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(toPetResponses(list))
}

// GetByID GET /api/pets/:id
func (h *PetHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return invalidID(c)
	}
	pet, err := h.svc.GetPetByID(id)
	if err != nil {
		return serviceError(c, err)
	}
	if pet == nil {
		return notFound(c, "mascota")
	}
	return c.JSON(toPetResponse(pet))
}

// History GET /api/pets/:id/history
func (h *PetHandler) History(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return invalidID(c)
	}
	history, err := h.svc.GetMedicalHistoryByPet(id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(toHistoryResponses(history))
}

// Update PUT /api/pets/:id
func (h *PetHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return invalidID(c)
	}
	var in dto.PetRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	ok, err := h.svc.UpdatePet(&entity.Pet{
		ID:       id,
		Name:     in.Name,
		Species:  in.Species,
		Breed:    in.Breed,
		Age:      in.Age,
		ClientID: in.ClientID,
	})
	if err != nil {
		return serviceError(c, err)
	}
	if !ok {
		return notFound(c, "mascota")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete DELETE /api/pets/:id
func (h *PetHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return invalidID(c)
	}
	ok, err := h.svc.DeletePet(id)
	if err != nil {
		return serviceError(c, err)
	}
	if !ok {
		return notFound(c, "mascota")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
