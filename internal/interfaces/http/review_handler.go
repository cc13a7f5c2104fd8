package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/clinica-pro/internal/application/clinic"
	"github.com/tu-usuario/clinica-pro/internal/application/dto"
)

// ReviewHandler maneja las peticiones HTTP de reseñas.
type ReviewHandler struct {
	svc *clinic.Service
}

// NewReviewHandler construye el handler.
func NewReviewHandler(svc *clinic.Service) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

// Create POST /api/reviews
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var in dto.ReviewRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	review, err := h.svc.AddReview(in.ClientID, in.Rating, in.Comment, in.Date)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toReviewResponse(review))
}

// List GET /api/reviews — admite el filtro opcional ?client_id=.
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	if raw := c.Query("client_id"); raw != "" {
		clientID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return invalidID(c)
		}
		list, err := h.svc.ListReviewsByClient(clientID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(toReviewResponses(list))
	}
	list, err := h.svc.ListReviews()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(toReviewResponses(list))
}

// Delete DELETE /api/reviews/:id
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return invalidID(c)
	}
	ok, err := h.svc.DeleteReview(id)
	if err != nil {
		return serviceError(c, err)
	}
	if !ok {
		return notFound(c, "reseña")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
