package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/clinica-pro/internal/application/auth"
	"github.com/tu-usuario/clinica-pro/internal/application/clinic"
	"github.com/tu-usuario/clinica-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Clinic *clinic.Service
	AuthUC *auth.UseCase
	PDF    InvoicePDFGenerator
	JWT    JWTConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.JWT)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWT.Secret))
	admin := RequireRole(entity.RoleAdmin)
	clinical := RequireRole(entity.RoleAdmin, entity.RoleVeterinario)

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.Clinic)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", admin, clientHandler.Delete)

	// Pets (protegido)
	pets := protected.Group("/pets")
	petHandler := NewPetHandler(deps.Clinic)
	pets.Post("/", petHandler.Create)
	pets.Get("/", petHandler.List)
	pets.Get("/:id", petHandler.GetByID)
	pets.Get("/:id/history", petHandler.History)
	pets.Put("/:id", petHandler.Update)
	pets.Delete("/:id", admin, petHandler.Delete)

	// Appointments (protegido)
	appointments := protected.Group("/appointments")
	appointmentHandler := NewAppointmentHandler(deps.Clinic)
	appointments.Post("/", appointmentHandler.Book)
	appointments.Get("/", appointmentHandler.List)
	appointments.Get("/:id", appointmentHandler.GetByID)
	appointments.Put("/:id", appointmentHandler.Update)
	appointments.Delete("/:id", admin, appointmentHandler.Delete)

	// Medical records (protegido, solo personal clínico)
	records := protected.Group("/medical-records")
	records.Post("/", clinical, appointmentHandler.AddRecord)

	// Invoices (protegido)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.Clinic, deps.PDF)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", admin, invoiceHandler.Delete)

	// Reviews (protegido)
	reviews := protected.Group("/reviews")
	reviewHandler := NewReviewHandler(deps.Clinic)
	reviews.Post("/", reviewHandler.Create)
	reviews.Get("/", reviewHandler.List)
	reviews.Delete("/:id", admin, reviewHandler.Delete)
}
