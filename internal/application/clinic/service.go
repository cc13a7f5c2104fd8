// Package clinic implementa el servicio central de la clínica: orquesta
// validación + persistencia para clientes, mascotas, citas, registros
// clínicos, facturas y reseñas. Contrato de toda mutación: primero se validan
// todos los campos (cadenas obligatorias, luego rangos numéricos, luego
// formato de fechas) y solo si todo pasa se delega al repositorio. Una
// validación fallida garantiza cero efectos secundarios.
package clinic

import (
	"time"

	"github.com/tu-usuario/clinica-pro/internal/domain/repository"
)

// Logger colaborador de logging del servicio. Lo satisface pkg/logger;
// el servicio no conoce la implementación concreta.
type Logger interface {
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// Service orquestador sin estado sobre los seis repositorios de negocio.
type Service struct {
	clients  repository.ClientRepository
	pets     repository.PetRepository
	appts    repository.AppointmentRepository
	records  repository.MedicalRecordRepository
	invoices repository.InvoiceRepository
	reviews  repository.ReviewRepository
	log      Logger

	// now se evalúa en cada llamada que necesita "hoy" (fecha por defecto de
	// las reseñas); sustituible en tests.
	now func() time.Time
}

// NewService construye el servicio con sus puertos de persistencia y logger.
func NewService(
	clients repository.ClientRepository,
	pets repository.PetRepository,
	appts repository.AppointmentRepository,
	records repository.MedicalRecordRepository,
	invoices repository.InvoiceRepository,
	reviews repository.ReviewRepository,
	log Logger,
) *Service {
	return &Service{
		clients:  clients,
		pets:     pets,
		appts:    appts,
		records:  records,
		invoices: invoices,
		reviews:  reviews,
		log:      log,
		now:      time.Now,
	}
}
