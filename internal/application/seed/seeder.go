// Package seed puebla la base de datos con datos de muestra la primera vez
// que arranca la aplicación. Invariantes: nunca siembra si ya hay clientes;
// los registros clínicos y las facturas solo se cuelgan de citas completadas.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/clinica-pro/internal/application/clinic"
	"github.com/tu-usuario/clinica-pro/internal/domain/entity"
	"github.com/tu-usuario/clinica-pro/internal/domain/validation"
)

// Logger colaborador de logging del seeder.
type Logger interface {
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// Seeder carga datos representativos a través del propio servicio, de modo
// que toda fila sembrada pasa por las mismas validaciones que una real.
type Seeder struct {
	svc  *clinic.Service
	log  Logger
	rand *rand.Rand
	now  func() time.Time
}

// NewSeeder construye el seeder. La semilla del generador varía por arranque;
// la reproducibilidad bit a bit no es un objetivo.
func NewSeeder(svc *clinic.Service, log Logger) *Seeder {
	return &Seeder{
		svc:  svc,
		log:  log,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
		now:  time.Now,
	}
}

var sampleClients = []struct {
	name, email, phone string
}{
	{"Ana García", "ana.garcia@email.com", "600123456"},
	{"Carlos Ruiz", "carlos.ruiz@email.com", "600987654"},
	{"Elena M.", "elena.vetlover@email.com", "666777888"},
	{"Luis Torres", "luis.t@email.com", "611223344"},
	{"Marta Díaz", "marta.d@email.com", "699887766"},
	{"Pedro P.", "pedro.p@email.com", "655443322"},
	{"Sofia L.", "sofia.l@email.com", "644112233"},
	{"Jorge B.", "jorge.b@email.com", "633221144"},
}

// pets: nombre, especie, raza, edad, índice del dueño en sampleClients.
var samplePets = []struct {
	name, species, breed string
	age                  int
	owner                int
}{
	{"Luna", "Perro", "Golden Retriever", 3, 0},
	{"Max", "Perro", "Pastor Alemán", 5, 1},
	{"Mishi", "Gato", "Persa", 2, 2},
	{"Coco", "Ave", "Loro", 10, 3},
	{"Rocky", "Perro", "Bulldog", 4, 0},
	{"Simba", "Gato", "Común Europeo", 1, 4},
	{"Nala", "Gato", "Siames", 3, 4},
	{"Thor", "Perro", "Husky", 2, 5},
	{"Lola", "Roedor", "Hamster", 1, 6},
	{"Zeus", "Perro", "Doberman", 6, 7},
}

var sampleReasons = []string{
	"Vacunación", "Revisión General", "Corte de uñas",
	"Desparasitación", "Consulta por vómitos", "Cirugía menor",
}

var sampleComments = []string{
	"Excelente servicio", "Muy amables", "Tiempos de espera largos",
	"Mi perro salió feliz", "Volveré seguro",
}

// Run ejecuta la carga si la base está vacía. Devuelve error solo ante un
// fallo de persistencia; si ya hay datos es un no-op silencioso (info).
func (s *Seeder) Run() error {
	existing, err := s.svc.ListClients()
	if err != nil {
		return fmt.Errorf("comprobar clientes existentes: %w", err)
	}
	if len(existing) > 0 {
		s.log.Infof("la base de datos ya contiene datos, se omite el seeding")
		return nil
	}

	s.log.Infof("iniciando carga de datos de muestra")

	clients := make([]*entity.Client, 0, len(sampleClients))
	for _, c := range sampleClients {
		created, err := s.svc.AddClient(c.name, c.email, c.phone)
		if err != nil {
			return fmt.Errorf("sembrar cliente %s: %w", c.name, err)
		}
		clients = append(clients, created)
	}

	pets := make([]*entity.Pet, 0, len(samplePets))
	for _, p := range samplePets {
		created, err := s.svc.AddPet(p.name, p.species, p.breed, p.age, clients[p.owner].ID)
		if err != nil {
			return fmt.Errorf("sembrar mascota %s: %w", p.name, err)
		}
		pets = append(pets, created)
	}

	// 15 citas repartidas en ±10 días: las pasadas quedan "Completada" y
	// generan registro clínico; aproximadamente la mitad de esas, factura.
	today := s.now()
	for i := 0; i < 15; i++ {
		pet := pets[s.rand.Intn(len(pets))]
		offset := s.rand.Intn(21) - 10 // [-10, 10]
		day := today.AddDate(0, 0, offset)
		date := day.Format(validation.DateLayout)
		reason := sampleReasons[s.rand.Intn(len(sampleReasons))]

		appt, err := s.svc.BookAppointment(pet.ID, date, reason)
		if err != nil {
			return fmt.Errorf("sembrar cita: %w", err)
		}
		if offset >= 0 {
			continue
		}

		appt.Status = entity.AppointmentCompleted
		if _, err := s.svc.UpdateAppointment(appt); err != nil {
			return fmt.Errorf("completar cita sembrada: %w", err)
		}
		if _, err := s.svc.AddMedicalRecord(appt.ID,
			"Diagnóstico preliminar de "+reason,
			"Reposo y medicación estándar",
			"El paciente se portó bien.",
		); err != nil {
			return fmt.Errorf("sembrar registro clínico: %w", err)
		}
		if s.rand.Intn(2) == 0 {
			total := decimal.NewFromInt(int64(30 + s.rand.Intn(121)))
			invoice, err := s.svc.GenerateInvoice(pet.ClientID, total, date)
			if err != nil {
				return fmt.Errorf("sembrar factura: %w", err)
			}
			invoice.Status = entity.InvoicePaid
			if _, err := s.svc.UpdateInvoice(invoice); err != nil {
				return fmt.Errorf("marcar factura sembrada: %w", err)
			}
		}
	}

	// Solo los primeros 5 clientes dejan reseña.
	for _, client := range clients[:5] {
		rating := 3 + s.rand.Intn(3)
		comment := sampleComments[s.rand.Intn(len(sampleComments))]
		if _, err := s.svc.AddReview(client.ID, rating, comment, ""); err != nil {
			return fmt.Errorf("sembrar reseña: %w", err)
		}
	}

	s.log.Infof("carga de datos de muestra completada")
	return nil
}
