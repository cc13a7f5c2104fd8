package seed

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/clinica-pro/internal/application/clinic"
	"github.com/tu-usuario/clinica-pro/internal/domain/entity"
	"github.com/tu-usuario/clinica-pro/internal/infrastructure/memory"
	"github.com/tu-usuario/clinica-pro/pkg/logger"
)

// newTestSeeder arma el seeder sobre un servicio en memoria, con generador y
// reloj fijos para que el resultado sea reproducible.
func newTestSeeder(t *testing.T) (*Seeder, *clinic.Service) {
	t.Helper()
	appts := memory.NewAppointmentRepository()
	svc := clinic.NewService(
		memory.NewClientRepository(),
		memory.NewPetRepository(),
		appts,
		memory.NewMedicalRecordRepository(appts),
		memory.NewInvoiceRepository(),
		memory.NewReviewRepository(),
		logger.Nop(),
	)
	s := NewSeeder(svc, logger.Nop())
	s.rand = rand.New(rand.NewSource(1))
	s.now = func() time.Time {
		return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	}
	return s, svc
}

func TestRun_BaseVacia_CargaDatos(t *testing.T) {
	s, svc := newTestSeeder(t)
	require.NoError(t, s.Run())

	clients, err := svc.ListClients()
	require.NoError(t, err)
	assert.Len(t, clients, len(sampleClients))

	pets, err := svc.ListPets()
	require.NoError(t, err)
	assert.Len(t, pets, len(samplePets))

	appts, err := svc.ListAppointments()
	require.NoError(t, err)
	assert.Len(t, appts, 15)

	reviews, err := svc.ListReviews()
	require.NoError(t, err)
	assert.Len(t, reviews, 5, "solo los primeros 5 clientes dejan reseña")
	for _, rv := range reviews {
		assert.GreaterOrEqual(t, rv.Rating, 3)
		assert.LessOrEqual(t, rv.Rating, 5)
	}
}

func TestRun_SoloLasCitasPasadasQuedanCompletadas(t *testing.T) {
	s, svc := newTestSeeder(t)
	require.NoError(t, s.Run())

	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	appts, err := svc.ListAppointments()
	require.NoError(t, err)

	completed := make(map[int64]bool)
	for _, a := range appts {
		if a.Date.Before(today) {
			assert.Equal(t, entity.AppointmentCompleted, a.Status,
				"cita pasada (%s) debe quedar completada", a.Date.Format("2006-01-02"))
			completed[a.ID] = true
		} else {
			assert.Equal(t, entity.AppointmentPending, a.Status,
				"cita futura o de hoy (%s) debe quedar pendiente", a.Date.Format("2006-01-02"))
		}
	}

	// Todo registro clínico cuelga de una cita completada.
	for _, pet := range mustListPets(t, svc) {
		history, err := svc.GetMedicalHistoryByPet(pet.ID)
		require.NoError(t, err)
		for _, entry := range history {
			assert.True(t, entry.Date.Before(today),
				"registro clínico sobre cita no pasada: %s", entry.Date)
		}
	}
}

func TestRun_FacturasSembradasQuedanPagadas(t *testing.T) {
	s, svc := newTestSeeder(t)
	require.NoError(t, s.Run())

	invoices, err := svc.ListInvoices()
	require.NoError(t, err)
	for _, inv := range invoices {
		assert.Equal(t, entity.InvoicePaid, inv.Status)
		assert.True(t, inv.Total.IsPositive())
	}
}

func TestRun_BaseConDatos_NoOp(t *testing.T) {
	s, svc := newTestSeeder(t)
	_, err := svc.AddClient("Preexistente", "pre@email.com", "7000000")
	require.NoError(t, err)

	require.NoError(t, s.Run())

	clients, err := svc.ListClients()
	require.NoError(t, err)
	assert.Len(t, clients, 1, "con datos previos el seeding debe omitirse")

	pets, err := svc.ListPets()
	require.NoError(t, err)
	assert.Empty(t, pets)
}

func mustListPets(t *testing.T, svc *clinic.Service) []*entity.Pet {
	t.Helper()
	pets, err := svc.ListPets()
	require.NoError(t, err)
	return pets
}
