package clinic

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/clinica-pro/internal/domain"
	"github.com/tu-usuario/clinica-pro/internal/domain/entity"
	"github.com/tu-usuario/clinica-pro/internal/infrastructure/memory"
	"github.com/tu-usuario/clinica-pro/pkg/logger"
)

// newTestService arma el servicio sobre repositorios en memoria. El test
// queda en el mismo paquete para poder fijar "hoy" de forma determinista.
func newTestService(t *testing.T) *Service {
	t.Helper()
	appts := memory.NewAppointmentRepository()
	svc := NewService(
		memory.NewClientRepository(),
		memory.NewPetRepository(),
		appts,
		memory.NewMedicalRecordRepository(appts),
		memory.NewInvoiceRepository(),
		memory.NewReviewRepository(),
		logger.Nop(),
	)
	svc.now = func() time.Time {
		return time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	}
	return svc
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestAddClient_AsignaID(t *testing.T) {
	svc := newTestService(t)

	c1, err := svc.AddClient("Ana García", "ana@email.com", "600123456")
	require.NoError(t, err)
	c2, err := svc.AddClient("Carlos Ruiz", "carlos@email.com", "600987654")
	require.NoError(t, err)

	assert.Equal(t, int64(1), c1.ID)
	assert.Equal(t, int64(2), c2.ID)
}

func TestAddClient_ValidacionFallida_CeroEfectos(t *testing.T) {
	cases := []struct {
		name, email, phone string
		rule               string
	}{
		{"", "ana@email.com", "600123456", "El nombre es obligatorio"},
		{"   ", "ana@email.com", "600123456", "El nombre es obligatorio"},
		{"Ana", "sin-arroba", "600123456", "Email inválido"},
		{"Ana", "", "600123456", "Email inválido"},
		{"Ana", "ana@email.com", "12ab34", "Teléfono inválido"},
		// Con nombre y email inválidos manda el nombre (orden de validación).
		{"", "sin-arroba", "12ab34", "El nombre es obligatorio"},
	}
	for _, tc := range cases {
		svc := newTestService(t)
		_, err := svc.AddClient(tc.name, tc.email, tc.phone)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.EqualError(t, err, tc.rule)

		// Una validación fallida no debe dejar rastro.
		list, err := svc.ListClients()
		require.NoError(t, err)
		assert.Empty(t, list)
	}
}

func TestUpdateClient_Inexistente_FalseSinError(t *testing.T) {
	svc := newTestService(t)
	ok, err := svc.UpdateClient(&entity.Client{ID: 99, Name: "Ana", Email: "a@b.com", Phone: "7654321"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteClient_Inexistente_FalseSinError(t *testing.T) {
	svc := newTestService(t)
	ok, err := svc.DeleteClient(42)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetClientByID_Inexistente_NilNil(t *testing.T) {
	svc := newTestService(t)
	got, err := svc.GetClientByID(7)
	require.NoError(t, err)
	assert.Nil(t, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Mascotas
// ──────────────────────────────────────────────────────────────────────────────

func TestAddPet_EdadCeroValida_NegativaNo(t *testing.T) {
	svc := newTestService(t)
	owner, err := svc.AddClient("Ana", "ana@email.com", "600123456")
	require.NoError(t, err)

	_, err = svc.AddPet("Cachorro", "Perro", "Mestizo", 0, owner.ID)
	assert.NoError(t, err, "edad cero (cachorro) debe aceptarse")

	_, err = svc.AddPet("Fantasma", "Perro", "Mestizo", -1, owner.ID)
	require.Error(t, err)
	assert.EqualError(t, err, "La edad no puede ser negativa")

	_, err = svc.AddPet("SinEspecie", "", "Mestizo", 2, owner.ID)
	require.Error(t, err)
	assert.EqualError(t, err, "La especie es obligatoria")
}

func TestListPetsByClient_FiltraPorDueno(t *testing.T) {
	svc := newTestService(t)
	ana, _ := svc.AddClient("Ana", "ana@email.com", "600123456")
	carlos, _ := svc.AddClient("Carlos", "carlos@email.com", "600987654")

	_, err := svc.AddPet("Luna", "Perro", "Golden", 3, ana.ID)
	require.NoError(t, err)
	_, err = svc.AddPet("Max", "Perro", "Pastor", 5, carlos.ID)
	require.NoError(t, err)
	_, err = svc.AddPet("Mishi", "Gato", "Persa", 2, ana.ID)
	require.NoError(t, err)

	deAna, err := svc.ListPetsByClient(ana.ID)
	require.NoError(t, err)
	require.Len(t, deAna, 2)
	assert.Equal(t, "Luna", deAna[0].Name)
	assert.Equal(t, "Mishi", deAna[1].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Citas
// ──────────────────────────────────────────────────────────────────────────────

func TestBookAppointment_EstadoInicialPendiente(t *testing.T) {
	svc := newTestService(t)
	appt, err := svc.BookAppointment(1, "2024-06-20", "Vacunación")
	require.NoError(t, err)

	assert.Equal(t, entity.AppointmentPending, appt.Status)
	assert.Equal(t, time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC), appt.Date)
}

func TestBookAppointment_FechasInvalidas(t *testing.T) {
	svc := newTestService(t)
	for _, date := range []string{"2024-02-30", "20-06-2024", "", "mañana"} {
		_, err := svc.BookAppointment(1, date, "Revisión")
		require.Error(t, err, "fecha: %q", date)
		assert.EqualError(t, err, "Fecha inválida, use el formato YYYY-MM-DD")
	}
	// Motivo vacío se comprueba antes que la fecha.
	_, err := svc.BookAppointment(1, "2024-02-30", "  ")
	require.Error(t, err)
	assert.EqualError(t, err, "El motivo es obligatorio")
}

func TestUpdateAppointment_EstadoInvalido(t *testing.T) {
	svc := newTestService(t)
	appt, err := svc.BookAppointment(1, "2024-06-20", "Vacunación")
	require.NoError(t, err)

	appt.Status = "Cancelada"
	_, err = svc.UpdateAppointment(appt)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.EqualError(t, err, "Estado de cita inválido: Cancelada")

	appt.Status = entity.AppointmentCompleted
	ok, err := svc.UpdateAppointment(appt)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := svc.GetAppointmentByID(appt.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentCompleted, got.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Registros clínicos e historial
// ──────────────────────────────────────────────────────────────────────────────

func TestAddMedicalRecord_CamposObligatorios(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddMedicalRecord(1, "", "Reposo", "")
	require.Error(t, err)
	assert.EqualError(t, err, "El diagnóstico es obligatorio")

	_, err = svc.AddMedicalRecord(1, "Otitis", "  ", "")
	require.Error(t, err)
	assert.EqualError(t, err, "El tratamiento es obligatorio")

	rec, err := svc.AddMedicalRecord(1, "Otitis", "Gotas óticas", "")
	require.NoError(t, err)
	assert.NotZero(t, rec.ID)
	assert.Empty(t, rec.Notes, "las notas son opcionales")
}

func TestGetMedicalHistoryByPet_MasRecientePrimero(t *testing.T) {
	svc := newTestService(t)
	ana, _ := svc.AddClient("Ana", "ana@email.com", "600123456")
	luna, err := svc.AddPet("Luna", "Perro", "Golden", 3, ana.ID)
	require.NoError(t, err)
	otro, err := svc.AddPet("Max", "Perro", "Pastor", 5, ana.ID)
	require.NoError(t, err)

	// Tres citas de Luna en desorden cronológico y una de otra mascota.
	a1, _ := svc.BookAppointment(luna.ID, "2024-03-10", "Vacunación")
	a2, _ := svc.BookAppointment(luna.ID, "2024-06-01", "Revisión General")
	a3, _ := svc.BookAppointment(luna.ID, "2024-01-05", "Desparasitación")
	ajeno, _ := svc.BookAppointment(otro.ID, "2024-05-05", "Corte de uñas")

	for _, appt := range []*entity.Appointment{a1, a2, a3, ajeno} {
		_, err := svc.AddMedicalRecord(appt.ID, "Diagnóstico de "+appt.Reason, "Tratamiento estándar", "")
		require.NoError(t, err)
	}

	history, err := svc.GetMedicalHistoryByPet(luna.ID)
	require.NoError(t, err)
	require.Len(t, history, 3, "el historial no debe mezclar mascotas")

	assert.Equal(t, "Revisión General", history[0].Reason)
	assert.Equal(t, "Vacunación", history[1].Reason)
	assert.Equal(t, "Desparasitación", history[2].Reason)
	assert.True(t, history[0].Date.After(history[1].Date))
	assert.True(t, history[1].Date.After(history[2].Date))
}

func TestGetMedicalHistoryByPet_SinRegistros_Vacio(t *testing.T) {
	svc := newTestService(t)
	history, err := svc.GetMedicalHistoryByPet(123)
	require.NoError(t, err)
	assert.Empty(t, history)
}

// ──────────────────────────────────────────────────────────────────────────────
// Facturas
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerateInvoice_EstadoInicialPendiente(t *testing.T) {
	svc := newTestService(t)
	inv, err := svc.GenerateInvoice(1, decimal.NewFromFloat(75.50), "2024-06-15")
	require.NoError(t, err)

	assert.Equal(t, entity.InvoicePending, inv.Status)
	assert.True(t, inv.Total.Equal(decimal.NewFromFloat(75.50)))
	assert.Equal(t, "2024-06-15", inv.Date.Format("2006-01-02"), "la fecha debe ir y volver sin deriva")
}

func TestGenerateInvoice_MontoNoPositivo(t *testing.T) {
	svc := newTestService(t)
	for _, total := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-10)} {
		_, err := svc.GenerateInvoice(1, total, "2024-06-15")
		require.Error(t, err, "total: %s", total)
		assert.EqualError(t, err, "El monto debe ser mayor que cero")
	}
}

func TestUpdateInvoice_MarcarPagada(t *testing.T) {
	svc := newTestService(t)
	inv, err := svc.GenerateInvoice(1, decimal.NewFromInt(120), "2024-06-15")
	require.NoError(t, err)

	inv.Status = "Anulada"
	_, err = svc.UpdateInvoice(inv)
	require.Error(t, err)
	assert.EqualError(t, err, "Estado de factura inválido: Anulada")

	inv.Status = entity.InvoicePaid
	ok, err := svc.UpdateInvoice(inv)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := svc.GetInvoiceByID(inv.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoicePaid, got.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reseñas
// ──────────────────────────────────────────────────────────────────────────────

func TestAddReview_LimitesDeCalificacion(t *testing.T) {
	svc := newTestService(t)

	for _, rating := range []int{1, 5} {
		_, err := svc.AddReview(1, rating, "ok", "2024-06-01")
		assert.NoError(t, err, "calificación %d debe aceptarse", rating)
	}
	for _, rating := range []int{0, 6, -3} {
		_, err := svc.AddReview(1, rating, "ok", "2024-06-01")
		require.Error(t, err, "calificación %d debe rechazarse", rating)
		assert.EqualError(t, err, "La calificación debe estar entre 1 y 5")
	}
}

func TestAddReview_FechaVaciaEsHoy(t *testing.T) {
	svc := newTestService(t) // "hoy" fijado al 2024-06-15

	rv, err := svc.AddReview(1, 4, "Excelente servicio", "")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), rv.Date,
		"fecha vacía debe resolverse a la medianoche UTC de hoy")

	rv2, err := svc.AddReview(1, 5, "", "2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), rv2.Date)
	assert.Empty(t, rv2.Comment, "el comentario es opcional")
}

func TestListReviewsByClient_Filtra(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.AddReview(1, 5, "a", "2024-06-01")
	require.NoError(t, err)
	_, err = svc.AddReview(2, 3, "b", "2024-06-02")
	require.NoError(t, err)
	_, err = svc.AddReview(1, 4, "c", "2024-06-03")
	require.NoError(t, err)

	all, err := svc.ListReviews()
	require.NoError(t, err)
	assert.Len(t, all, 3)

	del1, err := svc.ListReviewsByClient(1)
	require.NoError(t, err)
	assert.Len(t, del1, 2)
}

func TestDeleteReview_Inexistente_FalseSinError(t *testing.T) {
	svc := newTestService(t)
	ok, err := svc.DeleteReview(9)
	require.NoError(t, err)
	assert.False(t, ok)
}
