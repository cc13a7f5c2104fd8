package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/clinica-pro/internal/domain/repository"
)

// Repos agrupa los seis repositorios de negocio atados a una misma
// transacción.
type Repos struct {
	Clients  repository.ClientRepository
	Pets     repository.PetRepository
	Appts    repository.AppointmentRepository
	Records  repository.MedicalRecordRepository
	Invoices repository.InvoiceRepository
	Reviews  repository.ReviewRepository
}

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Commit si
// fn devuelve nil; Rollback en cualquier otro caso, con liberación
// garantizada de la conexión.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con los repositorios atados a la tx
// y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos Repos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := Repos{
		Clients:  NewClientRepository(tx),
		Pets:     NewPetRepository(tx),
		Appts:    NewAppointmentRepository(tx),
		Records:  NewMedicalRecordRepository(tx),
		Invoices: NewInvoiceRepository(tx),
		Reviews:  NewReviewRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
