package repository

import "github.com/tu-usuario/clinica-pro/internal/domain/entity"

// InvoiceRepository puerto de persistencia para Invoice.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetAll() ([]*entity.Invoice, error)
	GetByID(id int64) (*entity.Invoice, error)
	Update(invoice *entity.Invoice) (bool, error)
	Delete(id int64) (bool, error)
}
