package memory

import (
	"sort"
	"sync"

	"github.com/tu-usuario/clinica-pro/internal/domain/entity"
	"github.com/tu-usuario/clinica-pro/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo repositorio de facturas en memoria.
type InvoiceRepo struct {
	mu     sync.RWMutex
	byID   map[int64]entity.Invoice
	nextID int64
}

// NewInvoiceRepository construye el repositorio vacío.
func NewInvoiceRepository() *InvoiceRepo {
	return &InvoiceRepo{byID: make(map[int64]entity.Invoice)}
}

func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	invoice.ID = r.nextID
	r.byID[invoice.ID] = *invoice
	return nil
}

func (r *InvoiceRepo) GetAll() ([]*entity.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Invoice, 0, len(r.byID))
	for _, inv := range r.byID {
		inv := inv
		list = append(list, &inv)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *InvoiceRepo) GetByID(id int64) (*entity.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inv, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

func (r *InvoiceRepo) Update(invoice *entity.Invoice) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[invoice.ID]; !ok {
		return false, nil
	}
	r.byID[invoice.ID] = *invoice
	return true, nil
}

func (r *InvoiceRepo) Delete(id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}
