package clinic

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/clinica-pro/internal/domain"
	"github.com/tu-usuario/clinica-pro/internal/domain/entity"
	"github.com/tu-usuario/clinica-pro/internal/domain/validation"
)

// GenerateInvoice valida y emite una factura con estado inicial "Pendiente".
func (s *Service) GenerateInvoice(clientID int64, total decimal.Decimal, date string) (*entity.Invoice, error) {
	if !validation.IsPositiveAmount(total) {
		return nil, domain.Validationf("El monto debe ser mayor que cero")
	}
	if !validation.IsValidDate(date) {
		return nil, domain.Validationf("Fecha inválida, use el formato YYYY-MM-DD")
	}
	day, _ := validation.ParseDate(date)
	invoice := &entity.Invoice{
		ClientID: clientID,
		Date:     day,
		Total:    total,
		Status:   entity.InvoicePending,
	}
	if err := s.invoices.Create(invoice); err != nil {
		s.log.Errorf("error creando factura: %v", err)
		return nil, err
	}
	s.log.Infof("factura creada: %d", invoice.ID)
	return invoice, nil
}

// UpdateInvoice valida y actualiza una factura (típicamente Pendiente → Pagada).
func (s *Service) UpdateInvoice(invoice *entity.Invoice) (bool, error) {
	if !validation.IsPositiveAmount(invoice.Total) {
		return false, domain.Validationf("El monto debe ser mayor que cero")
	}
	if invoice.Status != entity.InvoicePending && invoice.Status != entity.InvoicePaid {
		return false, domain.Validationf("Estado de factura inválido: %s", invoice.Status)
	}
	ok, err := s.invoices.Update(invoice)
	if err != nil {
		s.log.Errorf("error actualizando factura %d: %v", invoice.ID, err)
		return false, err
	}
	if ok {
		s.log.Infof("factura actualizada: %d", invoice.ID)
	}
	return ok, nil
}

// ListInvoices devuelve todas las facturas.
func (s *Service) ListInvoices() ([]*entity.Invoice, error) {
	return s.invoices.GetAll()
}

// GetInvoiceByID devuelve la factura o (nil, nil) si no existe.
func (s *Service) GetInvoiceByID(id int64) (*entity.Invoice, error) {
	return s.invoices.GetByID(id)
}

// DeleteInvoice elimina una factura.
func (s *Service) DeleteInvoice(id int64) (bool, error) {
	ok, err := s.invoices.Delete(id)
	if err != nil {
		s.log.Errorf("error eliminando factura %d: %v", id, err)
		return false, err
	}
	return ok, nil
}
