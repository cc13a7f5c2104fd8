package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de una factura.
const (
	InvoicePending = "Pendiente"
	InvoicePaid    = "Pagada"
)

// Invoice representa una factura emitida a un cliente.
// Total es NUMERIC en la base de datos; siempre > 0.
type Invoice struct {
	ID       int64
	ClientID int64
	Date     time.Time
	Total    decimal.Decimal
	Status   string // ver constantes Invoice*
}
