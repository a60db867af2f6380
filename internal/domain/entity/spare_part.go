package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SparePart representa un repuesto del inventario con su existencia actual.
// TotalValue es derivado (Quantity * UnitPrice) y se recalcula en cada persistencia.
type SparePart struct {
	ID         string
	BusinessID string // código asignado externamente, único
	Name       string
	Category   string
	UnitPrice  decimal.Decimal
	Quantity   int
	TotalValue decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
