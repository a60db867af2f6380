package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockOut representa una salida de stock (despacho) aprobada por un responsable.
// UnitPrice es el precio al momento de la salida; TotalValue = Quantity * UnitPrice.
type StockOut struct {
	ID          string
	BusinessID  string
	SparePartID string
	Quantity    int
	Date        time.Time
	UnitPrice   decimal.Decimal
	TotalValue  decimal.Decimal
	ApprovedBy  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
