package entity

import "time"

// StockIn representa una entrada de stock (recepción) sobre un repuesto.
// SparePartID es una referencia sin propiedad: el repuesto puede haber sido eliminado.
type StockIn struct {
	ID          string
	BusinessID  string
	SparePartID string
	Quantity    int
	Date        time.Time
	ReceivedBy  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
