package entity

import "time"

// Direcciones de movimiento para el historial.
const (
	MovementTypeIN  = "IN"
	MovementTypeOUT = "OUT"
)

// MissingSparePartName se muestra cuando la referencia del movimiento ya no resuelve.
const MissingSparePartName = "-"

// MovementEntry es una fila del historial combinado de entradas y salidas.
type MovementEntry struct {
	ID            string
	BusinessID    string
	Type          string // IN, OUT
	Date          time.Time
	SparePartID   string
	SparePartName string
	Quantity      int
	Actor         string // receivedBy o approvedBy
}
