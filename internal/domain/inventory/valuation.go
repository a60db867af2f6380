// Package inventory contiene las reglas puras del stock de repuestos:
// valorización, aplicación de deltas y orden del historial.
package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
)

// ComputeTotalValue devuelve quantity * unitPrice.
// Se invoca explícitamente al construir o actualizar un repuesto o una salida.
func ComputeTotalValue(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// ApplyDelta suma delta a la existencia actual. Devuelve ErrInsufficientStock
// si el resultado quedaría negativo (la existencia nunca baja de cero).
func ApplyDelta(current, delta int) (int, error) {
	next := current + delta
	if next < 0 {
		return current, domain.ErrInsufficientStock
	}
	return next, nil
}

// Revalue aplica un delta de cantidad al repuesto y recalcula TotalValue.
func Revalue(part *entity.SparePart, delta int) error {
	next, err := ApplyDelta(part.Quantity, delta)
	if err != nil {
		return err
	}
	part.Quantity = next
	part.TotalValue = ComputeTotalValue(part.Quantity, part.UnitPrice)
	return nil
}

// SortByDateDesc ordena el historial por fecha descendente.
// Los empates conservan el orden de entrada (entradas antes que salidas).
func SortByDateDesc(entries []entity.MovementEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
}
