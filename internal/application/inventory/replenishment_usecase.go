package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

// DefaultReorderThreshold existencia a partir de la cual un repuesto entra en la lista.
const DefaultReorderThreshold = 5

// consumptionWindow período de salidas considerado para priorizar.
const consumptionWindow = 90 * 24 * time.Hour

// ReplenishmentUseCase genera la lista de reposición: repuestos con existencia
// en o bajo el umbral, priorizados por consumo reciente.
type ReplenishmentUseCase struct {
	parts repository.SparePartRepository
	outs  repository.StockOutRepository
	now   func() time.Time
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(parts repository.SparePartRepository, outs repository.StockOutRepository) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{parts: parts, outs: outs, now: time.Now}
}

// GenerateReplenishmentList devuelve los repuestos con quantity <= threshold, la cantidad
// sugerida para llevarlos a 1.5 veces el umbral y su costo estimado al precio actual.
// threshold <= 0 usa DefaultReorderThreshold.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context, threshold int) ([]dto.ReplenishmentSuggestionDTO, error) {
	if threshold <= 0 {
		threshold = DefaultReorderThreshold
	}

	parts, err := uc.parts.List(ctx)
	if err != nil {
		return nil, err
	}
	outs, err := uc.outs.List(ctx)
	if err != nil {
		return nil, err
	}

	since := uc.now().Add(-consumptionWindow)
	issued := make(map[string]int)
	for _, o := range outs {
		if !o.Date.Before(since) {
			issued[o.SparePartID] += o.Quantity
		}
	}

	idealStock := (threshold*3 + 1) / 2
	suggestions := make([]dto.ReplenishmentSuggestionDTO, 0)
	for _, p := range parts {
		if p.Quantity > threshold {
			continue
		}
		qty := idealStock - p.Quantity
		if qty < 0 {
			qty = 0
		}
		suggestions = append(suggestions, dto.ReplenishmentSuggestionDTO{
			SparePartID:        p.ID,
			BusinessID:         p.BusinessID,
			Name:               p.Name,
			Category:           p.Category,
			CurrentStock:       p.Quantity,
			ReorderPoint:       threshold,
			IdealStock:         idealStock,
			SuggestedOrderQty:  qty,
			UnitPrice:          p.UnitPrice,
			EstimatedOrderCost: p.UnitPrice.Mul(decimal.NewFromInt(int64(qty))),
			UnitsIssuedLast90d: issued[p.ID],
		})
	}

	// Primero mayor consumo reciente, luego menor existencia, luego código.
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.UnitsIssuedLast90d != b.UnitsIssuedLast90d {
			return a.UnitsIssuedLast90d > b.UnitsIssuedLast90d
		}
		if a.CurrentStock != b.CurrentStock {
			return a.CurrentStock < b.CurrentStock
		}
		return a.BusinessID < b.BusinessID
	})

	// 1 = más urgente
	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions, nil
}
