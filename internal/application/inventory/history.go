package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/inventory"
)

// ListMovementHistory combina entradas y salidas en un historial ordenado por fecha descendente.
// Cada fila lleva el nombre del repuesto o entity.MissingSparePartName si la referencia no resuelve.
// limit <= 0 devuelve todo.
func (uc *MovementUseCase) ListMovementHistory(ctx context.Context, limit int) (entries []entity.MovementEntry, err error) {
	ctx, span := uc.startSpan(ctx, "ListMovementHistory")
	defer func() { endSpan(span, err) }()

	ins, err := uc.ins.List(ctx)
	if err != nil {
		return nil, err
	}
	outs, err := uc.outs.List(ctx)
	if err != nil {
		return nil, err
	}
	parts, err := uc.partsByID(ctx)
	if err != nil {
		return nil, err
	}
	nameOf := func(id string) string {
		if p, ok := parts[id]; ok {
			return p.Name
		}
		return entity.MissingSparePartName
	}

	entries = make([]entity.MovementEntry, 0, len(ins)+len(outs))
	for _, m := range ins {
		entries = append(entries, entity.MovementEntry{
			ID:            m.ID,
			BusinessID:    m.BusinessID,
			Type:          entity.MovementTypeIN,
			Date:          m.Date,
			SparePartID:   m.SparePartID,
			SparePartName: nameOf(m.SparePartID),
			Quantity:      m.Quantity,
			Actor:         m.ReceivedBy,
		})
	}
	for _, m := range outs {
		entries = append(entries, entity.MovementEntry{
			ID:            m.ID,
			BusinessID:    m.BusinessID,
			Type:          entity.MovementTypeOUT,
			Date:          m.Date,
			SparePartID:   m.SparePartID,
			SparePartName: nameOf(m.SparePartID),
			Quantity:      m.Quantity,
			Actor:         m.ApprovedBy,
		})
	}
	inventory.SortByDateDesc(entries)
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// History devuelve el historial en su forma de respuesta HTTP.
func (uc *MovementUseCase) History(ctx context.Context, limit int) (*dto.MovementHistoryResponse, error) {
	entries, err := uc.ListMovementHistory(ctx, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.MovementEntryResponse{
			ID:            e.ID,
			BusinessID:    e.BusinessID,
			Type:          e.Type,
			Date:          e.Date,
			SparePartID:   e.SparePartID,
			SparePartName: e.SparePartName,
			Quantity:      e.Quantity,
			Actor:         e.Actor,
		})
	}
	return &dto.MovementHistoryResponse{Items: items, Total: len(items)}, nil
}

// Summary totales del tablero: repuestos, movimientos y valor del inventario.
func (uc *MovementUseCase) Summary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	parts, err := uc.parts.List(ctx)
	if err != nil {
		return nil, err
	}
	totalIn, err := uc.ins.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalOut, err := uc.outs.Count(ctx)
	if err != nil {
		return nil, err
	}
	value := decimal.Zero
	for _, p := range parts {
		value = value.Add(p.TotalValue)
	}
	return &dto.DashboardSummaryDTO{
		TotalSpareParts: len(parts),
		TotalStockIn:    totalIn,
		TotalStockOut:   totalOut,
		InventoryValue:  value,
	}, nil
}
