package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/inventory"
)

func insufficient(available, requested int) error {
	return fmt.Errorf("%w: disponible %d, solicitado %d", domain.ErrInsufficientStock, available, requested)
}

// PostStockOut registra una salida y descuenta su cantidad de la existencia del repuesto.
// Si otra salida concurrente deja la existencia por debajo de lo solicitado, la salida recién
// guardada se elimina y se devuelve ErrInsufficientStock.
func (uc *MovementUseCase) PostStockOut(ctx context.Context, in dto.CreateStockOutRequest) (resp *dto.StockOutResponse, err error) {
	ctx, span := uc.startSpan(ctx, "PostStockOut",
		attribute.String("spare_part.id", in.SparePartID),
		attribute.Int("movement.quantity", in.Quantity),
	)
	defer func() { endSpan(span, err) }()

	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	part, err := uc.resolvePart(ctx, in.SparePartID)
	if err != nil {
		return nil, err
	}
	if in.Quantity > part.Quantity {
		return nil, insufficient(part.Quantity, in.Quantity)
	}
	businessID := strings.TrimSpace(in.BusinessID)
	existing, err := uc.outs.GetByBusinessID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Duplicate("salida", businessID)
	}

	now := uc.now()
	movement := &entity.StockOut{
		ID:          uuid.New().String(),
		BusinessID:  businessID,
		SparePartID: part.ID,
		Quantity:    in.Quantity,
		Date:        dto.DateOrNow(in.Date, now),
		UnitPrice:   *in.UnitPrice,
		TotalValue:  inventory.ComputeTotalValue(in.Quantity, *in.UnitPrice),
		ApprovedBy:  strings.TrimSpace(in.ApprovedBy),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	var updated *entity.SparePart
	err = uc.tx.Run(ctx, func(r Repos) error {
		if err := r.Outs.Create(ctx, movement); err != nil {
			return err
		}
		var err error
		updated, err = r.Parts.AdjustQuantity(ctx, part.ID, -movement.Quantity)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrInsufficientStock) {
			uc.log.Error().Err(err).
				Str("stock_out_id", movement.ID).
				Str("spare_part_id", part.ID).
				Int("quantity", movement.Quantity).
				Msg("no se pudo ajustar la existencia de la salida")
			return err
		}
		// Otra salida consumió la existencia: la salida no debe quedar registrada.
		if delErr := r.Outs.Delete(ctx, movement.ID); delErr != nil {
			uc.log.Error().Err(delErr).
				Str("stock_out_id", movement.ID).
				Msg("no se pudo revertir la salida rechazada")
		}
		uc.log.Warn().
			Str("stock_out_id", movement.ID).
			Str("spare_part_id", part.ID).
			Int("quantity", movement.Quantity).
			Msg("salida revertida: existencia consumida por otra salida")
		if current, _ := r.Parts.GetByID(ctx, part.ID); current != nil {
			return insufficient(current.Quantity, movement.Quantity)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("stock_out_id", movement.ID).
		Str("spare_part_id", updated.ID).
		Int("quantity", movement.Quantity).
		Int("on_hand", updated.Quantity).
		Msg("salida registrada")
	return toStockOutResponse(movement, updated), nil
}

// GetStockOut obtiene una salida con su repuesto (nil si la referencia ya no existe).
func (uc *MovementUseCase) GetStockOut(ctx context.Context, id string) (*dto.StockOutResponse, error) {
	movement, err := uc.outs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, domain.NotFound("salida")
	}
	part, err := uc.parts.GetByID(ctx, movement.SparePartID)
	if err != nil {
		return nil, err
	}
	return toStockOutResponse(movement, part), nil
}

// ListStockOut lista las salidas con su repuesto embebido.
func (uc *MovementUseCase) ListStockOut(ctx context.Context) ([]dto.StockOutResponse, error) {
	list, err := uc.outs.List(ctx)
	if err != nil {
		return nil, err
	}
	parts, err := uc.partsByID(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockOutResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toStockOutResponse(m, parts[m.SparePartID]))
	}
	return items, nil
}

// UpdateStockOut edita la salida y recalcula TotalValue. No reajusta la existencia del repuesto.
func (uc *MovementUseCase) UpdateStockOut(ctx context.Context, id string, in dto.UpdateStockOutRequest) (*dto.StockOutResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	movement, err := uc.outs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, domain.NotFound("salida")
	}
	if in.Quantity != nil {
		movement.Quantity = *in.Quantity
	}
	if in.Date != nil && !in.Date.IsZero() {
		movement.Date = in.Date.Time
	}
	if in.UnitPrice != nil {
		movement.UnitPrice = *in.UnitPrice
	}
	if in.ApprovedBy != nil {
		movement.ApprovedBy = strings.TrimSpace(*in.ApprovedBy)
	}
	movement.TotalValue = inventory.ComputeTotalValue(movement.Quantity, movement.UnitPrice)
	movement.UpdatedAt = uc.now()
	if err := uc.outs.Update(ctx, movement); err != nil {
		return nil, notFoundAs(err, "salida")
	}
	part, err := uc.parts.GetByID(ctx, movement.SparePartID)
	if err != nil {
		return nil, err
	}
	return toStockOutResponse(movement, part), nil
}

// DeleteStockOut elimina una salida. No reajusta la existencia del repuesto.
func (uc *MovementUseCase) DeleteStockOut(ctx context.Context, id string) error {
	if err := uc.outs.Delete(ctx, id); err != nil {
		return notFoundAs(err, "salida")
	}
	return nil
}

func toStockOutResponse(m *entity.StockOut, part *entity.SparePart) *dto.StockOutResponse {
	return &dto.StockOutResponse{
		ID:          m.ID,
		BusinessID:  m.BusinessID,
		SparePartID: m.SparePartID,
		SparePart:   toSparePartSummary(part),
		Quantity:    m.Quantity,
		Date:        m.Date,
		UnitPrice:   m.UnitPrice,
		TotalValue:  m.TotalValue,
		ApprovedBy:  m.ApprovedBy,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
