package inventory

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
)

// PostStockIn registra una entrada y suma su cantidad a la existencia del repuesto.
func (uc *MovementUseCase) PostStockIn(ctx context.Context, in dto.CreateStockInRequest) (resp *dto.StockInResponse, err error) {
	ctx, span := uc.startSpan(ctx, "PostStockIn",
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
	businessID := strings.TrimSpace(in.BusinessID)
	existing, err := uc.ins.GetByBusinessID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Duplicate("entrada", businessID)
	}

	now := uc.now()
	movement := &entity.StockIn{
		ID:          uuid.New().String(),
		BusinessID:  businessID,
		SparePartID: part.ID,
		Quantity:    in.Quantity,
		Date:        dto.DateOrNow(in.Date, now),
		ReceivedBy:  strings.TrimSpace(in.ReceivedBy),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	var updated *entity.SparePart
	err = uc.tx.Run(ctx, func(r Repos) error {
		if err := r.Ins.Create(ctx, movement); err != nil {
			return err
		}
		var err error
		updated, err = r.Parts.AdjustQuantity(ctx, part.ID, movement.Quantity)
		if err != nil {
			uc.log.Error().Err(err).
				Str("stock_in_id", movement.ID).
				Str("spare_part_id", part.ID).
				Int("quantity", movement.Quantity).
				Msg("no se pudo ajustar la existencia de la entrada")
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("stock_in_id", movement.ID).
		Str("spare_part_id", updated.ID).
		Int("quantity", movement.Quantity).
		Int("on_hand", updated.Quantity).
		Msg("entrada registrada")
	return toStockInResponse(movement, updated), nil
}

// GetStockIn obtiene una entrada con su repuesto (nil si la referencia ya no existe).
func (uc *MovementUseCase) GetStockIn(ctx context.Context, id string) (*dto.StockInResponse, error) {
	movement, err := uc.ins.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, domain.NotFound("entrada")
	}
	part, err := uc.parts.GetByID(ctx, movement.SparePartID)
	if err != nil {
		return nil, err
	}
	return toStockInResponse(movement, part), nil
}

// ListStockIn lista las entradas con su repuesto embebido.
func (uc *MovementUseCase) ListStockIn(ctx context.Context) ([]dto.StockInResponse, error) {
	list, err := uc.ins.List(ctx)
	if err != nil {
		return nil, err
	}
	parts, err := uc.partsByID(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockInResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toStockInResponse(m, parts[m.SparePartID]))
	}
	return items, nil
}

// UpdateStockIn edita cantidad, fecha o receptor. No reajusta la existencia del repuesto.
func (uc *MovementUseCase) UpdateStockIn(ctx context.Context, id string, in dto.UpdateStockInRequest) (*dto.StockInResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	movement, err := uc.ins.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, domain.NotFound("entrada")
	}
	if in.Quantity != nil {
		movement.Quantity = *in.Quantity
	}
	if in.Date != nil && !in.Date.IsZero() {
		movement.Date = in.Date.Time
	}
	if in.ReceivedBy != nil {
		movement.ReceivedBy = strings.TrimSpace(*in.ReceivedBy)
	}
	movement.UpdatedAt = uc.now()
	if err := uc.ins.Update(ctx, movement); err != nil {
		return nil, notFoundAs(err, "entrada")
	}
	part, err := uc.parts.GetByID(ctx, movement.SparePartID)
	if err != nil {
		return nil, err
	}
	return toStockInResponse(movement, part), nil
}

// DeleteStockIn elimina una entrada. No reajusta la existencia del repuesto.
func (uc *MovementUseCase) DeleteStockIn(ctx context.Context, id string) error {
	if err := uc.ins.Delete(ctx, id); err != nil {
		return notFoundAs(err, "entrada")
	}
	return nil
}

func toStockInResponse(m *entity.StockIn, part *entity.SparePart) *dto.StockInResponse {
	return &dto.StockInResponse{
		ID:          m.ID,
		BusinessID:  m.BusinessID,
		SparePartID: m.SparePartID,
		SparePart:   toSparePartSummary(part),
		Quantity:    m.Quantity,
		Date:        m.Date,
		ReceivedBy:  m.ReceivedBy,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
