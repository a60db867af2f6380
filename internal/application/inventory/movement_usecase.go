package inventory

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
	"github.com/jhoicas/Repuestos-api/pkg/logger"
	"github.com/jhoicas/Repuestos-api/pkg/telemetry"
)

// MovementUseCase registra entradas y salidas de stock y ajusta la existencia del repuesto.
// El ajuste usa la operación condicional atómica del almacén (AdjustQuantity) para no perder
// actualizaciones. Sin TxRunner, el movimiento y el ajuste son dos escrituras separadas.
type MovementUseCase struct {
	parts  repository.SparePartRepository
	ins    repository.StockInRepository
	outs   repository.StockOutRepository
	tx     TxRunner
	log    *logger.Logger
	tracer trace.Tracer
	now    func() time.Time
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(
	parts repository.SparePartRepository,
	ins repository.StockInRepository,
	outs repository.StockOutRepository,
	log *logger.Logger,
) *MovementUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &MovementUseCase{
		parts:  parts,
		ins:    ins,
		outs:   outs,
		tx:     directRunner{repos: Repos{Parts: parts, Ins: ins, Outs: outs}},
		log:    log.Named("inventory"),
		tracer: telemetry.Tracer(),
		now:    time.Now,
	}
}

// WithTxRunner registra movimiento y ajuste de existencia en una sola transacción.
func (uc *MovementUseCase) WithTxRunner(tx TxRunner) *MovementUseCase {
	if tx != nil {
		uc.tx = tx
	}
	return uc
}

func (uc *MovementUseCase) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return uc.tracer.Start(ctx, "inventory."+name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// resolvePart obtiene el repuesto referenciado o NotFound.
func (uc *MovementUseCase) resolvePart(ctx context.Context, id string) (*entity.SparePart, error) {
	part, err := uc.parts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.NotFound("repuesto")
	}
	return part, nil
}

// partsByID carga todos los repuestos para resolver referencias de listas en una sola lectura.
func (uc *MovementUseCase) partsByID(ctx context.Context) (map[string]*entity.SparePart, error) {
	list, err := uc.parts.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.SparePart, len(list))
	for _, p := range list {
		byID[p.ID] = p
	}
	return byID, nil
}

func toSparePartSummary(p *entity.SparePart) *dto.SparePartSummary {
	if p == nil {
		return nil
	}
	return &dto.SparePartSummary{
		ID:         p.ID,
		BusinessID: p.BusinessID,
		Name:       p.Name,
		Category:   p.Category,
		UnitPrice:  p.UnitPrice,
		Quantity:   p.Quantity,
	}
}

func notFoundAs(err error, resource string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NotFound(resource)
	}
	return err
}
