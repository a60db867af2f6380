// Package report arma los documentos descargables del inventario.
package report

import (
	"context"
	"time"

	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

// Generator renderiza el reporte de existencias (implementado en infrastructure/pdf).
type Generator interface {
	GenerateStockReport(ctx context.Context, parts []*entity.SparePart, generatedAt time.Time) ([]byte, error)
}

// ReportUseCase genera el reporte de existencias a partir de los repuestos actuales.
type ReportUseCase struct {
	parts repository.SparePartRepository
	gen   Generator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(parts repository.SparePartRepository, gen Generator) *ReportUseCase {
	return &ReportUseCase{parts: parts, gen: gen}
}

// StockReport devuelve el PDF con todos los repuestos y el valor total del inventario.
func (uc *ReportUseCase) StockReport(ctx context.Context) ([]byte, error) {
	parts, err := uc.parts.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.gen.GenerateStockReport(ctx, parts, time.Now())
}
