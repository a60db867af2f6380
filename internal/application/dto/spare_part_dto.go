package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSparePartRequest entrada para crear un repuesto.
// Quantity es opcional (existencia inicial, por defecto 0).
type CreateSparePartRequest struct {
	BusinessID string           `json:"business_id" validate:"required,notblank,max=100"`
	Name       string           `json:"name" validate:"required,notblank,max=200"`
	Category   string           `json:"category" validate:"omitempty,max=100"`
	UnitPrice  *decimal.Decimal `json:"unit_price" validate:"required,decimal_gte0"`
	Quantity   *int             `json:"quantity" validate:"omitempty,gte=0"`
}

// UpdateSparePartRequest entrada para actualizar un repuesto; sólo se aplican los campos presentes.
type UpdateSparePartRequest struct {
	BusinessID *string          `json:"business_id" validate:"omitempty,notblank,max=100"`
	Name       *string          `json:"name" validate:"omitempty,notblank,max=200"`
	Category   *string          `json:"category" validate:"omitempty,max=100"`
	UnitPrice  *decimal.Decimal `json:"unit_price" validate:"omitempty,decimal_gte0"`
	Quantity   *int             `json:"quantity" validate:"omitempty,gte=0"`
}

// SparePartResponse salida de un repuesto.
type SparePartResponse struct {
	ID         string          `json:"id"`
	BusinessID string          `json:"business_id"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Quantity   int             `json:"quantity"`
	TotalValue decimal.Decimal `json:"total_value"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
