package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStockInRequest entrada para registrar una entrada de stock.
// Date vacío toma la fecha de registro.
type CreateStockInRequest struct {
	BusinessID  string `json:"business_id" validate:"required,notblank,max=100"`
	SparePartID string `json:"spare_part_id" validate:"required,notblank"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	Date        *Date  `json:"date"`
	ReceivedBy  string `json:"received_by" validate:"required,notblank,max=200"`
}

// UpdateStockInRequest edición parcial de una entrada. No reajusta la existencia del repuesto.
type UpdateStockInRequest struct {
	Quantity   *int    `json:"quantity" validate:"omitempty,gt=0"`
	Date       *Date   `json:"date"`
	ReceivedBy *string `json:"received_by" validate:"omitempty,notblank,max=200"`
}

// CreateStockOutRequest entrada para registrar una salida de stock.
type CreateStockOutRequest struct {
	BusinessID  string           `json:"business_id" validate:"required,notblank,max=100"`
	SparePartID string           `json:"spare_part_id" validate:"required,notblank"`
	Quantity    int              `json:"quantity" validate:"required,gt=0"`
	Date        *Date            `json:"date"`
	UnitPrice   *decimal.Decimal `json:"unit_price" validate:"required,decimal_gte0"`
	ApprovedBy  string           `json:"approved_by" validate:"required,notblank,max=200"`
}

// UpdateStockOutRequest edición parcial de una salida. TotalValue se recalcula; la existencia no.
type UpdateStockOutRequest struct {
	Quantity   *int             `json:"quantity" validate:"omitempty,gt=0"`
	Date       *Date            `json:"date"`
	UnitPrice  *decimal.Decimal `json:"unit_price" validate:"omitempty,decimal_gte0"`
	ApprovedBy *string          `json:"approved_by" validate:"omitempty,notblank,max=200"`
}

// SparePartSummary repuesto embebido en las respuestas de movimientos.
type SparePartSummary struct {
	ID         string          `json:"id"`
	BusinessID string          `json:"business_id"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Quantity   int             `json:"quantity"`
}

// StockInResponse salida de una entrada. SparePart es null si la referencia ya no existe.
type StockInResponse struct {
	ID          string            `json:"id"`
	BusinessID  string            `json:"business_id"`
	SparePartID string            `json:"spare_part_id"`
	SparePart   *SparePartSummary `json:"spare_part"`
	Quantity    int               `json:"quantity"`
	Date        time.Time         `json:"date"`
	ReceivedBy  string            `json:"received_by"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// StockOutResponse salida de una salida de stock.
type StockOutResponse struct {
	ID          string            `json:"id"`
	BusinessID  string            `json:"business_id"`
	SparePartID string            `json:"spare_part_id"`
	SparePart   *SparePartSummary `json:"spare_part"`
	Quantity    int               `json:"quantity"`
	Date        time.Time         `json:"date"`
	UnitPrice   decimal.Decimal   `json:"unit_price"`
	TotalValue  decimal.Decimal   `json:"total_value"`
	ApprovedBy  string            `json:"approved_by"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
