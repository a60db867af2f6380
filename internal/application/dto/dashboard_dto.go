package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementEntryResponse fila del historial combinado de movimientos.
type MovementEntryResponse struct {
	ID            string    `json:"id"`
	BusinessID    string    `json:"business_id"`
	Type          string    `json:"type"` // IN, OUT
	Date          time.Time `json:"date"`
	SparePartID   string    `json:"spare_part_id"`
	SparePartName string    `json:"spare_part_name"`
	Quantity      int       `json:"quantity"`
	Actor         string    `json:"actor"`
}

// MovementHistoryResponse respuesta de GET /api/dashboard/history.
type MovementHistoryResponse struct {
	Items []MovementEntryResponse `json:"items"`
	Total int                     `json:"total"`
}

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	TotalSpareParts int             `json:"total_spare_parts"`
	TotalStockIn    int64           `json:"total_stock_in"`
	TotalStockOut   int64           `json:"total_stock_out"`
	InventoryValue  decimal.Decimal `json:"inventory_value"` // suma de total_value
}

// ReplenishmentSuggestionDTO fila de la lista de reposición.
type ReplenishmentSuggestionDTO struct {
	Priority           int             `json:"priority"`
	SparePartID        string          `json:"spare_part_id"`
	BusinessID         string          `json:"business_id"`
	Name               string          `json:"name"`
	Category           string          `json:"category"`
	CurrentStock       int             `json:"current_stock"`
	ReorderPoint       int             `json:"reorder_point"`
	IdealStock         int             `json:"ideal_stock"`
	SuggestedOrderQty  int             `json:"suggested_order_qty"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	EstimatedOrderCost decimal.Decimal `json:"estimated_order_cost"`
	UnitsIssuedLast90d int             `json:"units_issued_last_90d"`
}
