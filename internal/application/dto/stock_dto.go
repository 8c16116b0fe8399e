package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStockItemRequest entrada para registrar un artículo de producción.
type CreateStockItemRequest struct {
	Name      string          `json:"name" validate:"required,min=1,max=200"`
	Kind      string          `json:"kind" validate:"required"`
	Size      string          `json:"size" validate:"required"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	ImageRef  string          `json:"image_ref"`
}

// AdjustStockRequest entrada para ajustar cantidad (delta positivo o negativo).
type AdjustStockRequest struct {
	Delta int64 `json:"delta"`
}

// StockItemResponse salida de un artículo.
type StockItemResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Kind       string          `json:"kind"`
	Size       string          `json:"size"`
	Quantity   int64           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalValue decimal.Decimal `json:"total_value"`
	ImageRef   string          `json:"image_ref,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// StockListResponse lista de artículos con el costo agregado del filtro.
type StockListResponse struct {
	Items     []StockItemResponse `json:"items"`
	TotalCost decimal.Decimal     `json:"total_cost"`
}
