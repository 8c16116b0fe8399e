package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLineRequest una línea del carrito: artículo y cantidad pedida.
type SaleLineRequest struct {
	StockItemID string `json:"stock_item_id" validate:"required"`
	Quantity    int64  `json:"quantity" validate:"required,min=1"`
}

// CreateSaleRequest entrada para registrar una venta completa.
type CreateSaleRequest struct {
	ClientID         string            `json:"client_id" validate:"required"`
	Lines            []SaleLineRequest `json:"lines" validate:"required,min=1"`
	PaymentMethod    string            `json:"payment_method" validate:"required"`
	InstallmentCount int               `json:"installment_count"`
	FirstDueDate     string            `json:"first_due_date"` // yyyy-mm-dd; requerido si hay cuotas
}

// InstallmentResponse una cuota de la venta.
type InstallmentResponse struct {
	Sequence int             `json:"sequence"`
	Amount   decimal.Decimal `json:"amount"`
	DueDate  string          `json:"due_date"` // yyyy-mm-dd
	Paid     bool            `json:"paid"`
}

// SaleResponse salida de una venta con sus cuotas.
type SaleResponse struct {
	ID               string                `json:"id"`
	ClientID         string                `json:"client_id"`
	ClientName       string                `json:"client_name"`
	ItemsDescription string                `json:"items_description"`
	TotalValue       decimal.Decimal       `json:"total_value"`
	PaymentMethod    string                `json:"payment_method"`
	InstallmentCount int                   `json:"installment_count"`
	SaleDate         string                `json:"sale_date"` // yyyy-mm-dd
	Installments     []InstallmentResponse `json:"installments"`
	CreatedAt        time.Time             `json:"created_at"`
}

// MarkInstallmentRequest entrada para marcar una cuota como pagada o no.
type MarkInstallmentRequest struct {
	Paid bool `json:"paid"`
}
