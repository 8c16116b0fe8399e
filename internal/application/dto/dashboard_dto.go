package dto

import "github.com/shopspring/decimal"

// DueInstallmentDTO cuota no pagada que vence pronto (widget de alertas).
type DueInstallmentDTO struct {
	SaleID     string          `json:"sale_id"`
	ClientName string          `json:"client_name"`
	Sequence   int             `json:"sequence"`
	Amount     decimal.Decimal `json:"amount"`
	DueDate    string          `json:"due_date"` // yyyy-mm-dd
}

// DashboardSummaryDTO resumen financiero del período consultado.
type DashboardSummaryDTO struct {
	TotalSales      decimal.Decimal     `json:"total_sales"`
	TotalExpenses   decimal.Decimal     `json:"total_expenses"`
	Balance         decimal.Decimal     `json:"balance"`
	DueInstallments []DueInstallmentDTO `json:"due_installments"`
}
