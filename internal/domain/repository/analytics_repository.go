package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DueInstallmentRow cuota no pagada con vencimiento próximo (fila de reporte).
type DueInstallmentRow struct {
	SaleID     string
	ClientName string
	Sequence   int
	Amount     decimal.Decimal
	DueDate    time.Time
}

// AnalyticsRepository consultas read-only para el dashboard financiero.
type AnalyticsRepository interface {
	// GetSalesTotal suma TotalValue de las ventas con SaleDate en el rango.
	GetSalesTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	// GetExpensesTotal suma TotalValue de los gastos con DueDate en el rango.
	GetExpensesTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	// ListDueInstallments cuotas no pagadas con vencimiento en el rango, ordenadas por fecha.
	ListDueInstallments(ctx context.Context, from, to time.Time) ([]DueInstallmentRow, error)
}
