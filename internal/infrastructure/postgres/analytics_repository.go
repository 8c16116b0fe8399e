package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/claricinhas/atelier-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas read-only para el dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetSalesTotal suma el valor de las ventas del rango.
func (r *AnalyticsRepo) GetSalesTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(total_value), 0) FROM sales
		WHERE sale_date >= $1 AND sale_date <= $2`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum sales: %w", err)
	}
	return total, nil
}

// GetExpensesTotal suma el valor de los gastos del rango.
func (r *AnalyticsRepo) GetExpensesTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(total_value), 0) FROM expenses
		WHERE due_date >= $1 AND due_date <= $2`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum expenses: %w", err)
	}
	return total, nil
}

// ListDueInstallments cuotas no pagadas con vencimiento dentro del rango.
func (r *AnalyticsRepo) ListDueInstallments(ctx context.Context, from, to time.Time) ([]repository.DueInstallmentRow, error) {
	query := `SELECT i.sale_id, s.client_name, i.sequence, i.amount, i.due_date
		FROM installments i
		JOIN sales s ON s.id = i.sale_id
		WHERE i.paid = FALSE AND i.due_date >= $1 AND i.due_date <= $2
		ORDER BY i.due_date, i.sale_id, i.sequence`
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list due installments: %w", err)
	}
	defer rows.Close()
	var list []repository.DueInstallmentRow
	for rows.Next() {
		var row repository.DueInstallmentRow
		if err := rows.Scan(&row.SaleID, &row.ClientName, &row.Sequence, &row.Amount, &row.DueDate); err != nil {
			return nil, fmt.Errorf("scan due installment: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
