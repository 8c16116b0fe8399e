package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claricinhas/atelier-api/internal/domain/repository"
)

type fakeAnalyticsRepo struct {
	salesTotal    decimal.Decimal
	expensesTotal decimal.Decimal
	due           []repository.DueInstallmentRow
	err           error
}

func (r *fakeAnalyticsRepo) GetSalesTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	return r.salesTotal, r.err
}

func (r *fakeAnalyticsRepo) GetExpensesTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	return r.expensesTotal, r.err
}

func (r *fakeAnalyticsRepo) ListDueInstallments(ctx context.Context, from, to time.Time) ([]repository.DueInstallmentRow, error) {
	return r.due, r.err
}

func TestDashboard_GetSummary_CalculaBalance(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		salesTotal:    decimal.RequireFromString("1500.50"),
		expensesTotal: decimal.RequireFromString("420.25"),
		due: []repository.DueInstallmentRow{
			{
				SaleID:     "sale-1",
				ClientName: "Maria",
				Sequence:   1,
				Amount:     decimal.RequireFromString("33.33"),
				DueDate:    time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC),
			},
		},
	}
	uc := NewDashboardUseCase(repo)

	out, err := uc.GetSummary(context.Background(), time.Now().AddDate(0, -1, 0), time.Now())
	require.NoError(t, err)

	assert.True(t, out.TotalSales.Equal(decimal.RequireFromString("1500.50")))
	assert.True(t, out.TotalExpenses.Equal(decimal.RequireFromString("420.25")))
	assert.True(t, out.Balance.Equal(decimal.RequireFromString("1080.25")),
		"balance = ventas - gastos")

	require.Len(t, out.DueInstallments, 1)
	assert.Equal(t, "Maria", out.DueInstallments[0].ClientName)
	assert.Equal(t, "2026-09-02", out.DueInstallments[0].DueDate)
}

func TestDashboard_GetSummary_SinMovimientos(t *testing.T) {
	uc := NewDashboardUseCase(&fakeAnalyticsRepo{})
	out, err := uc.GetSummary(context.Background(), time.Now(), time.Now())
	require.NoError(t, err)

	assert.True(t, out.TotalSales.IsZero())
	assert.True(t, out.TotalExpenses.IsZero())
	assert.True(t, out.Balance.IsZero())
	assert.Empty(t, out.DueInstallments)
}

func TestDashboard_GetSummary_PropagaError(t *testing.T) {
	uc := NewDashboardUseCase(&fakeAnalyticsRepo{err: errors.New("db caída")})
	_, err := uc.GetSummary(context.Background(), time.Now(), time.Now())
	assert.Error(t, err)
}
