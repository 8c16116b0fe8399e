// Package analytics contiene el caso de uso del dashboard financiero:
// totales del período y alertas de cuotas por vencer.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/claricinhas/atelier-api/internal/application/dto"
	"github.com/claricinhas/atelier-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// dueAlertWindow días hacia adelante para el widget de cuotas por vencer.
const dueAlertWindow = 7

// DashboardUseCase genera el resumen financiero de un rango de fechas.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO para el rango [from, to].
//
// Tres llamadas en paralelo:
//  1. GetSalesTotal(rango)        → TotalSales
//  2. GetExpensesTotal(rango)     → TotalExpenses
//  3. ListDueInstallments(7 días) → DueInstallments
func (uc *DashboardUseCase) GetSummary(ctx context.Context, from, to time.Time) (*dto.DashboardSummaryDTO, error) {
	type totalResult struct {
		total decimal.Decimal
		err   error
	}
	type dueResult struct {
		rows []repository.DueInstallmentRow
		err  error
	}

	salesCh := make(chan totalResult, 1)
	expensesCh := make(chan totalResult, 1)
	dueCh := make(chan dueResult, 1)

	now := time.Now()
	alertEnd := now.AddDate(0, 0, dueAlertWindow)

	go func() {
		total, err := uc.analyticsRepo.GetSalesTotal(ctx, from, to)
		salesCh <- totalResult{total: total, err: err}
	}()
	go func() {
		total, err := uc.analyticsRepo.GetExpensesTotal(ctx, from, to)
		expensesCh <- totalResult{total: total, err: err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.ListDueInstallments(ctx, now, alertEnd)
		dueCh <- dueResult{rows: rows, err: err}
	}()

	sales := <-salesCh
	expenses := <-expensesCh
	due := <-dueCh

	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: total de ventas: %w", sales.err)
	}
	if expenses.err != nil {
		return nil, fmt.Errorf("dashboard: total de gastos: %w", expenses.err)
	}
	if due.err != nil {
		return nil, fmt.Errorf("dashboard: cuotas por vencer: %w", due.err)
	}

	dueDTOs := make([]dto.DueInstallmentDTO, 0, len(due.rows))
	for _, r := range due.rows {
		dueDTOs = append(dueDTOs, dto.DueInstallmentDTO{
			SaleID:     r.SaleID,
			ClientName: r.ClientName,
			Sequence:   r.Sequence,
			Amount:     r.Amount,
			DueDate:    r.DueDate.Format(dateLayout),
		})
	}

	return &dto.DashboardSummaryDTO{
		TotalSales:      sales.total.Round(2),
		TotalExpenses:   expenses.total.Round(2),
		Balance:         sales.total.Sub(expenses.total).Round(2),
		DueInstallments: dueDTOs,
	}, nil
}
