// Package expense implementa el registro y consulta de gastos de la tienda.
package expense

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/claricinhas/atelier-api/internal/application/dto"
	"github.com/claricinhas/atelier-api/internal/application/ports"
	"github.com/claricinhas/atelier-api/internal/domain"
	"github.com/claricinhas/atelier-api/internal/domain/entity"
	"github.com/claricinhas/atelier-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// Períodos de listado.
const (
	PeriodCurrentMonth = "month"
	PeriodAll          = "all"
)

// UseCase casos de uso de gastos.
type UseCase struct {
	repo      repository.ExpenseRepository
	snapshots ports.SnapshotStore
}

// NewUseCase construye el caso de uso. snapshots puede ser nil.
func NewUseCase(repo repository.ExpenseRepository, snapshots ports.SnapshotStore) *UseCase {
	return &UseCase{repo: repo, snapshots: snapshots}
}

// Create registra un gasto. Si es parcelado, PerInstallment se deriva como
// TotalValue / InstallmentCount redondeado a 2 decimales.
func (uc *UseCase) Create(in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if in.Description == "" || !entity.ValidExpenseCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) || in.PaymentMethod == entity.PaymentInstallments {
		return nil, domain.ErrInvalidInput
	}
	if in.TotalValue.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	dueDate, err := time.Parse(dateLayout, in.DueDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.ExpenseStatusPending
	}
	if status != entity.ExpenseStatusPending && status != entity.ExpenseStatusPaid {
		return nil, domain.ErrInvalidInput
	}

	count := in.InstallmentCount
	perInstallment := in.TotalValue
	if in.Installment {
		if count < 1 {
			return nil, domain.ErrInvalidInput
		}
		perInstallment = in.TotalValue.Div(decimal.NewFromInt(int64(count))).Round(2)
	} else {
		count = 1
	}

	now := time.Now()
	exp := &entity.Expense{
		ID:               uuid.New().String(),
		Description:      in.Description,
		Category:         in.Category,
		TotalValue:       in.TotalValue,
		PaymentMethod:    in.PaymentMethod,
		Installment:      in.Installment,
		InstallmentCount: count,
		PerInstallment:   perInstallment,
		DueDate:          dueDate,
		Status:           status,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(exp); err != nil {
		return nil, err
	}
	return toExpenseResponse(exp), nil
}

// List lista gastos por período (mes en curso o todo) y método de pago,
// con el total del filtro. Si la DB no responde sirve el snapshot local.
func (uc *UseCase) List(period, paymentMethod string, limit, offset int) (*dto.ExpenseListResponse, error) {
	if period == "" {
		period = PeriodCurrentMonth
	}
	if period != PeriodCurrentMonth && period != PeriodAll {
		return nil, domain.ErrInvalidInput
	}
	if paymentMethod != "" && !entity.ValidPaymentMethod(paymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	filter := repository.ExpenseFilter{PaymentMethod: paymentMethod, Limit: limit, Offset: offset}
	if period == PeriodCurrentMonth {
		now := time.Now()
		filter.From = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		filter.To = filter.From.AddDate(0, 1, 0).Add(-time.Nanosecond)
	}

	expenses, err := uc.repo.List(filter)
	if err != nil {
		if cached, ok := uc.listFromSnapshot(period, paymentMethod); ok {
			return cached, nil
		}
		return nil, err
	}

	resp := &dto.ExpenseListResponse{
		Items: make([]dto.ExpenseResponse, 0, len(expenses)),
		Total: decimal.Zero,
	}
	for _, e := range expenses {
		resp.Items = append(resp.Items, *toExpenseResponse(e))
		resp.Total = resp.Total.Add(e.TotalValue)
	}

	if uc.snapshots != nil && period == PeriodAll && paymentMethod == "" && offset == 0 {
		if err := uc.snapshots.Save(ports.SnapshotExpenses, resp.Items); err != nil {
			log.Warn().Err(err).Msg("expenses: no se pudo guardar snapshot de gastos")
		}
	}
	return resp, nil
}

// listFromSnapshot re-aplica los filtros en memoria sobre el último snapshot.
func (uc *UseCase) listFromSnapshot(period, paymentMethod string) (*dto.ExpenseListResponse, bool) {
	if uc.snapshots == nil {
		return nil, false
	}
	var cached []dto.ExpenseResponse
	if err := uc.snapshots.Load(ports.SnapshotExpenses, &cached); err != nil {
		return nil, false
	}
	log.Warn().Msg("expenses: DB inaccesible, sirviendo gastos desde snapshot local")

	var from, to time.Time
	if period == PeriodCurrentMonth {
		now := time.Now()
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		to = from.AddDate(0, 1, 0).Add(-time.Nanosecond)
	}

	resp := &dto.ExpenseListResponse{Items: make([]dto.ExpenseResponse, 0, len(cached)), Total: decimal.Zero}
	for _, e := range cached {
		if paymentMethod != "" && e.PaymentMethod != paymentMethod {
			continue
		}
		if !from.IsZero() {
			due, err := time.Parse(dateLayout, e.DueDate)
			if err != nil || due.Before(from) || due.After(to) {
				continue
			}
		}
		resp.Items = append(resp.Items, e)
		resp.Total = resp.Total.Add(e.TotalValue)
	}
	return resp, true
}

// UpdateStatus cambia el estado de un gasto (Pendiente <-> Paga).
func (uc *UseCase) UpdateStatus(id, status string) (*dto.ExpenseResponse, error) {
	if status != entity.ExpenseStatusPending && status != entity.ExpenseStatusPaid {
		return nil, domain.ErrInvalidInput
	}
	exp, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if exp == nil {
		return nil, domain.ErrNotFound
	}
	exp.Status = status
	exp.UpdatedAt = time.Now()
	if err := uc.repo.Update(exp); err != nil {
		return nil, err
	}
	return toExpenseResponse(exp), nil
}

// Delete borra un gasto.
func (uc *UseCase) Delete(id string) error {
	exp, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if exp == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:               e.ID,
		Description:      e.Description,
		Category:         e.Category,
		TotalValue:       e.TotalValue,
		PaymentMethod:    e.PaymentMethod,
		Installment:      e.Installment,
		InstallmentCount: e.InstallmentCount,
		PerInstallment:   e.PerInstallment,
		DueDate:          e.DueDate.Format(dateLayout),
		Status:           e.Status,
		CreatedAt:        e.CreatedAt,
	}
}
