package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/claricinhas/atelier-api/internal/domain"
	"github.com/claricinhas/atelier-api/internal/domain/entity"
	"github.com/claricinhas/atelier-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación de ExpenseRepository sobre PostgreSQL.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

const expenseColumns = `id, description, category, total_value, payment_method,
	installment, installment_count, per_installment, due_date, status, created_at, updated_at`

// Create persiste un gasto nuevo.
func (r *ExpenseRepo) Create(expense *entity.Expense) error {
	query := `INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		expense.ID, expense.Description, expense.Category, expense.TotalValue,
		expense.PaymentMethod, expense.Installment, expense.InstallmentCount,
		expense.PerInstallment, expense.DueDate, expense.Status,
		expense.CreatedAt, expense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto por ID. nil, nil si no existe.
func (r *ExpenseRepo) GetByID(id string) (*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1`
	e, err := r.scanOneExpense(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return e, nil
}

// List devuelve gastos según filtro, ordenados por due_date descendente.
func (r *ExpenseRepo) List(filter repository.ExpenseFilter) ([]*entity.Expense, error) {
	sql := `SELECT ` + expenseColumns + ` FROM expenses WHERE 1=1`
	args := []any{}
	idx := 1
	if !filter.From.IsZero() {
		sql += fmt.Sprintf(" AND due_date >= $%d", idx)
		args = append(args, filter.From)
		idx++
	}
	if !filter.To.IsZero() {
		sql += fmt.Sprintf(" AND due_date <= $%d", idx)
		args = append(args, filter.To)
		idx++
	}
	if filter.PaymentMethod != "" {
		sql += fmt.Sprintf(" AND payment_method = $%d", idx)
		args = append(args, filter.PaymentMethod)
		idx++
	}
	sql += " ORDER BY due_date DESC"
	if filter.Limit > 0 {
		sql += fmt.Sprintf(" LIMIT $%d OFFSET $%d", idx, idx+1)
		args = append(args, filter.Limit, filter.Offset)
	}
	rows, err := r.q.Query(context.Background(), sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		e, err := r.scanOneExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Update actualiza un gasto existente.
func (r *ExpenseRepo) Update(expense *entity.Expense) error {
	query := `UPDATE expenses SET description = $2, category = $3, total_value = $4,
		payment_method = $5, installment = $6, installment_count = $7,
		per_installment = $8, due_date = $9, status = $10, updated_at = $11
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		expense.ID, expense.Description, expense.Category, expense.TotalValue,
		expense.PaymentMethod, expense.Installment, expense.InstallmentCount,
		expense.PerInstallment, expense.DueDate, expense.Status, expense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra el gasto.
func (r *ExpenseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}

func (r *ExpenseRepo) scanOneExpense(row pgx.Row) (*entity.Expense, error) {
	var e entity.Expense
	err := row.Scan(
		&e.ID, &e.Description, &e.Category, &e.TotalValue, &e.PaymentMethod,
		&e.Installment, &e.InstallmentCount, &e.PerInstallment, &e.DueDate,
		&e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
