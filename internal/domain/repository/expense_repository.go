package repository

import (
	"time"

	"github.com/claricinhas/atelier-api/internal/domain/entity"
)

// ExpenseFilter criterios de listado de gastos. Campos cero = sin filtro.
type ExpenseFilter struct {
	From          time.Time
	To            time.Time
	PaymentMethod string
	Limit         int
	Offset        int
}

// ExpenseRepository define el puerto de persistencia para Expense.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	List(filter ExpenseFilter) ([]*entity.Expense, error)
	Update(expense *entity.Expense) error
	Delete(id string) error
}
