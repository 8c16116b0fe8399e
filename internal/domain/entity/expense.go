package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de gasto.
const (
	ExpenseCategoryRent        = "RENT"
	ExpenseCategoryRawMaterial = "RAW_MATERIAL"
	ExpenseCategoryEnergy      = "ENERGY"
	ExpenseCategoryTransport   = "TRANSPORT"
	ExpenseCategoryWithdrawal  = "WITHDRAWAL"
	ExpenseCategoryOther       = "OTHER"
)

// Estados de un gasto.
const (
	ExpenseStatusPending = "PENDING"
	ExpenseStatusPaid    = "PAID"
)

// ValidExpenseCategory indica si la categoría pertenece al catálogo.
func ValidExpenseCategory(c string) bool {
	switch c {
	case ExpenseCategoryRent, ExpenseCategoryRawMaterial, ExpenseCategoryEnergy,
		ExpenseCategoryTransport, ExpenseCategoryWithdrawal, ExpenseCategoryOther:
		return true
	}
	return false
}

// Expense representa un gasto de la tienda. Si Installment es true,
// PerInstallment = TotalValue / InstallmentCount redondeado a 2 decimales.
type Expense struct {
	ID               string
	Description      string
	Category         string
	TotalValue       decimal.Decimal
	PaymentMethod    string // Cash | Pix | Debit | Credit
	Installment      bool
	InstallmentCount int
	PerInstallment   decimal.Decimal
	DueDate          time.Time
	Status           string // ExpenseStatusPending | ExpenseStatusPaid
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
