package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest entrada para registrar un gasto.
type CreateExpenseRequest struct {
	Description      string          `json:"description" validate:"required,min=1,max=300"`
	Category         string          `json:"category" validate:"required"`
	TotalValue       decimal.Decimal `json:"total_value"`
	PaymentMethod    string          `json:"payment_method" validate:"required"`
	Installment      bool            `json:"installment"`
	InstallmentCount int             `json:"installment_count"`
	DueDate          string          `json:"due_date" validate:"required"` // yyyy-mm-dd
	Status           string          `json:"status"`
}

// UpdateExpenseStatusRequest entrada para cambiar el estado de un gasto.
type UpdateExpenseStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ExpenseResponse salida de un gasto.
type ExpenseResponse struct {
	ID               string          `json:"id"`
	Description      string          `json:"description"`
	Category         string          `json:"category"`
	TotalValue       decimal.Decimal `json:"total_value"`
	PaymentMethod    string          `json:"payment_method"`
	Installment      bool            `json:"installment"`
	InstallmentCount int             `json:"installment_count"`
	PerInstallment   decimal.Decimal `json:"per_installment"`
	DueDate          string          `json:"due_date"` // yyyy-mm-dd
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
}

// ExpenseListResponse lista de gastos con el total del filtro aplicado.
type ExpenseListResponse struct {
	Items []ExpenseResponse `json:"items"`
	Total decimal.Decimal   `json:"total"`
}
