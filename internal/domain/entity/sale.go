package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago de una venta.
const (
	PaymentCash         = "CASH"
	PaymentPix          = "PIX"
	PaymentDebit        = "DEBIT"
	PaymentCredit       = "CREDIT"       // tarjeta de crédito (la operadora liquida de inmediato)
	PaymentInstallments = "INSTALLMENTS" // crediário: financiado por la tienda, cobrado por cuotas
)

// ValidPaymentMethod indica si el método pertenece al catálogo.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentPix, PaymentDebit, PaymentCredit, PaymentInstallments:
		return true
	}
	return false
}

// Sale representa una venta confirmada. Inmutable tras el commit, salvo el
// flag Paid de sus cuotas. ClientName es snapshot: borrar el cliente no
// borra ni altera la venta.
type Sale struct {
	ID               string
	ClientID         string
	ClientName       string
	ItemsDescription string // resumen legible de las líneas: "2x Blusa (M), 1x Calça (P)"
	TotalValue       decimal.Decimal
	PaymentMethod    string
	InstallmentCount int
	SaleDate         time.Time
	Installments     []Installment
	CreatedAt        time.Time
}

// Installment es una cuota programada de una venta.
type Installment struct {
	ID       string
	SaleID   string
	Sequence int // índice 0-based dentro de la venta
	Amount   decimal.Decimal
	DueDate  time.Time
	Paid     bool
}
