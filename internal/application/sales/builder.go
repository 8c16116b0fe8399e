// Package sales implementa el armado y cierre de ventas: carrito sobre el
// inventario, cronograma de cuotas y registro transaccional.
package sales

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/claricinhas/atelier-api/internal/domain"
	"github.com/claricinhas/atelier-api/internal/domain/entity"
	"github.com/claricinhas/atelier-api/internal/domain/repository"
	domainsale "github.com/claricinhas/atelier-api/internal/domain/sale"
)

// CartLine es una línea transitoria del carrito. Nombre, talla y precio son
// snapshots tomados al agregar: un cambio de precio posterior no afecta la
// línea ya agregada.
type CartLine struct {
	StockItemID string
	Name        string
	Size        string
	Quantity    int64
	UnitPrice   decimal.Decimal
}

// Subtotal devuelve Quantity × UnitPrice de la línea.
func (l CartLine) Subtotal() decimal.Decimal {
	return decimal.NewFromInt(l.Quantity).Mul(l.UnitPrice)
}

// Builder arma una venta: acumula líneas validadas contra el inventario y
// las confirma en Commit. Una instancia = una venta en curso; no es segura
// para uso concurrente (el flujo es una vendedora, una venta a la vez).
type Builder struct {
	stockRepo  repository.StockItemRepository
	clientRepo repository.ClientRepository
	txRunner   TxRunner
	lines      []CartLine
}

// NewBuilder construye un carrito vacío.
func NewBuilder(stockRepo repository.StockItemRepository, clientRepo repository.ClientRepository, txRunner TxRunner) *Builder {
	return &Builder{stockRepo: stockRepo, clientRepo: clientRepo, txRunner: txRunner}
}

// AddLine valida disponibilidad y agrega una línea con snapshot de
// nombre/talla/precio. Cada línea se valida contra el estado actual del
// ledger, no contra lo ya reservado por otras líneas del mismo carrito:
// líneas repetidas del mismo artículo pueden exceder el stock hasta el
// commit, donde la transacción las acumula y rechaza el exceso.
func (b *Builder) AddLine(stockItemID string, quantity int64) error {
	if quantity <= 0 {
		return domain.ErrInvalidInput
	}
	item, err := b.stockRepo.GetByID(stockItemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrItemNotFound
	}
	if quantity > item.Quantity {
		return domain.ErrInsufficientStock
	}
	b.lines = append(b.lines, CartLine{
		StockItemID: item.ID,
		Name:        item.Name,
		Size:        item.Size,
		Quantity:    quantity,
		UnitPrice:   item.UnitPrice,
	})
	return nil
}

// RemoveLine quita la línea en la posición dada.
func (b *Builder) RemoveLine(index int) error {
	if index < 0 || index >= len(b.lines) {
		return domain.ErrInvalidInput
	}
	b.lines = append(b.lines[:index], b.lines[index+1:]...)
	return nil
}

// Lines devuelve una copia de las líneas del carrito.
func (b *Builder) Lines() []CartLine {
	out := make([]CartLine, len(b.lines))
	copy(out, b.lines)
	return out
}

// Total devuelve la suma de subtotales de las líneas actuales.
func (b *Builder) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range b.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Commit cierra la venta: valida precondiciones, genera el cronograma de
// cuotas si aplica y ejecuta descuentos de stock + insert de la venta en una
// sola transacción (todo o nada). En éxito limpia el carrito y devuelve la
// venta con el nombre del cliente resuelto.
func (b *Builder) Commit(ctx context.Context, clientID, paymentMethod string, installmentCount int, firstDueDate time.Time) (*entity.Sale, error) {
	if len(b.lines) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if clientID == "" {
		return nil, domain.ErrClientRequired
	}
	if !entity.ValidPaymentMethod(paymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	client, err := b.clientRepo.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientRequired
	}

	total := b.Total()
	now := time.Now()

	var installments []entity.Installment
	if domainsale.NeedsSchedule(paymentMethod, installmentCount) {
		installments, err = domainsale.GenerateSchedule(total, installmentCount, firstDueDate, paymentMethod)
		if err != nil {
			return nil, err
		}
	}

	sale := &entity.Sale{
		ID:               uuid.New().String(),
		ClientID:         client.ID,
		ClientName:       client.Name,
		ItemsDescription: b.describeLines(),
		TotalValue:       total,
		PaymentMethod:    paymentMethod,
		InstallmentCount: len(installments),
		SaleDate:         now,
		Installments:     installments,
		CreatedAt:        now,
	}
	for i := range sale.Installments {
		sale.Installments[i].ID = uuid.New().String()
		sale.Installments[i].SaleID = sale.ID
	}

	// Descuentos + insert en una transacción: si una línea no alcanza stock
	// (incluida la acumulación de líneas repetidas del mismo artículo), todo
	// se revierte y el inventario queda intacto.
	err = b.txRunner.Run(ctx, func(stockRepo repository.StockItemRepository, saleRepo repository.SaleRepository) error {
		for _, line := range b.lines {
			item, err := stockRepo.GetForUpdate(line.StockItemID)
			if err != nil {
				return err
			}
			if item == nil {
				return domain.ErrItemNotFound
			}
			if item.Quantity < line.Quantity {
				return domain.ErrInsufficientStock
			}
			item.Quantity -= line.Quantity
			item.RecomputeTotal()
			item.UpdatedAt = now
			if err := stockRepo.Update(item); err != nil {
				return err
			}
		}
		return saleRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}

	b.lines = nil
	return sale, nil
}

// describeLines arma el resumen legible: "2x Blusa (M), 1x Calça (P)".
func (b *Builder) describeLines() string {
	parts := make([]string, 0, len(b.lines))
	for _, l := range b.lines {
		parts = append(parts, fmt.Sprintf("%dx %s (%s)", l.Quantity, l.Name, l.Size))
	}
	return strings.Join(parts, ", ")
}
