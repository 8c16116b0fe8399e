package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Origen de un artículo de producción.
const (
	StockKindOwnProduction    = "OWN_PRODUCTION"    // Facción propia
	StockKindExternalPurchase = "EXTERNAL_PURCHASE" // Compra externa
)

// Tallas válidas para un artículo.
var StockSizes = []string{"P", "M", "G", "GG", "UNICO", "INF P", "INF M", "INF G", "INF GG"}

// StockItem representa un artículo de producción en inventario.
// TotalValue es siempre Quantity × UnitPrice; se recalcula en cada mutación.
// Quantity nunca queda negativa (el ledger lo rechaza con ErrInsufficientStock).
type StockItem struct {
	ID         string
	Name       string
	Kind       string // StockKindOwnProduction | StockKindExternalPurchase
	Size       string
	Quantity   int64
	UnitPrice  decimal.Decimal
	TotalValue decimal.Decimal
	ImageRef   string // URL o referencia opcional a la foto del producto
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ValidSize indica si la talla pertenece al catálogo.
func ValidSize(size string) bool {
	for _, s := range StockSizes {
		if s == size {
			return true
		}
	}
	return false
}

// ValidStockKind indica si el origen es uno de los dos soportados.
func ValidStockKind(kind string) bool {
	return kind == StockKindOwnProduction || kind == StockKindExternalPurchase
}

// RecomputeTotal recalcula TotalValue = Quantity × UnitPrice.
func (s *StockItem) RecomputeTotal() {
	s.TotalValue = decimal.NewFromInt(s.Quantity).Mul(s.UnitPrice)
}
