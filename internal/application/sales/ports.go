package sales

import (
	"context"

	"github.com/claricinhas/atelier-api/internal/domain/entity"
	"github.com/claricinhas/atelier-api/internal/domain/repository"
)

// TxRunner ejecuta el cierre de una venta dentro de una transacción: los
// descuentos de stock y el insert de la venta se confirman o revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockItemRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// ReceiptPDFGenerator genera el comprobante PDF de una venta.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, sale *entity.Sale, shopName string) ([]byte, error)
}
