package sales

import (
	"context"

	"github.com/claricinhas/atelier-api/internal/domain"
	"github.com/claricinhas/atelier-api/internal/domain/repository"
)

// ReceiptUseCase genera el comprobante PDF de una venta (para imprimir o
// mandar por WhatsApp junto con el carnet de cuotas).
type ReceiptUseCase struct {
	saleRepo  repository.SaleRepository
	generator ReceiptPDFGenerator
	shopName  string
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(saleRepo repository.SaleRepository, generator ReceiptPDFGenerator, shopName string) *ReceiptUseCase {
	return &ReceiptUseCase{saleRepo: saleRepo, generator: generator, shopName: shopName}
}

// GenerateReceipt genera el PDF de la venta indicada.
func (uc *ReceiptUseCase) GenerateReceipt(ctx context.Context, saleID string) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return uc.generator.GenerateReceiptPDF(ctx, sale, uc.shopName)
}
