package repository

import (
	"github.com/claricinhas/atelier-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale y sus cuotas.
// Las consultas de cuotas por vencer viven en AnalyticsRepository.
type SaleRepository interface {
	// Create persiste la venta junto con todas sus cuotas.
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	List(limit, offset int) ([]*entity.Sale, error)
	Delete(id string) error
	// MarkInstallmentPaid actualiza el flag Paid de una cuota.
	MarkInstallmentPaid(saleID string, sequence int, paid bool) error
}
