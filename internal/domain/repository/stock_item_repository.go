package repository

import "github.com/claricinhas/atelier-api/internal/domain/entity"

// StockItemRepository define el puerto de persistencia para StockItem (DIP).
type StockItemRepository interface {
	Create(item *entity.StockItem) error
	GetByID(id string) (*entity.StockItem, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) dentro de una tx.
	GetForUpdate(id string) (*entity.StockItem, error)
	List(kind string, limit, offset int) ([]*entity.StockItem, error)
	ListAvailable() ([]*entity.StockItem, error)
	Update(item *entity.StockItem) error
	Delete(id string) error
}
