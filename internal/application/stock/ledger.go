// Package stock implementa el ledger de producción: el inventario
// autoritativo que las ventas leen y descuentan.
package stock

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/claricinhas/atelier-api/internal/application/dto"
	"github.com/claricinhas/atelier-api/internal/application/ports"
	"github.com/claricinhas/atelier-api/internal/domain"
	"github.com/claricinhas/atelier-api/internal/domain/entity"
	"github.com/claricinhas/atelier-api/internal/domain/repository"
)

// LedgerUseCase casos de uso del inventario de producción. Toda mutación
// recalcula TotalValue = Quantity × UnitPrice y nunca deja Quantity negativa.
type LedgerUseCase struct {
	repo      repository.StockItemRepository
	snapshots ports.SnapshotStore
}

// NewLedgerUseCase construye el caso de uso. snapshots puede ser nil (sin fallback local).
func NewLedgerUseCase(repo repository.StockItemRepository, snapshots ports.SnapshotStore) *LedgerUseCase {
	return &LedgerUseCase{repo: repo, snapshots: snapshots}
}

// CreateItem registra un artículo nuevo de producción.
func (uc *LedgerUseCase) CreateItem(in dto.CreateStockItemRequest) (*dto.StockItemResponse, error) {
	if in.Name == "" || !entity.ValidStockKind(in.Kind) || !entity.ValidSize(in.Size) {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.StockItem{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Kind:      in.Kind,
		Size:      in.Size,
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
		ImageRef:  in.ImageRef,
		CreatedAt: now,
		UpdatedAt: now,
	}
	item.RecomputeTotal()
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toStockItemResponse(item), nil
}

// FindByID obtiene un artículo por ID. Devuelve nil si no existe.
func (uc *LedgerUseCase) FindByID(id string) (*dto.StockItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toStockItemResponse(item), nil
}

// List lista artículos, opcionalmente filtrados por origen, con el costo
// agregado del filtro. Si la DB no responde sirve el último snapshot local.
func (uc *LedgerUseCase) List(kind string, limit, offset int) (*dto.StockListResponse, error) {
	if kind != "" && !entity.ValidStockKind(kind) {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	items, err := uc.repo.List(kind, limit, offset)
	if err != nil {
		if resp, ok := uc.listFromSnapshot(kind); ok {
			return resp, nil
		}
		return nil, err
	}

	resp := buildStockList(items)
	if uc.snapshots != nil && kind == "" && offset == 0 {
		if err := uc.snapshots.Save(ports.SnapshotProduction, resp.Items); err != nil {
			log.Warn().Err(err).Msg("ledger: no se pudo guardar snapshot de producción")
		}
	}
	return resp, nil
}

// listFromSnapshot sirve el listado desde el último snapshot guardado,
// re-aplicando el filtro de origen en memoria. Modo degradado: se loggea.
func (uc *LedgerUseCase) listFromSnapshot(kind string) (*dto.StockListResponse, bool) {
	if uc.snapshots == nil {
		return nil, false
	}
	var cached []dto.StockItemResponse
	if err := uc.snapshots.Load(ports.SnapshotProduction, &cached); err != nil {
		return nil, false
	}
	log.Warn().Msg("ledger: DB inaccesible, sirviendo producción desde snapshot local")

	resp := &dto.StockListResponse{Items: make([]dto.StockItemResponse, 0, len(cached)), TotalCost: decimal.Zero}
	for _, it := range cached {
		if kind != "" && it.Kind != kind {
			continue
		}
		resp.Items = append(resp.Items, it)
		resp.TotalCost = resp.TotalCost.Add(it.TotalValue)
	}
	return resp, true
}

// ListAvailable lista los artículos con existencias (Quantity > 0), la vista
// que alimenta el armado del carrito de venta.
func (uc *LedgerUseCase) ListAvailable() ([]dto.StockItemResponse, error) {
	items, err := uc.repo.ListAvailable()
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toStockItemResponse(it))
	}
	return out, nil
}

// ApplyDelta ajusta la cantidad de un artículo (entrada de producción o
// corrección). Rechaza con ErrInsufficientStock si el resultado quedaría
// negativo, y recalcula TotalValue antes de persistir.
func (uc *LedgerUseCase) ApplyDelta(id string, delta int64) (*dto.StockItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	if item.Quantity+delta < 0 {
		return nil, domain.ErrInsufficientStock
	}
	item.Quantity += delta
	item.RecomputeTotal()
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toStockItemResponse(item), nil
}

// Delete elimina un artículo del inventario.
func (uc *LedgerUseCase) Delete(id string) error {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrItemNotFound
	}
	return uc.repo.Delete(id)
}

func buildStockList(items []*entity.StockItem) *dto.StockListResponse {
	resp := &dto.StockListResponse{
		Items:     make([]dto.StockItemResponse, 0, len(items)),
		TotalCost: decimal.Zero,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, *toStockItemResponse(it))
		resp.TotalCost = resp.TotalCost.Add(it.TotalValue)
	}
	return resp
}

func toStockItemResponse(it *entity.StockItem) *dto.StockItemResponse {
	return &dto.StockItemResponse{
		ID:         it.ID,
		Name:       it.Name,
		Kind:       it.Kind,
		Size:       it.Size,
		Quantity:   it.Quantity,
		UnitPrice:  it.UnitPrice,
		TotalValue: it.TotalValue,
		ImageRef:   it.ImageRef,
		CreatedAt:  it.CreatedAt,
		UpdatedAt:  it.UpdatedAt,
	}
}
