package stock

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claricinhas/atelier-api/internal/application/dto"
	"github.com/claricinhas/atelier-api/internal/application/ports"
	"github.com/claricinhas/atelier-api/internal/domain"
	"github.com/claricinhas/atelier-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeRepo struct {
	items map[string]*entity.StockItem
	fail  bool // simula DB caída
}

var errDBDown = errors.New("db caída")

func newFakeRepo(items ...*entity.StockItem) *fakeRepo {
	r := &fakeRepo{items: make(map[string]*entity.StockItem)}
	for _, it := range items {
		copia := *it
		r.items[it.ID] = &copia
	}
	return r
}

func (r *fakeRepo) Create(item *entity.StockItem) error {
	if r.fail {
		return errDBDown
	}
	copia := *item
	r.items[item.ID] = &copia
	return nil
}

func (r *fakeRepo) GetByID(id string) (*entity.StockItem, error) {
	if r.fail {
		return nil, errDBDown
	}
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	copia := *it
	return &copia, nil
}

func (r *fakeRepo) GetForUpdate(id string) (*entity.StockItem, error) { return r.GetByID(id) }

func (r *fakeRepo) List(kind string, limit, offset int) ([]*entity.StockItem, error) {
	if r.fail {
		return nil, errDBDown
	}
	var out []*entity.StockItem
	for _, it := range r.items {
		if kind == "" || it.Kind == kind {
			copia := *it
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAvailable() ([]*entity.StockItem, error) {
	if r.fail {
		return nil, errDBDown
	}
	var out []*entity.StockItem
	for _, it := range r.items {
		if it.Quantity > 0 {
			copia := *it
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *fakeRepo) Update(item *entity.StockItem) error {
	if r.fail {
		return errDBDown
	}
	copia := *item
	r.items[item.ID] = &copia
	return nil
}

func (r *fakeRepo) Delete(id string) error {
	if r.fail {
		return errDBDown
	}
	delete(r.items, id)
	return nil
}

// fakeSnapshots guarda los snapshots serializados en memoria.
type fakeSnapshots struct {
	data map[string][]byte
}

func newFakeSnapshots() *fakeSnapshots {
	return &fakeSnapshots{data: make(map[string][]byte)}
}

func (s *fakeSnapshots) Save(collection string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.data[collection] = raw
	return nil
}

func (s *fakeSnapshots) Load(collection string, out any) error {
	raw, ok := s.data[collection]
	if !ok {
		return ports.ErrNoSnapshot
	}
	return json.Unmarshal(raw, out)
}

func ownItem(id, name string, qty int64, price string) *entity.StockItem {
	it := &entity.StockItem{
		ID:        id,
		Name:      name,
		Kind:      entity.StockKindOwnProduction,
		Size:      "M",
		Quantity:  qty,
		UnitPrice: decimal.RequireFromString(price),
	}
	it.RecomputeTotal()
	return it
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateItem
// ──────────────────────────────────────────────────────────────────────────────

func TestLedger_CreateItem_CalculaTotal(t *testing.T) {
	uc := NewLedgerUseCase(newFakeRepo(), nil)
	out, err := uc.CreateItem(dto.CreateStockItemRequest{
		Name:      "Blusa bordada",
		Kind:      entity.StockKindOwnProduction,
		Size:      "M",
		Quantity:  4,
		UnitPrice: decimal.RequireFromString("12.50"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.True(t, out.TotalValue.Equal(decimal.RequireFromString("50.00")),
		"TotalValue debe ser Quantity × UnitPrice")
}

func TestLedger_CreateItem_Validaciones(t *testing.T) {
	uc := NewLedgerUseCase(newFakeRepo(), nil)
	cases := []dto.CreateStockItemRequest{
		{Name: "", Kind: entity.StockKindOwnProduction, Size: "M"},
		{Name: "Blusa", Kind: "OTRA_COSA", Size: "M"},
		{Name: "Blusa", Kind: entity.StockKindOwnProduction, Size: "XXXL"},
		{Name: "Blusa", Kind: entity.StockKindOwnProduction, Size: "M", Quantity: -1},
		{Name: "Blusa", Kind: entity.StockKindOwnProduction, Size: "M", UnitPrice: decimal.RequireFromString("-1")},
	}
	for _, in := range cases {
		_, err := uc.CreateItem(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyDelta
// ──────────────────────────────────────────────────────────────────────────────

func TestLedger_ApplyDelta_EntradaYSalida(t *testing.T) {
	repo := newFakeRepo(ownItem("itm-1", "Blusa", 5, "10.00"))
	uc := NewLedgerUseCase(repo, nil)

	out, err := uc.ApplyDelta("itm-1", 3)
	require.NoError(t, err)
	assert.EqualValues(t, 8, out.Quantity)
	assert.True(t, out.TotalValue.Equal(decimal.RequireFromString("80.00")))

	out, err = uc.ApplyDelta("itm-1", -8)
	require.NoError(t, err)
	assert.EqualValues(t, 0, out.Quantity)
	assert.True(t, out.TotalValue.IsZero())
}

func TestLedger_ApplyDelta_NuncaNegativo(t *testing.T) {
	repo := newFakeRepo(ownItem("itm-1", "Blusa", 2, "10.00"))
	uc := NewLedgerUseCase(repo, nil)

	_, err := uc.ApplyDelta("itm-1", -3)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// El rechazo no debe persistir nada.
	item, _ := repo.GetByID("itm-1")
	assert.EqualValues(t, 2, item.Quantity)
}

func TestLedger_ApplyDelta_ArticuloInexistente(t *testing.T) {
	uc := NewLedgerUseCase(newFakeRepo(), nil)
	_, err := uc.ApplyDelta("no-existe", 1)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// List + snapshot fallback
// ──────────────────────────────────────────────────────────────────────────────

func TestLedger_List_TotalCostDelFiltro(t *testing.T) {
	repo := newFakeRepo(
		ownItem("itm-1", "Blusa", 2, "10.00"),  // 20.00
		ownItem("itm-2", "Calça", 3, "5.00"),   // 15.00
	)
	uc := NewLedgerUseCase(repo, nil)

	out, err := uc.List("", 50, 0)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.True(t, out.TotalCost.Equal(decimal.RequireFromString("35.00")))
}

func TestLedger_List_KindDesconocido(t *testing.T) {
	uc := NewLedgerUseCase(newFakeRepo(), nil)
	_, err := uc.List("OTRA_COSA", 50, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLedger_List_FallbackDesdeSnapshot(t *testing.T) {
	repo := newFakeRepo(ownItem("itm-1", "Blusa", 2, "10.00"))
	snapshots := newFakeSnapshots()
	uc := NewLedgerUseCase(repo, snapshots)

	// Primer listado exitoso guarda el snapshot.
	_, err := uc.List("", 50, 0)
	require.NoError(t, err)

	// DB caída: se sirve desde el snapshot.
	repo.fail = true
	out, err := uc.List("", 50, 0)
	require.NoError(t, err, "con snapshot disponible el listado degrada, no falla")
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Blusa", out.Items[0].Name)
	assert.True(t, out.TotalCost.Equal(decimal.RequireFromString("20.00")))
}

func TestLedger_List_SinSnapshotPropagaError(t *testing.T) {
	repo := newFakeRepo()
	repo.fail = true
	uc := NewLedgerUseCase(repo, newFakeSnapshots())

	_, err := uc.List("", 50, 0)
	assert.ErrorIs(t, err, errDBDown)
}
