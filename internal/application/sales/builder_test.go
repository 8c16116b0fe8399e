package sales

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claricinhas/atelier-api/internal/domain"
	"github.com/claricinhas/atelier-api/internal/domain/entity"
	"github.com/claricinhas/atelier-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeStockRepo struct {
	items map[string]*entity.StockItem
}

func newFakeStockRepo(items ...*entity.StockItem) *fakeStockRepo {
	r := &fakeStockRepo{items: make(map[string]*entity.StockItem)}
	for _, it := range items {
		copia := *it
		r.items[it.ID] = &copia
	}
	return r
}

func (r *fakeStockRepo) clone() *fakeStockRepo {
	c := &fakeStockRepo{items: make(map[string]*entity.StockItem, len(r.items))}
	for id, it := range r.items {
		copia := *it
		c.items[id] = &copia
	}
	return c
}

func (r *fakeStockRepo) Create(item *entity.StockItem) error {
	copia := *item
	r.items[item.ID] = &copia
	return nil
}

func (r *fakeStockRepo) GetByID(id string) (*entity.StockItem, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	copia := *it
	return &copia, nil
}

func (r *fakeStockRepo) GetForUpdate(id string) (*entity.StockItem, error) {
	return r.GetByID(id)
}

func (r *fakeStockRepo) List(kind string, limit, offset int) ([]*entity.StockItem, error) {
	var out []*entity.StockItem
	for _, it := range r.items {
		if kind == "" || it.Kind == kind {
			copia := *it
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *fakeStockRepo) ListAvailable() ([]*entity.StockItem, error) {
	var out []*entity.StockItem
	for _, it := range r.items {
		if it.Quantity > 0 {
			copia := *it
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *fakeStockRepo) Update(item *entity.StockItem) error {
	copia := *item
	r.items[item.ID] = &copia
	return nil
}

func (r *fakeStockRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func newFakeClientRepo(clients ...*entity.Client) *fakeClientRepo {
	r := &fakeClientRepo{clients: make(map[string]*entity.Client)}
	for _, c := range clients {
		copia := *c
		r.clients[c.ID] = &copia
	}
	return r
}

func (r *fakeClientRepo) Create(c *entity.Client) error      { r.clients[c.ID] = c; return nil }
func (r *fakeClientRepo) Update(c *entity.Client) error      { r.clients[c.ID] = c; return nil }
func (r *fakeClientRepo) Delete(id string) error             { delete(r.clients, id); return nil }
func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	copia := *c
	return &copia, nil
}
func (r *fakeClientRepo) Search(query string, limit, offset int) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.clients {
		copia := *c
		out = append(out, &copia)
	}
	return out, nil
}

var _ repository.SaleRepository = (*fakeSaleRepo)(nil)

type fakeSaleRepo struct {
	sales map[string]*entity.Sale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[string]*entity.Sale)}
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error { r.sales[s.ID] = s; return nil }
func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}
func (r *fakeSaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		out = append(out, s)
	}
	return out, nil
}
func (r *fakeSaleRepo) Delete(id string) error { delete(r.sales, id); return nil }
func (r *fakeSaleRepo) MarkInstallmentPaid(saleID string, sequence int, paid bool) error {
	s, ok := r.sales[saleID]
	if !ok {
		return domain.ErrNotFound
	}
	for i := range s.Installments {
		if s.Installments[i].Sequence == sequence {
			s.Installments[i].Paid = paid
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeTxRunner imita la semántica todo-o-nada: fn trabaja sobre una copia del
// stock y solo en éxito se vuelca el resultado al repositorio real.
type fakeTxRunner struct {
	stock *fakeStockRepo
	sales *fakeSaleRepo
}

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(repository.StockItemRepository, repository.SaleRepository) error) error {
	staging := tx.stock.clone()
	stagingSales := newFakeSaleRepo()
	if err := fn(staging, stagingSales); err != nil {
		return err
	}
	tx.stock.items = staging.items
	for id, s := range stagingSales.sales {
		tx.sales.sales[id] = s
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

func stockItem(id, name, size string, qty int64, price string) *entity.StockItem {
	it := &entity.StockItem{
		ID:        id,
		Name:      name,
		Kind:      entity.StockKindOwnProduction,
		Size:      size,
		Quantity:  qty,
		UnitPrice: decimal.RequireFromString(price),
	}
	it.RecomputeTotal()
	return it
}

func testSetup(items ...*entity.StockItem) (*Builder, *fakeStockRepo, *fakeSaleRepo, *fakeClientRepo) {
	stockRepo := newFakeStockRepo(items...)
	saleRepo := newFakeSaleRepo()
	clientRepo := newFakeClientRepo(&entity.Client{ID: "cli-1", Name: "Maria", Phone: "11999990000"})
	tx := &fakeTxRunner{stock: stockRepo, sales: saleRepo}
	return NewBuilder(stockRepo, clientRepo, tx), stockRepo, saleRepo, clientRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// AddLine / RemoveLine
// ──────────────────────────────────────────────────────────────────────────────

func TestBuilder_AddLine_ArticuloInexistente(t *testing.T) {
	b, _, _, _ := testSetup()
	err := b.AddLine("no-existe", 1)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Empty(t, b.Lines())
}

func TestBuilder_AddLine_CantidadInvalida(t *testing.T) {
	b, _, _, _ := testSetup(stockItem("itm-1", "Blusa", "M", 5, "10.00"))
	assert.ErrorIs(t, b.AddLine("itm-1", 0), domain.ErrInvalidInput)
	assert.ErrorIs(t, b.AddLine("itm-1", -2), domain.ErrInvalidInput)
	assert.Empty(t, b.Lines())
}

func TestBuilder_AddLine_StockInsuficiente_NoModificaCarrito(t *testing.T) {
	b, _, _, _ := testSetup(stockItem("itm-1", "Blusa", "M", 2, "10.00"))
	require.NoError(t, b.AddLine("itm-1", 1))
	antes := b.Total()

	err := b.AddLine("itm-1", 3)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Len(t, b.Lines(), 1, "la línea rechazada no debe quedar en el carrito")
	assert.True(t, b.Total().Equal(antes))
}

func TestBuilder_AddLine_TomaSnapshotDePrecio(t *testing.T) {
	item := stockItem("itm-1", "Blusa", "M", 5, "10.00")
	b, stockRepo, _, _ := testSetup(item)
	require.NoError(t, b.AddLine("itm-1", 1))

	// Cambio de precio posterior: la línea conserva el precio original.
	item.UnitPrice = decimal.RequireFromString("99.00")
	require.NoError(t, stockRepo.Update(item))

	lines := b.Lines()
	require.Len(t, lines, 1)
	assert.True(t, lines[0].UnitPrice.Equal(decimal.RequireFromString("10.00")))
}

func TestBuilder_RemoveLine_RestauraElTotal(t *testing.T) {
	b, _, _, _ := testSetup(
		stockItem("itm-1", "Blusa", "M", 5, "10.00"),
		stockItem("itm-2", "Calça", "P", 5, "5.00"),
	)
	require.NoError(t, b.AddLine("itm-1", 2))
	antes := b.Total()

	require.NoError(t, b.AddLine("itm-2", 1))
	require.NoError(t, b.RemoveLine(1))

	assert.True(t, b.Total().Equal(antes), "quitar la línea agregada debe restaurar el total")
	assert.ErrorIs(t, b.RemoveLine(5), domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Commit
// ──────────────────────────────────────────────────────────────────────────────

func TestBuilder_Commit_CarritoVacio(t *testing.T) {
	b, _, _, _ := testSetup()
	_, err := b.Commit(context.Background(), "cli-1", entity.PaymentCash, 0, time.Time{})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestBuilder_Commit_ClienteRequerido(t *testing.T) {
	b, _, _, _ := testSetup(stockItem("itm-1", "Blusa", "M", 5, "10.00"))
	require.NoError(t, b.AddLine("itm-1", 1))

	_, err := b.Commit(context.Background(), "", entity.PaymentCash, 0, time.Time{})
	assert.ErrorIs(t, err, domain.ErrClientRequired)

	_, err = b.Commit(context.Background(), "cli-fantasma", entity.PaymentCash, 0, time.Time{})
	assert.ErrorIs(t, err, domain.ErrClientRequired)
}

func TestBuilder_Commit_MetodoDePagoInvalido(t *testing.T) {
	b, _, _, _ := testSetup(stockItem("itm-1", "Blusa", "M", 5, "10.00"))
	require.NoError(t, b.AddLine("itm-1", 1))

	_, err := b.Commit(context.Background(), "cli-1", "CHEQUE", 0, time.Time{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBuilder_Commit_EfectivoDescuentaYDescribe(t *testing.T) {
	b, stockRepo, saleRepo, _ := testSetup(
		stockItem("itm-1", "Blusa", "M", 5, "10.00"),
		stockItem("itm-2", "Calça", "P", 3, "5.00"),
	)
	require.NoError(t, b.AddLine("itm-1", 2))
	require.NoError(t, b.AddLine("itm-2", 1))

	sale, err := b.Commit(context.Background(), "cli-1", entity.PaymentCash, 0, time.Time{})
	require.NoError(t, err)

	assert.Equal(t, "Maria", sale.ClientName)
	assert.Equal(t, "2x Blusa (M), 1x Calça (P)", sale.ItemsDescription)
	assert.True(t, sale.TotalValue.Equal(decimal.RequireFromString("25.00")))
	assert.Empty(t, sale.Installments, "venta en efectivo no genera cuotas")
	assert.Empty(t, b.Lines(), "el carrito debe quedar vacío tras el commit")

	// Inventario descontado con TotalValue recalculado.
	blusa, _ := stockRepo.GetByID("itm-1")
	assert.EqualValues(t, 3, blusa.Quantity)
	assert.True(t, blusa.TotalValue.Equal(decimal.RequireFromString("30.00")))
	calca, _ := stockRepo.GetByID("itm-2")
	assert.EqualValues(t, 2, calca.Quantity)

	// Venta persistida.
	stored, _ := saleRepo.GetByID(sale.ID)
	require.NotNil(t, stored)
}

func TestBuilder_Commit_LineasRepetidas_RevierteTodo(t *testing.T) {
	// Dos líneas de 2 unidades sobre un stock de 3: cada una pasa la
	// validación individual pero la acumulación excede el stock. El commit
	// debe fallar y el inventario quedar intacto.
	b, stockRepo, saleRepo, _ := testSetup(stockItem("itm-1", "Blusa", "M", 3, "10.00"))
	require.NoError(t, b.AddLine("itm-1", 2))
	require.NoError(t, b.AddLine("itm-1", 2))

	_, err := b.Commit(context.Background(), "cli-1", entity.PaymentCash, 0, time.Time{})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	item, _ := stockRepo.GetByID("itm-1")
	assert.EqualValues(t, 3, item.Quantity, "la transacción fallida no debe tocar el stock")
	assert.Empty(t, saleRepo.sales, "no debe registrarse ninguna venta")
	assert.Len(t, b.Lines(), 2, "el carrito se conserva para corregir y reintentar")
}

func TestBuilder_Commit_CrediarioGeneraCuotasPendientes(t *testing.T) {
	b, _, _, _ := testSetup(stockItem("itm-1", "Vestido", "G", 10, "33.34"))
	require.NoError(t, b.AddLine("itm-1", 3)) // total 100.02

	firstDue := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	sale, err := b.Commit(context.Background(), "cli-1", entity.PaymentInstallments, 3, firstDue)
	require.NoError(t, err)

	require.Len(t, sale.Installments, 3)
	assert.Equal(t, 3, sale.InstallmentCount)
	for i, inst := range sale.Installments {
		assert.True(t, inst.Amount.Equal(decimal.RequireFromString("33.34")))
		assert.False(t, inst.Paid, "cuotas de crediario nacen pendientes")
		assert.Equal(t, i, inst.Sequence)
		assert.NotEmpty(t, inst.ID)
		assert.Equal(t, sale.ID, inst.SaleID)
	}
	assert.Equal(t, time.February, sale.Installments[1].DueDate.Month())
}

func TestBuilder_Commit_CreditoNaceLiquidado(t *testing.T) {
	b, _, _, _ := testSetup(stockItem("itm-1", "Vestido", "G", 10, "50.00"))
	require.NoError(t, b.AddLine("itm-1", 2)) // total 100.00

	firstDue := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	sale, err := b.Commit(context.Background(), "cli-1", entity.PaymentCredit, 2, firstDue)
	require.NoError(t, err)

	require.Len(t, sale.Installments, 2)
	for _, inst := range sale.Installments {
		assert.True(t, inst.Paid, "cuotas de crédito nacen pagadas")
		assert.True(t, inst.Amount.Equal(decimal.RequireFromString("50.00")))
	}
}

func TestBuilder_Commit_CreditoUnaCuotaSinCronograma(t *testing.T) {
	b, _, _, _ := testSetup(stockItem("itm-1", "Vestido", "G", 10, "50.00"))
	require.NoError(t, b.AddLine("itm-1", 1))

	sale, err := b.Commit(context.Background(), "cli-1", entity.PaymentCredit, 1, time.Now())
	require.NoError(t, err)
	assert.Empty(t, sale.Installments, "crédito en una cuota no genera cronograma")
}
