package sales

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/claricinhas/atelier-api/internal/application/dto"
	"github.com/claricinhas/atelier-api/internal/application/ports"
	"github.com/claricinhas/atelier-api/internal/domain"
	"github.com/claricinhas/atelier-api/internal/domain/entity"
	"github.com/claricinhas/atelier-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// SaleUseCase consultas y mutaciones sobre ventas ya registradas.
type SaleUseCase struct {
	saleRepo   repository.SaleRepository
	clientRepo repository.ClientRepository
	snapshots  ports.SnapshotStore
}

// NewSaleUseCase construye el caso de uso. snapshots puede ser nil.
func NewSaleUseCase(saleRepo repository.SaleRepository, clientRepo repository.ClientRepository, snapshots ports.SnapshotStore) *SaleUseCase {
	return &SaleUseCase{saleRepo: saleRepo, clientRepo: clientRepo, snapshots: snapshots}
}

// List lista ventas, opcionalmente solo las de clientes VIP. Si la DB no
// responde sirve el último snapshot local (sin filtro VIP degradado).
func (uc *SaleUseCase) List(vipOnly bool, limit, offset int) ([]dto.SaleResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	sales, err := uc.saleRepo.List(limit, offset)
	if err != nil {
		// El snapshot se guarda sin filtro: un listado VIP degradado
		// serviría datos mal filtrados, mejor propagar el error.
		if !vipOnly {
			if cached, ok := uc.listFromSnapshot(); ok {
				return cached, nil
			}
		}
		return nil, err
	}

	var vipByClient map[string]bool
	if vipOnly {
		vipByClient = uc.vipIndex()
	}

	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		if vipOnly && !vipByClient[s.ClientID] {
			continue
		}
		out = append(out, *ToSaleResponse(s))
	}

	if uc.snapshots != nil && !vipOnly && offset == 0 {
		if err := uc.snapshots.Save(ports.SnapshotSales, out); err != nil {
			log.Warn().Err(err).Msg("sales: no se pudo guardar snapshot de ventas")
		}
	}
	return out, nil
}

// vipIndex carga los clientes y arma el índice id -> VIP. Si falla se filtra
// contra un índice vacío (ninguna venta pasa el filtro VIP).
func (uc *SaleUseCase) vipIndex() map[string]bool {
	idx := make(map[string]bool)
	clients, err := uc.clientRepo.Search("", 1000, 0)
	if err != nil {
		log.Warn().Err(err).Msg("sales: no se pudo cargar clientes para el filtro VIP")
		return idx
	}
	for _, c := range clients {
		idx[c.ID] = c.VIP
	}
	return idx
}

func (uc *SaleUseCase) listFromSnapshot() ([]dto.SaleResponse, bool) {
	if uc.snapshots == nil {
		return nil, false
	}
	var cached []dto.SaleResponse
	if err := uc.snapshots.Load(ports.SnapshotSales, &cached); err != nil {
		return nil, false
	}
	log.Warn().Msg("sales: DB inaccesible, sirviendo ventas desde snapshot local")
	return cached, true
}

// GetByID obtiene una venta con sus cuotas. Devuelve nil si no existe.
func (uc *SaleUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	return ToSaleResponse(sale), nil
}

// Delete borra una venta. No repone stock: el historial de inventario ya
// refleja la salida y una devolución se registra como entrada de producción.
func (uc *SaleUseCase) Delete(id string) error {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	return uc.saleRepo.Delete(id)
}

// MarkInstallment marca una cuota como pagada o pendiente.
func (uc *SaleUseCase) MarkInstallment(saleID string, sequence int, paid bool) error {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	if sequence < 0 || sequence >= len(sale.Installments) {
		return domain.ErrInvalidInput
	}
	return uc.saleRepo.MarkInstallmentPaid(saleID, sequence, paid)
}

// ToSaleResponse convierte la entidad a DTO de salida.
func ToSaleResponse(s *entity.Sale) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:               s.ID,
		ClientID:         s.ClientID,
		ClientName:       s.ClientName,
		ItemsDescription: s.ItemsDescription,
		TotalValue:       s.TotalValue,
		PaymentMethod:    s.PaymentMethod,
		InstallmentCount: s.InstallmentCount,
		SaleDate:         s.SaleDate.Format(dateLayout),
		Installments:     make([]dto.InstallmentResponse, 0, len(s.Installments)),
		CreatedAt:        s.CreatedAt,
	}
	for _, inst := range s.Installments {
		resp.Installments = append(resp.Installments, dto.InstallmentResponse{
			Sequence: inst.Sequence,
			Amount:   inst.Amount,
			DueDate:  inst.DueDate.Format(dateLayout),
			Paid:     inst.Paid,
		})
	}
	return resp
}

// ParseDate interpreta una fecha yyyy-mm-dd de un request.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, domain.ErrInvalidInput
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return t, nil
}
