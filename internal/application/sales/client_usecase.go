package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/claricinhas/atelier-api/internal/application/dto"
	"github.com/claricinhas/atelier-api/internal/application/ports"
	"github.com/claricinhas/atelier-api/internal/domain"
	"github.com/claricinhas/atelier-api/internal/domain/entity"
	"github.com/claricinhas/atelier-api/internal/domain/repository"
)

// ClientUseCase casos de uso de clientes. Borrar un cliente no toca sus
// ventas: la venta guarda snapshot del nombre.
type ClientUseCase struct {
	repo      repository.ClientRepository
	snapshots ports.SnapshotStore
}

// NewClientUseCase construye el caso de uso. snapshots puede ser nil.
func NewClientUseCase(repo repository.ClientRepository, snapshots ports.SnapshotStore) *ClientUseCase {
	return &ClientUseCase{repo: repo, snapshots: snapshots}
}

// Create registra un cliente nuevo.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" || in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     in.Phone,
		VIP:       in.VIP,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Search busca por substring de nombre o teléfono; query vacío lista todo.
// Si la DB no responde sirve el último snapshot local.
func (uc *ClientUseCase) Search(query string, limit, offset int) ([]dto.ClientResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	clients, err := uc.repo.Search(query, limit, offset)
	if err != nil {
		if cached, ok := uc.listFromSnapshot(query); ok {
			return cached, nil
		}
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, *toClientResponse(c))
	}
	if uc.snapshots != nil && query == "" && offset == 0 {
		if err := uc.snapshots.Save(ports.SnapshotClients, out); err != nil {
			log.Warn().Err(err).Msg("clients: no se pudo guardar snapshot de clientes")
		}
	}
	return out, nil
}

func (uc *ClientUseCase) listFromSnapshot(query string) ([]dto.ClientResponse, bool) {
	if uc.snapshots == nil || query != "" {
		return nil, false
	}
	var cached []dto.ClientResponse
	if err := uc.snapshots.Load(ports.SnapshotClients, &cached); err != nil {
		return nil, false
	}
	log.Warn().Msg("clients: DB inaccesible, sirviendo clientes desde snapshot local")
	return cached, true
}

// Update actualiza los campos presentes del cliente.
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		client.Name = *in.Name
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if in.VIP != nil {
		client.VIP = *in.VIP
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete borra el cliente. Las ventas asociadas quedan intactas con su
// snapshot de nombre.
func (uc *ClientUseCase) Delete(id string) error {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		VIP:       c.VIP,
		CreatedAt: c.CreatedAt,
	}
}
