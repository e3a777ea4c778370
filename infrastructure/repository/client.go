package repository

import (
	"context"

	"github.com/vfg2006/agency-os-api/infrastructure/store"
	"github.com/vfg2006/agency-os-api/internal/domain"
)

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks

type ClientRepository interface {
	ListClients(ctx context.Context) ([]domain.ClientLedger, error)
	SaveClients(ctx context.Context, clients []domain.ClientLedger) error
}

type clientRepository struct {
	store store.CollectionStore
}

func NewClientRepository(s store.CollectionStore) ClientRepository {
	return &clientRepository{store: s}
}

// ListClients retorna lista vazia quando a coleção ainda não existe
func (r *clientRepository) ListClients(ctx context.Context) ([]domain.ClientLedger, error) {
	clients, _, err := readList[domain.ClientLedger](ctx, r.store, store.CollectionClients)
	if err != nil {
		return nil, err
	}

	if clients == nil {
		return []domain.ClientLedger{}, nil
	}

	// O banco remoto descarta listas e mapas vazios
	for i := range clients {
		if clients[i].Assets == nil {
			clients[i].Assets = []domain.Asset{}
		}
		if clients[i].MonthlyHistory == nil {
			clients[i].MonthlyHistory = map[string]domain.MonthlyData{}
		}
	}

	return clients, nil
}

func (r *clientRepository) SaveClients(ctx context.Context, clients []domain.ClientLedger) error {
	if clients == nil {
		clients = []domain.ClientLedger{}
	}
	return writeJSON(ctx, r.store, store.CollectionClients, clients)
}
