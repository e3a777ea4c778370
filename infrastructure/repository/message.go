package repository

import (
	"context"

	"github.com/vfg2006/agency-os-api/infrastructure/store"
	"github.com/vfg2006/agency-os-api/internal/domain"
)

//go:generate mockgen -source=message.go -destination=mocks/message.go -package=mocks

type MessageRepository interface {
	ListMessages(ctx context.Context) ([]domain.ContactMessage, error)
	SaveMessages(ctx context.Context, messages []domain.ContactMessage) error
}

type messageRepository struct {
	store store.CollectionStore
}

func NewMessageRepository(s store.CollectionStore) MessageRepository {
	return &messageRepository{store: s}
}

// ListMessages retorna as mensagens na ordem gravada (mais recentes primeiro)
func (r *messageRepository) ListMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	messages, _, err := readList[domain.ContactMessage](ctx, r.store, store.CollectionMessages)
	if err != nil {
		return nil, err
	}

	if messages == nil {
		return []domain.ContactMessage{}, nil
	}

	return messages, nil
}

func (r *messageRepository) SaveMessages(ctx context.Context, messages []domain.ContactMessage) error {
	if messages == nil {
		messages = []domain.ContactMessage{}
	}
	return writeJSON(ctx, r.store, store.CollectionMessages, messages)
}
