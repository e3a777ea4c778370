package repository

import (
	"context"

	"github.com/vfg2006/agency-os-api/infrastructure/store"
	"github.com/vfg2006/agency-os-api/internal/domain"
)

//go:generate mockgen -source=user.go -destination=mocks/user.go -package=mocks

type UserRepository interface {
	ListUsers(ctx context.Context) ([]domain.UserAccount, error)
	SaveUsers(ctx context.Context, users []domain.UserAccount) error
}

type userRepository struct {
	store store.CollectionStore
}

func NewUserRepository(s store.CollectionStore) UserRepository {
	return &userRepository{store: s}
}

// ListUsers retorna o administrador padrão enquanto a coleção não existir
func (r *userRepository) ListUsers(ctx context.Context) ([]domain.UserAccount, error) {
	users, found, err := readList[domain.UserAccount](ctx, r.store, store.CollectionUsers)
	if err != nil {
		return nil, err
	}

	if !found {
		return domain.DefaultUsers(), nil
	}

	return users, nil
}

func (r *userRepository) SaveUsers(ctx context.Context, users []domain.UserAccount) error {
	if users == nil {
		users = []domain.UserAccount{}
	}
	return writeJSON(ctx, r.store, store.CollectionUsers, users)
}
