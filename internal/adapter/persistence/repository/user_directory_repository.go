package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entities"
	"storefront/internal/logging"
	"storefront/internal/usecase/interfaces"
)

// UserDirectoryRepository owns the registered users list and the remembered
// session.
type UserDirectoryRepository struct {
	store interfaces.IKeyValueStore
}

var _ interfaces.IUserDirectoryRepository = (*UserDirectoryRepository)(nil)

func NewUserDirectoryRepository(store interfaces.IKeyValueStore) *UserDirectoryRepository {
	return &UserDirectoryRepository{store: store}
}

func (r *UserDirectoryRepository) LoadUsers(ctx context.Context) ([]entities.RegisteredUser, error) {
	var users []entities.RegisteredUser
	found, err := loadDocument(ctx, r.store, KeyRegisteredUsers, &users)
	if err != nil || !found {
		return []entities.RegisteredUser{}, err
	}
	return users, nil
}

func (r *UserDirectoryRepository) SaveUsers(ctx context.Context, users []entities.RegisteredUser) error {
	if users == nil {
		users = []entities.RegisteredUser{}
	}
	return saveDocument(ctx, r.store, KeyRegisteredUsers, users)
}

// LoadSession returns the remembered user. An unreadable session is removed
// from the store so the next start begins signed out.
func (r *UserDirectoryRepository) LoadSession(ctx context.Context) (*entities.User, error) {
	raw, found, err := r.store.Get(ctx, KeyAuthUser)
	if err != nil || !found {
		return nil, err
	}

	var user entities.User
	if err := decodeDocument(raw, &user); err != nil || user.ID == "" {
		if err == nil {
			err = errors.New("session without user id")
		}
		logging.FromCtx(ctx).Warn("[auth][repository] clearing unreadable session", "error", err.Error())
		return nil, r.store.Delete(ctx, KeyAuthUser)
	}
	return &user, nil
}

func (r *UserDirectoryRepository) SaveSession(ctx context.Context, user entities.User) error {
	return saveDocument(ctx, r.store, KeyAuthUser, user)
}

func (r *UserDirectoryRepository) ClearSession(ctx context.Context) error {
	return r.store.Delete(ctx, KeyAuthUser)
}
