package interfaces

import (
	"context"
	"storefront/internal/domain/entities"
)

// IUserDirectoryRepository owns the "registered_users" and "auth_user" keys.
// LoadSession returns nil when nobody is remembered.

type IUserDirectoryRepository interface {
	LoadUsers(ctx context.Context) ([]entities.RegisteredUser, error)
	SaveUsers(ctx context.Context, users []entities.RegisteredUser) error
	LoadSession(ctx context.Context) (*entities.User, error)
	SaveSession(ctx context.Context, user entities.User) error
	ClearSession(ctx context.Context) error
}
