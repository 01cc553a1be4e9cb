package interfaces

import "context"

// IFavoritesRepository owns the "favorite-products" key.

type IFavoritesRepository interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, productIDs []string) error
}
