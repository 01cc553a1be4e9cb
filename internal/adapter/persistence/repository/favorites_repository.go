package repository

import (
	"context"

	"storefront/internal/usecase/interfaces"
)

type FavoritesRepository struct {
	store interfaces.IKeyValueStore
}

var _ interfaces.IFavoritesRepository = (*FavoritesRepository)(nil)

func NewFavoritesRepository(store interfaces.IKeyValueStore) *FavoritesRepository {
	return &FavoritesRepository{store: store}
}

func (r *FavoritesRepository) Load(ctx context.Context) ([]string, error) {
	var ids []string
	found, err := loadDocument(ctx, r.store, KeyFavoriteProducts, &ids)
	if err != nil || !found {
		return []string{}, err
	}
	return ids, nil
}

func (r *FavoritesRepository) Save(ctx context.Context, productIDs []string) error {
	if productIDs == nil {
		productIDs = []string{}
	}
	return saveDocument(ctx, r.store, KeyFavoriteProducts, productIDs)
}
