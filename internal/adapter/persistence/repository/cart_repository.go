package repository

import (
	"context"

	"storefront/internal/domain/entities"
	"storefront/internal/usecase/interfaces"
)

type CartRepository struct {
	store interfaces.IKeyValueStore
}

var _ interfaces.ICartRepository = (*CartRepository)(nil)

func NewCartRepository(store interfaces.IKeyValueStore) *CartRepository {
	return &CartRepository{store: store}
}

func (r *CartRepository) Load(ctx context.Context) ([]entities.CartLine, error) {
	var lines []entities.CartLine
	found, err := loadDocument(ctx, r.store, KeyCartProducts, &lines)
	if err != nil || !found {
		return []entities.CartLine{}, err
	}
	return lines, nil
}

func (r *CartRepository) Save(ctx context.Context, lines []entities.CartLine) error {
	if lines == nil {
		lines = []entities.CartLine{}
	}
	return saveDocument(ctx, r.store, KeyCartProducts, lines)
}

func (r *CartRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, KeyCartProducts)
}
