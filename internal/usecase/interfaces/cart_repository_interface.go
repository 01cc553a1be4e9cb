package interfaces

import (
	"context"
	"storefront/internal/domain/entities"
)

// ICartRepository owns the "cart-products" key.

type ICartRepository interface {
	Load(ctx context.Context) ([]entities.CartLine, error)
	Save(ctx context.Context, lines []entities.CartLine) error
	Clear(ctx context.Context) error
}
