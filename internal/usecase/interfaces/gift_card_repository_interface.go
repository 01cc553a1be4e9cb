package interfaces

import (
	"context"
	"storefront/internal/domain/entities"
)

// IGiftCardLedgerRepository owns the "purchased-gift-cards" key.
// The ledger is always written whole.

type IGiftCardLedgerRepository interface {
	Load(ctx context.Context) ([]entities.PurchasedGiftCard, error)
	Save(ctx context.Context, cards []entities.PurchasedGiftCard) error
}

// IAppliedGiftCardRepository owns the "applied-gift-card" key.
// Load returns nil when no card is applied.

type IAppliedGiftCardRepository interface {
	Load(ctx context.Context) (*entities.AppliedGiftCard, error)
	Save(ctx context.Context, card entities.AppliedGiftCard) error
	Clear(ctx context.Context) error
}
