package repository

import (
	"context"

	"storefront/internal/domain/entities"
	"storefront/internal/usecase/interfaces"
)

// GiftCardLedgerRepository stores every purchased gift card as one document.
type GiftCardLedgerRepository struct {
	store interfaces.IKeyValueStore
}

var _ interfaces.IGiftCardLedgerRepository = (*GiftCardLedgerRepository)(nil)

func NewGiftCardLedgerRepository(store interfaces.IKeyValueStore) *GiftCardLedgerRepository {
	return &GiftCardLedgerRepository{store: store}
}

func (r *GiftCardLedgerRepository) Load(ctx context.Context) ([]entities.PurchasedGiftCard, error) {
	var cards []entities.PurchasedGiftCard
	found, err := loadDocument(ctx, r.store, KeyPurchasedGiftCards, &cards)
	if err != nil || !found {
		return []entities.PurchasedGiftCard{}, err
	}
	return cards, nil
}

func (r *GiftCardLedgerRepository) Save(ctx context.Context, cards []entities.PurchasedGiftCard) error {
	if cards == nil {
		cards = []entities.PurchasedGiftCard{}
	}
	return saveDocument(ctx, r.store, KeyPurchasedGiftCards, cards)
}

type AppliedGiftCardRepository struct {
	store interfaces.IKeyValueStore
}

var _ interfaces.IAppliedGiftCardRepository = (*AppliedGiftCardRepository)(nil)

func NewAppliedGiftCardRepository(store interfaces.IKeyValueStore) *AppliedGiftCardRepository {
	return &AppliedGiftCardRepository{store: store}
}

func (r *AppliedGiftCardRepository) Load(ctx context.Context) (*entities.AppliedGiftCard, error) {
	var card entities.AppliedGiftCard
	found, err := loadDocument(ctx, r.store, KeyAppliedGiftCard, &card)
	if err != nil || !found {
		return nil, err
	}
	if card.Code == "" {
		return nil, nil
	}
	return &card, nil
}

func (r *AppliedGiftCardRepository) Save(ctx context.Context, card entities.AppliedGiftCard) error {
	return saveDocument(ctx, r.store, KeyAppliedGiftCard, card)
}

func (r *AppliedGiftCardRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, KeyAppliedGiftCard)
}
