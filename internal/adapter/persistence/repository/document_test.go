package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/domain/entities"
	mock_interfaces "storefront/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestEncodeDocument_WritesVersionedEnvelope(t *testing.T) {
	raw, err := encodeDocument([]string{"a"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if raw != `{"version":1,"data":["a"]}` {
		t.Fatalf("unexpected envelope %s", raw)
	}
}

func TestLoadDocument_FailsClosed(t *testing.T) {
	ctx := context.Background()
	cases := map[string]string{
		"not json":          "{oops",
		"legacy bare array": `[{"product":{"id":"1"},"quantity":1}]`,
		"future version":    `{"version":2,"data":[]}`,
		"missing data":      `{"version":1}`,
		"null data":         `{"version":1,"data":null}`,
		"wrong shape":       `{"version":1,"data":{"id":"1"}}`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			store := NewMemoryKVStore("")
			_ = store.Set(ctx, KeyCartProducts, raw)

			lines, err := NewCartRepository(store).Load(ctx)
			if err != nil {
				t.Fatalf("corruption must not propagate, got %v", err)
			}
			if len(lines) != 0 {
				t.Fatalf("expected empty cart, got %+v", lines)
			}
		})
	}
}

func TestRepositories_PropagateBackendErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("disk on fire")
	store := mock_interfaces.NewMockIKeyValueStore(ctrl)
	store.EXPECT().Get(gomock.Any(), KeyCartProducts).Return("", false, boom)
	store.EXPECT().Get(gomock.Any(), KeyPurchasedGiftCards).Return("", false, boom)
	store.EXPECT().Set(gomock.Any(), KeyFavoriteProducts, `{"version":1,"data":[]}`).Return(boom)
	ctx := context.Background()

	if _, err := NewCartRepository(store).Load(ctx); !errors.Is(err, boom) {
		t.Fatalf("cart: expected backend error, got %v", err)
	}
	if _, err := NewGiftCardLedgerRepository(store).Load(ctx); !errors.Is(err, boom) {
		t.Fatalf("ledger: expected backend error, got %v", err)
	}
	if err := NewFavoritesRepository(store).Save(ctx, []string{}); !errors.Is(err, boom) {
		t.Fatalf("favorites: expected backend error, got %v", err)
	}
}

func TestCartRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepository(NewMemoryKVStore(""))

	lines := []entities.CartLine{{Product: entities.Product{ID: "1", Title: "Mug", Price: 12.5}, Quantity: 2}}
	if err := repo.Save(ctx, lines); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].Quantity != 2 || got[0].Product.Price != 12.5 {
		t.Fatalf("unexpected lines %+v", got)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got, _ := repo.Load(ctx); len(got) != 0 {
		t.Fatalf("expected empty after clear, got %+v", got)
	}
}

func TestGiftCardLedgerRepository_RoundTripKeepsDates(t *testing.T) {
	ctx := context.Background()
	repo := NewGiftCardLedgerRepository(NewMemoryKVStore(""))

	bought := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	redeemed := bought.Add(time.Hour)
	cards := []entities.PurchasedGiftCard{{
		ID:           "pgc-1",
		Amount:       50,
		Code:         "ABCD-EFGH-JKLM-NPQR",
		PurchaseDate: bought,
		ExpiryDate:   bought.AddDate(1, 0, 0),
		IsRedeemed:   true,
		RedeemedDate: &redeemed,
	}}
	if err := repo.Save(ctx, cards); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || !got[0].ExpiryDate.Equal(bought.AddDate(1, 0, 0)) {
		t.Fatalf("unexpected ledger %+v", got)
	}
	if got[0].RedeemedDate == nil || !got[0].RedeemedDate.Equal(redeemed) {
		t.Fatalf("expected redeemed date kept, got %v", got[0].RedeemedDate)
	}
}

func TestAppliedGiftCardRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAppliedGiftCardRepository(NewMemoryKVStore(""))

	if card, err := repo.Load(ctx); err != nil || card != nil {
		t.Fatalf("expected no card, got %+v err=%v", card, err)
	}
	if err := repo.Save(ctx, entities.AppliedGiftCard{Code: "ABCD", Amount: 25}); err != nil {
		t.Fatalf("save: %v", err)
	}
	card, err := repo.Load(ctx)
	if err != nil || card == nil || card.Amount != 25 {
		t.Fatalf("unexpected card %+v err=%v", card, err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if card, _ := repo.Load(ctx); card != nil {
		t.Fatalf("expected cleared card")
	}
}
