package handlers

import (
	"errors"
	"net/http"
	"testing"

	"storefront/internal/adapter/http/handlers/mocks"
	"storefront/internal/domain/entities"
	"storefront/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestGiftCardHandler_ListGiftCards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIGiftCardUseCase(ctrl)
	h := NewGiftCardHandler(uc)
	r := newTestRouter(t)
	r.GET("/v1/gift-cards", h.ListGiftCards)

	t.Run("all", func(t *testing.T) {
		uc.EXPECT().GetGiftCards().Return([]entities.GiftCardTemplate{{ID: "a"}, {ID: "b"}})
		w := doJSON(r, http.MethodGet, "/v1/gift-cards?category=all", "")
		if cards := decodeBody(t, w)["giftCards"].([]any); len(cards) != 2 {
			t.Fatalf("expected 2 cards, got %d", len(cards))
		}
	})

	t.Run("by category", func(t *testing.T) {
		uc.EXPECT().GetGiftCardsByCategory(entities.GiftCardCategoryGaming).Return([]entities.GiftCardTemplate{{ID: "g"}})
		w := doJSON(r, http.MethodGet, "/v1/gift-cards?category=gaming", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/v1/gift-cards?category=cars", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestGiftCardHandler_GetGiftCard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIGiftCardUseCase(ctrl)
	h := NewGiftCardHandler(uc)
	r := newTestRouter(t)
	r.GET("/v1/gift-cards/:id", h.GetGiftCard)

	uc.EXPECT().GetGiftCardByID("gc-general-1").Return(entities.GiftCardTemplate{ID: "gc-general-1"}, nil)
	uc.EXPECT().GetGiftCardByID("nope").Return(entities.GiftCardTemplate{}, usecase.ErrGiftCardNotFound)

	if w := doJSON(r, http.MethodGet, "/v1/gift-cards/gc-general-1", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/v1/gift-cards/nope", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestGiftCardHandler_PurchaseGiftCard(t *testing.T) {
	const payload = `{"giftCardId":"gc-general-1","amount":50,"deliveryMethod":"email","recipientEmail":"friend@example.com","recipientName":"Friend","senderName":"Me"}`

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGiftCardUseCase(ctrl)
		h := NewGiftCardHandler(uc)
		r := newTestRouter(t)
		r.POST("/v1/gift-cards/purchases", h.PurchaseGiftCard)

		uc.EXPECT().PurchaseGiftCard(gomock.Any(), entities.GiftCardPurchaseForm{
			GiftCardID:     "gc-general-1",
			Amount:         50,
			DeliveryMethod: entities.DeliveryMethodEmail,
			RecipientEmail: "friend@example.com",
			RecipientName:  "Friend",
			SenderName:     "Me",
		}).Return(entities.PurchasedGiftCard{Code: "ABCD-EFGH-JKMN-PQRS", Amount: 50}, nil)

		w := doJSON(r, http.MethodPost, "/v1/gift-cards/purchases", payload)
		if w.Code != http.StatusCreated || decodeBody(t, w)["code"] != "ABCD-EFGH-JKMN-PQRS" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("email delivery without recipient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewGiftCardHandler(mocks.NewMockIGiftCardUseCase(ctrl))
		r := newTestRouter(t)
		r.POST("/v1/gift-cards/purchases", h.PurchaseGiftCard)

		w := doJSON(r, http.MethodPost, "/v1/gift-cards/purchases", `{"giftCardId":"gc-general-1","amount":50,"deliveryMethod":"email","senderName":"Me"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("amount not offered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGiftCardUseCase(ctrl)
		h := NewGiftCardHandler(uc)
		r := newTestRouter(t)
		r.POST("/v1/gift-cards/purchases", h.PurchaseGiftCard)

		uc.EXPECT().PurchaseGiftCard(gomock.Any(), gomock.Any()).Return(entities.PurchasedGiftCard{}, usecase.ErrInvalidGiftCardAmount)

		if w := doJSON(r, http.MethodPost, "/v1/gift-cards/purchases", payload); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestGiftCardHandler_Ledger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIGiftCardUseCase(ctrl)
	h := NewGiftCardHandler(uc)
	r := newTestRouter(t)
	r.GET("/v1/gift-cards/purchases", h.ListPurchased)
	r.POST("/v1/gift-cards/redeem", h.RedeemGiftCard)

	t.Run("list purchased", func(t *testing.T) {
		uc.EXPECT().GetMyGiftCards(gomock.Any()).Return([]entities.PurchasedGiftCard{{Code: "A"}}, nil)
		w := doJSON(r, http.MethodGet, "/v1/gift-cards/purchases", "")
		if cards := decodeBody(t, w)["giftCards"].([]any); len(cards) != 1 {
			t.Fatalf("expected 1 card, got %d", len(cards))
		}
	})

	t.Run("list error", func(t *testing.T) {
		uc.EXPECT().GetMyGiftCards(gomock.Any()).Return(nil, errors.New("db"))
		if w := doJSON(r, http.MethodGet, "/v1/gift-cards/purchases", ""); w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("redeem normalizes the code", func(t *testing.T) {
		uc.EXPECT().RedeemGiftCard(gomock.Any(), "ABCD-EFGH").Return(entities.RedeemResult{Success: true, Amount: 25}, nil)
		w := doJSON(r, http.MethodPost, "/v1/gift-cards/redeem", `{"code":" abcd-efgh "}`)
		if w.Code != http.StatusOK || decodeBody(t, w)["amount"] != 25.0 {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("redeem expired", func(t *testing.T) {
		uc.EXPECT().RedeemGiftCard(gomock.Any(), gomock.Any()).Return(entities.RedeemResult{}, usecase.ErrGiftCardExpired)
		w := doJSON(r, http.MethodPost, "/v1/gift-cards/redeem", `{"code":"x"}`)
		if w.Code != http.StatusGone || decodeBody(t, w)["message"] != usecase.MsgGiftCardExpired {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("redeem invalid", func(t *testing.T) {
		uc.EXPECT().RedeemGiftCard(gomock.Any(), gomock.Any()).Return(entities.RedeemResult{}, usecase.ErrGiftCardInvalidOrRedeemed)
		if w := doJSON(r, http.MethodPost, "/v1/gift-cards/redeem", `{"code":"x"}`); w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}
