package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"storefront/internal/adapter/http/handlers/mocks"
	"storefront/internal/domain/entities"
	"storefront/internal/usecase"

	"go.uber.org/mock/gomock"
)

const validShippingJSON = `{
	"fullName":"Ana Lima","email":"ana@example.com","phone":"+1 (555) 123-4567",
	"address":"1 Main Street","city":"Springfield","state":"IL","zipCode":"62701","country":"United States"
}`

func TestCheckoutHandler_SetShipping(t *testing.T) {
	t.Run("validation failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)
		r := newTestRouter(t)
		r.PUT("/v1/checkout/shipping", h.SetShipping)

		w := doJSON(r, http.MethodPut, "/v1/checkout/shipping", `{"fullName":"Ana Lima","email":"ana@example.com","phone":"call me","address":"1 Main Street","city":"X","state":"IL","zipCode":"123","country":"US"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)
		r := newTestRouter(t)
		r.PUT("/v1/checkout/shipping", h.SetShipping)

		uc.EXPECT().SetShippingInfo(gomock.Any()).Do(func(info entities.ShippingInfo) {
			if info.ZipCode != "62701" || info.FullName != "Ana Lima" {
				t.Errorf("unexpected shipping info %+v", info)
			}
		})
		uc.EXPECT().State().Return(entities.CheckoutState{Step: entities.CheckoutStepPayment})

		w := doJSON(r, http.MethodPut, "/v1/checkout/shipping", validShippingJSON)
		if w.Code != http.StatusOK || decodeBody(t, w)["step"] != "payment" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestCheckoutHandler_ApplyGiftCard(t *testing.T) {
	t.Run("code is normalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)
		r := newTestRouter(t)
		r.POST("/v1/checkout/gift-card", h.ApplyGiftCard)

		uc.EXPECT().ApplyGiftCard(gomock.Any(), "ABCD-EFGH-JKMN-PQRS").Return(entities.RedeemResult{Success: true, Amount: 50}, nil)
		uc.EXPECT().State().Return(entities.CheckoutState{GiftCardDiscount: 50, Total: 79.6})

		w := doJSON(r, http.MethodPost, "/v1/checkout/gift-card", `{"code":"  abcd-efgh-jkmn-pqrs "}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["amount"] != 50.0 || body["state"].(map[string]any)["total"] != 79.6 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"already applied", usecase.ErrGiftCardAlreadyApplied, http.StatusConflict},
		{"invalid or redeemed", usecase.ErrGiftCardInvalidOrRedeemed, http.StatusUnprocessableEntity},
		{"expired", usecase.ErrGiftCardExpired, http.StatusGone},
		{"store error", errors.New("db"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockICheckoutUseCase(ctrl)
			h := NewCheckoutHandler(uc)
			r := newTestRouter(t)
			r.POST("/v1/checkout/gift-card", h.ApplyGiftCard)

			uc.EXPECT().ApplyGiftCard(gomock.Any(), gomock.Any()).Return(entities.RedeemResult{}, tc.err)

			w := doJSON(r, http.MethodPost, "/v1/checkout/gift-card", `{"code":"x"}`)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}

	t.Run("missing code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewCheckoutHandler(mocks.NewMockICheckoutUseCase(ctrl))
		r := newTestRouter(t)
		r.POST("/v1/checkout/gift-card", h.ApplyGiftCard)

		if w := doJSON(r, http.MethodPost, "/v1/checkout/gift-card", `{}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestCheckoutHandler_ProcessPayment(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)
		r := newTestRouter(t)
		r.POST("/v1/checkout/pay", h.ProcessPayment)

		uc.EXPECT().ProcessPayment(gomock.Any()).Return(entities.PaymentResult{Success: true, RedirectTo: usecase.RoutePaymentSuccess}, nil)
		uc.EXPECT().State().Return(entities.CheckoutState{Step: entities.CheckoutStepSuccess})

		w := doJSON(r, http.MethodPost, "/v1/checkout/pay", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["redirectTo"] != "/PaymentSuccess" || body["success"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"missing shipping", usecase.ErrShippingInfoMissing, http.StatusUnprocessableEntity, usecase.MsgShippingInfoMissing},
		{"empty cart", usecase.ErrEmptyCart, http.StatusUnprocessableEntity, usecase.MsgEmptyCart},
		{"in progress", usecase.ErrPaymentInProgress, http.StatusConflict, "Payment already in progress"},
		{"failed", fmt.Errorf("%w: rejected", usecase.ErrPaymentFailed), http.StatusPaymentRequired, usecase.MsgPaymentFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockICheckoutUseCase(ctrl)
			h := NewCheckoutHandler(uc)
			r := newTestRouter(t)
			r.POST("/v1/checkout/pay", h.ProcessPayment)

			uc.EXPECT().ProcessPayment(gomock.Any()).Return(entities.PaymentResult{}, tc.err)

			w := doJSON(r, http.MethodPost, "/v1/checkout/pay", "")
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if msg := decodeBody(t, w)["message"]; msg != tc.message {
				t.Fatalf("expected message %q, got %v", tc.message, msg)
			}
		})
	}
}

func TestCheckoutHandler_StateEndpoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICheckoutUseCase(ctrl)
	h := NewCheckoutHandler(uc)
	r := newTestRouter(t)
	r.GET("/v1/checkout", h.GetState)
	r.POST("/v1/checkout/enter", h.Enter)
	r.POST("/v1/checkout/reload", h.Reload)
	r.PUT("/v1/checkout/payment-info", h.SetPaymentInfo)
	r.DELETE("/v1/checkout/gift-card", h.RemoveGiftCard)
	r.DELETE("/v1/checkout", h.Clear)

	t.Run("get masks the card", func(t *testing.T) {
		uc.EXPECT().State().Return(entities.CheckoutState{PaymentInfo: &entities.PaymentInfo{CardNumber: "4111111111111111", CVV: "123"}})
		w := doJSON(r, http.MethodGet, "/v1/checkout", "")
		info := decodeBody(t, w)["paymentInfo"].(map[string]any)
		if info["cardNumber"] != "**** 1111" || info["cvv"] != nil {
			t.Fatalf("unexpected payment info %v", info)
		}
	})

	t.Run("enter with empty cart", func(t *testing.T) {
		uc.EXPECT().EnterCheckout(gomock.Any()).Return(usecase.RouteCart, nil)
		uc.EXPECT().State().Return(entities.CheckoutState{})
		w := doJSON(r, http.MethodPost, "/v1/checkout/enter", "")
		if w.Code != http.StatusOK || decodeBody(t, w)["redirectTo"] != "/cart" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("reload", func(t *testing.T) {
		uc.EXPECT().LoadCartProducts(gomock.Any()).Return(entities.CheckoutState{Total: 129.6}, nil)
		w := doJSON(r, http.MethodPost, "/v1/checkout/reload", "")
		if w.Code != http.StatusOK || decodeBody(t, w)["total"] != 129.6 {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("payment info strips spaces", func(t *testing.T) {
		uc.EXPECT().SetPaymentInfo(entities.PaymentInfo{CardNumber: "4111111111111111", CardHolder: "ANA", ExpiryDate: "12/30", CVV: "123"})
		uc.EXPECT().State().Return(entities.CheckoutState{})
		w := doJSON(r, http.MethodPut, "/v1/checkout/payment-info", `{"cardNumber":"4111 1111 1111 1111","cardHolder":"ANA","expiryDate":"12/30","cvv":"123"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("remove gift card error", func(t *testing.T) {
		uc.EXPECT().RemoveGiftCard(gomock.Any()).Return(errors.New("db"))
		if w := doJSON(r, http.MethodDelete, "/v1/checkout/gift-card", ""); w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("clear", func(t *testing.T) {
		uc.EXPECT().ClearCheckout()
		if w := doJSON(r, http.MethodDelete, "/v1/checkout", ""); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
