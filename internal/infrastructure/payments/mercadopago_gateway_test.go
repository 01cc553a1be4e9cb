package payments

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain/entities"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	t.Run("missing token without mock", func(t *testing.T) {
		_, err := NewMercadoPagoGateway("", false)
		if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("env enables mock mode", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "on")
		g, err := NewMercadoPagoGateway("", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !g.mockMode {
			t.Fatalf("expected mock mode")
		}
	})
}

func TestMercadoPagoGateway_MockCharge(t *testing.T) {
	g, err := NewMercadoPagoGateway("", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := g.Charge(context.Background(), entities.ChargeRequest{Amount: 129.6, ExternalReference: "ref-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != entities.ChargeStatusApproved || res.ProviderPaymentID == "" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	if _, err := g.Charge(context.Background(), entities.ChargeRequest{}); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}

func TestToChargeStatus(t *testing.T) {
	cases := map[string]entities.ChargeStatus{
		"approved":   entities.ChargeStatusApproved,
		"authorized": entities.ChargeStatusApproved,
		"in_process": entities.ChargeStatusPending,
		"pending":    entities.ChargeStatusPending,
		"rejected":   entities.ChargeStatusRejected,
		"cancelled":  entities.ChargeStatusRejected,
	}
	for in, want := range cases {
		if got := toChargeStatus(in); got != want {
			t.Fatalf("toChargeStatus(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestToPaymentRequest(t *testing.T) {
	req, err := toPaymentRequest(entities.ChargeRequest{
		Amount:            42.5,
		Description:       "Storefront order",
		PayerEmail:        "buyer@example.com",
		ExternalReference: "ref-9",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.TransactionAmount != 42.5 || req.ExternalReference != "ref-9" {
		t.Fatalf("unexpected request %+v", req)
	}
	if req.Payer == nil || req.Payer.Email != "buyer@example.com" {
		t.Fatalf("expected payer email, got %+v", req.Payer)
	}
}
