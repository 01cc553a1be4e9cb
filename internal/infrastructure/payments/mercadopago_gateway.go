package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"storefront/internal/domain/entities"
	"storefront/internal/logging"
	"storefront/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing mercado pago access token")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	log      *slog.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

// NewMercadoPagoGateway builds the gateway. mock (or PAYMENT_GATEWAY_MOCK /
// MERCADOPAGO_MOCK in the environment) approves every charge without calling
// the provider.
func NewMercadoPagoGateway(accessToken string, mock bool) (*MercadoPagoGateway, error) {
	l := logging.New("payments")
	if mock || isPaymentGatewayMockEnabled() {
		l.Info("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, log: l}, nil
	}

	if accessToken == "" {
		l.Error("[payment][gateway] missing access token")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		l.Error("[payment][gateway] failed creating sdk config", "error", err.Error())
		return nil, err
	}
	l.Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), log: l}, nil
}

func (g *MercadoPagoGateway) Charge(ctx context.Context, req entities.ChargeRequest) (entities.ChargeResult, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		g.log.Info("[payment][gateway] mock charge approved",
			"provider_payment_id", id, "amount", req.Amount, "reference", req.ExternalReference)
		return entities.ChargeResult{ProviderPaymentID: id, Status: entities.ChargeStatusApproved}, nil
	}

	if g == nil || g.client == nil {
		return entities.ChargeResult{}, ErrMercadoPagoGatewayNotConfigured
	}
	g.log.Info("[payment][gateway] charge start", "amount", req.Amount, "reference", req.ExternalReference)

	mpReq, err := toPaymentRequest(req)
	if err != nil {
		g.log.Error("[payment][gateway] payload build failed", "error", err.Error())
		return entities.ChargeResult{}, err
	}

	resp, err := g.client.Create(ctx, mpReq)
	if err != nil {
		g.log.Error("[payment][gateway] sdk create failed", "error", err.Error())
		return entities.ChargeResult{}, err
	}
	g.log.Info("[payment][gateway] charge done", "provider_payment_id", resp.ID, "provider_status", resp.Status)

	return entities.ChargeResult{
		ProviderPaymentID: fmt.Sprintf("%d", resp.ID),
		Status:            toChargeStatus(resp.Status),
	}, nil
}

// toPaymentRequest goes through the provider's JSON contract so only the
// documented field names are relied upon.
func toPaymentRequest(req entities.ChargeRequest) (payment.Request, error) {
	payload := map[string]any{
		"transaction_amount": req.Amount,
		"description":        req.Description,
		"external_reference": req.ExternalReference,
		"installments":       1,
	}
	if req.PayerEmail != "" {
		payload["payer"] = map[string]any{"email": req.PayerEmail}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return payment.Request{}, err
	}
	var out payment.Request
	if err := json.Unmarshal(raw, &out); err != nil {
		return payment.Request{}, err
	}
	return out, nil
}

func toChargeStatus(providerStatus string) entities.ChargeStatus {
	switch strings.ToLower(providerStatus) {
	case "approved", "authorized":
		return entities.ChargeStatusApproved
	case "pending", "in_process":
		return entities.ChargeStatusPending
	default:
		return entities.ChargeStatusRejected
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
