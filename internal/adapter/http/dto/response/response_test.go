package response

import (
	"encoding/json"
	"strings"
	"testing"

	"storefront/internal/domain/entities"
)

func TestFromCartLines(t *testing.T) {
	lines := []entities.CartLine{
		{Product: entities.Product{ID: "1", Price: 2.5}, Quantity: 2},
		{Product: entities.Product{ID: "2", Price: 10}, Quantity: 1},
	}
	resp := FromCartLines(lines, 15)
	if resp.ItemCount != 3 || resp.Subtotal != 15 || len(resp.Items) != 2 {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.Items[0].LineTotal != 5 {
		t.Fatalf("expected line total 5, got %v", resp.Items[0].LineTotal)
	}

	dimes := FromCartLines([]entities.CartLine{{Product: entities.Product{ID: "3", Price: 0.1}, Quantity: 3}}, 0.3)
	if dimes.Items[0].LineTotal != 0.3 {
		t.Fatalf("expected line total rounded to 0.3, got %v", dimes.Items[0].LineTotal)
	}

	empty := FromCartLines(nil, 0)
	raw, _ := json.Marshal(empty)
	if !strings.Contains(string(raw), `"items":[]`) {
		t.Fatalf("expected empty items array, got %s", raw)
	}
}

func TestFromCheckoutState_MasksCard(t *testing.T) {
	s := entities.CheckoutState{
		Step:        entities.CheckoutStepPayment,
		PaymentInfo: &entities.PaymentInfo{CardNumber: "4111111111111111", CardHolder: "ANA", ExpiryDate: "12/30", CVV: "123"},
	}
	raw, err := json.Marshal(FromCheckoutState(s))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := string(raw)
	if strings.Contains(body, "4111111111111111") || strings.Contains(body, `"cvv"`) {
		t.Fatalf("card details leaked: %s", body)
	}
	if !strings.Contains(body, `"cardNumber":"**** 1111"`) || !strings.Contains(body, `"step":"payment"`) {
		t.Fatalf("unexpected body: %s", body)
	}

	if s.PaymentInfo.CardNumber != "4111111111111111" {
		t.Fatalf("source state must not be modified")
	}
}

func TestMaskCardNumber(t *testing.T) {
	if got := MaskCardNumber("123"); got != "123" {
		t.Fatalf("unexpected %q", got)
	}
	if got := MaskCardNumber("5555444433332222"); got != "**** 2222" {
		t.Fatalf("unexpected %q", got)
	}
}
