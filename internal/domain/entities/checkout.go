package entities

import "slices"

// ShippingInfo is accepted only after the shipping form validated.
// It lives in the transient checkout state and is never persisted.
type ShippingInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
	Country  string `json:"country"`
}

type PaymentInfo struct {
	CardNumber string `json:"cardNumber"`
	CardHolder string `json:"cardHolder"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
}

// AppliedGiftCard is the gift card currently discounting the checkout.
// At most one is applied at a time.
type AppliedGiftCard struct {
	Code   string  `json:"code"`
	Amount float64 `json:"amount"`
}

// CheckoutStep is the position of the checkout flow:
// shipping -> payment -> processing -> success | failed (retryable).
type CheckoutStep string

const (
	CheckoutStepShipping   CheckoutStep = "shipping"
	CheckoutStepPayment    CheckoutStep = "payment"
	CheckoutStepProcessing CheckoutStep = "processing"
	CheckoutStepSuccess    CheckoutStep = "success"
	CheckoutStepFailed     CheckoutStep = "failed"
)

func (s CheckoutStep) IsTerminal() bool {
	return s == CheckoutStepSuccess
}

func (s CheckoutStep) String() string {
	return string(s)
}

// CheckoutState aggregates everything the checkout views render.
//
// Derived fields:
//   - Shipping = 0 iff Subtotal >= free shipping threshold, else the flat fee
//   - Tax = Subtotal * tax rate, rounded to cents
//   - Total = max(0, Subtotal + Shipping + Tax - GiftCardDiscount)
type CheckoutState struct {
	CartProducts     []CartLine       `json:"cartProducts"`
	ShippingInfo     *ShippingInfo    `json:"shippingInfo"`
	PaymentInfo      *PaymentInfo     `json:"paymentInfo"`
	Subtotal         float64          `json:"subtotal"`
	Shipping         float64          `json:"shipping"`
	Tax              float64          `json:"tax"`
	GiftCardDiscount float64          `json:"giftCardDiscount"`
	AppliedGiftCard  *AppliedGiftCard `json:"appliedGiftCard"`
	Total            float64          `json:"total"`
	IsProcessing     bool             `json:"isProcessing"`
	Error            string           `json:"error,omitempty"`
	Step             CheckoutStep     `json:"step"`
}

// Clone returns a copy that shares nothing mutable with s.
func (s CheckoutState) Clone() CheckoutState {
	out := s
	out.CartProducts = slices.Clone(s.CartProducts)
	if s.ShippingInfo != nil {
		v := *s.ShippingInfo
		out.ShippingInfo = &v
	}
	if s.PaymentInfo != nil {
		v := *s.PaymentInfo
		out.PaymentInfo = &v
	}
	if s.AppliedGiftCard != nil {
		v := *s.AppliedGiftCard
		out.AppliedGiftCard = &v
	}
	return out
}

// PaymentResult carries the outcome of ProcessPayment and the navigation the
// caller should perform.
type PaymentResult struct {
	Success    bool   `json:"success"`
	RedirectTo string `json:"redirectTo,omitempty"`
}
