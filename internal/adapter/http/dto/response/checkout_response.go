package response

import "storefront/internal/domain/entities"

// CheckoutStateResponse is the checkout state with card details masked.
type CheckoutStateResponse struct {
	entities.CheckoutState
	PaymentInfo *MaskedPaymentInfo `json:"paymentInfo"`
}

type MaskedPaymentInfo struct {
	CardNumber string `json:"cardNumber"`
	CardHolder string `json:"cardHolder"`
	ExpiryDate string `json:"expiryDate"`
}

func FromCheckoutState(s entities.CheckoutState) CheckoutStateResponse {
	resp := CheckoutStateResponse{CheckoutState: s}
	if s.PaymentInfo != nil {
		resp.PaymentInfo = &MaskedPaymentInfo{
			CardNumber: MaskCardNumber(s.PaymentInfo.CardNumber),
			CardHolder: s.PaymentInfo.CardHolder,
			ExpiryDate: s.PaymentInfo.ExpiryDate,
		}
	}
	resp.CheckoutState.PaymentInfo = nil
	return resp
}

// MaskCardNumber keeps only the last four digits.
func MaskCardNumber(number string) string {
	if len(number) <= 4 {
		return number
	}
	return "**** " + number[len(number)-4:]
}

type EnterCheckoutResponse struct {
	RedirectTo string                `json:"redirectTo,omitempty"`
	State      CheckoutStateResponse `json:"state"`
}

type PaymentResponse struct {
	entities.PaymentResult
	State CheckoutStateResponse `json:"state"`
}

type ApplyGiftCardResponse struct {
	entities.RedeemResult
	State CheckoutStateResponse `json:"state"`
}
