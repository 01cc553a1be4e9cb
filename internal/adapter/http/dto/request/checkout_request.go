package request

import (
	"strings"

	"storefront/internal/domain/entities"
)

type ShippingInfoRequest struct {
	FullName string `json:"fullName" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,phone"`
	Address  string `json:"address" binding:"required,min=5"`
	City     string `json:"city" binding:"required"`
	State    string `json:"state" binding:"required"`
	ZipCode  string `json:"zipCode" binding:"required,zipcode"`
	Country  string `json:"country" binding:"required"`
}

func (r ShippingInfoRequest) ToEntity() entities.ShippingInfo {
	return entities.ShippingInfo{
		FullName: strings.TrimSpace(r.FullName),
		Email:    strings.TrimSpace(r.Email),
		Phone:    strings.TrimSpace(r.Phone),
		Address:  strings.TrimSpace(r.Address),
		City:     strings.TrimSpace(r.City),
		State:    strings.TrimSpace(r.State),
		ZipCode:  strings.TrimSpace(r.ZipCode),
		Country:  strings.TrimSpace(r.Country),
	}
}

// PaymentInfoRequest is collected for display only and never validated
// against a card network.
type PaymentInfoRequest struct {
	CardNumber string `json:"cardNumber"`
	CardHolder string `json:"cardHolder"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
}

func (r PaymentInfoRequest) ToEntity() entities.PaymentInfo {
	return entities.PaymentInfo{
		CardNumber: strings.ReplaceAll(r.CardNumber, " ", ""),
		CardHolder: strings.TrimSpace(r.CardHolder),
		ExpiryDate: strings.TrimSpace(r.ExpiryDate),
		CVV:        strings.TrimSpace(r.CVV),
	}
}

// GiftCardCodeRequest carries a code typed by the shopper, used both to
// redeem a card and to apply one at checkout.
type GiftCardCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// NormalizedCode trims and upper-cases the code.
func (r GiftCardCodeRequest) NormalizedCode() string {
	return strings.ToUpper(strings.TrimSpace(r.Code))
}
