package entities

import (
	"slices"
	"time"
)

// GiftCardCategory groups catalog templates.
type GiftCardCategory string

const (
	GiftCardCategoryGeneral         GiftCardCategory = "general"
	GiftCardCategoryBirthday        GiftCardCategory = "birthday"
	GiftCardCategoryHoliday         GiftCardCategory = "holiday"
	GiftCardCategoryThankYou        GiftCardCategory = "thank-you"
	GiftCardCategoryCongratulations GiftCardCategory = "congratulations"
	GiftCardCategoryGaming          GiftCardCategory = "gaming"
)

func (c GiftCardCategory) IsValid() bool {
	switch c {
	case GiftCardCategoryGeneral, GiftCardCategoryBirthday, GiftCardCategoryHoliday,
		GiftCardCategoryThankYou, GiftCardCategoryCongratulations, GiftCardCategoryGaming:
		return true
	}
	return false
}

// AmountRange bounds a custom gift card amount (inclusive).
type AmountRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// GiftCardTemplate is a purchasable design of the static catalog.
// Templates are defined at startup and never mutated.
type GiftCardTemplate struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Description       string           `json:"description"`
	Image             string           `json:"image"`
	Category          GiftCardCategory `json:"category"`
	AvailableAmounts  []float64        `json:"availableAmounts"`
	CustomAmountRange *AmountRange     `json:"customAmountRange,omitempty"`
	BackgroundColor   string           `json:"backgroundColor"`
	AccentColor       string           `json:"accentColor"`
}

// AcceptsAmount reports whether amount is one of the preset amounts or lies
// inside the custom range.
func (t GiftCardTemplate) AcceptsAmount(amount float64) bool {
	if amount <= 0 {
		return false
	}
	if slices.Contains(t.AvailableAmounts, amount) {
		return true
	}
	r := t.CustomAmountRange
	return r != nil && amount >= r.Min && amount <= r.Max
}

// DeliveryMethod tells how the purchased card reaches the recipient.
type DeliveryMethod string

const (
	DeliveryMethodEmail DeliveryMethod = "email"
	DeliveryMethodPrint DeliveryMethod = "print"
)

// GiftCardPurchaseForm is the purchase command.
type GiftCardPurchaseForm struct {
	GiftCardID     string         `json:"giftCardId"`
	Amount         float64        `json:"amount"`
	DeliveryMethod DeliveryMethod `json:"deliveryMethod"`
	RecipientEmail string         `json:"recipientEmail,omitempty"`
	RecipientName  string         `json:"recipientName,omitempty"`
	SenderName     string         `json:"senderName"`
	Message        string         `json:"message,omitempty"`
}

// PurchasedGiftCard is one entry of the gift card ledger.
//
// Ledger rules:
//   - Code is unique across the ledger
//   - IsRedeemed only ever goes false -> true; RedeemedDate is set at that moment
//   - ExpiryDate = PurchaseDate + 1 year
//   - entries are never deleted
type PurchasedGiftCard struct {
	ID             string           `json:"id"`
	GiftCard       GiftCardTemplate `json:"giftCard"`
	Amount         float64          `json:"amount"`
	Code           string           `json:"code"`
	RecipientEmail string           `json:"recipientEmail,omitempty"`
	RecipientName  string           `json:"recipientName,omitempty"`
	SenderName     string           `json:"senderName,omitempty"`
	Message        string           `json:"message,omitempty"`
	PurchaseDate   time.Time        `json:"purchaseDate"`
	ExpiryDate     time.Time        `json:"expiryDate"`
	IsRedeemed     bool             `json:"isRedeemed"`
	RedeemedDate   *time.Time       `json:"redeemedDate,omitempty"`
}

// IsExpiredAt reports whether the card can no longer be redeemed at now.
func (c PurchasedGiftCard) IsExpiredAt(now time.Time) bool {
	return now.After(c.ExpiryDate)
}

// RedeemResult is the outcome of a successful redemption.
type RedeemResult struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Amount  float64 `json:"amount,omitempty"`
}
