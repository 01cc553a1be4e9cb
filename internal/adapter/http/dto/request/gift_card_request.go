package request

import (
	"strings"

	"storefront/internal/domain/entities"
)

type GiftCardPurchaseRequest struct {
	GiftCardID     string  `json:"giftCardId" binding:"required"`
	Amount         float64 `json:"amount" binding:"required,gt=0"`
	DeliveryMethod string  `json:"deliveryMethod" binding:"required,oneof=email print"`
	RecipientEmail string  `json:"recipientEmail" binding:"required_if=DeliveryMethod email,omitempty,email"`
	RecipientName  string  `json:"recipientName" binding:"required_if=DeliveryMethod email"`
	SenderName     string  `json:"senderName" binding:"required"`
	Message        string  `json:"message" binding:"max=500"`
}

// ToEntity drops the recipient email for printed cards.
func (r GiftCardPurchaseRequest) ToEntity() entities.GiftCardPurchaseForm {
	form := entities.GiftCardPurchaseForm{
		GiftCardID:     strings.TrimSpace(r.GiftCardID),
		Amount:         r.Amount,
		DeliveryMethod: entities.DeliveryMethod(r.DeliveryMethod),
		RecipientName:  strings.TrimSpace(r.RecipientName),
		SenderName:     strings.TrimSpace(r.SenderName),
		Message:        strings.TrimSpace(r.Message),
	}
	if form.DeliveryMethod == entities.DeliveryMethodEmail {
		form.RecipientEmail = strings.TrimSpace(r.RecipientEmail)
	}
	return form
}
