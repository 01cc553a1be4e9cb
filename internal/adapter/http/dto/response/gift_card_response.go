package response

import "storefront/internal/domain/entities"

type GiftCardListResponse struct {
	GiftCards []entities.GiftCardTemplate `json:"giftCards"`
}

type PurchasedGiftCardListResponse struct {
	GiftCards []entities.PurchasedGiftCard `json:"giftCards"`
}
