package response

import (
	"storefront/internal/domain/entities"
	"storefront/internal/usecase"
)

type CartLineResponse struct {
	Product   entities.Product `json:"product"`
	Quantity  int              `json:"quantity"`
	LineTotal float64          `json:"lineTotal"`
}

type CartResponse struct {
	Items     []CartLineResponse `json:"items"`
	ItemCount int                `json:"itemCount"`
	Subtotal  float64            `json:"subtotal"`
}

// FromCartLines takes the subtotal from the caller so the rounding rules
// stay in one place.
func FromCartLines(lines []entities.CartLine, subtotal float64) CartResponse {
	resp := CartResponse{Items: make([]CartLineResponse, 0, len(lines)), Subtotal: subtotal}
	for _, l := range lines {
		resp.Items = append(resp.Items, CartLineResponse{
			Product:   l.Product,
			Quantity:  l.Quantity,
			LineTotal: usecase.LineTotal([]entities.CartLine{l}),
		})
		resp.ItemCount += l.Quantity
	}
	return resp
}

type PurchaseCompletedResponse struct {
	Completed bool                     `json:"completed"`
	Record    *entities.PurchaseRecord `json:"record,omitempty"`
}
