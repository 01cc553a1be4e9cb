package request

import (
	"strings"

	"storefront/internal/domain/entities"
)

type AddToCartRequest struct {
	ID          string  `json:"id" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Price       float64 `json:"price" binding:"gte=0"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

func (r AddToCartRequest) ToEntity() entities.Product {
	return entities.Product{
		ID:          strings.TrimSpace(r.ID),
		Title:       strings.TrimSpace(r.Title),
		Price:       r.Price,
		Description: r.Description,
		Category:    r.Category,
		Image:       r.Image,
	}
}
