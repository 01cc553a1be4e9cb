package handlers

import (
	"errors"
	"net/http"

	request "storefront/internal/adapter/http/dto/request"
	response "storefront/internal/adapter/http/dto/response"
	"storefront/internal/logging"
	"storefront/internal/usecase"
	"storefront/pkg"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

// GetCart godoc
// @Summary  Current cart
// @Tags     cart
// @Produce  json
// @Success  200 {object} response.CartResponse
// @Router   /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	lines, err := h.usecase.Lines(c.Request.Context())
	if err != nil {
		writeError(c, mapCartError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCartLines(lines, usecase.LineTotal(lines)))
}

// AddToCart godoc
// @Summary  Add one unit of a product
// @Tags     cart
// @Accept   json
// @Produce  json
// @Param    product body request.AddToCartRequest true "Product"
// @Success  200 {object} response.CartResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /cart/items [post]
func (h *CartHandler) AddToCart(c *gin.Context) {
	var payload request.AddToCartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidPayload(err))
		return
	}

	lines, err := h.usecase.AddToCart(c.Request.Context(), payload.ToEntity())
	if err != nil {
		logging.From(c).Warn("[cart][handler] add failed", "product_id", payload.ID, "error", err.Error())
		writeError(c, mapCartError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCartLines(lines, usecase.LineTotal(lines)))
}

// CompletePurchase godoc
// @Summary  Empty the cart after a successful payment and record the purchase
// @Tags     cart
// @Produce  json
// @Success  200 {object} response.PurchaseCompletedResponse
// @Router   /cart/complete [post]
func (h *CartHandler) CompletePurchase(c *gin.Context) {
	record, err := h.usecase.CompletePurchase(c.Request.Context())
	if err != nil {
		logging.From(c).Error("[cart][handler] complete purchase failed", "error", err.Error())
		writeError(c, mapCartError(err))
		return
	}
	c.JSON(http.StatusOK, response.PurchaseCompletedResponse{Completed: record != nil, Record: record})
}

func mapCartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProduct):
		return pkg.NewDomainErrorSimple("INVALID_PRODUCT", "Invalid product", http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
