package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "storefront/internal/adapter/http/dto/request"
	response "storefront/internal/adapter/http/dto/response"
	"storefront/internal/domain/entities"
	"storefront/internal/logging"
	"storefront/internal/usecase"
	"storefront/pkg"

	"github.com/gin-gonic/gin"
)

type GiftCardHandler struct {
	usecase usecase.IGiftCardUseCase
}

func NewGiftCardHandler(uc usecase.IGiftCardUseCase) *GiftCardHandler {
	return &GiftCardHandler{usecase: uc}
}

// ListGiftCards godoc
// @Summary  Gift card catalog, optionally filtered by category
// @Tags     gift-cards
// @Produce  json
// @Param    category query string false "Category"
// @Success  200 {object} response.GiftCardListResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /gift-cards [get]
func (h *GiftCardHandler) ListGiftCards(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	if category == "" || category == "all" {
		c.JSON(http.StatusOK, response.GiftCardListResponse{GiftCards: h.usecase.GetGiftCards()})
		return
	}

	cat := entities.GiftCardCategory(category)
	if !cat.IsValid() {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_CATEGORY", "Unknown gift card category", http.StatusBadRequest))
		return
	}
	c.JSON(http.StatusOK, response.GiftCardListResponse{GiftCards: h.usecase.GetGiftCardsByCategory(cat)})
}

// GetGiftCard godoc
// @Summary  One catalog template
// @Tags     gift-cards
// @Produce  json
// @Param    id path string true "Template id"
// @Success  200 {object} entities.GiftCardTemplate
// @Failure  404 {object} pkg.HTTPError
// @Router   /gift-cards/{id} [get]
func (h *GiftCardHandler) GetGiftCard(c *gin.Context) {
	tpl, err := h.usecase.GetGiftCardByID(c.Param("id"))
	if err != nil {
		writeError(c, mapGiftCardError(err))
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// PurchaseGiftCard godoc
// @Summary  Buy a gift card
// @Tags     gift-cards
// @Accept   json
// @Produce  json
// @Param    purchase body request.GiftCardPurchaseRequest true "Purchase form"
// @Success  201 {object} entities.PurchasedGiftCard
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /gift-cards/purchases [post]
func (h *GiftCardHandler) PurchaseGiftCard(c *gin.Context) {
	var payload request.GiftCardPurchaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidPayload(err))
		return
	}

	card, err := h.usecase.PurchaseGiftCard(c.Request.Context(), payload.ToEntity())
	if err != nil {
		logging.From(c).Warn("[gift-card][handler] purchase failed", "gift_card_id", payload.GiftCardID, "error", err.Error())
		writeError(c, mapGiftCardError(err))
		return
	}
	c.JSON(http.StatusCreated, card)
}

// ListPurchased godoc
// @Summary  Purchased gift cards, newest last
// @Tags     gift-cards
// @Produce  json
// @Success  200 {object} response.PurchasedGiftCardListResponse
// @Router   /gift-cards/purchases [get]
func (h *GiftCardHandler) ListPurchased(c *gin.Context) {
	cards, err := h.usecase.GetMyGiftCards(c.Request.Context())
	if err != nil {
		writeError(c, mapGiftCardError(err))
		return
	}
	c.JSON(http.StatusOK, response.PurchasedGiftCardListResponse{GiftCards: cards})
}

// RedeemGiftCard godoc
// @Summary  Redeem a gift card code
// @Tags     gift-cards
// @Accept   json
// @Produce  json
// @Param    code body request.GiftCardCodeRequest true "Gift card code"
// @Success  200 {object} entities.RedeemResult
// @Failure  410 {object} pkg.HTTPError
// @Failure  422 {object} pkg.HTTPError
// @Router   /gift-cards/redeem [post]
func (h *GiftCardHandler) RedeemGiftCard(c *gin.Context) {
	var payload request.GiftCardCodeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidPayload(err))
		return
	}

	result, err := h.usecase.RedeemGiftCard(c.Request.Context(), payload.NormalizedCode())
	if err != nil {
		writeError(c, mapGiftCardError(err))
		return
	}
	c.JSON(http.StatusOK, result)
}

func mapGiftCardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrGiftCardNotFound):
		return pkg.NewDomainErrorSimple("GIFT_CARD_NOT_FOUND", "Gift card not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidGiftCardAmount):
		return pkg.NewDomainErrorSimple("INVALID_GIFT_CARD_AMOUNT", "Amount not available for this gift card", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGiftCardInvalidOrRedeemed):
		return pkg.NewDomainErrorSimple("GIFT_CARD_INVALID", usecase.MsgGiftCardInvalidOrRedeemed, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrGiftCardExpired):
		return pkg.NewDomainErrorSimple("GIFT_CARD_EXPIRED", usecase.MsgGiftCardExpired, http.StatusGone)
	default:
		return internalError(err)
	}
}
