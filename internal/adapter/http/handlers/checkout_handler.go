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

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// GetState godoc
// @Summary  Current checkout state
// @Tags     checkout
// @Produce  json
// @Success  200 {object} response.CheckoutStateResponse
// @Router   /checkout [get]
func (h *CheckoutHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCheckoutState(h.usecase.State()))
}

// Enter godoc
// @Summary  Enter the checkout; redirectTo is set when the cart is empty
// @Tags     checkout
// @Produce  json
// @Success  200 {object} response.EnterCheckoutResponse
// @Router   /checkout/enter [post]
func (h *CheckoutHandler) Enter(c *gin.Context) {
	redirect, err := h.usecase.EnterCheckout(c.Request.Context())
	if err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.EnterCheckoutResponse{
		RedirectTo: redirect,
		State:      response.FromCheckoutState(h.usecase.State()),
	})
}

// Reload godoc
// @Summary  Re-read the cart and recompute totals
// @Tags     checkout
// @Produce  json
// @Success  200 {object} response.CheckoutStateResponse
// @Router   /checkout/reload [post]
func (h *CheckoutHandler) Reload(c *gin.Context) {
	state, err := h.usecase.LoadCartProducts(c.Request.Context())
	if err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutState(state))
}

// SetShipping godoc
// @Summary  Submit the shipping form
// @Tags     checkout
// @Accept   json
// @Produce  json
// @Param    shipping body request.ShippingInfoRequest true "Shipping info"
// @Success  200 {object} response.CheckoutStateResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /checkout/shipping [put]
func (h *CheckoutHandler) SetShipping(c *gin.Context) {
	var payload request.ShippingInfoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidPayload(err))
		return
	}
	h.usecase.SetShippingInfo(payload.ToEntity())
	c.JSON(http.StatusOK, response.FromCheckoutState(h.usecase.State()))
}

// SetPaymentInfo godoc
// @Summary  Store the card details shown on the payment step
// @Tags     checkout
// @Accept   json
// @Produce  json
// @Param    payment body request.PaymentInfoRequest true "Payment info"
// @Success  200 {object} response.CheckoutStateResponse
// @Router   /checkout/payment-info [put]
func (h *CheckoutHandler) SetPaymentInfo(c *gin.Context) {
	var payload request.PaymentInfoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidPayload(err))
		return
	}
	h.usecase.SetPaymentInfo(payload.ToEntity())
	c.JSON(http.StatusOK, response.FromCheckoutState(h.usecase.State()))
}

// ApplyGiftCard godoc
// @Summary  Redeem a gift card against the current order
// @Tags     checkout
// @Accept   json
// @Produce  json
// @Param    code body request.GiftCardCodeRequest true "Gift card code"
// @Success  200 {object} response.ApplyGiftCardResponse
// @Failure  409 {object} pkg.HTTPError
// @Failure  410 {object} pkg.HTTPError
// @Failure  422 {object} pkg.HTTPError
// @Router   /checkout/gift-card [post]
func (h *CheckoutHandler) ApplyGiftCard(c *gin.Context) {
	var payload request.GiftCardCodeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidPayload(err))
		return
	}

	result, err := h.usecase.ApplyGiftCard(c.Request.Context(), payload.NormalizedCode())
	if err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.ApplyGiftCardResponse{
		RedeemResult: result,
		State:        response.FromCheckoutState(h.usecase.State()),
	})
}

// RemoveGiftCard godoc
// @Summary  Remove the applied gift card
// @Tags     checkout
// @Produce  json
// @Success  200 {object} response.CheckoutStateResponse
// @Router   /checkout/gift-card [delete]
func (h *CheckoutHandler) RemoveGiftCard(c *gin.Context) {
	if err := h.usecase.RemoveGiftCard(c.Request.Context()); err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutState(h.usecase.State()))
}

// ProcessPayment godoc
// @Summary  Charge the order total
// @Tags     checkout
// @Produce  json
// @Success  200 {object} response.PaymentResponse
// @Failure  402 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Failure  422 {object} pkg.HTTPError
// @Router   /checkout/pay [post]
func (h *CheckoutHandler) ProcessPayment(c *gin.Context) {
	log := logging.From(c)
	log.Info("[checkout][handler] pay start")

	result, err := h.usecase.ProcessPayment(c.Request.Context())
	if err != nil {
		log.Warn("[checkout][handler] pay failed", "error", err.Error())
		writeError(c, mapCheckoutError(err))
		return
	}
	log.Info("[checkout][handler] pay success", "redirect_to", result.RedirectTo)

	c.JSON(http.StatusOK, response.PaymentResponse{
		PaymentResult: result,
		State:         response.FromCheckoutState(h.usecase.State()),
	})
}

// Clear godoc
// @Summary  Reset the checkout state
// @Tags     checkout
// @Success  204
// @Router   /checkout [delete]
func (h *CheckoutHandler) Clear(c *gin.Context) {
	h.usecase.ClearCheckout()
	c.Status(http.StatusNoContent)
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrGiftCardAlreadyApplied):
		return pkg.NewDomainErrorSimple("GIFT_CARD_ALREADY_APPLIED", usecase.MsgGiftCardAlreadyApplied, http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentInProgress):
		return pkg.NewDomainErrorSimple("PAYMENT_IN_PROGRESS", "Payment already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrShippingInfoMissing):
		return pkg.NewDomainErrorSimple("SHIPPING_INFO_MISSING", usecase.MsgShippingInfoMissing, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrEmptyCart):
		return pkg.NewDomainErrorSimple("EMPTY_CART", usecase.MsgEmptyCart, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentFailed):
		return pkg.NewDomainError("PAYMENT_FAILED", usecase.MsgPaymentFailed, err, http.StatusPaymentRequired)
	default:
		return mapGiftCardError(err)
	}
}
