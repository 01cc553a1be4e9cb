package routes

import (
	"storefront/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing      = "/ping"
	PathCart      = "/cart"
	PathCheckout  = "/checkout"
	PathGiftCards = "/gift-cards"
	PathAuth      = "/auth"
	PathFavorites = "/favorites"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addCartRoutes(rg *gin.RouterGroup, h *handlers.CartHandler) {
	cart := rg.Group(PathCart)
	{
		cart.GET("", h.GetCart)
		cart.POST("/items", h.AddToCart)
		cart.POST("/complete", h.CompletePurchase)
	}
}

func addCheckoutRoutes(rg *gin.RouterGroup, h *handlers.CheckoutHandler) {
	checkout := rg.Group(PathCheckout)
	{
		checkout.GET("", h.GetState)
		checkout.DELETE("", h.Clear)
		checkout.POST("/enter", h.Enter)
		checkout.POST("/reload", h.Reload)
		checkout.PUT("/shipping", h.SetShipping)
		checkout.PUT("/payment-info", h.SetPaymentInfo)
		checkout.POST("/gift-card", h.ApplyGiftCard)
		checkout.DELETE("/gift-card", h.RemoveGiftCard)
		checkout.POST("/pay", h.ProcessPayment)
	}
}

func addGiftCardRoutes(rg *gin.RouterGroup, h *handlers.GiftCardHandler) {
	giftCards := rg.Group(PathGiftCards)
	{
		giftCards.GET("", h.ListGiftCards)
		giftCards.GET("/purchases", h.ListPurchased)
		giftCards.POST("/purchases", h.PurchaseGiftCard)
		giftCards.POST("/redeem", h.RedeemGiftCard)
		giftCards.GET("/:id", h.GetGiftCard)
	}
}

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/sign-in", h.SignIn)
		auth.POST("/sign-up", h.SignUp)
		auth.POST("/sign-out", h.SignOut)
		auth.GET("/me", h.Me)
	}
}

func addFavoritesRoutes(rg *gin.RouterGroup, h *handlers.FavoritesHandler) {
	favorites := rg.Group(PathFavorites)
	{
		favorites.GET("", h.List)
		favorites.GET("/:id", h.Status)
		favorites.PUT("/:id/toggle", h.Toggle)
	}
}
