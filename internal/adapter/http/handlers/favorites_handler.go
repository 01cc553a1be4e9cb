package handlers

import (
	"errors"
	"net/http"

	response "storefront/internal/adapter/http/dto/response"
	"storefront/internal/usecase"
	"storefront/pkg"

	"github.com/gin-gonic/gin"
)

type FavoritesHandler struct {
	usecase usecase.IFavoritesUseCase
}

func NewFavoritesHandler(uc usecase.IFavoritesUseCase) *FavoritesHandler {
	return &FavoritesHandler{usecase: uc}
}

// List godoc
// @Summary  Favorite product ids in insertion order
// @Tags     favorites
// @Produce  json
// @Success  200 {object} response.FavoritesResponse
// @Router   /favorites [get]
func (h *FavoritesHandler) List(c *gin.Context) {
	ids := h.usecase.FavoriteIDs()
	c.JSON(http.StatusOK, response.FavoritesResponse{ProductIDs: ids, Count: len(ids)})
}

// Toggle godoc
// @Summary  Add or remove a product from the favorites
// @Tags     favorites
// @Produce  json
// @Param    id path string true "Product id"
// @Success  200 {object} response.FavoriteStatusResponse
// @Router   /favorites/{id}/toggle [put]
func (h *FavoritesHandler) Toggle(c *gin.Context) {
	id := c.Param("id")
	isFavorite, err := h.usecase.ToggleFavorite(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapFavoritesError(err))
		return
	}
	c.JSON(http.StatusOK, response.FavoriteStatusResponse{ProductID: id, IsFavorite: isFavorite})
}

// Status godoc
// @Summary  Whether a product is a favorite
// @Tags     favorites
// @Produce  json
// @Param    id path string true "Product id"
// @Success  200 {object} response.FavoriteStatusResponse
// @Router   /favorites/{id} [get]
func (h *FavoritesHandler) Status(c *gin.Context) {
	id := c.Param("id")
	c.JSON(http.StatusOK, response.FavoriteStatusResponse{ProductID: id, IsFavorite: h.usecase.IsFavorite(id)})
}

func mapFavoritesError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID):
		return errInvalidRequest
	default:
		return internalError(err)
	}
}
