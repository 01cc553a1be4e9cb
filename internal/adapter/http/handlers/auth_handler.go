package handlers

import (
	"errors"
	"net/http"

	request "storefront/internal/adapter/http/dto/request"
	response "storefront/internal/adapter/http/dto/response"
	"storefront/internal/usecase"
	"storefront/pkg"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// SignIn godoc
// @Summary  Sign in with email and password
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    credentials body request.SignInRequest true "Credentials"
// @Success  200 {object} entities.AuthResponse
// @Failure  401 {object} pkg.HTTPError
// @Router   /auth/sign-in [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var payload request.SignInRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidPayload(err))
		return
	}

	res, err := h.usecase.SignIn(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// SignUp godoc
// @Summary  Create an account and sign in
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    account body request.SignUpRequest true "Account"
// @Success  201 {object} entities.AuthResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /auth/sign-up [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var payload request.SignUpRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidPayload(err))
		return
	}

	res, err := h.usecase.SignUp(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusCreated, res)
}

// SignOut godoc
// @Summary  Forget the current session
// @Tags     auth
// @Success  204
// @Router   /auth/sign-out [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	if err := h.usecase.SignOut(c.Request.Context()); err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Me godoc
// @Summary  Current session
// @Tags     auth
// @Produce  json
// @Success  200 {object} response.SessionResponse
// @Router   /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user := h.usecase.CurrentUser()
	c.JSON(http.StatusOK, response.SessionResponse{Authenticated: user != nil, User: user})
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", usecase.MsgInvalidCredentials, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrAccountAlreadyExists):
		return pkg.NewDomainErrorSimple("ACCOUNT_ALREADY_EXISTS", usecase.MsgAccountAlreadyExists, http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidSignUpData):
		return errInvalidRequest
	default:
		return internalError(err)
	}
}
