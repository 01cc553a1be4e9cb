package request

import (
	"strings"

	"storefront/internal/domain/entities"
)

type SignInRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	RememberMe bool   `json:"rememberMe"`
}

func (r SignInRequest) ToEntity() entities.SignInCredentials {
	return entities.SignInCredentials{
		Email:      strings.TrimSpace(r.Email),
		Password:   r.Password,
		RememberMe: r.RememberMe,
	}
}

type SignUpRequest struct {
	Name            string `json:"name" binding:"required,min=2"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,strongpassword"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
	AgreeToTerms    bool   `json:"agreeToTerms" binding:"required"`
}

func (r SignUpRequest) ToEntity() entities.SignUpData {
	return entities.SignUpData{
		Name:     strings.TrimSpace(r.Name),
		Email:    strings.TrimSpace(r.Email),
		Password: r.Password,
	}
}
