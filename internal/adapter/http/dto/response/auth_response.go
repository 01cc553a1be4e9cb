package response

import "storefront/internal/domain/entities"

type SessionResponse struct {
	Authenticated bool           `json:"authenticated"`
	User          *entities.User `json:"user,omitempty"`
}
