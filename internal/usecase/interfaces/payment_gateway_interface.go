package interfaces

import (
	"context"
	"storefront/internal/domain/entities"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The checkout uses it to collect the order total once the simulated network
// round trip completed. A non-approved status is a business failure, err is
// reserved for transport/provider errors.
type IPaymentGateway interface {
	Charge(ctx context.Context, req entities.ChargeRequest) (entities.ChargeResult, error)
}
