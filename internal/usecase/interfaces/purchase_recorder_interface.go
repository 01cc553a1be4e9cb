package interfaces

import (
	"context"
	"storefront/internal/domain/entities"
)

// IPurchaseRecorder forwards a completed purchase to the recording endpoint.
// Callers treat it as fire-and-forget: a failure is logged, never retried.
type IPurchaseRecorder interface {
	Record(ctx context.Context, purchase entities.PurchaseRecord) error
}
