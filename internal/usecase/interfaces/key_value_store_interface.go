package interfaces

import "context"

// IKeyValueStore is the string-keyed persistence substrate every aggregate
// writes through. Values are opaque strings (JSON documents in practice).
//
// Get reports found=false for a missing key; err is reserved for backend
// failures.
type IKeyValueStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
