package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"storefront/internal/logging"
	"storefront/internal/usecase/interfaces"
)

// Storage keys. Each one is owned by exactly one typed repository.
const (
	KeyCartProducts       = "cart-products"
	KeyAppliedGiftCard    = "applied-gift-card"
	KeyRegisteredUsers    = "registered_users"
	KeyAuthUser           = "auth_user"
	KeyFavoriteProducts   = "favorite-products"
	KeyPurchasedGiftCards = "purchased-gift-cards"
)

// documentVersion is the schema version written for every key.
const documentVersion = 1

var errCorruptDocument = errors.New("corrupt document")

type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

func encodeDocument(payload any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	raw, err := json.Marshal(envelope{Version: documentVersion, Data: data})
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// decodeDocument unwraps a stored envelope into out. Anything that is not a
// current-version envelope with a payload is errCorruptDocument.
func decodeDocument(raw string, out any) error {
	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return fmt.Errorf("%w: %v", errCorruptDocument, err)
	}
	if env.Version != documentVersion {
		return fmt.Errorf("%w: version %d", errCorruptDocument, env.Version)
	}
	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return fmt.Errorf("%w: missing data", errCorruptDocument)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: %v", errCorruptDocument, err)
	}
	return nil
}

// loadDocument reads key into out. found is false when the key is absent or
// its content cannot be decoded; corruption is logged, never returned.
// Backend errors are returned as-is.
func loadDocument(ctx context.Context, store interfaces.IKeyValueStore, key string, out any) (bool, error) {
	raw, found, err := store.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	if err := decodeDocument(raw, out); err != nil {
		logging.FromCtx(ctx).Warn("[store][repository] discarding unreadable document",
			"key", key, "error", err.Error())
		return false, nil
	}
	return true, nil
}

func saveDocument(ctx context.Context, store interfaces.IKeyValueStore, key string, payload any) error {
	raw, err := encodeDocument(payload)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	return store.Set(ctx, key, raw)
}
