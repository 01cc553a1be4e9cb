package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"storefront/internal/usecase/interfaces"
)

var ErrInvalidProductID = errors.New("invalid product id")

// IFavoritesUseCase keeps an ordered set of favorite product ids.
type IFavoritesUseCase interface {
	ToggleFavorite(ctx context.Context, productID string) (bool, error)
	AddFavorite(ctx context.Context, productID string) error
	RemoveFavorite(ctx context.Context, productID string) error
	IsFavorite(productID string) bool
	FavoriteIDs() []string
	Count() int
	Subscribe(fn func([]string)) (unsubscribe func())
}

type FavoritesUseCase struct {
	mu   sync.Mutex
	ids  []string
	repo interfaces.IFavoritesRepository
	subs subscribers[[]string]
}

var _ IFavoritesUseCase = (*FavoritesUseCase)(nil)

func NewFavoritesUseCase(ctx context.Context, repo interfaces.IFavoritesRepository) (*FavoritesUseCase, error) {
	ids, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load favorites: %w", err)
	}
	return &FavoritesUseCase{ids: dedupe(ids), repo: repo}, nil
}

// ToggleFavorite reports whether productID is a favorite afterwards.
func (u *FavoritesUseCase) ToggleFavorite(ctx context.Context, productID string) (bool, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return false, ErrInvalidProductID
	}

	var added bool
	err := u.mutate(ctx, func(ids []string) []string {
		if slices.Contains(ids, productID) {
			return slices.DeleteFunc(ids, func(id string) bool { return id == productID })
		}
		added = true
		return append(ids, productID)
	})
	if err != nil {
		return false, err
	}
	return added, nil
}

func (u *FavoritesUseCase) AddFavorite(ctx context.Context, productID string) error {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return ErrInvalidProductID
	}
	return u.mutate(ctx, func(ids []string) []string {
		if slices.Contains(ids, productID) {
			return ids
		}
		return append(ids, productID)
	})
}

func (u *FavoritesUseCase) RemoveFavorite(ctx context.Context, productID string) error {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return ErrInvalidProductID
	}
	return u.mutate(ctx, func(ids []string) []string {
		return slices.DeleteFunc(ids, func(id string) bool { return id == productID })
	})
}

func (u *FavoritesUseCase) IsFavorite(productID string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return slices.Contains(u.ids, strings.TrimSpace(productID))
}

func (u *FavoritesUseCase) FavoriteIDs() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return slices.Clone(u.ids)
}

func (u *FavoritesUseCase) Count() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.ids)
}

func (u *FavoritesUseCase) Subscribe(fn func([]string)) func() {
	return u.subs.add(fn)
}

// mutate persists the new set before publishing it; on a store error the
// in-memory set is unchanged.
func (u *FavoritesUseCase) mutate(ctx context.Context, fn func(ids []string) []string) error {
	u.mu.Lock()
	next := fn(slices.Clone(u.ids))
	if err := u.repo.Save(ctx, next); err != nil {
		u.mu.Unlock()
		return err
	}
	u.ids = next
	snapshot := slices.Clone(next)
	u.mu.Unlock()

	u.subs.notify(snapshot)
	return nil
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
