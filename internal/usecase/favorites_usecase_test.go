package usecase

import (
	"context"
	"errors"
	"slices"
	"testing"

	"storefront/internal/adapter/persistence/repository"
	mock_interfaces "storefront/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newFavorites(t *testing.T, store *repository.MemoryKVStore) *FavoritesUseCase {
	t.Helper()
	uc, err := NewFavoritesUseCase(context.Background(), repository.NewFavoritesRepository(store))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return uc
}

func TestFavoritesUseCase_Toggle(t *testing.T) {
	store := newMemoryStore()
	uc := newFavorites(t, store)

	added, err := uc.ToggleFavorite(context.Background(), "p1")
	if err != nil || !added {
		t.Fatalf("expected added, got %v err=%v", added, err)
	}
	_, _ = uc.ToggleFavorite(context.Background(), "p2")
	if !uc.IsFavorite("p1") || uc.Count() != 2 {
		t.Fatalf("unexpected favorites %v", uc.FavoriteIDs())
	}

	added, err = uc.ToggleFavorite(context.Background(), "p1")
	if err != nil || added {
		t.Fatalf("expected removed, got %v err=%v", added, err)
	}
	if uc.IsFavorite("p1") || !slices.Equal(uc.FavoriteIDs(), []string{"p2"}) {
		t.Fatalf("unexpected favorites %v", uc.FavoriteIDs())
	}

	reloaded := newFavorites(t, store)
	if !slices.Equal(reloaded.FavoriteIDs(), []string{"p2"}) {
		t.Fatalf("expected persisted favorites, got %v", reloaded.FavoriteIDs())
	}
}

func TestFavoritesUseCase_AddRemove(t *testing.T) {
	uc := newFavorites(t, newMemoryStore())

	_ = uc.AddFavorite(context.Background(), "p1")
	_ = uc.AddFavorite(context.Background(), "p1")
	_ = uc.AddFavorite(context.Background(), "p2")
	if !slices.Equal(uc.FavoriteIDs(), []string{"p1", "p2"}) {
		t.Fatalf("add must be idempotent and keep order, got %v", uc.FavoriteIDs())
	}

	_ = uc.RemoveFavorite(context.Background(), "p1")
	_ = uc.RemoveFavorite(context.Background(), "missing")
	if !slices.Equal(uc.FavoriteIDs(), []string{"p2"}) {
		t.Fatalf("unexpected favorites %v", uc.FavoriteIDs())
	}

	if err := uc.AddFavorite(context.Background(), "  "); !errors.Is(err, ErrInvalidProductID) {
		t.Fatalf("expected ErrInvalidProductID, got %v", err)
	}
	if _, err := uc.ToggleFavorite(context.Background(), ""); !errors.Is(err, ErrInvalidProductID) {
		t.Fatalf("expected ErrInvalidProductID, got %v", err)
	}
}

func TestFavoritesUseCase_LoadDeduplicates(t *testing.T) {
	store := newMemoryStore()
	_ = repository.NewFavoritesRepository(store).Save(context.Background(), []string{"a", "b", "a"})

	uc := newFavorites(t, store)
	if !slices.Equal(uc.FavoriteIDs(), []string{"a", "b"}) {
		t.Fatalf("expected deduplicated ids, got %v", uc.FavoriteIDs())
	}
}

func TestFavoritesUseCase_SaveErrorKeepsState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIFavoritesRepository(ctrl)
	repo.EXPECT().Load(gomock.Any()).Return([]string{"p1"}, nil)
	repo.EXPECT().Save(gomock.Any(), []string{"p1", "p2"}).Return(errors.New("db"))

	uc, err := NewFavoritesUseCase(context.Background(), repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.ToggleFavorite(context.Background(), "p2"); err == nil {
		t.Fatalf("expected error")
	}
	if uc.IsFavorite("p2") || uc.Count() != 1 {
		t.Fatalf("state must not change on save error")
	}
}

func TestFavoritesUseCase_Subscribe(t *testing.T) {
	uc := newFavorites(t, newMemoryStore())

	var counts []int
	unsubscribe := uc.Subscribe(func(ids []string) { counts = append(counts, len(ids)) })
	_, _ = uc.ToggleFavorite(context.Background(), "p1")
	_, _ = uc.ToggleFavorite(context.Background(), "p2")
	unsubscribe()
	_, _ = uc.ToggleFavorite(context.Background(), "p3")

	if !slices.Equal(counts, []int{1, 2}) {
		t.Fatalf("expected [1 2], got %v", counts)
	}
}
