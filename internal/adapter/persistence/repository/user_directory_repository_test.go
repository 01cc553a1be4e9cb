package repository

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entities"
)

func TestUserDirectoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("users and session round trip", func(t *testing.T) {
		repo := NewUserDirectoryRepository(NewMemoryKVStore(""))
		created := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
		users := []entities.RegisteredUser{{ID: "u1", Email: "a@b.co", Name: "Ana", Password: "pw", CreatedAt: created}}

		if err := repo.SaveUsers(ctx, users); err != nil {
			t.Fatalf("save users: %v", err)
		}
		got, err := repo.LoadUsers(ctx)
		if err != nil || len(got) != 1 || got[0].Password != "pw" {
			t.Fatalf("unexpected users %+v err=%v", got, err)
		}

		if err := repo.SaveSession(ctx, users[0].Public()); err != nil {
			t.Fatalf("save session: %v", err)
		}
		u, err := repo.LoadSession(ctx)
		if err != nil || u == nil || u.ID != "u1" {
			t.Fatalf("unexpected session %+v err=%v", u, err)
		}

		if err := repo.ClearSession(ctx); err != nil {
			t.Fatalf("clear: %v", err)
		}
		if u, _ := repo.LoadSession(ctx); u != nil {
			t.Fatalf("expected no session")
		}
		if got, _ := repo.LoadUsers(ctx); len(got) != 1 {
			t.Fatalf("sign out must keep users")
		}
	})

	t.Run("corrupt session is cleared", func(t *testing.T) {
		store := NewMemoryKVStore("")
		_ = store.Set(ctx, KeyAuthUser, `{"id":"legacy"}`)
		repo := NewUserDirectoryRepository(store)

		u, err := repo.LoadSession(ctx)
		if err != nil || u != nil {
			t.Fatalf("expected nil session without error, got %+v err=%v", u, err)
		}
		if _, found, _ := store.Get(ctx, KeyAuthUser); found {
			t.Fatalf("expected corrupt session removed from store")
		}
	})
}
