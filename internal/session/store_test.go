package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(filepath.Join(t.TempDir(), "sessions.db"))
	assert.NoError(t, err)
	return store
}

func TestStore_CreateAndGet(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	sess := Session{
		ID:          "sess-1",
		AccessToken: "token-a",
		Name:        "김관리",
		Role:        "ADMIN",
		CreatedAt:   time.Now(),
		ExpiresAt:   time.Now().Add(time.Hour),
	}
	assert.NoError(t, store.Create(ctx, sess))

	got, ok := store.Get(ctx, "sess-1")
	assert.True(t, ok)
	assert.Equal(t, "token-a", got.AccessToken)
	assert.Equal(t, "ADMIN", got.Role)

	_, ok = store.Get(ctx, "missing")
	assert.False(t, ok)
}

func TestStore_GetDeletesExpiredLazily(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	assert.NoError(t, store.Create(ctx, Session{
		ID:        "old",
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	_, ok := store.Get(ctx, "old")
	assert.False(t, ok)

	// the lazy delete removed the row, not just hid it
	_, ok = store.Get(ctx, "old")
	assert.False(t, ok)
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	assert.NoError(t, store.Create(ctx, Session{ID: "s", ExpiresAt: time.Now().Add(time.Hour)}))
	assert.NoError(t, store.Delete(ctx, "s"))
	assert.NoError(t, store.Delete(ctx, "s"))
	assert.NoError(t, store.Delete(ctx, "never-existed"))
}

func TestStore_DeleteRemovesViewState(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	assert.NoError(t, store.Create(ctx, Session{ID: "s", ExpiresAt: time.Now().Add(time.Hour)}))
	assert.NoError(t, store.SaveViewState(ctx, "s", "request:7", []byte(`{"a":1}`)))

	assert.NoError(t, store.Delete(ctx, "s"))

	_, ok := store.ViewState(ctx, "s", "request:7")
	assert.False(t, ok)
}

func TestStore_ViewStateUpsert(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	assert.NoError(t, store.SaveViewState(ctx, "s", "product:selection", []byte(`[1,2]`)))
	assert.NoError(t, store.SaveViewState(ctx, "s", "product:selection", []byte(`[3]`)))

	got, ok := store.ViewState(ctx, "s", "product:selection")
	assert.True(t, ok)
	assert.Equal(t, []byte(`[3]`), got)

	_, ok = store.ViewState(ctx, "s", "other-view")
	assert.False(t, ok)
}

func TestStore_DeleteExpired(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	assert.NoError(t, store.Create(ctx, Session{ID: "live", ExpiresAt: time.Now().Add(time.Hour)}))
	assert.NoError(t, store.Create(ctx, Session{ID: "dead", ExpiresAt: time.Now().Add(-time.Hour)}))

	assert.NoError(t, store.DeleteExpired(ctx))

	_, ok := store.Get(ctx, "live")
	assert.True(t, ok)
	_, ok = store.Get(ctx, "dead")
	assert.False(t, ok)
}
