package sqlitestore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/justyntemme/genart-go/pkg/framework/errors"
	"github.com/justyntemme/genart-go/pkg/framework/state"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "variations.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}

func snapshot(seed string, entries ...state.Entry) *state.Snapshot {
	return &state.Snapshot{
		Seed:    seed,
		SavedAt: time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC),
		Entries: entries,
	}
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(" "); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "variations.db")
	for i := 0; i < 2; i++ {
		store, err := Open(path)
		if err != nil {
			t.Fatalf("open %d: %v", i, err)
		}
		_ = store.Close()
	}
}

func TestCreateGetRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	snap := snapshot("abc", state.Entry{ID: "size", Value: "3"}, state.Entry{ID: "fade", Key: "mode", Value: "exp"})

	if err := store.Create(ctx, "calm", "api-1", snap); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := store.Get(ctx, "calm")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "calm" || got.APIID != "api-1" {
		t.Fatalf("got %+v", got)
	}
	if got.Snapshot.Seed != "abc" || len(got.Snapshot.Entries) != 2 || got.Snapshot.Entries[1].Key != "mode" {
		t.Fatalf("snapshot = %+v", got.Snapshot)
	}
	if got.CreatedAt.IsZero() || !got.CreatedAt.Equal(got.UpdatedAt) {
		t.Fatalf("timestamps = %v %v", got.CreatedAt, got.UpdatedAt)
	}
}

func TestCreateReturnsAlreadyExistsOnDuplicate(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	if err := store.Create(ctx, "calm", "", snapshot("a")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.Create(ctx, "calm", "", snapshot("b")); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("duplicate create error = %v, want ErrAlreadyExists", err)
	}
}

func TestSaveReplaces(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	if err := store.Save(ctx, "calm", "", snapshot("a")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(ctx, "calm", "api-2", snapshot("b", state.Entry{ID: "x", Value: "1"})); err != nil {
		t.Fatalf("save again: %v", err)
	}
	got, err := store.Get(ctx, "calm")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Snapshot.Seed != "b" || got.APIID != "api-2" || len(got.Snapshot.Entries) != 1 {
		t.Fatalf("got %+v", got)
	}
}

func TestGetMissingIsNotFound(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	_, err := store.Get(context.Background(), "nope")
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("get missing error = %v, want not found", err)
	}
}

func TestListAndDelete(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	for _, name := range []string{"b", "a", "c"} {
		if err := store.Create(ctx, name, "", snapshot(name)); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}
	if err := store.Delete(ctx, "c"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete(ctx, "missing"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("list length = %d, want 2", len(list))
	}
	names := map[string]bool{}
	for _, v := range list {
		names[v.Name] = true
	}
	if !names["a"] || !names["b"] {
		t.Fatalf("list = %+v", list)
	}
}

func TestCanceledContext(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := store.Save(ctx, "calm", "", snapshot("a")); !errors.Is(err, context.Canceled) {
		t.Fatalf("save error = %v, want context.Canceled", err)
	}
}
