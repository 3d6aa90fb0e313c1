package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "contacts.sqlite"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestMarkUnmark(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	contacted, err := store.IsContacted(ctx, "acme")
	if err != nil {
		t.Fatalf("IsContacted failed: %v", err)
	}
	if contacted {
		t.Fatal("fresh store should have no contacted records")
	}

	at := time.UnixMilli(1700000000000)
	if err := store.Mark(ctx, "acme", at); err != nil {
		t.Fatalf("Mark failed: %v", err)
	}

	contacted, err = store.IsContacted(ctx, "acme")
	if err != nil || !contacted {
		t.Fatalf("expected contacted after Mark, got %v, %v", contacted, err)
	}

	m, err := store.ContactedMap(ctx)
	if err != nil {
		t.Fatalf("ContactedMap failed: %v", err)
	}
	if m["acme"] != at.UnixMilli() {
		t.Fatalf("stored timestamp = %d, want %d", m["acme"], at.UnixMilli())
	}

	// Re-marking overwrites the timestamp.
	later := at.Add(time.Hour)
	if err := store.Mark(ctx, "acme", later); err != nil {
		t.Fatalf("second Mark failed: %v", err)
	}
	m, _ = store.ContactedMap(ctx)
	if m["acme"] != later.UnixMilli() {
		t.Fatalf("timestamp not overwritten: %d", m["acme"])
	}

	if err := store.Unmark(ctx, "acme"); err != nil {
		t.Fatalf("Unmark failed: %v", err)
	}
	contacted, _ = store.IsContacted(ctx, "acme")
	if contacted {
		t.Fatal("expected not contacted after Unmark")
	}

	// Unmarking an unknown identifier is a no-op.
	if err := store.Unmark(ctx, "never-seen"); err != nil {
		t.Fatalf("Unmark of unknown id failed: %v", err)
	}
}

func TestCount(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if err := store.Mark(ctx, id, time.Now()); err != nil {
			t.Fatalf("Mark failed: %v", err)
		}
	}

	n, err := store.Count(ctx)
	if err != nil || n != 3 {
		t.Fatalf("Count = %d, %v; want 3", n, err)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	src := openTestStore(t)
	ctx := context.Background()

	if err := src.Mark(ctx, "acme", time.UnixMilli(1700000000000)); err != nil {
		t.Fatalf("Mark failed: %v", err)
	}
	if err := src.Mark(ctx, "beta", time.UnixMilli(1700000001000)); err != nil {
		t.Fatalf("Mark failed: %v", err)
	}

	data, err := src.ExportJSON(ctx)
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	dst := openTestStore(t)
	if err := dst.ImportJSON(ctx, data); err != nil {
		t.Fatalf("ImportJSON failed: %v", err)
	}

	want, _ := src.ContactedMap(ctx)
	got, err := dst.ContactedMap(ctx)
	if err != nil {
		t.Fatalf("ContactedMap failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("round trip lost entries: %v vs %v", got, want)
	}
	for id, at := range want {
		if got[id] != at {
			t.Fatalf("entry %q = %d, want %d", id, got[id], at)
		}
	}
}

func TestImportJSONRejectsGarbage(t *testing.T) {
	store := openTestStore(t)
	if err := store.ImportJSON(context.Background(), []byte("not json")); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}
