package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestRepo(t *testing.T) *SaveRepo {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewSaveRepo(db)
}

func TestPutGetRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Put(ctx, DefaultSlot, 4, []byte(`{"hello":"world"}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	rec, err := repo.Get(ctx, DefaultSlot)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec == nil {
		t.Fatalf("Get returned nil for existing slot")
	}
	if rec.Version != 4 || string(rec.Payload) != `{"hello":"world"}` {
		t.Fatalf("record = %+v", rec)
	}
}

func TestPutOverwritesSlot(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Put(ctx, DefaultSlot, 3, []byte(`old`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := repo.Put(ctx, DefaultSlot, 4, []byte(`new`)); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	rec, err := repo.Get(ctx, DefaultSlot)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.Version != 4 || string(rec.Payload) != "new" {
		t.Fatalf("record after overwrite = %+v", rec)
	}
}

func TestGetEmptySlot(t *testing.T) {
	repo := newTestRepo(t)
	rec, err := repo.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec != nil {
		t.Fatalf("record for empty slot = %+v, want nil", rec)
	}
}
