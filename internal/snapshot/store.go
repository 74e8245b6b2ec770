package snapshot

import (
	"context"

	"gamelife/internal/engine"
	"gamelife/internal/storage"
)

// Store persists state blobs through the save repo. It implements
// engine.Persister.
type Store struct {
	repo *storage.SaveRepo
	slot string
}

func NewStore(repo *storage.SaveRepo) *Store {
	return &Store{repo: repo, slot: storage.DefaultSlot}
}

func (s *Store) Save(ctx context.Context, st *engine.State) error {
	payload, err := Encode(st)
	if err != nil {
		return err
	}
	return s.repo.Put(ctx, s.slot, CurrentVersion, payload)
}

// Load reads and migrates the stored state. Returns (nil, nil) on first
// run, when no save exists yet.
func (s *Store) Load(ctx context.Context) (*engine.State, error) {
	rec, err := s.repo.Get(ctx, s.slot)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	return Decode(rec.Payload, rec.Version)
}
