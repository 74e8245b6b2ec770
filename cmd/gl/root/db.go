package root

import (
	"context"
	"time"

	"gamelife/internal/config"
	"gamelife/internal/engine"
	"gamelife/internal/snapshot"
	"gamelife/internal/storage"
)

// openService wires the full stack: config → sqlite → snapshot store →
// engine. A fresh state is seeded on first run. The returned cleanup
// closes the database.
func openService(ctx context.Context) (*engine.Service, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	path := cfg.DBPath
	if path == "" {
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, nil, err
		}
	}
	db, err := storage.OpenSQLite(path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}

	store := snapshot.NewStore(storage.NewSaveRepo(db))
	st, err := store.Load(ctx)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	if st == nil {
		st = engine.NewState(time.Now())
	}
	svc := engine.NewService(st, store)

	svc.TouchTime()
	svc.RegisterActivity()
	svc.SyncDayForToday()
	return svc, cleanup, nil
}
