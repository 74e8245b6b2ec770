package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// DefaultSlot is the save slot the app reads and writes by default.
const DefaultSlot = "main"

// SaveRecord is one stored state blob. The payload is an opaque versioned
// JSON document; the snapshot package owns its format.
type SaveRecord struct {
	Slot    string
	Version int
	Payload []byte
	SavedAt time.Time
}

type SaveRepo struct {
	db *sql.DB
}

func NewSaveRepo(db *sql.DB) *SaveRepo {
	return &SaveRepo{db: db}
}

// Put upserts the blob for a slot.
func (r *SaveRepo) Put(ctx context.Context, slot string, version int, payload []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO saves (slot, version, payload, saved_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(slot) DO UPDATE SET
			version = excluded.version,
			payload = excluded.payload,
			saved_at = CURRENT_TIMESTAMP
	`, slot, version, payload)
	if err != nil {
		return fmt.Errorf("save put: %w", err)
	}
	return nil
}

// Get loads the blob for a slot. Returns (nil, nil) when the slot is empty.
func (r *SaveRepo) Get(ctx context.Context, slot string) (*SaveRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT slot, version, payload, saved_at
		FROM saves
		WHERE slot = ?
	`, slot)

	var rec SaveRecord
	if err := row.Scan(&rec.Slot, &rec.Version, &rec.Payload, &rec.SavedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("save get: %w", err)
	}
	return &rec, nil
}

// Delete clears a slot.
func (r *SaveRepo) Delete(ctx context.Context, slot string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM saves WHERE slot = ?`, slot); err != nil {
		return fmt.Errorf("save delete: %w", err)
	}
	return nil
}
