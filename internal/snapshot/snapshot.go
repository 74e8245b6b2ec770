package snapshot

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"gamelife/internal/clock"
	"gamelife/internal/engine"
)

// CurrentVersion is the schema version of encoded state blobs. Older
// versions load through additive migrations; newer versions are refused.
const CurrentVersion = 4

// Encode serializes the state for storage.
func Encode(st *engine.State) ([]byte, error) {
	data, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return data, nil
}

// Decode parses a stored blob written at the given schema version,
// validates it and migrates it up to the current schema.
func Decode(payload []byte, version int) (*engine.State, error) {
	if version > CurrentVersion {
		return nil, &UnsupportedVersionError{Version: version, Current: CurrentVersion}
	}

	if err := validate(payload); err != nil {
		return nil, err
	}

	var st engine.State
	if err := json.Unmarshal(payload, &st); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	Migrate(&st)
	return &st, nil
}

// validate checks that the document carries the structural keys every
// schema version has had.
func validate(payload []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(payload, &probe); err != nil {
		return fmt.Errorf("decode state: %w", err)
	}
	for _, field := range []string{"currentStats", "days", "quests", "profile"} {
		if _, ok := probe[field]; !ok {
			return &ValidationError{Field: field}
		}
	}
	return nil
}

// Migrate fills in everything older schema versions did not store. All
// migrations are additive; unknown data is never dropped.
func Migrate(st *engine.State) {
	if st.Days == nil {
		st.Days = map[string]*engine.Day{}
	}
	if st.Quests == nil {
		st.Quests = map[string]*engine.Quest{}
	}
	if st.Habits == nil {
		st.Habits = map[string]*engine.Habit{}
	}
	if st.HabitHistory == nil {
		st.HabitHistory = []engine.HabitRecord{}
	}
	if st.QuickActions == nil {
		st.QuickActions = map[string]*engine.QuickAction{}
	}
	if st.QuickActionHistory == nil {
		st.QuickActionHistory = []engine.QuickActionRecord{}
	}
	if st.ShopItems == nil {
		st.ShopItems = map[string]*engine.ShopItem{}
	}
	if st.PurchaseHistory == nil {
		st.PurchaseHistory = []engine.PurchaseRecord{}
	}
	if st.Profile.XPHistory == nil {
		st.Profile.XPHistory = []engine.XPEntry{}
	}

	// v3 added day themes.
	for _, d := range st.Days {
		if !d.Theme.IsValid() {
			d.Theme = engine.DefaultTheme
		}
	}

	// v4 added achievements; earlier saves also miss entries added since.
	if st.Achievements == nil {
		st.Achievements = engine.DefaultAchievements()
	} else {
		for id, a := range engine.DefaultAchievements() {
			if _, ok := st.Achievements[id]; !ok {
				st.Achievements[id] = a
			}
		}
	}
}

// Export is the portable save-file wrapper.
type Export struct {
	Version   int             `json:"version"`
	Timestamp string          `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
	Checksum  string          `json:"checksum"`
}

// ExportState wraps the state in the portable save format.
func ExportState(st *engine.State, now time.Time) ([]byte, error) {
	data, err := Encode(st)
	if err != nil {
		return nil, err
	}
	// Compact marshal keeps the embedded data bytes exactly as hashed.
	out, err := json.Marshal(Export{
		Version:   CurrentVersion,
		Timestamp: clock.ISO(now),
		Data:      data,
		Checksum:  Checksum(data),
	})
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}
	return out, nil
}

// ImportState parses a portable save file. A checksum mismatch is logged
// but does not reject the import; a version from the future does.
func ImportState(raw []byte) (*engine.State, error) {
	var exp Export
	if err := json.Unmarshal(raw, &exp); err != nil {
		return nil, fmt.Errorf("decode export: %w", err)
	}
	if len(exp.Data) == 0 {
		return nil, &ValidationError{Field: "data"}
	}
	if exp.Checksum != "" && exp.Checksum != Checksum(exp.Data) {
		log.Printf("import: checksum mismatch, file may have been edited")
	}
	return Decode(exp.Data, exp.Version)
}

// Checksum is a cheap content fingerprint for export files. It detects
// accidental edits, not tampering.
func Checksum(data []byte) string {
	var h int32
	for _, c := range data {
		h = (h << 5) - h + int32(c)
	}
	if h < 0 {
		h = -h
	}
	return strconv.FormatInt(int64(h), 36)
}
