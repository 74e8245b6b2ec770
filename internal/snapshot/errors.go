package snapshot

import "fmt"

// ValidationError marks a payload that decoded as JSON but is not a
// plausible state document.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid state: missing %s", e.Field)
}

// UnsupportedVersionError marks a payload written by a newer app version.
// Decoding refuses rather than guessing at unknown fields.
type UnsupportedVersionError struct {
	Version int
	Current int
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("save version %d is newer than supported version %d", e.Version, e.Current)
}
