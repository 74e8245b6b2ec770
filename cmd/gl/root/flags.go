package root

import (
	"fmt"
	"strconv"
	"strings"

	"gamelife/internal/engine"
)

// parseDelta turns repeated "stat=value" flags into a stat delta, e.g.
// --stat mood=5 --stat stress=-10.
func parseDelta(pairs []string) (engine.Delta, error) {
	var d engine.Delta
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return engine.Delta{}, fmt.Errorf("invalid stat %q, want name=value", pair)
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return engine.Delta{}, fmt.Errorf("invalid stat value %q: %w", pair, err)
		}
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "mood":
			d.Mood = v
		case "money":
			d.Money = v
		case "energy":
			d.Energy = v
		case "motivation":
			d.Motivation = v
		case "stress":
			d.Stress = v
		case "momentum":
			d.Momentum = v
		case "sleep", "sleephours":
			d.SleepHours = v
		default:
			return engine.Delta{}, fmt.Errorf("unknown stat %q", name)
		}
	}
	return d, nil
}
