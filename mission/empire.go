package mission

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/c3po/empire"
)

// empireJSON mirrors the empire.json document.
type empireJSON struct {
	Countdown     *int           `json:"countdown"`
	BountyHunters []sightingJSON `json:"bounty_hunters"`
}

type sightingJSON struct {
	Planet string `json:"planet"`
	Day    int    `json:"day"`
}

// LoadEmpire reads and decodes an empire.json file into validated intel.
// Structural failures return a wrapped ErrParse; semantic violations
// surface as the empire package's sentinel errors.
func LoadEmpire(path string) (*empire.Intel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	var doc empireJSON
	if err = json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	if doc.Countdown == nil {
		return nil, fmt.Errorf("%w: %s: missing required field %q", ErrParse, path, "countdown")
	}

	intel := &empire.Intel{
		Countdown: *doc.Countdown,
		Sightings: make([]empire.Sighting, len(doc.BountyHunters)),
	}
	for i, h := range doc.BountyHunters {
		intel.Sightings[i] = empire.Sighting{Planet: h.Planet, Day: h.Day}
	}
	if err = intel.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return intel, nil
}
