package gamedata

import "time"

// FerryDef defines a ferry tier loaded from JSON.
type FerryDef struct {
	ID          string `json:"id"`          // Tier identifier (e.g., "SPEEDBOAT")
	Name        string `json:"name"`        // Display name (e.g., "Speedboat")
	Description string `json:"description"` // Shipyard blurb
	Cost        int    `json:"cost"`        // Price at the shipyard, 0 for the starting tier
	TransitMs   int    `json:"transitMs"`   // Time to cross one route
	Capacity    int    `json:"capacity"`    // Tourists carried after a refill
	BestOfTwo   bool   `json:"bestOfTwo"`   // Rolls two dice and keeps the higher
}

// Transit returns the crossing time for one route.
func (f *FerryDef) Transit() time.Duration {
	return time.Duration(f.TransitMs) * time.Millisecond
}

// FerriesFile represents the structure of ferries.json.
type FerriesFile struct {
	Ferries []FerryDef `json:"ferries"`
}

// LoadFerries loads ferry definitions from the embedded ferries.json file.
func LoadFerries() ([]FerryDef, error) {
	file, err := Load[FerriesFile]("ferries.json")
	if err != nil {
		return nil, err
	}
	return file.Ferries, nil
}
