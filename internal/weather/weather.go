// Package weather models the daily Aegean weather that slows ferries down.
package weather

import "github.com/samdwyer/aegean/internal/random"

// Mode is the weather in effect for the current day.
type Mode int

const (
	// Clear is calm sailing.
	Clear Mode = iota
	// Gale is the storm mode: effective movement is halved, rounded up.
	Gale
	// Heatwave is a rare, cosmetic mode with no rule effect.
	Heatwave
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case Clear:
		return "CLEAR"
	case Gale:
		return "GALE"
	case Heatwave:
		return "HEATWAVE"
	default:
		return "UNKNOWN"
	}
}

// IsStorm returns true if the mode halves movement.
func (m Mode) IsStorm() bool {
	return m == Gale
}

// Params tunes the daily transition.
type Params struct {
	WindowStart    int     // first day of the gale season (inclusive)
	WindowEnd      int     // last day of the gale season (inclusive)
	BaseChance     float64 // gale chance outside the window
	WindowChance   float64 // gale chance inside the window
	Persistence    float64 // chance an active gale carries into the next day
	HeatwaveChance float64 // independent chance of a heatwave overriding the rest
}

// DefaultParams matches an August calendar: days 10-20 are gale season.
var DefaultParams = Params{
	WindowStart:    10,
	WindowEnd:      20,
	BaseChance:     0.2,
	WindowChance:   0.5,
	Persistence:    0.6,
	HeatwaveChance: 0.05,
}

// GaleChance returns the probability of a gale starting on day from clear skies.
func (p Params) GaleChance(day int) float64 {
	if day >= p.WindowStart && day <= p.WindowEnd {
		return p.WindowChance
	}
	return p.BaseChance
}

// Next picks tomorrow's weather from the current mode and the day ending now. It always draws two
// floats from src, storm first and heatwave second, so seeded games replay
// identically regardless of the outcome.
func Next(src random.Source, current Mode, day int, p Params) Mode {
	stormRoll := src.Float64()
	heatRoll := src.Float64()

	next := Clear
	if current == Gale {
		if stormRoll < p.Persistence {
			next = Gale
		}
	} else if stormRoll < p.GaleChance(day) {
		next = Gale
	}

	if heatRoll < p.HeatwaveChance {
		next = Heatwave
	}
	return next
}
