package game

import (
	"time"

	"github.com/samdwyer/aegean/internal/weather"
)

// Player roster limits.
const (
	MinPlayers = 2
	MaxPlayers = 4
)

// Config holds the rule parameters of a game.
type Config struct {
	// Seed for random number generation. Used for reproducible dice, weather
	// and deck order. A seed of 0 means a random seed will be generated.
	Seed int64

	MaxDays       int // length of the season
	StartingMoney int
	Bail          int // cost of buying a jailed player out

	RollDelay  time.Duration // die spin
	BuySettle  time.Duration // pause after a purchase or upgrade
	RentSettle time.Duration // pause after paying rent
	JailSettle time.Duration // pause after a failed escape roll

	Weather weather.Params

	// DefaultPlayers names the seats present when the lobby opens.
	DefaultPlayers []string
}

// DefaultConfig returns the standard August season.
func DefaultConfig() Config {
	return Config{
		MaxDays:        31,
		StartingMoney:  1000,
		Bail:           50,
		RollDelay:      1500 * time.Millisecond,
		BuySettle:      1500 * time.Millisecond,
		RentSettle:     3 * time.Second,
		JailSettle:     2 * time.Second,
		Weather:        weather.DefaultParams,
		DefaultPlayers: []string{"Kamaki", "Tourist"},
	}
}
