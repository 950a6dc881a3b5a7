package game

// Phase is the current state of the turn state machine.
type Phase int

const (
	// PhaseLobby is pre-game setup: the roster can change.
	PhaseLobby Phase = iota
	// PhaseRolling waits for the current player to roll (or while the die spins).
	PhaseRolling
	// PhaseMoving is a ferry in transit between two nodes.
	PhaseMoving
	// PhaseChoosingPath is suspended at a branch point until a route is picked.
	PhaseChoosingPath
	// PhaseAction resolves a property landing: buy, upgrade or skip.
	PhaseAction
	// PhaseEvent shows a drawn event card until it is dismissed.
	PhaseEvent
	// PhaseGameOver is terminal. Nothing changes after it.
	PhaseGameOver
)

var phaseNames = map[Phase]string{
	PhaseLobby:        "LOBBY",
	PhaseRolling:      "ROLLING",
	PhaseMoving:       "MOVING",
	PhaseChoosingPath: "CHOOSING_PATH",
	PhaseAction:       "ACTION",
	PhaseEvent:        "EVENT",
	PhaseGameOver:     "GAME_OVER",
}

// String returns the phase name.
func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "UNKNOWN"
}

// TimedKind identifies what a pending timed transition completes.
type TimedKind int

const (
	// TimedRoll is the die spinning.
	TimedRoll TimedKind = iota
	// TimedTransit is a ferry crossing one route.
	TimedTransit
	// TimedSettle is the pause after a transaction before the turn passes.
	TimedSettle
)

// String returns a human-readable timer kind.
func (k TimedKind) String() string {
	switch k {
	case TimedRoll:
		return "roll"
	case TimedTransit:
		return "transit"
	case TimedSettle:
		return "settle"
	default:
		return "unknown"
	}
}

// Reason records why a game ended.
type Reason int

const (
	// ReasonCalendar means the last day of the season passed.
	ReasonCalendar Reason = iota
	// ReasonBankruptcy means a player's balance went negative.
	ReasonBankruptcy
)

// String returns a human-readable reason.
func (r Reason) String() string {
	switch r {
	case ReasonCalendar:
		return "calendar"
	case ReasonBankruptcy:
		return "bankruptcy"
	default:
		return "unknown"
	}
}

// Result is the tagged outcome of a finished game.
type Result struct {
	Reason     Reason
	WinnerID   string // richest player at the end
	BankruptID string // set only for ReasonBankruptcy
}
