package gamedata

// =============================================================================
// EVENT CARD DESIGN
// =============================================================================
//
// Overview:
// ---------
// Event cards are drawn when a player's ferry ends its move on an EVENT node.
// They are defined in events.json and turned into typed cards by the deck
// package at game load.
//
// Core Concepts:
// --------------
//
// 1. Effect - What the card does:
//    - MONEY: adjusts balances by value
//    - JAIL: docks the drawing player (jailReason picks STRIKE or TRAFFIC)
//    - WEATHER: forces the gale immediately
//
// 2. Target - Who the card touches:
//    - SELF: the drawing player only
//    - ALL_OTHERS: every other player pays value to the drawing player
//    - ALL: ALL_OTHERS plus a bank credit of value to the drawing player
//
// 3. Tone - Presentation only (GOOD, BAD, NEUTRAL).
//
// JSON Schema:
// ------------
// {
//   "id": "evt_9",
//   "title": "The Village Wedding",
//   "description": "Everyone must pay you 50€ for the gift envelope.",
//   "tone": "GOOD",
//   "effect": "MONEY",
//   "target": "ALL_OTHERS",
//   "value": 50,
//   "jailReason": ""
// }
//
// Deck Flow:
// ----------
// 1. startGame shuffles every card into the queue
// 2. Landing on an EVENT node pops the head (reshuffling first when empty)
// 3. The effect applies immediately; bankruptcy is checked right after
// 4. dismissEvent clears the card and ends the turn
//
// Telemetry:
// ----------
// - game.action span carries card_id and card_effect attributes when a card is drawn

// EventDef defines an event card loaded from JSON.
type EventDef struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Tone        string `json:"tone"`
	Effect      string `json:"effect"`
	Target      string `json:"target"`
	Value       int    `json:"value"`
	JailReason  string `json:"jailReason,omitempty"`
}

// EventsFile represents the structure of events.json.
type EventsFile struct {
	Events []EventDef `json:"events"`
}

// LoadEvents loads event card definitions from the embedded events.json file.
func LoadEvents() ([]EventDef, error) {
	file, err := Load[EventsFile]("events.json")
	if err != nil {
		return nil, err
	}
	return file.Events, nil
}
