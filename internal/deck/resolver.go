package deck

import "github.com/samdwyer/aegean/internal/entity"

// EffectResult contains the outcome of applying a card.
type EffectResult struct {
	Success    bool
	Deltas     map[string]int // money change per player ID
	Jailed     bool
	ForceStorm bool // the weather must switch to the gale immediately
	Collected  bool // the actor collected from the other players
	Message    string // set for jail and weather cards; money cards leave wording to the caller
}

// Amount returns the money change of the player with id.
func (r EffectResult) Amount(id string) int {
	return r.Deltas[id]
}

// Debited returns true if any player lost money.
func (r EffectResult) Debited() bool {
	for _, d := range r.Deltas {
		if d < 0 {
			return true
		}
	}
	return false
}

// Apply resolves card for the player at actor, mutating players in place.
// Callers pass a slice they own (the reducer passes a cloned state).
func Apply(card Card, players []entity.Player, actor int) EffectResult {
	if actor < 0 || actor >= len(players) {
		return EffectResult{Success: false, Message: "Invalid player"}
	}

	switch card.Effect {
	case EffectMoney:
		return applyMoney(card, players, actor)
	case EffectJail:
		players[actor].Jail(card.JailReason)
		return EffectResult{
			Success: true,
			Jailed:  true,
			Message: players[actor].Name + " is stuck: " + card.Title + ".",
		}
	case EffectWeather:
		return EffectResult{
			Success:    true,
			ForceStorm: true,
			Message:    card.Title + "! Ferries move at half speed.",
		}
	default:
		return EffectResult{Success: false, Message: "Unknown card effect"}
	}
}

// applyMoney settles a money card in one pass over players.
//
//   - SELF: actor += value
//   - ALL_OTHERS, value > 0: each other player pays value to the actor
//   - ALL, value > 0: as ALL_OTHERS, plus the bank credits the actor value
//   - any other combination: actor += value
func applyMoney(card Card, players []entity.Player, actor int) EffectResult {
	deltas := make(map[string]int, len(players))
	collect := card.Value > 0 && (card.Target == TargetAllOthers || card.Target == TargetAll)

	if !collect {
		players[actor].Money += card.Value
		deltas[players[actor].ID] = card.Value
		return EffectResult{Success: true, Deltas: deltas}
	}

	total := 0
	for i := range players {
		if i == actor {
			continue
		}
		players[i].Money -= card.Value
		deltas[players[i].ID] = -card.Value
		total += card.Value
	}
	if card.Target == TargetAll {
		total += card.Value
	}
	players[actor].Money += total
	deltas[players[actor].ID] = total

	return EffectResult{Success: true, Deltas: deltas, Collected: true}
}
