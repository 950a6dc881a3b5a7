// Package deck provides the event card deck: typed cards, the shuffled
// draw queue and the resolver that applies card effects to players.
package deck

import (
	"fmt"

	"github.com/samdwyer/aegean/internal/entity"
	"github.com/samdwyer/aegean/internal/gamedata"
)

// Effect is what a card does.
type Effect int

const (
	EffectMoney Effect = iota
	EffectJail
	EffectWeather
)

// String returns the data-file spelling of the effect.
func (e Effect) String() string {
	switch e {
	case EffectMoney:
		return "MONEY"
	case EffectJail:
		return "JAIL"
	case EffectWeather:
		return "WEATHER"
	default:
		return "UNKNOWN"
	}
}

// Target is who a card affects.
type Target int

const (
	TargetSelf Target = iota
	TargetAllOthers
	TargetAll
)

// String returns the data-file spelling of the target.
func (t Target) String() string {
	switch t {
	case TargetSelf:
		return "SELF"
	case TargetAllOthers:
		return "ALL_OTHERS"
	case TargetAll:
		return "ALL"
	default:
		return "UNKNOWN"
	}
}

// Tone is the card's presentation flavor.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneGood
	ToneBad
)

// String returns the data-file spelling of the tone.
func (t Tone) String() string {
	switch t {
	case ToneGood:
		return "GOOD"
	case ToneBad:
		return "BAD"
	default:
		return "NEUTRAL"
	}
}

// Card is an immutable event card.
type Card struct {
	ID          string
	Title       string
	Description string
	Tone        Tone
	Effect      Effect
	Target      Target
	Value       int
	JailReason  entity.JailReason // only meaningful for EffectJail
}

// FromDef converts a JSON definition into a typed card.
func FromDef(def gamedata.EventDef) (Card, error) {
	card := Card{
		ID:          def.ID,
		Title:       def.Title,
		Description: def.Description,
		Value:       def.Value,
	}

	switch def.Effect {
	case "MONEY":
		card.Effect = EffectMoney
	case "JAIL":
		card.Effect = EffectJail
		card.JailReason = entity.ParseJailReason(def.JailReason)
	case "WEATHER":
		card.Effect = EffectWeather
	default:
		return Card{}, fmt.Errorf("card %s: unknown effect %q", def.ID, def.Effect)
	}

	switch def.Target {
	case "SELF", "":
		card.Target = TargetSelf
	case "ALL_OTHERS":
		card.Target = TargetAllOthers
	case "ALL":
		card.Target = TargetAll
	default:
		return Card{}, fmt.Errorf("card %s: unknown target %q", def.ID, def.Target)
	}

	switch def.Tone {
	case "GOOD":
		card.Tone = ToneGood
	case "BAD":
		card.Tone = ToneBad
	default:
		card.Tone = ToneNeutral
	}

	return card, nil
}

// LoadCards builds every card in the embedded events.json.
func LoadCards() ([]Card, error) {
	defs, err := gamedata.LoadEvents()
	if err != nil {
		return nil, err
	}
	cards := make([]Card, 0, len(defs))
	for _, def := range defs {
		card, err := FromDef(def)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}
