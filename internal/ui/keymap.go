package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/aegean/internal/game"
	"github.com/samdwyer/aegean/internal/gamedata"
)

// Keymap turns key presses into game actions for the current phase.
type Keymap struct {
	shipyard []gamedata.FerryDef
}

// NewKeymap builds a keymap whose shipyard keys 1..n buy the paid ferry
// tiers in registry order.
func NewKeymap(ferries *gamedata.FerryRegistry) *Keymap {
	k := &Keymap{}
	for _, f := range ferries.All() {
		if f.Cost > 0 {
			k.shipyard = append(k.shipyard, f)
		}
	}
	return k
}

// ActionFor returns the action bound to ev in state s. The second result
// is false when the key does nothing in this phase.
func (k *Keymap) ActionFor(s game.State, ev *tcell.EventKey) (game.Action, bool) {
	switch s.Phase {
	case game.PhaseLobby:
		return k.lobby(s, ev)
	case game.PhaseRolling:
		if s.Rolling {
			return nil, false
		}
		switch {
		case isRune(ev, 'r'), isRune(ev, ' '):
			return game.RequestRoll{}, true
		case isRune(ev, 'b'):
			return game.PayBail{}, true
		}
		if i, ok := digit(ev); ok && i < len(k.shipyard) {
			return game.BuyFerry{FerryID: k.shipyard[i].ID}, true
		}
	case game.PhaseChoosingPath:
		if i, ok := digit(ev); ok && i < len(s.ValidBranches) {
			return game.ChooseDirection{NodeID: s.ValidBranches[i]}, true
		}
	case game.PhaseAction:
		if s.Pending != nil {
			return nil, false
		}
		switch {
		case isRune(ev, 'b'):
			return game.Buy{}, true
		case isRune(ev, 'u'):
			return game.Upgrade{}, true
		case isRune(ev, 's'):
			return game.SkipAction{}, true
		case isRune(ev, 'e'), isKey(ev, tcell.KeyEnter):
			return game.EndTurn{}, true
		}
	case game.PhaseEvent:
		if isKey(ev, tcell.KeyEnter) || isRune(ev, ' ') {
			return game.DismissEvent{}, true
		}
	}
	return nil, false
}

func (k *Keymap) lobby(s game.State, ev *tcell.EventKey) (game.Action, bool) {
	switch {
	case isRune(ev, 'a'):
		return game.AddPlayer{}, true
	case isRune(ev, 'd') && len(s.Players) > 0:
		return game.RemovePlayer{PlayerID: s.Players[len(s.Players)-1].ID}, true
	case isRune(ev, 'c') && len(s.Players) > 0:
		// Cycle the last seat's color through the palette.
		last := s.Players[len(s.Players)-1]
		next := gamedata.DefaultAvatar(paletteIndex(last.Avatar) + 1)
		return game.SetAvatar{PlayerID: last.ID, Avatar: next}, true
	case isRune(ev, 's'), isKey(ev, tcell.KeyEnter):
		return game.StartGame{}, true
	}
	return nil, false
}

// Help describes the keys that do something in state s.
func (k *Keymap) Help(s game.State) string {
	switch s.Phase {
	case game.PhaseLobby:
		return "[a] add player  [d] remove last  [c] color  [Enter] start  [q] quit"
	case game.PhaseRolling:
		if s.Rolling {
			return "Rolling..."
		}
		parts := []string{"[r] roll"}
		if p, ok := s.CurrentPlayer(); ok && p.Jailed {
			parts = append(parts, "[b] pay bail")
		}
		for i, f := range k.shipyard {
			parts = append(parts, fmt.Sprintf("[%d] %s %s", i+1, f.Name, game.FormatMoney(f.Cost)))
		}
		return strings.Join(append(parts, "[q] quit"), "  ")
	case game.PhaseMoving:
		return "Sailing..."
	case game.PhaseChoosingPath:
		return fmt.Sprintf("[1-%d] choose route  [q] quit", len(s.ValidBranches))
	case game.PhaseAction:
		if s.Pending != nil {
			return "..."
		}
		return "[b] buy  [u] upgrade  [s] skip  [e] end turn  [q] quit"
	case game.PhaseEvent:
		return "[Enter] continue  [q] quit"
	default:
		return "[q] quit"
	}
}

func isKey(ev *tcell.EventKey, key tcell.Key) bool {
	return ev.Key() == key
}

func isRune(ev *tcell.EventKey, r rune) bool {
	return ev.Key() == tcell.KeyRune && ev.Rune() == r
}

// digit maps keys '1'..'9' to indices 0..8.
func digit(ev *tcell.EventKey) (int, bool) {
	if ev.Key() != tcell.KeyRune || ev.Rune() < '1' || ev.Rune() > '9' {
		return 0, false
	}
	return int(ev.Rune() - '1'), true
}

func paletteIndex(avatar string) int {
	for i, c := range gamedata.AvatarPalette {
		if strings.EqualFold(c, avatar) {
			return i
		}
	}
	return -1
}
