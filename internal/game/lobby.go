package game

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samdwyer/aegean/internal/entity"
	"github.com/samdwyer/aegean/internal/gamedata"
)

// =============================================================================
// Roster
// =============================================================================

// seat appends a new player docked at the home port. IDs come from a
// monotonic counter, so removing a seat never lets a later one reuse its ID.
func (e *Engine) seat(s *State, name string) {
	s.NextPlayerSeq++
	ferry := e.ferries.Starting()
	p := entity.NewPlayer(
		fmt.Sprintf("p%d", s.NextPlayerSeq),
		name,
		freeAvatar(s.Players),
		e.graph.Start(),
		e.cfg.StartingMoney,
		ferry.ID,
	)
	p.SetTourists(ferry.Capacity)
	s.Players = append(s.Players, p)
}

// freeAvatar returns the first palette color no seated player uses, or
// cycles the palette when every color is taken.
func freeAvatar(players []entity.Player) string {
	for _, c := range gamedata.AvatarPalette {
		taken := slices.ContainsFunc(players, func(p entity.Player) bool {
			return strings.EqualFold(p.Avatar, c)
		})
		if !taken {
			return c
		}
	}
	return gamedata.DefaultAvatar(len(players))
}

func (e *Engine) addPlayer(s State) (State, Decision) {
	if s.Phase != PhaseLobby {
		return wrongPhase(s, AddPlayer{})
	}
	if len(s.Players) >= MaxPlayers {
		return reject(s, CodePlayerLimit, fmt.Sprintf("At most %d players can sail.", MaxPlayers), true)
	}

	next := s.Clone()
	e.seat(&next, fmt.Sprintf("Player %d", len(next.Players)+1))
	next.Message = fmt.Sprintf("%s joins the crew.", next.Players[len(next.Players)-1].Name)
	return next, Accept(nil)
}

func (e *Engine) removePlayer(s State, id string) (State, Decision) {
	if s.Phase != PhaseLobby {
		return wrongPhase(s, RemovePlayer{})
	}
	i := s.playerIndex(id)
	if i < 0 {
		return reject(s, CodeUnknownPlayer, fmt.Sprintf("no player %q", id), false)
	}
	if len(s.Players) <= MinPlayers {
		return reject(s, CodePlayerLimit, fmt.Sprintf("At least %d players are needed.", MinPlayers), true)
	}

	next := s.Clone()
	name := next.Players[i].Name
	next.Players = append(next.Players[:i], next.Players[i+1:]...)
	next.Message = fmt.Sprintf("%s left the crew.", name)
	return next, Accept(nil)
}

func (e *Engine) renamePlayer(s State, id, name string) (State, Decision) {
	name = strings.TrimSpace(name)
	if name == "" {
		return reject(s, CodeInvalidName, "Names cannot be blank.", true)
	}
	i := s.playerIndex(id)
	if i < 0 {
		return reject(s, CodeUnknownPlayer, fmt.Sprintf("no player %q", id), false)
	}

	next := s.Clone()
	next.Players[i].Name = name
	return next, Accept(nil)
}

func (e *Engine) setAvatar(s State, id, avatar string) (State, Decision) {
	avatar = strings.TrimSpace(avatar)
	if avatar == "" {
		return reject(s, CodeInvalidAvatar, "Pick an avatar.", true)
	}
	i := s.playerIndex(id)
	if i < 0 {
		return reject(s, CodeUnknownPlayer, fmt.Sprintf("no player %q", id), false)
	}

	next := s.Clone()
	next.Players[i].Avatar = avatar
	return next, Accept(nil)
}

func (e *Engine) startGame(s State) (State, Decision) {
	if s.Phase != PhaseLobby {
		return wrongPhase(s, StartGame{})
	}
	if len(s.Players) < MinPlayers {
		return reject(s, CodePlayerLimit, fmt.Sprintf("At least %d players are needed.", MinPlayers), true)
	}

	next := s.Clone()
	next.Deck = next.Deck.Shuffled(e.rng)
	next.Phase = PhaseRolling
	next.TurnIndex = 0
	next.Day = 1
	next.Message = fmt.Sprintf("%s. %s's turn!", FormatDay(next.Day, next.MaxDays), next.Players[0].Name)
	return next, Accept(nil)
}
