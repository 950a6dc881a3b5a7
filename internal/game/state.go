// Package game owns the rules of play: the phase state machine, the reducer
// that applies actions to an immutable State, and the Session that
// serializes actions and drives timed transitions.
package game

import (
	"time"

	"github.com/samdwyer/aegean/internal/board"
	"github.com/samdwyer/aegean/internal/deck"
	"github.com/samdwyer/aegean/internal/entity"
	"github.com/samdwyer/aegean/internal/weather"
)

// Pending marks a timed transition in flight. The presentation layer reads
// StartedAt and Duration to pace its animations with the same delays.
type Pending struct {
	Kind      TimedKind
	Seq       uint64
	StartedAt time.Time
	Duration  time.Duration
}

// Deadline returns when the transition completes.
func (p Pending) Deadline() time.Time {
	return p.StartedAt.Add(p.Duration)
}

// State is a complete snapshot of a game. The reducer never mutates a State
// it was given; it returns a new one. Treat the slices as read-only.
type State struct {
	Phase     Phase
	Players   []entity.Player
	Nodes     []board.Node
	TurnIndex int

	Day     int
	MaxDays int
	Weather weather.Mode

	DiceValue      int  // raw face of the last roll, 0 before the first roll of a turn
	Rolling        bool // the die is spinning
	RemainingSteps int
	ValidBranches  []string // candidates while in PhaseChoosingPath
	PreviousNode   string   // last node left, "" at the start of a walk

	DrawnCard *deck.Card
	Deck      deck.Deck

	Pending  *Pending
	TimerSeq uint64 // sequence of the most recently scheduled timer

	NextPlayerSeq int // numeric suffix of the last issued player ID
	Message       string
	Result        *Result
}

// Clone returns a deep copy that shares no mutable memory with s.
func (s State) Clone() State {
	out := s

	out.Players = make([]entity.Player, len(s.Players))
	for i, p := range s.Players {
		out.Players[i] = p.Clone()
	}

	out.Nodes = make([]board.Node, len(s.Nodes))
	copy(out.Nodes, s.Nodes)

	if s.ValidBranches != nil {
		out.ValidBranches = make([]string, len(s.ValidBranches))
		copy(out.ValidBranches, s.ValidBranches)
	}
	if s.DrawnCard != nil {
		card := *s.DrawnCard
		out.DrawnCard = &card
	}
	if s.Pending != nil {
		pending := *s.Pending
		out.Pending = &pending
	}
	if s.Result != nil {
		result := *s.Result
		out.Result = &result
	}
	return out
}

// CurrentPlayer returns the player whose turn it is.
func (s State) CurrentPlayer() (entity.Player, bool) {
	if s.TurnIndex < 0 || s.TurnIndex >= len(s.Players) {
		return entity.Player{}, false
	}
	return s.Players[s.TurnIndex], true
}

// Player returns the player with id.
func (s State) Player(id string) (entity.Player, bool) {
	if i := s.playerIndex(id); i >= 0 {
		return s.Players[i], true
	}
	return entity.Player{}, false
}

// Node returns the node with id.
func (s State) Node(id string) (board.Node, bool) {
	if i := s.nodeIndex(id); i >= 0 {
		return s.Nodes[i], true
	}
	return board.Node{}, false
}

// Over returns true once the game has reached GAME_OVER.
func (s State) Over() bool {
	return s.Phase == PhaseGameOver
}

func (s State) playerIndex(id string) int {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return i
		}
	}
	return -1
}

func (s State) nodeIndex(id string) int {
	for i := range s.Nodes {
		if s.Nodes[i].ID == id {
			return i
		}
	}
	return -1
}

// current returns a pointer to the acting player inside a state being built.
func (s *State) current() *entity.Player {
	return &s.Players[s.TurnIndex]
}
