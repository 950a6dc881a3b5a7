package game

import (
	"fmt"
	"time"

	"github.com/samdwyer/aegean/internal/board"
	"github.com/samdwyer/aegean/internal/deck"
	"github.com/samdwyer/aegean/internal/entity"
	"github.com/samdwyer/aegean/internal/gamedata"
	"github.com/samdwyer/aegean/internal/random"
	"github.com/samdwyer/aegean/internal/weather"
)

// Clock tells the engine the time so pending transitions can be stamped.
type Clock interface {
	Now() time.Time
}

// Rules is the static content a game is played with.
type Rules struct {
	Board   *board.Graph
	Cards   []deck.Card
	Ferries *gamedata.FerryRegistry
}

// LoadRules loads the embedded Aegean board, event cards and ferry tiers.
func LoadRules() (Rules, error) {
	g, err := board.Load()
	if err != nil {
		return Rules{}, fmt.Errorf("load board: %w", err)
	}
	cards, err := deck.LoadCards()
	if err != nil {
		return Rules{}, fmt.Errorf("load events: %w", err)
	}
	ferries, err := gamedata.LoadFerryRegistry()
	if err != nil {
		return Rules{}, fmt.Errorf("load ferries: %w", err)
	}
	return Rules{Board: g, Cards: cards, Ferries: ferries}, nil
}

// Engine applies actions to states. It holds only static rules and the
// injected random source and clock; all game data lives in State.
type Engine struct {
	cfg     Config
	graph   *board.Graph
	deck    deck.Deck
	ferries *gamedata.FerryRegistry
	rng     random.Source
	clock   Clock
}

// NewEngine validates rules and builds an engine.
func NewEngine(cfg Config, rules Rules, rng random.Source, clock Clock) (*Engine, error) {
	if rules.Board == nil {
		return nil, fmt.Errorf("engine needs a board")
	}
	if rules.Ferries == nil || rules.Ferries.Starting() == nil {
		return nil, fmt.Errorf("engine needs at least one ferry tier")
	}
	d, err := deck.New(rules.Cards)
	if err != nil {
		return nil, err
	}
	if cfg.MaxDays < 1 {
		return nil, fmt.Errorf("max days must be positive, got %d", cfg.MaxDays)
	}
	if len(cfg.DefaultPlayers) < MinPlayers || len(cfg.DefaultPlayers) > MaxPlayers {
		return nil, fmt.Errorf("default roster must have %d-%d players, got %d",
			MinPlayers, MaxPlayers, len(cfg.DefaultPlayers))
	}

	return &Engine{
		cfg:     cfg,
		graph:   rules.Board,
		deck:    d,
		ferries: rules.Ferries,
		rng:     rng,
		clock:   clock,
	}, nil
}

// Board returns the graph the engine plays on.
func (e *Engine) Board() *board.Graph {
	return e.graph
}

// Ferries returns the ferry tiers on offer.
func (e *Engine) Ferries() *gamedata.FerryRegistry {
	return e.ferries
}

// Initial returns a fresh lobby with the default roster.
func (e *Engine) Initial() State {
	s := State{
		Phase:   PhaseLobby,
		Nodes:   e.graph.Nodes(),
		Day:     1,
		MaxDays: e.cfg.MaxDays,
		Weather: weather.Clear,
		Deck:    e.deck,
		Message: "Welcome to the Aegean! Press Start.",
	}
	for _, name := range e.cfg.DefaultPlayers {
		e.seat(&s, name)
	}
	return s
}

// Reduce applies a to s and returns the resulting state. s is never
// modified. A rejected action returns s unchanged except, for rejections a
// player should see, the status message.
func (e *Engine) Reduce(s State, a Action) (State, Decision) {
	if s.Over() {
		return s, Reject(CodeGameOver, "The summer is over.")
	}
	if _, ok := a.(CompleteTimed); !ok && s.Pending != nil && !cosmetic(a) {
		return s, Reject(CodeBusy, "Hold on, the ferry is busy.")
	}

	var (
		next State
		d    Decision
	)
	switch a := a.(type) {
	case AddPlayer:
		next, d = e.addPlayer(s)
	case RemovePlayer:
		next, d = e.removePlayer(s, a.PlayerID)
	case RenamePlayer:
		next, d = e.renamePlayer(s, a.PlayerID, a.NewName)
	case SetAvatar:
		next, d = e.setAvatar(s, a.PlayerID, a.Avatar)
	case StartGame:
		next, d = e.startGame(s)
	case RequestRoll:
		next, d = e.requestRoll(s)
	case PayBail:
		next, d = e.payBail(s)
	case ChooseDirection:
		next, d = e.chooseDirection(s, a.NodeID)
	case Buy:
		next, d = e.buy(s)
	case Upgrade:
		next, d = e.upgrade(s)
	case SkipAction:
		next, d = e.skipAction(s)
	case EndTurn:
		next, d = e.endTurnAction(s)
	case DismissEvent:
		next, d = e.dismissEvent(s)
	case BuyFerry:
		next, d = e.buyFerry(s, a.FerryID)
	case CompleteTimed:
		next, d = e.completeTimed(s, a.Seq)
	default:
		return s, Reject(CodeUnknownAction, fmt.Sprintf("unknown action %T", a))
	}

	if d.Accepted && next.Pending != nil && (s.Pending == nil || next.Pending.Seq != s.Pending.Seq) {
		scheduled := *next.Pending
		d.Scheduled = &scheduled
	}
	return next, d
}

// cosmetic returns true for actions that never affect play and so are
// allowed while a timed transition is running.
func cosmetic(a Action) bool {
	switch a.(type) {
	case RenamePlayer, SetAvatar:
		return true
	default:
		return false
	}
}

// reject declines an action. When visible is set the message is also shown
// in the status line.
func reject(s State, code, message string, visible bool) (State, Decision) {
	if visible {
		s.Message = message
	}
	return s, Reject(code, message)
}

// wrongPhase rejects an action that is not valid in the current phase.
func wrongPhase(s State, a Action) (State, Decision) {
	return reject(s, CodeWrongPhase, fmt.Sprintf("%s is not allowed during %s", a.Name(), s.Phase), false)
}

// schedule starts a timed transition. The driver completes it later with
// CompleteTimed carrying the same sequence.
func (e *Engine) schedule(s *State, kind TimedKind, d time.Duration) {
	s.TimerSeq++
	s.Pending = &Pending{
		Kind:      kind,
		Seq:       s.TimerSeq,
		StartedAt: e.clock.Now(),
		Duration:  d,
	}
}

// ferry returns the tier a player sails, falling back to the starting tier.
func (e *Engine) ferry(p entity.Player) *gamedata.FerryDef {
	if f := e.ferries.GetByID(p.Ferry); f != nil {
		return f
	}
	return e.ferries.Starting()
}

// completeTimed finishes the pending transition if seq matches it.
func (e *Engine) completeTimed(s State, seq uint64) (State, Decision) {
	if s.Pending == nil || s.Pending.Seq != seq {
		return reject(s, CodeStaleTimer, fmt.Sprintf("no pending timer %d", seq), false)
	}

	next := s.Clone()
	kind := next.Pending.Kind
	next.Pending = nil

	switch kind {
	case TimedRoll:
		e.finishRoll(&next)
	case TimedTransit:
		e.arrive(&next)
	case TimedSettle:
		e.endTurn(&next, "")
	}
	return next, Accept(nil)
}
