package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samdwyer/aegean/internal/board"
	"github.com/samdwyer/aegean/internal/deck"
	"github.com/samdwyer/aegean/internal/dice"
	"github.com/samdwyer/aegean/internal/economy"
	"github.com/samdwyer/aegean/internal/entity"
	"github.com/samdwyer/aegean/internal/movement"
	"github.com/samdwyer/aegean/internal/weather"
)

// =============================================================================
// Rolling
// =============================================================================

func (e *Engine) requestRoll(s State) (State, Decision) {
	if s.Phase != PhaseRolling {
		return wrongPhase(s, RequestRoll{})
	}
	next := s.Clone()
	e.startRoll(&next)
	return next, Accept(nil)
}

// startRoll throws the die and starts it spinning. The face is decided now
// and revealed when the roll timer completes.
func (e *Engine) startRoll(s *State) {
	p := s.current()

	var raw int
	switch {
	case p.Jailed:
		raw = dice.Roll(e.rng)
		if p.JailReason == entity.JailStrike {
			s.Message = "Trying to find a scab boat..."
		} else {
			s.Message = "Trying to escape traffic..."
		}
	case e.ferry(*p).BestOfTwo:
		raw = dice.RollBestOfTwo(e.rng)
		s.Message = "Rolling two dice..."
	default:
		raw = dice.Roll(e.rng)
		s.Message = "Rolling..."
	}

	s.DiceValue = raw
	s.Rolling = true
	e.schedule(s, TimedRoll, e.cfg.RollDelay)
}

// finishRoll reveals the face and starts the walk, or keeps a jailed
// player docked.
func (e *Engine) finishRoll(s *State) {
	s.Rolling = false
	p := s.current()
	raw := s.DiceValue

	if p.Jailed {
		if !dice.Releases(raw) {
			s.Message = fmt.Sprintf("Rolled %d. Still stuck.", raw)
			e.schedule(s, TimedSettle, e.cfg.JailSettle)
			return
		}
		p.Release()
		s.Message = fmt.Sprintf("Rolled a %d! You're free!", raw)
		e.beginWalk(s, raw)
		return
	}

	steps := dice.Effective(raw, s.Weather)
	if steps != raw {
		s.Message = fmt.Sprintf("Rolled a %d (%s: half speed)!", raw, s.Weather)
	} else {
		s.Message = fmt.Sprintf("Rolled a %d!", raw)
	}
	e.beginWalk(s, steps)
}

func (e *Engine) payBail(s State) (State, Decision) {
	if s.Phase != PhaseRolling {
		return wrongPhase(s, PayBail{})
	}
	p, _ := s.CurrentPlayer()
	if !p.Jailed {
		return reject(s, CodeNotJailed, fmt.Sprintf("%s is free to sail.", p.Name), false)
	}

	next := s.Clone()
	ledger := economy.Ledger{Nodes: next.Nodes, Players: next.Players}
	if err := ledger.Charge(p.ID, e.cfg.Bail); err != nil {
		return reject(s, CodeInsufficientFunds, "Not enough money to pay!", true)
	}
	next.current().Release()
	e.startRoll(&next)
	next.Message = fmt.Sprintf("Paid %s bribe. You are free.", FormatMoney(e.cfg.Bail))
	return next, Accept(nil)
}

// =============================================================================
// Movement
// =============================================================================

// beginWalk gives the current player a step budget and takes the first step.
func (e *Engine) beginWalk(s *State, steps int) {
	s.RemainingSteps = steps
	s.PreviousNode = ""
	s.Phase = PhaseMoving
	e.step(s)
}

// step advances the walk by at most one edge. It either starts a transit,
// suspends at a branch point, or lands.
func (e *Engine) step(s *State) {
	p := s.current()
	st := movement.Next(e.graph, p.Position, s.PreviousNode, s.RemainingSteps)

	switch st.Kind {
	case movement.StepMove:
		e.sail(s, st.Target)
	case movement.StepChoose:
		s.Phase = PhaseChoosingPath
		s.ValidBranches = st.Candidates
		s.Message = "Choose your route!"
	case movement.StepLand:
		s.RemainingSteps = 0
		e.land(s)
	}
}

// sail puts the current ferry in transit towards target.
func (e *Engine) sail(s *State, target string) {
	p := s.current()
	p.Destination = target
	s.Phase = PhaseMoving
	s.ValidBranches = nil
	e.schedule(s, TimedTransit, e.ferry(*p).Transit())
}

// arrive completes a transit and continues the walk.
func (e *Engine) arrive(s *State) {
	p := s.current()
	s.PreviousNode = p.Position
	p.Position = p.Destination
	p.Destination = ""
	if s.RemainingSteps > 0 {
		s.RemainingSteps--
	}
	e.step(s)
}

func (e *Engine) chooseDirection(s State, nodeID string) (State, Decision) {
	if s.Phase != PhaseChoosingPath {
		return wrongPhase(s, ChooseDirection{})
	}
	if !movement.Valid(s.ValidBranches, nodeID) {
		return reject(s, CodeInvalidBranch, fmt.Sprintf("%q is not an open route", nodeID), false)
	}

	next := s.Clone()
	e.sail(&next, nodeID)
	next.Message = fmt.Sprintf("Sailing to %s.", e.nodeName(nodeID))
	return next, Accept(nil)
}

// =============================================================================
// Landing
// =============================================================================

// land resolves the node the current player's walk ended on.
func (e *Engine) land(s *State) {
	p := s.current()
	i := s.nodeIndex(p.Position)
	if i < 0 {
		e.endTurn(s, "")
		return
	}
	n := s.Nodes[i]

	switch n.Kind {
	case board.KindEvent:
		e.drawEvent(s)

	case board.KindProperty:
		s.Phase = PhaseAction
		switch n.Owner {
		case "":
			s.Message = fmt.Sprintf("Landed on %s. Buy for %s?", n.Name, FormatMoney(n.Price))
		case p.ID:
			s.Message = fmt.Sprintf("Welcome back to %s. Upgrade for %s?", n.Name, FormatMoney(economy.UpgradeCost(n)))
		default:
			e.payRent(s, n)
		}

	default:
		if n.Kind == board.KindStart {
			p.SetTourists(e.ferry(*p).Capacity)
		}
		e.endTurn(s, fmt.Sprintf("Relaxing at %s.", n.Name))
	}
}

// payRent settles rent in one step, then either ends the game or schedules
// the turn to pass.
func (e *Engine) payRent(s *State, n board.Node) {
	p := s.current()
	ledger := economy.Ledger{Nodes: s.Nodes, Players: s.Players}
	amount, ownerID, err := ledger.PayRent(p.ID, n.ID)
	if err != nil {
		s.Message = fmt.Sprintf("Could not settle rent on %s.", n.Name)
		return
	}

	owner, _ := s.Player(ownerID)
	s.Message = fmt.Sprintf("Paid %s rent to %s.", FormatMoney(amount), owner.Name)
	if e.checkBankruptcy(s) {
		return
	}
	e.schedule(s, TimedSettle, e.cfg.RentSettle)
}

// drawEvent draws the next card and applies it to the current player.
func (e *Engine) drawEvent(s *State) {
	card, rest := s.Deck.Draw(e.rng)
	s.Deck = rest
	s.DrawnCard = &card
	s.Phase = PhaseEvent

	res := deck.Apply(card, s.Players, s.TurnIndex)
	s.Message = res.Message
	if card.Effect == deck.EffectMoney {
		s.Message = moneyCardMessage(card, s.Players[s.TurnIndex], res)
	}
	if res.ForceStorm {
		s.Weather = weather.Gale
	}
	if res.Debited() {
		e.checkBankruptcy(s)
	}
}

// moneyCardMessage describes what a money card did to the actor.
func moneyCardMessage(card deck.Card, actor entity.Player, res deck.EffectResult) string {
	amount := res.Amount(actor.ID)
	if res.Collected {
		return fmt.Sprintf("%s: %s collects %s.", card.Title, actor.Name, FormatMoney(amount))
	}
	sign := ""
	if amount > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s: %s%s for %s.", card.Title, sign, FormatMoney(amount), actor.Name)
}

func (e *Engine) dismissEvent(s State) (State, Decision) {
	if s.Phase != PhaseEvent {
		return wrongPhase(s, DismissEvent{})
	}
	next := s.Clone()
	next.DrawnCard = nil
	e.endTurn(&next, "")
	return next, Accept(nil)
}

// =============================================================================
// Transactions
// =============================================================================

func (e *Engine) buy(s State) (State, Decision) {
	if s.Phase != PhaseAction {
		return wrongPhase(s, Buy{})
	}

	next := s.Clone()
	p := next.current()
	ledger := economy.Ledger{Nodes: next.Nodes, Players: next.Players}
	cost, err := ledger.Buy(p.ID, p.Position)
	if err != nil {
		return rejectLedger(s, err)
	}

	next.Message = fmt.Sprintf("Bought %s for %s!", e.nodeName(p.Position), FormatMoney(cost))
	e.schedule(&next, TimedSettle, e.cfg.BuySettle)
	return next, Accept(nil)
}

func (e *Engine) upgrade(s State) (State, Decision) {
	if s.Phase != PhaseAction {
		return wrongPhase(s, Upgrade{})
	}

	next := s.Clone()
	p := next.current()
	ledger := economy.Ledger{Nodes: next.Nodes, Players: next.Players}
	if _, err := ledger.Upgrade(p.ID, p.Position); err != nil {
		return rejectLedger(s, err)
	}

	n, _ := next.Node(p.Position)
	next.Message = fmt.Sprintf("Upgraded %s to level %d!", n.Name, n.Level)
	e.schedule(&next, TimedSettle, e.cfg.BuySettle)
	return next, Accept(nil)
}

// rejectLedger maps economy errors onto rejection codes.
func rejectLedger(s State, err error) (State, Decision) {
	switch {
	case errors.Is(err, economy.ErrInsufficientFunds):
		return reject(s, CodeInsufficientFunds, "Not enough Euros!", true)
	case errors.Is(err, economy.ErrNotPurchasable):
		return reject(s, CodeNotPurchasable, "This island is not for sale.", true)
	case errors.Is(err, economy.ErrNotOwner):
		return reject(s, CodeNotOwner, "You don't own this island.", true)
	case errors.Is(err, economy.ErrMaxLevel):
		return reject(s, CodeMaxLevel, "Max level reached!", true)
	default:
		return reject(s, CodeUnknownPlayer, err.Error(), false)
	}
}

func (e *Engine) skipAction(s State) (State, Decision) {
	if s.Phase != PhaseAction {
		return wrongPhase(s, SkipAction{})
	}
	next := s.Clone()
	e.endTurn(&next, fmt.Sprintf("%s sails on.", next.current().Name))
	return next, Accept(nil)
}

func (e *Engine) endTurnAction(s State) (State, Decision) {
	if s.Phase != PhaseAction {
		return wrongPhase(s, EndTurn{})
	}
	next := s.Clone()
	e.endTurn(&next, "")
	return next, Accept(nil)
}

func (e *Engine) buyFerry(s State, ferryID string) (State, Decision) {
	if s.Phase != PhaseRolling {
		return wrongPhase(s, BuyFerry{})
	}
	tier := e.ferries.GetByID(ferryID)
	if tier == nil {
		return reject(s, CodeUnknownFerry, fmt.Sprintf("no ferry tier %q", ferryID), false)
	}
	p, _ := s.CurrentPlayer()
	if p.Position != e.graph.Start() {
		return reject(s, CodeNotAtStart, "The shipyard is at the home port.", true)
	}
	if p.Ferry == tier.ID {
		return reject(s, CodeNotPurchasable, fmt.Sprintf("You already sail the %s.", tier.Name), true)
	}

	next := s.Clone()
	ledger := economy.Ledger{Nodes: next.Nodes, Players: next.Players}
	if err := ledger.Charge(p.ID, tier.Cost); err != nil {
		return reject(s, CodeInsufficientFunds, "Not enough Euros!", true)
	}
	cur := next.current()
	cur.Ferry = tier.ID
	cur.SetTourists(tier.Capacity)
	next.Message = fmt.Sprintf("%s now sails the %s.", cur.Name, tier.Name)
	return next, Accept(nil)
}

// =============================================================================
// Turn order and termination
// =============================================================================

// endTurn passes the turn to the next seat. Wrapping to seat 0 starts a new
// day with weather drawn from the day just finished; wrapping past the last
// day ends the game.
func (e *Engine) endTurn(s *State, prefix string) {
	if s.Over() {
		return
	}

	nextIndex := (s.TurnIndex + 1) % len(s.Players)
	if nextIndex == 0 {
		if s.Day >= s.MaxDays {
			winner := s.Players[economy.Richest(s.Players)]
			e.finish(s, Result{Reason: ReasonCalendar, WinnerID: winner.ID})
			s.Message = joinMessage(prefix, fmt.Sprintf("Summer is over! %s wins with %s.", winner.Name, FormatMoney(winner.Money)))
			return
		}
		s.Weather = weather.Next(e.rng, s.Weather, s.Day, e.cfg.Weather)
		s.Day++
	}

	s.TurnIndex = nextIndex
	s.Phase = PhaseRolling
	s.DiceValue = 0
	s.Rolling = false
	s.RemainingSteps = 0
	s.ValidBranches = nil
	s.PreviousNode = ""
	s.DrawnCard = nil
	s.Pending = nil
	s.Message = joinMessage(prefix, fmt.Sprintf("%s's turn to roll.", s.Players[nextIndex].Name))
}

// checkBankruptcy ends the game if any player's balance is negative.
func (e *Engine) checkBankruptcy(s *State) bool {
	i := economy.FindBankrupt(s.Players)
	if i < 0 {
		return false
	}
	bankrupt := s.Players[i]
	winner := s.Players[economy.Richest(s.Players)]
	e.finish(s, Result{Reason: ReasonBankruptcy, WinnerID: winner.ID, BankruptID: bankrupt.ID})
	s.Message = fmt.Sprintf("GAME OVER! %s went bankrupt!", bankrupt.Name)
	return true
}

// finish moves to the terminal phase.
func (e *Engine) finish(s *State, result Result) {
	s.Phase = PhaseGameOver
	s.Result = &result
	s.Pending = nil
	s.Rolling = false
	s.ValidBranches = nil
	s.RemainingSteps = 0
}

func (e *Engine) nodeName(id string) string {
	if i := e.graph.Index(id); i >= 0 {
		return e.graph.Nodes()[i].Name
	}
	return id
}

func joinMessage(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
