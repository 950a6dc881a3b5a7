package game

// Action is a request to change the game. Actions arrive from the UI
// collaborator, except CompleteTimed which the session's scheduler delivers.
type Action interface {
	// Name identifies the action in logs and traces.
	Name() string
}

// AddPlayer adds a seat with a default name and avatar. LOBBY only.
type AddPlayer struct{}

// RemovePlayer removes a seat. LOBBY only.
type RemovePlayer struct{ PlayerID string }

// RenamePlayer changes a display name.
type RenamePlayer struct{ PlayerID, NewName string }

// SetAvatar changes a player's cosmetic avatar tag.
type SetAvatar struct{ PlayerID, Avatar string }

// StartGame shuffles the deck and hands the first turn to seat 0.
type StartGame struct{}

// RequestRoll rolls the die for the current player.
type RequestRoll struct{}

// PayBail buys a jailed player out and rolls immediately.
type PayBail struct{}

// ChooseDirection picks the next node at a branch point.
type ChooseDirection struct{ NodeID string }

// Buy purchases the property the current player stands on.
type Buy struct{}

// Upgrade raises the level of the current player's own property.
type Upgrade struct{}

// SkipAction declines to buy or upgrade.
type SkipAction struct{}

// EndTurn passes the turn from the ACTION phase.
type EndTurn struct{}

// DismissEvent acknowledges the drawn card and passes the turn.
type DismissEvent struct{}

// BuyFerry trades up to another ferry tier at the home port.
type BuyFerry struct{ FerryID string }

// CompleteTimed finishes the pending timed transition with the given sequence.
type CompleteTimed struct{ Seq uint64 }

func (AddPlayer) Name() string       { return "add_player" }
func (RemovePlayer) Name() string    { return "remove_player" }
func (RenamePlayer) Name() string    { return "rename_player" }
func (SetAvatar) Name() string       { return "set_avatar" }
func (StartGame) Name() string       { return "start_game" }
func (RequestRoll) Name() string     { return "request_roll" }
func (PayBail) Name() string         { return "pay_bail" }
func (ChooseDirection) Name() string { return "choose_direction" }
func (Buy) Name() string             { return "buy" }
func (Upgrade) Name() string         { return "upgrade" }
func (SkipAction) Name() string      { return "skip_action" }
func (EndTurn) Name() string         { return "end_turn" }
func (DismissEvent) Name() string    { return "dismiss_event" }
func (BuyFerry) Name() string        { return "buy_ferry" }
func (CompleteTimed) Name() string   { return "complete_timed" }
