// Package economy settles every money movement in the game: purchases,
// upgrades, rent, fees and the bankruptcy check that follows them.
package economy

import (
	"errors"
	"fmt"

	"github.com/samdwyer/aegean/internal/board"
	"github.com/samdwyer/aegean/internal/entity"
)

var (
	// ErrUnknownNode indicates a node ID not on the board.
	ErrUnknownNode = errors.New("unknown node")
	// ErrUnknownPlayer indicates a player ID not in the game.
	ErrUnknownPlayer = errors.New("unknown player")
	// ErrNotPurchasable indicates the node is owned or is not a property.
	ErrNotPurchasable = errors.New("node is not for sale")
	// ErrInsufficientFunds indicates the player cannot cover the cost.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrNotOwner indicates the player does not hold the node.
	ErrNotOwner = errors.New("player does not own node")
	// ErrMaxLevel indicates the node is already fully upgraded.
	ErrMaxLevel = errors.New("node is at max level")
)

// Ledger operates in place on node and player slices owned by the caller.
// The game passes slices from a freshly cloned state, so a failed operation
// leaves them untouched and a successful one is never visible half-done.
type Ledger struct {
	Nodes   []board.Node
	Players []entity.Player
}

// UpgradeCost returns the price of raising n one level: half its price, rounded down.
func UpgradeCost(n board.Node) int {
	return n.Price / 2
}

// Rent returns floor(rent * 1.5^(level-1)), computed in integers so no
// float rounding can creep in: rent * 3^(level-1) / 2^(level-1).
func Rent(n board.Node) int {
	level := n.Level
	if level < 1 {
		level = 1
	}
	num, den := n.Rent, 1
	for i := 1; i < level; i++ {
		num *= 3
		den *= 2
	}
	return num / den
}

// Buy transfers an unowned property to playerID for its price.
func (l Ledger) Buy(playerID, nodeID string) (int, error) {
	p, err := l.player(playerID)
	if err != nil {
		return 0, err
	}
	n, err := l.node(nodeID)
	if err != nil {
		return 0, err
	}
	if !n.Purchasable() {
		return 0, fmt.Errorf("%w: %s", ErrNotPurchasable, nodeID)
	}
	if p.Money < n.Price {
		return 0, fmt.Errorf("%w: have %d, need %d", ErrInsufficientFunds, p.Money, n.Price)
	}

	p.Money -= n.Price
	n.Owner = p.ID
	p.AddOwned(n.ID)
	return n.Price, nil
}

// Upgrade raises an owned node one level for UpgradeCost.
func (l Ledger) Upgrade(playerID, nodeID string) (int, error) {
	p, err := l.player(playerID)
	if err != nil {
		return 0, err
	}
	n, err := l.node(nodeID)
	if err != nil {
		return 0, err
	}
	if n.Owner != p.ID {
		return 0, fmt.Errorf("%w: %s", ErrNotOwner, nodeID)
	}
	if n.Level >= board.MaxLevel {
		return 0, fmt.Errorf("%w: %s", ErrMaxLevel, nodeID)
	}
	cost := UpgradeCost(*n)
	if p.Money < cost {
		return 0, fmt.Errorf("%w: have %d, need %d", ErrInsufficientFunds, p.Money, cost)
	}

	p.Money -= cost
	n.Level++
	return cost, nil
}

// PayRent moves rent for nodeID from the visitor straight to the owner.
// It returns the amount and the owner ID; both are zero when the node is
// unowned or owned by the visitor. The visitor may go negative.
func (l Ledger) PayRent(visitorID, nodeID string) (int, string, error) {
	visitor, err := l.player(visitorID)
	if err != nil {
		return 0, "", err
	}
	n, err := l.node(nodeID)
	if err != nil {
		return 0, "", err
	}
	if !n.IsOwned() || n.Owner == visitor.ID {
		return 0, "", nil
	}
	owner, err := l.player(n.Owner)
	if err != nil {
		return 0, "", err
	}

	amount := Rent(*n)
	visitor.Money -= amount
	owner.Money += amount
	return amount, owner.ID, nil
}

// Charge debits a fee paid to the bank, refusing if funds are short.
func (l Ledger) Charge(playerID string, amount int) error {
	p, err := l.player(playerID)
	if err != nil {
		return err
	}
	if p.Money < amount {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientFunds, p.Money, amount)
	}
	p.Money -= amount
	return nil
}

// FindBankrupt returns the index of the first player with a negative
// balance in turn order, or -1.
func FindBankrupt(players []entity.Player) int {
	for i, p := range players {
		if p.IsBankrupt() {
			return i
		}
	}
	return -1
}

// Richest returns the index of the player with the most money. Ties go to
// the earlier seat. It returns -1 for no players.
func Richest(players []entity.Player) int {
	best := -1
	for i, p := range players {
		if best < 0 || p.Money > players[best].Money {
			best = i
		}
	}
	return best
}

func (l Ledger) node(id string) (*board.Node, error) {
	for i := range l.Nodes {
		if l.Nodes[i].ID == id {
			return &l.Nodes[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownNode, id)
}

func (l Ledger) player(id string) (*entity.Player, error) {
	for i := range l.Players {
		if l.Players[i].ID == id {
			return &l.Players[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, id)
}
