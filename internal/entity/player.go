// Package entity provides the players sailing the Aegean.
package entity

// JailReason explains why a player is docked.
type JailReason int

const (
	// JailNone means the player is free.
	JailNone JailReason = iota
	// JailTraffic is being stuck on the way to the port.
	JailTraffic
	// JailStrike is a ferry union strike.
	JailStrike
)

// String returns the reason name.
func (r JailReason) String() string {
	switch r {
	case JailNone:
		return "NONE"
	case JailTraffic:
		return "TRAFFIC"
	case JailStrike:
		return "STRIKE"
	default:
		return "UNKNOWN"
	}
}

// ParseJailReason converts a data-file spelling into a JailReason.
// Unknown or empty spellings map to JailTraffic.
func ParseJailReason(s string) JailReason {
	if s == "STRIKE" {
		return JailStrike
	}
	return JailTraffic
}

// Player is one participant. Money is signed: a negative balance is the
// bankruptcy trigger, not an invalid state.
type Player struct {
	ID          string
	Name        string
	Avatar      string // opaque tag, a hex color in the default palette
	Money       int
	Position    string   // node the ferry is docked at
	Destination string   // node being sailed to, "" unless mid-transit
	Owned       []string // node IDs in purchase order, mirrors board ownership
	Jailed      bool
	JailReason  JailReason
	Tourists    int
	Ferry       string // ferry tier ID
}

// NewPlayer creates a free player docked at start.
func NewPlayer(id, name, avatar, start string, money int, ferry string) Player {
	return Player{
		ID:       id,
		Name:     name,
		Avatar:   avatar,
		Money:    money,
		Position: start,
		Ferry:    ferry,
	}
}

// Clone returns a copy that shares no slices with p.
func (p Player) Clone() Player {
	if p.Owned != nil {
		owned := make([]string, len(p.Owned))
		copy(owned, p.Owned)
		p.Owned = owned
	}
	return p
}

// Owns returns true if nodeID is in the player's holdings.
func (p Player) Owns(nodeID string) bool {
	for _, id := range p.Owned {
		if id == nodeID {
			return true
		}
	}
	return false
}

// AddOwned records nodeID as held. Adding a node twice is a no-op.
func (p *Player) AddOwned(nodeID string) {
	if p.Owns(nodeID) {
		return
	}
	p.Owned = append(p.Owned, nodeID)
}

// InTransit returns true while the ferry is between two nodes.
func (p Player) InTransit() bool {
	return p.Destination != ""
}

// Jail docks the player for reason.
func (p *Player) Jail(reason JailReason) {
	if reason == JailNone {
		reason = JailTraffic
	}
	p.Jailed = true
	p.JailReason = reason
}

// Release frees a docked player.
func (p *Player) Release() {
	p.Jailed = false
	p.JailReason = JailNone
}

// SetTourists sets the tourist count, clamping at zero.
func (p *Player) SetTourists(n int) {
	if n < 0 {
		n = 0
	}
	p.Tourists = n
}

// IsBankrupt returns true if the balance is negative.
func (p Player) IsBankrupt() bool {
	return p.Money < 0
}
