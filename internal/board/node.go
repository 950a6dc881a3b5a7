// Package board provides the static Aegean board graph: islands and the ferry
// routes between them.
package board

// MaxLevel is the highest development level a property can reach.
const MaxLevel = 4

// Kind classifies a node on the board.
type Kind int

const (
	// KindStart is the home port. Landing there refills tourists.
	KindStart Kind = iota
	// KindProperty is an island that can be bought, upgraded and charged rent on.
	KindProperty
	// KindEvent draws an event card on landing.
	KindEvent
)

var kindNames = map[Kind]string{
	KindStart:    "START",
	KindProperty: "PROPERTY",
	KindEvent:    "EVENT",
}

// String returns the data-file spelling of the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// ParseKind converts the data-file spelling into a Kind.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

// Node is a single location. Owner and Level are the only fields that change
// during play; everything else is fixed at load.
type Node struct {
	ID          string
	Name        string
	Description string
	Kind        Kind
	Price       int
	Rent        int
	Level       int    // 1 = basic .. 4 = resort
	Owner       string // player ID, "" when unowned
}

// IsOwned returns true if a player holds the node.
func (n Node) IsOwned() bool {
	return n.Owner != ""
}

// Purchasable returns true if the node is an unowned property.
func (n Node) Purchasable() bool {
	return n.Kind == KindProperty && n.Owner == ""
}

// Edge is an undirected route between two nodes. Every edge costs one step.
type Edge struct {
	A, B string
}

// Other returns the endpoint opposite id, or "" if id is not on the edge.
func (e Edge) Other(id string) string {
	switch id {
	case e.A:
		return e.B
	case e.B:
		return e.A
	default:
		return ""
	}
}
