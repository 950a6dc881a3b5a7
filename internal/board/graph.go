package board

import (
	"errors"
	"fmt"

	"github.com/samdwyer/aegean/internal/gamedata"
)

var (
	// ErrDuplicateNode indicates two nodes share an ID.
	ErrDuplicateNode = errors.New("duplicate node id")
	// ErrDanglingEdge indicates a route references an unknown node.
	ErrDanglingEdge = errors.New("route references unknown node")
	// ErrSelfLoop indicates a route connects a node to itself.
	ErrSelfLoop = errors.New("route connects a node to itself")
	// ErrNoStartNode indicates the board has no START node.
	ErrNoStartNode = errors.New("board has no start node")
)

// Graph is the immutable board: node templates plus adjacency. It is safe to
// share between goroutines once built.
type Graph struct {
	nodes     []Node
	index     map[string]int
	adjacency map[string][]string
	edges     []Edge
	start     string
}

// New validates nodes and edges and builds a graph. Levels below 1 are raised
// to 1 and owners are cleared, so Nodes always returns a fresh board.
// Duplicate edges are collapsed; neighbor order follows edge declaration order.
func New(nodes []Node, edges []Edge) (*Graph, error) {
	g := &Graph{
		nodes:     make([]Node, 0, len(nodes)),
		index:     make(map[string]int, len(nodes)),
		adjacency: make(map[string][]string, len(nodes)),
	}

	for _, n := range nodes {
		if _, dup := g.index[n.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateNode, n.ID)
		}
		if n.Level < 1 {
			n.Level = 1
		}
		if n.Level > MaxLevel {
			n.Level = MaxLevel
		}
		n.Owner = ""
		g.index[n.ID] = len(g.nodes)
		g.nodes = append(g.nodes, n)
		if n.Kind == KindStart && g.start == "" {
			g.start = n.ID
		}
	}
	if g.start == "" {
		return nil, ErrNoStartNode
	}

	seen := make(map[Edge]bool, len(edges))
	for _, e := range edges {
		if e.A == e.B {
			return nil, fmt.Errorf("%w: %s", ErrSelfLoop, e.A)
		}
		for _, id := range []string{e.A, e.B} {
			if _, ok := g.index[id]; !ok {
				return nil, fmt.Errorf("%w: %s-%s (%s)", ErrDanglingEdge, e.A, e.B, id)
			}
		}
		if seen[e] || seen[Edge{A: e.B, B: e.A}] {
			continue
		}
		seen[e] = true
		g.edges = append(g.edges, e)
		g.adjacency[e.A] = append(g.adjacency[e.A], e.B)
		g.adjacency[e.B] = append(g.adjacency[e.B], e.A)
	}

	return g, nil
}

// FromDefs builds a graph from JSON definitions.
func FromDefs(file gamedata.BoardFile) (*Graph, error) {
	nodes := make([]Node, 0, len(file.Nodes))
	for _, def := range file.Nodes {
		kind, ok := ParseKind(def.Kind)
		if !ok {
			return nil, fmt.Errorf("node %s: unknown kind %q", def.ID, def.Kind)
		}
		nodes = append(nodes, Node{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Kind:        kind,
			Price:       def.Price,
			Rent:        def.Rent,
			Level:       1,
		})
	}

	edges := make([]Edge, 0, len(file.Routes))
	for _, r := range file.Routes {
		edges = append(edges, Edge{A: r.From, B: r.To})
	}

	return New(nodes, edges)
}

// Load builds the graph from the embedded board.json.
func Load() (*Graph, error) {
	file, err := gamedata.LoadBoard()
	if err != nil {
		return nil, err
	}
	g, err := FromDefs(file)
	if err != nil {
		return nil, fmt.Errorf("build board: %w", err)
	}
	return g, nil
}

// Nodes returns a fresh copy of the node templates, ready to be owned by a game.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns a copy of the deduplicated edges.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Index returns the position of id in Nodes, or -1 if unknown.
func (g *Graph) Index(id string) int {
	i, ok := g.index[id]
	if !ok {
		return -1
	}
	return i
}

// Neighbors returns the nodes one route away from id.
func (g *Graph) Neighbors(id string) []string {
	adj := g.adjacency[id]
	out := make([]string, len(adj))
	copy(out, adj)
	return out
}

// Adjacent reports whether a route connects a and b.
func (g *Graph) Adjacent(a, b string) bool {
	for _, n := range g.adjacency[a] {
		if n == b {
			return true
		}
	}
	return false
}

// Start returns the ID of the home port.
func (g *Graph) Start() string {
	return g.start
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}
