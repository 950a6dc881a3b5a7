package game

import (
	"testing"
	"time"

	"github.com/samdwyer/aegean/internal/board"
	"github.com/samdwyer/aegean/internal/clock"
	"github.com/samdwyer/aegean/internal/deck"
	"github.com/samdwyer/aegean/internal/gamedata"
	"github.com/samdwyer/aegean/internal/random/randomtest"
)

var testEpoch = time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

// testBoard builds:
//
//	home - n1 - n2 - n3 - n4 - sea
//	                        \
//	                         x
func testBoard(t *testing.T) *board.Graph {
	t.Helper()
	nodes := []board.Node{
		{ID: "home", Name: "Home Port", Kind: board.KindStart},
		{ID: "n1", Name: "Tinos", Kind: board.KindProperty, Price: 100, Rent: 10},
		{ID: "n2", Name: "Naxos", Kind: board.KindProperty, Price: 200, Rent: 20},
		{ID: "n3", Name: "Syros", Kind: board.KindProperty, Price: 150, Rent: 15},
		{ID: "n4", Name: "Hydra", Kind: board.KindProperty, Price: 300, Rent: 30},
		{ID: "sea", Name: "Open Sea", Kind: board.KindEvent},
		{ID: "x", Name: "Kea", Kind: board.KindProperty, Price: 120, Rent: 12},
	}
	edges := []board.Edge{
		{A: "home", B: "n1"}, {A: "n1", B: "n2"}, {A: "n2", B: "n3"}, {A: "n3", B: "n4"},
		{A: "n4", B: "sea"}, {A: "n4", B: "x"},
	}
	g, err := board.New(nodes, edges)
	if err != nil {
		t.Fatalf("board.New() error = %v", err)
	}
	return g
}

var coinCard = deck.Card{ID: "coin", Title: "Found a Coin", Effect: deck.EffectMoney, Target: deck.TargetSelf, Value: 10}

type harness struct {
	t   *testing.T
	eng *Engine
	clk *clock.Virtual
	rng *randomtest.Scripted
	s   State
}

type harnessOption func(*Config, *Rules)

func withCards(cards ...deck.Card) harnessOption {
	return func(_ *Config, r *Rules) { r.Cards = cards }
}

func withPlayers(names ...string) harnessOption {
	return func(c *Config, _ *Rules) { c.DefaultPlayers = names }
}

func withBoard(g *board.Graph) harnessOption {
	return func(_ *Config, r *Rules) { r.Board = g }
}

func withMaxDays(n int) harnessOption {
	return func(c *Config, _ *Rules) { c.MaxDays = n }
}

// newHarness builds an engine on the test board. Dice faces come from
// faces in order; anything unscripted falls back to a fixed seed.
func newHarness(t *testing.T, faces []int, opts ...harnessOption) *harness {
	t.Helper()

	ferries, err := gamedata.LoadFerryRegistry()
	if err != nil {
		t.Fatalf("LoadFerryRegistry() error = %v", err)
	}
	cfg := DefaultConfig()
	rules := Rules{Board: testBoard(t), Cards: []deck.Card{coinCard}, Ferries: ferries}
	for _, opt := range opts {
		opt(&cfg, &rules)
	}

	ints := make([]int, len(faces))
	for i, f := range faces {
		ints[i] = f - 1
	}
	rng := &randomtest.Scripted{Ints: ints}
	clk := clock.NewVirtual(testEpoch)

	eng, err := NewEngine(cfg, rules, rng, clk)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return &harness{t: t, eng: eng, clk: clk, rng: rng, s: eng.Initial()}
}

// do reduces a into the harness state.
func (h *harness) do(a Action) Decision {
	h.t.Helper()
	next, d := h.eng.Reduce(h.s, a)
	h.s = next
	return d
}

// must reduces a and fails the test if it is rejected.
func (h *harness) must(a Action) Decision {
	h.t.Helper()
	d := h.do(a)
	if !d.Accepted {
		h.t.Fatalf("%s rejected: %+v (phase %s)", a.Name(), d.Rejection, h.s.Phase)
	}
	return d
}

// complete delivers the pending timer.
func (h *harness) complete() Decision {
	h.t.Helper()
	if h.s.Pending == nil {
		h.t.Fatalf("no pending timer in phase %s", h.s.Phase)
	}
	return h.must(CompleteTimed{Seq: h.s.Pending.Seq})
}

// walk completes roll and transit timers until the walk suspends or lands.
func (h *harness) walk() {
	h.t.Helper()
	for h.s.Pending != nil && (h.s.Pending.Kind == TimedRoll || h.s.Pending.Kind == TimedTransit) {
		h.complete()
	}
}

// roll requests a roll and walks it out.
func (h *harness) roll() {
	h.t.Helper()
	h.must(RequestRoll{})
	h.walk()
}

// own gives nodeID to playerID at level.
func (h *harness) own(nodeID, playerID string, level int) {
	h.t.Helper()
	i := h.s.nodeIndex(nodeID)
	p := h.s.playerIndex(playerID)
	if i < 0 || p < 0 {
		h.t.Fatalf("own(%s, %s): unknown id", nodeID, playerID)
	}
	h.s = h.s.Clone()
	h.s.Nodes[i].Owner = playerID
	h.s.Nodes[i].Level = level
	h.s.Players[p].AddOwned(nodeID)
}

// set edits the current state through a clone.
func (h *harness) set(fn func(*State)) {
	h.s = h.s.Clone()
	fn(&h.s)
}

func (h *harness) position(i int) string {
	return h.s.Players[i].Position
}

func (h *harness) money(i int) int {
	return h.s.Players[i].Money
}

func (h *harness) node(id string) board.Node {
	n, ok := h.s.Node(id)
	if !ok {
		h.t.Fatalf("unknown node %s", id)
	}
	return n
}

func expectCode(t *testing.T, d Decision, code string) {
	t.Helper()
	if d.Accepted || d.Rejection == nil {
		t.Fatalf("expected rejection %s, got accepted", code)
	}
	if d.Rejection.Code != code {
		t.Errorf("rejection code = %s, want %s (%s)", d.Rejection.Code, code, d.Rejection.Message)
	}
}
