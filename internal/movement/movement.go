// Package movement walks the board graph one edge at a time.
//
// The walk is an explicit step loop: the caller asks Next for the single
// next step given where the ferry is, where it just came from and how many
// steps remain, applies it, and asks again. A branch point suspends the
// walk until the caller supplies one of the candidates.
package movement

import (
	"slices"

	"github.com/samdwyer/aegean/internal/board"
)

// StepKind classifies the result of Next.
type StepKind int

const (
	// StepLand means movement is over and the current node resolves.
	StepLand StepKind = iota
	// StepMove means the ferry sails to Target without a choice.
	StepMove
	// StepChoose means more than one route is open and a player must pick.
	StepChoose
)

// String returns the step kind name.
func (k StepKind) String() string {
	switch k {
	case StepLand:
		return "LAND"
	case StepMove:
		return "MOVE"
	case StepChoose:
		return "CHOOSE"
	default:
		return "UNKNOWN"
	}
}

// Step is the next thing the walk does.
type Step struct {
	Kind       StepKind
	Target     string   // set for StepMove
	Candidates []string // set for StepChoose
	Stranded   bool     // StepLand caused by a node with no routes
}

// Candidates returns the onward nodes from current. The node the ferry just
// came from is excluded unless it is the only way out.
func Candidates(g *board.Graph, current, previous string) []string {
	neighbors := g.Neighbors(current)
	if previous == "" {
		return neighbors
	}

	onward := make([]string, 0, len(neighbors))
	for _, n := range neighbors {
		if n != previous {
			onward = append(onward, n)
		}
	}
	if len(onward) == 0 {
		return neighbors
	}
	return onward
}

// Next computes the next step of a walk with remaining steps left.
// A node with no routes at all lands immediately and the leftover budget is
// dropped.
func Next(g *board.Graph, current, previous string, remaining int) Step {
	if remaining <= 0 {
		return Step{Kind: StepLand}
	}

	candidates := Candidates(g, current, previous)
	switch len(candidates) {
	case 0:
		return Step{Kind: StepLand, Stranded: true}
	case 1:
		return Step{Kind: StepMove, Target: candidates[0]}
	default:
		return Step{Kind: StepChoose, Candidates: candidates}
	}
}

// Valid returns true if choice is one of the offered candidates.
func Valid(candidates []string, choice string) bool {
	return choice != "" && slices.Contains(candidates, choice)
}
