package search

import "fmt"

// Strategy selects the frontier ordering policy. The zero value is
// BestFirst; use ParseStrategy to obtain one from its canonical name.
type Strategy uint8

const (
	// BestFirst expands nodes in creation order (id ascending).
	BestFirst Strategy = iota
	// DepthFirst expands the most recently created node first (id descending).
	DepthFirst
	// UniformCost expands the node with the lowest accumulated cost g.
	UniformCost
	// GreedyBestFirst expands the node with the lowest heuristic value h.
	GreedyBestFirst
	// AStar expands the node with the lowest combined value f = g + h.
	AStar

	strategyCount // number of strategies; keep last
)

// strategyNames maps a Strategy to its canonical identifier.
var strategyNames = [strategyCount]string{
	BestFirst:       "best-first",
	DepthFirst:      "depth-first",
	UniformCost:     "uniform-cost",
	GreedyBestFirst: "greedy-best-first",
	AStar:           "a-star",
}

// strategyKeyNames maps a Strategy to the display name of its ordering key.
var strategyKeyNames = [strategyCount]string{
	BestFirst:       "id",
	DepthFirst:      "-id",
	UniformCost:     "g",
	GreedyBestFirst: "h",
	AStar:           "f",
}

// ParseStrategy resolves a canonical strategy identifier. It returns
// ErrInvalidStrategy for anything but the five recognized names.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return Strategy(s), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidStrategy, name)
}

// String returns the canonical strategy identifier, or "invalid" for an
// out-of-range value.
func (s Strategy) String() string {
	if !s.valid() {
		return "invalid"
	}

	return strategyNames[s]
}

// KeyName returns the display name of the ordering key: "id", "-id", "g",
// "h", or "f".
func (s Strategy) KeyName() string {
	if !s.valid() {
		return "invalid"
	}

	return strategyKeyNames[s]
}

// NeedsHeuristic reports whether the strategy orders nodes by heuristic
// value and therefore requires a heuristic function.
func (s Strategy) NeedsHeuristic() bool {
	return s == GreedyBestFirst || s == AStar
}

// valid reports whether s is one of the five recognized strategies.
func (s Strategy) valid() bool { return s < strategyCount }

// keyFunc maps a node to the comparable value that orders the frontier and
// decides dominance. Lower is better for every strategy.
type keyFunc[S comparable] func(*Node[S]) float64

// strategyKey returns the key function for a valid strategy.
func strategyKey[S comparable](s Strategy) keyFunc[S] {
	switch s {
	case BestFirst:
		return func(n *Node[S]) float64 { return float64(n.ID) }
	case DepthFirst:
		return func(n *Node[S]) float64 { return -float64(n.ID) }
	case UniformCost:
		return func(n *Node[S]) float64 { return n.G }
	case GreedyBestFirst:
		return func(n *Node[S]) float64 { return n.H }
	default: // AStar
		return func(n *Node[S]) float64 { return n.G + n.H }
	}
}

// KeyValue returns the ordering key of n under strategy s. It is intended
// for reporters and visualizers that display key values alongside nodes.
func KeyValue[S comparable](s Strategy, n *Node[S]) float64 {
	if !s.valid() {
		return 0
	}

	return strategyKey[S](s)(n)
}
