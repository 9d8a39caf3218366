// Package search defines the node, option, hook, and error types for the
// generic best-first search engine.
package search

import (
	"context"
	"errors"
)

// Sentinel errors for search execution.
var (
	// ErrInvalidStrategy is returned when the strategy identifier is not one
	// of the five recognized strategies. Raised before any node is created.
	ErrInvalidStrategy = errors.New("search: invalid strategy")

	// ErrMissingHeuristic is returned when the chosen strategy orders nodes
	// by heuristic value but no heuristic function was supplied.
	ErrMissingHeuristic = errors.New("search: strategy requires a heuristic")

	// ErrNoPath is returned when the frontier is exhausted without reaching
	// a goal state. It is the distinguished failure value: a successful
	// search always returns a non-nil Result instead.
	ErrNoPath = errors.New("search: no path to a goal state")

	// ErrNilSuccessorFunc is returned if a nil successor function is passed.
	ErrNilSuccessorFunc = errors.New("search: successor function is nil")

	// ErrNilGoalFunc is returned if a nil goal predicate is passed.
	ErrNilGoalFunc = errors.New("search: goal predicate is nil")
)

// Node represents one point in the search tree. States are opaque caller
// values compared only by equality; all ordering happens through the active
// strategy's key function.
//
// Invariants:
//   - ID reflects creation order and is never reused; it is the strict
//     tie-break between nodes with equal key values.
//   - Depth and G are derived from the parent at creation and never change.
//   - Parent is a back-reference used for path reconstruction; a node never
//     owns its parent.
type Node[S comparable] struct {
	// ID is a unique increasing integer assigned at creation time.
	ID int64

	// State is the caller-defined state this node represents.
	State S

	// Parent is the node this one was expanded from; nil for the root.
	Parent *Node[S]

	// Children lists nodes created from this node, in creation order.
	// Informational only: the search logic never reads it.
	Children []*Node[S]

	// Depth is 0 for the root, else Parent.Depth + 1.
	Depth int

	// G is the accumulated path cost from the root.
	G float64

	// H is the heuristic value, or 0 when no heuristic was supplied.
	H float64
}

// F returns the combined ordering value G + H used by the a-star strategy.
func (n *Node[S]) F() float64 { return n.G + n.H }

// Path returns the nodes from the root to n, root first. Walking the parent
// links is read-only, so repeated calls yield identical sequences.
func (n *Node[S]) Path() []*Node[S] {
	path := []*Node[S]{n}
	for cur := n; cur.Parent != nil; {
		cur = cur.Parent
		path = append(path, cur)
	}
	// reverse to get root → n
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Successor pairs a reachable state with the cost of the transition to it.
// Costs are accepted as-is: negative costs silently break the optimality
// guarantees of uniform-cost and a-star. Validation is the caller's concern.
type Successor[S comparable] struct {
	State S
	Cost  float64
}

// NextFunc generates the successors of a state.
type NextFunc[S comparable] func(state S) []Successor[S]

// GoalFunc reports whether a state satisfies the goal.
type GoalFunc[S comparable] func(state S) bool

// HeuristicFunc estimates the remaining cost from a state to a goal.
// Uniform-cost and a-star optimality require it to be admissible and,
// for a-star, consistent.
type HeuristicFunc[S comparable] func(state S) float64

// EventStatus classifies an edge batch delivered to an EventSink.
type EventStatus uint8

const (
	// StatusExpand marks the edge leading into the node being expanded.
	StatusExpand EventStatus = iota
	// StatusAdd marks edges of new nodes that survived pruning.
	StatusAdd
	// StatusDiscard marks edges of new nodes discarded as dominated.
	StatusDiscard
	// StatusFrontierPrune marks edges of frontier nodes evicted by a
	// strictly better new node.
	StatusFrontierPrune
	// StatusExploredPrune marks edges of explored nodes evicted by a
	// strictly better new node.
	StatusExploredPrune
	// StatusSolution marks the edges of the final root→goal path.
	StatusSolution
)

// String returns the canonical status name.
func (st EventStatus) String() string {
	switch st {
	case StatusExpand:
		return "expand"
	case StatusAdd:
		return "add"
	case StatusDiscard:
		return "discard"
	case StatusFrontierPrune:
		return "frontier_prune"
	case StatusExploredPrune:
		return "explored_prune"
	case StatusSolution:
		return "solution"
	default:
		return "unknown"
	}
}

// Edge is a parent-state → child-state pair delivered to an EventSink.
type Edge[S comparable] struct {
	Parent S
	Child  S
}

// EventSink receives edge batches for optional visualization. It is invoked
// once per status per expansion (possibly with an empty batch) and once with
// StatusSolution after a successful search.
type EventSink[S comparable] func(edges []Edge[S], status EventStatus)

// StepFunc gates the search between iterations. It is invoked after each
// expansion; returning an error aborts the search with that error.
// Blocking implementations realize an interactive "step" mode.
type StepFunc func() error

// Stats aggregates end-of-run counters.
type Stats struct {
	// Generated is the total number of nodes created, root included.
	Generated int64
	// Pruned counts nodes discarded from new, frontier, and explored.
	Pruned int
	// Expanded is the number of nodes popped from the frontier.
	Expanded int
	// Frontier is the frontier size at termination.
	Frontier int
	// Iterations is the number of expansion rounds performed.
	Iterations int
}

// Reporter observes the search for presentation purposes. All methods are
// invoked synchronously from the search loop; implementations must not
// retain the node slices they receive.
type Reporter[S comparable] interface {
	// Start is called once, after validation, before the root is created.
	Start(strategy Strategy)
	// Expand is called when node x is popped for expansion.
	Expand(iteration int, x *Node[S])
	// Round is called after the pruning engine ran for one expansion.
	Round(added, discarded, exploredPruned, frontierPruned, frontier []*Node[S])
	// Finish is called once on success with the root→goal node path.
	Finish(path []*Node[S], stats Stats)
	// NoSolution is called once when the frontier is exhausted.
	NoSolution(stats Stats)
}

// noopReporter is the default Reporter: it ignores every event.
type noopReporter[S comparable] struct{}

func (noopReporter[S]) Start(Strategy)                 {}
func (noopReporter[S]) Expand(int, *Node[S])           {}
func (noopReporter[S]) Round(_, _, _, _, _ []*Node[S]) {}
func (noopReporter[S]) Finish([]*Node[S], Stats)       {}
func (noopReporter[S]) NoSolution(Stats)               {}

// Option configures Search behavior via functional arguments.
type Option[S comparable] func(*Options[S])

// Options holds parameters and collaborators for one Search call.
type Options[S comparable] struct {
	// Ctx allows cooperative cancellation, checked once per iteration.
	Ctx context.Context

	// Heuristic estimates remaining cost; required by greedy-best-first
	// and a-star, optional (and unused for ordering) otherwise.
	Heuristic HeuristicFunc[S]

	// Reporter observes the search; defaults to a no-op.
	Reporter Reporter[S]

	// Sink receives edge batches for visualization; nil disables events.
	Sink EventSink[S]

	// Step, if non-nil, gates each iteration; an error aborts the search.
	Step StepFunc
}

// DefaultOptions returns Options with sane defaults: background context,
// no heuristic, no-op reporter, no event sink, no step gate.
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		Ctx:      context.Background(),
		Reporter: noopReporter[S]{},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[S comparable](ctx context.Context) Option[S] {
	return func(o *Options[S]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic supplies the heuristic function h(state).
func WithHeuristic[S comparable](h HeuristicFunc[S]) Option[S] {
	return func(o *Options[S]) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithReporter registers an observer for search progress.
func WithReporter[S comparable](r Reporter[S]) Option[S] {
	return func(o *Options[S]) {
		if r != nil {
			o.Reporter = r
		}
	}
}

// WithEventSink registers a visualization sink for edge batches.
func WithEventSink[S comparable](sink EventSink[S]) Option[S] {
	return func(o *Options[S]) {
		if sink != nil {
			o.Sink = sink
		}
	}
}

// WithStepGate registers a gate invoked between iterations; returning an
// error from the gate aborts the search with that error.
func WithStepGate[S comparable](step StepFunc) Option[S] {
	return func(o *Options[S]) {
		if step != nil {
			o.Step = step
		}
	}
}

// Result is the outcome of a successful search.
type Result[S comparable] struct {
	// Path is the ordered sequence of states from the initial state to the
	// goal state, both included.
	Path []S
	// Cost is the accumulated path cost of the goal node.
	Cost float64
	// Depth is the goal node's depth (number of transitions on the path).
	Depth int
	// Stats holds the end-of-run counters.
	Stats
}
