// Package search implements a generic best-first graph search: given a
// start state, a successor function, a goal predicate, and an ordering
// strategy, it finds a path from the start to a goal state while pruning
// dominated paths to already-seen states.
//
// Key features:
//   - Search(start, next, goal, strategy, opts...): one call, five
//     strategies (best-first, depth-first, uniform-cost, greedy-best-first,
//     a-star) selected by a Strategy value or ParseStrategy.
//   - Graph-search discipline: multiple paths reaching the same state are
//     collapsed to the best-known one; a later strictly-better path may
//     re-open a state already expanded.
//   - States are opaque: any comparable type works, no graph structure is
//     held by the engine.
//   - Hooks: Reporter for progress display, EventSink for visualization,
//     StepFunc for interactive stepping, context for cancellation. All
//     default to no-ops; a hook-free call is fully functional.
//
// Errors:
//
//   - ErrInvalidStrategy     if the strategy is not one of the five.
//   - ErrMissingHeuristic    if greedy-best-first/a-star lack a heuristic.
//   - ErrNoPath              if the frontier is exhausted without a goal.
//   - ErrNilSuccessorFunc / ErrNilGoalFunc for nil callables.
//   - context errors / step-gate errors when aborted cooperatively.
//
// Termination: on a finite state space the search always terminates. A
// successor function yielding unboundedly many non-dominated states makes
// the search run forever; bounding the space is the caller's concern.
package search

// runner holds the mutable state of one Search execution. The frontier and
// explored collections are owned here and lent to the pruning engine for
// one call at a time.
type runner[S comparable] struct {
	next     NextFunc[S]
	goal     GoalFunc[S]
	strategy Strategy
	key      keyFunc[S]
	opts     Options[S]

	store      nodeStore[S]
	frontier   []*Node[S]
	explored   []*Node[S]
	pruned     int
	iterations int
}

// Search looks for a path from start to a state satisfying goal, expanding
// nodes in the order given by strategy. On success it returns the ordered
// state sequence (start included) with its cost and run statistics; when
// the frontier is exhausted it returns ErrNoPath.
//
// Failures of the caller-supplied functions are not recovered: a panic in
// next, goal, or the heuristic propagates to the caller.
func Search[S comparable](
	start S,
	next NextFunc[S],
	goal GoalFunc[S],
	strategy Strategy,
	opts ...Option[S],
) (*Result[S], error) {
	// 1) Validate callables.
	if next == nil {
		return nil, ErrNilSuccessorFunc
	}
	if goal == nil {
		return nil, ErrNilGoalFunc
	}

	// 2) Build options.
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}

	// 3) Validate strategy and heuristic before any node exists.
	if !strategy.valid() {
		return nil, ErrInvalidStrategy
	}
	if strategy.NeedsHeuristic() && o.Heuristic == nil {
		return nil, ErrMissingHeuristic
	}

	r := &runner[S]{
		next:     next,
		goal:     goal,
		strategy: strategy,
		key:      strategyKey[S](strategy),
		opts:     o,
	}
	r.opts.Reporter.Start(strategy)

	return r.run(start)
}

// run seeds the frontier with the root and drives the expand loop until a
// goal is reached, the frontier empties, or the run is aborted.
func (r *runner[S]) run(start S) (*Result[S], error) {
	r.frontier = []*Node[S]{r.store.root(start, 0, r.heuristic(start))}

	for len(r.frontier) > 0 {
		// cancellation check (once per iteration)
		select {
		case <-r.opts.Ctx.Done():
			return nil, r.opts.Ctx.Err()
		default:
		}

		r.iterations++
		x := r.pop()
		r.opts.Reporter.Expand(r.iterations, x)

		if r.goal(x.State) {
			return r.finish(x), nil
		}

		r.expand(x)

		if r.opts.Step != nil {
			if err := r.opts.Step(); err != nil {
				return nil, err
			}
		}
	}
	r.opts.Reporter.NoSolution(r.stats())

	return nil, ErrNoPath
}

// pop removes the best node from the frontier and appends it to explored.
// Once a node enters explored it is never re-inserted into the frontier; it
// may only be evicted later by a strictly better node for its state.
func (r *runner[S]) pop() *Node[S] {
	x := r.frontier[0]
	r.frontier = r.frontier[1:]
	r.explored = append(r.explored, x)

	return x
}

// expand generates the successors of x, runs them through the pruning
// engine, commits the updated frontier/explored sets, and reports.
func (r *runner[S]) expand(x *Node[S]) {
	succ := r.next(x.State)
	fresh := make([]*Node[S], 0, len(succ))
	for _, sc := range succ {
		fresh = append(fresh, r.store.child(x, sc.State, sc.Cost, r.heuristic(sc.State)))
	}

	kept, freshPruned, frontier, frontierPruned, explored, exploredPruned :=
		prune(r.key, fresh, r.frontier, r.explored)
	r.frontier, r.explored = frontier, explored
	r.pruned += len(freshPruned) + len(frontierPruned) + len(exploredPruned)

	r.opts.Reporter.Round(kept, freshPruned, exploredPruned, frontierPruned, r.frontier)
	if r.opts.Sink != nil {
		r.emit([]*Node[S]{x}, StatusExpand)
		r.emit(freshPruned, StatusDiscard)
		r.emit(kept, StatusAdd)
		r.emit(frontierPruned, StatusFrontierPrune)
		r.emit(exploredPruned, StatusExploredPrune)
	}
}

// heuristic evaluates the configured heuristic, or 0 when none is set.
func (r *runner[S]) heuristic(s S) float64 {
	if r.opts.Heuristic == nil {
		return 0
	}

	return r.opts.Heuristic(s)
}

// finish reconstructs the root→goal path, reports it, and builds the Result.
func (r *runner[S]) finish(x *Node[S]) *Result[S] {
	nodes := x.Path()
	stats := r.stats()
	r.opts.Reporter.Finish(nodes, stats)
	if r.opts.Sink != nil {
		r.emit(nodes, StatusSolution)
	}

	path := make([]S, len(nodes))
	for i, n := range nodes {
		path[i] = n.State
	}

	return &Result[S]{
		Path:  path,
		Cost:  x.G,
		Depth: x.Depth,
		Stats: stats,
	}
}

// stats snapshots the run counters.
func (r *runner[S]) stats() Stats {
	return Stats{
		Generated:  r.store.generated(),
		Pruned:     r.pruned,
		Expanded:   len(r.explored),
		Frontier:   len(r.frontier),
		Iterations: r.iterations,
	}
}

// emit converts nodes to parent→child edges and hands them to the sink.
// Root nodes contribute no edge; the batch is delivered even when empty so
// sinks see every status of every round.
func (r *runner[S]) emit(nodes []*Node[S], status EventStatus) {
	edges := make([]Edge[S], 0, len(nodes))
	for _, n := range nodes {
		if n.Parent != nil {
			edges = append(edges, Edge[S]{Parent: n.Parent.State, Child: n.State})
		}
	}
	r.opts.Sink(edges, status)
}
