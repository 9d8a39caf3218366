// Package search provides a production-grade generic best-first graph
// search over opaque caller states, with pluggable ordering strategies and
// dominance pruning.
//
// What
//
//   - Find a path from a start state to a state satisfying a goal
//     predicate, expanding nodes best-first under one of five strategies:
//   - best-first        (expand in creation order, key: id)
//   - depth-first       (expand newest first, key: -id)
//   - uniform-cost      (key: accumulated cost g)
//   - greedy-best-first (key: heuristic h)
//   - a-star            (key: f = g + h)
//   - Graph-search pruning: of several paths reaching the same state only
//     the best-known survives, and a later strictly-better path may evict a
//     state from the explored set and re-open it.
//   - Returns a Result containing:
//   - Path:  states from start to goal, both included
//   - Cost:  accumulated cost of the goal node
//   - Stats: generated / pruned / expanded / frontier counters
//   - Supports injectable collaborators, all optional:
//   - Reporter  (progress display, e.g. trace.Console)
//   - EventSink (edge batches for visualization)
//   - StepFunc  (interactive per-iteration gate)
//   - context.Context (cooperative cancellation)
//
// Why
//
//   - One engine serves route planning, puzzle solving, and any domain that
//     can phrase itself as states + successors + goal.
//   - The dominance rules realize graph search rather than tree search,
//     keeping the frontier small on graphs with many converging paths.
//
// Determinism
//
//	Node IDs record creation order and break all key ties (stable frontier
//	sort, strict ID tie-break between equal-key duplicates), so runs are
//	fully reproducible for a deterministic successor function.
//
// Optimality
//
//	uniform-cost returns a minimum-cost path for non-negative edge costs;
//	a-star does so given an admissible, consistent heuristic. depth-first,
//	best-first, and greedy-best-first return some valid path, not
//	necessarily optimal. Edge costs are not validated: negative costs
//	silently void these guarantees.
//
// Complexity (N = nodes generated, F = frontier size)
//
//   - Time:   O(N·(F + E)) worst case; each expansion scans the frontier
//     and explored sets for dominance and resorts the frontier.
//   - Memory: O(N) — all surviving nodes are retained until termination.
//
// See the examples directory for runnable demonstrations.
package search
