// Package bestfirst is your in-memory engine for best-first state-space
// search — one generic loop, five classic strategies, graph-search pruning.
//
// 🚀 What is bestfirst?
//
//	A modern, dependency-light library that brings together:
//		• One Search call: opaque states, a successor function, a goal test
//		• Strategies: best-first, depth-first, uniform-cost,
//		  greedy-best-first, a-star
//		• Dominance pruning: converging paths collapse to the best-known
//		  one, strictly better late paths re-open settled states
//		• Hooks: reporters, event sinks, step gates, cancellation
//
// ✨ Why choose bestfirst?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – node ids break every tie, runs are reproducible
//   - Pure core – the engine itself is silent and dependency-free;
//     presentation lives in adapters
//   - Extensible – wire in custom reporters and visualization sinks
//
// Under the hood, everything is organized under three subpackages:
//
//	search/ — the engine: node store, strategies, pruning, search loop
//	trace/  — console reporter (verbosity 0..4), step gate, zerolog reporter
//	grid/   — a ready-made 2D grid domain with admissible heuristics
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │
//	    4     1
//	    │     │
//	    C──1──D
//
//	uniform-cost search from A to D returns [A B D] at cost 2,
//	never the costlier [A C D].
//
// Dive into the examples directory for full scenarios: cheap routing,
// grid navigation with walls, and interactive stepping.
//
//	go get github.com/katalvlaran/bestfirst
package bestfirst
