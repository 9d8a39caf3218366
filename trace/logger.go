package trace

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/bestfirst/search"
)

// Logger is a search.Reporter that emits structured zerolog events:
// one info event at start and finish, one debug event per iteration.
// Use it for headless runs where formatted console output is unwanted.
type Logger[S comparable] struct {
	log      zerolog.Logger
	strategy search.Strategy
}

// NewLogger returns a Logger reporting through log.
func NewLogger[S comparable](log zerolog.Logger) *Logger[S] {
	return &Logger[S]{log: log}
}

// Start logs the strategy and its ordering key.
func (l *Logger[S]) Start(strategy search.Strategy) {
	l.strategy = strategy
	l.log.Info().
		Stringer("strategy", strategy).
		Str("key", strategy.KeyName()).
		Msg("search started")
}

// Expand logs the node chosen for expansion this iteration.
func (l *Logger[S]) Expand(iteration int, x *search.Node[S]) {
	l.log.Debug().
		Int("iteration", iteration).
		Int64("node", x.ID).
		Int("depth", x.Depth).
		Float64("g", x.G).
		Float64("key", search.KeyValue(l.strategy, x)).
		Interface("state", x.State).
		Msg("expand")
}

// Round logs the counts of one expansion round.
func (l *Logger[S]) Round(added, discarded, exploredPruned, frontierPruned, frontier []*search.Node[S]) {
	l.log.Debug().
		Int("added", len(added)).
		Int("discarded", len(discarded)).
		Int("explored_pruned", len(exploredPruned)).
		Int("frontier_pruned", len(frontierPruned)).
		Int("frontier", len(frontier)).
		Msg("round")
}

// Finish logs the solution and the end-of-run statistics.
func (l *Logger[S]) Finish(path []*search.Node[S], stats search.Stats) {
	if len(path) == 0 {
		return
	}
	goal := path[len(path)-1]
	l.log.Info().
		Int("length", len(path)-1).
		Float64("cost", goal.G).
		Int64("generated", stats.Generated).
		Int("pruned", stats.Pruned).
		Int("explored", stats.Expanded).
		Int("frontier", stats.Frontier).
		Msg("solution found")
}

// NoSolution logs frontier exhaustion.
func (l *Logger[S]) NoSolution(stats search.Stats) {
	l.log.Warn().
		Int64("generated", stats.Generated).
		Int("pruned", stats.Pruned).
		Int("explored", stats.Expanded).
		Msg("frontier exhausted")
}
