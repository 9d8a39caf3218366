package search_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/bestfirst/search"
)

// TestParseStrategy_Valid covers the five canonical identifiers and their
// round-trip through String and KeyName.
func TestParseStrategy_Valid(t *testing.T) {
	cases := []struct {
		name    string
		want    search.Strategy
		keyName string
	}{
		{"best-first", search.BestFirst, "id"},
		{"depth-first", search.DepthFirst, "-id"},
		{"uniform-cost", search.UniformCost, "g"},
		{"greedy-best-first", search.GreedyBestFirst, "h"},
		{"a-star", search.AStar, "f"},
	}
	for _, tc := range cases {
		got, err := search.ParseStrategy(tc.name)
		if err != nil {
			t.Errorf("ParseStrategy(%q): unexpected error %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseStrategy(%q) = %v; want %v", tc.name, got, tc.want)
		}
		if s := got.String(); s != tc.name {
			t.Errorf("%v.String() = %q; want %q", got, s, tc.name)
		}
		if k := got.KeyName(); k != tc.keyName {
			t.Errorf("%v.KeyName() = %q; want %q", got, k, tc.keyName)
		}
	}
}

// TestParseStrategy_Invalid rejects unknown identifiers.
func TestParseStrategy_Invalid(t *testing.T) {
	for _, name := range []string{"", "bf", "dijkstra", "A-STAR", "breadth-first"} {
		if _, err := search.ParseStrategy(name); !errors.Is(err, search.ErrInvalidStrategy) {
			t.Errorf("ParseStrategy(%q): want ErrInvalidStrategy, got %v", name, err)
		}
	}
}

// TestStrategy_NeedsHeuristic: only the h-driven strategies require one.
func TestStrategy_NeedsHeuristic(t *testing.T) {
	needs := map[search.Strategy]bool{
		search.BestFirst:       false,
		search.DepthFirst:      false,
		search.UniformCost:     false,
		search.GreedyBestFirst: true,
		search.AStar:           true,
	}
	for s, want := range needs {
		if got := s.NeedsHeuristic(); got != want {
			t.Errorf("%v.NeedsHeuristic() = %v; want %v", s, got, want)
		}
	}
}

// TestKeyValue verifies the per-strategy ordering keys on a fixed node.
func TestKeyValue(t *testing.T) {
	n := &search.Node[string]{ID: 7, State: "X", G: 3, H: 2}
	cases := []struct {
		strategy search.Strategy
		want     float64
	}{
		{search.BestFirst, 7},
		{search.DepthFirst, -7},
		{search.UniformCost, 3},
		{search.GreedyBestFirst, 2},
		{search.AStar, 5},
	}
	for _, tc := range cases {
		if got := search.KeyValue(tc.strategy, n); got != tc.want {
			t.Errorf("KeyValue(%v) = %v; want %v", tc.strategy, got, tc.want)
		}
	}
	if n.F() != 5 {
		t.Errorf("F() = %v; want 5", n.F())
	}
}

// TestEventStatus_String covers the status names used by sinks.
func TestEventStatus_String(t *testing.T) {
	want := map[search.EventStatus]string{
		search.StatusExpand:        "expand",
		search.StatusAdd:           "add",
		search.StatusDiscard:       "discard",
		search.StatusFrontierPrune: "frontier_prune",
		search.StatusExploredPrune: "explored_prune",
		search.StatusSolution:      "solution",
		search.EventStatus(42):     "unknown",
	}
	for st, name := range want {
		if got := st.String(); got != name {
			t.Errorf("%d.String() = %q; want %q", st, got, name)
		}
	}
}
