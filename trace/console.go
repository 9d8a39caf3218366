// Package trace implements presentation adapters for the search engine.
package trace

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/katalvlaran/bestfirst/search"
)

// detailLimit and briefLimit bound how many nodes a list printout shows.
const (
	briefLimit  = 5  // nodes per list at verbosity 2
	detailLimit = 10 // nodes per list at verbosity 3
)

// ConsoleOption configures a Console via functional arguments.
type ConsoleOption[S comparable] func(*Console[S])

// WithDescribe sets the state renderer used in node printouts.
// The default renders states with fmt.Sprint.
func WithDescribe[S comparable](fn func(S) string) ConsoleOption[S] {
	return func(c *Console[S]) {
		if fn != nil {
			c.describe = fn
		}
	}
}

// Console is a search.Reporter that writes formatted progress to an
// io.Writer. Verbosity grades the output; anything above 3 behaves as 3
// (the interactive pause of the classic level 4 is Gate's concern).
type Console[S comparable] struct {
	verbosity int
	out       io.Writer
	describe  func(S) string
	strategy  search.Strategy
}

// NewConsole returns a Console reporting at the given verbosity.
// Negative verbosity is treated as 0.
func NewConsole[S comparable](verbosity int, out io.Writer, opts ...ConsoleOption[S]) *Console[S] {
	if verbosity < 0 {
		verbosity = 0
	}
	c := &Console[S]{
		verbosity: verbosity,
		out:       out,
		describe:  func(s S) string { return fmt.Sprint(s) },
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Start announces the strategy and its ordering key.
func (c *Console[S]) Start(strategy search.Strategy) {
	c.strategy = strategy
	if c.verbosity >= 2 {
		fmt.Fprintf(c.out, "==> %s search, keep frontier ordered by %s:\n\n", strategy, strategy.KeyName())
	}
}

// Expand prints the node chosen for expansion this iteration.
func (c *Console[S]) Expand(iteration int, x *search.Node[S]) {
	if c.verbosity >= 2 {
		fmt.Fprintf(c.out, "%3d Expand %s\n", iteration, c.nodeInfo(x))
	}
}

// Round prints the outcome of one expansion: added and pruned node lists,
// then the resulting frontier.
func (c *Console[S]) Round(added, discarded, exploredPruned, frontierPruned, frontier []*search.Node[S]) {
	if c.verbosity < 2 {
		return
	}
	c.printNodes("add", added)
	if len(discarded) > 0 {
		c.printNodes("discard", discarded)
	}
	if len(exploredPruned) > 0 {
		c.printNodes("expl. rm", exploredPruned)
	}
	if len(frontierPruned) > 0 {
		c.printNodes("fron. rm", frontierPruned)
	}
	c.printNodes("frontier", frontier)
	fmt.Fprintln(c.out)
}

// Finish prints the end-of-run statistics line.
func (c *Console[S]) Finish(path []*search.Node[S], stats search.Stats) {
	if c.verbosity < 1 || len(path) == 0 {
		return
	}
	goal := path[len(path)-1]
	// Path length = number of transitions = number of nodes - 1.
	fmt.Fprintf(c.out, "==> Path length %d, cost %v. Generated %d, pruned %d, explored %d, frontier %d.\n",
		len(path)-1, goal.G, stats.Generated, stats.Pruned, stats.Expanded, stats.Frontier)
}

// NoSolution reports frontier exhaustion.
func (c *Console[S]) NoSolution(search.Stats) {
	if c.verbosity >= 3 {
		fmt.Fprintln(c.out, "==> Couldn't find a solution.")
	}
}

// printNodes prints one labeled node list, ordered by the active key:
// a one-line digest at verbosity 2, per-node detail at verbosity 3+.
func (c *Console[S]) printNodes(label string, nodes []*search.Node[S]) {
	ordered := make([]*search.Node[S], len(nodes))
	copy(ordered, nodes)
	sort.SliceStable(ordered, func(i, j int) bool {
		return search.KeyValue(c.strategy, ordered[i]) < search.KeyValue(c.strategy, ordered[j])
	})

	if c.verbosity == 2 {
		names := make([]string, 0, briefLimit)
		for _, y := range ordered {
			if len(names) == briefLimit {
				break
			}
			names = append(names, fmt.Sprintf("#%d %.2f", y.ID, search.KeyValue(c.strategy, y)))
		}
		end := "\n"
		if len(ordered) > briefLimit {
			end = ", ...\n"
		}
		fmt.Fprintf(c.out, "%11s%4d: %s%s", label, len(ordered), strings.Join(names, ", "), end)

		return
	}

	switch len(ordered) {
	case 0:
		fmt.Fprintf(c.out, "    %10s %d nodes.\n", label, 0)
	case 1:
		fmt.Fprintf(c.out, "    %10s %d node:\n", label, 1)
	default:
		fmt.Fprintf(c.out, "    %10s %d nodes:\n", label, len(ordered))
	}
	for i, y := range ordered {
		if i == detailLimit {
			break
		}
		fmt.Fprintf(c.out, "%11s%s\n", "", c.nodeInfo(y))
	}
	if len(ordered) > detailLimit {
		fmt.Fprintf(c.out, "%11s and %d more ...\n", "", len(ordered)-detailLimit)
	}
}

// nodeInfo renders a one-line node description using the per-strategy
// template: the leading figure is always the active ordering key.
func (c *Console[S]) nodeInfo(y *search.Node[S]) string {
	state := c.describe(y.State)
	switch c.strategy {
	case search.UniformCost:
		return fmt.Sprintf("#%d: g %.2f, d %d, state %s", y.ID, y.G, y.Depth, state)
	case search.GreedyBestFirst:
		return fmt.Sprintf("#%d: h %.2f, d %d, g %.2f, state %s", y.ID, y.H, y.Depth, y.G, state)
	case search.AStar:
		return fmt.Sprintf("#%d: f %.2f, g %.2f, h %.2f, d %d, state %s", y.ID, y.F(), y.G, y.H, y.Depth, state)
	default: // best-first, depth-first
		return fmt.Sprintf("#%d: d %d, g %.2f, state %s", y.ID, y.Depth, y.G, state)
	}
}
