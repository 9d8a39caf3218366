package search

import "sort"

// This file implements the dominance/pruning engine: the rules deciding
// which of several equal-or-better paths to the same state survive.
//
// The comparison rules are deliberately asymmetric:
//   - a NEW node is discarded already on a tie (>=) against an explored or
//     frontier node for the same state, and against a sibling new node on a
//     strict loss or an equal key with a larger ID;
//   - a FRONTIER or EXPLORED node is evicted only when a surviving new node
//     for the same state is STRICTLY better (>).
// On ties this keeps the earlier-discovered node. Changing either rule
// alters search outcomes on graphs with tied costs.

// prune filters one expansion's freshly created nodes against the frontier,
// the explored set, and each other, then merges the survivors into the
// frontier and stably resorts it by key.
//
// It returns six collections: surviving new nodes, new nodes discarded,
// the updated frontier, frontier nodes evicted, the updated explored set,
// and explored nodes evicted. Input slices are not mutated.
func prune[S comparable](
	key keyFunc[S],
	fresh, frontier, explored []*Node[S],
) (kept, freshPruned, frontierOut, frontierPruned, exploredOut, exploredPruned []*Node[S]) {
	// 1) Discard dominated new nodes. Siblings are compared against the
	//    full fresh list, so a node dominated by an (itself dominated)
	//    sibling is still discarded.
	for _, m := range fresh {
		if dominatedNew(key, m, fresh, frontier, explored) {
			freshPruned = append(freshPruned, m)
		} else {
			kept = append(kept, m)
		}
	}

	// 2) Evict frontier nodes strictly beaten by a surviving new node.
	frontierOut, frontierPruned = evictDominated(key, frontier, kept)

	// 3) Likewise for explored nodes, re-opening states previously settled.
	exploredOut, exploredPruned = evictDominated(key, explored, kept)

	// 4) Merge survivors and resort. sort.SliceStable keeps insertion order
	//    among equal keys, so the pop-first rule remains deterministic.
	frontierOut = append(frontierOut, kept...)
	sortByKey(frontierOut, key)

	return kept, freshPruned, frontierOut, frontierPruned, exploredOut, exploredPruned
}

// dominatedNew reports whether new node m loses against the explored set,
// the frontier, or a sibling new node for the same state.
func dominatedNew[S comparable](key keyFunc[S], m *Node[S], fresh, frontier, explored []*Node[S]) bool {
	km := key(m)
	for _, n := range explored {
		if m.State == n.State && km >= key(n) {
			return true
		}
	}
	for _, n := range frontier {
		if m.State == n.State && km >= key(n) {
			return true
		}
	}
	for _, n := range fresh {
		if n == m || m.State != n.State {
			continue
		}
		// strict key loss, or equal key with the later-created ID
		if kn := key(n); km > kn || (km == kn && m.ID > n.ID) {
			return true
		}
	}

	return false
}

// evictDominated splits nodes into those that survive and those strictly
// beaten by a winner for the same state.
func evictDominated[S comparable](key keyFunc[S], nodes, winners []*Node[S]) (out, evicted []*Node[S]) {
	out = make([]*Node[S], 0, len(nodes))
	for _, m := range nodes {
		if strictlyBeaten(key, m, winners) {
			evicted = append(evicted, m)
		} else {
			out = append(out, m)
		}
	}

	return out, evicted
}

// strictlyBeaten reports whether some winner has the same state as m with a
// strictly better key.
func strictlyBeaten[S comparable](key keyFunc[S], m *Node[S], winners []*Node[S]) bool {
	km := key(m)
	for _, n := range winners {
		if m.State == n.State && km > key(n) {
			return true
		}
	}

	return false
}

// sortByKey stably sorts nodes by ascending key value.
func sortByKey[S comparable](nodes []*Node[S], key keyFunc[S]) {
	sort.SliceStable(nodes, func(i, j int) bool { return key(nodes[i]) < key(nodes[j]) })
}
