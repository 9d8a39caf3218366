package search

// nodeStore allocates search-tree nodes and owns the monotonically
// increasing ID counter. The counter belongs to one search run; IDs start
// at 1 and are never reused.
type nodeStore[S comparable] struct {
	lastID int64
}

// root creates the root node with the given initial cost and heuristic.
func (st *nodeStore[S]) root(state S, cost, h float64) *Node[S] {
	st.lastID++

	return &Node[S]{
		ID:    st.lastID,
		State: state,
		G:     cost,
		H:     h,
	}
}

// child creates a successor of parent and appends it to parent.Children.
// Depth and G are derived here and nowhere else.
func (st *nodeStore[S]) child(parent *Node[S], state S, cost, h float64) *Node[S] {
	st.lastID++
	n := &Node[S]{
		ID:     st.lastID,
		State:  state,
		Parent: parent,
		Depth:  parent.Depth + 1,
		G:      parent.G + cost,
		H:      h,
	}
	parent.Children = append(parent.Children, n)

	return n
}

// generated returns the total number of nodes created so far.
func (st *nodeStore[S]) generated() int64 { return st.lastID }
