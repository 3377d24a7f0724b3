package dag

// Graph is a collection of nodes and their dependencies. Node and edge
// order follow insertion so every traversal is deterministic.
type Graph struct {
	// nodes stores all nodes in the graph, keyed by their unique ID.
	nodes map[string]*node
	// order holds node IDs in insertion order.
	order []string
}

// node is un-exported to enforce interaction with the graph via the public
// API (using string IDs), not by direct struct manipulation.
type node struct {
	id string
	// deps holds the IDs this node depends on, in insertion order.
	deps []string
	// dependents holds the IDs depending on this node, in insertion order.
	dependents []string
}

func (n *node) hasDep(id string) bool {
	for _, d := range n.deps {
		if d == id {
			return true
		}
	}
	return false
}
