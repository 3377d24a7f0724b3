package dag

import (
	"fmt"

	schemaerr "github.com/specialistvlad/schematic/internal/errors"
)

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*node),
	}
}

// AddNode adds a new node with the given ID to the graph. If a node with
// the same ID already exists, the function does nothing.
func (g *Graph) AddNode(id string) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = &node{id: id}
	g.order = append(g.order, id)
}

// HasNode reports whether id is part of the graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Nodes returns node IDs in insertion order.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.order)
}

// AddEdge creates a directed edge from the `fromID` node to the `toID` node.
// This signifies that `toID` has a dependency on `fromID`. Self edges are
// accepted and show up as a cycle. Adding the same edge twice is a no-op.
func (g *Graph) AddEdge(fromID, toID string) error {
	fromNode, ok := g.nodes[fromID]
	if !ok {
		return fmt.Errorf("source node not found: %s", fromID)
	}
	toNode, ok := g.nodes[toID]
	if !ok {
		return fmt.Errorf("destination node not found: %s", toID)
	}
	if toNode.hasDep(fromID) {
		return nil
	}

	toNode.deps = append(toNode.deps, fromID)
	fromNode.dependents = append(fromNode.dependents, toID)
	return nil
}

// Dependencies returns the IDs the given node depends on.
func (g *Graph) Dependencies(id string) ([]string, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", id)
	}
	out := make([]string, len(n.deps))
	copy(out, n.deps)
	return out, nil
}

// Dependents returns the IDs that depend on the given node.
func (g *Graph) Dependents(id string) ([]string, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", id)
	}
	out := make([]string, len(n.dependents))
	copy(out, n.dependents)
	return out, nil
}

// DetectCycles checks the graph for cycles by walking dependencies
// depth-first from every node in insertion order. The first cycle found is
// returned as a CYCLE error whose chain runs from the walk's root to the
// repeated node.
func (g *Graph) DetectCycles() error {
	_, err := g.TopologicalOrder()
	return err
}

// TopologicalOrder returns node IDs with every dependency placed before its
// dependents. Ties keep insertion order.
func (g *Graph) TopologicalOrder() ([]string, error) {
	// Classic depth-first search with three sets of nodes:
	// done: fully visited and known to be acyclic.
	// path: the current recursion stack, in order.
	// unvisited: all other nodes.
	done := make(map[string]bool, len(g.nodes))
	onPath := make(map[string]bool)
	var path []string
	order := make([]string, 0, len(g.nodes))

	var visit func(id string) error
	visit = func(id string) error {
		if done[id] {
			return nil
		}
		if onPath[id] {
			chain := append(append([]string{}, path...), id)
			return schemaerr.NewCycle(chain)
		}

		onPath[id] = true
		path = append(path, id)
		for _, dep := range g.nodes[id].deps {
			if err := visit(dep); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		delete(onPath, id)

		done[id] = true
		order = append(order, id)
		return nil
	}

	for _, id := range g.order {
		if err := visit(id); err != nil {
			return nil, err
		}
	}
	return order, nil
}
