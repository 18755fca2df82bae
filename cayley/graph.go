package cayley

import "fmt"

// Edge is one labeled edge of a Cayley graph: following Label from node From
// lands on node To.
type Edge struct {
	From  int
	Label int
	To    int
}

// Graph is an immutable labeled digraph in which every node has exactly one
// successor per label: the shape of right and left Cayley graphs of finite
// semigroups, where nodes are element positions and labels are generator
// letters. Once built, a Graph never changes; engines that issued it may
// keep growing without affecting the snapshot.
type Graph struct {
	adj    [][]int // adj[v][label] = successor of v under label
	labels int
}

// New validates adjacency and returns the graph it defines: row v lists, per
// label, the successor of node v. The input must be non-empty, rectangular,
// and in-range; it is deep-copied, so later mutation of the input cannot
// alias the graph.
//
// Complexity: O(V·L) for V nodes and L labels.
func New(adjacency [][]int) (*Graph, error) {
	// 1. At least one node; the first row fixes the label count.
	if len(adjacency) == 0 {
		return nil, ErrEmptyGraph
	}
	labels := len(adjacency[0])

	// 2. Every row rectangular and every successor a valid node.
	adj := make([][]int, len(adjacency))
	for v, row := range adjacency {
		if len(row) != labels {
			return nil, fmt.Errorf("%w: node %d has %d successors, want %d", ErrRaggedAdjacency, v, len(row), labels)
		}
		for label, to := range row {
			if to < 0 || to >= len(adjacency) {
				return nil, fmt.Errorf("%w: edge (%d, %d) targets %d with order %d",
					ErrNodeOutOfRange, v, label, to, len(adjacency))
			}
		}
		adj[v] = append([]int(nil), row...)
	}

	return &Graph{adj: adj, labels: labels}, nil
}

// Order reports the number of nodes.
func (g *Graph) Order() int { return len(g.adj) }

// Labels reports the number of edge labels (one per generator letter).
func (g *Graph) Labels() int { return g.labels }

// OrderedAdjacencies returns a deep copy of the adjacency rows: entry v
// lists the successors of node v in ascending label order.
func (g *Graph) OrderedAdjacencies() [][]int {
	out := make([][]int, len(g.adj))
	for v, row := range g.adj {
		out[v] = append([]int(nil), row...)
	}

	return out
}

// Edges returns every labeled edge, ascending by source node, then label.
// Parallel edges (two labels joining the same pair) are both reported.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.adj)*g.labels)
	for v, row := range g.adj {
		for label, to := range row {
			out = append(out, Edge{From: v, Label: label, To: to})
		}
	}

	return out
}

// Follow returns the successor of node v under the given label.
func (g *Graph) Follow(v, label int) (int, error) {
	if v < 0 || v >= len(g.adj) {
		return 0, fmt.Errorf("%w: node %d of %d", ErrNodeOutOfRange, v, len(g.adj))
	}
	if label < 0 || label >= g.labels {
		return 0, fmt.Errorf("%w: label %d of %d", ErrLabelOutOfRange, label, g.labels)
	}

	return g.adj[v][label], nil
}

// Walk follows a word of labels from node v and returns the node reached.
// An empty word returns v itself. In a right Cayley graph, walking the tail
// of an element's minimal word from its leading generator's position lands
// on the element's position.
func (g *Graph) Walk(v int, word []int) (int, error) {
	if v < 0 || v >= len(g.adj) {
		return 0, fmt.Errorf("%w: node %d of %d", ErrNodeOutOfRange, v, len(g.adj))
	}
	cur := v
	for _, label := range word {
		if label < 0 || label >= g.labels {
			return 0, fmt.Errorf("%w: label %d of %d", ErrLabelOutOfRange, label, g.labels)
		}
		cur = g.adj[cur][label]
	}

	return cur, nil
}

// Equal reports whether both graphs have identical ordered adjacencies.
func (g *Graph) Equal(other *Graph) bool {
	if other == nil || len(g.adj) != len(other.adj) || g.labels != other.labels {
		return false
	}
	for v, row := range g.adj {
		for label, to := range row {
			if other.adj[v][label] != to {
				return false
			}
		}
	}

	return true
}
