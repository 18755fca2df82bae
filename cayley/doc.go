// Package cayley provides immutable snapshots of right and left Cayley
// graphs of finite semigroups: labeled digraphs in which every node has
// exactly one successor per label.
//
// What
//
//   - New(adjacency) validates a rectangular, in-range adjacency table and
//     deep-copies it into a Graph.
//   - Queries: Order, Labels, OrderedAdjacencies, Edges (ascending by
//     source, then label), Follow, Walk, Equal.
//   - SCCs computes strongly connected components with Tarjan's algorithm on
//     an explicit stack.
//
// Why
//
//   - The right Cayley graph is the multiplication table of a semigroup
//     seen as a graph; its paths are words and its strongly connected
//     components outline the eggbox structure.
//   - Snapshots decouple graph analysis from the enumeration engine: a
//     Graph issued at closure stays valid however the caller uses it.
//
// Determinism
//
//	Construction copies its input, every query returns fresh slices, and
//	component order is fixed (members ascending, components by smallest
//	member), so results are fully reproducible.
//
// Complexity (V = nodes, L = labels)
//
//   - New, OrderedAdjacencies, Edges, SCCs: O(V·L)
//   - Follow: O(1); Walk: O(word length)
//
// Usage
//
//	g, err := cayley.New([][]int{{0, 2}, {0, 3}, {0, 0}, {0, 1}})
//	if err != nil { ... }
//	g.SCCs()       // [[0 2] [1 3]]
//	g.Walk(1, []int{1, 0})
//
// Errors
//
//   - ErrEmptyGraph        if the adjacency input has no nodes.
//   - ErrRaggedAdjacency   if rows have differing lengths.
//   - ErrNodeOutOfRange    if a successor or node argument is out of range.
//   - ErrLabelOutOfRange   if a label argument is out of range.
package cayley
