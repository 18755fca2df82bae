package cayley

import "errors"

// Sentinel errors for Cayley graph construction and queries.
var (
	// ErrEmptyGraph indicates the adjacency input has no nodes.
	ErrEmptyGraph = errors.New("cayley: graph must have at least one node")

	// ErrRaggedAdjacency indicates adjacency rows of differing lengths.
	ErrRaggedAdjacency = errors.New("cayley: all nodes must have one successor per label")

	// ErrNodeOutOfRange indicates a node index outside [0, Order).
	ErrNodeOutOfRange = errors.New("cayley: node out of range")

	// ErrLabelOutOfRange indicates a label index outside [0, Labels).
	ErrLabelOutOfRange = errors.New("cayley: label out of range")
)
