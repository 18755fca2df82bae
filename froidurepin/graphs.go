package froidurepin

import (
	"context"
	"fmt"

	"github.com/katalvlaran/semigroup/cayley"
)

// RightCayleyGraph forces full closure and returns the right Cayley graph:
// node p has, for each letter a, an edge to the position of table[p]·gens[a].
// The graph is an immutable snapshot; the engine keeps no reference to it.
func (s *Semigroup) RightCayleyGraph(ctx context.Context) (*cayley.Graph, error) {
	if _, err := s.Size(ctx); err != nil {
		return nil, err
	}

	adjacency := make([][]int, len(s.right))
	for p, row := range s.right {
		adjacency[p] = append([]int(nil), row...)
	}

	return cayley.New(adjacency)
}

// LeftCayleyGraph forces full closure and returns the left Cayley graph:
// node p has, for each letter a, an edge to the position of gens[a]·table[p].
// Left products are resolved through the membership index; the closure
// guarantees every one of them is already in the table.
func (s *Semigroup) LeftCayleyGraph(ctx context.Context) (*cayley.Graph, error) {
	if _, err := s.Size(ctx); err != nil {
		return nil, err
	}

	adjacency := make([][]int, len(s.table))
	for p, el := range s.table {
		row := make([]int, len(s.alphabet))
		for a, gen := range s.alphabet {
			if s.dupOf[a] != a {
				row[a] = row[s.dupOf[a]]
				continue
			}
			product, err := gen.Mul(el)
			if err != nil {
				return nil, fmt.Errorf("froidurepin: left product of position %d by letter %d: %w", p, a, err)
			}
			q, ok := s.index.lookup(product)
			if !ok {
				// Only reachable when a Wrapped host multiply is not
				// associative, which is a caller obligation.
				return nil, fmt.Errorf("froidurepin: left product of position %d by letter %d escapes the closure", p, a)
			}
			row[a] = q
		}
		adjacency[p] = row
	}

	return cayley.New(adjacency)
}
