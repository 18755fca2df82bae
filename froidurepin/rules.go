package froidurepin

import (
	"context"

	"github.com/katalvlaran/semigroup/congruence"
)

// Rules forces full closure and returns the defining relations of the
// enumerated semigroup, as congruence.Presentation material over the same
// alphabet: one relation per duplicate letter, plus word(p)+a = word(q) for
// every non-tree edge (p, a) -> q of the right Cayley graph. The presented
// semigroup on these relations is isomorphic to the enumerated one.
func (s *Semigroup) Rules(ctx context.Context) ([]congruence.Relation, error) {
	if _, err := s.Size(ctx); err != nil {
		return nil, err
	}

	// Duplicate letters denote the same generator.
	relations := make([]congruence.Relation, 0, len(s.alphabet))
	for a, d := range s.dupOf {
		if d != a {
			relations = append(relations, congruence.Relation{Left: Word{a}, Right: Word{d}})
		}
	}

	// A tree edge (p, a) -> q is how q was first discovered, so word(p)+a is
	// word(q) itself and relates nothing. Every other edge equates two
	// distinct words for the same element.
	for p, row := range s.right {
		for a, q := range row {
			if s.dupOf[a] != a {
				continue // copied column, same relation as the first occurrence
			}
			if s.parents[q].pos == p && s.parents[q].letter == a {
				continue
			}
			left := append(s.wordOf(p), a)
			relations = append(relations, congruence.Relation{Left: left, Right: s.wordOf(q)})
		}
	}

	return relations, nil
}

// Presentation forces full closure and bundles Rules with the alphabet size
// into a congruence.Presentation, ready to hand to a congruence.Solver.
func (s *Semigroup) Presentation(ctx context.Context) (congruence.Presentation, error) {
	relations, err := s.Rules(ctx)
	if err != nil {
		return congruence.Presentation{}, err
	}

	return congruence.Presentation{
		Alphabet:  len(s.alphabet),
		Relations: relations,
	}, nil
}
