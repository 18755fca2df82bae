package froidurepin

import (
	"context"
	"fmt"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/semigroup/element"
)

// ensureSorted forces closure and builds the sorted-position cache: every
// element keyed into a red-black tree by the variant comparator, then walked
// in order once. Discovery positions and sorted ranks are two permanent
// numberings of the same table.
func (s *Semigroup) ensureSorted(ctx context.Context) error {
	if s.sortedPos != nil {
		return nil
	}
	if _, err := s.Size(ctx); err != nil {
		return err
	}

	tree := redblacktree.NewWith(elementComparator)
	for pos, el := range s.table {
		tree.Put(el, pos)
	}

	s.sortedPos = make([]int, 0, len(s.table))
	s.posSorted = make([]int, len(s.table))
	it := tree.Iterator()
	for it.Next() {
		pos := it.Value().(int)
		s.posSorted[pos] = len(s.sortedPos)
		s.sortedPos = append(s.sortedPos, pos)
	}

	return nil
}

// SortedAt returns the i-th element in the variant comparator order, forcing
// full closure first. The comparator order is unrelated to discovery order.
func (s *Semigroup) SortedAt(ctx context.Context, i int) (element.Element, error) {
	if err := s.ensureSorted(ctx); err != nil {
		return nil, err
	}
	if i < 0 || i >= len(s.sortedPos) {
		return nil, fmt.Errorf("%w: sorted index %d of %d", ErrIndexOutOfRange, i, len(s.sortedPos))
	}

	return s.table[s.sortedPos[i]], nil
}

// PositionToSorted converts a discovery position to its rank in the variant
// comparator order, forcing full closure first.
func (s *Semigroup) PositionToSorted(ctx context.Context, pos int) (int, error) {
	if err := s.ensureSorted(ctx); err != nil {
		return 0, err
	}
	if pos < 0 || pos >= len(s.posSorted) {
		return 0, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, pos, len(s.posSorted))
	}

	return s.posSorted[pos], nil
}
