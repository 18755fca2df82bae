package froidurepin

import (
	"context"
	"errors"
	"io"

	"github.com/katalvlaran/semigroup/element"
)

// Iterator walks the semigroup in discovery order, expanding the frontier
// one position at a time. Multiple iterators over one engine are fine (they
// share the growing table), subject to the engine's single-goroutine rule.
type Iterator struct {
	s   *Semigroup
	pos int
}

// Iterator returns a forward iterator starting at position 0.
func (s *Semigroup) Iterator() *Iterator {
	return &Iterator{s: s}
}

// Next returns the element at the iterator's position and advances it,
// enumerating on demand. It returns io.EOF once the closure is exhausted.
func (it *Iterator) Next(ctx context.Context) (element.Element, error) {
	el, err := it.s.At(ctx, it.pos)
	if errors.Is(err, ErrIndexOutOfRange) {
		return nil, io.EOF
	}
	if err != nil {
		return nil, err
	}
	it.pos++

	return el, nil
}
