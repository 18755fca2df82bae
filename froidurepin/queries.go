package froidurepin

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/semigroup/element"
)

// Size forces full closure and returns the number of distinct elements of
// the semigroup. After Size returns nil, IsDone reports true.
func (s *Semigroup) Size(ctx context.Context) (int, error) {
	if err := s.Enumerate(ctx, NoLimit); err != nil {
		return 0, err
	}

	return len(s.table), nil
}

// CurrentPosition reports the discovery position of x without enumerating
// further. Absence is reported on two channels: ErrNotEnumerated while the
// closure is incomplete (x may still appear later), ErrNotAMember once
// absence is definitive. Positions are stable: once returned, the same
// element always maps to the same position.
func (s *Semigroup) CurrentPosition(x element.Element) (int, error) {
	if x == nil {
		return -1, ErrNilElement
	}
	if x.Kind() != s.kind || x.Degree() != s.degree {
		// An alien element can never become a member.
		return -1, s.alienErr(x)
	}
	if pos, ok := s.index.lookup(x); ok {
		return pos, nil
	}
	if s.IsDone() {
		return -1, ErrNotAMember
	}

	return -1, ErrNotEnumerated
}

// Contains reports definitively whether x is an element of the semigroup,
// enumerating in batches of BatchSize positions until x appears or closure
// proves it absent. Elements of a different kind or degree are not members.
func (s *Semigroup) Contains(ctx context.Context, x element.Element) (bool, error) {
	if x == nil {
		return false, ErrNilElement
	}
	if x.Kind() != s.kind || x.Degree() != s.degree {
		return false, nil
	}

	switch _, err := s.locate(ctx, x); {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotAMember):
		return false, nil
	default:
		return false, err
	}
}

// locate is the shared forcing search: it probes the membership index,
// enumerating another batch between probes, until x is found or closure
// proves it absent (ErrNotAMember).
func (s *Semigroup) locate(ctx context.Context, x element.Element) (int, error) {
	for {
		if pos, ok := s.index.lookup(x); ok {
			return pos, nil
		}
		if s.IsDone() {
			return -1, ErrNotAMember
		}
		if err := s.Enumerate(ctx, len(s.table)+s.batch); err != nil {
			return -1, err
		}
	}
}

// Factorise forces enumeration until x is located or closure proves it
// absent, then returns the minimal word of x: the shortest sequence of
// letters whose left-to-right product is x, lexicographically least among
// equal-length candidates. Evaluate reverses the operation.
func (s *Semigroup) Factorise(ctx context.Context, x element.Element) (Word, error) {
	if x == nil {
		return nil, ErrNilElement
	}
	if x.Kind() != s.kind || x.Degree() != s.degree {
		return nil, s.alienErr(x)
	}

	pos, err := s.locate(ctx, x)
	if err != nil {
		return nil, err
	}

	return s.wordOf(pos), nil
}

// WordAt returns the minimal word of the element at pos, enumerating on
// demand. Fails with ErrIndexOutOfRange once no such position can exist.
func (s *Semigroup) WordAt(ctx context.Context, pos int) (Word, error) {
	if _, err := s.At(ctx, pos); err != nil {
		return nil, err
	}

	return s.wordOf(pos), nil
}

// At returns the element at the given discovery position, expanding the
// frontier on demand until the position exists. Fails with
// ErrIndexOutOfRange once closure proves no such position can exist.
func (s *Semigroup) At(ctx context.Context, pos int) (element.Element, error) {
	if pos < 0 {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, pos)
	}
	for pos >= len(s.table) && !s.IsDone() {
		if err := s.Enumerate(ctx, pos+1); err != nil {
			return nil, err
		}
	}
	if pos >= len(s.table) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, pos, len(s.table))
	}

	return s.table[pos], nil
}

// NrIdempotents forces full closure and returns the number of elements a
// with a·a = a. The count is computed once and cached; resumed or bounded
// enumeration schedules beforehand cannot change it.
func (s *Semigroup) NrIdempotents(ctx context.Context) (int, error) {
	if s.idempotents >= 0 {
		return s.idempotents, nil
	}
	if _, err := s.Size(ctx); err != nil {
		return 0, err
	}

	count := 0
	for _, el := range s.table {
		sq, err := el.Mul(el)
		if err != nil {
			return 0, err
		}
		if sq.Equal(el) {
			count++
		}
	}
	s.idempotents = count

	return count, nil
}

// alienErr builds the definitive non-membership error for an element whose
// kind or degree can never match the semigroup's.
func (s *Semigroup) alienErr(x element.Element) error {
	return fmt.Errorf("%w: %s of degree %d in a %s semigroup of degree %d",
		ErrNotAMember, x.Kind(), x.Degree(), s.kind, s.degree)
}
