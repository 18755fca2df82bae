// Package froidurepin enumerates a finite semigroup from its generators by
// breadth-first short-lex word expansion, incrementally and resumably.
package froidurepin

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/semigroup/element"
)

// parentLink records the first-discovered route to a position: the position
// it was expanded from and the letter applied. Generators carry no link.
type parentLink struct {
	pos    int // parent position; -1 for generators
	letter int // letter applied;  -1 for generators
}

// Semigroup is the enumeration engine. It owns the generator alphabet, the
// discovered-element table, the membership index, the right Cayley rows, the
// parent links, and the frontier cursor; all of them grow append-only and
// are mutated only by Enumerate (and the forcing queries that call it).
//
// A Semigroup is not safe for concurrent use: each expansion step depends on
// the previous ones through the shared index and frontier, so callers must
// not share an instance across goroutines without external synchronization.
// Elements returned by queries are immutable and safe to share.
type Semigroup struct {
	kind   element.Kind
	degree int

	alphabet    []element.Element // letters in input order, duplicates kept
	letterPos   []int             // letter -> table position
	dupOf       []int             // letter -> first letter with an equal element
	firstLetter []int             // generator position -> seeding letter

	table   []element.Element // position -> element, append-only
	index   memberIndex       // element -> position
	right   [][]int           // position -> per-letter successor row, one row per expanded position
	parents []parentLink      // position -> first-discovery route
	length  []int             // position -> minimal word length

	cursor     int // positions below cursor are fully expanded
	begun      bool
	maxWordLen int

	idempotents int // cached NrIdempotents; -1 until computed

	sortedPos []int // sorted rank -> position; nil until built
	posSorted []int // position -> sorted rank

	reporter    Reporter
	batch       int
	reportEvery int
}

// New validates gens and returns an engine seeded with them. The generators
// define the alphabet: letter i is gens[i], duplicates included. Distinct
// generators occupy positions 0 up to their count in first-occurrence order;
// a duplicate generator shares the earlier occurrence's position.
//
// Fails with ErrEmptyGenerators, ErrNilGenerator, ErrOptionViolation, or a
// wrapped element.ErrKindMismatch / element.ErrDegreeMismatch when the
// generators do not share one kind and degree.
func New(gens []element.Element, opts ...Option) (*Semigroup, error) {
	// 1. Validate input presence.
	if len(gens) == 0 {
		return nil, ErrEmptyGenerators
	}

	// 2. Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3. Validate the generators against the first one's kind and degree.
	for i, g := range gens {
		if g == nil {
			return nil, fmt.Errorf("%w: generator %d", ErrNilGenerator, i)
		}
		if g.Kind() != gens[0].Kind() {
			return nil, fmt.Errorf("froidurepin: generator %d: %w: %s vs %s",
				i, element.ErrKindMismatch, g.Kind(), gens[0].Kind())
		}
		if g.Degree() != gens[0].Degree() {
			return nil, fmt.Errorf("froidurepin: generator %d: %w: %d vs %d",
				i, element.ErrDegreeMismatch, g.Degree(), gens[0].Degree())
		}
	}

	s := &Semigroup{
		kind:        gens[0].Kind(),
		degree:      gens[0].Degree(),
		alphabet:    append([]element.Element(nil), gens...),
		letterPos:   make([]int, len(gens)),
		dupOf:       make([]int, len(gens)),
		index:       newMemberIndex(gens[0]),
		maxWordLen:  1,
		idempotents: -1,
		reporter:    o.Reporter,
		batch:       o.BatchSize,
		reportEvery: o.ReportEvery,
	}

	// 4. Seed the table with the distinct generators, in first-occurrence
	// order. A duplicate letter maps to the earlier letter's position.
	for a, g := range s.alphabet {
		if pos, ok := s.index.lookup(g); ok {
			s.letterPos[a] = pos
			s.dupOf[a] = s.firstLetter[pos]
			continue
		}
		pos := len(s.table)
		s.table = append(s.table, g)
		s.index.insert(g, pos)
		s.parents = append(s.parents, parentLink{pos: -1, letter: -1})
		s.length = append(s.length, 1)
		s.firstLetter = append(s.firstLetter, a)
		s.letterPos[a] = pos
		s.dupOf[a] = a
	}

	return s, nil
}

// Enumerate expands the frontier breadth-first until closure is reached or
// the discovered count reaches limit, whichever comes first. Positions are
// discovered in exactly the short-lex order of their minimal generator
// words. Calling Enumerate again with a larger limit resumes where the
// previous call stopped; a limit at or below the current size is a no-op.
//
// A popped position is expanded across all letters atomically, so the table
// may overshoot limit by at most the alphabet size minus one.
//
// Cancellation is checked between frontier pops: an aborted call returns
// ctx.Err() with the engine consistent and resumable, never a half-written
// row or position. Negative limits fail with ErrInvalidLimit.
func (s *Semigroup) Enumerate(ctx context.Context, limit int) error {
	if limit < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	// Any call, including a no-op, marks the engine begun.
	s.begun = true
	if s.cursor == len(s.table) || len(s.table) >= limit {
		return nil
	}

	start := time.Now()
	s.reporter.OnStart(s.progress(limit, start))

	expanded := 0
	for s.cursor < len(s.table) && len(s.table) < limit {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := s.expand(s.cursor); err != nil {
			return err
		}
		s.cursor++

		expanded++
		if expanded%s.reportEvery == 0 {
			s.reporter.OnProgress(s.progress(limit, start))
		}
	}

	s.reporter.OnFinish(s.progress(limit, start))

	return nil
}

// expand multiplies position p by every letter in ascending order, recording
// one Cayley row and appending any products seen for the first time.
func (s *Semigroup) expand(p int) error {
	row := make([]int, len(s.alphabet))
	left := s.table[p]

	for a, gen := range s.alphabet {
		// A duplicate letter contributes the same products as its first
		// occurrence; copy that column instead of re-multiplying.
		if s.dupOf[a] != a {
			row[a] = row[s.dupOf[a]]
			continue
		}

		product, err := left.Mul(gen)
		if err != nil {
			return fmt.Errorf("froidurepin: expanding position %d by letter %d: %w", p, a, err)
		}

		q, ok := s.index.lookup(product)
		if !ok {
			q = len(s.table)
			s.table = append(s.table, product)
			s.index.insert(product, q)
			s.parents = append(s.parents, parentLink{pos: p, letter: a})
			s.length = append(s.length, s.length[p]+1)
			if s.length[q] > s.maxWordLen {
				s.maxWordLen = s.length[q]
			}
		}
		row[a] = q
	}

	s.right = append(s.right, row)

	return nil
}

// progress snapshots the engine state for reporter observations.
func (s *Semigroup) progress(limit int, start time.Time) Progress {
	return Progress{
		Size:          len(s.table),
		Expanded:      s.cursor,
		MaxWordLength: s.maxWordLen,
		Limit:         limit,
		Elapsed:       time.Since(start),
		Done:          s.IsDone(),
	}
}

// Kind reports the kind shared by every element of the semigroup.
func (s *Semigroup) Kind() element.Kind { return s.kind }

// Degree reports the degree shared by every element of the semigroup.
func (s *Semigroup) Degree() int { return s.degree }

// NrGenerators reports the alphabet size, duplicates included.
func (s *Semigroup) NrGenerators() int { return len(s.alphabet) }

// Generator returns the i-th generator of the alphabet, in input order.
func (s *Semigroup) Generator(i int) (element.Element, error) {
	if i < 0 || i >= len(s.alphabet) {
		return nil, fmt.Errorf("%w: generator %d of %d", ErrIndexOutOfRange, i, len(s.alphabet))
	}

	return s.alphabet[i], nil
}

// CurrentSize reports the number of elements discovered so far, without
// enumerating further.
func (s *Semigroup) CurrentSize() int { return len(s.table) }

// CurrentMaxWordLength reports the longest minimal word among discovered
// positions, without enumerating further. It is 1 after construction.
func (s *Semigroup) CurrentMaxWordLength() int { return s.maxWordLen }

// IsDone reports whether the closure is complete: every discovered position
// has been expanded and no product escaped the table.
func (s *Semigroup) IsDone() bool { return s.cursor == len(s.table) }

// IsBegun reports whether any Enumerate pass was ever requested, directly or
// through a forcing query. It is false after construction.
func (s *Semigroup) IsBegun() bool { return s.begun }
