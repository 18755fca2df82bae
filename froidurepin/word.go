package froidurepin

import (
	"fmt"

	"github.com/katalvlaran/semigroup/element"
)

// wordOf reconstructs the minimal word of a discovered position by walking
// parent links back to a generator, then reversing into left-to-right order.
// By the discovery invariant this word is the shortest one reaching the
// position, and the lexicographically least among equal-length candidates.
// Cost is proportional to the word length.
func (s *Semigroup) wordOf(pos int) Word {
	// build reversed word
	w := make(Word, 0, s.length[pos])
	cur := pos
	for s.parents[cur].pos >= 0 {
		w = append(w, s.parents[cur].letter)
		cur = s.parents[cur].pos
	}
	// cur is now a generator position; its word is its seeding letter
	w = append(w, s.firstLetter[cur])

	// reverse to get first letter -> last letter
	for i, j := 0, len(w)-1; i < j; i, j = i+1, j-1 {
		w[i], w[j] = w[j], w[i]
	}

	return w
}

// Evaluate multiplies out a non-empty word over gens, left to right, and
// returns the resulting element. A word produced by Factorise evaluates over
// the same generator list to exactly the element it factorises.
//
// Fails with ErrInvalidWord for an empty word or an out-of-range letter, and
// with ErrNilGenerator when the word touches a nil generator.
func Evaluate(gens []element.Element, w Word) (element.Element, error) {
	if len(w) == 0 {
		return nil, fmt.Errorf("%w: empty word", ErrInvalidWord)
	}
	for i, a := range w {
		if a < 0 || a >= len(gens) {
			return nil, fmt.Errorf("%w: letter %d at index %d with %d generators", ErrInvalidWord, a, i, len(gens))
		}
		if gens[a] == nil {
			return nil, fmt.Errorf("%w: generator %d", ErrNilGenerator, a)
		}
	}

	acc := gens[w[0]]
	for _, a := range w[1:] {
		next, err := acc.Mul(gens[a])
		if err != nil {
			return nil, err
		}
		acc = next
	}

	return acc, nil
}
