package congruence

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors returned by Presentation.Validate.
// Match with errors.Is; dynamic details are attached via fmt.Errorf("%w: ...").
var (
	// ErrInvalidAlphabet - the alphabet size is zero or negative.
	ErrInvalidAlphabet = errors.New("congruence: alphabet must be positive")
	// ErrEmptyWord - a relation side is the empty word.
	ErrEmptyWord = errors.New("congruence: relation word must be non-empty")
	// ErrLetterOutOfRange - a relation letter is outside [0, Alphabet).
	ErrLetterOutOfRange = errors.New("congruence: letter out of range")
)

// Relation equates two non-empty words over a common generator alphabet.
// Letters are indices into the alphabet, in the short-lex order the engine
// assigns to its generators.
type Relation struct {
	Left  []int
	Right []int
}

// Presentation is a finite semigroup presentation: an alphabet size and the
// defining relations over it. froidurepin.Presentation produces values of
// this type from an enumerated semigroup.
type Presentation struct {
	// Alphabet is the number of generator letters; letters are [0, Alphabet).
	Alphabet int
	// Relations are the defining relations; both sides non-empty.
	Relations []Relation
}

// Validate reports whether the presentation is well formed: a positive
// alphabet and, for every relation, two non-empty words whose letters all
// lie in [0, Alphabet). Returns nil when valid.
func (p Presentation) Validate() error {
	// 1) Alphabet must admit at least one letter.
	if p.Alphabet < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidAlphabet, p.Alphabet)
	}
	// 2) Every relation side is a non-empty word over [0, Alphabet).
	for i, r := range p.Relations {
		if err := p.checkWord(i, "left", r.Left); err != nil {
			return err
		}
		if err := p.checkWord(i, "right", r.Right); err != nil {
			return err
		}
	}
	return nil
}

// checkWord validates one side of relation i.
func (p Presentation) checkWord(i int, side string, w []int) error {
	if len(w) == 0 {
		return fmt.Errorf("%w: relation %d, %s side", ErrEmptyWord, i, side)
	}
	for j, a := range w {
		if a < 0 || a >= p.Alphabet {
			return fmt.Errorf("%w: relation %d, %s side, letter %d is %d (alphabet %d)",
				ErrLetterOutOfRange, i, side, j, a, p.Alphabet)
		}
	}
	return nil
}

// Solver is the contract a finitely-presented-semigroup engine must satisfy
// to consume presentations produced here. Implementations live outside this
// module; their internal concurrency is opaque to callers.
type Solver interface {
	// WordToClassIndex resolves a word over the presentation's alphabet to
	// the index of its congruence class.
	WordToClassIndex(ctx context.Context, word []int) (int, error)

	// NrClasses counts congruence classes. Potentially long-running; honors
	// ctx cancellation.
	NrClasses(ctx context.Context) (int, error)

	// SetMaxThreads bounds the solver's internal worker count.
	SetMaxThreads(n int)

	// IsConfluent reports whether the solver's rewriting system is confluent.
	IsConfluent(ctx context.Context) (bool, error)
}
