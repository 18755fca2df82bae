// Package congruence defines the contract between the enumeration engine and
// an external finitely-presented-semigroup solver.
//
// What
//
//   - Relation: two non-empty words over a shared generator alphabet that
//     evaluate to the same semigroup element.
//   - Presentation: an alphabet size plus defining relations, with Validate.
//   - Solver: the consumed-only interface of an external rewriting engine
//     (class resolution, class counting, confluence, worker bounds).
//
// Why
//
//	froidurepin.Rules extracts the defining relations of an enumerated
//	semigroup; this package gives those relations a stable shape and names
//	the operations a downstream solver must offer. No solver ships here.
//
// Usage
//
//	p, err := s.Presentation(ctx) // congruence.Presentation
//	if err != nil { ... }
//	if err := p.Validate(); err != nil { ... }
//
// Errors
//
//   - ErrInvalidAlphabet    if the alphabet size is not positive.
//   - ErrEmptyWord          if a relation side is empty.
//   - ErrLetterOutOfRange   if a relation letter is outside the alphabet.
package congruence
