// Package element provides the algebraic elements a finite semigroup is
// generated from: transformations, partial permutations, bipartitions,
// boolean matrices, binary relations, and host-wrapped opaque values.
//
// What
//
//   - A closed Element interface with the full capability set:
//   - Mul: associative product of two same-kind, same-degree elements
//   - Cmp / Equal: a total order within a kind (deduplication, sorting)
//   - Identity: the two-sided neutral element of the same kind and degree
//   - Pow: n-th power by binary exponentiation (O(log n) products)
//   - Clone: explicit, total copy (elements are immutable after construction)
//   - Constructors that validate raw data (images, domain/range, blocks,
//     rows, adjacency) before an Element ever exists.
//   - AppendKey: canonical byte encoding for equality indexes; reports
//     whether the kind is encodable (Wrapped is not).
//
// Why
//
//   - The enumeration engine (package froidurepin) multiplies and
//     deduplicates millions of elements; it needs a small, uniform algebra
//     with cheap validity guarantees established once at construction.
//   - Callers compose products and powers directly for ad-hoc computation.
//
// Multiplication convention
//
//	Products compose left to right: (a·b) applies a first, then b. For
//	transformations this means (a·b)(x) = b(a(x)). All function-like kinds
//	(Transformation, PartialPerm, Bipartition) follow the same convention,
//	so generator words evaluate left to right.
//
// Determinism
//
//	Every operation is a pure function of its operands. Comparison orders
//	are lexicographic over canonical representations, so sorting a slice of
//	elements is fully reproducible.
//
// Complexity (n = degree)
//
//   - Transformation / PartialPerm: Mul O(n), Cmp O(n)
//   - Bipartition: Mul O(n α(n)) via union-find over three rows, Cmp O(n)
//   - BooleanMat / BinaryRelation: Mul O(n³) and O(n·E), Cmp O(n²)
//   - Wrapped: delegates to the host-supplied functions
//
// Usage
//
//	a, err := element.NewTransformation([]int{1, 0, 2})
//	b, err := element.NewTransformation([]int{0, 0, 2})
//	ab, err := a.Mul(b)          // apply a, then b
//	sq, err := a.Pow(2)          // binary exponentiation
//	if a.Equal(b) { ... }
//
// Errors
//
//   - ErrKindMismatch / ErrDegreeMismatch  on cross-kind or cross-degree use
//   - ErrNegativeExponent                  from Pow with n < 0
//   - ErrIndexOutOfRange                   from bounds-checked accessors
//   - constructor sentinels (ErrImageOutOfRange, ErrPointOutOfRange,
//     ErrDuplicatePoint, ErrLengthMismatch, ErrNotSquare, ErrBadPartition,
//     ErrInvalidDegree, ErrNilOp)
//   - ErrNoIdentity                        from Wrapped without an identity
//
// The Wrapped kind trusts the host: associativity of Ops.Mul and
// consistency of Ops.Cmp are caller obligations, never verified here.
package element
