// Package element: sentinel error set.
//
// Every message is prefixed with "element: " so errors can be grepped across
// logs. Constructors and operations return these sentinels (possibly wrapped
// with fmt.Errorf("%w: detail")); callers match them with errors.Is.
package element

import "errors"

var (
	// ErrKindMismatch is returned when two elements of different kinds are
	// multiplied or compared.
	ErrKindMismatch = errors.New("element: kind mismatch")

	// ErrDegreeMismatch is returned when two elements of the same kind but
	// different degrees are multiplied or compared.
	ErrDegreeMismatch = errors.New("element: degree mismatch")

	// ErrNegativeExponent is returned by Pow when the exponent is negative.
	ErrNegativeExponent = errors.New("element: exponent must be non-negative")

	// ErrIndexOutOfRange is returned by bounds-checked accessors
	// (Bipartition.IsTransverseBlock, BooleanMat.Get, BinaryRelation.Successors).
	ErrIndexOutOfRange = errors.New("element: index out of range")

	// ErrInvalidDegree is returned by constructors given a negative degree.
	ErrInvalidDegree = errors.New("element: degree must be non-negative")

	// ErrImageOutOfRange is returned by NewTransformation when an image does
	// not lie in [0, degree).
	ErrImageOutOfRange = errors.New("element: image out of range")

	// ErrPointOutOfRange is returned when a domain, range, or adjacency point
	// does not lie in [0, degree).
	ErrPointOutOfRange = errors.New("element: point out of range")

	// ErrDuplicatePoint is returned when a point that must be unique appears
	// twice (partial-permutation domain or range, bipartition blocks).
	ErrDuplicatePoint = errors.New("element: duplicate point")

	// ErrLengthMismatch is returned by NewPartialPerm when domain and range
	// have different lengths.
	ErrLengthMismatch = errors.New("element: domain and range lengths differ")

	// ErrNotSquare is returned by NewBooleanMat when the row data is not an
	// n×n matrix.
	ErrNotSquare = errors.New("element: matrix is not square")

	// ErrBadPartition is returned by NewBipartition when the blocks do not
	// partition {1..n} ∪ {-1..-n} (zero, missing, or empty-block points).
	ErrBadPartition = errors.New("element: invalid partition")

	// ErrNilOp is returned by Wrap when a required host function is nil.
	ErrNilOp = errors.New("element: nil operation func")

	// ErrNoIdentity is returned by Identity (and Pow with exponent 0) on a
	// Wrapped element constructed without an Ops.One function.
	ErrNoIdentity = errors.New("element: identity unavailable")
)
