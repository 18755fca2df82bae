package element

import "fmt"

// Kind identifies the concrete variant of an Element. The set of kinds is
// closed: the interface cannot be implemented outside this package.
type Kind uint8

const (
	// KindTransformation is a total function on n points.
	KindTransformation Kind = iota
	// KindPartialPerm is an injective partial function on n points.
	KindPartialPerm
	// KindBipartition is a partition of {1..n} ∪ {-1..-n} into blocks.
	KindBipartition
	// KindBooleanMat is an n×n matrix over the Boolean semiring.
	KindBooleanMat
	// KindBinaryRelation is a relation on n points, stored as successor lists.
	KindBinaryRelation
	// KindWrapped is a host-supplied value with host multiply/compare funcs.
	KindWrapped
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindTransformation:
		return "Transformation"
	case KindPartialPerm:
		return "PartialPerm"
	case KindBipartition:
		return "Bipartition"
	case KindBooleanMat:
		return "BooleanMat"
	case KindBinaryRelation:
		return "BinaryRelation"
	case KindWrapped:
		return "Wrapped"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Element is one member of a finite semigroup. Implementations are immutable
// after construction; every operation returns a fresh value. The interface is
// sealed: only the kinds declared in this package implement it.
type Element interface {
	// Kind reports the concrete variant.
	Kind() Kind

	// Degree reports the size of the point set the element acts on
	// (0 for Wrapped values).
	Degree() int

	// Mul returns the product of the receiver and other, applying the
	// receiver first. Fails with ErrKindMismatch or ErrDegreeMismatch.
	Mul(other Element) (Element, error)

	// Cmp orders two elements of the same kind and degree, returning
	// -1, 0, or +1. The order is total within a kind and is used for
	// deduplication and sorted queries, never to define enumeration order.
	Cmp(other Element) (int, error)

	// Equal reports whether other is the same kind, degree, and value.
	// Unlike Cmp it never fails: any mismatch is simply false.
	Equal(other Element) bool

	// Identity returns the two-sided neutral element of the same kind and
	// degree. Fails with ErrNoIdentity for Wrapped values without Ops.One.
	Identity() (Element, error)

	// Pow returns the n-th power by binary exponentiation; n must be
	// non-negative and n == 0 yields Identity().
	Pow(n int) (Element, error)

	// Clone returns an independent copy.
	Clone() Element

	// String renders the element in constructor-like form.
	String() string

	// appendKey appends the canonical byte encoding to dst and reports
	// whether the kind is encodable. Seals the interface.
	appendKey(dst []byte) ([]byte, bool)
}

// AppendKey appends el's canonical byte encoding to dst and returns the
// extended slice. The encoding is injective within a kind and degree, so two
// elements share an encoding exactly when they are Equal. The second result
// is false for kinds with no canonical encoding (Wrapped); dst is then
// returned unchanged.
func AppendKey(dst []byte, el Element) ([]byte, bool) {
	return el.appendKey(dst)
}

// checkOperands validates that a and b may be multiplied or compared.
func checkOperands(a, b Element) error {
	if a.Kind() != b.Kind() {
		return fmt.Errorf("%w: %s vs %s", ErrKindMismatch, a.Kind(), b.Kind())
	}
	if a.Degree() != b.Degree() {
		return fmt.Errorf("%w: %d vs %d", ErrDegreeMismatch, a.Degree(), b.Degree())
	}

	return nil
}

// equalElements implements Equal on top of Cmp for every kind.
func equalElements(a, b Element) bool {
	c, err := a.Cmp(b)

	return err == nil && c == 0
}

// pow implements Pow for every kind: square-and-multiply from the least
// significant exponent bit, so the identity is only needed for n == 0.
// Complexity: O(log n) multiplications.
func pow(a Element, n int) (Element, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeExponent, n)
	}
	if n == 0 {
		return a.Identity()
	}

	var (
		acc  Element
		base = a
		err  error
	)
	for n > 0 {
		if n&1 == 1 {
			if acc == nil {
				acc = base
			} else if acc, err = acc.Mul(base); err != nil {
				return nil, err
			}
		}
		n >>= 1
		if n > 0 {
			if base, err = base.Mul(base); err != nil {
				return nil, err
			}
		}
	}

	return acc, nil
}
