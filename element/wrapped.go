package element

import "fmt"

// Ops is the capability record a host supplies when wrapping its own values.
// Mul and Cmp are required; One is optional and enables Identity and Pow(0).
//
// The engine never verifies that Mul is associative or that Cmp is a total
// order consistent with Mul. Both are caller obligations: a non-associative
// Mul enumerates garbage without any error.
type Ops struct {
	// Mul returns the product of a and b (a applied first, by convention).
	Mul func(a, b any) any

	// Cmp orders two host values; only the sign of the result is used.
	Cmp func(a, b any) int

	// One, if non-nil, returns the identity for a's carrier; it receives an
	// arbitrary wrapped value so hosts can size the identity correctly.
	One func(a any) any
}

// Wrapped is a host-supplied opaque value together with its Ops. Its degree
// is always 0; hosts segregate incompatible carriers themselves. Wrapped
// values have no canonical byte encoding, so indexes fall back to Cmp-based
// ordered lookup.
type Wrapped struct {
	value any
	ops   Ops
}

// Wrap builds a Wrapped element from a host value and its capability record.
// Fails with ErrNilOp when Mul or Cmp is missing.
func Wrap(value any, ops Ops) (*Wrapped, error) {
	if ops.Mul == nil {
		return nil, fmt.Errorf("%w: Mul", ErrNilOp)
	}
	if ops.Cmp == nil {
		return nil, fmt.Errorf("%w: Cmp", ErrNilOp)
	}

	return &Wrapped{value: value, ops: ops}, nil
}

// Kind reports KindWrapped.
func (w *Wrapped) Kind() Kind { return KindWrapped }

// Degree reports 0: wrapped values act on no point set.
func (w *Wrapped) Degree() int { return 0 }

// Value returns the host payload. The payload must be treated as immutable;
// Clone does not deep-copy it.
func (w *Wrapped) Value() any { return w.value }

// Mul delegates to the host multiply; the result carries the receiver's Ops.
func (w *Wrapped) Mul(other Element) (Element, error) {
	if err := checkOperands(w, other); err != nil {
		return nil, err
	}
	o := other.(*Wrapped)

	return &Wrapped{value: w.ops.Mul(w.value, o.value), ops: w.ops}, nil
}

// Cmp delegates to the host comparator, normalizing the result to -1, 0, +1.
func (w *Wrapped) Cmp(other Element) (int, error) {
	if err := checkOperands(w, other); err != nil {
		return 0, err
	}
	o := other.(*Wrapped)

	switch c := w.ops.Cmp(w.value, o.value); {
	case c < 0:
		return -1, nil
	case c > 0:
		return 1, nil
	default:
		return 0, nil
	}
}

// Equal reports whether other is a wrapped value comparing equal under the
// host comparator.
func (w *Wrapped) Equal(other Element) bool { return equalElements(w, other) }

// Identity returns the host identity via Ops.One, or ErrNoIdentity when the
// host supplied none.
func (w *Wrapped) Identity() (Element, error) {
	if w.ops.One == nil {
		return nil, fmt.Errorf("%w: Wrapped without Ops.One", ErrNoIdentity)
	}

	return &Wrapped{value: w.ops.One(w.value), ops: w.ops}, nil
}

// Pow returns the n-th power. Pow(0) requires Ops.One; higher powers do not.
func (w *Wrapped) Pow(n int) (Element, error) { return pow(w, n) }

// Clone returns a copy sharing the host payload (treated as immutable).
func (w *Wrapped) Clone() Element {
	return &Wrapped{value: w.value, ops: w.ops}
}

// String renders the wrapped payload.
func (w *Wrapped) String() string {
	return fmt.Sprintf("Wrapped(%v)", w.value)
}

func (w *Wrapped) appendKey(dst []byte) ([]byte, bool) {
	return dst, false
}
