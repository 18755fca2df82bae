package element

import (
	"encoding/binary"
	"fmt"
)

// undefinedPoint marks positions outside a partial permutation's domain.
const undefinedPoint = -1

// PartialPerm is an injective partial function on {0..degree-1}, stored as a
// dense image list with undefinedPoint for points outside the domain.
type PartialPerm struct {
	degree int
	images []int
}

// NewPartialPerm builds the partial permutation mapping domain[k] to ran[k]
// for each k, acting on degree points. The lists must have equal length,
// every point must lie in [0, degree), domain points must be distinct, and
// range points must be distinct (injectivity).
//
// Complexity: O(degree + len(domain)).
func NewPartialPerm(domain, ran []int, degree int) (*PartialPerm, error) {
	if degree < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDegree, degree)
	}
	if len(domain) != len(ran) {
		return nil, fmt.Errorf("%w: domain %d vs range %d", ErrLengthMismatch, len(domain), len(ran))
	}

	images := make([]int, degree)
	for i := range images {
		images[i] = undefinedPoint
	}
	taken := make([]bool, degree)

	for k, d := range domain {
		r := ran[k]
		if d < 0 || d >= degree {
			return nil, fmt.Errorf("%w: domain[%d] = %d with degree %d", ErrPointOutOfRange, k, d, degree)
		}
		if r < 0 || r >= degree {
			return nil, fmt.Errorf("%w: range[%d] = %d with degree %d", ErrPointOutOfRange, k, r, degree)
		}
		if images[d] != undefinedPoint {
			return nil, fmt.Errorf("%w: domain point %d", ErrDuplicatePoint, d)
		}
		if taken[r] {
			return nil, fmt.Errorf("%w: range point %d", ErrDuplicatePoint, r)
		}
		images[d] = r
		taken[r] = true
	}

	return &PartialPerm{degree: degree, images: images}, nil
}

// Kind reports KindPartialPerm.
func (p *PartialPerm) Kind() Kind { return KindPartialPerm }

// Degree reports the number of points acted on.
func (p *PartialPerm) Degree() int { return p.degree }

// Rank reports the number of points in the domain.
func (p *PartialPerm) Rank() int {
	rank := 0
	for _, img := range p.images {
		if img != undefinedPoint {
			rank++
		}
	}

	return rank
}

// Domain returns the defined points in ascending order.
func (p *PartialPerm) Domain() []int {
	dom := make([]int, 0, p.degree)
	for i, img := range p.images {
		if img != undefinedPoint {
			dom = append(dom, i)
		}
	}

	return dom
}

// Range returns the images of Domain in the same order.
func (p *PartialPerm) Range() []int {
	ran := make([]int, 0, p.degree)
	for _, img := range p.images {
		if img != undefinedPoint {
			ran = append(ran, img)
		}
	}

	return ran
}

// Mul returns the composition "p first, then other", defined on the points x
// where both p(x) and other(p(x)) are defined. The composition of injective
// partial maps is injective, so no re-validation is needed.
//
// Complexity: O(degree).
func (p *PartialPerm) Mul(other Element) (Element, error) {
	if err := checkOperands(p, other); err != nil {
		return nil, err
	}
	o := other.(*PartialPerm)

	res := make([]int, p.degree)
	for i, img := range p.images {
		if img == undefinedPoint {
			res[i] = undefinedPoint
			continue
		}
		res[i] = o.images[img]
	}

	return &PartialPerm{degree: p.degree, images: res}, nil
}

// Cmp orders partial permutations lexicographically by image list, with
// undefined points sorting before defined ones.
func (p *PartialPerm) Cmp(other Element) (int, error) {
	if err := checkOperands(p, other); err != nil {
		return 0, err
	}
	o := other.(*PartialPerm)

	for i := range p.images {
		switch {
		case p.images[i] < o.images[i]:
			return -1, nil
		case p.images[i] > o.images[i]:
			return 1, nil
		}
	}

	return 0, nil
}

// Equal reports whether other is a partial permutation with the same graph.
func (p *PartialPerm) Equal(other Element) bool { return equalElements(p, other) }

// Identity returns the total identity map on the same degree, which is the
// two-sided neutral element among partial permutations of that degree.
func (p *PartialPerm) Identity() (Element, error) {
	images := make([]int, p.degree)
	for i := range images {
		images[i] = i
	}

	return &PartialPerm{degree: p.degree, images: images}, nil
}

// Pow returns the n-th power. See Element.Pow.
func (p *PartialPerm) Pow(n int) (Element, error) { return pow(p, n) }

// Clone returns an independent copy.
func (p *PartialPerm) Clone() Element {
	return &PartialPerm{degree: p.degree, images: append([]int(nil), p.images...)}
}

// String renders the partial permutation in constructor form.
func (p *PartialPerm) String() string {
	return fmt.Sprintf("PartialPerm(%v, %v, %d)", p.Domain(), p.Range(), p.degree)
}

func (p *PartialPerm) appendKey(dst []byte) ([]byte, bool) {
	dst = append(dst, byte(KindPartialPerm))
	dst = binary.AppendUvarint(dst, uint64(p.degree))
	for _, img := range p.images {
		dst = binary.AppendVarint(dst, int64(img))
	}

	return dst, true
}
