package element

import (
	"encoding/binary"
	"fmt"
	"sort"
)

// BinaryRelation is a relation on {0..n-1} stored as successor lists:
// succ[i] holds, sorted ascending and without duplicates, the points j with
// i related to j.
type BinaryRelation struct {
	degree int
	succ   [][]int
}

// NewBinaryRelation builds a relation on len(adjacency) points from successor
// lists. Every successor must lie in [0, n); lists are normalized (sorted,
// deduplicated) on construction, so logically equal inputs yield equal
// elements.
//
// Complexity: O(n + E log E) for E successor entries.
func NewBinaryRelation(adjacency [][]int) (*BinaryRelation, error) {
	n := len(adjacency)
	succ := make([][]int, n)
	for i, row := range adjacency {
		for _, v := range row {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("%w: adjacency[%d] contains %d with degree %d", ErrPointOutOfRange, i, v, n)
			}
		}
		sorted := append([]int(nil), row...)
		sort.Ints(sorted)
		succ[i] = dedupSorted(sorted)
	}

	return &BinaryRelation{degree: n, succ: succ}, nil
}

// dedupSorted removes adjacent duplicates in place.
func dedupSorted(xs []int) []int {
	out := xs[:0]
	for i, x := range xs {
		if i == 0 || x != xs[i-1] {
			out = append(out, x)
		}
	}

	return out
}

// Kind reports KindBinaryRelation.
func (r *BinaryRelation) Kind() Kind { return KindBinaryRelation }

// Degree reports the number of points.
func (r *BinaryRelation) Degree() int { return r.degree }

// Successors returns a copy of the successor list of point i, failing with
// ErrIndexOutOfRange on bad bounds.
func (r *BinaryRelation) Successors(i int) ([]int, error) {
	if i < 0 || i >= r.degree {
		return nil, fmt.Errorf("%w: point %d of %d", ErrIndexOutOfRange, i, r.degree)
	}

	return append([]int(nil), r.succ[i]...), nil
}

// Mul returns the relational composition: x is related to z in the result
// exactly when x→y in r and y→z in other for some y.
//
// Complexity: O(n·E) with a per-row marker sweep; rows come out sorted
// without further sorting.
func (r *BinaryRelation) Mul(other Element) (Element, error) {
	if err := checkOperands(r, other); err != nil {
		return nil, err
	}
	o := other.(*BinaryRelation)
	n := r.degree

	succ := make([][]int, n)
	mark := make([]bool, n)
	for i := 0; i < n; i++ {
		hits := 0
		for _, mid := range r.succ[i] {
			for _, z := range o.succ[mid] {
				if !mark[z] {
					mark[z] = true
					hits++
				}
			}
		}
		row := make([]int, 0, hits)
		for z := 0; z < n && hits > 0; z++ {
			if mark[z] {
				row = append(row, z)
				mark[z] = false
				hits--
			}
		}
		succ[i] = row
	}

	return &BinaryRelation{degree: n, succ: succ}, nil
}

// Cmp orders relations lexicographically by successor list, row by row; a
// row that is a strict prefix of the other sorts first.
func (r *BinaryRelation) Cmp(other Element) (int, error) {
	if err := checkOperands(r, other); err != nil {
		return 0, err
	}
	o := other.(*BinaryRelation)

	for i := range r.succ {
		a, b := r.succ[i], o.succ[i]
		for k := 0; k < len(a) && k < len(b); k++ {
			switch {
			case a[k] < b[k]:
				return -1, nil
			case a[k] > b[k]:
				return 1, nil
			}
		}
		switch {
		case len(a) < len(b):
			return -1, nil
		case len(a) > len(b):
			return 1, nil
		}
	}

	return 0, nil
}

// Equal reports whether other is a relation with the same pairs.
func (r *BinaryRelation) Equal(other Element) bool { return equalElements(r, other) }

// Identity returns the diagonal relation on the same degree.
func (r *BinaryRelation) Identity() (Element, error) {
	succ := make([][]int, r.degree)
	for i := range succ {
		succ[i] = []int{i}
	}

	return &BinaryRelation{degree: r.degree, succ: succ}, nil
}

// Pow returns the n-th power. See Element.Pow.
func (r *BinaryRelation) Pow(n int) (Element, error) { return pow(r, n) }

// Clone returns an independent copy.
func (r *BinaryRelation) Clone() Element {
	succ := make([][]int, r.degree)
	for i, row := range r.succ {
		succ[i] = append([]int(nil), row...)
	}

	return &BinaryRelation{degree: r.degree, succ: succ}
}

// String renders the relation in constructor form.
func (r *BinaryRelation) String() string {
	return fmt.Sprintf("BinaryRelation(%v)", r.succ)
}

func (r *BinaryRelation) appendKey(dst []byte) ([]byte, bool) {
	dst = append(dst, byte(KindBinaryRelation))
	dst = binary.AppendUvarint(dst, uint64(r.degree))
	for _, row := range r.succ {
		dst = binary.AppendUvarint(dst, uint64(len(row)))
		for _, v := range row {
			dst = binary.AppendUvarint(dst, uint64(v))
		}
	}

	return dst, true
}
