package element

import (
	"encoding/binary"
	"fmt"
)

// BooleanMat is an n×n matrix over the Boolean semiring (OR as addition,
// AND as multiplication).
type BooleanMat struct {
	degree int
	rows   [][]bool
}

// NewBooleanMat validates that rows form a square matrix and returns the
// boolean matrix they define. Rows are deep-copied, so later mutation of the
// input cannot alias the element.
//
// Complexity: O(n²).
func NewBooleanMat(rows [][]bool) (*BooleanMat, error) {
	n := len(rows)
	copied := make([][]bool, n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrNotSquare, i, len(row), n)
		}
		copied[i] = append([]bool(nil), row...)
	}

	return &BooleanMat{degree: n, rows: copied}, nil
}

// Kind reports KindBooleanMat.
func (m *BooleanMat) Kind() Kind { return KindBooleanMat }

// Degree reports the matrix dimension n.
func (m *BooleanMat) Degree() int { return m.degree }

// Get returns entry (i, j), failing with ErrIndexOutOfRange on bad bounds.
func (m *BooleanMat) Get(i, j int) (bool, error) {
	if i < 0 || i >= m.degree || j < 0 || j >= m.degree {
		return false, fmt.Errorf("%w: entry (%d, %d) of %d×%d", ErrIndexOutOfRange, i, j, m.degree, m.degree)
	}

	return m.rows[i][j], nil
}

// Rows returns a deep copy of the row data.
func (m *BooleanMat) Rows() [][]bool {
	out := make([][]bool, m.degree)
	for i, row := range m.rows {
		out[i] = append([]bool(nil), row...)
	}

	return out
}

// Mul returns the Boolean matrix product: result[i][j] is the OR over k of
// m[i][k] AND other[k][j].
//
// Complexity: O(n³), short-circuiting each entry at the first witness.
func (m *BooleanMat) Mul(other Element) (Element, error) {
	if err := checkOperands(m, other); err != nil {
		return nil, err
	}
	o := other.(*BooleanMat)
	n := m.degree

	rows := make([][]bool, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]bool, n)
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				if m.rows[i][k] && o.rows[k][j] {
					rows[i][j] = true
					break
				}
			}
		}
	}

	return &BooleanMat{degree: n, rows: rows}, nil
}

// Cmp orders matrices lexicographically in row-major order, false before true.
func (m *BooleanMat) Cmp(other Element) (int, error) {
	if err := checkOperands(m, other); err != nil {
		return 0, err
	}
	o := other.(*BooleanMat)

	for i := range m.rows {
		for j := range m.rows[i] {
			if m.rows[i][j] != o.rows[i][j] {
				if o.rows[i][j] {
					return -1, nil
				}

				return 1, nil
			}
		}
	}

	return 0, nil
}

// Equal reports whether other is a boolean matrix with the same entries.
func (m *BooleanMat) Equal(other Element) bool { return equalElements(m, other) }

// Identity returns the identity matrix of the same dimension.
func (m *BooleanMat) Identity() (Element, error) {
	rows := make([][]bool, m.degree)
	for i := range rows {
		rows[i] = make([]bool, m.degree)
		rows[i][i] = true
	}

	return &BooleanMat{degree: m.degree, rows: rows}, nil
}

// Pow returns the n-th power. See Element.Pow.
func (m *BooleanMat) Pow(n int) (Element, error) { return pow(m, n) }

// Clone returns an independent copy.
func (m *BooleanMat) Clone() Element {
	return &BooleanMat{degree: m.degree, rows: m.Rows()}
}

// String renders the matrix in constructor form.
func (m *BooleanMat) String() string {
	return fmt.Sprintf("BooleanMat(%v)", m.rows)
}

func (m *BooleanMat) appendKey(dst []byte) ([]byte, bool) {
	dst = append(dst, byte(KindBooleanMat))
	dst = binary.AppendUvarint(dst, uint64(m.degree))

	// Pack entries row-major, eight per byte.
	var cur byte
	bits := 0
	for _, row := range m.rows {
		for _, set := range row {
			cur <<= 1
			if set {
				cur |= 1
			}
			bits++
			if bits == 8 {
				dst = append(dst, cur)
				cur, bits = 0, 0
			}
		}
	}
	if bits > 0 {
		dst = append(dst, cur<<(8-bits))
	}

	return dst, true
}
