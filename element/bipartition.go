package element

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Bipartition is a partition of {1..n} ∪ {-1..-n} into blocks, the element
// kind of the partition monoid. Internally points are indexed 0..2n-1:
// positive point p at index p-1, negative point -p at index n+p-1. Block ids
// are canonical: numbered by first occurrence scanning indexes ascending.
type Bipartition struct {
	degree   int
	blocks   []int
	nrBlocks int
}

// NewBipartition builds a bipartition from signed block lists. The blocks
// must partition {1..n} ∪ {-1..-n} exactly, where n is the largest absolute
// point mentioned; zero points, duplicates, gaps, and empty blocks are
// rejected.
//
// Complexity: O(n).
func NewBipartition(blocks ...[]int) (*Bipartition, error) {
	// 1. Determine the degree from the largest absolute point.
	degree := 0
	for _, block := range blocks {
		if len(block) == 0 {
			return nil, fmt.Errorf("%w: empty block", ErrBadPartition)
		}
		for _, p := range block {
			if p == 0 {
				return nil, fmt.Errorf("%w: point 0", ErrBadPartition)
			}
			if p < 0 {
				p = -p
			}
			if p > degree {
				degree = p
			}
		}
	}

	// 2. Assign each point to its input block, rejecting duplicates.
	raw := make([]int, 2*degree)
	seen := make([]bool, 2*degree)
	for b, block := range blocks {
		for _, p := range block {
			idx := pointIndex(p, degree)
			if seen[idx] {
				return nil, fmt.Errorf("%w: point %d", ErrDuplicatePoint, p)
			}
			seen[idx] = true
			raw[idx] = b
		}
	}

	// 3. Every point of {1..n} ∪ {-1..-n} must be covered.
	for idx, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("%w: point %d missing", ErrBadPartition, signedPoint(idx, degree))
		}
	}

	canonical, nr := canonicalBlocks(raw, len(blocks))

	return &Bipartition{degree: degree, blocks: canonical, nrBlocks: nr}, nil
}

// pointIndex converts a signed point to its internal index.
func pointIndex(p, degree int) int {
	if p > 0 {
		return p - 1
	}

	return degree - p - 1
}

// signedPoint converts an internal index back to its signed point.
func signedPoint(idx, degree int) int {
	if idx < degree {
		return idx + 1
	}

	return degree - idx - 1
}

// canonicalBlocks renumbers raw block ids (each below idBound) by first
// occurrence, returning the canonical id vector and the block count.
func canonicalBlocks(raw []int, idBound int) ([]int, int) {
	relabel := make([]int, idBound)
	for i := range relabel {
		relabel[i] = -1
	}

	out := make([]int, len(raw))
	next := 0
	for i, id := range raw {
		if relabel[id] < 0 {
			relabel[id] = next
			next++
		}
		out[i] = relabel[id]
	}

	return out, next
}

// Kind reports KindBipartition.
func (b *Bipartition) Kind() Kind { return KindBipartition }

// Degree reports n for a bipartition of {1..n} ∪ {-1..-n}.
func (b *Bipartition) Degree() int { return b.degree }

// NrBlocks reports the number of blocks.
func (b *Bipartition) NrBlocks() int { return b.nrBlocks }

// IsTransverseBlock reports whether block i contains both a positive and a
// negative point. Fails with ErrIndexOutOfRange when i is not a block id.
func (b *Bipartition) IsTransverseBlock(i int) (bool, error) {
	if i < 0 || i >= b.nrBlocks {
		return false, fmt.Errorf("%w: block %d of %d", ErrIndexOutOfRange, i, b.nrBlocks)
	}

	var pos, neg bool
	for idx, id := range b.blocks {
		if id != i {
			continue
		}
		if idx < b.degree {
			pos = true
		} else {
			neg = true
		}
	}

	return pos && neg, nil
}

// Rank reports the number of transverse blocks.
func (b *Bipartition) Rank() int {
	pos := make([]bool, b.nrBlocks)
	neg := make([]bool, b.nrBlocks)
	for idx, id := range b.blocks {
		if idx < b.degree {
			pos[id] = true
		} else {
			neg[id] = true
		}
	}

	rank := 0
	for i := 0; i < b.nrBlocks; i++ {
		if pos[i] && neg[i] {
			rank++
		}
	}

	return rank
}

// Blocks returns the blocks as signed point lists in canonical order:
// positives ascending, then negatives by ascending absolute value.
func (b *Bipartition) Blocks() [][]int {
	out := make([][]int, b.nrBlocks)
	for idx, id := range b.blocks {
		out[id] = append(out[id], signedPoint(idx, b.degree))
	}

	return out
}

// Mul returns the composition "b first, then other": the bottom row of b is
// glued to the top row of other, connected components are computed over the
// three point rows, and the result is read off the outer two rows.
//
// Complexity: O(n α(n)) via union-find.
func (b *Bipartition) Mul(other Element) (Element, error) {
	if err := checkOperands(b, other); err != nil {
		return nil, err
	}
	o := other.(*Bipartition)
	n := b.degree

	// 1. Union-find over three rows: top 0..n-1, middle n..2n-1, bottom 2n..3n-1.
	parent := make([]int, 3*n)
	for i := range parent {
		parent[i] = i
	}

	// 2. b glues top and middle (its indexes map directly).
	first := make([]int, b.nrBlocks)
	for i := range first {
		first[i] = -1
	}
	for idx, id := range b.blocks {
		if first[id] < 0 {
			first[id] = idx
		} else {
			dsuUnion(parent, first[id], idx)
		}
	}

	// 3. other glues middle and bottom (its indexes shift down one row).
	firstO := make([]int, o.nrBlocks)
	for i := range firstO {
		firstO[i] = -1
	}
	for idx, id := range o.blocks {
		p := idx + n
		if firstO[id] < 0 {
			firstO[id] = p
		} else {
			dsuUnion(parent, firstO[id], p)
		}
	}

	// 4. Read the partition off the outer rows: result index k is DSU point
	// k for the top row and k+n for the bottom row.
	raw := make([]int, 2*n)
	for k := 0; k < 2*n; k++ {
		p := k
		if k >= n {
			p = k + n
		}
		raw[k] = dsuFind(parent, p)
	}
	canonical, nr := canonicalBlocks(raw, 3*n)

	return &Bipartition{degree: n, blocks: canonical, nrBlocks: nr}, nil
}

// dsuFind returns the root of x, halving the path as it walks.
func dsuFind(parent []int, x int) int {
	for parent[x] != x {
		parent[x] = parent[parent[x]]
		x = parent[x]
	}

	return x
}

// dsuUnion merges the classes of x and y.
func dsuUnion(parent []int, x, y int) {
	rx, ry := dsuFind(parent, x), dsuFind(parent, y)
	if rx != ry {
		parent[ry] = rx
	}
}

// Cmp orders bipartitions lexicographically by canonical block-id vector.
func (b *Bipartition) Cmp(other Element) (int, error) {
	if err := checkOperands(b, other); err != nil {
		return 0, err
	}
	o := other.(*Bipartition)

	for i := range b.blocks {
		switch {
		case b.blocks[i] < o.blocks[i]:
			return -1, nil
		case b.blocks[i] > o.blocks[i]:
			return 1, nil
		}
	}

	return 0, nil
}

// Equal reports whether other is a bipartition with the same blocks.
func (b *Bipartition) Equal(other Element) bool { return equalElements(b, other) }

// Identity returns the bipartition whose blocks are the pairs {i, -i}; it is
// neutral on both sides for the same degree.
func (b *Bipartition) Identity() (Element, error) {
	blocks := make([]int, 2*b.degree)
	for i := 0; i < b.degree; i++ {
		blocks[i] = i
		blocks[b.degree+i] = i
	}

	return &Bipartition{degree: b.degree, blocks: blocks, nrBlocks: b.degree}, nil
}

// Pow returns the n-th power. See Element.Pow.
func (b *Bipartition) Pow(n int) (Element, error) { return pow(b, n) }

// Clone returns an independent copy.
func (b *Bipartition) Clone() Element {
	return &Bipartition{
		degree:   b.degree,
		blocks:   append([]int(nil), b.blocks...),
		nrBlocks: b.nrBlocks,
	}
}

// String renders the bipartition in constructor form.
func (b *Bipartition) String() string {
	var sb strings.Builder
	sb.WriteString("Bipartition(")
	for i, block := range b.Blocks() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", block)
	}
	sb.WriteString(")")

	return sb.String()
}

func (b *Bipartition) appendKey(dst []byte) ([]byte, bool) {
	dst = append(dst, byte(KindBipartition))
	dst = binary.AppendUvarint(dst, uint64(b.degree))
	for _, id := range b.blocks {
		dst = binary.AppendUvarint(dst, uint64(id))
	}

	return dst, true
}
