package froidurepin

import (
	"fmt"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/zeebo/blake3"

	"github.com/katalvlaran/semigroup/element"
)

// memberIndex deduplicates elements by mapping each to its discovery
// position. Exactly one implementation backs an engine, chosen once at
// construction from the generator kind.
type memberIndex interface {
	// lookup reports the position of el, if el was inserted before.
	lookup(el element.Element) (int, bool)

	// insert records el at pos. el must not already be present.
	insert(el element.Element, pos int)
}

// hashIndex keys encodable elements by the BLAKE3 digest of their canonical
// byte encoding. Two elements share a digest exactly when they are equal, so
// a plain map gives O(1) deduplication with fixed 32-byte keys no matter how
// large the elements themselves grow.
type hashIndex struct {
	pos     map[[32]byte]int
	scratch []byte // reused encoding buffer
}

func newHashIndex() *hashIndex {
	return &hashIndex{pos: make(map[[32]byte]int)}
}

// key computes the digest of el's canonical encoding.
func (ix *hashIndex) key(el element.Element) [32]byte {
	enc, ok := element.AppendKey(ix.scratch[:0], el)
	if !ok {
		// New routes kinds without a canonical encoding to treeIndex.
		panic(fmt.Sprintf("froidurepin: hash index over non-encodable kind %s", el.Kind()))
	}
	ix.scratch = enc[:0]

	return blake3.Sum256(enc)
}

func (ix *hashIndex) lookup(el element.Element) (int, bool) {
	pos, ok := ix.pos[ix.key(el)]

	return pos, ok
}

func (ix *hashIndex) insert(el element.Element, pos int) {
	ix.pos[ix.key(el)] = pos
}

// treeIndex orders elements with the variant comparator. It serves kinds
// that have no canonical byte encoding (Wrapped), where the host comparison
// function is the only equality oracle available. Lookups cost O(log n)
// comparisons.
type treeIndex struct {
	tree *redblacktree.Tree
}

func newTreeIndex() *treeIndex {
	return &treeIndex{tree: redblacktree.NewWith(elementComparator)}
}

// elementComparator adapts element.Element.Cmp to the gods Comparator shape.
// The index only ever holds same-kind, same-degree elements, so a Cmp
// failure here is a programmer error.
func elementComparator(a, b interface{}) int {
	c, err := a.(element.Element).Cmp(b.(element.Element))
	if err != nil {
		panic(fmt.Sprintf("froidurepin: index comparator: %v", err))
	}

	return c
}

func (ix *treeIndex) lookup(el element.Element) (int, bool) {
	v, ok := ix.tree.Get(el)
	if !ok {
		return 0, false
	}

	return v.(int), true
}

func (ix *treeIndex) insert(el element.Element, pos int) {
	ix.tree.Put(el, pos)
}

// newMemberIndex picks the index implementation for the given prototype
// element: content-addressed hashing when a canonical encoding exists,
// comparator-ordered tree otherwise.
func newMemberIndex(prototype element.Element) memberIndex {
	if _, ok := element.AppendKey(nil, prototype); ok {
		return newHashIndex()
	}

	return newTreeIndex()
}
