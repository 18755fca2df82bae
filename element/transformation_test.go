package element_test

import (
	"testing"

	"github.com/katalvlaran/semigroup/element"
	"github.com/stretchr/testify/assert"
)

// TestNewTransformation_ValidatesImages verifies that out-of-range images are
// rejected with ErrImageOutOfRange.
func TestNewTransformation_ValidatesImages(t *testing.T) {
	_, err := element.NewTransformation([]int{0, 2})
	assert.ErrorIs(t, err, element.ErrImageOutOfRange, "image 2 with degree 2 must be rejected")

	_, err = element.NewTransformation([]int{-1})
	assert.ErrorIs(t, err, element.ErrImageOutOfRange, "negative image must be rejected")
}

// TestNewTransformation_CopiesInput verifies that mutating the input slice
// after construction does not alias the element.
func TestNewTransformation_CopiesInput(t *testing.T) {
	images := []int{1, 0}
	a, err := element.NewTransformation(images)
	assert.NoError(t, err)

	images[0] = 0
	assert.Equal(t, []int{1, 0}, a.Images(), "element must own its image list")
}

// TestTransformation_MulAppliesLeftFirst pins the composition convention:
// (a·b)(x) = b(a(x)).
func TestTransformation_MulAppliesLeftFirst(t *testing.T) {
	a, _ := element.NewTransformation([]int{1, 0, 2})
	b, _ := element.NewTransformation([]int{0, 0, 2})

	ab, err := a.Mul(b)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 0, 2}, ab.(*element.Transformation).Images(), "(a·b)(x) must equal b(a(x))")

	ba, err := b.Mul(a)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 1, 2}, ba.(*element.Transformation).Images(), "composition is not commutative here")
}

// TestTransformation_WordProduct reproduces a four-letter product used by the
// factorisation scenario: g1·g0·g2·g1 collapses everything to point 0.
func TestTransformation_WordProduct(t *testing.T) {
	g0, _ := element.NewTransformation([]int{1, 0, 2})
	g1, _ := element.NewTransformation([]int{0, 0, 2})
	g2, _ := element.NewTransformation([]int{2, 0, 1})

	acc := element.Element(g1)
	for _, g := range []element.Element{g0, g2, g1} {
		var err error
		acc, err = acc.Mul(g)
		assert.NoError(t, err)
	}

	want, _ := element.NewTransformation([]int{0, 0, 0})
	assert.True(t, acc.Equal(want), "g1·g0·g2·g1 must collapse to the constant map")
}

// TestTransformation_IdentityIsNeutral verifies both-sided neutrality.
func TestTransformation_IdentityIsNeutral(t *testing.T) {
	a, _ := element.NewTransformation([]int{2, 2, 0})
	id, err := a.Identity()
	assert.NoError(t, err)

	left, _ := id.Mul(a)
	right, _ := a.Mul(id)
	assert.True(t, left.Equal(a), "id·a must equal a")
	assert.True(t, right.Equal(a), "a·id must equal a")
}

// TestTransformation_CmpIsLexicographic verifies the comparison order and its
// mismatch errors.
func TestTransformation_CmpIsLexicographic(t *testing.T) {
	a, _ := element.NewTransformation([]int{0, 1})
	b, _ := element.NewTransformation([]int{1, 0})

	c, err := a.Cmp(b)
	assert.NoError(t, err)
	assert.Equal(t, -1, c, "[0 1] sorts before [1 0]")

	c, err = b.Cmp(a)
	assert.NoError(t, err)
	assert.Equal(t, 1, c)

	c, err = a.Cmp(a)
	assert.NoError(t, err)
	assert.Equal(t, 0, c)

	short, _ := element.NewTransformation([]int{0})
	_, err = a.Cmp(short)
	assert.ErrorIs(t, err, element.ErrDegreeMismatch, "cross-degree comparison must fail")
}

// TestTransformation_MismatchErrors verifies Mul's kind and degree guards.
func TestTransformation_MismatchErrors(t *testing.T) {
	a, _ := element.NewTransformation([]int{0, 1})
	small, _ := element.NewTransformation([]int{0})
	rel, _ := element.NewBinaryRelation([][]int{{0}, {1}})

	_, err := a.Mul(small)
	assert.ErrorIs(t, err, element.ErrDegreeMismatch)

	_, err = a.Mul(rel)
	assert.ErrorIs(t, err, element.ErrKindMismatch)

	assert.False(t, a.Equal(rel), "Equal never errors, only reports false")
}

// TestTransformation_ZeroDegree verifies that the empty transformation is a
// valid element with a valid identity.
func TestTransformation_ZeroDegree(t *testing.T) {
	a, err := element.NewTransformation(nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, a.Degree())

	id, err := a.Identity()
	assert.NoError(t, err)
	assert.True(t, a.Equal(id), "the only degree-0 transformation is its own identity")
}
