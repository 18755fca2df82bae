package element

import (
	"encoding/binary"
	"fmt"
)

// Transformation is a total function from {0..n-1} to itself, stored as the
// image list images[i] = image of point i. The zero-degree transformation
// (empty image list) is valid.
type Transformation struct {
	images []int
}

// NewTransformation validates images (each must lie in [0, len(images))) and
// returns the transformation they define.
//
// Complexity: O(n).
func NewTransformation(images []int) (*Transformation, error) {
	n := len(images)
	for i, img := range images {
		if img < 0 || img >= n {
			return nil, fmt.Errorf("%w: images[%d] = %d with degree %d", ErrImageOutOfRange, i, img, n)
		}
	}

	return &Transformation{images: append([]int(nil), images...)}, nil
}

// Kind reports KindTransformation.
func (t *Transformation) Kind() Kind { return KindTransformation }

// Degree reports the number of points acted on.
func (t *Transformation) Degree() int { return len(t.images) }

// Images returns a copy of the image list.
func (t *Transformation) Images() []int {
	return append([]int(nil), t.images...)
}

// Mul returns the composition "t first, then other":
// result(x) = other(t(x)).
//
// Complexity: O(n).
func (t *Transformation) Mul(other Element) (Element, error) {
	if err := checkOperands(t, other); err != nil {
		return nil, err
	}
	o := other.(*Transformation)

	res := make([]int, len(t.images))
	for i, img := range t.images {
		res[i] = o.images[img]
	}

	return &Transformation{images: res}, nil
}

// Cmp orders transformations lexicographically by image list.
func (t *Transformation) Cmp(other Element) (int, error) {
	if err := checkOperands(t, other); err != nil {
		return 0, err
	}
	o := other.(*Transformation)

	for i := range t.images {
		switch {
		case t.images[i] < o.images[i]:
			return -1, nil
		case t.images[i] > o.images[i]:
			return 1, nil
		}
	}

	return 0, nil
}

// Equal reports whether other is a transformation with the same images.
func (t *Transformation) Equal(other Element) bool { return equalElements(t, other) }

// Identity returns the identity transformation of the same degree.
func (t *Transformation) Identity() (Element, error) {
	images := make([]int, len(t.images))
	for i := range images {
		images[i] = i
	}

	return &Transformation{images: images}, nil
}

// Pow returns the n-th power. See Element.Pow.
func (t *Transformation) Pow(n int) (Element, error) { return pow(t, n) }

// Clone returns an independent copy.
func (t *Transformation) Clone() Element {
	return &Transformation{images: append([]int(nil), t.images...)}
}

// String renders the transformation in constructor form.
func (t *Transformation) String() string {
	return fmt.Sprintf("Transformation(%v)", t.images)
}

func (t *Transformation) appendKey(dst []byte) ([]byte, bool) {
	dst = append(dst, byte(KindTransformation))
	dst = binary.AppendUvarint(dst, uint64(len(t.images)))
	for _, img := range t.images {
		dst = binary.AppendUvarint(dst, uint64(img))
	}

	return dst, true
}
