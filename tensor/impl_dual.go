// SPDX-License-Identifier: MIT

package tensor

const ctxDual = "Dual"

// Dual writes the per-slice conjugate transpose of src into t:
//
//	t[z,y,x] = conj(src[z,x,y])
//
// It is out-of-place only.
//
// Errors:
//   - ErrNilTensor on nil operands.
//   - ErrUnsupported if t and src are the same tensor.
//   - ErrShapeMismatch unless t.Depth == src.Depth, t.Height == src.Width
//     and t.Width == src.Height.
//
// Complexity: Time O(D*H*W), Space O(1).
func (t *Tensor) Dual(src *Tensor) error {
	if err := validateNotNil(t, src); err != nil {
		return tensorErrorf(ctxDual, err)
	}
	if err := validateDistinct(t, src); err != nil {
		return tensorErrorf(ctxDual, err, t.shape)
	}
	if t.shape.Depth != src.shape.Depth ||
		t.shape.Height != src.shape.Width ||
		t.shape.Width != src.shape.Height {
		return tensorErrorf(ctxDual, ErrShapeMismatch, t.shape, src.shape)
	}

	h, w := t.shape.Height, t.shape.Width
	plane := h * w // identical for both: src is w×h
	for z := 0; z < t.shape.Depth; z++ {
		base := z * plane
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				// src row x, column y; src rows have length h.
				t.data[base+y*w+x] = src.data[base+x*h+y].Conj()
			}
		}
	}
	return nil
}
