// SPDX-License-Identifier: MIT

package tensor

const (
	ctxSqReLU   = "SqReLU"
	ctxSqReLUOf = "SqReLUOf"
)

// SqReLU applies the norm-gated activation in place:
//
//	t[z,y,x] = t[z,y,x].SqReLU(attr[z',0,x])
//
// where z' = 0 when attr.Depth == 1 (shared bias row) and z' = z otherwise.
//
// Errors:
//   - ErrNilTensor on nil operands.
//   - ErrShapeMismatch unless attr.Height == 1, attr.Width == t.Width and
//     attr.Depth ∈ {1, t.Depth}.
//
// Complexity: Time O(D*H*W), Space O(1).
func (t *Tensor) SqReLU(attr *Tensor) error {
	if err := validateBias(t, attr); err != nil {
		return tensorErrorf(ctxSqReLU, err, t.shapeOrZero(), attr.shapeOrZero())
	}

	h, w := t.shape.Height, t.shape.Width
	shared := attr.shape.Depth == 1
	i := 0
	for z := 0; z < t.shape.Depth; z++ {
		biasBase := z * w // attr is D×1×W: one row per slice
		if shared {
			biasBase = 0
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				t.data[i] = t.data[i].SqReLU(attr.data[biasBase+x])
				i++
			}
		}
	}
	return nil
}

// SqReLUOf is the out-of-place form reading from src. It validates the same
// bias contract as SqReLU plus src.Height == t.Height, src.Width == t.Width
// and src.Depth ∈ {1, t.Depth}.
//
// No numeric behavior is defined for any (src, attr) depth combination yet,
// so after validation it always returns ErrUnsupported and leaves t untouched.
func (t *Tensor) SqReLUOf(attr, src *Tensor) error {
	if err := validateBias(t, attr); err != nil {
		return tensorErrorf(ctxSqReLUOf, err, t.shapeOrZero(), attr.shapeOrZero())
	}
	if err := validateSamePlane(t, src); err != nil {
		return tensorErrorf(ctxSqReLUOf, err, t.shape, src.shapeOrZero())
	}
	if src.shape.Depth != 1 && src.shape.Depth != t.shape.Depth {
		return tensorErrorf(ctxSqReLUOf, ErrShapeMismatch, t.shape, src.shape)
	}
	return tensorErrorf(ctxSqReLUOf, ErrUnsupported, t.shape, attr.shape, src.shape)
}
