// SPDX-License-Identifier: MIT
// Package: tensor
//
// Purpose:
//   - Single source of truth for depth-axis broadcast classification.
//   - Shared by Add/Sub/Mul (one- and two-operand forms) and MatMul so the
//     three-way priority is derived in exactly one place.
//
// Priority (first match wins):
//  1. fst == 1 && dst == snd       ⇒ BroadcastLeft
//  2. snd == 1 && dst == fst       ⇒ BroadcastRight
//  3. dst == fst && dst == snd     ⇒ BroadcastNone
//  4. otherwise                    ⇒ BroadcastInvalid

package tensor

// Broadcast classifies how operand depths map onto the destination depth.
type Broadcast int

const (
	// BroadcastInvalid means no documented depth relationship holds.
	BroadcastInvalid Broadcast = iota
	// BroadcastNone means all depths are equal; combination is element-wise.
	BroadcastNone
	// BroadcastLeft means the first operand has depth 1 and is reused for every slice.
	BroadcastLeft
	// BroadcastRight means the second operand has depth 1 and is reused for every slice.
	BroadcastRight
)

// String returns a short lowercase name for diagnostics.
func (b Broadcast) String() string {
	switch b {
	case BroadcastNone:
		return "none"
	case BroadcastLeft:
		return "left"
	case BroadcastRight:
		return "right"
	default:
		return "invalid"
	}
}

// Classify maps (dst, fst, snd) depths onto a Broadcast mode using the
// documented priority order.
// Complexity: O(1).
func Classify(dst, fst, snd int) Broadcast {
	switch {
	case fst == 1 && dst == snd:
		return BroadcastLeft
	case snd == 1 && dst == fst:
		return BroadcastRight
	case dst == fst && dst == snd:
		return BroadcastNone
	default:
		return BroadcastInvalid
	}
}

// bases returns the flat offsets of slice z inside fst and snd for mode b,
// given each operand's slice length. A broadcast operand always reads slice 0.
func (b Broadcast) bases(z, fstPlane, sndPlane int) (fstBase, sndBase int) {
	fstBase, sndBase = z*fstPlane, z*sndPlane
	switch b {
	case BroadcastLeft:
		fstBase = 0
	case BroadcastRight:
		sndBase = 0
	}
	return fstBase, sndBase
}
