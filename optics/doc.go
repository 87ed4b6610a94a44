// Package optics provides the value types of paraxial ray optics: rays,
// 2×2 ray-transfer ("ABCD") matrices and the optical elements that own them.
//
// What:
//
//   - Ray holds a transverse height and an angle (radians) relative to the
//     optical axis.
//   - TransferMatrix maps (height, angle) to (height', angle'):
//
//	[h']   [A B] [h]
//	[a'] = [C D] [a]
//
//   - Element is a closed set of variants, each owning a TransferMatrix
//     computed once at construction:
//     FreeSpace(d) = [[1 d] [0 1]], ThinLens(f) = [[1 0] [-1/f 1]],
//     FlatMirror = identity, Generic = any caller matrix.
//
// Why:
//
//   - Small-angle propagation is linear, so an optical train reduces to a
//     chain of matrix-vector products.
//
// Numeric policy:
//
//   - Only ThinLens(0) is rejected (ErrDivisionByZero).
//   - NaN and ±Inf heights, angles, distances and focal lengths are NOT
//     validated. They propagate through the arithmetic unchanged and surface
//     only in downstream consumers (tracer output, rendering).
//   - Determinants are reported (Determinant, IsLossless) but never enforced.
//
// All types are immutable values and safe to share between goroutines.
package optics
