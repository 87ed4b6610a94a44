// SPDX-License-Identifier: MIT

package optics

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

// TransferMatrix is an immutable 2×2 ray-transfer matrix
//
//	[A B]
//	[C D]
//
// acting on the column vector (height, angle).
// No invariant is enforced on A..D; lossless elements have det = 1.
type TransferMatrix struct {
	a, b, c, d float64
}

// NewTransferMatrix builds the matrix [[a b] [c d]] without validation.
// Complexity: O(1).
func NewTransferMatrix(a, b, c, d float64) TransferMatrix {
	return TransferMatrix{a: a, b: b, c: c, d: d}
}

// Identity returns [[1 0] [0 1]].
func Identity() TransferMatrix {
	return TransferMatrix{a: 1, d: 1}
}

// A returns the top-left entry.
func (m TransferMatrix) A() float64 { return m.a }

// B returns the top-right entry.
func (m TransferMatrix) B() float64 { return m.b }

// C returns the bottom-left entry.
func (m TransferMatrix) C() float64 { return m.c }

// D returns the bottom-right entry.
func (m TransferMatrix) D() float64 { return m.d }

// Apply returns the ray produced by m:
//
//	height' = A*height + B*angle
//	angle'  = C*height + D*angle
//
// The input ray is not modified.
// Complexity: O(1).
func (m TransferMatrix) Apply(r Ray) Ray {
	return Ray{
		height: m.a*r.height + m.b*r.angle,
		angle:  m.c*r.height + m.d*r.angle,
	}
}

// Mul returns the product m·n, i.e. the matrix that applies n first and m
// second. Chaining element matrices in axial order therefore reads
// last.Mul(...).Mul(first).
// Complexity: O(1).
func (m TransferMatrix) Mul(n TransferMatrix) TransferMatrix {
	return TransferMatrix{
		a: m.a*n.a + m.b*n.c,
		b: m.a*n.b + m.b*n.d,
		c: m.c*n.a + m.d*n.c,
		d: m.c*n.b + m.d*n.d,
	}
}

// Determinant returns AD - BC.
func (m TransferMatrix) Determinant() float64 {
	return m.a*m.d - m.b*m.c
}

// IsLossless reports whether the determinant equals 1 within eps, using an
// absolute-or-relative comparison. eps must be non-negative.
func (m TransferMatrix) IsLossless(eps float64) bool {
	return scalar.EqualWithinAbsOrRel(m.Determinant(), 1, eps, eps)
}

// String implements fmt.Stringer.
func (m TransferMatrix) String() string {
	return fmt.Sprintf("[[%g %g] [%g %g]]", m.a, m.b, m.c, m.d)
}
