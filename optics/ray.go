package optics

import "fmt"

// Ray is a paraxial ray at some reference plane: its transverse Height above
// the optical axis and its Angle (slope, radians) relative to the axis.
// Both are signed; no relation between them is assumed.
type Ray struct {
	height float64
	angle  float64
}

// NewRay stores height and angle verbatim.
// Complexity: O(1).
func NewRay(height, angle float64) Ray {
	return Ray{height: height, angle: angle}
}

// Height returns the transverse distance from the optical axis.
func (r Ray) Height() float64 { return r.height }

// Angle returns the slope relative to the optical axis, in radians.
func (r Ray) Angle() float64 { return r.angle }

// String implements fmt.Stringer.
func (r Ray) String() string {
	return fmt.Sprintf("Ray(%g, %g)", r.height, r.angle)
}
