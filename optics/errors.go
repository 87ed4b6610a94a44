// SPDX-License-Identifier: MIT

package optics

import "errors"

var (
	// ErrDivisionByZero is returned when a ThinLens is constructed with a zero
	// focal length; the element would otherwise carry -1/0 = -Inf.
	ErrDivisionByZero = errors.New("optics: thin lens focus must be non-zero")
)
