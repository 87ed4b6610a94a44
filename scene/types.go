package scene

import "github.com/katalvlaran/paraxial/optics"

// RayEntry is a ray together with the axial plane it starts from.
type RayEntry struct {
	// Position is the cursor value when the ray was added.
	Position float64

	// Ray is the initial (height, angle).
	Ray optics.Ray

	// FirstElement is the index of the first element entry added after this
	// ray. Elements before it sit upstream of the ray's starting plane.
	FirstElement int
}

// ElementEntry is an element together with its absolute axial position.
// A FreeSpace is tagged with the position where the span begins.
type ElementEntry struct {
	Position float64
	Element  optics.Element
}

// Scene is an append-only layout of rays and elements. The zero value is
// an empty scene with the cursor at 0 and is ready to use.
type Scene struct {
	rays     []RayEntry
	elements []ElementEntry
	cursor   float64
}
