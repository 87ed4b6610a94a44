// Package scene lays out rays and optical elements along the optical axis.
//
// A Scene keeps a cursor, the running absolute axial position. Every added
// item is tagged with the cursor value at the moment it is added; adding a
// FreeSpace then advances the cursor by its distance. Callers therefore
// describe an optical train as a flat sequence:
//
//	s := scene.New()
//	_ = s.AddAll(
//		optics.NewRay(0, 0.1),         // ray starting at z=0
//		optics.NewFreeSpace(100),      // recorded at z=0, cursor → 100
//		optics.MustThinLens(50),       // recorded at z=100
//		optics.NewFreeSpace(200),      // recorded at z=100, cursor → 300
//	)
//
// Invariants:
//
//   - Element entries are kept in insertion order, which is also ascending
//     position order (the cursor only moves by the FreeSpace distances).
//   - A ray entry records the cursor at insertion and the number of elements
//     that were already present (RayEntry.FirstElement).
//   - Each Add either fully succeeds (entry appended and cursor advanced) or
//     leaves the scene untouched.
//
// There is no removal, reordering or lookup by position.
//
// Concurrency: a Scene is meant to be built and read by a single owner and
// has no internal locking. Callers sharing one across goroutines must
// serialize Add calls and finish building before tracing.
//
// Errors:
//
//   - ErrTypeMismatch: Add received something that is neither an optics.Ray
//     nor an optics.Element.
package scene
