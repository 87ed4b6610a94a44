package scene

import (
	"fmt"

	"github.com/katalvlaran/paraxial/optics"
)

// New returns an empty Scene with the cursor at 0.
// Complexity: O(1).
func New() *Scene {
	return &Scene{}
}

// Add classifies item and records it at the current cursor.
//
//   - optics.Ray     → appended to the ray entries; cursor unchanged.
//   - optics.Element → appended to the element entries, then the cursor
//     advances by item.Advance() (non-zero only for FreeSpace).
//   - anything else  → ErrTypeMismatch naming the dynamic type; the scene is
//     left unchanged. Pointers to element values (nil or not) are rejected.
//
// Complexity: amortized O(1).
func (s *Scene) Add(item any) error {
	switch v := item.(type) {
	case optics.Ray:
		s.AddRay(v)
		return nil
	case optics.FreeSpace, optics.ThinLens, optics.FlatMirror, optics.Generic:
		return s.AddElement(v.(optics.Element))
	default:
		return fmt.Errorf("Add(%T): %w", item, ErrTypeMismatch)
	}
}

// AddRay records r at the current cursor.
func (s *Scene) AddRay(r optics.Ray) {
	s.rays = append(s.rays, RayEntry{
		Position:     s.cursor,
		Ray:          r,
		FirstElement: len(s.elements),
	})
}

// AddElement records e at the current cursor and then advances the cursor
// by e.Advance(). Only the value variants of package optics are accepted;
// nil and pointer elements return ErrTypeMismatch and leave the scene as is.
func (s *Scene) AddElement(e optics.Element) error {
	switch e.(type) {
	case optics.FreeSpace, optics.ThinLens, optics.FlatMirror, optics.Generic:
	default:
		return fmt.Errorf("AddElement(%T): %w", e, ErrTypeMismatch)
	}
	// position first, then the span it introduces
	advance := e.Advance()
	s.elements = append(s.elements, ElementEntry{Position: s.cursor, Element: e})
	s.cursor += advance

	return nil
}

// AddAll adds items in order and stops at the first error. Items added
// before the failing one stay in the scene.
func (s *Scene) AddAll(items ...any) error {
	for i, it := range items {
		if err := s.Add(it); err != nil {
			return fmt.Errorf("AddAll: item %d: %w", i, err)
		}
	}

	return nil
}

// Cursor returns the current absolute axial position.
func (s *Scene) Cursor() float64 {
	return s.cursor
}

// Len returns the number of ray and element entries.
func (s *Scene) Len() (rays, elements int) {
	return len(s.rays), len(s.elements)
}

// Rays returns a copy of the ray entries in insertion order.
// Complexity: O(R).
func (s *Scene) Rays() []RayEntry {
	out := make([]RayEntry, len(s.rays))
	copy(out, s.rays)

	return out
}

// Elements returns a copy of the element entries in insertion (= axial) order.
// Complexity: O(E).
func (s *Scene) Elements() []ElementEntry {
	out := make([]ElementEntry, len(s.elements))
	copy(out, s.elements)

	return out
}

// SystemMatrix returns the product of all element matrices in axial order,
// i.e. the single matrix mapping a ray at the first element to the ray after
// the last one. An empty scene yields the identity.
// Complexity: O(E).
func (s *Scene) SystemMatrix() optics.TransferMatrix {
	m := optics.Identity()
	for _, e := range s.elements {
		m = e.Element.Matrix().Mul(m)
	}

	return m
}
