package tracer

import (
	"github.com/katalvlaran/paraxial/optics"
	"github.com/katalvlaran/paraxial/scene"
)

// Step applies one element to st: the axial position advances by
// e.Advance() and the ray is transformed by e.Matrix().
// Complexity: O(1).
func Step(st State, e optics.Element) State {
	return State{
		Z:   st.Z + e.Advance(),
		Ray: e.Matrix().Apply(st.Ray),
	}
}

// TraceRay folds Step over elems, starting from ray at axial position start,
// and records one sample before the first element and one after each.
// Complexity: O(len(elems)).
func TraceRay(start float64, ray optics.Ray, elems []scene.ElementEntry) Path {
	p := Path{
		Start:   start,
		Ray:     ray,
		Samples: make([]Sample, 0, len(elems)+1),
	}
	st := State{Z: start, Ray: ray}
	p.Samples = append(p.Samples, sampleOf(st))
	for _, e := range elems {
		st = Step(st, e.Element)
		p.Samples = append(p.Samples, sampleOf(st))
	}

	return p
}

// Trace returns one Path per ray entry of s, in ray insertion order.
// Returns ErrNilScene if s is nil.
// Complexity: O(R·E).
func Trace(s *scene.Scene, opts ...Option) ([]Path, error) {
	if s == nil {
		return nil, ErrNilScene
	}
	o := options{mode: AllElements}
	for _, opt := range opts {
		opt(&o)
	}

	rays := s.Rays()
	elems := s.Elements()
	paths := make([]Path, 0, len(rays))
	for _, r := range rays {
		sub := elems
		if o.mode == FromRayPosition {
			sub = elems[r.FirstElement:]
		}
		paths = append(paths, TraceRay(r.Position, r.Ray, sub))
	}

	return paths, nil
}

func sampleOf(st State) Sample {
	return Sample{Z: st.Z, Height: st.Ray.Height(), Angle: st.Ray.Angle()}
}
