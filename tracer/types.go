package tracer

import (
	"errors"

	"github.com/katalvlaran/paraxial/optics"
)

// ErrNilScene indicates Trace was called with a nil *scene.Scene.
var ErrNilScene = errors.New("tracer: scene is nil")

// Mode selects which elements a ray passes through.
type Mode int

const (
	// AllElements applies every element entry to every ray.
	AllElements Mode = iota

	// FromRayPosition applies only the elements added after the ray.
	FromRayPosition
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case AllElements:
		return "all-elements"
	case FromRayPosition:
		return "from-ray-position"
	default:
		return "unknown"
	}
}

// Option configures Trace.
type Option func(*options)

type options struct {
	mode Mode
}

// WithMode selects the tracing mode. Default: AllElements.
func WithMode(m Mode) Option {
	return func(o *options) { o.mode = m }
}

// Sample is the ray state recorded at one axial position.
type Sample struct {
	Z      float64 // absolute axial position
	Height float64 // transverse height at Z
	Angle  float64 // slope after the element that produced this sample
}

// Path is the traced trajectory of a single ray entry.
type Path struct {
	// Start is the axial position the ray was added at.
	Start float64

	// Ray is the initial ray.
	Ray optics.Ray

	// Samples holds the initial sample followed by one sample per element.
	Samples []Sample
}

// Points returns the (position, height) pairs of p, the polyline handed to
// renderers.
func (p Path) Points() [][2]float64 {
	pts := make([][2]float64, len(p.Samples))
	for i, s := range p.Samples {
		pts[i] = [2]float64{s.Z, s.Height}
	}

	return pts
}

// Final returns the last sample. ok is false when p has no samples, which
// only happens for a Path not built by this package (e.g. Path{}).
func (p Path) Final() (s Sample, ok bool) {
	if len(p.Samples) == 0 {
		return Sample{}, false
	}

	return p.Samples[len(p.Samples)-1], true
}

// State is the fold accumulator: the current axial position and ray.
type State struct {
	Z   float64
	Ray optics.Ray
}
