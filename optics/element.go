package optics

import "fmt"

// Kind identifies an Element variant. Switches over Kind are the supported
// way to dispatch on element type (e.g. when drawing element symbols).
type Kind int

const (
	// KindFreeSpace is propagation over an axial distance.
	KindFreeSpace Kind = iota
	// KindThinLens is an ideal zero-thickness lens.
	KindThinLens
	// KindFlatMirror is a plane mirror (identity matrix in unfolded form).
	KindFlatMirror
	// KindGeneric wraps an arbitrary caller-supplied matrix.
	KindGeneric
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindFreeSpace:
		return "FreeSpace"
	case KindThinLens:
		return "ThinLens"
	case KindFlatMirror:
		return "FlatMirror"
	case KindGeneric:
		return "Generic"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Element is an optical element placed on the axis.
//
// The set of implementations is closed: only the variants in this package
// satisfy it, so a switch over Kind() is exhaustive. Pointers to the variants
// also satisfy it through their method sets; a scene accepts values only.
type Element interface {
	// Kind reports the variant.
	Kind() Kind

	// Matrix returns the element's transfer matrix, fixed at construction.
	Matrix() TransferMatrix

	// Advance is the axial length the element occupies. Only FreeSpace
	// returns a non-zero value; a scene moves its cursor by this amount.
	Advance() float64

	String() string

	element()
}

// FreeSpace is propagation over Distance along the axis.
// Positive distances propagate forward.
type FreeSpace struct {
	distance float64
	m        TransferMatrix
}

// NewFreeSpace returns FreeSpace with matrix [[1 distance] [0 1]].
func NewFreeSpace(distance float64) FreeSpace {
	return FreeSpace{distance: distance, m: NewTransferMatrix(1, distance, 0, 1)}
}

// Distance returns the propagation length.
func (f FreeSpace) Distance() float64 { return f.distance }

func (f FreeSpace) Kind() Kind             { return KindFreeSpace }
func (f FreeSpace) Matrix() TransferMatrix { return f.m }
func (f FreeSpace) Advance() float64       { return f.distance }
func (f FreeSpace) element()               {}

func (f FreeSpace) String() string {
	return fmt.Sprintf("FreeSpace(%g)", f.distance)
}

// ThinLens is an ideal lens of focal length Focus. Positive focus converges.
type ThinLens struct {
	focus float64
	m     TransferMatrix
}

// NewThinLens returns a lens with matrix [[1 0] [-1/focus 1]].
// Returns ErrDivisionByZero if focus == 0.
func NewThinLens(focus float64) (ThinLens, error) {
	if focus == 0 {
		return ThinLens{}, fmt.Errorf("NewThinLens(%g): %w", focus, ErrDivisionByZero)
	}

	return ThinLens{focus: focus, m: NewTransferMatrix(1, 0, -1.0/focus, 1)}, nil
}

// MustThinLens is like NewThinLens but panics on error. Intended for scene
// literals with constant focal lengths.
func MustThinLens(focus float64) ThinLens {
	l, err := NewThinLens(focus)
	if err != nil {
		panic(err)
	}

	return l
}

// Focus returns the focal length.
func (l ThinLens) Focus() float64 { return l.focus }

func (l ThinLens) Kind() Kind             { return KindThinLens }
func (l ThinLens) Matrix() TransferMatrix { return l.m }
func (l ThinLens) Advance() float64       { return 0 }
func (l ThinLens) element()               {}

func (l ThinLens) String() string {
	return fmt.Sprintf("ThinLens(%g)", l.focus)
}

// FlatMirror is a plane mirror. In the unfolded-axis convention used here it
// leaves both height and angle unchanged.
type FlatMirror struct{}

// NewFlatMirror returns a FlatMirror.
func NewFlatMirror() FlatMirror { return FlatMirror{} }

func (FlatMirror) Kind() Kind             { return KindFlatMirror }
func (FlatMirror) Matrix() TransferMatrix { return Identity() }
func (FlatMirror) Advance() float64       { return 0 }
func (FlatMirror) element()               {}
func (FlatMirror) String() string         { return "FlatMirror()" }

// Generic is a zero-length element with an arbitrary transfer matrix, for
// surfaces the named variants do not cover (curved interfaces, measured
// systems). The matrix is used as given.
type Generic struct {
	m TransferMatrix
}

// NewGeneric wraps m.
func NewGeneric(m TransferMatrix) Generic { return Generic{m: m} }

func (g Generic) Kind() Kind             { return KindGeneric }
func (g Generic) Matrix() TransferMatrix { return g.m }
func (g Generic) Advance() float64       { return 0 }
func (g Generic) element()               {}

func (g Generic) String() string {
	return fmt.Sprintf("Generic(%v)", g.m)
}
