// Package scene_test verifies layout bookkeeping of scene.Scene.
package scene_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/paraxial/optics"
	"github.com/katalvlaran/paraxial/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// positions extracts element positions in order.
func positions(s *scene.Scene) []float64 {
	var out []float64
	for _, e := range s.Elements() {
		out = append(out, e.Position)
	}

	return out
}

// TestNew_Empty checks the initial state.
func TestNew_Empty(t *testing.T) {
	s := scene.New()
	require.Equal(t, 0.0, s.Cursor())
	rays, elems := s.Len()
	require.Zero(t, rays)
	require.Zero(t, elems)
	require.Empty(t, s.Rays())
	require.Empty(t, s.Elements())

	var zero scene.Scene
	require.NoError(t, zero.Add(optics.NewFreeSpace(3)))
	require.Equal(t, 3.0, zero.Cursor(), "zero value is usable")
}

// TestAdd_RayRecordsCursor ensures rays keep the plane they were added at.
func TestAdd_RayRecordsCursor(t *testing.T) {
	s := scene.New()
	require.NoError(t, s.Add(optics.NewRay(0, 0.1)))
	require.NoError(t, s.Add(optics.NewFreeSpace(25)))
	require.NoError(t, s.Add(optics.NewRay(5, 0)))

	rays := s.Rays()
	require.Len(t, rays, 2)
	assert.Equal(t, 0.0, rays[0].Position)
	assert.Equal(t, 0, rays[0].FirstElement)
	assert.Equal(t, 25.0, rays[1].Position)
	assert.Equal(t, 1, rays[1].FirstElement)
	assert.Equal(t, optics.NewRay(5, 0), rays[1].Ray)
	assert.Equal(t, 25.0, s.Cursor(), "rays never move the cursor")
}

// TestAdd_FreeSpaceTaggedBeforeSpan checks record-then-advance ordering.
func TestAdd_FreeSpaceTaggedBeforeSpan(t *testing.T) {
	s := scene.New()
	require.NoError(t, s.AddAll(
		optics.NewFreeSpace(100),
		optics.MustThinLens(50),
		optics.NewFreeSpace(200),
		optics.MustThinLens(50),
		optics.NewFreeSpace(100),
	))

	require.Equal(t, []float64{0, 100, 100, 300, 300}, positions(s))
	require.Equal(t, 400.0, s.Cursor())
}

// TestAdd_CursorMonotonic checks element positions equal the running sum of
// FreeSpace distances for a mixed sequence.
func TestAdd_CursorMonotonic(t *testing.T) {
	items := []optics.Element{
		optics.NewFlatMirror(),
		optics.NewFreeSpace(1.5),
		optics.NewFreeSpace(0),
		optics.MustThinLens(-20),
		optics.NewFreeSpace(7.25),
		optics.NewGeneric(optics.NewTransferMatrix(1, 0, 0, 1)),
		optics.NewFreeSpace(11),
	}
	s := scene.New()
	var sum float64
	for _, e := range items {
		require.NoError(t, s.AddElement(e))
	}

	prev := 0.0
	for i, e := range s.Elements() {
		assert.Equal(t, sum, e.Position, "entry %d", i)
		assert.GreaterOrEqual(t, e.Position, prev, "entry %d", i)
		prev = e.Position
		if fs, ok := e.Element.(optics.FreeSpace); ok {
			sum += fs.Distance()
		}
	}
	assert.Equal(t, sum, s.Cursor())
}

// TestAdd_TypeMismatch verifies unsupported items leave the scene unchanged.
func TestAdd_TypeMismatch(t *testing.T) {
	s := scene.New()
	require.NoError(t, s.Add(optics.NewRay(1, 0)))
	require.NoError(t, s.Add(optics.NewFreeSpace(10)))

	r := optics.NewRay(2, 0)
	bad := []any{42, "lens", nil, 3.14, &r, optics.Identity()}
	for _, item := range bad {
		err := s.Add(item)
		require.Error(t, err, "item %v", item)
		require.True(t, errors.Is(err, scene.ErrTypeMismatch))
	}

	rays, elems := s.Len()
	assert.Equal(t, 1, rays)
	assert.Equal(t, 1, elems)
	assert.Equal(t, 10.0, s.Cursor())
}

// TestAdd_TypeMismatchNamesType checks the error names the dynamic type.
func TestAdd_TypeMismatchNamesType(t *testing.T) {
	err := scene.New().Add(42)
	require.EqualError(t, err, "Add(int): scene: unsupported item type")
}

// TestAddElement_Nil rejects a nil interface.
func TestAddElement_Nil(t *testing.T) {
	s := scene.New()
	err := s.AddElement(nil)
	require.ErrorIs(t, err, scene.ErrTypeMismatch)
	require.EqualError(t, err, "AddElement(<nil>): scene: unsupported item type")
	_, elems := s.Len()
	require.Zero(t, elems)
}

// TestAdd_ElementPointersRejected verifies that pointer elements, nil or not,
// are refused without panicking and without touching the layout.
func TestAdd_ElementPointersRejected(t *testing.T) {
	var nilSpace *optics.FreeSpace
	var nilLens *optics.ThinLens
	space := optics.NewFreeSpace(5)
	mirror := optics.NewFlatMirror()

	cases := []struct {
		name string
		item optics.Element
	}{
		{"NilFreeSpace", nilSpace},
		{"NilThinLens", nilLens},
		{"FreeSpacePointer", &space},
		{"FlatMirrorPointer", &mirror},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := scene.New()
			require.NoError(t, s.Add(optics.NewFreeSpace(10)))

			require.NotPanics(t, func() {
				require.ErrorIs(t, s.Add(tc.item), scene.ErrTypeMismatch)
				require.ErrorIs(t, s.AddElement(tc.item), scene.ErrTypeMismatch)
			})

			_, elems := s.Len()
			assert.Equal(t, 1, elems)
			assert.Equal(t, 10.0, s.Cursor())
			assert.NotPanics(t, func() { _ = s.SystemMatrix() })
		})
	}
}

// TestAddAll_StopsAtFirstError keeps earlier items and reports the index.
func TestAddAll_StopsAtFirstError(t *testing.T) {
	s := scene.New()
	err := s.AddAll(optics.NewFreeSpace(5), 42, optics.NewFreeSpace(5))
	require.ErrorIs(t, err, scene.ErrTypeMismatch)
	require.Contains(t, err.Error(), "item 1")

	_, elems := s.Len()
	assert.Equal(t, 1, elems)
	assert.Equal(t, 5.0, s.Cursor())
}

// TestElements_ReturnsCopy ensures callers cannot rewrite the layout.
func TestElements_ReturnsCopy(t *testing.T) {
	s := scene.New()
	require.NoError(t, s.AddAll(optics.NewRay(0, 0), optics.NewFreeSpace(1)))

	es := s.Elements()
	es[0].Position = 99
	rs := s.Rays()
	rs[0].Position = 99

	assert.Equal(t, 0.0, s.Elements()[0].Position)
	assert.Equal(t, 0.0, s.Rays()[0].Position)
}

// TestSystemMatrix composes elements in axial order.
func TestSystemMatrix(t *testing.T) {
	s := scene.New()
	require.Equal(t, optics.Identity(), s.SystemMatrix())

	require.NoError(t, s.AddAll(
		optics.NewFreeSpace(100),
		optics.MustThinLens(50),
		optics.NewFreeSpace(200),
		optics.MustThinLens(50),
		optics.NewFreeSpace(100),
	))

	// fold the ray through each element and compare with the product
	in := optics.NewRay(5, 0.02)
	want := in
	for _, e := range s.Elements() {
		want = e.Element.Matrix().Apply(want)
	}
	got := s.SystemMatrix().Apply(in)
	assert.InDelta(t, want.Height(), got.Height(), 1e-9)
	assert.InDelta(t, want.Angle(), got.Angle(), 1e-12)

	// object plane imaged onto the output plane (B=0) at unit magnification
	sys := s.SystemMatrix()
	assert.InDelta(t, 1.0, sys.A(), 1e-12)
	assert.InDelta(t, 0.0, sys.B(), 1e-9)
	assert.InDelta(t, 0.04, sys.C(), 1e-12)
	assert.InDelta(t, 1.0, sys.D(), 1e-12)
	assert.True(t, sys.IsLossless(1e-9))
}
