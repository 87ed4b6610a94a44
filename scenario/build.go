package scenario

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/paraxial/optics"
	"github.com/katalvlaran/paraxial/scene"
)

// Build converts the items into optics values and adds them to a new Scene
// in file order. The first invalid item aborts the build; its index is part
// of the error.
func (c *Config) Build() (*scene.Scene, error) {
	s := scene.New()
	for i, it := range c.Items {
		v, err := it.value()
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		if err = s.Add(v); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}

	return s, nil
}

// value returns the optics.Ray or optics.Element described by it.
func (it Item) value() (any, error) {
	switch strings.ToLower(strings.TrimSpace(it.Kind)) {
	case KindRay:
		if it.Height == nil || it.Angle == nil {
			return nil, fmt.Errorf("ray needs height and angle: %w", ErrMissingField)
		}
		return optics.NewRay(*it.Height, *it.Angle), nil

	case KindFreeSpace:
		if it.Distance == nil {
			return nil, fmt.Errorf("freespace needs distance: %w", ErrMissingField)
		}
		return optics.NewFreeSpace(*it.Distance), nil

	case KindLens:
		if it.Focus == nil {
			return nil, fmt.Errorf("lens needs focus: %w", ErrMissingField)
		}
		l, err := optics.NewThinLens(*it.Focus)
		if err != nil {
			return nil, err
		}
		return l, nil

	case KindMirror:
		return optics.NewFlatMirror(), nil

	case KindMatrix:
		if it.A == nil || it.B == nil || it.C == nil || it.D == nil {
			return nil, fmt.Errorf("matrix needs a, b, c and d: %w", ErrMissingField)
		}
		return optics.NewGeneric(optics.NewTransferMatrix(*it.A, *it.B, *it.C, *it.D)), nil

	default:
		return nil, fmt.Errorf("%q: %w", it.Kind, ErrUnknownKind)
	}
}
