package geomblur

import (
	"fmt"
	"image"

	"github.com/jvlmdr/bof/go/scalespace"
	"github.com/pkg/errors"
)

// Boundary determines how samples outside the image are treated.
type Boundary int

const (
	// BoundaryStrict rejects keypoints which have a sample outside the image.
	BoundaryStrict Boundary = iota
	// BoundaryMirror reflects samples about the border without repeating the edge,
	// the same extension used to blur the image.
	BoundaryMirror
)

func (b Boundary) String() string {
	switch b {
	case BoundaryStrict:
		return "strict"
	case BoundaryMirror:
		return "mirror"
	default:
		return fmt.Sprintf("Boundary(%d)", int(b))
	}
}

// ParseBoundary converts "strict" or "mirror" to a Boundary.
func ParseBoundary(s string) (Boundary, error) {
	switch s {
	case "strict", "":
		return BoundaryStrict, nil
	case "mirror":
		return BoundaryMirror, nil
	default:
		return 0, fmt.Errorf("unknown boundary: %q", s)
	}
}

// Sample extracts one descriptor of length Len per keypoint, in the order of the keypoints.
//
// Returns an error wrapping ErrPrecondition, before sampling anything,
// if the scale-space has fewer than NumChannels channels or MinLevels levels,
// or if a keypoint is not finite or (in strict mode) too close to the border.
func Sample(pyr *scalespace.Pyramid, keypoints []Keypoint, mode Boundary) ([][]float64, error) {
	if err := checkPyramid(pyr); err != nil {
		return nil, err
	}
	for i, k := range keypoints {
		if err := checkKeypoint(pyr.Width, pyr.Height, k, mode); err != nil {
			return nil, errors.Wrapf(err, "keypoint %d", i)
		}
	}
	descs := make([][]float64, len(keypoints))
	for i, k := range keypoints {
		descs[i] = describe(pyr, k, mode)
	}
	return descs, nil
}

func checkPyramid(pyr *scalespace.Pyramid) error {
	if pyr == nil {
		return errors.Wrap(ErrPrecondition, "nil scale-space")
	}
	if pyr.Channels < NumChannels {
		return errors.Wrapf(ErrPrecondition, "need %d channels: found %d", NumChannels, pyr.Channels)
	}
	if pyr.NumLevels() < MinLevels {
		return errors.Wrapf(ErrPrecondition, "need %d levels: found %d", MinLevels, pyr.NumLevels())
	}
	return nil
}

func checkKeypoint(width, height int, k Keypoint, mode Boundary) error {
	if !k.finite() {
		return errors.Wrapf(ErrPrecondition, "position not finite: (%g, %g)", k.X, k.Y)
	}
	switch mode {
	case BoundaryStrict:
		c := k.Pt()
		for _, s := range pattern {
			q := c.Add(s.Offset)
			if !q.In(image.Rect(0, 0, width, height)) {
				return errors.Wrapf(ErrPrecondition, "sample %v out of bounds %dx%d", q, width, height)
			}
		}
	case BoundaryMirror:
	default:
		return errors.Wrapf(ErrPrecondition, "unknown boundary: %v", mode)
	}
	return nil
}

func describe(pyr *scalespace.Pyramid, k Keypoint, mode Boundary) []float64 {
	c := k.Pt()
	x := make([]float64, len(pattern))
	for i, s := range pattern {
		q := c.Add(s.Offset)
		if mode == BoundaryMirror {
			q.X = scalespace.Mirror(q.X, pyr.Width)
			q.Y = scalespace.Mirror(q.Y, pyr.Height)
		}
		x[i] = pyr.At(q.X, q.Y, s.Channel, s.Level)
	}
	return x
}

// Header returns a column name for each element of a descriptor.
func Header() []string {
	h := make([]string, Len)
	for i := range h {
		h[i] = fmt.Sprintf("Descriptor Value #%d", i+1)
	}
	return h
}
