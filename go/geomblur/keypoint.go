package geomblur

import (
	"image"
	"math"
)

// Keypoint is a detected point of interest.
type Keypoint struct {
	X, Y float64
	// Octave is carried from the detector and not used for sampling.
	Octave int
}

// Pt truncates the position towards zero.
func (k Keypoint) Pt() image.Point {
	return image.Pt(int(k.X), int(k.Y))
}

func (k Keypoint) finite() bool {
	return !(math.IsNaN(k.X) || math.IsInf(k.X, 0) || math.IsNaN(k.Y) || math.IsInf(k.Y, 0))
}
