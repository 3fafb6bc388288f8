package scalespace

import (
	"fmt"

	"github.com/jvlmdr/go-cv/rimg64"
)

// Pyramid is a stack of blurred copies of the same multi-channel image.
// Elements are indexed (u, v, p, l) for channel p at position (u, v) in level l.
type Pyramid struct {
	Width, Height, Channels int
	// Sigmas[l] is the standard deviation used for level l.
	Sigmas []float64
	// Levels[l] has the same size as the source image.
	Levels []*rimg64.Multi
	// Slices which could not be blurred and were left zero.
	// Always empty in strict mode.
	Failures []*SliceError
}

func newPyramid(width, height, channels int, sigmas []float64) *Pyramid {
	levels := make([]*rimg64.Multi, len(sigmas))
	for l := range levels {
		levels[l] = rimg64.NewMulti(width, height, channels)
	}
	return &Pyramid{
		Width:    width,
		Height:   height,
		Channels: channels,
		Sigmas:   sigmas,
		Levels:   levels,
	}
}

// NumLevels returns the size of the level axis.
func (pyr *Pyramid) NumLevels() int {
	return len(pyr.Levels)
}

// Sigma returns the blur of level l.
func (pyr *Pyramid) Sigma(l int) float64 {
	return pyr.Sigmas[l]
}

// At accesses the element (u, v, p) of level l.
func (pyr *Pyramid) At(u, v, p, l int) float64 {
	return pyr.Levels[l].At(u, v, p)
}

// Inside reports whether (u, v) is a valid position.
func (pyr *Pyramid) Inside(u, v int) bool {
	return 0 <= u && u < pyr.Width && 0 <= v && v < pyr.Height
}

// Size returns a string "WxHxCxL".
func (pyr *Pyramid) Size() string {
	return fmt.Sprintf("%dx%dx%dx%d", pyr.Width, pyr.Height, pyr.Channels, len(pyr.Levels))
}
