package geomblur

import (
	"image"
	"math"
)

const (
	// NumChannels is the number of edge channels which are sampled.
	NumChannels = 4
	// NumRings is the number of sample rings around the keypoint.
	NumRings = 4
	// RingSamples is the number of samples on each ring.
	RingSamples = 12
	// RingStep is the difference in radius between consecutive rings.
	RingStep = 5
	// Len is the length of a descriptor.
	Len = NumChannels * (1 + NumRings*RingSamples)
	// MinLevels is the number of scale-space levels read by Sample.
	MinLevels = NumRings + 1
)

// Ring returns the 12 offsets sampled on a circle of the given radius.
// Samples start at (0, radius) and proceed clockwise.
// The first three samples cover one quadrant and are mirrored into the others.
func Ring(radius int) []image.Point {
	// Integer step in x.
	s := radius / 3
	a := image.Pt(s, circleY(radius, s))
	b := image.Pt(2*s, circleY(radius, 2*s))
	return []image.Point{
		{0, radius}, a, b,
		{radius, 0}, {b.X, -b.Y}, {a.X, -a.Y},
		{0, -radius}, {-a.X, -a.Y}, {-b.X, -b.Y},
		{-radius, 0}, {-b.X, b.Y}, {-a.X, a.Y},
	}
}

// circleY returns sqrt(r^2 - x^2) rounded half to even.
func circleY(r, x int) int {
	return int(math.RoundToEven(math.Sqrt(float64(r*r - x*x))))
}

// Radius returns the radius of ring i in 1..NumRings.
func Radius(i int) int {
	return RingStep * i
}

// sample is one element of a descriptor relative to the keypoint.
type sample struct {
	Offset  image.Point
	Channel int
	Level   int
}

// pattern lists the samples of a descriptor in order.
var pattern = newPattern()

func newPattern() []sample {
	s := make([]sample, 0, Len)
	for p := 0; p < NumChannels; p++ {
		s = append(s, sample{image.ZP, p, 0})
		for i := 1; i <= NumRings; i++ {
			for _, d := range Ring(Radius(i)) {
				s = append(s, sample{d, p, i})
			}
		}
	}
	return s
}
