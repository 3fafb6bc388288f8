package scalespace

import (
	"io/ioutil"
	"math"
	"math/rand"
	"testing"

	"github.com/jvlmdr/go-cv/rimg64"
	"github.com/sirupsen/logrus"
)

const eps = 1e-9

func epsEq(want, got, eps float64) bool {
	return math.Abs(want-got) <= eps
}

func randImage(width, height, channels int) *rimg64.Multi {
	f := rimg64.NewMulti(width, height, channels)
	for i := 0; i < width; i++ {
		for j := 0; j < height; j++ {
			for k := 0; k < channels; k++ {
				f.Set(i, j, k, rand.NormFloat64())
			}
		}
	}
	return f
}

func quietLogger() logrus.FieldLogger {
	log := logrus.New()
	log.Out = ioutil.Discard
	return log
}

// Direct 2D convolution with a full (non-separable) kernel.
func blurNaive(f *rimg64.Multi, p int, sigma float64) [][]float64 {
	k := HalfKernel(sigma)
	n := len(k)
	g := make([][]float64, f.Width)
	for u := range g {
		g[u] = make([]float64, f.Height)
		for v := range g[u] {
			var t float64
			for i := -n + 1; i < n; i++ {
				for j := -n + 1; j < n; j++ {
					x := f.At(Mirror(u+i, f.Width), Mirror(v+j, f.Height), p)
					t += k[abs(i)] * k[abs(j)] * x
				}
			}
			g[u][v] = t
		}
	}
	return g
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func testLevelEq(t *testing.T, want [][]float64, pyr *Pyramid, p, l int) {
	for u := range want {
		for v := range want[u] {
			x := want[u][v]
			y := pyr.At(u, v, p, l)
			if !epsEq(x, y, 1e-6) {
				t.Errorf("at (%d, %d, %d, %d): want %.4g, got %.4g", u, v, p, l, x, y)
			}
		}
	}
}
