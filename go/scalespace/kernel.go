package scalespace

import (
	"math"

	"github.com/gonum/floats"
)

// HalfWidth returns the number of taps on one side of the kernel,
// including the center tap.
func HalfWidth(sigma float64) int {
	if sigma <= 0 {
		return 1
	}
	n := int(3*sigma+0.5) + 1
	if n < 2 {
		n = 2
	}
	return n
}

// HalfKernel returns the non-negative half of a normalized Gaussian.
// Element 0 is the center tap and the full kernel
// k[-n+1], ..., k[0], ..., k[n-1] sums to one.
// A non-positive sigma gives the identity kernel.
func HalfKernel(sigma float64) []float64 {
	n := HalfWidth(sigma)
	k := make([]float64, n)
	k[0] = 1
	if n == 1 {
		return k
	}
	for x := 1; x < n; x++ {
		k[x] = math.Exp(-0.5 * float64(x*x) / (sigma * sigma))
	}
	// Side taps count twice.
	sum := 2*floats.Sum(k) - k[0]
	floats.Scale(1/sum, k)
	return k
}

// convolve1 filters n elements of src, separated by stride, into dst
// with the same layout. Out-of-range taps are mirrored.
func convolve1(dst, src []float64, n, stride int, k []float64) {
	for i := 0; i < n; i++ {
		t := k[0] * src[i*stride]
		for x := 1; x < len(k); x++ {
			a := src[Mirror(i-x, n)*stride]
			b := src[Mirror(i+x, n)*stride]
			t += k[x] * (a + b)
		}
		dst[i*stride] = t
	}
}

// blur2 applies the separable kernel to a width x height slice
// stored with x as the slow index, y as the fast index.
// tmp must have the same length as src.
func blur2(dst, src, tmp []float64, width, height int, k []float64) {
	// Along y.
	for u := 0; u < width; u++ {
		off := u * height
		convolve1(tmp[off:off+height], src[off:off+height], height, 1, k)
	}
	// Along x.
	for v := 0; v < height; v++ {
		convolve1(dst[v:], tmp[v:], width, height, k)
	}
}
