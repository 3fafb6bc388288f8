package vecset

import "fmt"

// Set is an indexed collection of vectors of the same dimension.
type Set interface {
	Len() int
	Dim() int
	At(int) []float64
}

// Slice is a Set held in memory.
type Slice [][]float64

func (s Slice) Len() int {
	return len(s)
}

// Dim panics if the vectors have different lengths.
// An empty slice has dimension zero.
func (s Slice) Dim() int {
	if len(s) == 0 {
		return 0
	}
	n := len(s[0])
	for _, x := range s {
		if len(x) != n {
			panic(fmt.Sprintf("different dimension: found %d and %d", n, len(x)))
		}
	}
	return n
}

func (s Slice) At(i int) []float64 {
	return s[i]
}

// Ints converts integer vectors to a Slice.
func Ints(x [][]int) Slice {
	s := make(Slice, len(x))
	for i, xi := range x {
		s[i] = make([]float64, len(xi))
		for j, xij := range xi {
			s[i][j] = float64(xij)
		}
	}
	return s
}
