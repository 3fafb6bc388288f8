package vecset

import (
	"fmt"
	"sort"
)

// Union concatenates several sets without copying their vectors.
type Union struct {
	Sets []Set
	cdf  []int
}

func (u *Union) Len() int {
	if len(u.cdf) == 0 {
		return 0
	}
	return u.cdf[len(u.cdf)-1]
}

// Dim panics if the non-empty sets differ in dimension.
func (u *Union) Dim() int {
	var n int
	found := false
	for _, xi := range u.Sets {
		if xi.Len() == 0 {
			continue
		}
		ni := xi.Dim()
		if !found {
			n, found = ni, true
			continue
		}
		if ni != n {
			panic(fmt.Sprintf("dimension: found %d and %d", n, ni))
		}
	}
	return n
}

func (u *Union) At(i int) []float64 {
	// Find set which contains i-th vector.
	s := sort.Search(len(u.Sets), func(s int) bool { return i < u.cdf[s+1] })
	// Index into set.
	t := i - u.cdf[s]
	return u.Sets[s].At(t)
}

func NewUnion(sets []Set) *Union {
	u := new(Union)
	u.Sets = sets
	u.cdf = cumSum(setLens(sets))
	return u
}

func (u *Union) Append(set Set) {
	if u.cdf == nil {
		u.cdf = []int{0}
	}
	u.Sets = append(u.Sets, set)
	u.cdf = append(u.cdf, u.cdf[len(u.cdf)-1]+set.Len())
}

func setLens(x []Set) []int {
	n := make([]int, len(x))
	for i, xi := range x {
		n[i] = xi.Len()
	}
	return n
}

func cumSum(x []int) []int {
	s := make([]int, len(x)+1)
	for i, xi := range x {
		s[i+1] = s[i] + xi
	}
	return s
}
