package scalespace

// Mirror maps an index onto [0, n) by reflecting at the borders
// without repeating the edge element: -1 -> 1, n -> n-2.
func Mirror(i, n int) int {
	if n <= 0 {
		panic("non-positive length")
	}
	if n == 1 {
		return 0
	}
	period := 2*n - 2
	i = mod(i, period)
	if i >= n {
		i = period - i
	}
	return i
}

func mod(a, b int) int {
	if b <= 0 {
		panic("non-positive denominator")
	}
	return ((a % b) + b) % b
}
