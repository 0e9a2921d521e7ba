package mines

type point struct {
	x, y int
}

// offsets of the 8 surrounding cells
var directions = [8]point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

func iif[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
