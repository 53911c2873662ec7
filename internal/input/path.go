package input

import (
	"math"

	"github.com/xkilldash9x/clickpoint/api/schemas"
)

// Path interpolates a straight pointer path from `from` to `to`. The result has
// exactly `steps` points (at least one), excludes the start and always ends on
// the target so rounding never leaves the pointer short of it.
func Path(from, to schemas.Point, steps int) []schemas.Point {
	if steps < 1 {
		steps = 1
	}
	dx := float64(to.X - from.X)
	dy := float64(to.Y - from.Y)

	path := make([]schemas.Point, steps)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		path[i-1] = schemas.Point{
			X: from.X + int64(math.Round(dx*t)),
			Y: from.Y + int64(math.Round(dy*t)),
		}
	}
	path[steps-1] = to
	return path
}
