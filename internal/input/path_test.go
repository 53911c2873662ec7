package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xkilldash9x/clickpoint/api/schemas"
)

func TestPath(t *testing.T) {
	from := schemas.Point{X: 10, Y: 10}
	to := schemas.Point{X: 60, Y: 30}

	t.Run("EndsOnTarget", func(t *testing.T) {
		p := Path(from, to, 10)
		assert.Len(t, p, 10)
		assert.Equal(t, to, p[len(p)-1])
		assert.Equal(t, schemas.Point{X: 15, Y: 12}, p[0])
	})

	t.Run("MonotonicTowardTarget", func(t *testing.T) {
		p := Path(from, to, 7)
		for i := 1; i < len(p); i++ {
			assert.GreaterOrEqual(t, p[i].X, p[i-1].X)
			assert.GreaterOrEqual(t, p[i].Y, p[i-1].Y)
		}
	})

	t.Run("NonPositiveStepsJumpStraightThere", func(t *testing.T) {
		assert.Equal(t, []schemas.Point{to}, Path(from, to, 0))
		assert.Equal(t, []schemas.Point{to}, Path(from, to, -3))
	})

	t.Run("ZeroDistance", func(t *testing.T) {
		p := Path(to, to, 4)
		for _, pt := range p {
			assert.Equal(t, to, pt)
		}
	})
}
