// api/schemas/geometry_test.go
package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundingBox(t *testing.T) {
	t.Run("click point truncates toward zero", func(t *testing.T) {
		box := BoundingBox{X: 10, Y: 20, Width: 5, Height: 7}
		assert.Equal(t, Point{X: 12, Y: 23}, box.ClickPoint())
		assert.Equal(t, Point{X: 10, Y: 20}, box.Origin())
	})

	t.Run("validity", func(t *testing.T) {
		assert.True(t, BoundingBox{Width: 1, Height: 1}.Valid())
		assert.False(t, BoundingBox{Width: 0, Height: 10}.Valid())
		assert.False(t, BoundingBox{Width: 10, Height: -1}.Valid())
	})

	t.Run("translate", func(t *testing.T) {
		box := BoundingBox{X: 1, Y: 2, Width: 3, Height: 4}
		moved := box.Translate(Offset{DX: 50, DY: -2})
		assert.Equal(t, BoundingBox{X: 51, Y: 0, Width: 3, Height: 4}, moved)
		assert.Equal(t, int64(1), box.X, "translate returns a copy")
	})
}

func TestRect(t *testing.T) {
	r := Rect{Left: 10, Top: 20, Right: 15, Bottom: 18}
	assert.Equal(t, int64(5), r.Width())
	assert.Equal(t, int64(-2), r.Height())
	assert.True(t, Offset{}.IsZero())
	assert.False(t, Offset{DY: 1}.IsZero())
}

func TestMouseButtonBits(t *testing.T) {
	assert.Equal(t, int64(1), ButtonLeft.Buttons())
	assert.Equal(t, int64(2), ButtonRight.Buttons())
	assert.Equal(t, int64(4), ButtonMiddle.Buttons())
	assert.Equal(t, int64(0), ButtonNone.Buttons())
}
