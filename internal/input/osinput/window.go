// internal/input/osinput/window.go
package osinput

import (
	"context"
	"fmt"

	"github.com/xkilldash9x/clickpoint/api/schemas"
)

// Window is a top-level OS window identified by the process that owns it.
type Window struct {
	PID int
	drv driver
}

// NewWindow returns the window owned by pid.
func NewWindow(pid int) *Window {
	return &Window{PID: pid, drv: robotDriver{}}
}

// ClientRect returns the client area in client coordinates, so its origin is
// always (0, 0).
func (w *Window) ClientRect(ctx context.Context) (schemas.Rect, error) {
	_, _, width, height, err := w.clientBounds()
	if err != nil {
		return schemas.Rect{}, err
	}
	return schemas.Rect{Right: int64(width), Bottom: int64(height)}, nil
}

func (w *Window) clientBounds() (x, y, width, height int, err error) {
	x, y, width, height = w.drv.ClientBounds(w.PID)
	if width <= 0 || height <= 0 {
		return 0, 0, 0, 0, fmt.Errorf("no client area for window of pid %d", w.PID)
	}
	return x, y, width, height, nil
}

// toScreen translates a client point to screen coordinates. The client origin
// is looked up on every call since the window may have moved.
func (w *Window) toScreen(p schemas.Point) (int, int, error) {
	x, y, _, _, err := w.clientBounds()
	if err != nil {
		return 0, 0, err
	}
	return x + int(p.X), y + int(p.Y), nil
}
