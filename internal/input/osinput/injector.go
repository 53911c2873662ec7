// internal/input/osinput/injector.go
package osinput

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/xkilldash9x/clickpoint/api/schemas"
	"github.com/xkilldash9x/clickpoint/internal/config"
	"github.com/xkilldash9x/clickpoint/internal/input"
)

// Injector drives the real OS pointer. Every move, press and release is a
// separate event, paced by a token bucket.
type Injector struct {
	logger  *zap.Logger
	limiter *rate.Limiter
}

// New creates an Injector paced at cfg.EventsPerSecond.
func New(logger *zap.Logger, cfg config.InputConfig) *Injector {
	if logger == nil {
		logger = zap.NewNop()
	}
	limit := rate.Inf
	if cfg.EventsPerSecond > 0 {
		limit = rate.Limit(cfg.EventsPerSecond)
	}
	return &Injector{
		logger:  logger.Named("osinput"),
		limiter: rate.NewLimiter(limit, 1),
	}
}

// MouseMoveTo brings the window to the front, places the pointer on from and
// walks it to to.
func (i *Injector) MouseMoveTo(ctx context.Context, win input.HostWindow, steps int, from, to schemas.Point) error {
	w, err := asWindow(win)
	if err != nil {
		return err
	}
	if err := w.drv.Activate(w.PID); err != nil {
		return fmt.Errorf("activating window of pid %d: %w", w.PID, err)
	}

	points := append([]schemas.Point{from}, input.Path(from, to, steps)...)
	for _, p := range points {
		if err := i.move(ctx, w, p); err != nil {
			return err
		}
	}
	i.logger.Debug("Pointer moved.", zap.Int("pid", w.PID), zap.Int("events", len(points)))
	return nil
}

// MouseDown moves to the point if the pointer is elsewhere and presses the
// button.
func (i *Injector) MouseDown(ctx context.Context, win input.HostWindow, at schemas.Point, button schemas.MouseButton) error {
	return i.toggle(ctx, win, at, button, false)
}

// MouseUp moves to the point if the pointer is elsewhere and releases the
// button.
func (i *Injector) MouseUp(ctx context.Context, win input.HostWindow, at schemas.Point, button schemas.MouseButton) error {
	return i.toggle(ctx, win, at, button, true)
}

func (i *Injector) toggle(ctx context.Context, win input.HostWindow, at schemas.Point, button schemas.MouseButton, up bool) error {
	w, err := asWindow(win)
	if err != nil {
		return err
	}
	name, err := buttonName(button)
	if err != nil {
		return err
	}
	x, y, err := w.toScreen(at)
	if err != nil {
		return err
	}
	if cx, cy := w.drv.Location(); cx != x || cy != y {
		if err := i.moveScreen(ctx, w, x, y); err != nil {
			return err
		}
	}
	if err := i.limiter.Wait(ctx); err != nil {
		return err
	}
	if err := w.drv.Toggle(name, up); err != nil {
		return fmt.Errorf("toggling %s button: %w", name, err)
	}
	return nil
}

func (i *Injector) move(ctx context.Context, w *Window, p schemas.Point) error {
	x, y, err := w.toScreen(p)
	if err != nil {
		return err
	}
	return i.moveScreen(ctx, w, x, y)
}

func (i *Injector) moveScreen(ctx context.Context, w *Window, x, y int) error {
	if err := i.limiter.Wait(ctx); err != nil {
		return err
	}
	w.drv.Move(x, y)
	return nil
}

func asWindow(win input.HostWindow) (*Window, error) {
	w, ok := win.(*Window)
	if !ok || w == nil {
		return nil, fmt.Errorf("os input needs an OS window, got %T", win)
	}
	return w, nil
}

func buttonName(b schemas.MouseButton) (string, error) {
	switch b {
	case schemas.ButtonLeft:
		return "left", nil
	case schemas.ButtonRight:
		return "right", nil
	case schemas.ButtonMiddle:
		return "center", nil
	}
	return "", fmt.Errorf("unsupported mouse button %q", b)
}
