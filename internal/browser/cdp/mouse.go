// internal/browser/cdp/mouse.go
package cdp

import (
	"context"
	"fmt"

	cdpinput "github.com/chromedp/cdproto/input"
	"go.uber.org/zap"

	"github.com/xkilldash9x/clickpoint/api/schemas"
	"github.com/xkilldash9x/clickpoint/internal/input"
)

// Mouse dispatches pointer events to the tab through the input domain. The
// host window argument is ignored since events always target the tab.
type Mouse struct {
	s *Session
}

var _ input.Injector = (*Mouse)(nil)

// NewMouse returns the mouse of the session's tab.
func NewMouse(s *Session) *Mouse {
	return &Mouse{s: s}
}

func (m *Mouse) MouseMoveTo(ctx context.Context, _ input.HostWindow, steps int, from, to schemas.Point) error {
	for _, p := range input.Path(from, to, steps) {
		if err := m.dispatch(ctx, schemas.MouseEventData{
			Type:   schemas.MouseMove,
			X:      float64(p.X),
			Y:      float64(p.Y),
			Button: schemas.ButtonNone,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mouse) MouseDown(ctx context.Context, _ input.HostWindow, at schemas.Point, button schemas.MouseButton) error {
	return m.dispatch(ctx, schemas.MouseEventData{
		Type:       schemas.MousePress,
		X:          float64(at.X),
		Y:          float64(at.Y),
		Button:     button,
		Buttons:    button.Buttons(),
		ClickCount: 1,
	})
}

func (m *Mouse) MouseUp(ctx context.Context, _ input.HostWindow, at schemas.Point, button schemas.MouseButton) error {
	return m.dispatch(ctx, schemas.MouseEventData{
		Type:       schemas.MouseRelease,
		X:          float64(at.X),
		Y:          float64(at.Y),
		Button:     button,
		ClickCount: 1,
	})
}

func (m *Mouse) dispatch(ctx context.Context, data schemas.MouseEventData) error {
	p := cdpinput.DispatchMouseEvent(cdpinput.MouseType(data.Type), data.X, data.Y).
		WithButton(cdpinput.MouseButton(data.Button)).
		WithButtons(data.Buttons).
		WithClickCount(data.ClickCount)

	if err := m.s.runActionsFunc(ctx, p); err != nil {
		m.s.logger.Debug("Mouse event rejected.", zap.String("type", string(data.Type)), zap.Error(err))
		return fmt.Errorf("dispatching %s at (%.0f, %.0f): %w", data.Type, data.X, data.Y, err)
	}
	return nil
}
