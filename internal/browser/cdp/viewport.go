// internal/browser/cdp/viewport.go
package cdp

import (
	"context"
	"errors"
	"fmt"

	"github.com/xkilldash9x/clickpoint/api/schemas"
	"github.com/xkilldash9x/clickpoint/internal/input"
)

// Viewport is the tab's layout viewport, in CSS pixels. It serves as the host
// window for elements located through a Session.
type Viewport struct {
	s *Session
}

var _ input.HostWindow = (*Viewport)(nil)

// NewViewport returns the viewport of the session's tab.
func NewViewport(s *Session) *Viewport {
	return &Viewport{s: s}
}

// ClientRect returns the visible layout viewport with its origin at (0, 0).
func (v *Viewport) ClientRect(ctx context.Context) (schemas.Rect, error) {
	a := &layoutAction{}
	if err := v.s.runActionsFunc(ctx, a); err != nil {
		return schemas.Rect{}, fmt.Errorf("reading layout metrics: %w", err)
	}
	if a.cssLayout == nil {
		return schemas.Rect{}, errors.New("layout metrics have no CSS layout viewport")
	}
	return schemas.Rect{Right: a.cssLayout.ClientWidth, Bottom: a.cssLayout.ClientHeight}, nil
}
