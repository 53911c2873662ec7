// internal/element/viewport.go
package element

import (
	"context"

	"go.uber.org/zap"

	"github.com/xkilldash9x/clickpoint/api/schemas"
)

// IsClickPointInViewPort reports whether the center of box falls inside the
// host window's client area, shrunk by the guard margin on every edge. The
// window is queried on each call.
func (l *Locator) IsClickPointInViewPort(ctx context.Context, el Element, box schemas.BoundingBox) bool {
	click := box.ClickPoint()

	if el.window == nil {
		l.logger.Warn("Element has no host window.", zap.String("element", el.id))
		return false
	}
	client, err := el.window.ClientRect(ctx)
	if err != nil {
		l.logger.Warn("Cannot determine size of window.", zap.Error(err))
		return false
	}

	margin := l.cfg.ViewportGuardMargin
	width, height := client.Width(), client.Height()

	if click.X < margin || click.X >= width-margin {
		return false
	}
	if click.Y < margin || click.Y >= height-margin {
		return false
	}
	return true
}

// IsHiddenByOverflow reports whether the nearest scrollable ancestor clips the
// point out of its visible region. Failures read as not hidden.
func (l *Locator) IsHiddenByOverflow(ctx context.Context, el Element, click schemas.Point) bool {
	res, err := l.runScript(ctx, "IsHiddenByOverflow", el, isHiddenByOverflowScript, el.native, click.X, click.Y)
	if err != nil {
		l.logger.Debug("Overflow check failed.", zap.String("element", el.id), zap.Error(err))
		return false
	}
	return res.True()
}
