// internal/element/click.go
package element

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/xkilldash9x/clickpoint/api/schemas"
	"github.com/xkilldash9x/clickpoint/internal/input"
)

// GetLocationOnceScrolledIntoView returns the element's bounding box, scrolling
// it into view first when its click point is outside the viewport or clipped by
// a scrollable ancestor. The scroll is attempted exactly once.
func (l *Locator) GetLocationOnceScrolledIntoView(ctx context.Context, el Element) (schemas.BoundingBox, error) {
	const op = "GetLocationOnceScrolledIntoView"

	if _, ok := el.native.(DOMNode); !ok {
		l.logger.Warn("Cannot cast element to a DOM node.", zap.String("element", el.id))
		return schemas.BoundingBox{}, newError(NoSuchElement, op, nil)
	}

	displayed, err := l.IsDisplayed(ctx, el)
	if err != nil {
		return schemas.BoundingBox{}, err
	}
	if !displayed {
		return schemas.BoundingBox{}, newError(ElementNotDisplayed, op, nil)
	}

	box, err := l.GetLocation(ctx, el)
	if err != nil || !l.IsClickPointInViewPort(ctx, el, box) || l.IsHiddenByOverflow(ctx, el, box.ClickPoint()) {
		l.logger.Debug("Will need to scroll element into view.", zap.String("element", el.id))
		if err := el.native.ScrollIntoView(ctx, true); err != nil {
			l.logger.Warn("Cannot scroll element into view.", zap.String("element", el.id), zap.Error(err))
			return schemas.BoundingBox{}, newError(ObsoleteElement, op, err)
		}

		box, err = l.GetLocation(ctx, el)
		if err != nil {
			return schemas.BoundingBox{}, err
		}
		if !l.IsClickPointInViewPort(ctx, el, box) {
			return schemas.BoundingBox{}, newError(ElementNotDisplayed, op, nil)
		}
	}

	l.logger.Debug("Element located.",
		zap.String("element", el.id),
		zap.Int64("x", box.X), zap.Int64("y", box.Y),
		zap.Int64("width", box.Width), zap.Int64("height", box.Height))
	return box, nil
}

// Locate is GetLocationOnceScrolledIntoView packaged with the element id and
// click point.
func (l *Locator) Locate(ctx context.Context, el Element) (schemas.ElementLocation, error) {
	box, err := l.GetLocationOnceScrolledIntoView(ctx, el)
	if err != nil {
		return schemas.ElementLocation{}, err
	}
	return schemas.ElementLocation{ElementID: el.id, Box: box, ClickPoint: box.ClickPoint()}, nil
}

// Click moves the pointer from the element's origin to its center, then
// presses and releases the left button there.
func (l *Locator) Click(ctx context.Context, el Element) error {
	box, err := l.GetLocationOnceScrolledIntoView(ctx, el)
	if err != nil {
		return err
	}
	click := box.ClickPoint()

	if err := l.injector.MouseMoveTo(ctx, el.window, l.cfg.MouseMoveSteps, box.Origin(), click); err != nil {
		return inputError(err)
	}
	if err := input.ClickAt(ctx, l.injector, el.window, click, schemas.ButtonLeft); err != nil {
		return inputError(err)
	}

	l.logger.Debug("Clicked element.", zap.String("element", el.id), zap.Int64("x", click.X), zap.Int64("y", click.Y))
	return nil
}

// inputError keeps an injector's own status and classifies anything else as
// unhandled.
func inputError(err error) error {
	var typed *Error
	if errors.As(err, &typed) {
		return err
	}
	return newError(UnhandledError, "Click", err)
}
