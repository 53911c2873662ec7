// internal/element/location.go
package element

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/xkilldash9x/clickpoint/api/schemas"
)

// GetLocation computes the element's bounding box in top-level page
// coordinates.
//
// Some older rendering engines report (0,0,0,0) for elements outside the
// viewport instead of their document position. That surfaces here as
// ElementNotDisplayed and is not corrected.
func (l *Locator) GetLocation(ctx context.Context, el Element) (schemas.BoundingBox, error) {
	const op = "GetLocation"

	box, ok := el.native.(BoxElement)
	if !ok {
		l.logger.Warn("Unable to cast element to a geometry-capable type.", zap.String("element", el.id))
		return schemas.BoundingBox{}, newError(ObsoleteElement, op, nil)
	}

	rect, err := clientRect(ctx, box)
	if err != nil {
		l.logger.Warn("Cannot figure out where the element is on screen.", zap.String("element", el.id), zap.Error(err))
		return schemas.BoundingBox{}, newError(UnhandledError, op, err)
	}

	bb := schemas.BoundingBox{
		X:      rect.Left,
		Y:      rect.Top,
		Width:  rect.Width(),
		Height: rect.Height(),
	}
	if !bb.Valid() {
		return schemas.BoundingBox{}, newError(ElementNotDisplayed, op, nil)
	}

	scroll, err := box.ScrollOffset(ctx)
	if err != nil {
		l.logger.Debug("Scroll offset unavailable, assuming zero.", zap.String("element", el.id), zap.Error(err))
	} else {
		bb = bb.Translate(scroll)
	}

	return bb.Translate(l.GetFrameOffset(ctx, el)), nil
}

// clientRect picks the rectangle that represents the element. Elements that
// render as several disjoint boxes use their first box; everything else uses
// the bounding rectangle.
func clientRect(ctx context.Context, box BoxElement) (schemas.Rect, error) {
	if multi, ok := box.(ClientRectsElement); ok {
		rects, err := multi.ClientRects(ctx)
		if err == nil && len(rects) > 1 {
			return rects[0], nil
		}
	}
	return box.BoundingClientRect(ctx)
}

// GetFrameOffset returns the translation from the element's document into the
// top-level document. It is zero for top-level elements. Resolution is best
// effort: any failure yields a zero offset rather than an error.
func (l *Locator) GetFrameOffset(ctx context.Context, el Element) schemas.Offset {
	offset, err := l.frameOffset(ctx, el)
	if err != nil {
		l.logger.Warn("Frame offset unavailable, assuming top-level document.", zap.String("element", el.id), zap.Error(err))
		return schemas.Offset{}
	}
	return offset
}

func (l *Locator) frameOffset(ctx context.Context, el Element) (schemas.Offset, error) {
	const op = "GetFrameOffset"

	ownerDoc, err := l.containingDocument(ctx, el, true)
	if err != nil {
		return schemas.Offset{}, err
	}

	win, err := ownerDoc.ParentWindow(ctx)
	if err != nil || win == nil {
		return schemas.Offset{}, newError(NoSuchDocument, op, err)
	}

	parent, err := win.Parent(ctx)
	if err != nil || parent == nil || parent.SameWindow(ctx, win) {
		// Top-level document.
		return schemas.Offset{}, nil
	}

	parentDoc, err := l.parentDocument(ctx, parent)
	if err != nil {
		return schemas.Offset{}, err
	}

	frames, err := parentDoc.Frames(ctx)
	if err != nil {
		return schemas.Offset{}, newError(NoSuchDocument, op, err)
	}

	for _, frameWin := range frames {
		if frameWin == nil {
			continue
		}
		frameDoc, err := frameWin.Document(ctx)
		if err != nil || frameDoc == nil || !frameDoc.SameDocument(ctx, ownerDoc) {
			continue
		}

		// This frame holds the element's document. Its hosting frame or iframe
		// element is positioned in the parent document, and that position is
		// the offset.
		res, err := l.scripts.Execute(ctx, frameDoc, frameElementScript, frameWin)
		if err != nil {
			return schemas.Offset{}, newError(UnexpectedJSError, op, err)
		}
		if res.Kind != ResultElement || res.Element == nil {
			return schemas.Offset{}, newError(NoSuchElement, op, errors.New("frame has no hosting element"))
		}

		host, err := l.GetLocation(ctx, New(res.Element, el.window))
		if err != nil {
			return schemas.Offset{}, err
		}
		return schemas.Offset{DX: host.X, DY: host.Y}, nil
	}
	return schemas.Offset{}, nil
}

// parentDocument gets a window's document. Cross-origin documents refuse
// direct access, in which case the window's browser service is asked instead.
func (l *Locator) parentDocument(ctx context.Context, parent Window) (Document, error) {
	const op = "parentDocument"

	doc, err := parent.Document(ctx)
	if err == nil && doc != nil {
		return doc, nil
	}
	if !errors.Is(err, ErrAccessDenied) {
		return nil, newError(NoSuchDocument, op, err)
	}

	svc, ok := parent.(BrowserService)
	if !ok {
		return nil, newError(NoSuchDocument, op, err)
	}
	l.logger.Debug("Parent document access denied, using browser service.")
	doc, err = svc.BrowserDocument(ctx)
	if err != nil {
		return nil, newError(NoSuchDocument, op, err)
	}
	if doc == nil {
		return nil, newError(NoSuchDocument, op, errors.New("browser service returned no document"))
	}
	return doc, nil
}
