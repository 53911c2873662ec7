// FILE: ./internal/element/fakes_test.go
package element

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/xkilldash9x/clickpoint/api/schemas"
	"github.com/xkilldash9x/clickpoint/internal/config"
	"github.com/xkilldash9x/clickpoint/internal/input"
)

// An in-memory stand-in for the native object model. Documents and windows
// compare by pointer identity, like the native references they replace.

type fakeDoc struct {
	win       *fakeWindow
	frames    []Window
	framesErr error
}

func (d *fakeDoc) ParentWindow(context.Context) (Window, error) {
	if d.win == nil {
		return nil, errors.New("document has no window")
	}
	return d.win, nil
}

func (d *fakeDoc) Frames(context.Context) ([]Window, error) {
	return d.frames, d.framesErr
}

func (d *fakeDoc) SameDocument(_ context.Context, other Document) bool {
	o, ok := other.(*fakeDoc)
	return ok && o == d
}

type fakeWindow struct {
	parent Window
	doc    *fakeDoc
	docErr error
}

func (w *fakeWindow) Parent(context.Context) (Window, error) {
	if w.parent == nil {
		return w, nil
	}
	return w.parent, nil
}

func (w *fakeWindow) Document(context.Context) (Document, error) {
	if w.docErr != nil {
		return nil, w.docErr
	}
	return w.doc, nil
}

func (w *fakeWindow) SameWindow(_ context.Context, other Window) bool {
	switch o := other.(type) {
	case *fakeWindow:
		return o == w
	case *serviceWindow:
		return o.fakeWindow == w
	}
	return false
}

// serviceWindow is a window whose document can also be reached through the
// browser service.
type serviceWindow struct {
	*fakeWindow
	serviceDoc *fakeDoc
	serviceErr error
	calls      int
}

func (w *serviceWindow) BrowserDocument(context.Context) (Document, error) {
	w.calls++
	if w.serviceErr != nil {
		return nil, w.serviceErr
	}
	return w.serviceDoc, nil
}

type fakeElement struct {
	tag     string
	doc     *fakeDoc
	rect    schemas.Rect
	rectErr error
	scroll  schemas.Offset

	// afterScroll replaces rect once ScrollIntoView succeeds.
	afterScroll *schemas.Rect
	scrollErr   error
	scrollCalls int
	rectCalls   int
}

func (e *fakeElement) TagName(context.Context) (string, error) { return e.tag, nil }

func (e *fakeElement) Document(context.Context) (Document, error) {
	if e.doc == nil {
		return nil, errors.New("detached")
	}
	return e.doc, nil
}

func (e *fakeElement) OwnerDocument(ctx context.Context) (Document, error) { return e.Document(ctx) }

func (e *fakeElement) ScrollIntoView(_ context.Context, alignToTop bool) error {
	e.scrollCalls++
	if e.scrollErr != nil {
		return e.scrollErr
	}
	if e.afterScroll != nil {
		e.rect = *e.afterScroll
	}
	return nil
}

func (e *fakeElement) BoundingClientRect(context.Context) (schemas.Rect, error) {
	e.rectCalls++
	return e.rect, e.rectErr
}

func (e *fakeElement) ScrollOffset(context.Context) (schemas.Offset, error) { return e.scroll, nil }

// fakeAnchor adds the multi-rectangle capability.
type fakeAnchor struct {
	*fakeElement
	rects []schemas.Rect
}

func (a *fakeAnchor) ClientRects(context.Context) ([]schemas.Rect, error) { return a.rects, nil }

// bareElement only has the base surface: no node, no geometry.
type bareElement struct{}

func (bareElement) TagName(context.Context) (string, error)    { return "div", nil }
func (bareElement) Document(context.Context) (Document, error) { return &fakeDoc{}, nil }
func (bareElement) ScrollIntoView(context.Context, bool) error { return nil }

type fakeHostWindow struct {
	rect  schemas.Rect
	err   error
	calls int
}

func (w *fakeHostWindow) ClientRect(context.Context) (schemas.Rect, error) {
	w.calls++
	return w.rect, w.err
}

// fakeScripts answers the injected scripts from fixed values.
type fakeScripts struct {
	displayed  bool
	displayErr error
	overflow   bool
	frameHosts map[Window]HTMLElement

	displayArgs []any
	calls       []string
}

func (s *fakeScripts) Execute(_ context.Context, _ Document, source string, args ...any) (Result, error) {
	switch source {
	case isDisplayedAtom:
		s.calls = append(s.calls, "isDisplayed")
		s.displayArgs = args
		if s.displayErr != nil {
			return Result{}, s.displayErr
		}
		return Result{Kind: ResultBool, Bool: s.displayed}, nil
	case isHiddenByOverflowScript:
		s.calls = append(s.calls, "overflow")
		return Result{Kind: ResultBool, Bool: s.overflow}, nil
	case frameElementScript:
		s.calls = append(s.calls, "frameElement")
		win, _ := args[0].(Window)
		if host, ok := s.frameHosts[win]; ok {
			return Result{Kind: ResultElement, Element: host}, nil
		}
		return Result{Kind: ResultNull}, nil
	}
	return Result{}, errors.New("unexpected script")
}

type recordedEvent struct {
	Kind   string
	From   schemas.Point
	To     schemas.Point
	Steps  int
	Button schemas.MouseButton
}

type recordingInjector struct {
	events []recordedEvent
	failOn string
}

func (r *recordingInjector) MouseMoveTo(_ context.Context, _ input.HostWindow, steps int, from, to schemas.Point) error {
	r.events = append(r.events, recordedEvent{Kind: "move", From: from, To: to, Steps: steps})
	if r.failOn == "move" {
		return errors.New("move rejected")
	}
	return nil
}

func (r *recordingInjector) MouseDown(_ context.Context, _ input.HostWindow, at schemas.Point, b schemas.MouseButton) error {
	r.events = append(r.events, recordedEvent{Kind: "down", To: at, Button: b})
	if r.failOn == "down" {
		return errors.New("down rejected")
	}
	return nil
}

func (r *recordingInjector) MouseUp(_ context.Context, _ input.HostWindow, at schemas.Point, b schemas.MouseButton) error {
	r.events = append(r.events, recordedEvent{Kind: "up", To: at, Button: b})
	if r.failOn == "up" {
		return errors.New("up rejected")
	}
	return nil
}

// newTopLevel builds a top-level document and its window.
func newTopLevel() (*fakeDoc, *fakeWindow) {
	w := &fakeWindow{}
	d := &fakeDoc{win: w}
	w.doc = d
	return d, w
}

// newChildFrame builds a document framed inside parentDoc.
func newChildFrame(parentDoc *fakeDoc) (*fakeDoc, *fakeWindow) {
	w := &fakeWindow{parent: parentDoc.win}
	d := &fakeDoc{win: w}
	w.doc = d
	parentDoc.frames = append(parentDoc.frames, w)
	return d, w
}

func rectOf(x, y, w, h int64) schemas.Rect {
	return schemas.Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

type harness struct {
	locator  *Locator
	scripts  *fakeScripts
	injector *recordingInjector
	window   *fakeHostWindow
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	cfg := config.NewDefaultConfig().Locator()
	h := &harness{
		scripts:  &fakeScripts{displayed: true, frameHosts: map[Window]HTMLElement{}},
		injector: &recordingInjector{},
		window:   &fakeHostWindow{rect: schemas.Rect{Right: 800, Bottom: 600}},
	}
	h.locator = NewLocator(zaptest.NewLogger(t), h.scripts, h.injector, cfg)
	return h
}
