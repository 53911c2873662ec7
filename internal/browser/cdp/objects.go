// internal/browser/cdp/objects.go
package cdp

import (
	"context"
	"errors"
	"fmt"
	"math"

	cdproto "github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/dom"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"

	"github.com/xkilldash9x/clickpoint/api/schemas"
	"github.com/xkilldash9x/clickpoint/internal/element"
)

// Native references are remote objects held by the page. They are only valid
// while the execution context that produced them is alive.

const (
	fnTagName        = `function() { return this.tagName; }`
	fnOwnerDocument  = `function() { if (!this.isConnected) throw new Error('stale element reference: node is detached'); return this.ownerDocument; }`
	fnDocument       = `function() { return this.ownerDocument; }`
	fnScrollIntoView = `function(alignToTop) { if (!this.isConnected) throw new Error('stale element reference: node is detached'); this.scrollIntoView(alignToTop); }`
	fnBoundingRect   = `function() { const r = this.getBoundingClientRect(); return [r.left, r.top, r.right, r.bottom]; }`
	fnScrollOffset   = `function() { return [this.scrollLeft, this.scrollTop]; }`
	fnClientRects    = `function() { return Array.from(this.getClientRects(), r => [r.left, r.top, r.right, r.bottom]); }`
	fnDefaultView    = `function() { return this.defaultView; }`
	fnFrameCount     = `function() { return this.defaultView ? this.defaultView.frames.length : 0; }`
	fnFrameAt        = `function(i) { return this.defaultView.frames[i]; }`
	fnParent         = `function() { return this.parent; }`
	fnWindowDocument = `function() { return this.document; }`
	fnSameObject     = `function(other) { return this === other; }`
	fnIsTop          = `function() { return this === this.top; }`
	fnQuerySelector  = `function(selector) { return this.querySelector(selector); }`
)

// remoteObject is implemented by every native reference so it can be passed
// back into a function call.
type remoteObject interface {
	objectID() runtime.RemoteObjectID
}

type remoteElement struct {
	s  *Session
	id runtime.RemoteObjectID
}

// remoteAnchor is a hyperlink, which can render as several boxes.
type remoteAnchor struct {
	remoteElement
}

var (
	_ element.HTMLElement        = (*remoteElement)(nil)
	_ element.DOMNode            = (*remoteElement)(nil)
	_ element.BoxElement         = (*remoteElement)(nil)
	_ element.ClientRectsElement = (*remoteAnchor)(nil)
	_ element.Document           = (*remoteDocument)(nil)
	_ element.Window             = (*remoteWindow)(nil)
	_ element.BrowserService     = (*remoteWindow)(nil)
)

// newElement wraps a remote node. Hyperlinks get the multi-box capability.
func newElement(s *Session, obj *runtime.RemoteObject) element.HTMLElement {
	el := remoteElement{s: s, id: obj.ObjectID}
	if obj.ClassName == "HTMLAnchorElement" {
		return &remoteAnchor{remoteElement: el}
	}
	return &el
}

func (e *remoteElement) objectID() runtime.RemoteObjectID { return e.id }

func (e *remoteElement) TagName(ctx context.Context) (string, error) {
	var tag string
	if err := e.s.callValue(ctx, e.id, fnTagName, &tag); err != nil {
		return "", err
	}
	return tag, nil
}

func (e *remoteElement) Document(ctx context.Context) (element.Document, error) {
	return e.document(ctx, fnDocument)
}

func (e *remoteElement) OwnerDocument(ctx context.Context) (element.Document, error) {
	return e.document(ctx, fnOwnerDocument)
}

func (e *remoteElement) document(ctx context.Context, fn string) (element.Document, error) {
	obj, err := e.s.callObject(ctx, e.id, fn)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errors.New("element has no document")
	}
	return &remoteDocument{s: e.s, id: obj.ObjectID}, nil
}

func (e *remoteElement) ScrollIntoView(ctx context.Context, alignToTop bool) error {
	arg, err := valueArg(alignToTop)
	if err != nil {
		return err
	}
	_, err = e.s.callOn(ctx, e.id, fnScrollIntoView, true, arg)
	return err
}

func (e *remoteElement) BoundingClientRect(ctx context.Context) (schemas.Rect, error) {
	var edges [4]float64
	if err := e.s.callValue(ctx, e.id, fnBoundingRect, &edges); err != nil {
		return schemas.Rect{}, err
	}
	return rectFromEdges(edges), nil
}

func (e *remoteElement) ScrollOffset(ctx context.Context) (schemas.Offset, error) {
	var scroll [2]float64
	if err := e.s.callValue(ctx, e.id, fnScrollOffset, &scroll); err != nil {
		return schemas.Offset{}, err
	}
	return schemas.Offset{DX: round(scroll[0]), DY: round(scroll[1])}, nil
}

func (a *remoteAnchor) ClientRects(ctx context.Context) ([]schemas.Rect, error) {
	var all [][4]float64
	if err := a.s.callValue(ctx, a.id, fnClientRects, &all); err != nil {
		return nil, err
	}
	rects := make([]schemas.Rect, len(all))
	for i, edges := range all {
		rects[i] = rectFromEdges(edges)
	}
	return rects, nil
}

type remoteDocument struct {
	s  *Session
	id runtime.RemoteObjectID
}

func (d *remoteDocument) objectID() runtime.RemoteObjectID { return d.id }

func (d *remoteDocument) ParentWindow(ctx context.Context) (element.Window, error) {
	obj, err := d.s.callObject(ctx, d.id, fnDefaultView)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errors.New("document has no window")
	}
	return &remoteWindow{s: d.s, id: obj.ObjectID}, nil
}

func (d *remoteDocument) Frames(ctx context.Context) ([]element.Window, error) {
	var count int
	if err := d.s.callValue(ctx, d.id, fnFrameCount, &count); err != nil {
		return nil, err
	}
	frames := make([]element.Window, 0, count)
	for i := 0; i < count; i++ {
		arg, err := valueArg(i)
		if err != nil {
			return nil, err
		}
		obj, err := d.s.callObject(ctx, d.id, fnFrameAt, arg)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		if obj == nil {
			frames = append(frames, nil)
			continue
		}
		frames = append(frames, &remoteWindow{s: d.s, id: obj.ObjectID})
	}
	return frames, nil
}

// SameDocument compares backend node ids, which are stable across execution
// contexts.
func (d *remoteDocument) SameDocument(ctx context.Context, other element.Document) bool {
	o, ok := other.(*remoteDocument)
	if !ok {
		return false
	}
	if o.id == d.id {
		return true
	}
	a, err := d.s.backendNodeID(ctx, d.id)
	if err != nil {
		return false
	}
	b, err := d.s.backendNodeID(ctx, o.id)
	if err != nil {
		return false
	}
	return a == b
}

func (s *Session) backendNodeID(ctx context.Context, id runtime.RemoteObjectID) (cdproto.BackendNodeID, error) {
	a := &describeAction{params: dom.DescribeNode().WithObjectID(id)}
	if err := s.runActionsFunc(ctx, a); err != nil {
		return 0, err
	}
	if a.node == nil {
		return 0, fmt.Errorf("no node for %s", id)
	}
	return a.node.BackendNodeID, nil
}

type remoteWindow struct {
	s  *Session
	id runtime.RemoteObjectID
}

func (w *remoteWindow) objectID() runtime.RemoteObjectID { return w.id }

func (w *remoteWindow) Parent(ctx context.Context) (element.Window, error) {
	obj, err := w.s.callObject(ctx, w.id, fnParent)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return w, nil
	}
	return &remoteWindow{s: w.s, id: obj.ObjectID}, nil
}

func (w *remoteWindow) Document(ctx context.Context) (element.Document, error) {
	obj, err := w.s.callObject(ctx, w.id, fnWindowDocument)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errors.New("window has no document")
	}
	return &remoteDocument{s: w.s, id: obj.ObjectID}, nil
}

func (w *remoteWindow) SameWindow(ctx context.Context, other element.Window) bool {
	o, ok := other.(*remoteWindow)
	if !ok {
		return false
	}
	if o.id == w.id {
		return true
	}
	var same bool
	if err := w.s.callValue(ctx, w.id, fnSameObject, &same, objectArg(o.id)); err != nil {
		return false
	}
	return same
}

// BrowserDocument reaches the document of the top-level window through the
// page's frame tree when the window itself refuses access. Only the top
// window is reachable this way.
func (w *remoteWindow) BrowserDocument(ctx context.Context) (element.Document, error) {
	var top bool
	if err := w.s.callValue(ctx, w.id, fnIsTop, &top); err != nil {
		return nil, err
	}
	if !top {
		return nil, errors.New("browser document is only available for the top-level window")
	}
	return w.s.topDocument(ctx)
}

// topDocument evaluates document in an isolated world of the main frame, which
// is not subject to the page's origin checks.
func (s *Session) topDocument(ctx context.Context) (element.Document, error) {
	tree := &frameTreeAction{}
	if err := s.runActionsFunc(ctx, tree); err != nil {
		return nil, fmt.Errorf("reading frame tree: %w", err)
	}
	if tree.tree == nil || tree.tree.Frame == nil {
		return nil, errors.New("page has no main frame")
	}

	world := &isolatedWorldAction{
		params: page.CreateIsolatedWorld(tree.tree.Frame.ID).WithWorldName("clickpoint"),
	}
	if err := s.runActionsFunc(ctx, world); err != nil {
		return nil, fmt.Errorf("creating isolated world: %w", err)
	}

	eval := &evaluateAction{params: runtime.Evaluate("document").WithContextID(world.contextID).WithObjectGroup(objectGroup)}
	if err := s.runActionsFunc(ctx, eval); err != nil {
		return nil, err
	}
	if eval.exception != nil {
		return nil, exceptionError(eval.exception)
	}
	if isNullish(eval.result) {
		return nil, errors.New("main frame has no document")
	}
	return &remoteDocument{s: s, id: eval.result.ObjectID}, nil
}

func rectFromEdges(e [4]float64) schemas.Rect {
	return schemas.Rect{Left: round(e[0]), Top: round(e[1]), Right: round(e[2]), Bottom: round(e[3])}
}

func round(f float64) int64 { return int64(math.Round(f)) }
