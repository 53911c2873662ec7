// internal/element/native.go
package element

import (
	"context"

	"github.com/xkilldash9x/clickpoint/api/schemas"
)

// This file declares the capability surface the locator consumes from the
// automation substrate. Only HTMLElement is required of every element
// reference. The other element interfaces are optional capabilities, checked
// with a type assertion and never assumed.

// HTMLElement is the base surface of a native element reference.
type HTMLElement interface {
	TagName(ctx context.Context) (string, error)
	// Document returns the document the element currently belongs to.
	Document(ctx context.Context) (Document, error)
	// ScrollIntoView asks the browser to scroll the element into view. It fails
	// when the node is no longer attached.
	ScrollIntoView(ctx context.Context, alignToTop bool) error
}

// DOMNode is implemented by references to nodes attached to a live node tree.
type DOMNode interface {
	OwnerDocument(ctx context.Context) (Document, error)
}

// BoxElement exposes layout geometry.
type BoxElement interface {
	BoundingClientRect(ctx context.Context) (schemas.Rect, error)
	// ScrollOffset returns the element's own scrollLeft/scrollTop.
	ScrollOffset(ctx context.Context) (schemas.Offset, error)
}

// ClientRectsElement is implemented by elements whose rendering can be split
// into several disjoint boxes, such as a hyperlink wrapping across lines.
type ClientRectsElement interface {
	ClientRects(ctx context.Context) ([]schemas.Rect, error)
}

// Document is a native document reference.
type Document interface {
	ParentWindow(ctx context.Context) (Window, error)
	// Frames enumerates the windows of the document's frames, in order. Nil
	// entries stand for frames that are not HTML frames.
	Frames(ctx context.Context) ([]Window, error)
	// SameDocument is an identity comparison, not a structural one.
	SameDocument(ctx context.Context, other Document) bool
}

// Window is a native window reference.
type Window interface {
	// Parent returns the parent window, or the window itself at the top level.
	Parent(ctx context.Context) (Window, error)
	// Document fails with ErrAccessDenied for cross-origin documents.
	Document(ctx context.Context) (Document, error)
	SameWindow(ctx context.Context, other Window) bool
}

// BrowserService is the fallback route to a window's document when direct
// access is denied.
type BrowserService interface {
	BrowserDocument(ctx context.Context) (Document, error)
}

// ResultKind tags the value held by a Result.
type ResultKind int

const (
	ResultNull ResultKind = iota
	ResultBool
	ResultString
	ResultNumber
	ResultElement
	ResultObject
)

// Result is the tagged value returned from a script execution.
type Result struct {
	Kind    ResultKind
	Bool    bool
	String  string
	Number  float64
	Element HTMLElement
}

// IsBool reports whether the script returned a boolean.
func (r Result) IsBool() bool { return r.Kind == ResultBool }

// True reports whether the script returned the boolean true.
func (r Result) True() bool { return r.Kind == ResultBool && r.Bool }

// ScriptExecutor runs a script in the scripting context of a document. source
// is a function declaration that the executor invokes with args. Arguments may
// be native references (HTMLElement, Document, Window) or primitives.
type ScriptExecutor interface {
	Execute(ctx context.Context, doc Document, source string, args ...any) (Result, error)
}
