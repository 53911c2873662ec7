// api/schemas/geometry.go
package schemas

// Point is a single coordinate, either in page space or relative to a host
// window's client area depending on where it came from.
type Point struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
}

// Offset is a translation applied to coordinates, used to carry a nested
// document's position into its top-level ancestor's space.
type Offset struct {
	DX int64 `json:"dx"`
	DY int64 `json:"dy"`
}

// IsZero reports whether the offset is the identity translation.
func (o Offset) IsZero() bool { return o.DX == 0 && o.DY == 0 }

// Rect is an edge-based rectangle as reported by getBoundingClientRect,
// getClientRects or a window's client area.
type Rect struct {
	Left   int64 `json:"left"`
	Top    int64 `json:"top"`
	Right  int64 `json:"right"`
	Bottom int64 `json:"bottom"`
}

// Width is Right - Left. It may be zero or negative for collapsed rects.
func (r Rect) Width() int64 { return r.Right - r.Left }

// Height is Bottom - Top. It may be zero or negative for collapsed rects.
func (r Rect) Height() int64 { return r.Bottom - r.Top }

// BoundingBox is an element's rendered extent in page coordinates, already
// adjusted for the element's own scroll position and any frame offset.
type BoundingBox struct {
	X      int64 `json:"x"`
	Y      int64 `json:"y"`
	Width  int64 `json:"width"`
	Height int64 `json:"height"`
}

// Valid reports whether the box has a positive area. Boxes that are not valid
// can never be clicked.
func (b BoundingBox) Valid() bool { return b.Width > 0 && b.Height > 0 }

// Origin returns the top-left corner of the box.
func (b BoundingBox) Origin() Point { return Point{X: b.X, Y: b.Y} }

// ClickPoint is the center of the box, truncated toward zero.
func (b BoundingBox) ClickPoint() Point {
	return Point{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}

// Translate returns the box moved by the given offset.
func (b BoundingBox) Translate(o Offset) BoundingBox {
	b.X += o.DX
	b.Y += o.DY
	return b
}

// ElementLocation is the serialized form of a located element, as printed by
// the CLI and logged by the locator.
type ElementLocation struct {
	ElementID  string      `json:"elementId"`
	Box        BoundingBox `json:"box"`
	ClickPoint Point       `json:"clickPoint"`
}
