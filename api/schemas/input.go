// api/schemas/input.go
package schemas

// MouseEventType names a synthesized pointer event. The values match the
// DevTools Input.dispatchMouseEvent types so protocol backends pass them
// through as is.
type MouseEventType string

const (
	MouseMove    MouseEventType = "mouseMoved"
	MousePress   MouseEventType = "mousePressed"
	MouseRelease MouseEventType = "mouseReleased"
)

// MouseButton identifies the button a press or release applies to.
type MouseButton string

const (
	ButtonNone   MouseButton = "none"
	ButtonLeft   MouseButton = "left"
	ButtonRight  MouseButton = "right"
	ButtonMiddle MouseButton = "middle"
)

// Buttons returns the pressed-buttons bitfield that accompanies a press of b.
func (b MouseButton) Buttons() int64 {
	switch b {
	case ButtonLeft:
		return 1
	case ButtonRight:
		return 2
	case ButtonMiddle:
		return 4
	default:
		return 0
	}
}

// MouseEventData is one pointer event at a point in the host window's client
// coordinates.
type MouseEventData struct {
	Type       MouseEventType `json:"type"`
	X          float64        `json:"x"`
	Y          float64        `json:"y"`
	Button     MouseButton    `json:"button"`
	Buttons    int64          `json:"buttons"`
	ClickCount int64          `json:"clickCount"`
}

