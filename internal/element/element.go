// internal/element/element.go
package element

import (
	"github.com/google/uuid"
	json "github.com/json-iterator/go"

	"github.com/xkilldash9x/clickpoint/internal/input"
)

// Element is a handle to a DOM element. It pairs a native element reference
// with the host window its document renders into. Handles are values: they are
// never mutated after New and can be copied and read freely.
type Element struct {
	id     string
	native HTMLElement
	window input.HostWindow
}

// New wraps a native element reference in a freshly identified handle.
func New(native HTMLElement, window input.HostWindow) Element {
	return Element{
		id:     uuid.NewString(),
		native: native,
		window: window,
	}
}

// ID returns the handle's identifier.
func (e Element) ID() string { return e.id }

// Native returns the wrapped element reference.
func (e Element) Native() HTMLElement { return e.native }

// Window returns the host window of the element's rendering surface.
func (e Element) Window() input.HostWindow { return e.window }

// MarshalJSON renders the handle in its wire form, {"ELEMENT": "<id>"}.
func (e Element) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"ELEMENT": e.id})
}
