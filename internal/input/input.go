// internal/input/input.go
package input

import (
	"context"
	"fmt"

	"github.com/xkilldash9x/clickpoint/api/schemas"
)

// HostWindow is the native window that hosts a rendering surface. Coordinates
// handed to an Injector are relative to this window's client area.
type HostWindow interface {
	// ClientRect returns the window's current visible client area. It is never
	// cached by callers since the window can be resized between calls.
	ClientRect(ctx context.Context) (schemas.Rect, error)
}

// Injector synthesizes pointer input against a host window. Implementations
// either drive the real OS pointer or a browser's input protocol.
type Injector interface {
	// MouseMoveTo moves the pointer from one point to another in the given number
	// of intermediate steps, emitting a move event for each.
	MouseMoveTo(ctx context.Context, win HostWindow, steps int, from, to schemas.Point) error
	MouseDown(ctx context.Context, win HostWindow, at schemas.Point, button schemas.MouseButton) error
	MouseUp(ctx context.Context, win HostWindow, at schemas.Point, button schemas.MouseButton) error
}

// ClickAt presses and releases a button at a point. A failed press aborts the
// sequence so a release is never sent for a press that did not happen.
func ClickAt(ctx context.Context, inj Injector, win HostWindow, at schemas.Point, button schemas.MouseButton) error {
	if err := inj.MouseDown(ctx, win, at, button); err != nil {
		return fmt.Errorf("mouse down at (%d, %d): %w", at.X, at.Y, err)
	}
	if err := inj.MouseUp(ctx, win, at, button); err != nil {
		return fmt.Errorf("mouse up at (%d, %d): %w", at.X, at.Y, err)
	}
	return nil
}
