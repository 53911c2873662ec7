// internal/input/osinput/driver.go
package osinput

import (
	"github.com/go-vgo/robotgo"
)

// driver is the slice of the OS automation library the injector needs. Screen
// coordinates are in the library's input space.
type driver interface {
	ClientBounds(pid int) (x, y, w, h int)
	Activate(pid int) error
	Move(x, y int)
	Location() (x, y int)
	Toggle(button string, up bool) error
}

type robotDriver struct{}

func (robotDriver) ClientBounds(pid int) (x, y, w, h int) { return robotgo.GetClient(pid) }
func (robotDriver) Activate(pid int) error                { return robotgo.ActivePid(pid) }
func (robotDriver) Move(x, y int)                         { robotgo.Move(x, y) }
func (robotDriver) Location() (x, y int)                  { return robotgo.Location() }

func (robotDriver) Toggle(button string, up bool) error {
	if up {
		return robotgo.Toggle(button, "up")
	}
	return robotgo.Toggle(button)
}
