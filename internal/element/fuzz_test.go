package element

import (
	"context"
	"testing"

	fuzz "github.com/AdaLogics/go-fuzz-headers"

	"github.com/xkilldash9x/clickpoint/api/schemas"
)

type fuzzGeometry struct {
	Left, Top, Width, Height int32
	ScrollX, ScrollY         int16
	FrameX, FrameY           int16
	Framed                   bool
	Displayed                bool
	Overflow                 bool
	WinWidth, WinHeight      uint16
}

// FuzzGetLocationOnceScrolledIntoView checks that whatever geometry the page
// reports, a successful location has a positive size and a click point inside
// the guarded viewport, and that at most one scroll is attempted.
func FuzzGetLocationOnceScrolledIntoView(f *testing.F) {
	f.Add([]byte{0x10, 0x20, 0x30, 0x40, 0x01, 0x01})
	f.Fuzz(func(t *testing.T, data []byte) {
		var g fuzzGeometry
		if err := fuzz.NewConsumer(data).GenerateStruct(&g); err != nil {
			return
		}

		h := newHarness(t)
		h.scripts.displayed = g.Displayed
		h.scripts.overflow = g.Overflow
		h.window.rect = schemas.Rect{Right: int64(g.WinWidth), Bottom: int64(g.WinHeight)}

		topDoc, _ := newTopLevel()
		doc := topDoc
		if g.Framed {
			var frameWin *fakeWindow
			doc, frameWin = newChildFrame(topDoc)
			h.scripts.frameHosts[frameWin] = &fakeElement{
				doc:  topDoc,
				rect: rectOf(int64(g.FrameX), int64(g.FrameY), 10, 10),
			}
		}
		native := &fakeElement{
			doc:    doc,
			rect:   rectOf(int64(g.Left), int64(g.Top), int64(g.Width), int64(g.Height)),
			scroll: schemas.Offset{DX: int64(g.ScrollX), DY: int64(g.ScrollY)},
		}
		el := New(native, h.window)

		box, err := h.locator.GetLocationOnceScrolledIntoView(context.Background(), el)
		if native.scrollCalls > 1 {
			t.Fatalf("scrolled %d times", native.scrollCalls)
		}
		if err != nil {
			if StatusOf(err) == UnhandledError {
				t.Fatalf("unexpected unclassified error: %v", err)
			}
			return
		}
		if !box.Valid() {
			t.Fatalf("non-positive box %+v", box)
		}
		margin := h.locator.cfg.ViewportGuardMargin
		c := box.ClickPoint()
		if c.X < margin || c.X >= int64(g.WinWidth)-margin || c.Y < margin || c.Y >= int64(g.WinHeight)-margin {
			t.Fatalf("click point %+v outside guarded %dx%d viewport", c, g.WinWidth, g.WinHeight)
		}
	})
}
