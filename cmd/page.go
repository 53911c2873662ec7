// -- cmd/page.go --
package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/xkilldash9x/clickpoint/internal/browser/cdp"
	"github.com/xkilldash9x/clickpoint/internal/config"
	"github.com/xkilldash9x/clickpoint/internal/element"
	"github.com/xkilldash9x/clickpoint/internal/input"
	"github.com/xkilldash9x/clickpoint/internal/input/osinput"
	"github.com/xkilldash9x/clickpoint/internal/observability"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// connectBrowser is swapped out in tests.
var connectBrowser = cdp.Connect

// page bundles a browser session with a locator wired to the configured
// input backend.
type page struct {
	session *cdp.Session
	locator *element.Locator
	window  input.HostWindow
	logger  *zap.Logger
}

// openPage connects to the browser, optionally navigates, and wires the
// locator. The caller must Close the returned page.
func openPage(ctx context.Context, opts *globalOptions) (*page, error) {
	logger := observability.GetLogger()
	cfg := opts.cfg

	session, err := connectBrowser(ctx, cfg.Browser(), logger)
	if err != nil {
		return nil, err
	}
	if opts.url != "" {
		if err := session.Navigate(ctx, opts.url); err != nil {
			session.Close()
			return nil, err
		}
	}

	injector, window := newInjector(cfg, session, logger)
	locator := element.NewLocator(logger, cdp.NewExecutor(session), injector, cfg.Locator())
	return &page{session: session, locator: locator, window: window, logger: logger}, nil
}

// newInjector picks the input backend. The "os" backend drives the real
// pointer and needs the browser's OS window as host; it assumes the page
// fills that window's client area (kiosk or app mode).
func newInjector(cfg config.Interface, session *cdp.Session, logger *zap.Logger) (input.Injector, input.HostWindow) {
	in := cfg.Input()
	if strings.EqualFold(in.Backend, config.InputBackendOS) {
		return osinput.New(logger, in), osinput.NewWindow(in.WindowPID)
	}
	return cdp.NewMouse(session), cdp.NewViewport(session)
}

// find resolves selector to a locator-ready Element.
func (p *page) find(ctx context.Context, selector string) (element.Element, error) {
	native, err := p.session.Query(ctx, selector)
	if err != nil {
		return element.Element{}, fmt.Errorf("finding %q: %w", selector, err)
	}
	el := element.New(native, p.window)
	p.logger.Debug("Resolved element.", zap.String("selector", selector), zap.String("element_id", el.ID()))
	return el, nil
}

func (p *page) Close() { p.session.Close() }

// writeJSON prints v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", out)
	return err
}
