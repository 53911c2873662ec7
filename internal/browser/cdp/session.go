// internal/browser/cdp/session.go
package cdp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// releaseTimeout bounds the object release issued by Close.
const releaseTimeout = 2 * time.Second

// Session is a single browser tab driven over the DevTools protocol. Every
// interaction with the browser goes through RunActions.
type Session struct {
	ctx    context.Context // chromedp tab context; carries the connection
	cancel context.CancelFunc
	logger *zap.Logger

	// runActionsFunc is RunActions in production and a stub in tests.
	runActionsFunc func(ctx context.Context, actions ...chromedp.Action) error
}

// NewSession wraps an existing chromedp tab context. cancel, if non-nil, is
// called by Close.
func NewSession(tabCtx context.Context, cancel context.CancelFunc, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		ctx:    tabCtx,
		cancel: cancel,
		logger: logger.Named("cdp"),
	}
	s.runActionsFunc = s.RunActions
	return s
}

// RunActions runs actions against the tab. The operation is cancelled when
// either ctx or the session itself is done.
func (s *Session) RunActions(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := combineContext(s.ctx, ctx)
	defer cancel()
	return chromedp.Run(runCtx, actions...)
}

// Navigate loads url and waits for the load event.
func (s *Session) Navigate(ctx context.Context, url string) error {
	s.logger.Info("Navigating.", zap.String("url", url))
	if err := s.runActionsFunc(ctx, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("navigating to %s: %w", url, err)
	}
	return nil
}

// ReleaseObjects drops every remote object the session handed out. Native
// references obtained earlier are unusable afterwards.
func (s *Session) ReleaseObjects(ctx context.Context) error {
	if err := s.runActionsFunc(ctx, runtime.ReleaseObjectGroup(objectGroup)); err != nil {
		return fmt.Errorf("releasing remote objects: %w", err)
	}
	return nil
}

// Close releases the session's remote objects, then the tab and, for sessions
// created by Connect, the browser.
func (s *Session) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	if err := s.ReleaseObjects(ctx); err != nil {
		s.logger.Debug("Remote objects not released.", zap.Error(err))
	}
	cancel()

	// Cancel closes a browser this tab started and waits for it to exit.
	if err := chromedp.Cancel(s.ctx); err != nil && !errors.Is(err, chromedp.ErrInvalidContext) && !errors.Is(err, context.Canceled) {
		s.logger.Debug("Tab did not close cleanly.", zap.Error(err))
	}
	if s.cancel != nil {
		s.cancel()
	}
}

// combineContext derives a context from primary, which carries the chromedp
// values, that is also cancelled when secondary is.
func combineContext(primary, secondary context.Context) (context.Context, context.CancelFunc) {
	combined, cancel := context.WithCancel(primary)
	stop := context.AfterFunc(secondary, cancel)
	return combined, func() {
		stop()
		cancel()
	}
}
