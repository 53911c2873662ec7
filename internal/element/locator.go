// internal/element/locator.go
package element

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/xkilldash9x/clickpoint/internal/config"
	"github.com/xkilldash9x/clickpoint/internal/input"
)

// Locator resolves where an element is on screen, whether it can be
// interacted with, and clicks it. It holds no mutable state; every call runs
// synchronously on the caller's goroutine and queries the browser afresh.
type Locator struct {
	logger   *zap.Logger
	scripts  ScriptExecutor
	injector input.Injector
	cfg      config.LocatorConfig
}

// NewLocator creates a Locator over the given script executor and input
// injector.
func NewLocator(logger *zap.Logger, scripts ScriptExecutor, injector input.Injector, cfg config.LocatorConfig) *Locator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ViewportGuardMargin < 0 {
		cfg.ViewportGuardMargin = 0
	}
	if cfg.MouseMoveSteps <= 0 {
		cfg.MouseMoveSteps = 1
	}
	return &Locator{
		logger:   logger.Named("Locator"),
		scripts:  scripts,
		injector: injector,
		cfg:      cfg,
	}
}

// containingDocument resolves the element's document. With useDOMNode the
// owner document of the live node is used, which fails for references that are
// not attached nodes. Otherwise the element's own document property is used.
func (l *Locator) containingDocument(ctx context.Context, el Element, useDOMNode bool) (Document, error) {
	const op = "containingDocument"
	if el.native == nil {
		return nil, newError(NoSuchDocument, op, errors.New("nil element reference"))
	}

	var (
		doc Document
		err error
	)
	if useDOMNode {
		node, ok := el.native.(DOMNode)
		if !ok {
			l.logger.Warn("Unable to cast element to a DOM node.", zap.String("element", el.id))
			return nil, newError(NoSuchDocument, op, errors.New("element is not a DOM node"))
		}
		doc, err = node.OwnerDocument(ctx)
		if err != nil {
			l.logger.Warn("Unable to locate owning document.", zap.String("element", el.id), zap.Error(err))
			return nil, newError(NoSuchDocument, op, err)
		}
	} else {
		doc, err = el.native.Document(ctx)
		if err != nil {
			l.logger.Warn("Unable to locate document property.", zap.String("element", el.id), zap.Error(err))
			return nil, newError(NoSuchDocument, op, err)
		}
	}
	if doc == nil {
		return nil, newError(NoSuchDocument, op, errors.New("document is nil"))
	}
	return doc, nil
}

// runScript executes source against the element's containing document. Typed
// errors from the executor pass through; anything else is a script failure.
func (l *Locator) runScript(ctx context.Context, op string, el Element, source string, args ...any) (Result, error) {
	doc, err := l.containingDocument(ctx, el, false)
	if err != nil {
		return Result{}, err
	}
	res, err := l.scripts.Execute(ctx, doc, source, args...)
	if err != nil {
		var typed *Error
		if errors.As(err, &typed) {
			return Result{}, err
		}
		return Result{}, newError(UnexpectedJSError, op, err)
	}
	return res, nil
}
