// internal/browser/cdp/query.go
package cdp

import (
	"context"
	"fmt"

	"github.com/chromedp/cdproto/runtime"

	"github.com/xkilldash9x/clickpoint/internal/element"
)

// Query returns the first element in the main frame matching a CSS selector.
func (s *Session) Query(ctx context.Context, selector string) (element.HTMLElement, error) {
	eval := &evaluateAction{params: runtime.Evaluate("document").WithObjectGroup(objectGroup)}
	if err := s.runActionsFunc(ctx, eval); err != nil {
		return nil, fmt.Errorf("resolving document: %w", err)
	}
	if eval.exception != nil {
		return nil, exceptionError(eval.exception)
	}
	if isNullish(eval.result) {
		return nil, &element.Error{Status: element.NoSuchDocument, Op: "Query"}
	}

	arg, err := valueArg(selector)
	if err != nil {
		return nil, err
	}
	obj, err := s.callObject(ctx, eval.result.ObjectID, fnQuerySelector, arg)
	if err != nil {
		return nil, fmt.Errorf("querying %q: %w", selector, err)
	}
	if obj == nil {
		return nil, &element.Error{Status: element.NoSuchElement, Op: "Query", Err: fmt.Errorf("no element matches %q", selector)}
	}
	return newElement(s, obj), nil
}
