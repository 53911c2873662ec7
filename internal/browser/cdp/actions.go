// internal/browser/cdp/actions.go
package cdp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	cdproto "github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/dom"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	json "github.com/json-iterator/go"

	"github.com/xkilldash9x/clickpoint/internal/element"
)

// The protocol commands used here return values, which chromedp.Action does
// not. Each command is wrapped in an action that keeps its results so it can be
// passed to RunActions and inspected by tests.

type callAction struct {
	params    *runtime.CallFunctionOnParams
	result    *runtime.RemoteObject
	exception *runtime.ExceptionDetails
}

func (a *callAction) Do(ctx context.Context) (err error) {
	a.result, a.exception, err = a.params.Do(ctx)
	return err
}

type evaluateAction struct {
	params    *runtime.EvaluateParams
	result    *runtime.RemoteObject
	exception *runtime.ExceptionDetails
}

func (a *evaluateAction) Do(ctx context.Context) (err error) {
	a.result, a.exception, err = a.params.Do(ctx)
	return err
}

type describeAction struct {
	params *dom.DescribeNodeParams
	node   *cdproto.Node
}

func (a *describeAction) Do(ctx context.Context) (err error) {
	a.node, err = a.params.Do(ctx)
	return err
}

type layoutAction struct {
	cssLayout *page.LayoutViewport
}

func (a *layoutAction) Do(ctx context.Context) (err error) {
	_, _, _, a.cssLayout, _, _, err = page.GetLayoutMetrics().Do(ctx)
	return err
}

type frameTreeAction struct {
	tree *page.FrameTree
}

func (a *frameTreeAction) Do(ctx context.Context) (err error) {
	a.tree, err = page.GetFrameTree().Do(ctx)
	return err
}

type isolatedWorldAction struct {
	params    *page.CreateIsolatedWorldParams
	contextID runtime.ExecutionContextID
}

func (a *isolatedWorldAction) Do(ctx context.Context) (err error) {
	a.contextID, err = a.params.Do(ctx)
	return err
}

// objectGroup holds every remote object the package creates so Close can
// release them in one call.
const objectGroup = "clickpoint"

// errStaleElement marks scripts that refused to run on a detached node.
var errStaleElement = errors.New("stale element reference")

// callOn invokes fn with this bound to the object. byValue returns a JSON
// value instead of a remote reference.
func (s *Session) callOn(ctx context.Context, id runtime.RemoteObjectID, fn string, byValue bool, args ...*runtime.CallArgument) (*runtime.RemoteObject, error) {
	a := &callAction{
		params: runtime.CallFunctionOn(fn).
			WithObjectID(id).
			WithObjectGroup(objectGroup).
			WithArguments(args).
			WithReturnByValue(byValue).
			WithAwaitPromise(true),
	}
	if err := s.runActionsFunc(ctx, a); err != nil {
		return nil, err
	}
	if a.exception != nil {
		return nil, exceptionError(a.exception)
	}
	if a.result == nil {
		return nil, fmt.Errorf("no result from function call on %s", id)
	}
	return a.result, nil
}

// callValue calls fn by value and decodes the result into out.
func (s *Session) callValue(ctx context.Context, id runtime.RemoteObjectID, fn string, out any, args ...*runtime.CallArgument) error {
	res, err := s.callOn(ctx, id, fn, true, args...)
	if err != nil {
		return err
	}
	if len(res.Value) == 0 {
		return fmt.Errorf("function returned %s, want a value", res.Type)
	}
	if err := json.Unmarshal([]byte(res.Value), out); err != nil {
		return fmt.Errorf("decoding function result: %w (payload: %s)", err, string(res.Value))
	}
	return nil
}

// callObject calls fn by reference. Null and undefined results are returned
// as a nil object without error.
func (s *Session) callObject(ctx context.Context, id runtime.RemoteObjectID, fn string, args ...*runtime.CallArgument) (*runtime.RemoteObject, error) {
	res, err := s.callOn(ctx, id, fn, false, args...)
	if err != nil {
		return nil, err
	}
	if isNullish(res) {
		return nil, nil
	}
	return res, nil
}

func isNullish(obj *runtime.RemoteObject) bool {
	return obj == nil || obj.Type == runtime.TypeUndefined || obj.Subtype == runtime.SubtypeNull || obj.ObjectID == ""
}

// valueArg passes a primitive to a function call.
func valueArg(v any) (*runtime.CallArgument, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding call argument: %w", err)
	}
	return &runtime.CallArgument{Value: raw}, nil
}

func objectArg(id runtime.RemoteObjectID) *runtime.CallArgument {
	return &runtime.CallArgument{ObjectID: id}
}

// exceptionError turns a thrown exception into an error. Cross-origin access
// is reported as element.ErrAccessDenied and detached nodes as errStaleElement.
func exceptionError(ex *runtime.ExceptionDetails) error {
	msg := ex.Text
	if ex.Exception != nil && ex.Exception.Description != "" {
		msg = ex.Exception.Description
	}
	if strings.Contains(msg, "SecurityError") || strings.Contains(msg, "cross-origin") {
		return fmt.Errorf("%w: %s", element.ErrAccessDenied, firstLine(msg))
	}
	if strings.Contains(msg, errStaleElement.Error()) {
		return fmt.Errorf("%w: %s", errStaleElement, firstLine(msg))
	}
	return fmt.Errorf("script exception: %s", firstLine(msg))
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
