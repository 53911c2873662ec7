// internal/browser/cdp/executor.go
package cdp

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/chromedp/cdproto/runtime"
	json "github.com/json-iterator/go"

	"github.com/xkilldash9x/clickpoint/internal/element"
)

// Executor runs locator scripts in the page with the target document bound to
// this.
type Executor struct {
	s *Session
}

var _ element.ScriptExecutor = (*Executor)(nil)

// NewExecutor creates an Executor for the session.
func NewExecutor(s *Session) *Executor {
	return &Executor{s: s}
}

// Execute calls source, a function declaration, with args. Native references
// are passed by object id and everything else by JSON value.
func (e *Executor) Execute(ctx context.Context, doc element.Document, source string, args ...any) (element.Result, error) {
	const op = "Execute"

	target, ok := doc.(remoteObject)
	if !ok {
		return element.Result{}, &element.Error{Status: element.NoSuchDocument, Op: op, Err: fmt.Errorf("document %T is not a page object", doc)}
	}

	callArgs := make([]*runtime.CallArgument, 0, len(args))
	for i, arg := range args {
		ca, err := toCallArgument(arg)
		if err != nil {
			return element.Result{}, &element.Error{Status: element.UnhandledError, Op: op, Err: fmt.Errorf("argument %d: %w", i, err)}
		}
		callArgs = append(callArgs, ca)
	}

	obj, err := e.s.callOn(ctx, target.objectID(), source, false, callArgs...)
	if err != nil {
		status := element.UnexpectedJSError
		if errors.Is(err, errStaleElement) {
			status = element.ObsoleteElement
		}
		return element.Result{}, &element.Error{Status: status, Op: op, Err: err}
	}
	res, err := e.toResult(obj)
	if err != nil {
		return element.Result{}, &element.Error{Status: element.UnexpectedJSError, Op: op, Err: err}
	}
	return res, nil
}

func toCallArgument(arg any) (*runtime.CallArgument, error) {
	switch v := arg.(type) {
	case remoteObject:
		return objectArg(v.objectID()), nil
	case element.HTMLElement, element.Document, element.Window:
		return nil, fmt.Errorf("native reference %T does not belong to this browser", v)
	default:
		return valueArg(v)
	}
}

func (e *Executor) toResult(obj *runtime.RemoteObject) (element.Result, error) {
	if obj == nil || obj.Type == runtime.TypeUndefined || obj.Subtype == runtime.SubtypeNull {
		return element.Result{Kind: element.ResultNull}, nil
	}

	switch obj.Type {
	case runtime.TypeBoolean:
		var b bool
		if err := json.Unmarshal([]byte(obj.Value), &b); err != nil {
			return element.Result{}, fmt.Errorf("decoding boolean result: %w", err)
		}
		return element.Result{Kind: element.ResultBool, Bool: b}, nil
	case runtime.TypeString:
		var str string
		if err := json.Unmarshal([]byte(obj.Value), &str); err != nil {
			return element.Result{}, fmt.Errorf("decoding string result: %w", err)
		}
		return element.Result{Kind: element.ResultString, String: str}, nil
	case runtime.TypeNumber:
		// NaN and the infinities only come back as unserializable values.
		if len(obj.Value) == 0 {
			return element.Result{Kind: element.ResultNumber, Number: math.NaN()}, nil
		}
		var n float64
		if err := json.Unmarshal([]byte(obj.Value), &n); err != nil {
			return element.Result{}, fmt.Errorf("decoding number result: %w", err)
		}
		return element.Result{Kind: element.ResultNumber, Number: n}, nil
	case runtime.TypeObject:
		if obj.Subtype == runtime.SubtypeNode && obj.ObjectID != "" {
			return element.Result{Kind: element.ResultElement, Element: newElement(e.s, obj)}, nil
		}
		return element.Result{Kind: element.ResultObject}, nil
	}
	return element.Result{Kind: element.ResultObject}, nil
}
