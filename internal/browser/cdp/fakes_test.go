package cdp

import (
	"context"
	"fmt"
	"testing"

	cdproto "github.com/chromedp/cdproto/cdp"
	cdpinput "github.com/chromedp/cdproto/input"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	json "github.com/json-iterator/go"
	"go.uber.org/zap/zaptest"
)

// callHandler answers one function call made on a remote object.
type callHandler func(p *runtime.CallFunctionOnParams) (*runtime.RemoteObject, *runtime.ExceptionDetails)

// fakePage answers the protocol actions the package issues, standing in for
// the browser behind runActionsFunc.
type fakePage struct {
	t *testing.T

	calls    map[string]callHandler
	nodes    map[runtime.RemoteObjectID]cdproto.BackendNodeID
	layout   *page.LayoutViewport
	frame    *cdproto.Frame
	worldCtx runtime.ExecutionContextID
	evals    map[string]*runtime.RemoteObject

	failWith error
	mouse    []*cdpinput.DispatchMouseEventParams
	worlds   []*page.CreateIsolatedWorldParams
	evaled   []*runtime.EvaluateParams
	released []string
	actions  []chromedp.Action
}

func newFakePage(t *testing.T) *fakePage {
	return &fakePage{
		t:     t,
		calls: map[string]callHandler{},
		nodes: map[runtime.RemoteObjectID]cdproto.BackendNodeID{},
		evals: map[string]*runtime.RemoteObject{},
	}
}

func (f *fakePage) session() *Session {
	s := NewSession(context.Background(), nil, zaptest.NewLogger(f.t))
	s.runActionsFunc = f.run
	return s
}

// on registers the answer for fn called on the object id.
func (f *fakePage) on(id runtime.RemoteObjectID, fn string, h callHandler) {
	f.calls[string(id)+"|"+fn] = h
}

func (f *fakePage) onValue(id runtime.RemoteObjectID, fn string, v any) {
	f.on(id, fn, func(*runtime.CallFunctionOnParams) (*runtime.RemoteObject, *runtime.ExceptionDetails) {
		return f.value(v), nil
	})
}

func (f *fakePage) onObject(id runtime.RemoteObjectID, fn string, obj *runtime.RemoteObject) {
	f.on(id, fn, func(*runtime.CallFunctionOnParams) (*runtime.RemoteObject, *runtime.ExceptionDetails) {
		return obj, nil
	})
}

func (f *fakePage) onThrow(id runtime.RemoteObjectID, fn string, description string) {
	f.on(id, fn, func(*runtime.CallFunctionOnParams) (*runtime.RemoteObject, *runtime.ExceptionDetails) {
		return nil, &runtime.ExceptionDetails{Text: "Uncaught", Exception: &runtime.RemoteObject{Description: description}}
	})
}

func (f *fakePage) run(_ context.Context, actions ...chromedp.Action) error {
	f.actions = append(f.actions, actions...)
	if f.failWith != nil {
		return f.failWith
	}
	for _, action := range actions {
		switch a := action.(type) {
		case *callAction:
			h, ok := f.calls[string(a.params.ObjectID)+"|"+a.params.FunctionDeclaration]
			if !ok {
				return fmt.Errorf("fake page: unexpected call %q on %s", a.params.FunctionDeclaration, a.params.ObjectID)
			}
			a.result, a.exception = h(a.params)
		case *describeAction:
			id, ok := f.nodes[a.params.ObjectID]
			if !ok {
				return fmt.Errorf("fake page: no node for %s", a.params.ObjectID)
			}
			a.node = &cdproto.Node{BackendNodeID: id}
		case *layoutAction:
			a.cssLayout = f.layout
		case *frameTreeAction:
			a.tree = &page.FrameTree{Frame: f.frame}
		case *isolatedWorldAction:
			f.worlds = append(f.worlds, a.params)
			a.contextID = f.worldCtx
		case *evaluateAction:
			f.evaled = append(f.evaled, a.params)
			key := fmt.Sprintf("%d|%s", a.params.ContextID, a.params.Expression)
			obj, ok := f.evals[key]
			if !ok {
				return fmt.Errorf("fake page: unexpected evaluation %s", key)
			}
			a.result = obj
		case *runtime.ReleaseObjectGroupParams:
			f.released = append(f.released, a.ObjectGroup)
		case *cdpinput.DispatchMouseEventParams:
			f.mouse = append(f.mouse, a)
		default:
			return fmt.Errorf("fake page: unsupported action %T", action)
		}
	}
	return nil
}

func (f *fakePage) value(v any) *runtime.RemoteObject {
	f.t.Helper()
	if v == nil {
		return &runtime.RemoteObject{Type: runtime.TypeObject, Subtype: runtime.SubtypeNull}
	}
	raw, err := json.Marshal(v)
	if err != nil {
		f.t.Fatalf("marshal fake value: %v", err)
	}
	obj := &runtime.RemoteObject{Value: raw}
	switch v.(type) {
	case bool:
		obj.Type = runtime.TypeBoolean
	case string:
		obj.Type = runtime.TypeString
	case int, int64, float64:
		obj.Type = runtime.TypeNumber
	default:
		obj.Type = runtime.TypeObject
	}
	return obj
}

func nodeRef(id runtime.RemoteObjectID, className string) *runtime.RemoteObject {
	return &runtime.RemoteObject{Type: runtime.TypeObject, Subtype: runtime.SubtypeNode, ClassName: className, ObjectID: id}
}

func objectRef(id runtime.RemoteObjectID) *runtime.RemoteObject {
	return &runtime.RemoteObject{Type: runtime.TypeObject, ObjectID: id}
}

func undefinedRef() *runtime.RemoteObject {
	return &runtime.RemoteObject{Type: runtime.TypeUndefined}
}

// argValue decodes the JSON value of a call argument.
func argValue(t *testing.T, arg *runtime.CallArgument, out any) {
	t.Helper()
	if err := json.Unmarshal([]byte(arg.Value), out); err != nil {
		t.Fatalf("decode argument: %v", err)
	}
}
