// internal/element/state.go
package element

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// IsDisplayed reports whether the element is rendered visibly. A hidden
// element is a valid false result; only a failed script is an error.
func (l *Locator) IsDisplayed(ctx context.Context, el Element) (bool, error) {
	res, err := l.runScript(ctx, "IsDisplayed", el, isDisplayedAtom, el.native, l.cfg.IgnoreOpacity)
	if err != nil {
		return false, err
	}
	return res.True(), nil
}

// IsEnabled reports whether the element accepts interaction. Failures read as
// not enabled.
func (l *Locator) IsEnabled(ctx context.Context, el Element) bool {
	res, err := l.runScript(ctx, "IsEnabled", el, isEnabledAtom, el.native)
	if err != nil {
		l.logger.Debug("Enabled check failed.", zap.String("element", el.id), zap.Error(err))
		return false
	}
	return res.True()
}

// IsSelected reports whether an option, checkbox or radio button is selected.
// Elements that cannot be selected are never selected.
func (l *Locator) IsSelected(ctx context.Context, el Element) bool {
	res, err := l.runScript(ctx, "IsSelected", el, isSelectedAtom, el.native)
	if err != nil {
		l.logger.Debug("Selected check failed.", zap.String("element", el.id), zap.Error(err))
		return false
	}
	return res.IsBool() && res.Bool
}

// GetAttributeValue returns the named attribute or property of the element.
// isNull is set when the element has no value for it.
func (l *Locator) GetAttributeValue(ctx context.Context, el Element, name string) (value string, isNull bool, err error) {
	res, err := l.runScript(ctx, "GetAttributeValue", el, getAttributeAtom, el.native, name)
	if err != nil {
		return "", false, err
	}
	switch res.Kind {
	case ResultNull:
		return "", true, nil
	case ResultString:
		return res.String, false, nil
	case ResultBool:
		if res.Bool {
			return "true", false, nil
		}
		return "false", false, nil
	default:
		// The atom always stringifies, so anything else is an unusual host value.
		return "", true, nil
	}
}

// TagName returns the element's lower-cased tag name.
func (l *Locator) TagName(ctx context.Context, el Element) (string, error) {
	if el.native == nil {
		return "", newError(NoSuchElement, "TagName", nil)
	}
	name, err := el.native.TagName(ctx)
	if err != nil {
		return "", newError(ObsoleteElement, "TagName", err)
	}
	return strings.ToLower(name), nil
}
