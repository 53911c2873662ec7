// -- cmd/inspect.go --
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/xkilldash9x/clickpoint/internal/element"
)

// inspection is the JSON document printed by the inspect command. Attributes
// that are absent on the element are reported as null.
type inspection struct {
	ElementID  string             `json:"elementId"`
	Tag        string             `json:"tag"`
	Displayed  bool               `json:"displayed"`
	Enabled    bool               `json:"enabled"`
	Selected   bool               `json:"selected"`
	Attributes map[string]*string `json:"attributes,omitempty"`
}

func newInspectCmd(opts *globalOptions) *cobra.Command {
	var attrs []string

	cmd := &cobra.Command{
		Use:   "inspect <selector>",
		Short: "Print an element's state and selected attribute values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := openPage(ctx, opts)
			if err != nil {
				return err
			}
			defer p.Close()

			el, err := p.find(ctx, args[0])
			if err != nil {
				return err
			}
			report, err := inspect(ctx, p.locator, el, attrs)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), report)
		},
	}
	cmd.Flags().StringSliceVar(&attrs, "attr", nil, "attribute to read (repeatable)")
	return cmd
}

func inspect(ctx context.Context, l *element.Locator, el element.Element, attrs []string) (inspection, error) {
	tag, err := l.TagName(ctx, el)
	if err != nil {
		return inspection{}, err
	}
	displayed, err := l.IsDisplayed(ctx, el)
	if err != nil {
		return inspection{}, err
	}
	report := inspection{
		ElementID: el.ID(),
		Tag:       tag,
		Displayed: displayed,
		Enabled:   l.IsEnabled(ctx, el),
		Selected:  l.IsSelected(ctx, el),
	}
	if len(attrs) > 0 {
		report.Attributes = make(map[string]*string, len(attrs))
	}
	for _, name := range attrs {
		value, isNull, err := l.GetAttributeValue(ctx, el, name)
		if err != nil {
			return inspection{}, err
		}
		if isNull {
			report.Attributes[name] = nil
			continue
		}
		report.Attributes[name] = &value
	}
	return report, nil
}
