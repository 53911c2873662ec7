// -- cmd/locate.go --
package cmd

import (
	"github.com/spf13/cobra"
)

func newLocateCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "locate <selector>",
		Short: "Scroll an element into view and print its box and click point",
		Long: `Finds the first element matching the CSS selector, scrolls it into view if
needed, and prints its page-space bounding box and click point as JSON.`,
		Args: cobra.ExactArgs(1),
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
			loc, err := p.locator.Locate(ctx, el)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), loc)
		},
	}
}
