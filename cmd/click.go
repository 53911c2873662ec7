// -- cmd/click.go --
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newClickCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "click <selector>",
		Short: "Click an element with synthesized mouse input",
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
			if err := p.locator.Click(ctx, el); err != nil {
				return err
			}
			p.logger.Info("Clicked element.", zap.String("selector", args[0]), zap.String("backend", opts.cfg.Input().Backend))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "clicked %s\n", el.ID())
			return err
		},
	}
}
