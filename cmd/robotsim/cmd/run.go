package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"robotsim/internal/interpreter"
)

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run <script>",
		Short: "Run a robot script and print the final fleet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			prog, err := interpreter.Parse(args[0], string(data))
			if err != nil {
				return err
			}

			ctx := interpreter.NewContext(cmd.OutOrStdout(), opts.logger)
			opts.logger.WithField("script", args[0]).Debugf("executing %d statements", len(prog.Statements))
			if err := prog.Exec(ctx); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "final positions (%d robots):\n", ctx.Fleet.Len())
			return ctx.Fleet.Report(cmd.OutOrStdout())
		},
	}
}
