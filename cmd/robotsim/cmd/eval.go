package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"robotsim/internal/robot"
)

func newEvalCmd(opts *options) *cobra.Command {
	var (
		x, y int
		dir  string
	)
	cmd := &cobra.Command{
		Use:   "eval <instructions>",
		Short: "Place a single robot and run instructions on it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			px, py, bearing, err := opts.cfg.Placement()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("x") {
				px = x
			}
			if cmd.Flags().Changed("y") {
				py = y
			}
			if cmd.Flags().Changed("dir") {
				if bearing, err = robot.ParseBearing(dir); err != nil {
					return err
				}
			}

			r := robot.New()
			if err := r.Place(px, py, bearing); err != nil {
				return err
			}
			if err := r.Evaluate(args[0]); err != nil {
				return err
			}
			opts.logger.WithFields(logrus.Fields{"instructions": args[0], "state": r.String()}).Debug("eval")

			_, err = fmt.Fprintln(cmd.OutOrStdout(), r)
			return err
		},
	}
	cmd.Flags().IntVar(&x, "x", 0, "start x (default from config)")
	cmd.Flags().IntVar(&y, "y", 0, "start y (default from config)")
	cmd.Flags().StringVar(&dir, "dir", "", "start bearing N, E, S or W (default from config)")
	return cmd
}
