package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"robotsim/internal/config"
	"robotsim/internal/logging"
)

type options struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *logrus.Logger
}

// NewRootCmd builds the robotsim command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "robotsim",
		Short: "Grid robot simulator",
		Long: `robotsim drives robots around an unbounded grid.

Robots face N, E, S or W and follow instruction strings made of
R (turn right), L (turn left) and M (move one step forward).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: $"+config.EnvConfig+")")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(newRunCmd(opts), newEvalCmd(opts))
	return rootCmd
}

func Execute() error {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func (o *options) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadOrDefault(o.cfgFile)
	if err != nil {
		return err
	}
	level := cfg.General.LogLevel
	if o.verbose {
		level = logrus.DebugLevel.String()
	}
	lg, err := logging.New(level, cfg.General.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	o.cfg, o.logger = cfg, lg
	return nil
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}
