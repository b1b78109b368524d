// Command ed25519core generates the base point table of package ed25519core
// and exposes its scalar multiplication for inspection.
package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type commonOptions struct {
	logLevel string
}

func newRootCommand(stdout io.Writer) *cobra.Command {
	opts := &commonOptions{}

	cmd := &cobra.Command{
		Use:           "ed25519core",
		Short:         "Curve25519 group arithmetic tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setLogLevel(opts.logLevel)
		},
	}
	cmd.SetOut(stdout)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.logLevel, "log-level", "l", "info", `Set the logging level ("debug", "info", "warn", "error", "fatal")`)

	cmd.AddCommand(
		newGenTableCommand(),
		newBackendCommand(),
		newScalarMultCommand(),
	)
	return cmd
}

// setLogLevel sets the logrus logging level.
func setLogLevel(logLevel string) error {
	lvl, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return errors.Wrapf(err, "unable to parse logging level %q", logLevel)
	}
	logrus.SetLevel(lvl)
	return nil
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		logrus.WithError(err).Error("ed25519core failed")
		os.Exit(1)
	}
}
