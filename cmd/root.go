package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbosity int

// rootCmd is the base command for the CLI. It doesn't run anything itself;
// use one of its subcommands.
var rootCmd = &cobra.Command{
	Use:   "supported",
	Short: "Supported lists the file extensions an embedded editor bundle recognizes.",
	Long: `Supported inspects the language folders shipped with an editor bundle
(monaco-editor's basic-languages by default), reads the extensions each
language registers in its contribution file, and prints them as one list.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbosity < int(logrus.PanicLevel) || verbosity > int(logrus.TraceLevel) {
			return fmt.Errorf("verbosity must be between %d and %d, got %d", logrus.PanicLevel, logrus.TraceLevel, verbosity)
		}
		logrus.SetOutput(cmd.ErrOrStderr())
		logrus.SetLevel(logrus.Level(verbosity))
		return nil
	},
}

// Execute is called by main.go to run the root command. Interrupts cancel ctx,
// and an interrupted scan returns the cancellation error so the process exits non-zero.
func Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", int(logrus.WarnLevel), "Verbosity level (0 panic .. 6 trace)")
}
