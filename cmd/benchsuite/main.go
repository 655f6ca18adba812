// Package main provides the CLI entry point for benchsuite, a micro-benchmark
// runner with statistical convergence and incremental progress.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	ExitSuccess         = 0
	ExitThresholdFailed = 1
	ExitError           = 2
)

// errThresholdsFailed signals a completed run that violated its thresholds.
var errThresholdsFailed = errors.New("threshold check failed")

func main() {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	root := newRootCmd(logger, level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := root.ExecuteContext(ctx)
	stop()

	switch {
	case err == nil:
		os.Exit(ExitSuccess)
	case errors.Is(err, errThresholdsFailed):
		fmt.Fprintln(os.Stderr, "\nThreshold check failed!")
		os.Exit(ExitThresholdFailed)
	default:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(ExitError)
	}
}

func newRootCmd(logger *slog.Logger, level *slog.LevelVar) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "benchsuite",
		Short: "Run micro-benchmarks to statistical convergence",
		Long: `Benchsuite runs a suite of micro-benchmarks one at a time, sampling each
until its throughput estimate converges, reporting progress after every
benchmark and a ranked summary at the end.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if err := level.UnmarshalText([]byte(logLevel)); err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn",
		"Log level: debug, info, warn, error")

	root.AddCommand(newRunCmd(logger))
	root.AddCommand(newListCmd())

	return root
}

// stderrIsTerminal reports whether live progress lines can be redrawn.
func stderrIsTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}
