// Package commands holds the cobra command tree of the knapsack CLI.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knapsack/instance"
	"github.com/katalvlaran/knapsack/internal/config"
	"github.com/katalvlaran/knapsack/knapsack"
)

// Version is stamped at build time with -ldflags "-X .../commands.Version=...".
var Version = "dev"

// NewRootCommand builds the knapsack command. It reads cmd.InOrStdin and
// writes only the answer to cmd.OutOrStdout; logs and errors go to stderr.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "knapsack",
		Short: "Maximize total value within a budget (0/1 knapsack)",
		Long: `knapsack reads whitespace-separated integers from stdin:

  n x
  cost_1 ... cost_n
  value_1 ... value_n

and prints the maximum total value of items whose costs sum to at most x,
each item taken at most once.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSolve,
	}
	config.RegisterFlags(cmd.Flags())

	return cmd
}

// Execute runs the root command with the process stdio and exits non-zero
// with a diagnostic on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "knapsack: %v\n", err)
		os.Exit(1)
	}
}

func runSolve(cmd *cobra.Command, _ []string) error {
	v, err := config.NewViper(cmd.Flags())
	if err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)

	in, err := instance.Read(cmd.InOrStdin(), cfg.Limits)
	if err != nil {
		return err
	}
	logger.Debug("input parsed", "items", len(in.Costs), "budget", in.Budget)

	opts := cfg.SolveOptions()
	start := time.Now()
	res, err := knapsack.Solve(in.Items(), in.Budget, &opts)
	if err != nil {
		return err
	}
	logger.Debug("solved", "mode", opts.MemoryMode, "value", res.Value, "elapsed", time.Since(start))

	if cfg.Explain {
		logger.Info("selection", "items", res.Items, "cost", res.Cost, "value", res.Value)
	}

	return instance.Write(cmd.OutOrStdout(), res.Value)
}

// newLogger returns a text slog.Logger on w; Debug when verbose, Info otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
