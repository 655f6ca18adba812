package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"benchsuite/internal/catalog"
	"benchsuite/internal/config"
	"benchsuite/internal/core"
	"benchsuite/internal/progress"
	"benchsuite/internal/report"
	"benchsuite/internal/sampler"
	"benchsuite/internal/suite"
)

type runFlags struct {
	configPath   string
	suiteName    string
	format       string
	quiet        bool
	minSamples   int
	maxTime      time.Duration
	targetRME    float64
	promTextfile string
}

func newRunCmd(logger *slog.Logger) *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run [benchmark...]",
		Short: "Run benchmarks from the built-in catalog",
		Long: `Run the named benchmarks in order, or every catalog benchmark when no
names are given. Names on the command line replace the suite in --config.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRunConfig(f, args)
			if err != nil {
				return err
			}
			return runSuite(cmd.Context(), logger, cfg, runIO{
				stdout: cmd.OutOrStdout(),
				stderr: cmd.ErrOrStderr(),
				quiet:  f.quiet,
				live:   stderrIsTerminal(),
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.configPath, "config", "",
		"Path to a YAML or TOML config file")
	flags.StringVar(&f.suiteName, "suite", "",
		"Suite name used in logs and reports")
	flags.StringVar(&f.format, "format", "",
		"Output format: text, json (default text)")
	flags.BoolVar(&f.quiet, "quiet", false,
		"Suppress progress output")
	flags.IntVar(&f.minSamples, "min-samples", 0,
		"Minimum samples per benchmark (0 = config/default)")
	flags.DurationVar(&f.maxTime, "max-time", 0,
		"Sampling budget per benchmark (0 = config/default)")
	flags.Float64Var(&f.targetRME, "target-rme", 0,
		"Stop sampling once the relative margin of error in percent drops below this")
	flags.StringVar(&f.promTextfile, "prom-textfile", "",
		"Also write results to this Prometheus textfile")

	return cmd
}

// loadRunConfig reads --config and applies flag overrides on top of it.
func loadRunConfig(f runFlags, args []string) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		cfg, err = config.LoadConfig(f.configPath)
		if err != nil {
			return nil, err
		}
	}

	if len(args) > 0 {
		cfg.Suite.Benchmarks = args
	}
	if f.suiteName != "" {
		cfg.Suite.Name = f.suiteName
	}
	if f.format != "" {
		cfg.Output.Format = f.format
	}
	if f.minSamples > 0 {
		cfg.Sampler.MinSamples = f.minSamples
	}
	if f.maxTime > 0 {
		cfg.Sampler.MaxTime = f.maxTime
	}
	if f.targetRME > 0 {
		cfg.Sampler.TargetRME = f.targetRME
	}
	if f.promTextfile != "" {
		cfg.Output.PromTextfile = f.promTextfile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type runIO struct {
	stdout io.Writer
	stderr io.Writer
	quiet  bool
	live   bool
}

func runSuite(ctx context.Context, logger *slog.Logger, cfg *config.Config, out runIO) error {
	group, err := catalog.Builtin().Group(cfg.Suite.Name, cfg.Suite.Benchmarks)
	if err != nil {
		return err
	}

	benchmarks, err := core.Flatten(group)
	if err != nil {
		return err
	}

	prog := progress.NewProgress(out.quiet, out.live)
	prog.SetOutput(out.stderr)
	prog.Printf("Running suite %q (%d benchmarks)", core.GroupName(group), len(benchmarks))

	s, err := sampler.New(cfg.Sampler.Options(),
		sampler.WithLogger(logger),
		sampler.WithSampleHook(prog.Sample),
	)
	if err != nil {
		return err
	}

	exec := suite.NewExecutor(s, suite.WithLogger(logger))
	completion := <-exec.RunAsync(ctx, group, prog.Report)
	prog.Stop()
	if completion.Err != nil {
		return completion.Err
	}
	outcome := completion.Outcome

	summary := report.Summarize(core.GroupName(group), outcome.Results)
	thresholds := cfg.Thresholds.Check(summary)

	if cfg.Output.Format == "json" {
		doc := report.NewDocument(outcome.Report, summary, thresholds)
		if err := report.FormatJSON(out.stdout, doc); err != nil {
			return fmt.Errorf("writing JSON report: %w", err)
		}
	} else {
		report.FormatText(out.stdout, summary, thresholds)
	}

	if cfg.Output.PromTextfile != "" {
		if err := report.WritePrometheus(cfg.Output.PromTextfile, summary); err != nil {
			return err
		}
		logger.InfoContext(ctx, "prometheus textfile written",
			slog.String("path", cfg.Output.PromTextfile),
		)
	}

	if !thresholds.Passed {
		return errThresholdsFailed
	}
	return nil
}
