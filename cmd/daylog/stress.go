package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/LixenWraith/daylog"
)

// callsPerIteration is the number of logging calls each worker makes per iteration,
// one per level with and without a stack.
const callsPerIteration = 10

type stressOptions struct {
	configPath string
	directory  string
	level      string
	stack      string
	syncWrites bool
	workers    int
	iterations int
	duration   time.Duration
}

func newStressCmd() *cobra.Command {
	opts := &stressOptions{}
	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Log from many goroutines at once",
		Long: `stress initializes the logger and starts a number of workers that each
call every logging form, with and without stack capture, until the iteration
count or the duration is reached. A summary of the logger counters is printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(cmd)
			if err != nil {
				return err
			}
			return runStress(cmd.Context(), cfg, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "logger config file (.toml, .yaml)")
	cmd.Flags().StringVarP(&opts.directory, "dir", "d", "./logs", "log directory")
	cmd.Flags().StringVarP(&opts.level, "level", "l", "debug", "minimum level")
	cmd.Flags().StringVar(&opts.stack, "stack", daylog.StackFrames, "stack capture: frames, text, none")
	cmd.Flags().BoolVar(&opts.syncWrites, "sync", false, "fsync after every entry")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 10, "number of logging goroutines")
	cmd.Flags().IntVarP(&opts.iterations, "iterations", "n", 100, "iterations per worker, 0 for no limit")
	cmd.Flags().DurationVar(&opts.duration, "duration", 0, "stop after this long, 0 for no limit")
	return cmd
}

// config builds the logger config: the file named by --config, then any flags set explicitly.
func (o *stressOptions) config(cmd *cobra.Command) (*daylog.Config, error) {
	cfg := &daylog.Config{
		Directory:    o.directory,
		StackCapture: o.stack,
		SyncWrites:   o.syncWrites,
	}
	if o.configPath != "" {
		loaded, err := daylog.LoadConfig(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		flags := cmd.Flags()
		if flags.Changed("dir") {
			cfg.Directory = o.directory
		}
		if flags.Changed("stack") {
			cfg.StackCapture = o.stack
		}
		if flags.Changed("sync") {
			cfg.SyncWrites = o.syncWrites
		}
		if !flags.Changed("level") {
			return cfg, nil
		}
	}

	level, err := daylog.ParseLevel(o.level)
	if err != nil {
		return nil, err
	}
	cfg.Level = level
	return cfg, nil
}

func runStress(ctx context.Context, cfg *daylog.Config, opts *stressOptions, out io.Writer) error {
	if opts.workers < 1 {
		return fmt.Errorf("workers must be at least 1")
	}
	if opts.iterations <= 0 && opts.duration <= 0 {
		return fmt.Errorf("either iterations or duration must be set")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if err := daylog.InitWithConfig(cfg); err != nil {
		return fmt.Errorf("init logger failed: %w", err)
	}
	daylog.Info("stress start: workers=%d iterations=%d duration=%s", opts.workers, opts.iterations, opts.duration)

	if opts.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.duration)
		defer cancel()
	}

	var calls atomic.Uint64
	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < opts.workers; i++ {
		id := i
		g.Go(func() error {
			for n := 0; opts.iterations <= 0 || n < opts.iterations; n++ {
				if gctx.Err() != nil {
					return nil
				}
				logAll(id, n)
				calls.Add(callsPerIteration)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	elapsed := time.Since(start)

	daylog.Info("stress done: calls=%d elapsed=%s", calls.Load(), elapsed)
	renderStats(out, opts.workers, calls.Load(), elapsed, daylog.GetStats(), daylog.Path())
	return nil
}

// logAll makes one call of every logging form.
func logAll(worker, iteration int) {
	daylog.Error("this is error log, worker %d, iteration %d", worker, iteration)
	daylog.Warn("this is warn log, worker %d, iteration %d", worker, iteration)
	daylog.Info("this is info log, worker %d, iteration %d", worker, iteration)
	daylog.Debug("this is debug log, worker %d, iteration %d", worker, iteration)
	daylog.Trace("this is trace log, worker %d, iteration %d", worker, iteration)

	daylog.ErrorStack("this is stack error log, worker %d, iteration %d", worker, iteration)
	daylog.WarnStack("this is stack warn log, worker %d, iteration %d", worker, iteration)
	daylog.InfoStack("this is stack info log, worker %d, iteration %d", worker, iteration)
	daylog.DebugStack("this is stack debug log, worker %d, iteration %d", worker, iteration)
	daylog.TraceStack("this is stack trace log, worker %d, iteration %d", worker, iteration)
}

func renderStats(out io.Writer, workers int, calls uint64, elapsed time.Duration, stats daylog.Stats, path string) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRows([]table.Row{
		{"File", path},
		{"Workers", workers},
		{"Calls", calls},
		{"Elapsed", elapsed.Round(time.Millisecond)},
		{"Written", stats.Written},
		{"Dropped", stats.Dropped},
		{"Truncated", stats.Truncated},
		{"Write errors", stats.WriteErrors},
	})
	if elapsed > 0 {
		rate := float64(stats.Written) / elapsed.Seconds()
		t.AppendFooter(table.Row{"Entries/s", strconv.FormatFloat(rate, 'f', 0, 64)})
	}
	t.Render()
}
