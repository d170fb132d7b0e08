// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/zeebo/errs"

	"github.com/lologar1/big-collatz/core/bignum"
	"github.com/lologar1/big-collatz/core/bitfile"
	"github.com/lologar1/big-collatz/core/collatz"
	"github.com/lologar1/big-collatz/internal/cli"
	"github.com/lologar1/big-collatz/internal/config"
	"github.com/lologar1/big-collatz/internal/logging"
	"github.com/lologar1/big-collatz/internal/report"
	"github.com/lologar1/big-collatz/internal/version"
)

// ErrRuntime marks failures after a valid invocation, such as output
// write errors; they exit 3 where user-correctable errors exit 2.
var ErrRuntime = errs.Class("runtime")

// Run executes with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// RunContext builds the command, runs it, and maps the outcome to an
// exit code: 0 success (including a consumer hanging up), 2 for
// usage, config and input errors, 3 for runtime failures, 130 when
// interrupted.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	cmd := newCommand(stdout, stderr)
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(parent)
	if err == nil {
		return 0
	}
	if report.IsBrokenPipe(err) {
		return 0
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return 130
	}
	fmt.Fprintf(stderr, "error: %v\n", err)
	switch {
	case cli.ErrUsage.Has(err) || config.ErrConfig.Has(err) || bitfile.ErrInvalid.Has(err):
		return 2
	case ErrRuntime.Has(err) || bignum.ResourceExhausted.Has(err):
		return 3
	}
	// Anything else came from flag parsing.
	fmt.Fprintf(stderr, "see '%s --help'\n", cmd.Name())
	return 2
}

func newCommand(stdout, stderr io.Writer) *cobra.Command {
	var opts cli.Options
	cmd := &cobra.Command{
		Use:   "big-collatz [path]",
		Short: "search Collatz trajectories of very large numbers",
		Long: `big-collatz runs the 3x+1 process on arbitrarily large integers,
counting halvings against triple-and-increment steps. With a path it
reads the starting number as ASCII '0'/'1' text, most significant bit
first ("-" reads stdin, gzip is transparent). With no path it starts
from the synthetic all-ones value at full capacity, the worst case for
growth.`,
		Version:       version.Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.InputPath = args[0]
			}
			return run(cmd.Context(), cmd, &opts, stdout, stderr)
		},
	}
	cli.Register(cmd.Flags(), &opts)
	cmd.Flags().BoolP("version", "v", false, "print version and exit")
	return cmd
}

// cancelingReporter stops the run once progress lines can no longer be
// delivered; without it a dead pipe would let the computation run on
// for days writing nowhere.
type cancelingReporter struct {
	rep    *report.Text
	cancel context.CancelFunc
}

func (c *cancelingReporter) Progress(cnt collatz.Counters, bits uint64) {
	c.rep.Progress(cnt, bits)
	if c.rep.Err() != nil {
		c.cancel()
	}
}

func run(parent context.Context, cmd *cobra.Command, opts *cli.Options, stdout, stderr io.Writer) error {
	if opts.ConfigPath != "" {
		f, err := config.Load(opts.ConfigPath)
		if err != nil {
			return err
		}
		opts.ApplyConfig(f, cmd.Flags().Changed)
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	log := logging.New(opts.Debug, stderr)
	defer func() { _ = log.Sync() }()
	log.Debugw("options resolved",
		"capacity_words", opts.CapacityWords,
		"headroom_words", opts.HeadroomWords,
		"print_rate", opts.PrintRate,
		"quiet", opts.Quiet,
		"input", opts.InputPath,
	)

	n, err := bignum.New(opts.CapacityWords, opts.HeadroomWords)
	if err != nil {
		return err
	}
	log.Debugw("buffer allocated",
		"words", opts.CapacityWords+opts.HeadroomWords,
		"bytes", 8*(opts.CapacityWords+opts.HeadroomWords),
	)

	// Progress lines are rare (one per print-rate steps at most), so
	// they go to stdout unbuffered and appear as they happen.
	rep := report.NewText(stdout)

	if opts.InputPath != "" {
		if !opts.Quiet {
			rep.ReadingFrom(opts.InputPath)
		}
		ws, bits, err := bitfile.Load(opts.InputPath)
		if err != nil {
			return err
		}
		if err := n.SetValue(ws, bits); err != nil {
			// The input, not the engine, is at fault here.
			return cli.ErrUsage.Wrap(err)
		}
		log.Debugw("starting value loaded", "bits", bits, "words", len(ws))
	} else {
		n.SetAllOnes()
		log.Debugw("starting value synthesized", "bits", n.BitLen(), "words", n.Words())
	}

	if !opts.Quiet {
		rep.Starting()
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	var driverRep collatz.Reporter
	if !opts.Quiet {
		driverRep = &cancelingReporter{rep: rep, cancel: cancel}
	}

	start := time.Now()
	cnt, runErr := collatz.Run(ctx, n, collatz.Config{PrintRate: opts.PrintRate}, driverRep)
	elapsed := time.Since(start).Seconds()

	if runErr != nil {
		if werr := rep.Err(); werr != nil {
			// The reporter canceled the run because the consumer went
			// away; the context error is just the echo of that.
			if report.IsBrokenPipe(werr) {
				return nil
			}
			return ErrRuntime.Wrap(werr)
		}
		log.Debugw("run aborted", "steps", cnt.Steps, "seconds", elapsed, "reason", runErr)
		return runErr
	}

	rep.Finished(cnt, elapsed)
	if werr := rep.Err(); werr != nil {
		if report.IsBrokenPipe(werr) {
			return nil
		}
		return ErrRuntime.Wrap(werr)
	}
	log.Debugw("finished",
		"steps", cnt.Steps,
		"div_steps", cnt.Divs,
		"mul_steps", cnt.Muls,
		"final_bits", n.BitLen(),
		"seconds", elapsed,
	)
	return nil
}
