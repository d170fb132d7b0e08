// core/collatz/collatz.go

// Package collatz drives the 3x+1 process over a bignum.Number until
// the value reaches 1, counting halvings and triple-and-increment
// steps separately.
package collatz

import (
	"context"

	"github.com/lologar1/big-collatz/core/bignum"
)

// DefaultPrintRate is the minimum step distance between progress
// observations.
const DefaultPrintRate = 1 << 18

// pollMask gates context checks to one in every 2^20 steps, keeping
// the hot loop free of channel operations.
const pollMask = 1<<20 - 1

// Counters accumulate over a run. Steps is always Divs+Muls.
type Counters struct {
	Steps uint64
	Divs  uint64
	Muls  uint64
}

// Reporter receives progress observations. The driver reports only
// when a step actualized the pending transform, so reporting cost
// rides on the full pass that already happened.
type Reporter interface {
	Progress(c Counters, bits uint64)
}

// Config adjusts the reporting cadence.
type Config struct {
	// PrintRate is the minimum number of steps between observations;
	// 0 disables them.
	PrintRate uint64
}

// Run executes Collatz steps until the value reaches 1 or ctx is
// canceled, returning the counters accumulated so far in either case.
// The run is deterministic for a given starting value and capacity.
func Run(ctx context.Context, n *bignum.Number, cfg Config, rep Reporter) (Counters, error) {
	var cnt Counters
	var lastOut uint64
	for n.BitLen() != 1 {
		if cnt.Steps&pollMask == 0 {
			if err := ctx.Err(); err != nil {
				return cnt, err
			}
		}

		var actualized bool
		var err error
		if n.Odd() {
			if actualized, err = n.TripleAdd1(); err != nil {
				return cnt, err
			}
			cnt.Muls++
		} else {
			if actualized, err = n.Halve(); err != nil {
				return cnt, err
			}
			cnt.Divs++
		}
		cnt.Steps++

		if actualized && rep != nil && cfg.PrintRate != 0 && cnt.Steps >= lastOut+cfg.PrintRate {
			rep.Progress(cnt, n.BitLen())
			lastOut = cnt.Steps
		}
	}
	return cnt, nil
}
