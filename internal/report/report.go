// internal/report/report.go
package report

import (
	"fmt"
	"io"

	"github.com/lologar1/big-collatz/core/collatz"
)

// Text prints the computation's stdout lines. The first write error
// sticks and later lines are dropped, so a dead consumer cannot stall
// the run with repeated failing writes.
type Text struct {
	w   io.Writer
	err error
}

func NewText(w io.Writer) *Text { return &Text{w: w} }

// ReadingFrom announces the input file before it is read.
func (t *Text) ReadingFrom(path string) {
	t.printf("Reading number from file %s\n", path)
}

// Starting announces the run.
func (t *Text) Starting() {
	t.printf("Starting computation...\n")
}

// Progress implements collatz.Reporter.
func (t *Text) Progress(c collatz.Counters, bits uint64) {
	t.printf("Step %d has %d bits. (div/mul %d %d)\n", c.Steps, bits, c.Divs, c.Muls)
}

// Finished prints the final summary.
func (t *Text) Finished(c collatz.Counters, seconds float64) {
	t.printf("Finished, took %d steps and %f seconds, with step ratios (div/mul) of %d and %d.\n",
		c.Steps, seconds, c.Divs, c.Muls)
}

func (t *Text) printf(format string, a ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, a...)
}

// Err returns the first write error, if any.
func (t *Text) Err() error { return t.err }
