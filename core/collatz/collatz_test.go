// core/collatz/collatz_test.go
package collatz

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lologar1/big-collatz/core/bignum"
)

// oracle replays the trajectory eagerly with math/big.
func oracle(start *big.Int) Counters {
	var cnt Counters
	one := big.NewInt(1)
	three := big.NewInt(3)
	v := new(big.Int).Set(start)
	for v.Cmp(one) != 0 {
		if v.Bit(0) == 1 {
			v.Mul(v, three)
			v.Add(v, one)
			cnt.Muls++
		} else {
			v.Rsh(v, 1)
			cnt.Divs++
		}
		cnt.Steps++
	}
	return cnt
}

func newNumber(t *testing.T, ws []uint64, bits uint64) *bignum.Number {
	t.Helper()
	n, err := bignum.New(16, 8)
	require.NoError(t, err)
	require.NoError(t, n.SetValue(ws, bits))
	return n
}

func TestTrajectory27(t *testing.T) {
	n := newNumber(t, []uint64{27}, 5)

	got, err := Run(context.Background(), n, Config{PrintRate: DefaultPrintRate}, nil)
	require.NoError(t, err)
	require.Equal(t, oracle(big.NewInt(27)), got)
	require.Equal(t, uint64(111), got.Steps) // the well-known chain length
	require.Equal(t, got.Steps, got.Divs+got.Muls)
	require.Equal(t, uint64(1), n.BitLen())
}

func TestTrajectoryMultiWord(t *testing.T) {
	// 2^64 + 1: crosses a word boundary on the way down.
	start := new(big.Int).Lsh(big.NewInt(1), 64)
	start.Add(start, big.NewInt(1))
	n := newNumber(t, []uint64{1, 1}, 65)

	got, err := Run(context.Background(), n, Config{PrintRate: DefaultPrintRate}, nil)
	require.NoError(t, err)
	require.Equal(t, oracle(start), got)
	require.Equal(t, uint64(1), n.BitLen())
}

func TestPowerOfTwo(t *testing.T) {
	// 2^130 is pure halving: 130 division steps, no multiplications.
	n := newNumber(t, []uint64{0, 0, 4}, 131)

	got, err := Run(context.Background(), n, Config{}, nil)
	require.NoError(t, err)
	require.Equal(t, Counters{Steps: 130, Divs: 130}, got)
	require.Equal(t, uint64(1), n.BitLen())
}

func TestOneTerminatesImmediately(t *testing.T) {
	n := newNumber(t, []uint64{1}, 1)

	got, err := Run(context.Background(), n, Config{PrintRate: 1}, nil)
	require.NoError(t, err)
	require.Equal(t, Counters{}, got)
}

type captureReporter struct {
	calls []Counters
	bits  []uint64
}

func (c *captureReporter) Progress(cnt Counters, bits uint64) {
	c.calls = append(c.calls, cnt)
	c.bits = append(c.bits, bits)
}

func TestReporterCadence(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	n, err := bignum.New(4, 8)
	require.NoError(t, err)
	n.SetAllOnes()

	rep := &captureReporter{}
	got, errRun := Run(ctx, n, Config{PrintRate: 1}, rep)
	require.NoError(t, errRun)
	require.NotEmpty(t, rep.calls, "all-ones runs must actualize")
	var prev uint64
	for i, c := range rep.calls {
		require.Greater(t, c.Steps, prev, "observation %d out of order", i)
		require.Positive(t, rep.bits[i])
		prev = c.Steps
	}
	require.LessOrEqual(t, prev, got.Steps)

	// A rate beyond the run length reports nothing, as does rate 0.
	n2, err := bignum.New(4, 8)
	require.NoError(t, err)
	n2.SetAllOnes()
	rep2 := &captureReporter{}
	_, err = Run(ctx, n2, Config{PrintRate: 1 << 62}, rep2)
	require.NoError(t, err)
	require.Empty(t, rep2.calls)

	n3, err := bignum.New(4, 8)
	require.NoError(t, err)
	n3.SetAllOnes()
	rep3 := &captureReporter{}
	_, err = Run(ctx, n3, Config{}, rep3)
	require.NoError(t, err)
	require.Empty(t, rep3.calls)
}

func TestCanceledBeforeStart(t *testing.T) {
	n := newNumber(t, []uint64{27}, 5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := Run(ctx, n, Config{}, nil)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, Counters{}, got)
}

type cancelOnProgress struct {
	cancel context.CancelFunc
}

func (c *cancelOnProgress) Progress(Counters, uint64) { c.cancel() }

func TestCancelMidRun(t *testing.T) {
	// All ones over b bits alternates odd/even for exactly b pairs
	// (after k pairs the value is 3^k * 2^(b-k) - 1), so with b = 2^19
	// the first 2^20 steps cannot terminate and the poll at step 2^20
	// must observe the cancellation requested at the first report.
	n, err := bignum.New(8192, 8192)
	require.NoError(t, err)
	n.SetAllOnes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	got, errRun := Run(ctx, n, Config{PrintRate: 1}, &cancelOnProgress{cancel: cancel})
	require.ErrorIs(t, errRun, context.Canceled)
	require.Equal(t, uint64(1)<<20, got.Steps)
	require.Equal(t, got.Divs, got.Muls) // strict alternation, odd first
}
