// core/bignum/number.go
package bignum

import (
	"math/bits"

	"github.com/zeebo/errs"
)

// ResourceExhausted marks failures to fit the number in its buffer:
// impossible allocation parameters, an oversized starting value, or a
// live window that can no longer be compacted.
var ResourceExhausted = errs.Class("resource exhausted")

// Defaults sized for numbers in the billions-of-bits range.
const (
	DefaultCapacityWords = 50000000
	DefaultHeadroomWords = 1000000
)

// maxTotalWords bounds the one-time buffer allocation; longer slices
// would panic inside make rather than fail.
const maxTotalWords uint64 = 1 << 40

// Bounds for one more lazy step: 3*c and 3*k+2 must stay in 64 bits
// (the per-word carry of a lazy step is at most 2).
const (
	maxCValue uint64 = (1<<64 - 1) / 3
	maxKValue uint64 = (1<<64 - 3) / 3
)

// Number is an arbitrary-precision integer specialized for the Collatz
// process: halve, or triple-and-add-one at the current low bit. Storage
// is a single fixed buffer of 64-bit words; the live window [cur, last)
// drifts upward as low bits are consumed and carries append high words,
// and is relocated to the buffer start when it nears the end.
//
// Words strictly above cur still owe the pending affine transform
// x -> c*x + k. Bits of words[cur] below the cursor mask are always
// zero. Whenever a step returns, cur+1 == last implies k == 0, so the
// single remaining word is trusted as-is.
type Number struct {
	words    []uint64
	capWords int    // words an initial value may occupy
	cur      int    // word index of the cursor
	mask     uint64 // single set bit, the cursor position inside words[cur]
	last     int    // one past the most significant tracked word
	bits     uint64 // bit length; see BitLen for refresh points
	c, k     uint64 // pending transform, identity when c == 1 && k == 0
}

// New allocates one zeroed buffer of capacity+headroom words. Capacity
// bounds the starting value; headroom absorbs growth between
// compactions and must leave the two-word end margin usable.
func New(capacityWords, headroomWords int) (*Number, error) {
	if capacityWords <= 0 {
		return nil, ResourceExhausted.New("capacity must be positive, got %d words", capacityWords)
	}
	if headroomWords < 2 {
		return nil, ResourceExhausted.New("headroom must be at least 2 words, got %d", headroomWords)
	}
	if uint64(capacityWords)+uint64(headroomWords) > maxTotalWords {
		return nil, ResourceExhausted.New("buffer of %d+%d words exceeds the %d-word maximum",
			capacityWords, headroomWords, maxTotalWords)
	}
	return &Number{
		words:    make([]uint64, capacityWords+headroomWords),
		capWords: capacityWords,
		mask:     1,
		c:        1,
	}, nil
}

// SetAllOnes installs the synthetic stress value: every capacity word
// set to all ones, the worst case for growth.
func (n *Number) SetAllOnes() {
	for i := 0; i < n.capWords; i++ {
		n.words[i] = ^uint64(0)
	}
	n.cur, n.mask = 0, 1
	n.last = n.capWords
	n.bits = 64 * uint64(n.capWords)
	n.c, n.k = 1, 0
}

// SetValue installs a starting value packed least significant word
// first, as produced by bitfile. bitLen is its exact bit length and the
// top word must be nonzero; the loader guarantees both.
func (n *Number) SetValue(ws []uint64, bitLen uint64) error {
	if len(ws) == 0 {
		return ResourceExhausted.New("empty value")
	}
	if len(ws) > n.capWords {
		return ResourceExhausted.New("value needs %d words, capacity is %d", len(ws), n.capWords)
	}
	copy(n.words[:len(ws)], ws)
	n.cur, n.mask = 0, 1
	n.last = len(ws)
	n.bits = bitLen
	n.c, n.k = 1, 0
	return nil
}

// Odd reports the bit at the cursor.
func (n *Number) Odd() bool { return n.words[n.cur]&n.mask != 0 }

// BitLen returns the tracked bit length, measured from the cursor to
// the most significant set bit. It is exact immediately after an
// actualization and after any step taken with one tracked word
// remaining; between actualizations it lags behind halvings.
func (n *Number) BitLen() uint64 { return n.bits }

// Words returns the size of the live window in words.
func (n *Number) Words() int { return n.last - n.cur }

// Capacity returns the words available to a starting value.
func (n *Number) Capacity() int { return n.capWords }

// refreshTop recomputes the bit length from the cursor word alone.
// Valid only while one tracked word remains with no pending carry. A
// zero cursor word leaves the length unchanged.
func (n *Number) refreshTop() {
	if n.cur+1 == n.last && n.words[n.cur] != 0 {
		n.bits = uint64(64-bits.LeadingZeros64(n.words[n.cur])) - uint64(bits.TrailingZeros64(n.mask))
	}
}
