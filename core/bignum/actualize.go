// core/bignum/actualize.go
package bignum

import "math/bits"

// actualize applies the pending transform to every word above the
// cursor in one ascending pass, the carry of each word feeding the
// next. A nonzero final carry appends a new top word. The transform
// resets to identity and the bit length is recomputed exactly, measured
// from the cursor word. Long runs of lazy steps buy exactly one of
// these full passes.
func (n *Number) actualize() error {
	for i := n.cur + 1; i < n.last; i++ {
		hi, lo := mulAddWWW(n.words[i], n.c, n.k)
		n.words[i] = lo
		n.k = hi
	}
	if n.k != 0 {
		n.words[n.last] = n.k
		n.last++
	}
	n.c, n.k = 1, 0

	top := n.words[n.last-1]
	n.bits = 64*uint64(n.last-1-n.cur) +
		uint64(64-bits.LeadingZeros64(top)) -
		uint64(bits.TrailingZeros64(n.mask))

	if n.last >= len(n.words)-2 {
		return n.compact()
	}
	return nil
}

// compact relocates the live window to the buffer start, reclaiming the
// low words the cursor has already consumed. Only the storage offset
// changes, never the value.
func (n *Number) compact() error {
	copy(n.words[:n.last-n.cur], n.words[n.cur:n.last])
	n.last -= n.cur
	n.cur = 0
	if n.last >= len(n.words)-2 {
		return ResourceExhausted.New("number needs %d words, buffer holds %d", n.last, len(n.words))
	}
	return nil
}
