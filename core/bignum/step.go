// core/bignum/step.go
package bignum

import "math/bits"

const topBit = uint64(1) << 63

// Halve advances the cursor one bit, dividing the value by two.
// Crossing a word boundary reveals the next word: the pending transform
// is applied to it in isolation before its bits are trusted. A reveal
// into the top word that leaves a carry pending is flushed on the spot,
// otherwise the single-word bit length below would undercount.
func (n *Number) Halve() (actualized bool, err error) {
	if n.mask == topBit {
		n.cur++
		hi, lo := mulAddWWW(n.words[n.cur], n.c, n.k)
		n.words[n.cur] = lo
		n.k = hi
		n.mask = 1
		if n.cur+1 == n.last && n.k != 0 {
			if err := n.actualize(); err != nil {
				return false, err
			}
			actualized = true
		}
	} else {
		n.mask <<= 1
	}
	n.refreshTop()
	return actualized, nil
}

// TripleAdd1 applies 3x+1 at the cursor. The multiplication is
// deferred: only the cursor word changes, and the pending transform
// absorbs the rest as c -> 3c, k -> 3k+carry. The transform is flushed
// beforehand when one more step could overflow 64 bits, and flushed
// afterwards when the carry was created in the top word and has no word
// to land in.
func (n *Number) TripleAdd1() (actualized bool, err error) {
	if n.c > maxCValue || n.k > maxKValue || (n.cur+1 == n.last && n.k != 0) {
		if err := n.actualize(); err != nil {
			return false, err
		}
		actualized = true
	}

	w := n.words[n.cur]
	twice := w << 1
	c1 := w >> 63 // doubling overflow
	nw, c2 := bits.Add64(twice, w, 0)
	nw, c3 := bits.Add64(nw, n.mask, 0)
	n.words[n.cur] = nw

	n.c *= 3
	n.k = 3*n.k + c1 + c2 + c3 // carry is 0..2: bits below the cursor are zero

	if n.cur+1 == n.last && n.k != 0 {
		if err := n.actualize(); err != nil {
			return actualized, err
		}
		actualized = true
	}
	n.refreshTop()
	return actualized, nil
}
