// core/bignum/arith.go
package bignum

import "math/bits"

// mulAddWWW returns x*y + c as a (carry, low word) pair. This is the
// single widening primitive behind word reveals and actualization.
func mulAddWWW(x, y, c uint64) (z1, z0 uint64) {
	hi, lo := bits.Mul64(x, y)
	lo, cc := bits.Add64(lo, c, 0)
	return hi + cc, lo
}
