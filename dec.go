// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigdecimal

import "math/big"

// Mantissa helpers. A mantissa m with exponent e denotes m × 10**e. The
// functions below never modify their arguments, but may return them as is.

// normSteps are the digit counts tried, in order, when stripping trailing
// zeros. After stripping all 16-digit groups, each smaller step can match at
// most once.
var normSteps = [...]int{16, 8, 4, 2, 1}

// norm returns m with trailing decimal zeros removed, and the number of
// removed zeros, i.e. the amount by which the exponent must be incremented.
// For m == 0, norm returns m, 0.
func norm(m *big.Int) (*big.Int, int) {
	if m.Sign() == 0 || m.Bit(0) != 0 {
		// zero or odd
		return m, 0
	}
	var (
		z    = m
		q, r big.Int
		exp  int
	)
	for _, n := range normSteps {
		p := pow10(n)
		for {
			q.QuoRem(z, p, &r)
			if r.Sign() != 0 {
				break
			}
			if z == m {
				z = new(big.Int)
			}
			z.Set(&q)
			exp += n
			if n != normSteps[0] {
				break
			}
		}
	}
	return z, exp
}

// shr10 returns m / 10**s, truncated toward zero.
func shr10(m *big.Int, s int) *big.Int {
	if s <= 0 {
		return m
	}
	return new(big.Int).Quo(m, pow10(s))
}

// shl10 returns m × 10**s.
func shl10(m *big.Int, s int) *big.Int {
	if s <= 0 || m.Sign() == 0 {
		return m
	}
	return new(big.Int).Mul(m, pow10(s))
}

// truncate clips m to at most prec significant digits. It returns the new
// mantissa and the exponent adjustment. The discarded digits are lost.
func truncate(m *big.Int, prec int) (*big.Int, int) {
	if d := digits(m); d > prec {
		return shr10(m, d-prec), d - prec
	}
	return m, 0
}
