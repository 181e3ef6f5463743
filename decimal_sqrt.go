// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigdecimal

import (
	"math/big"

	"github.com/pkg/errors"
)

// ISqrt returns ⌊√x⌋.
//
// The function panics if x < 0.
func ISqrt(x *big.Int) *big.Int {
	if x.Sign() < 0 {
		panic("ISqrt: square root of negative operand")
	}
	if x.Cmp(bigOne) <= 0 {
		return new(big.Int).Set(x)
	}
	return bisectRoot(x, 2)
}

// NthRootRem returns r = ⌊x**(1/n)⌋ and the remainder x - r**n. It fails with
// ErrDomain if n < 1 or x < 0.
func NthRootRem(x *big.Int, n int) (root, rem *big.Int, err error) {
	switch {
	case n < 1:
		return nil, nil, errors.Wrapf(ErrDomain, "root of order %d", n)
	case x.Sign() < 0:
		return nil, nil, errors.Wrapf(ErrDomain, "root of negative value %s", x)
	case n == 1 || x.Cmp(bigOne) <= 0:
		return new(big.Int).Set(x), new(big.Int), nil
	}
	root = bisectRoot(x, n)
	rem = new(big.Int).Sub(x, ipow(root, n))
	return root, rem, nil
}

// bisectRoot returns ⌊x**(1/n)⌋ for x > 1 and n > 1 by binary search.
func bisectRoot(x *big.Int, n int) *big.Int {
	// 2**(b-1) <= x < 2**b, so with q = ⌊(b-1)/n⌋ the root is in
	// [2**q, 2**(q+1)).
	q := uint((x.BitLen() - 1) / n)
	var (
		lo  = new(big.Int).Lsh(bigOne, q)
		hi  = new(big.Int).Lsh(bigOne, q+1)
		mid = new(big.Int)
		d   = new(big.Int)
		e   = big.NewInt(int64(n))
		p   = new(big.Int)
	)
	for d.Sub(hi, lo).Cmp(bigOne) > 0 {
		mid.Add(lo, hi).Rsh(mid, 1)
		switch p.Exp(mid, e, nil).Cmp(x) {
		case 0:
			return mid
		case -1:
			lo.Set(mid)
		default:
			hi.Set(mid)
		}
	}
	return lo
}

// NthRoot returns the n-th root of x truncated to prec decimal places. It
// fails with ErrDomain if n < 1 or x < 0.
func (c Context) NthRoot(x Decimal, n int, prec int) (Decimal, error) {
	switch {
	case n < 1:
		return Zero, errors.Wrapf(ErrDomain, "root of order %d", n)
	case x.Sign() < 0:
		return Zero, errors.Wrapf(ErrDomain, "root of negative value %s", x)
	case x.Sign() == 0:
		return Zero, nil
	case n == 1:
		return c.Apply(x), nil
	}
	if prec < 0 {
		prec = 0
	}
	// x**(1/n) = (m × 10**shift)**(1/n) × 10**((exp-shift)/n) where exp-shift
	// must be a multiple of n and the result exponent at most -prec.
	shift := n * prec
	if x.exp > 0 {
		shift += x.exp
	}
	e := x.exp - shift
	if r := e % n; r != 0 {
		if r < 0 {
			r += n
		}
		shift += r
		e -= r
	}
	root, _, err := NthRootRem(shl10(x.mant, shift), n)
	if err != nil {
		return Zero, err
	}
	return c.finish(root, e/n), nil
}

// Sqrt returns √x truncated to prec decimal places. It fails with ErrDomain
// if x < 0.
func (c Context) Sqrt(x Decimal, prec int) (Decimal, error) {
	return c.NthRoot(x, 2, prec)
}
