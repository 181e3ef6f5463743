// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigdecimal

import (
	"math/big"

	"github.com/pkg/errors"
)

// The methods below are shortcuts for the corresponding Context methods with
// Default().

// Add returns x + y.
func (x Decimal) Add(y Decimal) Decimal { return Default().Add(x, y) }

// Sub returns x - y.
func (x Decimal) Sub(y Decimal) Decimal { return Default().Sub(x, y) }

// Mul returns x × y.
func (x Decimal) Mul(y Decimal) Decimal { return Default().Mul(x, y) }

// Quo returns x / y to DefaultPrecision significant digits.
func (x Decimal) Quo(y Decimal) (Decimal, error) { return Default().Quo(x, y) }

// Mod returns x mod y, with the sign of y.
func (x Decimal) Mod(y Decimal) (Decimal, error) { return Default().Mod(x, y) }

// Pow returns x**n.
func (x Decimal) Pow(n int) (Decimal, error) { return Default().Pow(x, n) }

// Reciprocal returns 1 / x.
func (x Decimal) Reciprocal() (Decimal, error) { return Default().Reciprocal(x) }

// QuoRem returns the integer quotient q = trunc(x / y) and the remainder
// r = x - q×y. r has the sign of x. QuoRem is exact and fails with
// ErrDivideByZero if y == 0.
func (x Decimal) QuoRem(y Decimal) (q *big.Int, r Decimal, err error) {
	if y.Sign() == 0 {
		return nil, Zero, errors.Wrapf(ErrDivideByZero, "%s quorem 0", x)
	}
	xm, ym, exp := align(x, y)
	q, rm := new(big.Int).QuoRem(xm, ym, new(big.Int))
	return q, Default().finish(rm, exp), nil
}

// Sum returns the sum of its arguments.
func Sum(xs ...Decimal) Decimal { return Default().Sum(xs...) }

// Avg returns the average of its arguments computed with c's precision. It
// returns Zero for an empty argument list.
func (c Context) Avg(xs ...Decimal) Decimal {
	if len(xs) == 0 {
		return Zero
	}
	// len(xs) != 0: no error.
	a, _ := c.Quo(c.Sum(xs...), FromInt64(int64(len(xs))))
	return a
}

// Avg returns the average of its arguments.
func Avg(xs ...Decimal) Decimal { return Default().Avg(xs...) }
