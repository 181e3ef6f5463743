// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"github.com/db47h/bigdecimal"
	"github.com/pkg/errors"
)

// maxExpArg is the largest argument accepted by Exp. e**maxExpArg has about
// 43 million digits.
const maxExpArg = 1e8

// E returns e rounded to prec decimal places.
func E(c bigdecimal.Context, prec int) bigdecimal.Decimal {
	if prec < builtinPlaces {
		return finish(c, bigdecimal.E, prec)
	}
	// exp(1) cannot fail
	e, _ := exp(c, one, prec+guardDigits)
	return finish(c, e, prec)
}

// Exp returns e**x rounded to prec decimal places. It fails with
// ErrOutOfRange if x > 1e8.
func Exp(c bigdecimal.Context, x bigdecimal.Decimal, prec int) (bigdecimal.Decimal, error) {
	z, err := exp(c, x, prec+guardDigits)
	if err != nil {
		return bigdecimal.Zero, err
	}
	return finish(c, z, prec), nil
}

// exp returns e**x with places correct decimal places.
func exp(c bigdecimal.Context, x bigdecimal.Decimal, places int) (bigdecimal.Decimal, error) {
	if x.IsZero() {
		return one, nil
	}
	f, err := x.Float64()
	if x.Sign() < 0 {
		// e**x < 10**-(places+1)
		if err != nil || -f*log10e > float64(places+1) {
			return bigdecimal.Zero, nil
		}
		// e**x = 1/e**-x where e**-x >= 1: the error of the reciprocal is
		// smaller than that of e**-x.
		r, err := exp(c, x.Neg(), places)
		if err != nil {
			return bigdecimal.Zero, err
		}
		return quo(one, r, places), nil
	}
	if err != nil || f > maxExpArg {
		return bigdecimal.Zero, errors.Wrapf(bigdecimal.ErrOutOfRange, "exp(%s)", x)
	}

	// e**x = (e**(x/2**k))**(2**k) with x/2**k <= 1. Squaring k times
	// multiplies the relative error by 2**k and the result has mag integer
	// digits.
	y, k := x, 0
	for y.Cmp(one) > 0 {
		y = y.Mul(half)
		k++
	}
	mag := int(f*log10e) + 1
	wp := places + mag + int(float64(k)*log10_2) + 2

	z := Series{X: y, Sum: one, Start: 1, Step: 1, Sign: 1, Factorial: true}.Eval(c, wp)
	for ; k > 0; k-- {
		z = rnd(z.Mul(z), wp)
	}
	return z, nil
}

// Pow returns x**y rounded to prec decimal places.
//
// Integer powers are computed exactly before rounding; other powers are
// computed as e**(y × ln x). Pow fails with ErrDomain if x == 0 and y < 0, or
// if x < 0 and y is not an integer.
func Pow(c bigdecimal.Context, x, y bigdecimal.Decimal, prec int) (bigdecimal.Decimal, error) {
	wp := prec + guardDigits
	switch {
	case y.IsZero():
		return c.Apply(one), nil
	case x.IsZero():
		if y.Sign() < 0 {
			return bigdecimal.Zero, errors.Wrapf(bigdecimal.ErrDomain, "0**%s", y)
		}
		return bigdecimal.Zero, nil
	}

	neg := false
	if y.IsInt() {
		if n, err := y.Int64(); err == nil && n >= -maxIntPow && n <= maxIntPow {
			if n > 0 {
				z, _ := x.Pow(int(n))
				return finish(c, z, prec), nil
			}
			z, _ := x.Pow(int(-n))
			return finish(c, quo(one, z, wp), prec), nil
		}
		if x.Sign() < 0 {
			// odd integer powers of negative numbers are negative
			neg = y.WholePart().Bit(0) != 0
			x = x.Neg()
		}
	}
	if x.Sign() < 0 {
		return bigdecimal.Zero, errors.Wrapf(bigdecimal.ErrDomain, "%s**%s", x, y)
	}

	// estimate the magnitude of the result
	est, err := y.Mul(ln(c, x, guardDigits)).Float64()
	if err != nil || est > maxExpArg {
		return bigdecimal.Zero, errors.Wrapf(bigdecimal.ErrOutOfRange, "%s**%s", x, y)
	}
	mag := 0
	if est > 0 {
		mag = int(est*log10e) + 1
	}
	l := ln(c, x, wp+mag+magnitude(y))
	z, err := exp(c, rnd(y.Mul(l), wp+mag), wp)
	if err != nil {
		return bigdecimal.Zero, err
	}
	if neg {
		z = z.Neg()
	}
	return finish(c, z, prec), nil
}

// maxIntPow bounds the integer powers computed exactly by Pow.
const maxIntPow = 1 << 16
