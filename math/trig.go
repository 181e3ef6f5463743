// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"github.com/db47h/bigdecimal"
	"github.com/pkg/errors"
)

// Sin returns the sine of x (in radians) rounded to prec decimal places.
func Sin(c bigdecimal.Context, x bigdecimal.Decimal, prec int) bigdecimal.Decimal {
	return finish(c, sin(c, x, prec+guardDigits), prec)
}

// Cos returns the cosine of x (in radians) rounded to prec decimal places.
func Cos(c bigdecimal.Context, x bigdecimal.Decimal, prec int) bigdecimal.Decimal {
	return finish(c, cos(c, x, prec+guardDigits), prec)
}

// sin returns sin(x) with places correct decimal places.
func sin(c bigdecimal.Context, x bigdecimal.Decimal, places int) bigdecimal.Decimal {
	if x.IsZero() {
		return bigdecimal.Zero
	}
	// the reduction multiplies the error of π by x/2π
	p := pi(c, places+magnitude(x)+2)
	p2 := p.Mul(two)
	r := mod(x, p2)
	if r.Cmp(p) > 0 {
		r = r.Sub(p2)
	}
	// r in (-π, π], reflect into [-π/2, π/2]
	hp := p.Mul(half)
	switch {
	case r.Cmp(hp) > 0:
		r = p.Sub(r)
	case r.Cmp(hp.Neg()) < 0:
		r = p.Neg().Sub(r)
	}
	return Series{X: r, Start: 1, Step: 2, Sign: -1, Factorial: true}.Eval(c, places)
}

// cos returns cos(x) = sin(x + π/2) with places correct decimal places.
func cos(c bigdecimal.Context, x bigdecimal.Decimal, places int) bigdecimal.Decimal {
	hp := pi(c, places+magnitude(x)+2).Mul(half)
	return sin(c, x.Add(hp), places)
}

// mod returns x mod y, y != 0.
func mod(x, y bigdecimal.Decimal) bigdecimal.Decimal {
	r, err := x.Mod(y)
	if err != nil {
		panic(err)
	}
	return r
}

// isPole reports whether x is within 10**-(prec+10) of a multiple of π, or
// of π/2 plus a multiple of π if odd is set.
func isPole(c bigdecimal.Context, x bigdecimal.Decimal, odd bool, prec int) bool {
	places := prec + guardDigits
	p := pi(c, places+magnitude(x)+2)
	if odd {
		x = x.Sub(p.Mul(half))
	}
	eps := bigdecimal.New(1, -places)
	r := mod(x, p)
	return r.Cmp(eps) < 0 || p.Sub(r).Cmp(eps) < 0
}

// trigQuo returns n(x)/d(x) with places correct decimal places. d(x) must not
// be zero. The operands are recomputed with more places when d(x) is small.
func trigQuo(c bigdecimal.Context, x bigdecimal.Decimal, places int, n, d func(bigdecimal.Context, bigdecimal.Decimal, int) bigdecimal.Decimal) bigdecimal.Decimal {
	wp := places + guardDigits
	dv := d(c, x, wp)
	if z := leadingZeros(dv); z > 0 {
		wp += 2 * z
		dv = d(c, x, wp)
	}
	return quo(n(c, x, wp), dv, places)
}

func oneFn(bigdecimal.Context, bigdecimal.Decimal, int) bigdecimal.Decimal { return one }

// Tan returns the tangent of x rounded to prec decimal places. It fails with
// ErrUndefinedResult if x is a pole of tan, that is within 10**-(prec+10) of
// π/2 + kπ.
func Tan(c bigdecimal.Context, x bigdecimal.Decimal, prec int) (bigdecimal.Decimal, error) {
	if isPole(c, x, true, prec) {
		return bigdecimal.Zero, errors.Wrapf(bigdecimal.ErrUndefinedResult, "tan(%s)", x)
	}
	return finish(c, trigQuo(c, x, prec+guardDigits, sin, cos), prec), nil
}

// Cot returns the cotangent of x rounded to prec decimal places. It fails with
// ErrDomain if x == 0 and with ErrUndefinedResult if x is within
// 10**-(prec+10) of a multiple of π.
func Cot(c bigdecimal.Context, x bigdecimal.Decimal, prec int) (bigdecimal.Decimal, error) {
	if x.IsZero() {
		return bigdecimal.Zero, errors.Wrap(bigdecimal.ErrDomain, "cot(0)")
	}
	if isPole(c, x, false, prec) {
		return bigdecimal.Zero, errors.Wrapf(bigdecimal.ErrUndefinedResult, "cot(%s)", x)
	}
	return finish(c, trigQuo(c, x, prec+guardDigits, cos, sin), prec), nil
}

// Sec returns the secant of x rounded to prec decimal places. It fails with
// ErrUndefinedResult at the poles of tan.
func Sec(c bigdecimal.Context, x bigdecimal.Decimal, prec int) (bigdecimal.Decimal, error) {
	if isPole(c, x, true, prec) {
		return bigdecimal.Zero, errors.Wrapf(bigdecimal.ErrUndefinedResult, "sec(%s)", x)
	}
	return finish(c, trigQuo(c, x, prec+guardDigits, oneFn, cos), prec), nil
}

// Csc returns the cosecant of x rounded to prec decimal places. It fails with
// ErrDomain if x == 0 and with ErrUndefinedResult at the other poles of cot.
func Csc(c bigdecimal.Context, x bigdecimal.Decimal, prec int) (bigdecimal.Decimal, error) {
	if x.IsZero() {
		return bigdecimal.Zero, errors.Wrap(bigdecimal.ErrDomain, "csc(0)")
	}
	if isPole(c, x, false, prec) {
		return bigdecimal.Zero, errors.Wrapf(bigdecimal.ErrUndefinedResult, "csc(%s)", x)
	}
	return finish(c, trigQuo(c, x, prec+guardDigits, oneFn, sin), prec), nil
}
