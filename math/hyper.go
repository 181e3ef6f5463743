// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"github.com/db47h/bigdecimal"
	"github.com/pkg/errors"
)

// ln10 rounded up, used to find arguments beyond which exponentials saturate
// at a given number of places.
var ln10 = bigdecimal.New(231, -2)

// saturates reports whether e**-|x| < 10**-(places+2).
func saturates(x bigdecimal.Decimal, places int) bool {
	return x.CmpAbs(bigdecimal.FromInt64(int64(places+2)).Mul(ln10)) > 0
}

// Sinh returns the hyperbolic sine of x rounded to prec decimal places. It
// fails with ErrOutOfRange if e**|x| is out of range.
func Sinh(c bigdecimal.Context, x bigdecimal.Decimal, prec int) (bigdecimal.Decimal, error) {
	z, err := sinh(c, x, prec+guardDigits)
	if err != nil {
		return bigdecimal.Zero, err
	}
	return finish(c, z, prec), nil
}

func sinh(c bigdecimal.Context, x bigdecimal.Decimal, places int) (bigdecimal.Decimal, error) {
	if x.CmpAbs(one) <= 0 {
		return Series{X: x, Start: 1, Step: 2, Sign: 1, Factorial: true}.Eval(c, places), nil
	}
	if x.Sign() < 0 {
		s, err := sinh(c, x.Neg(), places)
		return s.Neg(), err
	}
	// (e**x - e**-x) / 2
	ex, err := exp(c, x, places+1)
	if err != nil {
		return bigdecimal.Zero, err
	}
	return rnd(ex.Sub(quo(one, ex, places+1)).Mul(half), places), nil
}

// Cosh returns the hyperbolic cosine of x rounded to prec decimal places. It
// fails with ErrOutOfRange if e**|x| is out of range.
func Cosh(c bigdecimal.Context, x bigdecimal.Decimal, prec int) (bigdecimal.Decimal, error) {
	z, err := cosh(c, x, prec+guardDigits)
	if err != nil {
		return bigdecimal.Zero, err
	}
	return finish(c, z, prec), nil
}

func cosh(c bigdecimal.Context, x bigdecimal.Decimal, places int) (bigdecimal.Decimal, error) {
	if x.CmpAbs(one) <= 0 {
		return Series{X: x, Sum: one, Start: 2, Step: 2, Sign: 1, Factorial: true}.Eval(c, places), nil
	}
	ex, err := exp(c, x.Abs(), places+1)
	if err != nil {
		return bigdecimal.Zero, err
	}
	return rnd(ex.Add(quo(one, ex, places+1)).Mul(half), places), nil
}

// Tanh returns the hyperbolic tangent of x rounded to prec decimal places.
func Tanh(c bigdecimal.Context, x bigdecimal.Decimal, prec int) bigdecimal.Decimal {
	return finish(c, tanh(c, x, prec+guardDigits), prec)
}

func tanh(c bigdecimal.Context, x bigdecimal.Decimal, places int) bigdecimal.Decimal {
	switch {
	case x.Sign() < 0:
		return tanh(c, x.Neg(), places).Neg()
	case x.IsZero():
		return bigdecimal.Zero
	case saturates(x.Mul(two), places):
		return one
	case x.Cmp(one) <= 0:
		wp := places + 1
		s, _ := sinh(c, x, wp)
		ch, _ := cosh(c, x, wp)
		return quo(s, ch, places)
	}
	// (e**2x - 1) / (e**2x + 1)
	e2, err := exp(c, x.Mul(two), places+1)
	if err != nil {
		panic(err)
	}
	return quo(e2.Sub(one), e2.Add(one), places)
}

// Coth returns the hyperbolic cotangent of x rounded to prec decimal places.
// It fails with ErrDomain if x == 0.
func Coth(c bigdecimal.Context, x bigdecimal.Decimal, prec int) (bigdecimal.Decimal, error) {
	if x.IsZero() {
		return bigdecimal.Zero, errors.Wrap(bigdecimal.ErrDomain, "coth(0)")
	}
	// tanh(x) ~ x near 0
	wp := prec + guardDigits
	t := tanh(c, x, wp+2*leadingZeros(x)+1)
	return finish(c, quo(one, t, wp), prec), nil
}

// Sech returns the hyperbolic secant of x rounded to prec decimal places.
func Sech(c bigdecimal.Context, x bigdecimal.Decimal, prec int) bigdecimal.Decimal {
	wp := prec + guardDigits
	if saturates(x, wp) {
		return bigdecimal.Zero
	}
	ch, err := cosh(c, x, wp)
	if err != nil {
		panic(err)
	}
	return finish(c, quo(one, ch, wp), prec)
}

// Csch returns the hyperbolic cosecant of x rounded to prec decimal places. It
// fails with ErrDomain if x == 0.
func Csch(c bigdecimal.Context, x bigdecimal.Decimal, prec int) (bigdecimal.Decimal, error) {
	if x.IsZero() {
		return bigdecimal.Zero, errors.Wrap(bigdecimal.ErrDomain, "csch(0)")
	}
	wp := prec + guardDigits
	if saturates(x, wp) {
		return bigdecimal.Zero, nil
	}
	// sinh(x) ~ x near 0
	s, err := sinh(c, x, wp+2*leadingZeros(x)+1)
	if err != nil {
		return bigdecimal.Zero, err
	}
	return finish(c, quo(one, s, wp), prec), nil
}
