// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"github.com/db47h/bigdecimal"
	"github.com/pkg/errors"
)

// arguments of the atan series are reduced below atanMax.
var atanMax = bigdecimal.New(2, -1)

// halfPi returns π/2 with places correct decimal places.
func halfPi(c bigdecimal.Context, places int) bigdecimal.Decimal {
	return rnd(pi(c, places+1).Mul(half), places)
}

// Atan returns the arctangent of x, in radians, rounded to prec decimal
// places. The result is in [-π/2, π/2].
func Atan(c bigdecimal.Context, x bigdecimal.Decimal, prec int) bigdecimal.Decimal {
	return finish(c, atan(c, x, prec+guardDigits), prec)
}

func atan(c bigdecimal.Context, x bigdecimal.Decimal, places int) bigdecimal.Decimal {
	switch {
	case x.IsZero():
		return bigdecimal.Zero
	case x.Sign() < 0:
		return atan(c, x.Neg(), places).Neg()
	case x.Cmp(one) > 0:
		// atan(x) = π/2 - atan(1/x)
		a := atan(c, quo(one, x, places+1), places+1)
		return rnd(halfPi(c, places+1).Sub(a), places)
	}
	wp := places + 3
	y, k := x, 0
	for y.Cmp(atanMax) > 0 {
		// atan(y) = 2 × atan(y / (1 + √(1 + y²)))
		s := sqrt(one.Add(rnd(y.Mul(y), wp)), wp)
		y = quo(y, one.Add(s), wp)
		k++
	}
	s := Series{X: y, Start: 1, Step: 2, Sign: -1}.Eval(c, wp)
	if k > 0 {
		p, _ := two.Pow(k)
		s = s.Mul(p)
	}
	return rnd(s, places)
}

// Acot returns the arccotangent of x, in radians, rounded to prec decimal
// places. The result is π/2 - atan(x), in (0, π).
func Acot(c bigdecimal.Context, x bigdecimal.Decimal, prec int) bigdecimal.Decimal {
	wp := prec + guardDigits
	return finish(c, halfPi(c, wp).Sub(atan(c, x, wp)), prec)
}

// Asin returns the arcsine of x, in radians, rounded to prec decimal places.
// It fails with ErrOutOfRange if |x| > 1.
func Asin(c bigdecimal.Context, x bigdecimal.Decimal, prec int) (bigdecimal.Decimal, error) {
	if x.CmpAbs(one) > 0 {
		return bigdecimal.Zero, errors.Wrapf(bigdecimal.ErrOutOfRange, "asin(%s)", x)
	}
	return finish(c, asin(c, x, prec+guardDigits), prec), nil
}

func asin(c bigdecimal.Context, x bigdecimal.Decimal, places int) bigdecimal.Decimal {
	if x.CmpAbs(one) == 0 {
		hp := halfPi(c, places)
		if x.Sign() < 0 {
			return hp.Neg()
		}
		return hp
	}
	// asin(x) = atan(x / √(1 - x²))
	d := one.Sub(x.Mul(x))
	s := sqrt(d, places+leadingZeros(d)+2)
	return atan(c, quo(x, s, places+2), places)
}

// Acos returns the arccosine of x, in radians, rounded to prec decimal
// places. It fails with ErrOutOfRange if |x| > 1.
func Acos(c bigdecimal.Context, x bigdecimal.Decimal, prec int) (bigdecimal.Decimal, error) {
	if x.CmpAbs(one) > 0 {
		return bigdecimal.Zero, errors.Wrapf(bigdecimal.ErrOutOfRange, "acos(%s)", x)
	}
	return finish(c, acos(c, x, prec+guardDigits), prec), nil
}

func acos(c bigdecimal.Context, x bigdecimal.Decimal, places int) bigdecimal.Decimal {
	return rnd(halfPi(c, places+1).Sub(asin(c, x, places+1)), places)
}

// Asec returns the arcsecant of x, in radians, rounded to prec decimal
// places. It fails with ErrOutOfRange if |x| < 1.
func Asec(c bigdecimal.Context, x bigdecimal.Decimal, prec int) (bigdecimal.Decimal, error) {
	if x.CmpAbs(one) < 0 {
		return bigdecimal.Zero, errors.Wrapf(bigdecimal.ErrOutOfRange, "asec(%s)", x)
	}
	wp := prec + guardDigits
	// acos is steep near ±1
	return finish(c, acos(c, quo(one, x, 2*wp), wp), prec), nil
}

// Acsc returns the arccosecant of x, in radians, rounded to prec decimal
// places. It fails with ErrOutOfRange if |x| < 1.
func Acsc(c bigdecimal.Context, x bigdecimal.Decimal, prec int) (bigdecimal.Decimal, error) {
	if x.CmpAbs(one) < 0 {
		return bigdecimal.Zero, errors.Wrapf(bigdecimal.ErrOutOfRange, "acsc(%s)", x)
	}
	wp := prec + guardDigits
	return finish(c, asin(c, quo(one, x, 2*wp), wp), prec), nil
}

// Asinh returns the inverse hyperbolic sine of x rounded to prec decimal
// places.
func Asinh(c bigdecimal.Context, x bigdecimal.Decimal, prec int) bigdecimal.Decimal {
	return finish(c, asinh(c, x, prec+guardDigits), prec)
}

func asinh(c bigdecimal.Context, x bigdecimal.Decimal, places int) bigdecimal.Decimal {
	switch {
	case x.IsZero():
		return bigdecimal.Zero
	case x.Sign() < 0:
		return asinh(c, x.Neg(), places).Neg()
	}
	// ln(x + √(x² + 1))
	wp := places + 2
	s := sqrt(rnd(x.Mul(x), wp).Add(one), wp)
	return ln(c, x.Add(s), places)
}

// Acosh returns the inverse hyperbolic cosine of x rounded to prec decimal
// places. It fails with ErrOutOfRange if x < 1.
func Acosh(c bigdecimal.Context, x bigdecimal.Decimal, prec int) (bigdecimal.Decimal, error) {
	if x.Cmp(one) < 0 {
		return bigdecimal.Zero, errors.Wrapf(bigdecimal.ErrOutOfRange, "acosh(%s)", x)
	}
	// ln(x + √(x² - 1))
	wp := prec + guardDigits
	s := sqrt(x.Mul(x).Sub(one), wp+2)
	return finish(c, ln(c, x.Add(s), wp), prec), nil
}

// Atanh returns the inverse hyperbolic tangent of x rounded to prec decimal
// places. It fails with ErrOutOfRange if |x| >= 1.
func Atanh(c bigdecimal.Context, x bigdecimal.Decimal, prec int) (bigdecimal.Decimal, error) {
	if x.CmpAbs(one) >= 0 {
		return bigdecimal.Zero, errors.Wrapf(bigdecimal.ErrOutOfRange, "atanh(%s)", x)
	}
	// ln((1 + x) / (1 - x)) / 2
	wp := prec + guardDigits
	n := one.Add(x)
	q := quo(n, one.Sub(x), wp+leadingZeros(n)+2)
	return finish(c, ln(c, q, wp+1).Mul(half), prec), nil
}

// Acoth returns the inverse hyperbolic cotangent of x rounded to prec decimal
// places. It fails with ErrOutOfRange if |x| <= 1.
func Acoth(c bigdecimal.Context, x bigdecimal.Decimal, prec int) (bigdecimal.Decimal, error) {
	if x.CmpAbs(one) <= 0 {
		return bigdecimal.Zero, errors.Wrapf(bigdecimal.ErrOutOfRange, "acoth(%s)", x)
	}
	// ln((x + 1) / (x - 1)) / 2
	wp := prec + guardDigits
	n := x.Add(one)
	q := quo(n, x.Sub(one), wp+leadingZeros(n)+2)
	return finish(c, ln(c, q, wp+1).Mul(half), prec), nil
}

// Asech returns the inverse hyperbolic secant of x rounded to prec decimal
// places. It fails with ErrOutOfRange unless 0 < x <= 1.
func Asech(c bigdecimal.Context, x bigdecimal.Decimal, prec int) (bigdecimal.Decimal, error) {
	if x.Sign() <= 0 || x.Cmp(one) > 0 {
		return bigdecimal.Zero, errors.Wrapf(bigdecimal.ErrOutOfRange, "asech(%s)", x)
	}
	// ln((1 + √(1 - x²)) / x)
	wp := prec + guardDigits
	s := sqrt(one.Sub(x.Mul(x)), wp+2)
	q := quo(one.Add(s), x, wp+2)
	return finish(c, ln(c, q, wp), prec), nil
}

// Acsch returns the inverse hyperbolic cosecant of x rounded to prec decimal
// places. It fails with ErrDomain if x == 0.
func Acsch(c bigdecimal.Context, x bigdecimal.Decimal, prec int) (bigdecimal.Decimal, error) {
	if x.IsZero() {
		return bigdecimal.Zero, errors.Wrap(bigdecimal.ErrDomain, "acsch(0)")
	}
	wp := prec + guardDigits
	return finish(c, asinh(c, quo(one, x, wp+2), wp), prec), nil
}
