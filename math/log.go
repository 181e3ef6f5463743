// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	gomath "math"

	"github.com/db47h/bigdecimal"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// bounds of the interval where the ln series is evaluated.
var (
	lnLow  = bigdecimal.New(66, -2)
	lnHigh = bigdecimal.New(133, -2)
)

// Ln returns the natural logarithm of x rounded to prec decimal places. It
// fails with ErrDomain if x <= 0.
func Ln(c bigdecimal.Context, x bigdecimal.Decimal, prec int) (bigdecimal.Decimal, error) {
	if x.Sign() <= 0 {
		return bigdecimal.Zero, errors.Wrapf(bigdecimal.ErrDomain, "ln(%s)", x)
	}
	return finish(c, ln(c, x, prec+guardDigits), prec), nil
}

// ln returns ln(x), x > 0, with places correct decimal places.
func ln(c bigdecimal.Context, x bigdecimal.Decimal, places int) bigdecimal.Decimal {
	if x.Equal(one) {
		return bigdecimal.Zero
	}

	// ln(x) = 3**k × ln(x**(1/3**k)). The number of cube roots is estimated
	// beforehand so that they are computed with enough places to absorb the
	// final multiplication.
	est := gomath.Abs(log10Estimate(x) / log10e)
	k := 0
	for est > 0.28 {
		est /= 3
		k++
	}
	wp := places + int(float64(k+1)*log10_3) + 2

	y := x
	k = 0
	for y.Cmp(lnLow) < 0 || y.Cmp(lnHigh) > 0 {
		r, err := bigdecimal.Default().NthRoot(y, 3, wp+leadingZeros(y))
		if err != nil {
			panic(err)
		}
		y = r
		k++
	}

	// ln(y) = 2 × atanh((y-1)/(y+1))
	z := quo(y.Sub(one), y.Add(one), wp)
	s := Series{X: z, Start: 1, Step: 2, Sign: 1}.Eval(c, wp)
	s = s.Mul(two)
	if k > 0 {
		p, _ := bigdecimal.New(3, 0).Pow(k)
		s = s.Mul(p)
	}
	c.Log().Debug("ln reduced by cube roots", zap.Int("roots", k))
	return rnd(s, places)
}

// log10Estimate returns a float64 approximation of log10(|x|), x != 0, that
// does not overflow for large exponents.
func log10Estimate(x bigdecimal.Decimal) float64 {
	t := x.Abs().Truncate(15)
	m, _ := t.Mantissa().Float64()
	return gomath.Log10(m) + float64(t.Exponent())
}

// Log returns the logarithm of x in the given base, rounded to prec decimal
// places. It fails with ErrDomain if x <= 0, base <= 0 or base == 1.
func Log(c bigdecimal.Context, x, base bigdecimal.Decimal, prec int) (bigdecimal.Decimal, error) {
	switch {
	case base.Sign() <= 0 || base.Equal(one):
		return bigdecimal.Zero, errors.Wrapf(bigdecimal.ErrDomain, "logarithm in base %s", base)
	case x.Sign() <= 0:
		return bigdecimal.Zero, errors.Wrapf(bigdecimal.ErrDomain, "log(%s)", x)
	}
	return finish(c, logb(c, x, base, prec+guardDigits), prec), nil
}

// logb returns ln(x)/ln(base) with places correct decimal places.
func logb(c bigdecimal.Context, x, base bigdecimal.Decimal, places int) bigdecimal.Decimal {
	lb := ln(c, base, places)
	// small divisors and large dividends amplify the error of the quotient
	extra := 2*leadingZeros(lb) + magnitude(ln(c, x, guardDigits)) + 1
	lx := ln(c, x, places+extra)
	lb = ln(c, base, places+extra)
	return quo(lx, lb, places)
}

// Log10 returns the decimal logarithm of x rounded to prec decimal places. It
// fails with ErrDomain if x <= 0. Log10 is exact for powers of ten.
func Log10(c bigdecimal.Context, x bigdecimal.Decimal, prec int) (bigdecimal.Decimal, error) {
	if x.Sign() <= 0 {
		return bigdecimal.Zero, errors.Wrapf(bigdecimal.ErrDomain, "log10(%s)", x)
	}
	if m := x.Mantissa(); m.IsInt64() && m.Int64() == 1 {
		return c.Apply(bigdecimal.FromInt64(int64(x.Exponent()))), nil
	}
	return finish(c, logb(c, x, bigdecimal.Ten, prec+guardDigits), prec), nil
}

// Log2 returns the binary logarithm of x rounded to prec decimal places. It
// fails with ErrDomain if x <= 0.
func Log2(c bigdecimal.Context, x bigdecimal.Decimal, prec int) (bigdecimal.Decimal, error) {
	if x.Sign() <= 0 {
		return bigdecimal.Zero, errors.Wrapf(bigdecimal.ErrDomain, "log2(%s)", x)
	}
	return finish(c, logb(c, x, two, prec+guardDigits), prec), nil
}
