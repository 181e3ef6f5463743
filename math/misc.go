// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"github.com/db47h/bigdecimal"
)

// guardDigits is the number of extra decimal places carried by intermediate
// results.
const guardDigits = 10

// decimal logarithms of e, 2 and 3, used to estimate magnitudes.
const (
	log10e  = 0.43429448190325182765
	log10_2 = 0.30102999566398119521
	log10_3 = 0.47712125471966243730
)

// constants
var (
	one     = bigdecimal.One
	two     = bigdecimal.New(2, 0)
	four    = bigdecimal.New(4, 0)
	half    = bigdecimal.OneHalf
	quarter = bigdecimal.New(25, -2)
)

// rnd returns x rounded half to even to the given number of decimal places.
func rnd(x bigdecimal.Decimal, places int) bigdecimal.Decimal {
	return x.RoundTo(places, bigdecimal.MidpointToEven)
}

// quo returns x / y truncated to the given number of decimal places. y must
// not be zero.
func quo(x, y bigdecimal.Decimal, places int) bigdecimal.Decimal {
	if x.IsZero() {
		return bigdecimal.Zero
	}
	// x/y < 10**(dx-dy+1)
	sig := x.DecimalPlaceCount() - y.DecimalPlaceCount() + 1 + places
	if sig < 1 {
		return bigdecimal.Zero
	}
	q, err := bigdecimal.Context{Precision: sig}.Quo(x, y)
	if err != nil {
		panic(err)
	}
	return q
}

// sqrt returns √x truncated to places decimal places. x must be positive.
func sqrt(x bigdecimal.Decimal, places int) bigdecimal.Decimal {
	s, err := bigdecimal.Default().Sqrt(x, places)
	if err != nil {
		panic(err)
	}
	return s
}

// pow returns x**n, n >= 0, computed by repeated squaring. Intermediate
// results are rounded to places decimal places.
func pow(x bigdecimal.Decimal, n int, places int) bigdecimal.Decimal {
	if n == 0 {
		return one
	}
	var (
		z = x
		y = one
	)
	for n > 1 {
		if n%2 != 0 {
			y = rnd(y.Mul(z), places)
		}
		z = rnd(z.Mul(z), places)
		if z.IsZero() {
			return z
		}
		n /= 2
	}
	return rnd(z.Mul(y), places)
}

// magnitude returns the number of integer digits of |x|, 0 if |x| < 1.
func magnitude(x bigdecimal.Decimal) int {
	if d := x.DecimalPlaceCount(); d > 0 {
		return d
	}
	return 0
}

// leadingZeros returns the number of zeros between the decimal point and the
// first significant digit of x, 0 if |x| >= 0.1.
func leadingZeros(x bigdecimal.Decimal) int {
	if x.IsZero() {
		return 0
	}
	if d := x.DecimalPlaceCount(); d < 0 {
		return -d
	}
	return 0
}

// finish rounds a result computed with guard digits to prec places and
// applies c's policy.
func finish(c bigdecimal.Context, x bigdecimal.Decimal, prec int) bigdecimal.Decimal {
	return c.Apply(rnd(x, prec))
}
