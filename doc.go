// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bigdecimal implements arbitrary-precision decimal arithmetic.

A Decimal is the exact value mant × 10**exp, where mant is a *big.Int and exp
an int. Addition, subtraction and multiplication are exact; division computes
a bounded number of significant digits. Transcendental functions live in the
math sub-package.

The zero value for a Decimal corresponds to 0. Decimals are immutable values:

	x := bigdecimal.New(12345, -2)           // 123.45
	y := bigdecimal.MustParse("-0.5e3")      // -500
	z := x.Add(y)                            // -376.55

Precision and truncation are not global settings. They are held by a Context
value passed explicitly, or implied by the methods of Decimal, which use
Default():

	c := bigdecimal.Context{Precision: 10}
	q, err := c.Quo(bigdecimal.One, bigdecimal.New(3, 0))   // 0.3333333333

Context.Precision bounds the number of significant digits computed by
divisions. If Context.AlwaysTruncate is set, every value returned by the
context is additionally clipped to Precision significant digits.

All values returned by this package are normalized: their mantissa has no
trailing zeros and zero has a zero exponent. Two Decimals are thus Equal if
and only if they represent the same number.

Operations report failures as errors wrapping one of ErrFormat,
ErrDivideByZero, ErrDomain, ErrOutOfRange or ErrUndefinedResult; use
errors.Is to test for a specific kind.
*/
package bigdecimal
