// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigdecimal

import (
	"math"
	"math/big"
)

// A Decimal represents the exact value mant × 10**exp where mant is an
// arbitrary-precision integer.
//
// The zero value for a Decimal is 0. Decimals are immutable: operations
// always return new values and never modify their operands, so Decimals can be
// copied, compared with Equal and shared between goroutines freely.
//
// Values created by this package are normalized: the mantissa has no trailing
// zero digits and a zero mantissa has a zero exponent.
type Decimal struct {
	mant *big.Int // nil for 0
	exp  int
}

// Exponent limits. Operations whose result would have an exponent outside
// [MinExp, MaxExp] fail with ErrOutOfRange. Those that do not return an error
// (Add, Mul, New...) panic with an error wrapping ErrOutOfRange.
const (
	MaxExp = math.MaxInt32
	MinExp = math.MinInt32
)

// Well-known values.
var (
	Zero     = Decimal{}
	One      = New(1, 0)
	MinusOne = New(-1, 0)
	Ten      = New(10, 0)
	OneHalf  = New(5, -1)
	// Pi and E hold the first 1100 decimal places of π and e.
	Pi = MustParse(piDigits)
	E  = MustParse(eDigits)
)

// New returns the normalized decimal mant × 10**exp.
func New(mant int64, exp int) Decimal {
	return Default().finish(big.NewInt(mant), exp)
}

// NewFromBigInt returns the normalized decimal mant × 10**exp. mant is copied.
func NewFromBigInt(mant *big.Int, exp int) Decimal {
	return Default().New(mant, exp)
}

// FromInt64 returns x as a Decimal.
func FromInt64(x int64) Decimal {
	return New(x, 0)
}

// FromUint64 returns x as a Decimal.
func FromUint64(x uint64) Decimal {
	return Default().finish(new(big.Int).SetUint64(x), 0)
}

// m returns the mantissa of x. The result must not be modified.
func (x Decimal) m() *big.Int {
	if x.mant == nil {
		return new(big.Int)
	}
	return x.mant
}

// Mantissa returns a copy of the mantissa of x.
func (x Decimal) Mantissa() *big.Int {
	return new(big.Int).Set(x.m())
}

// Exponent returns the exponent of x.
func (x Decimal) Exponent() int {
	return x.exp
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
func (x Decimal) Sign() int {
	if x.mant == nil {
		return 0
	}
	return x.mant.Sign()
}

// IsZero reports whether x == 0.
func (x Decimal) IsZero() bool { return x.Sign() == 0 }

// IsInt reports whether x is an integer.
func (x Decimal) IsInt() bool {
	if x.exp >= 0 || x.Sign() == 0 {
		return true
	}
	return x.Normalize().exp >= 0
}

// SignificantDigits returns the number of digits in the mantissa of x, 0 for
// x == 0.
func (x Decimal) SignificantDigits() int {
	if x.mant == nil {
		return 0
	}
	return digits(x.mant)
}

// DecimalPlaceCount returns SignificantDigits() + Exponent(): the number of
// digits before the decimal point for |x| >= 1. For |x| < 1, it is the
// negated count of zeros between the decimal point and the first significant
// digit.
func (x Decimal) DecimalPlaceCount() int {
	if x.mant == nil {
		return 0
	}
	return digits(x.mant) + x.exp
}

// Normalize returns x with trailing zeros of the mantissa folded into the
// exponent. A zero mantissa normalizes to a zero exponent.
func (x Decimal) Normalize() Decimal {
	if x.Sign() == 0 {
		return Zero
	}
	m, s := norm(x.mant)
	return Decimal{mant: m, exp: x.exp + s}
}

// Truncate returns x clipped to at most prec significant digits. The
// discarded digits are lost. Truncate is a no-op for values with prec
// digits or less.
func (x Decimal) Truncate(prec int) Decimal {
	if x.Sign() == 0 {
		return Zero
	}
	if prec < 1 {
		prec = 1
	}
	m, s := truncate(x.mant, prec)
	return Default().finish(m, x.exp+s)
}

// WholePart returns the integer part of x, truncated toward zero.
func (x Decimal) WholePart() *big.Int {
	if x.exp >= 0 {
		return new(big.Int).Set(shl10(x.m(), x.exp))
	}
	return new(big.Int).Set(shr10(x.m(), -x.exp))
}

// FractionalPart returns x minus its whole part. The result has the sign of x
// so that x == WholePart + FractionalPart.
func (x Decimal) FractionalPart() Decimal {
	if x.exp >= 0 {
		return Zero
	}
	r := new(big.Int).Rem(x.m(), pow10(-x.exp))
	return Default().finish(r, x.exp)
}

// Neg returns -x.
func (x Decimal) Neg() Decimal {
	if x.Sign() == 0 {
		return Zero
	}
	return Decimal{mant: new(big.Int).Neg(x.mant), exp: x.exp}
}

// Abs returns |x|.
func (x Decimal) Abs() Decimal {
	if x.Sign() >= 0 {
		return x
	}
	return x.Neg()
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x Decimal) Cmp(y Decimal) int {
	xs, ys := x.Sign(), y.Sign()
	switch {
	case xs < ys:
		return -1
	case xs > ys:
		return 1
	case xs == 0:
		return 0
	}
	// same sign, non-zero: |x| and |y| with different magnitudes need no
	// alignment.
	if xd, yd := x.DecimalPlaceCount(), y.DecimalPlaceCount(); xd != yd {
		if xd > yd {
			return xs
		}
		return -xs
	}
	xm, ym, _ := align(x, y)
	return xm.Cmp(ym)
}

// CmpAbs compares |x| and |y|.
func (x Decimal) CmpAbs(y Decimal) int {
	return x.Abs().Cmp(y.Abs())
}

// Equal reports whether x and y have the same mantissa and exponent after
// normalization.
func (x Decimal) Equal(y Decimal) bool {
	x, y = x.Normalize(), y.Normalize()
	return x.exp == y.exp && x.m().Cmp(y.m()) == 0
}

// LessThan reports whether x < y.
func (x Decimal) LessThan(y Decimal) bool { return x.Cmp(y) < 0 }

// GreaterThan reports whether x > y.
func (x Decimal) GreaterThan(y Decimal) bool { return x.Cmp(y) > 0 }

// Min returns the smallest of its arguments.
func Min(first Decimal, rest ...Decimal) Decimal {
	m := first
	for _, x := range rest {
		if x.Cmp(m) < 0 {
			m = x
		}
	}
	return m
}

// Max returns the largest of its arguments.
func Max(first Decimal, rest ...Decimal) Decimal {
	m := first
	for _, x := range rest {
		if x.Cmp(m) > 0 {
			m = x
		}
	}
	return m
}

// align returns the mantissas of x and y scaled to their smallest exponent,
// and that exponent. The returned mantissas must not be modified.
func align(x, y Decimal) (xm, ym *big.Int, exp int) {
	xm, ym = x.m(), y.m()
	switch {
	case x.exp > y.exp:
		return shl10(xm, x.exp-y.exp), ym, y.exp
	case x.exp < y.exp:
		return xm, shl10(ym, y.exp-x.exp), x.exp
	}
	return xm, ym, x.exp
}
