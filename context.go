// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigdecimal

import (
	"math/big"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DefaultPrecision is the number of significant digits computed by divisions
// when a Context does not specify a precision.
const DefaultPrecision = 5000

// A Context holds the precision and truncation policy applied to the results
// of operations.
//
// Precision is the maximum number of significant digits computed by inexact
// operations like Quo. If it is zero or negative, DefaultPrecision is used.
//
// If AlwaysTruncate is set, every value produced by the context is clipped to
// Precision significant digits; otherwise results are exact (except for
// divisions) and merely normalized.
//
// Logger, if not nil, receives debug traces from long-running computations.
//
// Contexts are plain values; the zero value is ready to use and equivalent to
// Default().
type Context struct {
	Precision      int
	AlwaysTruncate bool
	Logger         *zap.Logger
}

// Default returns a Context with DefaultPrecision and no truncation.
func Default() Context {
	return Context{Precision: DefaultPrecision}
}

// Prec returns the effective precision of c.
func (c Context) Prec() int {
	if c.Precision <= 0 {
		return DefaultPrecision
	}
	return c.Precision
}

// WithPrecision returns a copy of c with its precision set to prec.
func (c Context) WithPrecision(prec int) Context {
	c.Precision = prec
	return c
}

// Log returns the logger of c, or a no-op logger.
func (c Context) Log() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// result builds a Decimal from m and exp according to c's policy. It fails
// with ErrOutOfRange if the normalized exponent is outside [MinExp, MaxExp].
// result takes ownership of m.
func (c Context) result(m *big.Int, exp int) (Decimal, error) {
	if m.Sign() == 0 {
		return Zero, nil
	}
	if exp < 2*MinExp || exp > 2*MaxExp {
		return Zero, errors.Wrapf(ErrOutOfRange, "exponent %d", exp)
	}
	if c.AlwaysTruncate {
		var s int
		m, s = truncate(m, c.Prec())
		exp += s
	}
	m, s := norm(m)
	if exp += s; exp < MinExp || exp > MaxExp {
		return Zero, errors.Wrapf(ErrOutOfRange, "exponent %d", exp)
	}
	return Decimal{mant: m, exp: exp}, nil
}

// finish is like result but panics on exponent overflow.
func (c Context) finish(m *big.Int, exp int) Decimal {
	x, err := c.result(m, exp)
	if err != nil {
		panic(err)
	}
	return x
}

// New returns mant × 10**exp, normalized or truncated according to c. mant is
// copied.
func (c Context) New(mant *big.Int, exp int) Decimal {
	return c.finish(new(big.Int).Set(mant), exp)
}

// Apply returns x with c's policy applied. It is a no-op unless c truncates
// and x has more than c.Prec() digits.
func (c Context) Apply(x Decimal) Decimal {
	if x.Sign() == 0 {
		return Zero
	}
	if !c.AlwaysTruncate || digits(x.mant) <= c.Prec() {
		return x.Normalize()
	}
	return c.finish(x.mant, x.exp)
}

// Add returns x + y.
func (c Context) Add(x, y Decimal) Decimal {
	switch {
	case x.Sign() == 0:
		return c.Apply(y)
	case y.Sign() == 0:
		return c.Apply(x)
	}
	xm, ym, exp := align(x, y)
	return c.finish(new(big.Int).Add(xm, ym), exp)
}

// Sub returns x - y.
func (c Context) Sub(x, y Decimal) Decimal {
	switch {
	case y.Sign() == 0:
		return c.Apply(x)
	case x.Sign() == 0:
		return c.Apply(y.Neg())
	}
	xm, ym, exp := align(x, y)
	return c.finish(new(big.Int).Sub(xm, ym), exp)
}

// Mul returns x × y. It panics with an error wrapping ErrOutOfRange if the
// exponent of the result overflows.
func (c Context) Mul(x, y Decimal) Decimal {
	if x.Sign() == 0 || y.Sign() == 0 {
		return Zero
	}
	return c.finish(new(big.Int).Mul(x.mant, y.mant), x.exp+y.exp)
}

// Neg returns -x.
func (c Context) Neg(x Decimal) Decimal {
	return c.Apply(x.Neg())
}

// Abs returns |x|.
func (c Context) Abs(x Decimal) Decimal {
	return c.Apply(x.Abs())
}

// Sum returns the sum of its arguments.
func (c Context) Sum(xs ...Decimal) Decimal {
	s := Zero
	for _, x := range xs {
		s = c.Add(s, x)
	}
	return s
}

// Quo returns x / y computed to at most c.Prec() significant digits. The
// result is truncated toward zero. Quo fails with ErrDivideByZero if y == 0.
func (c Context) Quo(x, y Decimal) (Decimal, error) {
	if y.Sign() == 0 {
		return Zero, errors.Wrapf(ErrDivideByZero, "%s / 0", x)
	}
	if x.Sign() == 0 {
		return Zero, nil
	}
	q, exp := longDiv(x.mant, y.mant, c.Prec())
	q, s := truncate(q, c.Prec())
	return c.result(q, x.exp-y.exp+exp+s)
}

// longDiv divides x by y with schoolbook long division. It stops when the
// remainder is zero or when the quotient has prec significant digits. It
// returns the quotient q and exponent e such that x/y ≈ q × 10**e. q may have
// more than prec digits if the integer quotient of x and y already does.
//
// Remainder digits are brought down in batches: as many as the digit budget
// still allows. The resulting quotient digits are those of the one digit at a
// time algorithm.
func longDiv(x, y *big.Int, prec int) (q *big.Int, exp int) {
	var (
		r  = new(big.Int)
		d  = new(big.Int)
		ya = new(big.Int).Abs(y)
	)
	q = new(big.Int)
	q.QuoRem(x, y, r)
	for r.Sign() != 0 {
		qd := digits(q)
		if qd >= prec {
			break
		}
		var n int
		if qd == 0 {
			// no significant digit yet: bring down just enough digits to
			// make the remainder as long as the divisor.
			if n = digits(ya) - digits(r); n < 1 {
				n = 1
			}
		} else {
			n = prec - qd
		}
		r.Mul(r, pow10(n))
		q.Mul(q, pow10(n))
		exp -= n
		d.QuoRem(r, y, r)
		q.Add(q, d)
	}
	return q, exp
}

// Reciprocal returns 1 / x.
func (c Context) Reciprocal(x Decimal) (Decimal, error) {
	return c.Quo(One, x)
}

// Mod returns x - floor(x / y) × y. The result has the sign of y. Mod is exact
// and fails with ErrDivideByZero if y == 0.
func (c Context) Mod(x, y Decimal) (Decimal, error) {
	if y.Sign() == 0 {
		return Zero, errors.Wrapf(ErrDivideByZero, "%s mod 0", x)
	}
	if x.Sign() == 0 {
		return Zero, nil
	}
	xm, ym, exp := align(x, y)
	r := new(big.Int).Rem(xm, ym)
	if r.Sign() != 0 && r.Sign() != ym.Sign() {
		// floor instead of truncation
		r.Add(r, ym)
	}
	return c.finish(r, exp), nil
}

// Pow returns x**n. The result is exact for n >= 0. For n < 0 it is computed
// as 1 / x**-n and fails with ErrDivideByZero if x == 0.
func (c Context) Pow(x Decimal, n int) (Decimal, error) {
	switch {
	case n == 0:
		return One, nil
	case n < 0:
		if x.Sign() == 0 {
			return Zero, errors.Wrapf(ErrDivideByZero, "0**%d", n)
		}
		p, err := c.Pow(x, -n)
		if err != nil {
			return Zero, err
		}
		return c.Quo(One, p)
	case x.Sign() == 0:
		return Zero, nil
	}
	if e := x.exp; e > 0 && n > MaxExp/e || e < 0 && n > MinExp/e {
		return Zero, errors.Wrapf(ErrOutOfRange, "%s**%d: exponent overflow", x.Sci(), n)
	}
	return c.result(ipow(x.mant, n), x.exp*n)
}
