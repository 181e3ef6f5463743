// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides error-accumulating contexts for Decimals.
//
// Operators have the form
//
//	func (c *Context) UnaryOp(x bigdecimal.Decimal) bigdecimal.Decimal
//	func (c *Context) BinaryOp(x, y bigdecimal.Decimal) bigdecimal.Decimal
//
// and return the result of the corresponding bigdecimal or math function
// computed with c's precision policy. Transcendental functions return Places
// decimal places.
//
// A Context catches errors: if an operation fails, it returns the zero
// Decimal and the error is recorded. Further operations with the context are
// no-ops (they return the zero Decimal) until (*Context).Err is called to check
// for errors. A chain of operations can therefore be written without checking
// every intermediate result.
//
// A Context is not safe for concurrent use.
package context

import (
	"github.com/db47h/bigdecimal"
	"github.com/db47h/bigdecimal/math"
	"github.com/pkg/errors"
)

// DefaultPlaces is the number of decimal places of transcendental results
// for contexts created with places <= 0.
const DefaultPlaces = 50

// A Context wraps a bigdecimal.Context and records the first error returned by
// its operations.
type Context struct {
	c      bigdecimal.Context
	places int
	err    error
}

// New creates a new context with the given precision policy. Transcendental
// functions return places decimal places; if places <= 0, DefaultPlaces is
// used.
func New(c bigdecimal.Context, places int) *Context {
	if places <= 0 {
		places = DefaultPlaces
	}
	return &Context{c: c, places: places}
}

// Base returns the bigdecimal.Context wrapped by c.
func (c *Context) Base() bigdecimal.Context {
	return c.c
}

// Places returns the number of decimal places of transcendental results.
func (c *Context) Places() int {
	return c.places
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// check records err if it is the first one and returns x, or the zero Decimal
// on error.
func (c *Context) check(x bigdecimal.Decimal, err error) bigdecimal.Decimal {
	if err != nil {
		if c.err == nil {
			c.err = err
		}
		return bigdecimal.Zero
	}
	return x
}

// catch records an exponent overflow panic as c's error and sets *z to the
// zero Decimal. Other panics are propagated.
func (c *Context) catch(z *bigdecimal.Decimal) {
	if r := recover(); r != nil {
		err, ok := r.(error)
		if !ok || !errors.Is(err, bigdecimal.ErrOutOfRange) {
			panic(r)
		}
		*z = c.check(bigdecimal.Zero, err)
	}
}

// Parse returns the value of s.
func (c *Context) Parse(s string) bigdecimal.Decimal {
	if c.err != nil {
		return bigdecimal.Zero
	}
	return c.check(c.c.Parse(s))
}

// NewInt64 returns x with c's policy applied.
func (c *Context) NewInt64(x int64) bigdecimal.Decimal {
	if c.err != nil {
		return bigdecimal.Zero
	}
	return c.c.Apply(bigdecimal.FromInt64(x))
}

// Add returns x+y.
func (c *Context) Add(x, y bigdecimal.Decimal) (z bigdecimal.Decimal) {
	if c.err != nil {
		return bigdecimal.Zero
	}
	defer c.catch(&z)
	return c.c.Add(x, y)
}

// Sub returns x-y.
func (c *Context) Sub(x, y bigdecimal.Decimal) (z bigdecimal.Decimal) {
	if c.err != nil {
		return bigdecimal.Zero
	}
	defer c.catch(&z)
	return c.c.Sub(x, y)
}

// Mul returns x×y.
func (c *Context) Mul(x, y bigdecimal.Decimal) (z bigdecimal.Decimal) {
	if c.err != nil {
		return bigdecimal.Zero
	}
	defer c.catch(&z)
	return c.c.Mul(x, y)
}

// Quo returns x/y.
func (c *Context) Quo(x, y bigdecimal.Decimal) bigdecimal.Decimal {
	if c.err != nil {
		return bigdecimal.Zero
	}
	return c.check(c.c.Quo(x, y))
}

// Mod returns x mod y.
func (c *Context) Mod(x, y bigdecimal.Decimal) bigdecimal.Decimal {
	if c.err != nil {
		return bigdecimal.Zero
	}
	return c.check(c.c.Mod(x, y))
}

// Neg returns -x.
func (c *Context) Neg(x bigdecimal.Decimal) bigdecimal.Decimal {
	if c.err != nil {
		return bigdecimal.Zero
	}
	return c.c.Neg(x)
}

// Abs returns |x|.
func (c *Context) Abs(x bigdecimal.Decimal) bigdecimal.Decimal {
	if c.err != nil {
		return bigdecimal.Zero
	}
	return c.c.Abs(x)
}

// Pow returns x**n.
func (c *Context) Pow(x bigdecimal.Decimal, n int) bigdecimal.Decimal {
	if c.err != nil {
		return bigdecimal.Zero
	}
	return c.check(c.c.Pow(x, n))
}

// Sqrt returns √x truncated to c.Places() decimal places.
func (c *Context) Sqrt(x bigdecimal.Decimal) bigdecimal.Decimal {
	if c.err != nil {
		return bigdecimal.Zero
	}
	return c.check(c.c.Sqrt(x, c.places))
}

// NthRoot returns the n-th root of x truncated to c.Places() decimal places.
func (c *Context) NthRoot(x bigdecimal.Decimal, n int) bigdecimal.Decimal {
	if c.err != nil {
		return bigdecimal.Zero
	}
	return c.check(c.c.NthRoot(x, n, c.places))
}

// A Func is a function of the math package taking one argument.
type Func func(c bigdecimal.Context, x bigdecimal.Decimal, prec int) (bigdecimal.Decimal, error)

// Call returns f(x) rounded to c.Places() decimal places.
func (c *Context) Call(f Func, x bigdecimal.Decimal) bigdecimal.Decimal {
	if c.err != nil {
		return bigdecimal.Zero
	}
	return c.check(f(c.c, x, c.places))
}

// Exp returns e**x.
func (c *Context) Exp(x bigdecimal.Decimal) bigdecimal.Decimal { return c.Call(math.Exp, x) }

// Ln returns the natural logarithm of x.
func (c *Context) Ln(x bigdecimal.Decimal) bigdecimal.Decimal { return c.Call(math.Ln, x) }

// Log returns the logarithm of x in the given base.
func (c *Context) Log(x, base bigdecimal.Decimal) bigdecimal.Decimal {
	if c.err != nil {
		return bigdecimal.Zero
	}
	return c.check(math.Log(c.c, x, base, c.places))
}

// PowReal returns x**y for a real exponent y.
func (c *Context) PowReal(x, y bigdecimal.Decimal) bigdecimal.Decimal {
	if c.err != nil {
		return bigdecimal.Zero
	}
	return c.check(math.Pow(c.c, x, y, c.places))
}

// Sin returns the sine of x.
func (c *Context) Sin(x bigdecimal.Decimal) bigdecimal.Decimal {
	if c.err != nil {
		return bigdecimal.Zero
	}
	return math.Sin(c.c, x, c.places)
}

// Cos returns the cosine of x.
func (c *Context) Cos(x bigdecimal.Decimal) bigdecimal.Decimal {
	if c.err != nil {
		return bigdecimal.Zero
	}
	return math.Cos(c.c, x, c.places)
}

// Tan returns the tangent of x.
func (c *Context) Tan(x bigdecimal.Decimal) bigdecimal.Decimal { return c.Call(math.Tan, x) }

// Asin returns the arcsine of x.
func (c *Context) Asin(x bigdecimal.Decimal) bigdecimal.Decimal { return c.Call(math.Asin, x) }

// Acos returns the arccosine of x.
func (c *Context) Acos(x bigdecimal.Decimal) bigdecimal.Decimal { return c.Call(math.Acos, x) }

// Atan returns the arctangent of x.
func (c *Context) Atan(x bigdecimal.Decimal) bigdecimal.Decimal {
	if c.err != nil {
		return bigdecimal.Zero
	}
	return math.Atan(c.c, x, c.places)
}
