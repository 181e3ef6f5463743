// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigdecimal

import (
	"math"
	"math/big"
	"strconv"

	"github.com/pkg/errors"
)

// Narrowing conversions. They fail with ErrOutOfRange if x does not fit in
// the target type. Integer conversions truncate toward zero.

// BigInt returns the integer part of x.
func (x Decimal) BigInt() *big.Int {
	return x.WholePart()
}

// Int64 returns the integer part of x as an int64.
func (x Decimal) Int64() (int64, error) {
	w := x.WholePart()
	if !w.IsInt64() {
		return 0, errors.Wrapf(ErrOutOfRange, "%s overflows int64", x)
	}
	return w.Int64(), nil
}

// Int32 returns the integer part of x as an int32.
func (x Decimal) Int32() (int32, error) {
	i, err := x.Int64()
	if err != nil || i < math.MinInt32 || i > math.MaxInt32 {
		return 0, errors.Wrapf(ErrOutOfRange, "%s overflows int32", x)
	}
	return int32(i), nil
}

// Uint64 returns the integer part of x as a uint64.
func (x Decimal) Uint64() (uint64, error) {
	w := x.WholePart()
	if !w.IsUint64() {
		return 0, errors.Wrapf(ErrOutOfRange, "%s overflows uint64", x)
	}
	return w.Uint64(), nil
}

// Float64 returns the float64 value nearest to x.
func (x Decimal) Float64() (float64, error) {
	f, err := strconv.ParseFloat(x.Text('e', -1), 64)
	if err != nil {
		return 0, errors.Wrapf(ErrOutOfRange, "%s overflows float64", x)
	}
	return f, nil
}

// Float32 returns the float32 value nearest to x.
func (x Decimal) Float32() (float32, error) {
	f, err := strconv.ParseFloat(x.Text('e', -1), 32)
	if err != nil {
		return 0, errors.Wrapf(ErrOutOfRange, "%s overflows float32", x)
	}
	return float32(f), nil
}

// Rat returns x as an exact rational number.
func (x Decimal) Rat() *big.Rat {
	if x.exp >= 0 {
		return new(big.Rat).SetInt(shl10(x.m(), x.exp))
	}
	return new(big.Rat).SetFrac(x.m(), pow10(-x.exp))
}

// Widening conversions.

// FromFloat64 returns the decimal value of the shortest representation of f
// that round-trips through strconv, i.e. FromFloat64(0.1) is exactly 0.1. It
// fails with ErrOutOfRange for NaN and infinities.
func FromFloat64(f float64) (Decimal, error) {
	return fromFloat(f, 64)
}

// FromFloat32 is like FromFloat64 for float32 values.
func FromFloat32(f float32) (Decimal, error) {
	return fromFloat(float64(f), 32)
}

func fromFloat(f float64, bitSize int) (Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Zero, errors.Wrapf(ErrOutOfRange, "%v is not a finite number", f)
	}
	return Parse(strconv.FormatFloat(f, 'e', -1, bitSize))
}

// FromRat returns r as a Decimal. The result is exact if the denominator of r
// only has 2 and 5 as prime factors, otherwise it is computed with c's
// precision.
func (c Context) FromRat(r *big.Rat) Decimal {
	x := c.New(r.Num(), 0)
	if r.IsInt() {
		return x
	}
	// r.Denom() != 0
	q, _ := c.Quo(x, NewFromBigInt(r.Denom(), 0))
	return q
}
