// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements conversions from and to other number libraries.

package bigdecimal

import (
	"math"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// FromShopspring returns d as a Decimal. The conversion is exact.
func FromShopspring(d decimal.Decimal) Decimal {
	return Default().finish(d.Coefficient(), int(d.Exponent()))
}

// Shopspring returns x as a shopspring decimal. It fails with ErrOutOfRange
// if the exponent of x does not fit in an int32.
func (x Decimal) Shopspring() (decimal.Decimal, error) {
	if x.exp < math.MinInt32 || x.exp > math.MaxInt32 {
		return decimal.Zero, errors.Wrapf(ErrOutOfRange, "exponent %d overflows int32", x.exp)
	}
	return decimal.NewFromBigInt(x.m(), int32(x.exp)), nil
}

// FromUint256 returns u as a Decimal.
func FromUint256(u *uint256.Int) Decimal {
	return Default().finish(u.ToBig(), 0)
}

// Uint256 returns the integer part of x as a 256 bits unsigned integer. It
// fails with ErrOutOfRange if x is negative or too large.
func (x Decimal) Uint256() (*uint256.Int, error) {
	if x.Sign() < 0 {
		return nil, errors.Wrapf(ErrOutOfRange, "%s is negative", x)
	}
	u, overflow := uint256.FromBig(x.WholePart())
	if overflow {
		return nil, errors.Wrapf(ErrOutOfRange, "%s overflows uint256", x)
	}
	return u, nil
}
