// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigdecimal

import (
	"math"
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntConversions(t *testing.T) {
	i, err := MustParse("-12.9").Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(-12), i)

	i32, err := MustParse("2147483647.5").Int32()
	require.NoError(t, err)
	assert.Equal(t, int32(math.MaxInt32), i32)

	u, err := MustParse("18446744073709551615").Uint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), u)

	assert.Equal(t, "123", MustParse("123.9").BigInt().String())

	for _, f := range []func() error{
		func() error { _, err := MustParse("1e19").Int64(); return err },
		func() error { _, err := MustParse("3000000000").Int32(); return err },
		func() error { _, err := MustParse("-3000000000").Int32(); return err },
		func() error { _, err := MustParse("-1").Uint64(); return err },
		func() error { _, err := MustParse("18446744073709551616").Uint64(); return err },
	} {
		assert.True(t, errors.Is(f(), ErrOutOfRange))
	}
}

func TestFloatConversions(t *testing.T) {
	f, err := MustParse("0.1").Float64()
	require.NoError(t, err)
	assert.Equal(t, 0.1, f)

	f, err = MustParse("-123456.789e-3").Float64()
	require.NoError(t, err)
	assert.Equal(t, -123.456789, f)

	f32, err := MustParse("0.1").Float32()
	require.NoError(t, err)
	assert.Equal(t, float32(0.1), f32)

	_, err = MustParse("1e400").Float64()
	assert.True(t, errors.Is(err, ErrOutOfRange))
	_, err = MustParse("1e39").Float32()
	assert.True(t, errors.Is(err, ErrOutOfRange))

	for _, d := range []struct {
		f    float64
		want string
	}{
		{0.1, "0.1"},
		{-2.5e-7, "-0.00000025"},
		{1e21, "1000000000000000000000"},
		{0, "0"},
		{math.MaxInt32, "2147483647"},
	} {
		x, err := FromFloat64(d.f)
		require.NoError(t, err)
		assert.Equal(t, d.want, x.String(), "FromFloat64(%g)", d.f)
	}
	x, err := FromFloat32(0.1)
	require.NoError(t, err)
	assert.Equal(t, "0.1", x.String())

	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := FromFloat64(f)
		assert.True(t, errors.Is(err, ErrOutOfRange), "FromFloat64(%g)", f)
	}
}

func TestRat(t *testing.T) {
	assert.Equal(t, "-5/4", MustParse("-1.25").Rat().String())
	assert.Equal(t, "1200/1", MustParse("1.2e3").Rat().String())

	c := Context{Precision: 5}
	assert.Equal(t, "0.33333", c.FromRat(big.NewRat(1, 3)).String())
	assert.Equal(t, "0.75", c.FromRat(big.NewRat(3, 4)).String())
	assert.Equal(t, "5", c.FromRat(big.NewRat(10, 2)).String())
	assert.Equal(t, "-0.125", c.FromRat(big.NewRat(-1, 8)).String())
}

func TestShopspring(t *testing.T) {
	x := FromShopspring(decimal.RequireFromString("-12.3400"))
	assert.Equal(t, "-12.34", x.String())

	d, err := MustParse("1.5").Shopspring()
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.New(15, -1)))

	d, err = MustParse("-0.000123").Shopspring()
	require.NoError(t, err)
	assert.Equal(t, "-0.000123", d.String())

	_, err = Decimal{mant: big.NewInt(1), exp: math.MaxInt32 + 1}.Shopspring()
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestUint256(t *testing.T) {
	assert.Equal(t, "42", FromUint256(uint256.NewInt(42)).String())
	assert.Equal(t, "1000", FromUint256(uint256.NewInt(1000)).String())

	u, err := MustParse("12.7").Uint256()
	require.NoError(t, err)
	assert.Equal(t, uint64(12), u.Uint64())

	maxU := new(uint256.Int).SetAllOne()
	u, err = FromUint256(maxU).Uint256()
	require.NoError(t, err)
	assert.True(t, u.Eq(maxU))

	_, err = MustParse("-1").Uint256()
	assert.True(t, errors.Is(err, ErrOutOfRange))
	_, err = MustParse("1e78").Uint256()
	assert.True(t, errors.Is(err, ErrOutOfRange))
}
