// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math_test

import (
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/db47h/bigdecimal"
	"github.com/db47h/bigdecimal/math"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestE(t *testing.T) {
	c := bigdecimal.Default()
	assert.Equal(t, "2.71828182845904523536", math.E(c, 20).String())

	b, err := os.ReadFile("testdata/e3000.txt")
	require.NoError(t, err)
	ref := bigdecimal.MustParse(strings.TrimSpace(string(b)))
	for _, prec := range []int{1000, 1200} {
		want := ref.RoundTo(prec, bigdecimal.MidpointToEven)
		assert.True(t, want.Equal(math.E(c, prec)), "e to %d places", prec)
	}
}

func TestExpSpecial(t *testing.T) {
	c := bigdecimal.Default()
	z, err := math.Exp(c, bigdecimal.Zero, 10)
	require.NoError(t, err)
	assert.Equal(t, "1", z.String())

	// underflows to zero, including beyond the float64 range
	for _, s := range []string{"-1000", "-1e309", "-1e400"} {
		z, err = math.Exp(c, bigdecimal.MustParse(s), 30)
		require.NoError(t, err, "exp(%s)", s)
		assert.True(t, z.IsZero(), "exp(%s)", s)
	}

	_, err = math.Exp(c, bigdecimal.New(1, 9), 10)
	assert.True(t, errors.Is(err, bigdecimal.ErrOutOfRange))
	_, err = math.Exp(c, bigdecimal.New(1, 400), 10)
	assert.True(t, errors.Is(err, bigdecimal.ErrOutOfRange))
}

func TestExpLn(t *testing.T) {
	c := bigdecimal.Default()
	for _, s := range []string{"0.5", "3", "42.125", "1e-7", "-2.5"} {
		x := bigdecimal.MustParse(s)
		e, err := math.Exp(c, x, 50)
		require.NoError(t, err)
		l, err := math.Ln(c, e, 40)
		require.NoError(t, err)
		assert.Equal(t, x.String(), l.String(), "ln(exp(%s))", s)
	}
}

func TestPow(t *testing.T) {
	c := bigdecimal.Default()
	for _, d := range []struct {
		x, y string
		want string
	}{
		{"2", "0.5", "1.41421356237309504880168872421"},
		{"1.5", "2.5", "2.755675960631075360471944584044"},
		{"0.1", "0.5", "0.316227766016837933199889354443"},
		{"2.5", "3", "15.625"},
		{"-2", "3", "-8"},
		{"10", "-2", "0.01"},
		{"3", "-1", "0.333333333333333333333333333333"},
		{"7", "0", "1"},
		{"0", "2.5", "0"},
	} {
		got, err := math.Pow(c, bigdecimal.MustParse(d.x), bigdecimal.MustParse(d.y), 30)
		require.NoError(t, err, "%s**%s", d.x, d.y)
		assert.Equal(t, d.want, got.String(), "%s**%s", d.x, d.y)
	}

	_, err := math.Pow(c, bigdecimal.Zero, bigdecimal.MinusOne, 10)
	assert.True(t, errors.Is(err, bigdecimal.ErrDomain))
	_, err = math.Pow(c, bigdecimal.New(-8, 0), bigdecimal.MustParse("0.5"), 10)
	assert.True(t, errors.Is(err, bigdecimal.ErrDomain))
}

func TestPowLargeInteger(t *testing.T) {
	c := bigdecimal.Default()
	// beyond exact integer powers, the sign still follows the parity of y
	x := bigdecimal.MustParse("-1.000001")
	y := bigdecimal.New(100001, 0)
	got, err := math.Pow(c, x, y, 20)
	require.NoError(t, err)
	abs, err := math.Exp(c, y.Mul(mustLn(t, c, x.Neg(), 40)), 20)
	require.NoError(t, err)
	assert.Equal(t, abs.Neg().String(), got.String())
}

func mustLn(t *testing.T, c bigdecimal.Context, x bigdecimal.Decimal, prec int) bigdecimal.Decimal {
	t.Helper()
	l, err := math.Ln(c, x, prec)
	require.NoError(t, err)
	return l
}

func BenchmarkExp(b *testing.B) {
	c := bigdecimal.Default()
	x := bigdecimal.New(373, -2)
	for _, prec := range []int{34, 100, 200, 500, 1000} {
		b.Run(strconv.Itoa(prec), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = math.Exp(c, x, prec)
			}
		})
	}
}
