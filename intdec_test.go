// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the IDec type used for testing Decimal operations via
// an independent (albeit slower) representation of decimal numbers.

package bigdecimal

import (
	"math/big"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// IDec is a decimal number. Its value is mant x 10**exp.
type IDec struct {
	mant big.Int
	exp  int
}

var iTen = big.NewInt(10)

// norm strips trailing zeros one digit at a time.
func (z *IDec) norm() *IDec {
	if z.mant.Sign() == 0 {
		z.exp = 0
		return z
	}
	var q, r big.Int
	for {
		q.QuoRem(&z.mant, iTen, &r)
		if r.Sign() != 0 {
			break
		}
		z.mant.Set(&q)
		z.exp++
	}
	return z
}

func (z *IDec) SetString(s string) *IDec {
	var e = "0"
	if i := strings.Index(s, "e"); i >= 0 {
		e = s[i+1:]
		s = s[:i]
	}
	z.exp = 0
	if i := strings.Index(s, "."); i >= 0 {
		z.exp = i - len(s) + 1
		s = s[:i] + s[i+1:]
	}
	if _, ok := z.mant.SetString(s, 10); !ok {
		panic("(*IDec).SetString: (*big.Int).SetString failed")
	}
	exp, err := strconv.Atoi(e)
	if err != nil {
		panic(err)
	}
	z.exp += exp
	return z.norm()
}

func (x *IDec) String() string {
	b := x.mant.Append(nil, 10)
	if x.exp != 0 {
		b = append(b, 'e')
		b = strconv.AppendInt(b, int64(x.exp), 10)
	}
	return string(b)
}

func intPow10(exp int) *big.Int {
	if exp < 0 {
		panic("intPow10: negative exponent")
	}
	return new(big.Int).Exp(iTen, big.NewInt(int64(exp)), nil)
}

func (x *IDec) shl(exp int) *big.Int {
	return new(big.Int).Mul(&x.mant, intPow10(exp))
}

func (x *IDec) Add(y *IDec) *IDec {
	z := new(IDec)
	switch {
	case x.exp > y.exp:
		z.exp = y.exp
		z.mant.Add(x.shl(x.exp-y.exp), &y.mant)
	case x.exp < y.exp:
		z.exp = x.exp
		z.mant.Add(&x.mant, y.shl(y.exp-x.exp))
	default:
		z.exp = x.exp
		z.mant.Add(&x.mant, &y.mant)
	}
	return z.norm()
}

func (x *IDec) Mul(y *IDec) *IDec {
	z := new(IDec)
	z.mant.Mul(&x.mant, &y.mant)
	z.exp = x.exp + y.exp
	return z.norm()
}

// magnitude returns the number of digits of x's mantissa, counted the slow
// way.
func (x *IDec) magnitude() int {
	s := new(big.Int).Abs(&x.mant).String()
	if s == "0" {
		return 0
	}
	return len(s)
}

// Decimal returns x as a Decimal, bypassing Context.
func (x *IDec) Decimal() Decimal {
	if x.mant.Sign() == 0 {
		return Zero
	}
	return Decimal{mant: new(big.Int).Set(&x.mant), exp: x.exp}
}

// randIDec returns a random IDec with up to n digits and an exponent in
// [-e, e].
func randIDec(rnd *rand.Rand, n, e int) *IDec {
	z := new(IDec)
	z.mant.Rand(rnd, intPow10(rnd.Intn(n)+1))
	if rnd.Intn(2) == 0 {
		z.mant.Neg(&z.mant)
	}
	z.exp = rnd.Intn(2*e+1) - e
	return z.norm()
}

func TestIDecArith(t *testing.T) {
	for _, d := range []struct {
		op   byte
		x, y string
		want string
	}{
		{'*', "0", "0", "0"},
		{'*', "12.1e-1", "1", "121e-2"},
		{'*', "120e-1", "1", "12"},
		{'*', "-12e-1", "100", "-12e1"},
		{'*', "25e3", "4e-5", "1"},
		{'+', "0", "0", "0"},
		{'+', "120e-1", "1", "13"},
		{'+', "12e-1", "100", "1012e-1"},
		{'+', "10", "21e-1", "121e-1"},
		{'+', "-5e-1", "0.5", "0"},
	} {
		x := new(IDec).SetString(d.x)
		y := new(IDec).SetString(d.y)
		var got *IDec
		if d.op == '*' {
			got = x.Mul(y)
		} else {
			got = x.Add(y)
		}
		assert.Equal(t, new(IDec).SetString(d.want).String(), got.String(), "%v %c %v", x, d.op, y)
	}
}
