// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"github.com/db47h/bigdecimal"
	"go.uber.org/zap"
)

// builtinPlaces is the number of decimal places of bigdecimal.Pi and
// bigdecimal.E.
const builtinPlaces = 1100

// values of π computed by pi, by number of places.
var piCache = mustLRU[int, bigdecimal.Decimal](16)

// Pi returns π rounded to prec decimal places.
func Pi(c bigdecimal.Context, prec int) bigdecimal.Decimal {
	return finish(c, pi(c, prec+guardDigits), prec)
}

// pi returns π with at least places correct decimal places.
func pi(c bigdecimal.Context, places int) bigdecimal.Decimal {
	if places <= builtinPlaces {
		return bigdecimal.Pi
	}
	if p, ok := piCache.Get(places); ok {
		return p
	}
	p := gaussLegendre(c, places)
	piCache.Add(places, p)
	return p
}

// gaussLegendre computes π with the Gauss-Legendre algorithm to the given
// number of decimal places.
func gaussLegendre(c bigdecimal.Context, places int) bigdecimal.Decimal {
	var (
		// With only 2 or 4 additional digits there are specific digit
		// counts for which the last digit is off by one.
		pp      = places + guardDigits
		a       = one
		b       = sqrt(half, pp)
		t       = quarter
		p       = one
		epsilon = bigdecimal.New(1, -pp)
		iter    int
	)
	for {
		iter++
		u := a
		a = rnd(a.Add(b).Mul(half), pp) // a_n+1 = (a_n + b_n)/2
		b = sqrt(rnd(u.Mul(b), pp), pp) // b_n+1 = √(a_n × b_n)
		d := u.Sub(a)
		t = rnd(t.Sub(p.Mul(d).Mul(d)), pp) // t_n+1 = t_n - p_n(a_n - a_n+1)²
		if a.Sub(b).CmpAbs(epsilon) <= 0 {
			break
		}
		p = p.Mul(two)
	}
	s := a.Add(b)
	z := quo(rnd(s.Mul(s), pp), t.Mul(four), pp)
	c.Log().Debug("computed π",
		zap.Int("places", places),
		zap.Int("iterations", iter))
	return z.RoundTo(places, bigdecimal.MidpointToEven)
}
