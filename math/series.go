// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"math/big"

	"github.com/db47h/bigdecimal"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// A Series describes the convergent power series
//
//	Sum + Σ Sign**k × X**n / d(n),  n = Start + k×Step, k = 0, 1, 2...
//
// where d(n) is n! if Factorial is set, n otherwise.
//
// For instance, sin(x) is Series{X: x, Start: 1, Step: 2, Sign: -1,
// Factorial: true} and exp(x) is Series{X: x, Sum: One, Start: 1, Step: 1,
// Sign: 1, Factorial: true}.
type Series struct {
	X         bigdecimal.Decimal
	Sum       bigdecimal.Decimal // initial value of the accumulator
	Start     int                // index of the first term
	Step      int                // index stride, 1 or more
	Sign      int                // -1 for alternating series
	Factorial bool               // n! denominators instead of n
}

// Eval sums the series until a term is smaller than 10**-(places+1) in
// absolute value, or after 2×places terms, whichever comes first. The result
// is rounded to places decimal places. c's logger receives convergence
// traces.
//
// Eval panics if Step < 1, or if Start < 1 and Factorial is not set.
func (s Series) Eval(c bigdecimal.Context, places int) bigdecimal.Decimal {
	if s.Step < 1 || !s.Factorial && s.Start < 1 {
		panic("math: invalid series parameters")
	}
	if places < 1 {
		places = 1
	}
	var (
		log     = c.Log()
		eps     = bigdecimal.New(1, -(places + 1))
		maxIter = 2 * places
		acc     = s.Sum
		n       = s.Start
		neg     = false
		xp      = pow(s.X, s.Start, places+guardDigits) // X**n
		xs      = pow(s.X, s.Step, places+guardDigits)  // X**Step
		fact    = Factorial(n)
		i       int
	)
	for i = 0; i < maxIter; i++ {
		var d bigdecimal.Decimal
		if s.Factorial {
			d = bigdecimal.NewFromBigInt(fact, 0)
		} else {
			d = bigdecimal.New(int64(n), 0)
		}
		t := quo(xp, d, places+guardDigits)
		if neg {
			t = t.Neg()
		}
		acc = acc.Add(t)
		if t.CmpAbs(eps) < 0 {
			break
		}

		// next term
		if s.Sign < 0 {
			neg = !neg
		}
		xp = rnd(xp.Mul(xs), places+guardDigits)
		if s.Factorial {
			fact = new(big.Int).Mul(fact, productRange(n+1, n+s.Step))
		}
		n += s.Step
	}
	if i == maxIter {
		log.Warn("series did not converge",
			zap.Int("places", places),
			zap.Int("terms", i),
			zap.Stringer("x", s.X))
	} else {
		log.Debug("series converged",
			zap.Int("places", places),
			zap.Int("terms", i+1))
	}
	return rnd(acc, places)
}

// factorials are cached by argument.
var factCache = mustLRU[int, *big.Int](1024)

func mustLRU[K comparable, V any](size int) *lru.Cache[K, V] {
	c, err := lru.New[K, V](size)
	if err != nil {
		panic(err)
	}
	return c
}

// Factorial returns n!. It returns 1 for n < 2. The returned value is shared
// and must not be modified.
func Factorial(n int) *big.Int {
	if n < 2 {
		return big.NewInt(1)
	}
	if f, ok := factCache.Get(n); ok {
		return f
	}
	f := productRange(1, n)
	factCache.Add(n, f)
	return f
}

// productRange returns lo × (lo+1) × ... × hi, or 1 if lo > hi. The range is
// split in halves recursively so that the factors multiplied together have
// similar sizes.
func productRange(lo, hi int) *big.Int {
	switch {
	case lo > hi:
		return big.NewInt(1)
	case lo == hi:
		return big.NewInt(int64(lo))
	case hi-lo == 1:
		return new(big.Int).Mul(big.NewInt(int64(lo)), big.NewInt(int64(hi)))
	}
	m := int(uint(lo+hi) >> 1)
	return new(big.Int).Mul(productRange(lo, m), productRange(m+1, hi))
}
