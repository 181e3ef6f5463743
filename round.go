// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigdecimal

import (
	"math/big"
	"strconv"
)

// RoundingMode determines how a value exactly halfway between two candidates
// is rounded. Values that are not at a midpoint are always rounded to the
// nearest candidate.
type RoundingMode byte

// These constants define supported rounding modes.
const (
	MidpointAwayFromZero RoundingMode = iota // 2.5 → 3, -2.5 → -3
	MidpointToEven                           // 2.5 → 2, 3.5 → 4
)

func (m RoundingMode) String() string {
	switch m {
	case MidpointAwayFromZero:
		return "MidpointAwayFromZero"
	case MidpointToEven:
		return "MidpointToEven"
	}
	return "RoundingMode(" + strconv.Itoa(int(m)) + ")"
}

// roundShr returns m / 10**s rounded to the nearest integer according to
// mode, s > 0.
func roundShr(m *big.Int, s int, mode RoundingMode) *big.Int {
	p := pow10(s)
	q, r := new(big.Int).QuoRem(m, p, new(big.Int))
	if r.Sign() == 0 {
		return q
	}
	// compare 2|r| with 10**s
	r.Abs(r)
	r.Lsh(r, 1)
	switch c := r.Cmp(p); {
	case c > 0, c == 0 && (mode == MidpointAwayFromZero || q.Bit(0) != 0):
		if m.Sign() < 0 {
			q.Sub(q, bigOne)
		} else {
			q.Add(q, bigOne)
		}
	}
	return q
}

// Round returns x rounded to the nearest integer. Midpoints are resolved
// according to mode.
func (x Decimal) Round(mode RoundingMode) Decimal {
	return x.RoundTo(0, mode)
}

// RoundTo returns x rounded to the given number of decimal places. A negative
// places rounds to the left of the decimal point: RoundTo(-2, m) rounds to a
// multiple of 100.
func (x Decimal) RoundTo(places int, mode RoundingMode) Decimal {
	s := -x.exp - places
	if s <= 0 || x.Sign() == 0 {
		return x
	}
	return Default().finish(roundShr(x.mant, s, mode), -places)
}

// Trunc returns the integer part of x as a Decimal, discarding the fractional
// digits.
func (x Decimal) Trunc() Decimal {
	if x.exp >= 0 {
		return x
	}
	return Default().finish(shr10(x.mant, -x.exp), 0)
}

// Floor returns the largest integer value less than or equal to x.
func (x Decimal) Floor() Decimal {
	if x.exp >= 0 {
		return x
	}
	w := x.WholePart()
	if x.Sign() < 0 {
		w.Sub(w, bigOne)
	}
	return Default().finish(w, 0)
}

// Ceiling returns the smallest integer value greater than or equal to x.
func (x Decimal) Ceiling() Decimal {
	if x.exp >= 0 {
		return x
	}
	w := x.WholePart()
	if x.Sign() > 0 {
		w.Add(w, bigOne)
	}
	return Default().finish(w, 0)
}
