// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements string-to-Decimal conversion.

package bigdecimal

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// numChars are the characters that survive the clean-up pass of Parse.
const numChars = "0123456789+-.eE"

// Parse parses s as a decimal number and returns its value with c's policy
// applied.
//
// The number must be of the form:
//
//	number   = [ sign ] mantissa [ exponent ] .
//	sign     = "+" | "-" .
//	mantissa = digits "." [ digits ] | digits | "." digits .
//	exponent = ( "e" | "E" ) [ sign ] digits .
//	digits   = digit { digit } .
//	digit    = "0" ... "9" .
//
// Parse is lenient: characters other than digits, signs, '.', 'e' and 'E' are
// dropped before parsing, so that "1_000", "1 000" or "$12.50" are accepted.
// An empty or blank string parses as Zero. Any other input that does not
// match the grammar after clean-up fails with ErrFormat.
func (c Context) Parse(s string) (Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return Zero, nil
	}
	t := strings.Map(func(r rune) rune {
		if strings.ContainsRune(numChars, r) {
			return r
		}
		return -1
	}, s)

	mant, exp, err := splitNumber(t)
	if err != nil {
		return Zero, errors.Wrapf(err, "parse %q", s)
	}

	neg := false
	switch {
	case strings.HasPrefix(mant, "-"):
		neg = true
		mant = mant[1:]
	case strings.HasPrefix(mant, "+"):
		mant = mant[1:]
	}
	ip, fp := mant, ""
	if i := strings.IndexByte(mant, '.'); i >= 0 {
		ip, fp = mant[:i], mant[i+1:]
	}
	if ip == "" && fp == "" || !isDigits(ip) || !isDigits(fp) {
		return Zero, errors.Wrapf(ErrFormat, "parse %q: malformed mantissa", s)
	}

	m, ok := new(big.Int).SetString(ip+fp, 10)
	if !ok {
		return Zero, errors.Wrapf(ErrFormat, "parse %q", s)
	}
	if neg {
		m.Neg(m)
	}
	x, err := c.result(m, exp-len(fp))
	if err != nil {
		return Zero, errors.Wrapf(err, "parse %q", s)
	}
	return x, nil
}

// splitNumber splits s into its mantissa and its decoded exponent.
func splitNumber(s string) (mant string, exp int, err error) {
	i := strings.IndexAny(s, "eE")
	if i < 0 {
		return s, 0, nil
	}
	mant, es := s[:i], s[i+1:]
	if strings.ContainsAny(es, "eE") {
		return "", 0, errors.Wrap(ErrFormat, "more than one exponent")
	}
	// strconv.Atoi accepts a leading sign
	exp, err = strconv.Atoi(es)
	if err != nil {
		return "", 0, errors.Wrapf(ErrFormat, "invalid exponent %q", es)
	}
	if exp < MinExp || exp > MaxExp {
		return "", 0, errors.Wrapf(ErrOutOfRange, "exponent %s", es)
	}
	return mant, exp, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Parse is like Default().Parse(s).
func Parse(s string) (Decimal, error) {
	return Default().Parse(s)
}

// MustParse is like Parse but panics if s cannot be parsed. It simplifies
// safe initialization of global variables holding decimal constants.
func MustParse(s string) Decimal {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}
