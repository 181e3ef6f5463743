// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Decimal-to-string conversion.

package bigdecimal

import (
	"fmt"
	"strconv"
	"strings"
)

// String returns the canonical representation of x: an optional '-' sign,
// the integer digits and, if x is not an integer, a '.' followed by the
// fractional digits without trailing zeros. Exponent notation is never used.
func (x Decimal) String() string {
	return string(x.Append(nil, 'f', -1))
}

// Sci returns x in scientific notation with all its significant digits, like
// "-1.2345E+6".
func (x Decimal) Sci() string {
	return x.Text('E', -1)
}

// Text converts x to a string according to the given format and precision
// prec. The format is one of:
//
//	'e'	-d.dddde±dd, decimal exponent, at least two (possibly 0) exponent digits
//	'E'	-d.ddddE±dd, decimal exponent, at least two (possibly 0) exponent digits
//	'f'	-ddddd.dddd, no exponent
//
// The precision prec controls the number of digits after the decimal point.
// A negative precision selects the smallest number of digits necessary to
// represent x exactly. Rounding, if any, is to nearest with midpoints to even.
//
// For an unknown format, Text returns a '%' followed by the format
// character.
func (x Decimal) Text(format byte, prec int) string {
	return string(x.Append(make([]byte, 0, x.SignificantDigits()+8), format, prec))
}

// Append appends to buf the string form of x, as generated by x.Text, and
// returns the extended buffer.
func (x Decimal) Append(buf []byte, format byte, prec int) []byte {
	switch format {
	case 'f':
		if prec >= 0 {
			x = x.RoundTo(prec, MidpointToEven)
		}
		return fmtF(buf, x.Normalize(), prec)
	case 'e', 'E':
		if prec >= 0 {
			x = x.roundSig(prec + 1)
		}
		return fmtE(buf, format, x.Normalize(), prec)
	}
	return append(buf, '%', format)
}

// roundSig returns x rounded half to even to n significant digits.
func (x Decimal) roundSig(n int) Decimal {
	if x.Sign() == 0 {
		return Zero
	}
	s := digits(x.mant) - n
	if s <= 0 {
		return x
	}
	return Default().finish(roundShr(x.mant, s, MidpointToEven), x.exp+s)
}

// absDigits returns the decimal digits of |x.mant|.
func (x Decimal) absDigits() string {
	if x.Sign() == 0 {
		return "0"
	}
	ds := x.mant.Text(10)
	if ds[0] == '-' {
		ds = ds[1:]
	}
	return ds
}

// fmtF appends x in 'f' format with prec fractional digits (-1: exact).
func fmtF(buf []byte, x Decimal, prec int) []byte {
	if x.Sign() < 0 {
		buf = append(buf, '-')
	}
	ds := x.absDigits()
	var ip, fp string
	switch {
	case x.exp >= 0:
		ip = ds + strings.Repeat("0", x.exp)
	case len(ds)+x.exp > 0:
		p := len(ds) + x.exp
		ip, fp = ds[:p], ds[p:]
	default:
		ip, fp = "0", strings.Repeat("0", -(len(ds)+x.exp))+ds
	}
	buf = append(buf, ip...)
	if prec > len(fp) {
		fp += strings.Repeat("0", prec-len(fp))
	}
	if fp != "" {
		buf = append(buf, '.')
		buf = append(buf, fp...)
	}
	return buf
}

// fmtE appends x in 'e' or 'E' format with prec fractional digits (-1:
// exact).
func fmtE(buf []byte, format byte, x Decimal, prec int) []byte {
	if x.Sign() < 0 {
		buf = append(buf, '-')
	}
	ds := x.absDigits()
	e := 0
	if x.Sign() != 0 {
		e = len(ds) - 1 + x.exp
	}
	buf = append(buf, ds[0])
	fp := ds[1:]
	if prec > len(fp) {
		fp += strings.Repeat("0", prec-len(fp))
	}
	if fp != "" {
		buf = append(buf, '.')
		buf = append(buf, fp...)
	}
	buf = append(buf, format)
	if e < 0 {
		buf = append(buf, '-')
		e = -e
	} else {
		buf = append(buf, '+')
	}
	if e < 10 {
		buf = append(buf, '0')
	}
	return strconv.AppendInt(buf, int64(e), 10)
}

var _ fmt.Formatter = Decimal{}

// Format implements fmt.Formatter. It accepts the formats 'e', 'E', 'f', 'F'
// ('f' alias), 's' and 'v' (exact 'f'). Format also supports the flags '+',
// ' ', '-' and '0', as well as width and precision. The default precision for
// 'e' and 'f' is 6, like for float64 values.
func (x Decimal) Format(s fmt.State, format rune) {
	prec, hasPrec := s.Precision()
	if !hasPrec {
		prec = 6
	}
	switch format {
	case 'e', 'E', 'f':
	case 'F':
		format = 'f'
	case 'v', 's':
		format = 'f'
		if !hasPrec {
			prec = -1
		}
	default:
		fmt.Fprintf(s, "%%!%c(bigdecimal.Decimal=%s)", format, x.String())
		return
	}

	buf := x.Append(nil, byte(format), prec)
	var sign string
	switch {
	case buf[0] == '-':
		sign = "-"
		buf = buf[1:]
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	var padding int
	if width, hasWidth := s.Width(); hasWidth && width > len(sign)+len(buf) {
		padding = width - len(sign) - len(buf)
	}

	switch {
	case s.Flag('0'):
		// zero padding, right-justified
		writeMultiple(s, sign, 1)
		writeMultiple(s, "0", padding)
		_, _ = s.Write(buf)
	case s.Flag('-'):
		// space padding, left-justified
		writeMultiple(s, sign, 1)
		_, _ = s.Write(buf)
		writeMultiple(s, " ", padding)
	default:
		// space padding, right-justified
		writeMultiple(s, " ", padding)
		writeMultiple(s, sign, 1)
		_, _ = s.Write(buf)
	}
}

// writeMultiple writes count copies of text to s.
func writeMultiple(s fmt.State, text string, count int) {
	if len(text) > 0 {
		b := []byte(text)
		for ; count > 0; count-- {
			_, _ = s.Write(b)
		}
	}
}
