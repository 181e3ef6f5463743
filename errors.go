// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigdecimal

import "github.com/pkg/errors"

// Error kinds returned by Decimal operations. Errors are wrapped with details
// about the failing operation; use errors.Is to test for a specific kind.
var (
	// ErrFormat is returned when a string cannot be parsed as a decimal.
	ErrFormat = errors.New("invalid decimal format")
	// ErrDivideByZero is returned by divisions and modulo with a zero divisor.
	ErrDivideByZero = errors.New("division by zero")
	// ErrDomain is returned when an argument lies outside the mathematical
	// domain of a function, e.g. the square root of a negative number.
	ErrDomain = errors.New("argument outside of function domain")
	// ErrOutOfRange is returned for arguments outside a restricted domain,
	// like the inverse trigonometric functions, and for narrowing conversions
	// that overflow the target type.
	ErrOutOfRange = errors.New("value out of range")
	// ErrUndefinedResult is returned when the argument of a function is one of
	// its poles.
	ErrUndefinedResult = errors.New("undefined result")
)
