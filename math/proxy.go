// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import "github.com/db47h/bigdecimal"

// Sqrt returns √x truncated to prec decimal places. It fails with ErrDomain
// if x < 0.
//
// This function is a proxy for c.Sqrt(x, prec)
func Sqrt(c bigdecimal.Context, x bigdecimal.Decimal, prec int) (bigdecimal.Decimal, error) {
	return c.Sqrt(x, prec)
}

// NthRoot returns the n-th root of x truncated to prec decimal places. It
// fails with ErrDomain if n < 1 or x < 0.
//
// This function is a proxy for c.NthRoot(x, n, prec)
func NthRoot(c bigdecimal.Context, x bigdecimal.Decimal, n, prec int) (bigdecimal.Decimal, error) {
	return c.NthRoot(x, n, prec)
}
