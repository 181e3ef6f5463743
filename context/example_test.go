// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package context_test

import (
	"fmt"

	"github.com/db47h/bigdecimal"
	"github.com/db47h/bigdecimal/context"
	"github.com/pkg/errors"
)

var (
	_four = bigdecimal.New(-4, 0)
	two   = bigdecimal.New(2, 0)
)

// solve solves the quadratic equation ax² + bx + c = 0, using ctx's precision
// policy. It can fail with various combinations of inputs, for example a = 0,
// b = 2, c = -3 will result in dividing zero by zero when computing x0. So we
// need to check errors.
func solve(ctx *context.Context, a, b, c bigdecimal.Decimal) (x0, x1 bigdecimal.Decimal, err error) {
	// compute discriminant
	d := ctx.Mul(a, _four)        // d = a × -4
	d = ctx.Mul(d, c)             //     × c
	d = ctx.Add(ctx.Mul(b, b), d) //     + b × b
	if err = ctx.Err(); err != nil {
		return x0, x1, errors.Wrap(err, "error computing discriminant")
	}
	if d.Sign() < 0 {
		return x0, x1, errors.New("no real roots")
	}
	// d = √d
	d = ctx.Sqrt(d)
	twoA := ctx.Mul(a, two)
	negB := ctx.Neg(b)

	x0 = ctx.Quo(ctx.Add(negB, d), twoA)
	x1 = ctx.Quo(ctx.Sub(negB, d), twoA)

	if err = ctx.Err(); err != nil {
		return x0, x1, errors.Wrap(err, "error computing roots")
	}
	return
}

// Example demonstrates various features of Contexts.
func Example() {
	ctx := context.New(bigdecimal.Default(), 20)
	a, b, c := ctx.NewInt64(1), ctx.NewInt64(2), ctx.NewInt64(-3)
	x0, x1, err := solve(ctx, a, b, c)
	if err != nil {
		fmt.Printf("failed to solve %v×x²%+vx%+v: %v\n", a, b, c, err)
		return
	}
	fmt.Printf("roots of %v×x²%+vx%+v: %v, %v\n", a, b, c, x0, x1)

	a = bigdecimal.Zero
	x0, x1, err = solve(ctx, a, b, c)
	if err != nil {
		// obviously, our solve() algorithm cannot handle a == 0
		fmt.Printf("failed to solve %v×x²%+vx%+v: %v\n", a, b, c, err)
		return
	}
	fmt.Printf("roots of %v×x²%+vx%+v: %v, %v\n", a, b, c, x0, x1)
	//
	// Output:
	// roots of 1×x²+2x-3: 1, -3
	// failed to solve 0×x²+2x-3: error computing roots: 0 / 0: division by zero
}
