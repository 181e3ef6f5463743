// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calc maps operation names to Decimal functions for the command line
// tool.
package calc

import (
	"sort"

	"github.com/db47h/bigdecimal"
	"github.com/db47h/bigdecimal/math"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrUnknownOp is returned by Eval for operations that are not registered.
var ErrUnknownOp = errors.New("unknown operation")

// ErrArity is returned by Eval when an operation gets the wrong number of
// arguments.
var ErrArity = errors.New("wrong number of arguments")

// Variadic is the arity of operations taking one or more arguments.
const Variadic = -1

// Env holds the parameters shared by all operations.
type Env struct {
	Context bigdecimal.Context
	// Places is the number of decimal places of roots and transcendental
	// results.
	Places int
}

// An Op is a named operation.
type Op struct {
	Name  string
	Arity int
	Help  string
	eval  func(env Env, args []bigdecimal.Decimal) (bigdecimal.Decimal, error)
}

type unary func(bigdecimal.Context, bigdecimal.Decimal, int) (bigdecimal.Decimal, error)

type total func(bigdecimal.Context, bigdecimal.Decimal, int) bigdecimal.Decimal

func fn(name string, f unary, help string) Op {
	return Op{name, 1, help, func(env Env, args []bigdecimal.Decimal) (bigdecimal.Decimal, error) {
		return f(env.Context, args[0], env.Places)
	}}
}

func fnTotal(name string, f total, help string) Op {
	return Op{name, 1, help, func(env Env, args []bigdecimal.Decimal) (bigdecimal.Decimal, error) {
		return f(env.Context, args[0], env.Places), nil
	}}
}

// intArg returns x as an int.
func intArg(x bigdecimal.Decimal, what string) (int, error) {
	if !x.IsInt() {
		return 0, errors.Wrapf(bigdecimal.ErrDomain, "non-integer %s %s", what, x)
	}
	n, err := x.Int32()
	if err != nil {
		return 0, errors.Wrap(err, what)
	}
	return int(n), nil
}

var ops = []Op{
	{"add", 2, "x + y", func(env Env, a []bigdecimal.Decimal) (bigdecimal.Decimal, error) {
		return env.Context.Add(a[0], a[1]), nil
	}},
	{"sub", 2, "x - y", func(env Env, a []bigdecimal.Decimal) (bigdecimal.Decimal, error) {
		return env.Context.Sub(a[0], a[1]), nil
	}},
	{"mul", 2, "x × y", func(env Env, a []bigdecimal.Decimal) (bigdecimal.Decimal, error) {
		return env.Context.Mul(a[0], a[1]), nil
	}},
	{"quo", 2, "x / y to the context precision", func(env Env, a []bigdecimal.Decimal) (bigdecimal.Decimal, error) {
		return env.Context.Quo(a[0], a[1])
	}},
	{"mod", 2, "x mod y, floored", func(env Env, a []bigdecimal.Decimal) (bigdecimal.Decimal, error) {
		return env.Context.Mod(a[0], a[1])
	}},
	{"pow", 2, "x**y", func(env Env, a []bigdecimal.Decimal) (bigdecimal.Decimal, error) {
		return math.Pow(env.Context, a[0], a[1], env.Places)
	}},
	{"neg", 1, "-x", func(env Env, a []bigdecimal.Decimal) (bigdecimal.Decimal, error) {
		return env.Context.Neg(a[0]), nil
	}},
	{"abs", 1, "|x|", func(env Env, a []bigdecimal.Decimal) (bigdecimal.Decimal, error) {
		return env.Context.Abs(a[0]), nil
	}},
	{"sum", Variadic, "sum of the arguments", func(env Env, a []bigdecimal.Decimal) (bigdecimal.Decimal, error) {
		return env.Context.Sum(a...), nil
	}},
	{"avg", Variadic, "mean of the arguments", func(env Env, a []bigdecimal.Decimal) (bigdecimal.Decimal, error) {
		return env.Context.Avg(a...), nil
	}},
	{"root", 2, "n-th root of x, truncated", func(env Env, a []bigdecimal.Decimal) (bigdecimal.Decimal, error) {
		n, err := intArg(a[1], "root order")
		if err != nil {
			return bigdecimal.Zero, err
		}
		return env.Context.NthRoot(a[0], n, env.Places)
	}},
	{"log", 2, "logarithm of x in base y", func(env Env, a []bigdecimal.Decimal) (bigdecimal.Decimal, error) {
		return math.Log(env.Context, a[0], a[1], env.Places)
	}},
	{"fact", 1, "x!", func(env Env, a []bigdecimal.Decimal) (bigdecimal.Decimal, error) {
		n, err := intArg(a[0], "factorial argument")
		if err != nil {
			return bigdecimal.Zero, err
		}
		if n < 0 {
			return bigdecimal.Zero, errors.Wrapf(bigdecimal.ErrDomain, "factorial of %d", n)
		}
		return env.Context.New(math.Factorial(n), 0), nil
	}},
	{"pi", 0, "π", func(env Env, _ []bigdecimal.Decimal) (bigdecimal.Decimal, error) {
		return math.Pi(env.Context, env.Places), nil
	}},
	{"e", 0, "Euler's number", func(env Env, _ []bigdecimal.Decimal) (bigdecimal.Decimal, error) {
		return math.E(env.Context, env.Places), nil
	}},
	fn("sqrt", math.Sqrt, "√x, truncated"),
	fn("exp", math.Exp, "e**x"),
	fn("ln", math.Ln, "natural logarithm"),
	fn("log10", math.Log10, "decimal logarithm"),
	fn("log2", math.Log2, "binary logarithm"),
	fnTotal("sin", math.Sin, "sine"),
	fnTotal("cos", math.Cos, "cosine"),
	fn("tan", math.Tan, "tangent"),
	fn("cot", math.Cot, "cotangent"),
	fn("sec", math.Sec, "secant"),
	fn("csc", math.Csc, "cosecant"),
	fn("asin", math.Asin, "arcsine"),
	fn("acos", math.Acos, "arccosine"),
	fnTotal("atan", math.Atan, "arctangent"),
	fnTotal("acot", math.Acot, "arccotangent"),
	fn("asec", math.Asec, "arcsecant"),
	fn("acsc", math.Acsc, "arccosecant"),
	fn("sinh", math.Sinh, "hyperbolic sine"),
	fn("cosh", math.Cosh, "hyperbolic cosine"),
	fnTotal("tanh", math.Tanh, "hyperbolic tangent"),
	fn("coth", math.Coth, "hyperbolic cotangent"),
	fnTotal("sech", math.Sech, "hyperbolic secant"),
	fn("csch", math.Csch, "hyperbolic cosecant"),
	fnTotal("asinh", math.Asinh, "inverse hyperbolic sine"),
	fn("acosh", math.Acosh, "inverse hyperbolic cosine"),
	fn("atanh", math.Atanh, "inverse hyperbolic tangent"),
	fn("acoth", math.Acoth, "inverse hyperbolic cotangent"),
	fn("asech", math.Asech, "inverse hyperbolic secant"),
	fn("acsch", math.Acsch, "inverse hyperbolic cosecant"),
}

var registry = func() map[string]Op {
	m := make(map[string]Op, len(ops))
	for _, op := range ops {
		m[op.Name] = op
	}
	return m
}()

// Lookup returns the operation with the given name.
func Lookup(name string) (Op, bool) {
	op, ok := registry[name]
	return op, ok
}

// Ops returns all operations sorted by name.
func Ops() []Op {
	l := make([]Op, len(ops))
	copy(l, ops)
	sort.Slice(l, func(i, j int) bool { return l[i].Name < l[j].Name })
	return l
}

// Eval parses args with env's context and applies the named operation.
//
// Exponent overflows in operations that do not return an error are reported
// as errors wrapping bigdecimal.ErrOutOfRange.
func Eval(env Env, name string, args ...string) (z bigdecimal.Decimal, err error) {
	op, ok := Lookup(name)
	if !ok {
		return bigdecimal.Zero, errors.Wrapf(ErrUnknownOp, "%q", name)
	}
	if op.Arity == Variadic && len(args) == 0 || op.Arity != Variadic && len(args) != op.Arity {
		return bigdecimal.Zero, errors.Wrapf(ErrArity, "%s: got %d", name, len(args))
	}
	xs := make([]bigdecimal.Decimal, len(args))
	for i, s := range args {
		x, err := env.Context.Parse(s)
		if err != nil {
			return bigdecimal.Zero, errors.Wrapf(err, "%s: argument %d", name, i+1)
		}
		xs[i] = x
	}
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok || !errors.Is(e, bigdecimal.ErrOutOfRange) {
				panic(r)
			}
			z, err = bigdecimal.Zero, errors.Wrap(e, name)
		}
	}()
	z, err = op.eval(env, xs)
	if err != nil {
		return bigdecimal.Zero, errors.Wrap(err, name)
	}
	env.Context.Log().Debug("evaluated",
		zap.String("op", name),
		zap.Int("args", len(xs)))
	return z, nil
}
