// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"testing"

	"github.com/db47h/bigdecimal"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval(t *testing.T) {
	env := Env{Context: bigdecimal.Default(), Places: 10}
	for _, d := range []struct {
		op   string
		args []string
		want string
	}{
		{"add", []string{"1.5", "2.25"}, "3.75"},
		{"sub", []string{"1", "0.001"}, "0.999"},
		{"mul", []string{"-1.5", "4"}, "-6"},
		{"quo", []string{"1", "8"}, "0.125"},
		{"mod", []string{"-7", "3"}, "2"},
		{"pow", []string{"2", "10"}, "1024"},
		{"pow", []string{"2", "0.5"}, "1.4142135624"},
		{"neg", []string{"3"}, "-3"},
		{"abs", []string{"-3"}, "3"},
		{"sum", []string{"1", "2", "3", "4"}, "10"},
		{"avg", []string{"1", "2"}, "1.5"},
		{"root", []string{"27", "3"}, "3"},
		{"sqrt", []string{"2"}, "1.4142135623"},
		{"log", []string{"1024", "2"}, "10"},
		{"fact", []string{"20"}, "2432902008176640000"},
		{"pi", nil, "3.1415926536"},
		{"e", nil, "2.7182818285"},
		{"exp", []string{"1"}, "2.7182818285"},
		{"ln", []string{"2"}, "0.6931471806"},
		{"log10", []string{"1000"}, "3"},
		{"sin", []string{"0"}, "0"},
		{"cos", []string{"0"}, "1"},
		{"atan", []string{"1"}, "0.7853981634"},
		{"tanh", []string{"0"}, "0"},
	} {
		got, err := Eval(env, d.op, d.args...)
		if assert.NoError(t, err, d.op) {
			assert.Equal(t, d.want, got.String(), "%s %v", d.op, d.args)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	env := Env{Context: bigdecimal.Default(), Places: 10}
	for _, d := range []struct {
		op   string
		args []string
		err  error
	}{
		{"frobnicate", nil, ErrUnknownOp},
		{"add", []string{"1"}, ErrArity},
		{"pi", []string{"1"}, ErrArity},
		{"sum", nil, ErrArity},
		{"add", []string{"1", "x"}, bigdecimal.ErrFormat},
		{"quo", []string{"1", "0"}, bigdecimal.ErrDivideByZero},
		{"ln", []string{"-1"}, bigdecimal.ErrDomain},
		{"root", []string{"8", "1.5"}, bigdecimal.ErrDomain},
		{"fact", []string{"-2"}, bigdecimal.ErrDomain},
		{"asin", []string{"2"}, bigdecimal.ErrOutOfRange},
		{"mul", []string{"1e2147483647", "10"}, bigdecimal.ErrOutOfRange},
		{"add", []string{"9e2147483647", "1e2147483647"}, bigdecimal.ErrOutOfRange},
	} {
		_, err := Eval(env, d.op, d.args...)
		assert.True(t, errors.Is(err, d.err), "%s %v: got %v", d.op, d.args, err)
	}
}

func TestOps(t *testing.T) {
	l := Ops()
	require.Len(t, l, len(ops))
	for i := 1; i < len(l); i++ {
		assert.Less(t, l[i-1].Name, l[i].Name)
	}
	for _, op := range l {
		got, ok := Lookup(op.Name)
		require.True(t, ok, op.Name)
		assert.Equal(t, op.Arity, got.Arity)
		assert.NotEmpty(t, op.Help, op.Name)
	}

	type sig struct {
		Name  string
		Arity int
	}
	var got []sig
	for _, op := range l[:4] {
		got = append(got, sig{op.Name, op.Arity})
	}
	want := []sig{{"abs", 1}, {"acos", 1}, {"acosh", 1}, {"acot", 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Ops() mismatch (-want +got):\n%s", diff)
	}
}
