// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"math/big"
	"testing"

	"github.com/db47h/bigdecimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSeriesEval(t *testing.T) {
	c := bigdecimal.Default()
	for _, d := range []struct {
		name   string
		s      Series
		places int
		want   string
	}{
		{"exp(1)", Series{X: one, Sum: one, Start: 1, Step: 1, Sign: 1, Factorial: true}, 20, "2.71828182845904523536"},
		{"sin(1)", Series{X: one, Start: 1, Step: 2, Sign: -1, Factorial: true}, 20, "0.84147098480789650665"},
		{"cosh(1)", Series{X: one, Sum: one, Start: 2, Step: 2, Sign: 1, Factorial: true}, 20, "1.54308063481524377848"},
		// atan(1/2)
		{"atan(0.5)", Series{X: half, Start: 1, Step: 2, Sign: -1}, 20, "0.46364760900080611621"},
		{"x=0", Series{X: bigdecimal.Zero, Sum: one, Start: 1, Step: 1, Sign: 1, Factorial: true}, 10, "1"},
	} {
		got := d.s.Eval(c, d.places)
		assert.Equal(t, d.want, got.String(), d.name)
	}
}

func TestSeriesPanics(t *testing.T) {
	c := bigdecimal.Default()
	assert.Panics(t, func() { Series{X: one, Start: 1, Step: 0}.Eval(c, 10) })
	assert.Panics(t, func() { Series{X: one, Start: 0, Step: 1}.Eval(c, 10) })
	assert.NotPanics(t, func() { Series{X: one, Sum: one, Start: 0, Step: 2, Factorial: true}.Eval(c, 10) })
}

func TestSeriesLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	c := bigdecimal.Context{Logger: zap.New(core)}

	Series{X: half, Start: 1, Step: 1, Sign: 1, Factorial: true}.Eval(c, 10)
	assert.Equal(t, 1, logs.FilterMessage("series converged").Len())

	// ln(1+x) at x = 1 converges too slowly for the term budget
	Series{X: one, Start: 1, Step: 1, Sign: -1}.Eval(c, 10)
	assert.Equal(t, 1, logs.FilterMessage("series did not converge").Len())
}

func TestFactorial(t *testing.T) {
	assert.Equal(t, "1", Factorial(0).String())
	assert.Equal(t, "1", Factorial(1).String())
	assert.Equal(t, "120", Factorial(5).String())
	assert.Equal(t, "2432902008176640000", Factorial(20).String())

	want := big.NewInt(1)
	for i := int64(2); i <= 100; i++ {
		want.Mul(want, big.NewInt(i))
	}
	assert.Equal(t, 0, want.Cmp(Factorial(100)))
	// cached
	assert.Same(t, Factorial(100), Factorial(100))
}

func TestProductRange(t *testing.T) {
	assert.Equal(t, "1", productRange(5, 4).String())
	assert.Equal(t, "7", productRange(7, 7).String())
	assert.Equal(t, "42", productRange(6, 7).String())
	assert.Equal(t, "30240", productRange(6, 10).String())
}
