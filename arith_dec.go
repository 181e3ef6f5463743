// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigdecimal

import (
	"math/big"

	lru "github.com/hashicorp/golang-lru/v2"
)

// log10(2), used to estimate decimal digit counts from bit lengths.
const log10_2 = 0.30102999566398119521373889472449302676818988146211

var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
	bigTen = big.NewInt(10)
)

// small powers of ten are precomputed, larger ones are cached on demand.
const pow10TabSize = 128

var (
	pow10tab   = makePow10Tab()
	pow10cache = mustLRU[int, *big.Int](256)
)

func makePow10Tab() (t [pow10TabSize]*big.Int) {
	p := big.NewInt(1)
	for i := range t {
		t[i] = new(big.Int).Set(p)
		p.Mul(p, bigTen)
	}
	return t
}

func mustLRU[K comparable, V any](size int) *lru.Cache[K, V] {
	c, err := lru.New[K, V](size)
	if err != nil {
		panic(err)
	}
	return c
}

// pow10 returns 10**n. The returned value is shared and must not be modified.
func pow10(n int) *big.Int {
	if n < 0 {
		panic("pow10: negative exponent")
	}
	if n < pow10TabSize {
		return pow10tab[n]
	}
	if p, ok := pow10cache.Get(n); ok {
		return p
	}
	p := new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
	pow10cache.Add(n, p)
	return p
}

// digits returns n such that 10**(n-1) <= |x| < 10**n. In other words, n is
// the number of decimal digits required to represent x.
// Returns 0 for x == 0.
func digits(x *big.Int) int {
	b := x.BitLen()
	if b == 0 {
		return 0
	}
	// 2**(b-1) <= |x| < 2**b. The estimate may be off by one either way.
	n := int(float64(b)*log10_2) + 1
	for n > 1 && x.CmpAbs(pow10(n-1)) < 0 {
		n--
	}
	for x.CmpAbs(pow10(n)) >= 0 {
		n++
	}
	return n
}

// ipow returns x**n for n >= 0.
func ipow(x *big.Int, n int) *big.Int {
	return new(big.Int).Exp(x, big.NewInt(int64(n)), nil)
}
