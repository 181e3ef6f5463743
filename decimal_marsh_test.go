// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigdecimal

import (
	"bytes"
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/gob"
	"encoding/json"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var (
	// required implemented interfaces
	_ encoding.TextMarshaler   = Decimal{}
	_ encoding.TextUnmarshaler = (*Decimal)(nil)
	_ json.Marshaler           = Decimal{}
	_ json.Unmarshaler         = (*Decimal)(nil)
	_ gob.GobEncoder           = Decimal{}
	_ gob.GobDecoder           = (*Decimal)(nil)
	_ sql.Scanner              = (*Decimal)(nil)
	_ driver.Valuer            = Decimal{}
)

var marshalValues = []string{
	"0",
	"1",
	"-1",
	"123.456",
	"-0.000000000000000000000000000001",
	"1e300",
	"3.14159265358979323846264338327950288419716939937510582097494459",
}

func TestDecimalGobEncoding(t *testing.T) {
	var medium bytes.Buffer
	enc := gob.NewEncoder(&medium)
	dec := gob.NewDecoder(&medium)
	for _, s := range marshalValues {
		medium.Reset()
		x := MustParse(s)
		require.NoError(t, enc.Encode(x))
		var y Decimal
		require.NoError(t, dec.Decode(&y))
		assert.True(t, x.Equal(y), "gob: got %v, want %v", y, x)
	}

	var z Decimal
	assert.Error(t, z.GobDecode([]byte{2, 0, 0, 0, 0, 0, 0, 0, 0, 0}))
	assert.Error(t, z.GobDecode([]byte{decimalGobVersion, 0}))
	// exponent 1<<62
	err := z.GobDecode([]byte{decimalGobVersion, 0, 0x40, 0, 0, 0, 0, 0, 0, 0, 1})
	assert.True(t, errors.Is(err, ErrOutOfRange))
	require.NoError(t, z.GobDecode(nil))
	assert.True(t, z.IsZero())
}

func TestDecimalJSON(t *testing.T) {
	type T struct {
		A Decimal
		B *Decimal `json:",omitempty"`
	}
	for _, s := range marshalValues {
		x := MustParse(s)
		b, err := json.Marshal(T{A: x})
		require.NoError(t, err)
		assert.Equal(t, `{"A":"`+x.String()+`"}`, string(b))

		var v T
		require.NoError(t, json.Unmarshal(b, &v))
		assert.True(t, x.Equal(v.A), "json: got %v, want %v", v.A, x)
	}

	var v T
	require.NoError(t, json.Unmarshal([]byte(`{"A": 2.25, "B": "-3e2"}`), &v))
	assert.Equal(t, "2.25", v.A.String())
	require.NotNil(t, v.B)
	assert.Equal(t, "-300", v.B.String())

	v.A = One
	require.NoError(t, json.Unmarshal([]byte(`{"A": null}`), &v))
	assert.Equal(t, "1", v.A.String())

	assert.Error(t, json.Unmarshal([]byte(`{"A": "1.2.3"}`), &v))
}

func TestDecimalMarshalText(t *testing.T) {
	for _, s := range marshalValues {
		x := MustParse(s)
		b, err := x.MarshalText()
		require.NoError(t, err)
		var y Decimal
		require.NoError(t, y.UnmarshalText(b))
		assert.True(t, x.Equal(y))
	}
	var y Decimal
	assert.Error(t, y.UnmarshalText([]byte("1e")))
}

func TestDecimalYAML(t *testing.T) {
	type T struct {
		Rate Decimal `yaml:"rate"`
	}
	for _, s := range marshalValues {
		x := MustParse(s)
		b, err := yaml.Marshal(T{Rate: x})
		require.NoError(t, err)
		var v T
		require.NoError(t, yaml.Unmarshal(b, &v))
		assert.True(t, x.Equal(v.Rate), "yaml: %s", b)
	}

	var v T
	require.NoError(t, yaml.Unmarshal([]byte("rate: 0.05\n"), &v))
	assert.Equal(t, "0.05", v.Rate.String())
}

func TestDecimalTOML(t *testing.T) {
	var v struct {
		Rate Decimal `toml:"rate"`
	}
	_, err := toml.Decode(`rate = "12.500"`, &v)
	require.NoError(t, err)
	assert.Equal(t, "12.5", v.Rate.String())
}

func TestDecimalSQL(t *testing.T) {
	for _, d := range []struct {
		in   interface{}
		want string
	}{
		{int64(5), "5"},
		{"1.25", "1.25"},
		{[]byte("-2"), "-2"},
		{0.5, "0.5"},
		{nil, "0"},
	} {
		var x Decimal
		require.NoError(t, x.Scan(d.in))
		assert.Equal(t, d.want, x.String(), "Scan(%v)", d.in)
	}
	var x Decimal
	assert.Error(t, x.Scan(true))
	assert.Error(t, x.Scan("x"))

	v, err := MustParse("1.25").Value()
	require.NoError(t, err)
	assert.Equal(t, "1.25", v)
}
