// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Decimals.

package bigdecimal

import (
	"bytes"
	"database/sql/driver"
	"encoding/binary"
	"math/big"

	"github.com/pkg/errors"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const decimalGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface.
//
// The encoding is: version byte, sign byte (0 or 1 for negative), the
// exponent as a big endian int64 and the big endian bytes of |mantissa|.
func (x Decimal) GobEncode() ([]byte, error) {
	var (
		m   = x.m()
		buf = make([]byte, 1+1+8, 1+1+8+(m.BitLen()+7)/8)
	)
	buf[0] = decimalGobVersion
	if m.Sign() < 0 {
		buf[1] = 1
	}
	binary.BigEndian.PutUint64(buf[2:], uint64(int64(x.exp)))
	return append(buf, m.Bytes()...), nil
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Decimal) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Zero
		return nil
	}
	if buf[0] != decimalGobVersion {
		return errors.Errorf("Decimal.GobDecode: encoding version %d not supported", buf[0])
	}
	if len(buf) < 10 {
		return errors.Wrap(ErrFormat, "Decimal.GobDecode: buffer too small")
	}
	m := new(big.Int).SetBytes(buf[10:])
	if buf[1] != 0 {
		m.Neg(m)
	}
	x, err := Default().result(m, int(int64(binary.BigEndian.Uint64(buf[2:]))))
	if err != nil {
		return errors.Wrap(err, "Decimal.GobDecode")
	}
	*z = x
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface. The value is
// marshaled in canonical form, in full precision.
func (x Decimal) MarshalText() ([]byte, error) {
	return x.Append(nil, 'f', -1), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. It
// accepts the input of Parse.
func (z *Decimal) UnmarshalText(text []byte) error {
	x, err := Parse(string(text))
	if err != nil {
		return errors.Wrapf(err, "bigdecimal: cannot unmarshal %q into a Decimal", text)
	}
	*z = x
	return nil
}

// MarshalJSON implements the json.Marshaler interface. Decimals are encoded
// as JSON strings so that no precision is lost by decoders that use float64.
func (x Decimal) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, x.SignificantDigits()+8)
	buf = append(buf, '"')
	buf = x.Append(buf, 'f', -1)
	return append(buf, '"'), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. It accepts both
// JSON strings and numbers. A JSON null leaves z unchanged.
func (z *Decimal) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if n := len(data); n >= 2 && data[0] == '"' && data[n-1] == '"' {
		data = data[1 : n-1]
	}
	return z.UnmarshalText(data)
}

// Scan implements the sql.Scanner interface for database deserialization.
func (z *Decimal) Scan(value interface{}) error {
	var (
		x   Decimal
		err error
	)
	switch v := value.(type) {
	case nil:
		x = Zero
	case int64:
		x = FromInt64(v)
	case float64:
		x, err = FromFloat64(v)
	case []byte:
		x, err = Parse(string(v))
	case string:
		x, err = Parse(v)
	default:
		return errors.Errorf("bigdecimal: cannot scan %T into a Decimal", value)
	}
	if err != nil {
		return err
	}
	*z = x
	return nil
}

// Value implements the driver.Valuer interface for database serialization.
func (x Decimal) Value() (driver.Value, error) {
	return x.String(), nil
}
