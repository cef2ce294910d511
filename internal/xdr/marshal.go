// Copyright 2025 dotandev
// SPDX-License-Identifier: Apache-2.0

package xdr

import (
	"bytes"
	"fmt"
	"io"

	xdr3 "github.com/stellar/go-xdr/xdr3"
)

// MarshalBinary encodes v into its canonical binary form.
func MarshalBinary(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := xdr3.Marshal(&buf, v); err != nil {
		return nil, fmt.Errorf("encoding %T: %w", v, err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes one value from r into dest, returning the number of
// bytes consumed.
func Unmarshal(r io.Reader, dest interface{}) (int, error) {
	return xdr3.Unmarshal(r, dest)
}

// SafeUnmarshal decodes data into dest and requires the whole input to be
// consumed.
func SafeUnmarshal(data []byte, dest interface{}) error {
	r := bytes.NewReader(data)
	if _, err := xdr3.Unmarshal(r, dest); err != nil {
		return fmt.Errorf("decoding %T: %w", dest, err)
	}
	if r.Len() != 0 {
		return fmt.Errorf("decoding %T: %d bytes left over", dest, r.Len())
	}
	return nil
}
