// Copyright 2025 dotandev
// SPDX-License-Identifier: Apache-2.0

package strval

import (
	"encoding/hex"
	"encoding/json"
	"math/big"
	"strconv"
	"strings"

	"github.com/stellar/go/strkey"

	"github.com/dotandev/strval/internal/errors"
	"github.com/dotandev/strval/internal/xdr"
)

// fromJSONPrimitive converts a decoded JSON value at a scalar type.
func fromJSONPrimitive(v interface{}, ty *xdr.ScSpecTypeDef) (xdr.ScVal, error) {
	switch ty.Type {
	case xdr.ScSpecTypeBool:
		b, ok := v.(bool)
		if !ok {
			return xdr.ScVal{}, errors.WrapInvalidValue(ty.String())
		}
		if b {
			return xdr.ScValStatic(xdr.ScStaticScsTrue), nil
		}
		return xdr.ScValStatic(xdr.ScStaticScsFalse), nil

	case xdr.ScSpecTypeU32:
		n, ok := v.(json.Number)
		if !ok {
			return xdr.ScVal{}, errors.WrapInvalidValue(ty.String())
		}
		u, err := strconv.ParseUint(n.String(), 10, 32)
		if err != nil {
			return xdr.ScVal{}, errors.WrapInvalidValue(ty.String())
		}
		return xdr.ScValU32(uint32(u)), nil

	case xdr.ScSpecTypeI32:
		n, ok := v.(json.Number)
		if !ok {
			return xdr.ScVal{}, errors.WrapInvalidValue(ty.String())
		}
		i, err := strconv.ParseInt(n.String(), 10, 32)
		if err != nil {
			return xdr.ScVal{}, errors.WrapInvalidValue(ty.String())
		}
		return xdr.ScValI32(int32(i)), nil

	case xdr.ScSpecTypeU64:
		n, ok := v.(json.Number)
		if !ok {
			return xdr.ScVal{}, errors.WrapInvalidValue(ty.String())
		}
		u, err := strconv.ParseUint(n.String(), 10, 64)
		if err != nil {
			return xdr.ScVal{}, errors.WrapInvalidValue(ty.String())
		}
		return xdr.ScValObject(xdr.ScObjectU64(u)), nil

	case xdr.ScSpecTypeI64:
		n, ok := v.(json.Number)
		if !ok {
			return xdr.ScVal{}, errors.WrapInvalidValue(ty.String())
		}
		i, err := strconv.ParseInt(n.String(), 10, 64)
		if err != nil {
			return xdr.ScVal{}, errors.WrapInvalidValue(ty.String())
		}
		return xdr.ScValObject(xdr.ScObjectI64(i)), nil

	case xdr.ScSpecTypeU128:
		// Numbers are accepted up to the 64-bit range; decimal strings
		// cover the full width.
		switch value := v.(type) {
		case json.Number:
			u, err := strconv.ParseUint(value.String(), 10, 64)
			if err != nil {
				return xdr.ScVal{}, errors.WrapInvalidValue(ty.String())
			}
			return xdr.ScValObject(xdr.ScObjectU128(xdr.Int128Parts{Lo: xdr.Uint64(u)})), nil
		case string:
			parts, err := parseU128(value)
			if err != nil {
				return xdr.ScVal{}, errors.WrapInvalidValue(ty.String())
			}
			return xdr.ScValObject(xdr.ScObjectU128(parts)), nil
		}
		return xdr.ScVal{}, errors.WrapInvalidValue(ty.String())

	case xdr.ScSpecTypeI128:
		switch value := v.(type) {
		case json.Number:
			i, err := strconv.ParseInt(value.String(), 10, 64)
			if err != nil {
				return xdr.ScVal{}, errors.WrapInvalidValue(ty.String())
			}
			return xdr.ScValObject(xdr.ScObjectI128(i128FromInt64(i))), nil
		case string:
			parts, err := parseI128(value)
			if err != nil {
				return xdr.ScVal{}, errors.WrapInvalidValue(ty.String())
			}
			return xdr.ScValObject(xdr.ScObjectI128(parts)), nil
		}
		return xdr.ScVal{}, errors.WrapInvalidValue(ty.String())

	case xdr.ScSpecTypeSymbol:
		s, ok := v.(string)
		if !ok {
			return xdr.ScVal{}, errors.WrapInvalidValue(ty.String())
		}
		sym, err := xdr.NewScSymbol(s)
		if err != nil {
			return xdr.ScVal{}, errors.WrapInvalidValue(ty.String())
		}
		return xdr.ScValSymbol(sym), nil

	case xdr.ScSpecTypeAccountId:
		s, ok := v.(string)
		if !ok {
			return xdr.ScVal{}, errors.WrapInvalidValue(ty.String())
		}
		raw, err := strkey.Decode(strkey.VersionByteAccountID, s)
		if err != nil || len(raw) != 32 {
			return xdr.ScVal{}, errors.WrapInvalidValue(ty.String())
		}
		var key [32]byte
		copy(key[:], raw)
		return xdr.ScValObject(xdr.ScObjectAccountId(xdr.AccountIdEd25519(key))), nil

	case xdr.ScSpecTypeBytes:
		switch value := v.(type) {
		case string:
			raw, err := hex.DecodeString(value)
			if err != nil {
				return xdr.ScVal{}, errors.WrapInvalidValue(ty.String())
			}
			return bytesVal(raw, ty)
		case []interface{}:
			raw, err := bytesFromArray(value)
			if err != nil {
				return xdr.ScVal{}, errors.WrapInvalidValue(ty.String())
			}
			return bytesVal(raw, ty)
		}
		return xdr.ScVal{}, errors.WrapInvalidValue(ty.String())

	case xdr.ScSpecTypeBytesN:
		n := int(ty.BytesN.N)
		switch value := v.(type) {
		case string:
			// Strkey account ids are accepted verbatim; anything else is
			// hex, left-padded with '0' to the declared width.
			if raw, err := strkey.Decode(strkey.VersionByteAccountID, value); err == nil {
				return bytesVal(raw, ty)
			}
			raw, err := paddedHex(value, n)
			if err != nil {
				return xdr.ScVal{}, errors.WrapInvalidValue(ty.String())
			}
			return bytesVal(raw, ty)
		case []interface{}:
			raw, err := bytesFromArray(value)
			if err != nil {
				return xdr.ScVal{}, errors.WrapInvalidValue(ty.String())
			}
			return bytesVal(raw, ty)
		}
		return xdr.ScVal{}, errors.WrapInvalidValue(ty.String())
	}
	return xdr.ScVal{}, errors.WrapInvalidValue(ty.String())
}

func bytesVal(raw []byte, ty *xdr.ScSpecTypeDef) (xdr.ScVal, error) {
	b, err := xdr.NewScBytes(raw)
	if err != nil {
		return xdr.ScVal{}, errors.WrapInvalidValue(ty.String())
	}
	return xdr.ScValObject(xdr.ScObjectBytes(b)), nil
}

func bytesFromArray(items []interface{}) ([]byte, error) {
	raw := make([]byte, len(items))
	for i, item := range items {
		n, ok := item.(json.Number)
		if !ok {
			return nil, errors.ErrInvalidValue
		}
		u, err := strconv.ParseUint(n.String(), 10, 8)
		if err != nil {
			return nil, errors.ErrInvalidValue
		}
		raw[i] = byte(u)
	}
	return raw, nil
}

// paddedHex decodes s as hex after left-padding it with '0' to 2n
// characters, so short ids like "1" decode to n bytes ending in 0x01.
func paddedHex(s string, n int) ([]byte, error) {
	if len(s) > 2*n {
		return nil, errors.ErrInvalidValue
	}
	padded := strings.Repeat("0", 2*n-len(s)) + s
	return hex.DecodeString(padded)
}

var (
	one     = big.NewInt(1)
	maxU128 = new(big.Int).Lsh(one, 128)
	maxI128 = new(big.Int).Lsh(one, 127)
	minI128 = new(big.Int).Neg(maxI128)
	mask64  = new(big.Int).SetUint64(^uint64(0))
)

func parseU128(s string) (xdr.Int128Parts, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 || v.Cmp(maxU128) >= 0 {
		return xdr.Int128Parts{}, errors.ErrInvalidValue
	}
	return splitParts(v), nil
}

func parseI128(s string) (xdr.Int128Parts, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Cmp(minI128) < 0 || v.Cmp(maxI128) >= 0 {
		return xdr.Int128Parts{}, errors.ErrInvalidValue
	}
	if v.Sign() < 0 {
		v = new(big.Int).Add(v, maxU128) // two's complement
	}
	return splitParts(v), nil
}

func splitParts(v *big.Int) xdr.Int128Parts {
	lo := new(big.Int).And(v, mask64).Uint64()
	hi := new(big.Int).Rsh(v, 64).Uint64()
	return xdr.Int128Parts{Lo: xdr.Uint64(lo), Hi: xdr.Uint64(hi)}
}

func i128FromInt64(i int64) xdr.Int128Parts {
	v := big.NewInt(i)
	if i < 0 {
		v = new(big.Int).Add(v, maxU128)
	}
	return splitParts(v)
}

// formatU128 renders the parts as a decimal string.
func formatU128(parts xdr.Int128Parts) string {
	v := new(big.Int).SetUint64(uint64(parts.Hi))
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(uint64(parts.Lo)))
	return v.String()
}

// formatI128 renders the parts as a signed decimal string.
func formatI128(parts xdr.Int128Parts) string {
	v := new(big.Int).SetUint64(uint64(parts.Hi))
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(uint64(parts.Lo)))
	if v.Cmp(maxI128) >= 0 {
		v.Sub(v, maxU128)
	}
	return v.String()
}
