// Copyright 2025 dotandev
// SPDX-License-Identifier: Apache-2.0

// Package strval translates structured values between JSON, textual
// primitives and the tagged binary value model, directed by a contract
// spec. Encoding canonicalizes as it goes: maps come out sorted, symbols
// validated, caps enforced. The codec is pure; a Codec may be shared by
// concurrent encoders and decoders.
package strval

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dotandev/strval/internal/contractspec"
	"github.com/dotandev/strval/internal/errors"
	"github.com/dotandev/strval/internal/xdr"
)

// maxDepth bounds recursion so adversarial schemas cannot abuse the stack.
const maxDepth = 500

// Codec drives the conversion for one contract spec.
type Codec struct {
	spec *contractspec.Spec

	// RejectNonCanonical makes decoders re-validate every decoded map
	// against the canonical key order instead of trusting the producer.
	RejectNonCanonical bool
}

// NewCodec returns a codec over the given spec.
func NewCodec(spec *contractspec.Spec) *Codec {
	return &Codec{spec: spec}
}

// Primitive returns a codec with an empty spec: it handles every type that
// does not reference a user-defined entry and fails lookups for the rest.
func Primitive() *Codec {
	return &Codec{spec: &contractspec.Spec{}}
}

// FromStringPrimitive converts a single textual token at a primitive type.
func FromStringPrimitive(s string, ty *xdr.ScSpecTypeDef) (xdr.ScVal, error) {
	return Primitive().FromString(s, ty)
}

// FromString converts a single textual token at the declared type. The
// token is parsed as JSON first; when that fails, types with a natural
// single-token form (symbols, byte strings, 128-bit integers, account ids,
// and user-defined structs or unions) fall back to treating the token as a
// bare string. At U128 and I128 a token that parses as a JSON number is taken
// as decimal text, so bare integers wider than 64 bits are accepted.
func (c *Codec) FromString(s string, ty *xdr.ScSpecTypeDef) (xdr.ScVal, error) {
	if ty.Type == xdr.ScSpecTypeOption {
		if s == "null" {
			return xdr.ScValStatic(xdr.ScStaticScsVoid), nil
		}
		return c.FromString(s, &ty.Option.ValueType)
	}

	raw, jsonErr := decodeJSON(s)
	if jsonErr != nil {
		fallback, err := c.stringFallback(s, ty, jsonErr)
		if err != nil {
			return xdr.ScVal{}, err
		}
		raw = fallback
	} else if n, ok := raw.(json.Number); ok &&
		(ty.Type == xdr.ScSpecTypeU128 || ty.Type == xdr.ScSpecTypeI128) {
		raw = n.String()
	}
	return c.FromJSON(raw, ty)
}

// stringFallback decides whether a token that failed to parse as JSON may
// stand as a bare string at ty.
func (c *Codec) stringFallback(s string, ty *xdr.ScSpecTypeDef, jsonErr error) (interface{}, error) {
	switch ty.Type {
	case xdr.ScSpecTypeSymbol, xdr.ScSpecTypeBytes, xdr.ScSpecTypeBytesN,
		xdr.ScSpecTypeU128, xdr.ScSpecTypeI128, xdr.ScSpecTypeAccountId:
		return s, nil
	case xdr.ScSpecTypeUdt:
		entry, err := c.spec.Find(ty.Udt.Name)
		if err != nil {
			return nil, err
		}
		if entry.Kind == xdr.ScSpecEntryKindUdtUnionV0 || entry.Kind == xdr.ScSpecEntryKindUdtStructV0 {
			return s, nil
		}
	}
	return nil, errors.WrapJSON(jsonErr)
}

// FromJSON converts a decoded JSON value (nil, bool, json.Number, string,
// []interface{} or map[string]interface{}) at the declared type.
func (c *Codec) FromJSON(v interface{}, ty *xdr.ScSpecTypeDef) (xdr.ScVal, error) {
	return c.fromJSON(v, ty, 0)
}

func (c *Codec) fromJSON(v interface{}, ty *xdr.ScSpecTypeDef, depth int) (xdr.ScVal, error) {
	if depth > maxDepth {
		return xdr.ScVal{}, errors.ErrMaxDepth
	}

	switch ty.Type {
	case xdr.ScSpecTypeBool, xdr.ScSpecTypeU32, xdr.ScSpecTypeI32,
		xdr.ScSpecTypeU64, xdr.ScSpecTypeI64, xdr.ScSpecTypeU128,
		xdr.ScSpecTypeI128, xdr.ScSpecTypeSymbol, xdr.ScSpecTypeAccountId,
		xdr.ScSpecTypeBytes, xdr.ScSpecTypeBytesN:
		return fromJSONPrimitive(v, ty)

	case xdr.ScSpecTypeVec:
		items, ok := v.([]interface{})
		if !ok {
			return xdr.ScVal{}, errors.WrapInvalidValue(ty.String())
		}
		converted := make([]xdr.ScVal, len(items))
		for i, item := range items {
			val, err := c.fromJSON(item, &ty.Vec.ElementType, depth+1)
			if err != nil {
				return xdr.ScVal{}, err
			}
			converted[i] = val
		}
		vec, err := xdr.NewScVec(converted...)
		if err != nil {
			return xdr.ScVal{}, errors.WrapBinary(err)
		}
		return xdr.ScValObject(xdr.ScObjectVec(vec)), nil

	case xdr.ScSpecTypeMap:
		raw, ok := v.(map[string]interface{})
		if !ok {
			return xdr.ScVal{}, errors.WrapInvalidValue(ty.String())
		}
		return c.parseMap(ty.Map, raw, depth)

	case xdr.ScSpecTypeOption:
		if v == nil {
			return xdr.ScValStatic(xdr.ScStaticScsVoid), nil
		}
		inner, err := c.fromJSON(v, &ty.Option.ValueType, depth+1)
		if err != nil {
			return xdr.ScVal{}, err
		}
		if inner.Object() == nil {
			return xdr.ScVal{}, errors.WrapInvalidValue(ty.String())
		}
		return inner, nil

	case xdr.ScSpecTypeTuple:
		items, ok := v.([]interface{})
		if !ok {
			return xdr.ScVal{}, errors.WrapInvalidValue(ty.String())
		}
		return c.parseTuple(ty, items, depth)

	case xdr.ScSpecTypeUdt:
		return c.parseUdt(ty.Udt.Name, v, depth)

	case xdr.ScSpecTypeBitset, xdr.ScSpecTypeStatus, xdr.ScSpecTypeResult,
		xdr.ScSpecTypeSet, xdr.ScSpecTypeVal:
		return xdr.ScVal{}, errors.WrapUnsupported(ty.Type.String())
	}
	return xdr.ScVal{}, errors.WrapUnsupported(ty.String())
}

func (c *Codec) parseMap(mapType *xdr.ScSpecTypeMapDef, raw map[string]interface{}, depth int) (xdr.ScVal, error) {
	entries := make([]xdr.ScMapEntry, 0, len(raw))
	for k, v := range raw {
		key, err := c.FromString(k, &mapType.KeyType)
		if err != nil {
			return xdr.ScVal{}, err
		}
		val, err := c.fromJSON(v, &mapType.ValueType, depth+1)
		if err != nil {
			return xdr.ScVal{}, err
		}
		entries = append(entries, xdr.ScMapEntry{Key: key, Val: val})
	}
	sorted, err := xdr.SortedScMap(entries)
	if err != nil {
		return xdr.ScVal{}, errors.WrapBinary(err)
	}
	return xdr.ScValObject(xdr.ScObjectMap(sorted)), nil
}

func (c *Codec) parseTuple(ty *xdr.ScSpecTypeDef, items []interface{}, depth int) (xdr.ScVal, error) {
	valueTypes := ty.Tuple.ValueTypes
	if len(items) != len(valueTypes) {
		return xdr.ScVal{}, errors.WrapInvalidValue(ty.String())
	}
	converted := make([]xdr.ScVal, len(items))
	for i, item := range items {
		val, err := c.fromJSON(item, &valueTypes[i], depth+1)
		if err != nil {
			return xdr.ScVal{}, err
		}
		converted[i] = val
	}
	vec, err := xdr.NewScVec(converted...)
	if err != nil {
		return xdr.ScVal{}, errors.WrapBinary(err)
	}
	return xdr.ScValObject(xdr.ScObjectVec(vec)), nil
}

func (c *Codec) parseUdt(name string, v interface{}, depth int) (xdr.ScVal, error) {
	entry, err := c.spec.Find(name)
	if err != nil {
		return xdr.ScVal{}, err
	}
	switch entry.Kind {
	case xdr.ScSpecEntryKindUdtStructV0:
		switch value := v.(type) {
		case map[string]interface{}:
			return c.parseStruct(entry.UdtStructV0, value, depth)
		case []interface{}:
			return c.parseTupleStruct(entry.UdtStructV0, value, depth)
		}
	case xdr.ScSpecEntryKindUdtUnionV0:
		switch v.(type) {
		case string, map[string]interface{}:
			return c.parseUnion(entry.UdtUnionV0, v, depth)
		}
	case xdr.ScSpecEntryKindUdtEnumV0:
		if num, ok := v.(json.Number); ok {
			return parseConstEnum(num, entry.UdtEnumV0.Cases)
		}
	case xdr.ScSpecEntryKindUdtErrorEnumV0:
		if num, ok := v.(json.Number); ok {
			return parseConstEnum(num, errorEnumCases(entry.UdtErrorEnumV0))
		}
	}
	return xdr.ScVal{}, errors.WrapInvalidValue(name)
}

func (c *Codec) parseStruct(strukt *xdr.ScSpecUdtStructV0, raw map[string]interface{}, depth int) (xdr.ScVal, error) {
	entries := make([]xdr.ScMapEntry, 0, len(strukt.Fields))
	for _, field := range strukt.Fields {
		v, ok := raw[field.Name]
		if !ok {
			return xdr.ScVal{}, errors.WrapInvalidValuef(strukt.Name, "missing field %q", field.Name)
		}
		val, err := c.fromJSON(v, &field.Type, depth+1)
		if err != nil {
			return xdr.ScVal{}, err
		}
		sym, err := xdr.NewScSymbol(field.Name)
		if err != nil {
			return xdr.ScVal{}, errors.WrapInvalidValuef(strukt.Name, "field name: %v", err)
		}
		entries = append(entries, xdr.ScMapEntry{Key: xdr.ScValSymbol(sym), Val: val})
	}
	sorted, err := xdr.SortedScMap(entries)
	if err != nil {
		return xdr.ScVal{}, errors.WrapBinary(err)
	}
	return xdr.ScValObject(xdr.ScObjectMap(sorted)), nil
}

func (c *Codec) parseTupleStruct(strukt *xdr.ScSpecUdtStructV0, items []interface{}, depth int) (xdr.ScVal, error) {
	if len(items) != len(strukt.Fields) {
		return xdr.ScVal{}, errors.WrapInvalidValuef(strukt.Name, "expected %d fields, got %d", len(strukt.Fields), len(items))
	}
	converted := make([]xdr.ScVal, len(items))
	for i, field := range strukt.Fields {
		val, err := c.fromJSON(items[i], &field.Type, depth+1)
		if err != nil {
			return xdr.ScVal{}, err
		}
		converted[i] = val
	}
	vec, err := xdr.NewScVec(converted...)
	if err != nil {
		return xdr.ScVal{}, errors.WrapBinary(err)
	}
	return xdr.ScValObject(xdr.ScObjectVec(vec)), nil
}

func (c *Codec) parseUnion(union *xdr.ScSpecUdtUnionV0, v interface{}, depth int) (xdr.ScVal, error) {
	var caseName string
	var payload interface{}
	var hasPayload bool
	switch value := v.(type) {
	case string:
		caseName = value
	case map[string]interface{}:
		if len(value) != 1 {
			return xdr.ScVal{}, errors.WrapInvalidValuef(union.Name, "union value must have exactly one key")
		}
		for k, p := range value {
			caseName, payload, hasPayload = k, p, true
		}
	}

	var found *xdr.ScSpecUdtUnionCaseV0
	for i := range union.Cases {
		if union.Cases[i].Name == caseName {
			found = &union.Cases[i]
			break
		}
	}
	if found == nil {
		return xdr.ScVal{}, errors.WrapEnumCase(caseName, union.Name)
	}

	sym, err := xdr.NewScSymbol(caseName)
	if err != nil {
		return xdr.ScVal{}, errors.WrapInvalidValuef(union.Name, "case name: %v", err)
	}
	elems := []xdr.ScVal{xdr.ScValSymbol(sym)}
	if hasPayload {
		if found.Type == nil {
			return xdr.ScVal{}, errors.WrapInvalidValuef(union.Name, "case %s takes no value", caseName)
		}
		val, err := c.fromJSON(payload, found.Type, depth+1)
		if err != nil {
			return xdr.ScVal{}, err
		}
		elems = append(elems, val)
	}
	vec, err := xdr.NewScVec(elems...)
	if err != nil {
		return xdr.ScVal{}, errors.WrapBinary(err)
	}
	return xdr.ScValObject(xdr.ScObjectVec(vec)), nil
}

func parseConstEnum(num json.Number, cases []xdr.ScSpecUdtEnumCaseV0) (xdr.ScVal, error) {
	v, err := strconv.ParseUint(num.String(), 10, 64)
	if err != nil {
		return xdr.ScVal{}, errors.WrapInvalidValuef("", "const enum value %s is not an unsigned integer", num)
	}
	if v > uint64(^uint32(0)) {
		return xdr.ScVal{}, errors.WrapEnumConstTooLarge(v)
	}
	for _, cs := range cases {
		if uint64(cs.Value) == v {
			return xdr.ScValU32(uint32(cs.Value)), nil
		}
	}
	return xdr.ScVal{}, errors.WrapEnumConst(uint32(v))
}

func errorEnumCases(e *xdr.ScSpecUdtErrorEnumV0) []xdr.ScSpecUdtEnumCaseV0 {
	cases := make([]xdr.ScSpecUdtEnumCaseV0, len(e.Cases))
	for i, cs := range e.Cases {
		cases[i] = xdr.ScSpecUdtEnumCaseV0{Name: cs.Name, Value: cs.Value}
	}
	return cases
}

// decodeJSON parses exactly one JSON value, keeping numbers as json.Number
// so 64-bit integers survive untruncated.
func decodeJSON(s string) (interface{}, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	var trailing interface{}
	if err := dec.Decode(&trailing); err != io.EOF {
		return nil, fmt.Errorf("trailing data after JSON value")
	}
	return v, nil
}
