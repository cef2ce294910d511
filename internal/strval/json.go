// Copyright 2025 dotandev
// SPDX-License-Identifier: Apache-2.0

package strval

import (
	"encoding/hex"
	"encoding/json"
	"strconv"
	"unicode/utf8"

	"github.com/stellar/go/strkey"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/dotandev/strval/internal/errors"
	"github.com/dotandev/strval/internal/xdr"
)

// ToJSON converts a value at the declared type into a JSON-marshalable
// tree: nil, bool, string, json.Number, []interface{} or an ordered map.
// Struct values render their keys in declared field order; schema maps keep
// the canonical key order. 128-bit integers always come out as decimal
// strings so JSON consumers cannot truncate them, and byte strings come out
// as lower-case hex.
func (c *Codec) ToJSON(val xdr.ScVal, ty *xdr.ScSpecTypeDef) (interface{}, error) {
	return c.toJSON(val, ty, 0)
}

func (c *Codec) toJSON(val xdr.ScVal, ty *xdr.ScSpecTypeDef, depth int) (interface{}, error) {
	if depth > maxDepth {
		return nil, errors.ErrMaxDepth
	}

	switch val.Type {
	case xdr.ScValTypeScvStatic:
		switch *val.Ic {
		case xdr.ScStaticScsTrue:
			return true, nil
		case xdr.ScStaticScsFalse:
			return false, nil
		case xdr.ScStaticScsVoid:
			return nil, nil
		}
		return nil, errors.WrapInvalidValue("")

	case xdr.ScValTypeScvU63:
		return json.Number(strconv.FormatInt(int64(*val.U63), 10)), nil

	case xdr.ScValTypeScvU32:
		if ty.Type == xdr.ScSpecTypeUdt {
			return c.constEnumToJSON(ty.Udt.Name, uint32(*val.U32))
		}
		return json.Number(strconv.FormatUint(uint64(*val.U32), 10)), nil

	case xdr.ScValTypeScvI32:
		return json.Number(strconv.FormatInt(int64(*val.I32), 10)), nil

	case xdr.ScValTypeScvSymbol:
		if ty.Type != xdr.ScSpecTypeSymbol && ty.Type != xdr.ScSpecTypeVal {
			return nil, errors.WrapInvalidValue(ty.String())
		}
		return symbolString(*val.Sym)

	case xdr.ScValTypeScvObject:
		obj := val.Object()
		if obj == nil {
			if ty.Type == xdr.ScSpecTypeOption {
				return nil, nil
			}
			return nil, errors.WrapInvalidValue(ty.String())
		}
		inner := ty
		if ty.Type == xdr.ScSpecTypeOption {
			inner = &ty.Option.ValueType
		}
		return c.objectToJSON(obj, inner, depth)

	case xdr.ScValTypeScvBitset, xdr.ScValTypeScvStatus:
		return nil, errors.WrapUnsupported(val.Type.String())
	}
	return nil, errors.WrapInvalidValue(ty.String())
}

func (c *Codec) objectToJSON(obj *xdr.ScObject, ty *xdr.ScSpecTypeDef, depth int) (interface{}, error) {
	switch {
	case obj.Type == xdr.ScObjectTypeScoVec && ty.Type == xdr.ScSpecTypeVec:
		return c.vecToJSON(*obj.Vec, &ty.Vec.ElementType, depth)

	case obj.Type == xdr.ScObjectTypeScoVec && ty.Type == xdr.ScSpecTypeTuple:
		valueTypes := ty.Tuple.ValueTypes
		if len(*obj.Vec) != len(valueTypes) {
			return nil, errors.WrapInvalidValue(ty.String())
		}
		items := make([]interface{}, len(valueTypes))
		for i, elem := range *obj.Vec {
			v, err := c.toJSON(elem, &valueTypes[i], depth+1)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return items, nil

	case (obj.Type == xdr.ScObjectTypeScoVec || obj.Type == xdr.ScObjectTypeScoMap) &&
		ty.Type == xdr.ScSpecTypeUdt:
		return c.udtToJSON(ty.Udt.Name, obj, depth)

	case obj.Type == xdr.ScObjectTypeScoMap && ty.Type == xdr.ScSpecTypeMap:
		return c.mapToJSON(*obj.Map, ty.Map, depth)

	case obj.Type == xdr.ScObjectTypeScoU64 && ty.Type == xdr.ScSpecTypeU64:
		return json.Number(strconv.FormatUint(uint64(*obj.U64), 10)), nil

	case obj.Type == xdr.ScObjectTypeScoI64 && ty.Type == xdr.ScSpecTypeI64:
		return json.Number(strconv.FormatInt(int64(*obj.I64), 10)), nil

	case obj.Type == xdr.ScObjectTypeScoU128 && ty.Type == xdr.ScSpecTypeU128:
		return formatU128(*obj.U128), nil

	case obj.Type == xdr.ScObjectTypeScoI128 && ty.Type == xdr.ScSpecTypeI128:
		return formatI128(*obj.I128), nil

	case obj.Type == xdr.ScObjectTypeScoBytes &&
		(ty.Type == xdr.ScSpecTypeBytes || ty.Type == xdr.ScSpecTypeBytesN):
		return hex.EncodeToString(*obj.Bin), nil

	case obj.Type == xdr.ScObjectTypeScoAccountId && ty.Type == xdr.ScSpecTypeAccountId:
		return accountIdString(*obj.AccountId)

	case obj.Type == xdr.ScObjectTypeScoContractCode:
		return nil, errors.WrapUnsupported("ContractCode")

	case ty.Type == xdr.ScSpecTypeBitset || ty.Type == xdr.ScSpecTypeStatus ||
		ty.Type == xdr.ScSpecTypeResult || ty.Type == xdr.ScSpecTypeSet:
		return nil, errors.WrapUnsupported(ty.String())
	}
	return nil, errors.WrapInvalidValue(ty.String())
}

func (c *Codec) vecToJSON(vec xdr.ScVec, elemType *xdr.ScSpecTypeDef, depth int) (interface{}, error) {
	items := make([]interface{}, len(vec))
	for i, elem := range vec {
		v, err := c.toJSON(elem, elemType, depth+1)
		if err != nil {
			return nil, err
		}
		items[i] = v
	}
	return items, nil
}

// mapToJSON projects a schema map onto a JSON object in canonical key
// order. String-shaped keys project to their raw text; any other key is
// stringified as compact JSON, which is lossy for structured keys.
func (c *Codec) mapToJSON(m xdr.ScMap, mapType *xdr.ScSpecTypeMapDef, depth int) (interface{}, error) {
	out := orderedmap.New[string, interface{}]()
	for _, entry := range m {
		kj, err := c.toJSON(entry.Key, &mapType.KeyType, depth+1)
		if err != nil {
			return nil, err
		}
		key, err := stringifyKey(kj)
		if err != nil {
			return nil, err
		}
		v, err := c.toJSON(entry.Val, &mapType.ValueType, depth+1)
		if err != nil {
			return nil, err
		}
		out.Set(key, v)
	}
	return out, nil
}

func (c *Codec) udtToJSON(name string, obj *xdr.ScObject, depth int) (interface{}, error) {
	entry, err := c.spec.Find(name)
	if err != nil {
		return nil, err
	}
	switch {
	case entry.Kind == xdr.ScSpecEntryKindUdtStructV0 && obj.Type == xdr.ScObjectTypeScoMap:
		return c.structToJSON(entry.UdtStructV0, *obj.Map, depth)
	case entry.Kind == xdr.ScSpecEntryKindUdtStructV0 && obj.Type == xdr.ScObjectTypeScoVec:
		return c.tupleStructToJSON(entry.UdtStructV0, *obj.Vec, depth)
	case entry.Kind == xdr.ScSpecEntryKindUdtUnionV0 && obj.Type == xdr.ScObjectTypeScoVec:
		return c.unionToJSON(entry.UdtUnionV0, *obj.Vec, depth)
	}
	return nil, errors.WrapInvalidValue(name)
}

// structToJSON renders the struct's fields in declared order, looking each
// field's symbol up in the canonically sorted map.
func (c *Codec) structToJSON(strukt *xdr.ScSpecUdtStructV0, m xdr.ScMap, depth int) (interface{}, error) {
	out := orderedmap.New[string, interface{}]()
	for _, field := range strukt.Fields {
		entry := findMapEntry(m, field.Name)
		if entry == nil {
			return nil, errors.WrapInvalidValuef(strukt.Name, "missing field %q", field.Name)
		}
		v, err := c.toJSON(entry.Val, &field.Type, depth+1)
		if err != nil {
			return nil, err
		}
		out.Set(field.Name, v)
	}
	return out, nil
}

func findMapEntry(m xdr.ScMap, name string) *xdr.ScMapEntry {
	for i := range m {
		if m[i].Key.Type == xdr.ScValTypeScvSymbol && string(*m[i].Key.Sym) == name {
			return &m[i]
		}
	}
	return nil
}

func (c *Codec) tupleStructToJSON(strukt *xdr.ScSpecUdtStructV0, vec xdr.ScVec, depth int) (interface{}, error) {
	if len(vec) != len(strukt.Fields) {
		return nil, errors.WrapInvalidValuef(strukt.Name, "expected %d fields, got %d", len(strukt.Fields), len(vec))
	}
	items := make([]interface{}, len(vec))
	for i, field := range strukt.Fields {
		v, err := c.toJSON(vec[i], &field.Type, depth+1)
		if err != nil {
			return nil, err
		}
		items[i] = v
	}
	return items, nil
}

func (c *Codec) unionToJSON(union *xdr.ScSpecUdtUnionV0, vec xdr.ScVec, depth int) (interface{}, error) {
	if len(vec) == 0 || vec[0].Type != xdr.ScValTypeScvSymbol {
		return nil, errors.WrapInvalidValuef(union.Name, "union value must start with a case symbol")
	}
	caseName := string(*vec[0].Sym)

	var found *xdr.ScSpecUdtUnionCaseV0
	for i := range union.Cases {
		if union.Cases[i].Name == caseName {
			found = &union.Cases[i]
			break
		}
	}
	if found == nil {
		return nil, errors.WrapEnumCase(caseName, union.Name)
	}

	if found.Type == nil {
		return caseName, nil
	}
	if len(vec) < 2 {
		return nil, errors.WrapEnumMissingSecondValue(caseName, found.Type.String())
	}
	payload, err := c.toJSON(vec[1], found.Type, depth+1)
	if err != nil {
		return nil, err
	}
	out := orderedmap.New[string, interface{}]()
	out.Set(caseName, payload)
	return out, nil
}

// constEnumToJSON validates a numeric value against the declared cases of a
// const enum before rendering it.
func (c *Codec) constEnumToJSON(name string, value uint32) (interface{}, error) {
	entry, err := c.spec.Find(name)
	if err != nil {
		return nil, err
	}
	var cases []xdr.ScSpecUdtEnumCaseV0
	switch entry.Kind {
	case xdr.ScSpecEntryKindUdtEnumV0:
		cases = entry.UdtEnumV0.Cases
	case xdr.ScSpecEntryKindUdtErrorEnumV0:
		cases = errorEnumCases(entry.UdtErrorEnumV0)
	default:
		return nil, errors.WrapInvalidValue(name)
	}
	for _, cs := range cases {
		if uint32(cs.Value) == value {
			return json.Number(strconv.FormatUint(uint64(value), 10)), nil
		}
	}
	return nil, errors.WrapEnumConst(value)
}

// ToJSON converts a value without type direction. Unlike the schema-driven
// path, byte strings come out as JSON arrays of byte numbers, which suits
// byte-by-byte inspection of ad-hoc values.
func ToJSON(val xdr.ScVal) (interface{}, error) {
	return valToJSON(val, 0)
}

func valToJSON(val xdr.ScVal, depth int) (interface{}, error) {
	if depth > maxDepth {
		return nil, errors.ErrMaxDepth
	}

	switch val.Type {
	case xdr.ScValTypeScvStatic:
		switch *val.Ic {
		case xdr.ScStaticScsTrue:
			return true, nil
		case xdr.ScStaticScsFalse:
			return false, nil
		case xdr.ScStaticScsVoid:
			return nil, nil
		}
		return nil, errors.WrapInvalidValue("")

	case xdr.ScValTypeScvU63:
		return json.Number(strconv.FormatInt(int64(*val.U63), 10)), nil
	case xdr.ScValTypeScvU32:
		return json.Number(strconv.FormatUint(uint64(*val.U32), 10)), nil
	case xdr.ScValTypeScvI32:
		return json.Number(strconv.FormatInt(int64(*val.I32), 10)), nil
	case xdr.ScValTypeScvSymbol:
		return symbolString(*val.Sym)

	case xdr.ScValTypeScvObject:
		obj := val.Object()
		if obj == nil {
			return nil, nil
		}
		switch obj.Type {
		case xdr.ScObjectTypeScoVec:
			items := make([]interface{}, len(*obj.Vec))
			for i, elem := range *obj.Vec {
				v, err := valToJSON(elem, depth+1)
				if err != nil {
					return nil, err
				}
				items[i] = v
			}
			return items, nil
		case xdr.ScObjectTypeScoMap:
			out := orderedmap.New[string, interface{}]()
			for _, entry := range *obj.Map {
				k, err := toString(entry.Key, depth+1)
				if err != nil {
					return nil, err
				}
				v, err := valToJSON(entry.Val, depth+1)
				if err != nil {
					return nil, err
				}
				out.Set(k, v)
			}
			return out, nil
		case xdr.ScObjectTypeScoU64:
			return json.Number(strconv.FormatUint(uint64(*obj.U64), 10)), nil
		case xdr.ScObjectTypeScoI64:
			return json.Number(strconv.FormatInt(int64(*obj.I64), 10)), nil
		case xdr.ScObjectTypeScoU128:
			return formatU128(*obj.U128), nil
		case xdr.ScObjectTypeScoI128:
			return formatI128(*obj.I128), nil
		case xdr.ScObjectTypeScoBytes:
			items := make([]interface{}, len(*obj.Bin))
			for i, b := range *obj.Bin {
				items[i] = json.Number(strconv.FormatUint(uint64(b), 10))
			}
			return items, nil
		case xdr.ScObjectTypeScoAccountId:
			return accountIdString(*obj.AccountId)
		case xdr.ScObjectTypeScoContractCode:
			return nil, errors.WrapUnsupported("ContractCode")
		}

	case xdr.ScValTypeScvBitset, xdr.ScValTypeScvStatus:
		return nil, errors.WrapUnsupported(val.Type.String())
	}
	return nil, errors.WrapInvalidValue("")
}

// ToString serializes a value as JSON text, except that a top-level symbol
// is written without surrounding quotes.
func ToString(val xdr.ScVal) (string, error) {
	return toString(val, 0)
}

func toString(val xdr.ScVal, depth int) (string, error) {
	if val.Type == xdr.ScValTypeScvSymbol {
		return symbolString(*val.Sym)
	}
	v, err := valToJSON(val, depth)
	if err != nil {
		return "", err
	}
	out, err := json.Marshal(v)
	if err != nil {
		return "", errors.WrapJSON(err)
	}
	return string(out), nil
}

func symbolString(sym xdr.ScSymbol) (string, error) {
	if !utf8.ValidString(string(sym)) {
		return "", errors.WrapInvalidValue("Symbol")
	}
	return string(sym), nil
}

func accountIdString(id xdr.AccountId) (string, error) {
	key, err := id.Ed25519Key()
	if err != nil {
		return "", errors.WrapInvalidValue("AccountId")
	}
	out, err := strkey.Encode(strkey.VersionByteAccountID, key[:])
	if err != nil {
		return "", errors.WrapInvalidValue("AccountId")
	}
	return out, nil
}

// stringifyKey projects a decoded key onto a JSON object key: strings stand
// as themselves, everything else is compact JSON text.
func stringifyKey(v interface{}) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	out, err := json.Marshal(v)
	if err != nil {
		return "", errors.WrapJSON(err)
	}
	return string(out), nil
}
