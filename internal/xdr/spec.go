// Copyright 2025 dotandev
// SPDX-License-Identifier: Apache-2.0

package xdr

import (
	"fmt"
	"strings"
)

type ScSpecType int32

const (
	ScSpecTypeVal       ScSpecType = 0
	ScSpecTypeU32       ScSpecType = 1
	ScSpecTypeI32       ScSpecType = 2
	ScSpecTypeU64       ScSpecType = 3
	ScSpecTypeI64       ScSpecType = 4
	ScSpecTypeU128      ScSpecType = 5
	ScSpecTypeI128      ScSpecType = 6
	ScSpecTypeBool      ScSpecType = 7
	ScSpecTypeSymbol    ScSpecType = 8
	ScSpecTypeBitset    ScSpecType = 9
	ScSpecTypeStatus    ScSpecType = 10
	ScSpecTypeBytes     ScSpecType = 11
	ScSpecTypeAccountId ScSpecType = 12

	ScSpecTypeOption ScSpecType = 1000
	ScSpecTypeResult ScSpecType = 1001
	ScSpecTypeVec    ScSpecType = 1002
	ScSpecTypeSet    ScSpecType = 1003
	ScSpecTypeMap    ScSpecType = 1004
	ScSpecTypeTuple  ScSpecType = 1005
	ScSpecTypeBytesN ScSpecType = 1006

	ScSpecTypeUdt ScSpecType = 2000
)

func (e ScSpecType) ValidEnum(v int32) bool {
	return (v >= 0 && v <= 12) || (v >= 1000 && v <= 1006) || v == 2000
}

func (e ScSpecType) String() string {
	switch e {
	case ScSpecTypeVal:
		return "Val"
	case ScSpecTypeU32:
		return "U32"
	case ScSpecTypeI32:
		return "I32"
	case ScSpecTypeU64:
		return "U64"
	case ScSpecTypeI64:
		return "I64"
	case ScSpecTypeU128:
		return "U128"
	case ScSpecTypeI128:
		return "I128"
	case ScSpecTypeBool:
		return "Bool"
	case ScSpecTypeSymbol:
		return "Symbol"
	case ScSpecTypeBitset:
		return "Bitset"
	case ScSpecTypeStatus:
		return "Status"
	case ScSpecTypeBytes:
		return "Bytes"
	case ScSpecTypeAccountId:
		return "AccountId"
	case ScSpecTypeOption:
		return "Option"
	case ScSpecTypeResult:
		return "Result"
	case ScSpecTypeVec:
		return "Vec"
	case ScSpecTypeSet:
		return "Set"
	case ScSpecTypeMap:
		return "Map"
	case ScSpecTypeTuple:
		return "Tuple"
	case ScSpecTypeBytesN:
		return "BytesN"
	case ScSpecTypeUdt:
		return "Udt"
	}
	return fmt.Sprintf("ScSpecType(%d)", int32(e))
}

type ScSpecTypeOptionDef struct {
	ValueType ScSpecTypeDef
}

type ScSpecTypeResultDef struct {
	OkType    ScSpecTypeDef
	ErrorType ScSpecTypeDef
}

type ScSpecTypeVecDef struct {
	ElementType ScSpecTypeDef
}

type ScSpecTypeSetDef struct {
	ElementType ScSpecTypeDef
}

type ScSpecTypeMapDef struct {
	KeyType   ScSpecTypeDef
	ValueType ScSpecTypeDef
}

type ScSpecTypeTupleDef struct {
	ValueTypes []ScSpecTypeDef
}

type ScSpecTypeBytesNDef struct {
	N Uint32
}

type ScSpecTypeUdtDef struct {
	Name string
}

// ScSpecTypeDef is the recursive type language driving the codec.
type ScSpecTypeDef struct {
	Type   ScSpecType
	Option *ScSpecTypeOptionDef
	Result *ScSpecTypeResultDef
	Vec    *ScSpecTypeVecDef
	Set    *ScSpecTypeSetDef
	Map    *ScSpecTypeMapDef
	Tuple  *ScSpecTypeTupleDef
	BytesN *ScSpecTypeBytesNDef
	Udt    *ScSpecTypeUdtDef
}

func (u ScSpecTypeDef) SwitchFieldName() string {
	return "Type"
}

func (u ScSpecTypeDef) ArmForSwitch(sw int32) (string, bool) {
	switch ScSpecType(sw) {
	case ScSpecTypeOption:
		return "Option", true
	case ScSpecTypeResult:
		return "Result", true
	case ScSpecTypeVec:
		return "Vec", true
	case ScSpecTypeSet:
		return "Set", true
	case ScSpecTypeMap:
		return "Map", true
	case ScSpecTypeTuple:
		return "Tuple", true
	case ScSpecTypeBytesN:
		return "BytesN", true
	case ScSpecTypeUdt:
		return "Udt", true
	}
	// Scalars carry no arm.
	if sw >= 0 && sw <= 12 {
		return "", true
	}
	return "", false
}

// String renders the type for error messages, e.g. "Vec<Symbol>" or
// "Map<Symbol, U32>".
func (u ScSpecTypeDef) String() string {
	switch u.Type {
	case ScSpecTypeOption:
		return fmt.Sprintf("Option<%s>", u.Option.ValueType)
	case ScSpecTypeResult:
		return fmt.Sprintf("Result<%s, %s>", u.Result.OkType, u.Result.ErrorType)
	case ScSpecTypeVec:
		return fmt.Sprintf("Vec<%s>", u.Vec.ElementType)
	case ScSpecTypeSet:
		return fmt.Sprintf("Set<%s>", u.Set.ElementType)
	case ScSpecTypeMap:
		return fmt.Sprintf("Map<%s, %s>", u.Map.KeyType, u.Map.ValueType)
	case ScSpecTypeTuple:
		parts := make([]string, len(u.Tuple.ValueTypes))
		for i, t := range u.Tuple.ValueTypes {
			parts[i] = t.String()
		}
		return fmt.Sprintf("Tuple<%s>", strings.Join(parts, ", "))
	case ScSpecTypeBytesN:
		return fmt.Sprintf("BytesN<%d>", u.BytesN.N)
	case ScSpecTypeUdt:
		return u.Udt.Name
	}
	return u.Type.String()
}

// Spec type constructors.

func SpecTypeSimple(t ScSpecType) ScSpecTypeDef {
	return ScSpecTypeDef{Type: t}
}

func SpecTypeOption(valueType ScSpecTypeDef) ScSpecTypeDef {
	return ScSpecTypeDef{Type: ScSpecTypeOption, Option: &ScSpecTypeOptionDef{ValueType: valueType}}
}

func SpecTypeVec(elementType ScSpecTypeDef) ScSpecTypeDef {
	return ScSpecTypeDef{Type: ScSpecTypeVec, Vec: &ScSpecTypeVecDef{ElementType: elementType}}
}

func SpecTypeMap(keyType, valueType ScSpecTypeDef) ScSpecTypeDef {
	return ScSpecTypeDef{Type: ScSpecTypeMap, Map: &ScSpecTypeMapDef{KeyType: keyType, ValueType: valueType}}
}

func SpecTypeTuple(valueTypes ...ScSpecTypeDef) ScSpecTypeDef {
	return ScSpecTypeDef{Type: ScSpecTypeTuple, Tuple: &ScSpecTypeTupleDef{ValueTypes: valueTypes}}
}

func SpecTypeBytesN(n uint32) ScSpecTypeDef {
	return ScSpecTypeDef{Type: ScSpecTypeBytesN, BytesN: &ScSpecTypeBytesNDef{N: Uint32(n)}}
}

func SpecTypeUdt(name string) ScSpecTypeDef {
	return ScSpecTypeDef{Type: ScSpecTypeUdt, Udt: &ScSpecTypeUdtDef{Name: name}}
}

type ScSpecFunctionInputV0 struct {
	Name string
	Type ScSpecTypeDef
}

type ScSpecFunctionV0 struct {
	Name    ScSymbol
	Inputs  []ScSpecFunctionInputV0
	Outputs []ScSpecTypeDef
}

type ScSpecUdtStructFieldV0 struct {
	Name string
	Type ScSpecTypeDef
}

type ScSpecUdtStructV0 struct {
	Name   string
	Fields []ScSpecUdtStructFieldV0
}

type ScSpecUdtUnionCaseV0 struct {
	Name string
	// Type is nil for payloadless cases.
	Type *ScSpecTypeDef
}

type ScSpecUdtUnionV0 struct {
	Name  string
	Cases []ScSpecUdtUnionCaseV0
}

type ScSpecUdtEnumCaseV0 struct {
	Name  string
	Value Uint32
}

type ScSpecUdtEnumV0 struct {
	Name  string
	Cases []ScSpecUdtEnumCaseV0
}

type ScSpecUdtErrorEnumCaseV0 struct {
	Name  string
	Value Uint32
}

type ScSpecUdtErrorEnumV0 struct {
	Name  string
	Cases []ScSpecUdtErrorEnumCaseV0
}

type ScSpecEntryKind int32

const (
	ScSpecEntryKindFunctionV0     ScSpecEntryKind = 0
	ScSpecEntryKindUdtStructV0    ScSpecEntryKind = 1
	ScSpecEntryKindUdtUnionV0     ScSpecEntryKind = 2
	ScSpecEntryKindUdtEnumV0      ScSpecEntryKind = 3
	ScSpecEntryKindUdtErrorEnumV0 ScSpecEntryKind = 4
)

func (e ScSpecEntryKind) ValidEnum(v int32) bool {
	return v >= 0 && v <= 4
}

// ScSpecEntry is one declaration in a contract's spec section.
type ScSpecEntry struct {
	Kind           ScSpecEntryKind
	FunctionV0     *ScSpecFunctionV0
	UdtStructV0    *ScSpecUdtStructV0
	UdtUnionV0     *ScSpecUdtUnionV0
	UdtEnumV0      *ScSpecUdtEnumV0
	UdtErrorEnumV0 *ScSpecUdtErrorEnumV0
}

func (u ScSpecEntry) SwitchFieldName() string {
	return "Kind"
}

func (u ScSpecEntry) ArmForSwitch(sw int32) (string, bool) {
	switch ScSpecEntryKind(sw) {
	case ScSpecEntryKindFunctionV0:
		return "FunctionV0", true
	case ScSpecEntryKindUdtStructV0:
		return "UdtStructV0", true
	case ScSpecEntryKindUdtUnionV0:
		return "UdtUnionV0", true
	case ScSpecEntryKindUdtEnumV0:
		return "UdtEnumV0", true
	case ScSpecEntryKindUdtErrorEnumV0:
		return "UdtErrorEnumV0", true
	}
	return "", false
}

// Name returns the declared name of the entry, whatever its kind.
func (u ScSpecEntry) Name() string {
	switch u.Kind {
	case ScSpecEntryKindFunctionV0:
		return string(u.FunctionV0.Name)
	case ScSpecEntryKindUdtStructV0:
		return u.UdtStructV0.Name
	case ScSpecEntryKindUdtUnionV0:
		return u.UdtUnionV0.Name
	case ScSpecEntryKindUdtEnumV0:
		return u.UdtEnumV0.Name
	case ScSpecEntryKindUdtErrorEnumV0:
		return u.UdtErrorEnumV0.Name
	}
	return ""
}

// Spec entry constructors used by tests and fixture generators.

func SpecEntryFunction(fn ScSpecFunctionV0) ScSpecEntry {
	return ScSpecEntry{Kind: ScSpecEntryKindFunctionV0, FunctionV0: &fn}
}

func SpecEntryStruct(s ScSpecUdtStructV0) ScSpecEntry {
	return ScSpecEntry{Kind: ScSpecEntryKindUdtStructV0, UdtStructV0: &s}
}

func SpecEntryUnion(u ScSpecUdtUnionV0) ScSpecEntry {
	return ScSpecEntry{Kind: ScSpecEntryKindUdtUnionV0, UdtUnionV0: &u}
}

func SpecEntryEnum(e ScSpecUdtEnumV0) ScSpecEntry {
	return ScSpecEntry{Kind: ScSpecEntryKindUdtEnumV0, UdtEnumV0: &e}
}

func SpecEntryErrorEnum(e ScSpecUdtErrorEnumV0) ScSpecEntry {
	return ScSpecEntry{Kind: ScSpecEntryKindUdtErrorEnumV0, UdtErrorEnumV0: &e}
}
