// Copyright 2025 dotandev
// SPDX-License-Identifier: Apache-2.0

// Package xdr defines the tagged binary value model used on the wire and on
// ledger, the contract spec entry types, and the small ledger subset needed
// to seed a sandbox. The types follow the union/enum conventions of
// github.com/stellar/go-xdr/xdr3, which handles the binary framing
// (big-endian fixed-width integers, 4-byte-aligned blobs with 32-bit length
// prefixes, 32-bit discriminants).
package xdr

import (
	"fmt"
)

// Size caps shared by byte strings and vectors.
const (
	ScSymbolLimit = 10
	ScBytesLimit  = 256000
	ScVecLimit    = 256000
	ScMapLimit    = 256000
)

type Int32 int32

type Uint32 uint32

type Int64 int64

type Uint64 uint64

// Hash is a 32-byte digest.
type Hash [32]byte

// Uint256 is a 32-byte big-endian integer, used here for ed25519 keys.
type Uint256 [32]byte

// ScSymbol is a short printable identifier used as map keys, union tags and
// function names.
type ScSymbol string

// NewScSymbol validates the symbol domain: non-empty, at most ScSymbolLimit
// bytes, printable ASCII.
func NewScSymbol(s string) (ScSymbol, error) {
	if len(s) == 0 {
		return "", fmt.Errorf("symbol is empty")
	}
	if len(s) > ScSymbolLimit {
		return "", fmt.Errorf("symbol %q exceeds %d bytes", s, ScSymbolLimit)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return "", fmt.Errorf("symbol %q contains non-printable byte 0x%02x", s, s[i])
		}
	}
	return ScSymbol(s), nil
}

// ScBytes is a length-capped byte string.
type ScBytes []byte

// NewScBytes enforces the byte string cap.
func NewScBytes(b []byte) (ScBytes, error) {
	if len(b) > ScBytesLimit {
		return nil, fmt.Errorf("byte string length %d exceeds %d", len(b), ScBytesLimit)
	}
	return ScBytes(b), nil
}

// ScVec is a length-capped ordered list of values.
type ScVec []ScVal

// NewScVec enforces the vector cap.
func NewScVec(vals ...ScVal) (ScVec, error) {
	if len(vals) > ScVecLimit {
		return nil, fmt.Errorf("vector length %d exceeds %d", len(vals), ScVecLimit)
	}
	return ScVec(vals), nil
}

type ScMapEntry struct {
	Key ScVal
	Val ScVal
}

// ScMap is a list of entries sorted strictly ascending by key. Build one
// with SortedScMap to get the canonical ordering.
type ScMap []ScMapEntry

// Int128Parts holds a 128-bit integer as two 64-bit halves.
type Int128Parts struct {
	Lo Uint64
	Hi Uint64
}

type ScValType int32

const (
	ScValTypeScvU63    ScValType = 0
	ScValTypeScvU32    ScValType = 1
	ScValTypeScvI32    ScValType = 2
	ScValTypeScvStatic ScValType = 3
	ScValTypeScvObject ScValType = 4
	ScValTypeScvSymbol ScValType = 5
	ScValTypeScvBitset ScValType = 6
	ScValTypeScvStatus ScValType = 7
)

func (e ScValType) ValidEnum(v int32) bool {
	return v >= 0 && v <= 7
}

func (e ScValType) String() string {
	switch e {
	case ScValTypeScvU63:
		return "ScvU63"
	case ScValTypeScvU32:
		return "ScvU32"
	case ScValTypeScvI32:
		return "ScvI32"
	case ScValTypeScvStatic:
		return "ScvStatic"
	case ScValTypeScvObject:
		return "ScvObject"
	case ScValTypeScvSymbol:
		return "ScvSymbol"
	case ScValTypeScvBitset:
		return "ScvBitset"
	case ScValTypeScvStatus:
		return "ScvStatus"
	}
	return fmt.Sprintf("ScValType(%d)", int32(e))
}

type ScStatic int32

const (
	ScStaticScsVoid                  ScStatic = 0
	ScStaticScsTrue                  ScStatic = 1
	ScStaticScsFalse                 ScStatic = 2
	ScStaticScsLedgerKeyContractCode ScStatic = 3
)

func (e ScStatic) ValidEnum(v int32) bool {
	return v >= 0 && v <= 3
}

type ScStatusType int32

const (
	ScStatusTypeSstOk           ScStatusType = 0
	ScStatusTypeSstUnknownError ScStatusType = 1
)

func (e ScStatusType) ValidEnum(v int32) bool {
	return v == 0 || v == 1
}

// ScStatus is carried for completeness; the codec rejects it as unsupported.
type ScStatus struct {
	Type        ScStatusType
	UnknownCode *Uint32
}

func (u ScStatus) SwitchFieldName() string {
	return "Type"
}

func (u ScStatus) ArmForSwitch(sw int32) (string, bool) {
	switch ScStatusType(sw) {
	case ScStatusTypeSstOk:
		return "", true
	case ScStatusTypeSstUnknownError:
		return "UnknownCode", true
	}
	return "", false
}

// ScVal is the closed sum of wire values. The Obj arm is doubly indirect:
// the union arm is always present while the inner pointer is the XDR
// optional, so Object(None) is a legal value.
type ScVal struct {
	Type   ScValType
	U63    *Int64
	U32    *Uint32
	I32    *Int32
	Ic     *ScStatic
	Obj    **ScObject
	Sym    *ScSymbol
	Bits   *Uint64
	Status *ScStatus
}

func (u ScVal) SwitchFieldName() string {
	return "Type"
}

func (u ScVal) ArmForSwitch(sw int32) (string, bool) {
	switch ScValType(sw) {
	case ScValTypeScvU63:
		return "U63", true
	case ScValTypeScvU32:
		return "U32", true
	case ScValTypeScvI32:
		return "I32", true
	case ScValTypeScvStatic:
		return "Ic", true
	case ScValTypeScvObject:
		return "Obj", true
	case ScValTypeScvSymbol:
		return "Sym", true
	case ScValTypeScvBitset:
		return "Bits", true
	case ScValTypeScvStatus:
		return "Status", true
	}
	return "", false
}

type ScObjectType int32

const (
	ScObjectTypeScoVec          ScObjectType = 0
	ScObjectTypeScoMap          ScObjectType = 1
	ScObjectTypeScoU64          ScObjectType = 2
	ScObjectTypeScoI64          ScObjectType = 3
	ScObjectTypeScoU128         ScObjectType = 4
	ScObjectTypeScoI128         ScObjectType = 5
	ScObjectTypeScoBytes        ScObjectType = 6
	ScObjectTypeScoContractCode ScObjectType = 7
	ScObjectTypeScoAccountId    ScObjectType = 8
)

func (e ScObjectType) ValidEnum(v int32) bool {
	return v >= 0 && v <= 8
}

// ScObject is the boxed half of the value sum.
type ScObject struct {
	Type         ScObjectType
	Vec          *ScVec
	Map          *ScMap
	U64          *Uint64
	I64          *Int64
	U128         *Int128Parts
	I128         *Int128Parts
	Bin          *ScBytes
	ContractCode *ScContractCode
	AccountId    *AccountId
}

func (u ScObject) SwitchFieldName() string {
	return "Type"
}

func (u ScObject) ArmForSwitch(sw int32) (string, bool) {
	switch ScObjectType(sw) {
	case ScObjectTypeScoVec:
		return "Vec", true
	case ScObjectTypeScoMap:
		return "Map", true
	case ScObjectTypeScoU64:
		return "U64", true
	case ScObjectTypeScoI64:
		return "I64", true
	case ScObjectTypeScoU128:
		return "U128", true
	case ScObjectTypeScoI128:
		return "I128", true
	case ScObjectTypeScoBytes:
		return "Bin", true
	case ScObjectTypeScoContractCode:
		return "ContractCode", true
	case ScObjectTypeScoAccountId:
		return "AccountId", true
	}
	return "", false
}

type ScContractCodeType int32

const (
	ScContractCodeTypeSccontractCodeWasmRef ScContractCodeType = 0
	ScContractCodeTypeSccontractCodeToken   ScContractCodeType = 1
)

func (e ScContractCodeType) ValidEnum(v int32) bool {
	return v == 0 || v == 1
}

type ScContractCode struct {
	Type    ScContractCodeType
	WasmRef *Hash
}

func (u ScContractCode) SwitchFieldName() string {
	return "Type"
}

func (u ScContractCode) ArmForSwitch(sw int32) (string, bool) {
	switch ScContractCodeType(sw) {
	case ScContractCodeTypeSccontractCodeWasmRef:
		return "WasmRef", true
	case ScContractCodeTypeSccontractCodeToken:
		return "", true
	}
	return "", false
}

type PublicKeyType int32

const PublicKeyTypePublicKeyTypeEd25519 PublicKeyType = 0

func (e PublicKeyType) ValidEnum(v int32) bool {
	return v == 0
}

type PublicKey struct {
	Type    PublicKeyType
	Ed25519 *Uint256
}

func (u PublicKey) SwitchFieldName() string {
	return "Type"
}

func (u PublicKey) ArmForSwitch(sw int32) (string, bool) {
	if PublicKeyType(sw) == PublicKeyTypePublicKeyTypeEd25519 {
		return "Ed25519", true
	}
	return "", false
}

type AccountId PublicKey

func (u AccountId) SwitchFieldName() string {
	return "Type"
}

func (u AccountId) ArmForSwitch(sw int32) (string, bool) {
	return PublicKey(u).ArmForSwitch(sw)
}

// AccountIdEd25519 wraps a raw ed25519 public key.
func AccountIdEd25519(key [32]byte) AccountId {
	k := Uint256(key)
	return AccountId{Type: PublicKeyTypePublicKeyTypeEd25519, Ed25519: &k}
}

// Ed25519Key returns the raw key bytes of an ed25519 account id.
func (u AccountId) Ed25519Key() ([32]byte, error) {
	if u.Type != PublicKeyTypePublicKeyTypeEd25519 || u.Ed25519 == nil {
		return [32]byte{}, fmt.Errorf("account id is not an ed25519 key")
	}
	return [32]byte(*u.Ed25519), nil
}

// Value constructors. Each returns a fully-tagged ScVal; the object
// constructors box their argument.

func ScValU63(v int64) ScVal {
	i := Int64(v)
	return ScVal{Type: ScValTypeScvU63, U63: &i}
}

func ScValU32(v uint32) ScVal {
	i := Uint32(v)
	return ScVal{Type: ScValTypeScvU32, U32: &i}
}

func ScValI32(v int32) ScVal {
	i := Int32(v)
	return ScVal{Type: ScValTypeScvI32, I32: &i}
}

func ScValStatic(s ScStatic) ScVal {
	return ScVal{Type: ScValTypeScvStatic, Ic: &s}
}

func ScValSymbol(sym ScSymbol) ScVal {
	return ScVal{Type: ScValTypeScvSymbol, Sym: &sym}
}

// ScValObject boxes obj as Object(Some).
func ScValObject(obj ScObject) ScVal {
	p := &obj
	return ScVal{Type: ScValTypeScvObject, Obj: &p}
}

// ScValObjectNone is the Object(None) value.
func ScValObjectNone() ScVal {
	var p *ScObject
	return ScVal{Type: ScValTypeScvObject, Obj: &p}
}

// Object returns the boxed object of an Object(Some) value, or nil for
// Object(None) and non-object values.
func (u ScVal) Object() *ScObject {
	if u.Type != ScValTypeScvObject || u.Obj == nil {
		return nil
	}
	return *u.Obj
}

// IsObjectNone reports whether the value is Object(None).
func (u ScVal) IsObjectNone() bool {
	return u.Type == ScValTypeScvObject && (u.Obj == nil || *u.Obj == nil)
}

func ScObjectVec(v ScVec) ScObject {
	return ScObject{Type: ScObjectTypeScoVec, Vec: &v}
}

func ScObjectMap(m ScMap) ScObject {
	return ScObject{Type: ScObjectTypeScoMap, Map: &m}
}

func ScObjectU64(v uint64) ScObject {
	i := Uint64(v)
	return ScObject{Type: ScObjectTypeScoU64, U64: &i}
}

func ScObjectI64(v int64) ScObject {
	i := Int64(v)
	return ScObject{Type: ScObjectTypeScoI64, I64: &i}
}

func ScObjectU128(parts Int128Parts) ScObject {
	return ScObject{Type: ScObjectTypeScoU128, U128: &parts}
}

func ScObjectI128(parts Int128Parts) ScObject {
	return ScObject{Type: ScObjectTypeScoI128, I128: &parts}
}

func ScObjectBytes(b ScBytes) ScObject {
	return ScObject{Type: ScObjectTypeScoBytes, Bin: &b}
}

func ScObjectAccountId(id AccountId) ScObject {
	return ScObject{Type: ScObjectTypeScoAccountId, AccountId: &id}
}
