// Copyright 2025 dotandev
// SPDX-License-Identifier: Apache-2.0

package xdr

import (
	"bytes"
	"fmt"
	"sort"
)

// Compare defines the SCV total order: values order first by variant
// discriminant, then by their inner value. Object(None) sorts before any
// Object(Some); objects themselves order by object discriminant, then
// element-wise for vectors and maps, lexicographically for byte strings and
// symbols. Returns -1, 0 or 1.
func Compare(a, b ScVal) int {
	if a.Type != b.Type {
		return cmpInt(int64(a.Type), int64(b.Type))
	}
	switch a.Type {
	case ScValTypeScvU63:
		return cmpInt(int64(*a.U63), int64(*b.U63))
	case ScValTypeScvU32:
		return cmpUint(uint64(*a.U32), uint64(*b.U32))
	case ScValTypeScvI32:
		return cmpInt(int64(*a.I32), int64(*b.I32))
	case ScValTypeScvStatic:
		return cmpInt(int64(*a.Ic), int64(*b.Ic))
	case ScValTypeScvObject:
		return compareObjectPtr(a.Object(), b.Object())
	case ScValTypeScvSymbol:
		return bytes.Compare([]byte(*a.Sym), []byte(*b.Sym))
	case ScValTypeScvBitset:
		return cmpUint(uint64(*a.Bits), uint64(*b.Bits))
	case ScValTypeScvStatus:
		return compareStatus(*a.Status, *b.Status)
	}
	return 0
}

func compareObjectPtr(a, b *ScObject) int {
	if a == nil || b == nil {
		// None < Some
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}
	return compareObject(*a, *b)
}

func compareObject(a, b ScObject) int {
	if a.Type != b.Type {
		return cmpInt(int64(a.Type), int64(b.Type))
	}
	switch a.Type {
	case ScObjectTypeScoVec:
		return compareVec(*a.Vec, *b.Vec)
	case ScObjectTypeScoMap:
		return compareMap(*a.Map, *b.Map)
	case ScObjectTypeScoU64:
		return cmpUint(uint64(*a.U64), uint64(*b.U64))
	case ScObjectTypeScoI64:
		return cmpInt(int64(*a.I64), int64(*b.I64))
	case ScObjectTypeScoU128:
		return compareU128(*a.U128, *b.U128)
	case ScObjectTypeScoI128:
		return compareI128(*a.I128, *b.I128)
	case ScObjectTypeScoBytes:
		return bytes.Compare(*a.Bin, *b.Bin)
	case ScObjectTypeScoContractCode:
		return compareContractCode(*a.ContractCode, *b.ContractCode)
	case ScObjectTypeScoAccountId:
		return compareAccountId(*a.AccountId, *b.AccountId)
	}
	return 0
}

func compareVec(a, b ScVec) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmpInt(int64(len(a)), int64(len(b)))
}

func compareMap(a, b ScMap) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := Compare(a[i].Key, b[i].Key); c != 0 {
			return c
		}
		if c := Compare(a[i].Val, b[i].Val); c != 0 {
			return c
		}
	}
	return cmpInt(int64(len(a)), int64(len(b)))
}

func compareU128(a, b Int128Parts) int {
	if c := cmpUint(uint64(a.Hi), uint64(b.Hi)); c != 0 {
		return c
	}
	return cmpUint(uint64(a.Lo), uint64(b.Lo))
}

func compareI128(a, b Int128Parts) int {
	if c := cmpInt(int64(a.Hi), int64(b.Hi)); c != 0 {
		return c
	}
	return cmpUint(uint64(a.Lo), uint64(b.Lo))
}

func compareStatus(a, b ScStatus) int {
	if a.Type != b.Type {
		return cmpInt(int64(a.Type), int64(b.Type))
	}
	if a.UnknownCode != nil && b.UnknownCode != nil {
		return cmpUint(uint64(*a.UnknownCode), uint64(*b.UnknownCode))
	}
	return 0
}

func compareContractCode(a, b ScContractCode) int {
	if a.Type != b.Type {
		return cmpInt(int64(a.Type), int64(b.Type))
	}
	if a.WasmRef != nil && b.WasmRef != nil {
		return bytes.Compare(a.WasmRef[:], b.WasmRef[:])
	}
	return 0
}

func compareAccountId(a, b AccountId) int {
	if a.Type != b.Type {
		return cmpInt(int64(a.Type), int64(b.Type))
	}
	if a.Ed25519 != nil && b.Ed25519 != nil {
		return bytes.Compare(a.Ed25519[:], b.Ed25519[:])
	}
	return 0
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// SortedScMap builds the canonical map from entries: sorted strictly
// ascending by key under the SCV total order. Duplicate keys are rejected.
func SortedScMap(entries []ScMapEntry) (ScMap, error) {
	if len(entries) > ScMapLimit {
		return nil, fmt.Errorf("map length %d exceeds %d", len(entries), ScMapLimit)
	}
	sorted := make([]ScMapEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Compare(sorted[i].Key, sorted[j].Key) < 0
	})
	for i := 1; i < len(sorted); i++ {
		if Compare(sorted[i-1].Key, sorted[i].Key) == 0 {
			return nil, fmt.Errorf("duplicate map key at position %d", i)
		}
	}
	return ScMap(sorted), nil
}

// Validate checks that the map is in canonical form: keys strictly
// ascending under the SCV total order.
func (m ScMap) Validate() error {
	for i := 1; i < len(m); i++ {
		if Compare(m[i-1].Key, m[i].Key) >= 0 {
			return fmt.Errorf("map keys not strictly ascending at position %d", i)
		}
	}
	return nil
}

// Validate walks the value and checks every nested map for canonical
// ordering. Decoders that must reject non-canonical input call this after
// unmarshaling.
func (u ScVal) Validate() error {
	obj := u.Object()
	if obj == nil {
		return nil
	}
	switch obj.Type {
	case ScObjectTypeScoVec:
		for _, item := range *obj.Vec {
			if err := item.Validate(); err != nil {
				return err
			}
		}
	case ScObjectTypeScoMap:
		if err := obj.Map.Validate(); err != nil {
			return err
		}
		for _, entry := range *obj.Map {
			if err := entry.Key.Validate(); err != nil {
				return err
			}
			if err := entry.Val.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}
