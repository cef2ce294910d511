// Copyright 2025 dotandev
// SPDX-License-Identifier: Apache-2.0

package contractspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotandev/strval/internal/errors"
	"github.com/dotandev/strval/internal/wasm"
	"github.com/dotandev/strval/internal/xdr"
)

func moduleWithEntries(t *testing.T, entries ...xdr.ScSpecEntry) []byte {
	t.Helper()
	var payload []byte
	for _, entry := range entries {
		data, err := xdr.MarshalBinary(entry)
		require.NoError(t, err)
		payload = append(payload, data...)
	}
	return wasm.AppendCustomSection(nil, SectionName, payload)
}

func testEntries() []xdr.ScSpecEntry {
	return []xdr.ScSpecEntry{
		helloEntry(),
		xdr.SpecEntryStruct(xdr.ScSpecUdtStructV0{
			Name: "Pair",
			Fields: []xdr.ScSpecUdtStructFieldV0{
				{Name: "a", Type: xdr.SpecTypeSimple(xdr.ScSpecTypeU32)},
			},
		}),
	}
}

// helloEntry is the hello(to: Symbol) -> Vec<Symbol> declaration used
// across the tests.
func helloEntry() xdr.ScSpecEntry {
	return xdr.SpecEntryFunction(xdr.ScSpecFunctionV0{
		Name: "hello",
		Inputs: []xdr.ScSpecFunctionInputV0{
			{Name: "to", Type: xdr.SpecTypeSimple(xdr.ScSpecTypeSymbol)},
		},
		Outputs: []xdr.ScSpecTypeDef{
			xdr.SpecTypeVec(xdr.SpecTypeSimple(xdr.ScSpecTypeSymbol)),
		},
	})
}

func TestFromWasm(t *testing.T) {
	module := moduleWithEntries(t, testEntries()...)
	spec, err := FromWasm(module)
	require.NoError(t, err)

	entries := spec.Entries()
	require.Len(t, entries, 2)
	// Declaration order is preserved.
	assert.Equal(t, "hello", entries[0].Name())
	assert.Equal(t, "Pair", entries[1].Name())
}

func TestFromWasmMissingSection(t *testing.T) {
	_, err := FromWasm(wasm.EmptyModule())
	assert.ErrorIs(t, err, errors.ErrModuleRead)
}

func TestFromWasmMalformedPayload(t *testing.T) {
	module := wasm.AppendCustomSection(nil, SectionName, []byte{0xff, 0xff, 0xff, 0xff})
	_, err := FromWasm(module)
	assert.ErrorIs(t, err, errors.ErrModuleRead)
}

func TestFromWasmNotAModule(t *testing.T) {
	_, err := FromWasm([]byte("not a module"))
	assert.ErrorIs(t, err, errors.ErrModuleRead)
}

func TestFind(t *testing.T) {
	spec := New(testEntries())

	entry, err := spec.Find("Pair")
	require.NoError(t, err)
	assert.Equal(t, xdr.ScSpecEntryKindUdtStructV0, entry.Kind)

	_, err = spec.Find("absent")
	assert.ErrorIs(t, err, errors.ErrMissingEntry)
}

func TestFindFunction(t *testing.T) {
	spec := New(testEntries())

	fn, err := spec.FindFunction("hello")
	require.NoError(t, err)
	assert.Equal(t, xdr.ScSymbol("hello"), fn.Name)

	// A non-function entry of the requested name is reported as missing.
	_, err = spec.FindFunction("Pair")
	assert.ErrorIs(t, err, errors.ErrMissingEntry)
}

func TestZeroValueSpecRejectsLookups(t *testing.T) {
	var spec Spec
	_, err := spec.Find("anything")
	assert.ErrorIs(t, err, errors.ErrMissingEntry)
}
