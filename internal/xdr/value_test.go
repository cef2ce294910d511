// Copyright 2025 dotandev
// SPDX-License-Identifier: Apache-2.0

package xdr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScSymbol(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "hello", false},
		{"max length", strings.Repeat("a", ScSymbolLimit), false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", ScSymbolLimit+1), true},
		{"non printable", "a\x01b", true},
		{"non ascii", "caf\xc3\xa9", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScSymbol(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewScBytesCap(t *testing.T) {
	_, err := NewScBytes(make([]byte, ScBytesLimit))
	assert.NoError(t, err)
	_, err = NewScBytes(make([]byte, ScBytesLimit+1))
	assert.Error(t, err)
}

func TestNewScVecCap(t *testing.T) {
	_, err := NewScVec(make([]ScVal, ScVecLimit+1)...)
	assert.Error(t, err)
}

func TestScValObjectAccessors(t *testing.T) {
	some := ScValObject(ScObjectU64(1))
	require.NotNil(t, some.Object())
	assert.False(t, some.IsObjectNone())

	none := ScValObjectNone()
	assert.Nil(t, none.Object())
	assert.True(t, none.IsObjectNone())

	assert.Nil(t, ScValU32(1).Object())
	assert.False(t, ScValU32(1).IsObjectNone())
}

func TestAccountIdEd25519Key(t *testing.T) {
	var raw [32]byte
	raw[31] = 9
	id := AccountIdEd25519(raw)
	got, err := id.Ed25519Key()
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}
