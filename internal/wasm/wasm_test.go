// Copyright 2025 dotandev
// SPDX-License-Identifier: Apache-2.0

package wasm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendExtractRoundTrip(t *testing.T) {
	payload := []byte{0xde, 0xad, 0xbe, 0xef}
	module := AppendCustomSection(nil, "contractspecv0", payload)

	got, err := ExtractCustomSection(module, "contractspecv0")
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestExtractMissingSection(t *testing.T) {
	module := AppendCustomSection(nil, "other", []byte{1, 2, 3})
	got, err := ExtractCustomSection(module, "contractspecv0")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestExtractSkipsEarlierSections(t *testing.T) {
	module := AppendCustomSection(nil, "first", []byte{9, 9})
	module = AppendCustomSection(module, "second", []byte{7})

	got, err := ExtractCustomSection(module, "second")
	require.NoError(t, err)
	assert.Equal(t, []byte{7}, got)
}

func TestExtractLargeSection(t *testing.T) {
	// Payload large enough to need a multi-byte LEB128 section length.
	payload := []byte(strings.Repeat("x", 300))
	module := AppendCustomSection(nil, "big", payload)
	got, err := ExtractCustomSection(module, "big")
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestExtractErrors(t *testing.T) {
	tests := []struct {
		name   string
		module []byte
	}{
		{"too short", []byte{0x00, 0x61}},
		{"bad magic", []byte{0xff, 0xff, 0xff, 0xff, 1, 0, 0, 0}},
		{
			"section past end",
			append(EmptyModule(), 0x00, 0x7f), // claims 127 bytes, has none
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractCustomSection(tt.module, "any")
			assert.Error(t, err)
		})
	}
}

func FuzzExtractCustomSection(f *testing.F) {
	f.Add(EmptyModule())
	f.Add(AppendCustomSection(nil, "contractspecv0", []byte{1, 2, 3}))
	f.Add([]byte{})
	f.Fuzz(func(t *testing.T, module []byte) {
		// Arbitrary input must fail gracefully, never panic.
		_, _ = ExtractCustomSection(module, "contractspecv0")
	})
}
