// Copyright 2025 dotandev
// SPDX-License-Identifier: Apache-2.0

// Package contractspec loads and queries the spec entries a contract module
// carries in its metadata custom section.
package contractspec

import (
	"bytes"
	"fmt"

	"github.com/dotandev/strval/internal/errors"
	"github.com/dotandev/strval/internal/wasm"
	"github.com/dotandev/strval/internal/xdr"
)

// SectionName is the custom section holding the spec entry stream.
const SectionName = "contractspecv0"

// Spec is an immutable ordered list of spec entries. The zero value has no
// entries and rejects every lookup; primitive-only helpers use it.
type Spec struct {
	entries []xdr.ScSpecEntry
}

// New builds a spec from entries, preserving their order.
func New(entries []xdr.ScSpecEntry) *Spec {
	return &Spec{entries: entries}
}

// FromWasm extracts and decodes the spec section of a contract module.
func FromWasm(module []byte) (*Spec, error) {
	payload, err := wasm.ExtractCustomSection(module, SectionName)
	if err != nil {
		return nil, errors.WrapModuleReadErr(err)
	}
	if payload == nil {
		return nil, errors.WrapModuleRead(fmt.Sprintf("custom section %q not present", SectionName))
	}

	var entries []xdr.ScSpecEntry
	reader := bytes.NewReader(payload)
	for reader.Len() > 0 {
		var entry xdr.ScSpecEntry
		if _, err := xdr.Unmarshal(reader, &entry); err != nil {
			return nil, errors.WrapModuleReadErr(fmt.Errorf("decoding spec entry %d: %w", len(entries), err))
		}
		entries = append(entries, entry)
	}
	return &Spec{entries: entries}, nil
}

// Entries returns the declaration-ordered entries.
func (s *Spec) Entries() []xdr.ScSpecEntry {
	return s.entries
}

// Find returns the entry declared under name.
func (s *Spec) Find(name string) (*xdr.ScSpecEntry, error) {
	for i := range s.entries {
		if s.entries[i].Name() == name {
			return &s.entries[i], nil
		}
	}
	return nil, errors.WrapMissingEntry(name)
}

// FindFunction returns the function declared under name; a non-function
// entry of that name is reported as missing.
func (s *Spec) FindFunction(name string) (*xdr.ScSpecFunctionV0, error) {
	entry, err := s.Find(name)
	if err != nil {
		return nil, err
	}
	if entry.Kind != xdr.ScSpecEntryKindFunctionV0 {
		return nil, errors.WrapMissingEntry(name)
	}
	return entry.FunctionV0, nil
}
