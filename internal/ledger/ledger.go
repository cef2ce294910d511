// Copyright 2025 dotandev
// SPDX-License-Identifier: Apache-2.0

// Package ledger seeds a caller-owned entry list with the pieces an
// in-memory sandbox needs: installed contract code, a contract pointing at
// it, and a default source account. The list is the caller's; these helpers
// must not run concurrently with its readers.
package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/dotandev/strval/internal/errors"
	"github.com/dotandev/strval/internal/xdr"
)

// Entry pairs a ledger key with its entry.
type Entry struct {
	Key   xdr.LedgerKey
	Entry xdr.LedgerEntry
}

// ContractHash derives the code identifier: the SHA-256 of the canonical
// binary install-args framing around the module bytes.
func ContractHash(code []byte) (xdr.Hash, error) {
	data, err := xdr.MarshalBinary(xdr.InstallContractCodeArgs{Code: code})
	if err != nil {
		return xdr.Hash{}, errors.WrapBinary(err)
	}
	return sha256.Sum256(data), nil
}

// AddContractCode installs the module bytes, replacing an existing entry
// under the same code hash. Calling it twice with the same bytes leaves the
// list unchanged after the first call.
func AddContractCode(entries *[]Entry, code []byte) (xdr.Hash, error) {
	hash, err := ContractHash(code)
	if err != nil {
		return xdr.Hash{}, err
	}
	key := xdr.LedgerKey{
		Type:         xdr.LedgerEntryTypeContractCode,
		ContractCode: &xdr.LedgerKeyContractCode{Hash: hash},
	}
	entry := xdr.LedgerEntry{
		Data: xdr.LedgerEntryData{
			Type: xdr.LedgerEntryTypeContractCode,
			ContractCode: &xdr.ContractCodeEntry{
				Hash: hash,
				Code: code,
			},
		},
	}
	if err := upsert(entries, key, entry); err != nil {
		return xdr.Hash{}, err
	}
	return hash, nil
}

// AddContract points a contract id at installed code, replacing any
// existing contract entry under the same id.
func AddContract(entries *[]Entry, contractID [32]byte, wasmHash xdr.Hash) error {
	codeKey := xdr.ScValStatic(xdr.ScStaticScsLedgerKeyContractCode)
	key := xdr.LedgerKey{
		Type: xdr.LedgerEntryTypeContractData,
		ContractData: &xdr.LedgerKeyContractData{
			ContractId: xdr.Hash(contractID),
			Key:        codeKey,
		},
	}
	ref := hashVal(wasmHash)
	entry := xdr.LedgerEntry{
		Data: xdr.LedgerEntryData{
			Type: xdr.LedgerEntryTypeContractData,
			ContractData: &xdr.ContractDataEntry{
				ContractId: xdr.Hash(contractID),
				Key:        codeKey,
				Val:        ref,
			},
		},
	}
	return upsert(entries, key, entry)
}

func hashVal(wasmHash xdr.Hash) xdr.ScVal {
	code := xdr.ScContractCode{
		Type:    xdr.ScContractCodeTypeSccontractCodeWasmRef,
		WasmRef: &wasmHash,
	}
	return xdr.ScValObject(xdr.ScObject{
		Type:         xdr.ScObjectTypeScoContractCode,
		ContractCode: &code,
	})
}

// AccountKey builds the ledger key of an account entry.
func AccountKey(account xdr.AccountId) xdr.LedgerKey {
	return xdr.LedgerKey{
		Type:    xdr.LedgerEntryTypeAccount,
		Account: &xdr.LedgerKeyAccount{AccountId: account},
	}
}

// DefaultAccountEntry is the zero-balance account the sandbox uses as an
// invocation source.
func DefaultAccountEntry(account xdr.AccountId) xdr.LedgerEntry {
	return xdr.LedgerEntry{
		Data: xdr.LedgerEntryData{
			Type: xdr.LedgerEntryTypeAccount,
			Account: &xdr.AccountEntry{
				AccountId:  account,
				Thresholds: xdr.Thresholds{1, 1, 1, 1},
			},
		},
	}
}

// Contains reports whether an entry under key is already present.
func Contains(entries []Entry, key xdr.LedgerKey) (bool, error) {
	for i := range entries {
		eq, err := entries[i].Key.Equals(key)
		if err != nil {
			return false, errors.WrapBinary(err)
		}
		if eq {
			return true, nil
		}
	}
	return false, nil
}

func upsert(entries *[]Entry, key xdr.LedgerKey, entry xdr.LedgerEntry) error {
	for i := range *entries {
		eq, err := (*entries)[i].Key.Equals(key)
		if err != nil {
			return errors.WrapBinary(err)
		}
		if eq {
			(*entries)[i].Entry = entry
			return nil
		}
	}
	*entries = append(*entries, Entry{Key: key, Entry: entry})
	return nil
}

// IDFromString decodes a contract id given as hex, left-padded with '0' to
// the full 64 characters, so "1" names contract 0x00…01.
func IDFromString(s string) ([32]byte, error) {
	var id [32]byte
	raw, err := PaddedHex(s, len(id))
	if err != nil {
		return id, err
	}
	copy(id[:], raw)
	return id, nil
}

// PaddedHex decodes s as n bytes of hex after left-padding with '0'.
func PaddedHex(s string, n int) ([]byte, error) {
	if len(s) > 2*n {
		return nil, errors.WrapInvalidValuef("", "hex string longer than %d characters", 2*n)
	}
	out, err := hex.DecodeString(strings.Repeat("0", 2*n-len(s)) + s)
	if err != nil {
		return nil, errors.WrapInvalidValuef("", "invalid hex: %v", err)
	}
	return out, nil
}
