// Copyright 2025 dotandev
// SPDX-License-Identifier: Apache-2.0

// Package sandbox wires the codec to an in-memory contract executor. The
// executor itself is behind the Invoker interface; this package only seeds
// the ledger, assembles the call and decodes the result.
package sandbox

import (
	"github.com/stellar/go/strkey"

	"github.com/dotandev/strval/internal/errors"
	"github.com/dotandev/strval/internal/ledger"
	"github.com/dotandev/strval/internal/logger"
	"github.com/dotandev/strval/internal/strval"
	"github.com/dotandev/strval/internal/xdr"
)

// DefaultSourceAccount is the strkey of the account Run seeds as the
// invocation source.
const DefaultSourceAccount = "GAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAWHF"

// Invoker executes one host-function invocation against a seeded ledger
// and returns the result value.
type Invoker interface {
	Invoke(entries []ledger.Entry, args xdr.ScVec) (xdr.ScVal, error)
}

// Run seeds a fresh ledger with the contract module, the contract id and a
// default source account, invokes the function with the given JSON
// arguments, and returns the decoded result as JSON text.
func Run(c *strval.Codec, inv Invoker, module []byte, contractID, funcName, jsonArgs string) (string, error) {
	id, err := ledger.IDFromString(contractID)
	if err != nil {
		return "", err
	}

	var entries []ledger.Entry
	wasmHash, err := ledger.AddContractCode(&entries, module)
	if err != nil {
		return "", err
	}
	if err := ledger.AddContract(&entries, id, wasmHash); err != nil {
		return "", err
	}
	if err := seedSourceAccount(&entries); err != nil {
		return "", err
	}
	logger.Logger.Debug("ledger seeded",
		"entries", len(entries),
		"contract_id", contractID,
	)

	args, err := c.EncodeArgs(id, funcName, jsonArgs)
	if err != nil {
		return "", err
	}
	result, err := inv.Invoke(entries, args)
	if err != nil {
		return "", err
	}

	raw, err := xdr.MarshalBinary(result)
	if err != nil {
		return "", errors.WrapBinary(err)
	}
	return c.DecodeReturn(funcName, raw)
}

// seedSourceAccount adds the default source account unless an entry for it
// already exists.
func seedSourceAccount(entries *[]ledger.Entry) error {
	raw, err := strkey.Decode(strkey.VersionByteAccountID, DefaultSourceAccount)
	if err != nil {
		return errors.WrapInvalidValuef("AccountId", "default source account: %v", err)
	}
	var key [32]byte
	copy(key[:], raw)
	account := xdr.AccountIdEd25519(key)

	present, err := ledger.Contains(*entries, ledger.AccountKey(account))
	if err != nil {
		return err
	}
	if present {
		return nil
	}
	*entries = append(*entries, ledger.Entry{
		Key:   ledger.AccountKey(account),
		Entry: ledger.DefaultAccountEntry(account),
	})
	return nil
}
