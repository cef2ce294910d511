// Copyright 2025 dotandev
// SPDX-License-Identifier: Apache-2.0

package strval

import (
	"encoding/json"

	"github.com/dotandev/strval/internal/errors"
	"github.com/dotandev/strval/internal/xdr"
)

// EncodeArgs assembles the invocation argument vector for a function call:
// the contract id and function symbol followed by each declared input
// encoded at its declared type. jsonArgs must be a JSON object keyed by
// input name; a declared input with no matching key is an error.
func (c *Codec) EncodeArgs(contractID [32]byte, funcName string, jsonArgs string) (xdr.ScVec, error) {
	fn, err := c.spec.FindFunction(funcName)
	if err != nil {
		return nil, err
	}

	raw, err := decodeJSON(jsonArgs)
	if err != nil {
		return nil, errors.WrapJSON(err)
	}
	args, ok := raw.(map[string]interface{})
	if !ok {
		return nil, errors.WrapInvalidValuef("", "arguments must be a JSON object")
	}

	funcSym, err := xdr.NewScSymbol(funcName)
	if err != nil {
		return nil, errors.WrapInvalidValuef("Symbol", "function name: %v", err)
	}
	idBytes, err := xdr.NewScBytes(contractID[:])
	if err != nil {
		return nil, errors.WrapBinary(err)
	}

	elems := make([]xdr.ScVal, 0, len(fn.Inputs)+2)
	elems = append(elems,
		xdr.ScValObject(xdr.ScObjectBytes(idBytes)),
		xdr.ScValSymbol(funcSym),
	)
	for _, input := range fn.Inputs {
		arg, ok := args[input.Name]
		if !ok {
			return nil, errors.WrapMissingArgument(input.Name)
		}
		val, err := c.FromJSON(arg, &input.Type)
		if err != nil {
			return nil, err
		}
		elems = append(elems, val)
	}

	vec, err := xdr.NewScVec(elems...)
	if err != nil {
		return nil, errors.WrapBinary(err)
	}
	return vec, nil
}

// CreateOperation wraps the encoded argument vector in an invoke-host-
// function operation with an empty footprint; the executor fills the
// footprint later.
func (c *Codec) CreateOperation(contractID [32]byte, funcName string, jsonArgs string) (xdr.Operation, error) {
	params, err := c.EncodeArgs(contractID, funcName, jsonArgs)
	if err != nil {
		return xdr.Operation{}, err
	}
	op := xdr.InvokeHostFunctionOp{
		Function:  xdr.HostFunctionInvokeContract(params),
		Footprint: xdr.LedgerFootprint{},
	}
	return xdr.Operation{
		Body: xdr.OperationBody{
			Type:                 xdr.OperationTypeInvokeHostFunction,
			InvokeHostFunctionOp: &op,
		},
	}, nil
}

// DecodeReturn decodes a binary return value against the function's first
// declared output and serializes it as JSON text. A top-level symbol is
// written without surrounding quotes, matching the CLI's output surface.
func (c *Codec) DecodeReturn(funcName string, data []byte) (string, error) {
	fn, err := c.spec.FindFunction(funcName)
	if err != nil {
		return "", err
	}
	if len(fn.Outputs) == 0 {
		return "", errors.WrapInvalidValuef("", "function %s declares no outputs", funcName)
	}

	var val xdr.ScVal
	if err := xdr.SafeUnmarshal(data, &val); err != nil {
		return "", errors.WrapBinary(err)
	}
	if c.RejectNonCanonical {
		if err := val.Validate(); err != nil {
			return "", errors.WrapBinary(err)
		}
	}

	decoded, err := c.ToJSON(val, &fn.Outputs[0])
	if err != nil {
		return "", err
	}
	if val.Type == xdr.ScValTypeScvSymbol {
		if s, ok := decoded.(string); ok {
			return s, nil
		}
	}
	out, err := json.Marshal(decoded)
	if err != nil {
		return "", errors.WrapJSON(err)
	}
	return string(out), nil
}
