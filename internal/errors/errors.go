// Copyright 2025 dotandev
// SPDX-License-Identifier: Apache-2.0

// Package errors defines the closed set of error kinds surfaced at the
// codec boundary. Every failure site wraps exactly one sentinel so callers
// can branch with errors.Is.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for comparison with errors.Is.
var (
	ErrInvalidValue           = errors.New("value is not parseable to the declared type")
	ErrMissingEntry           = errors.New("missing entry")
	ErrMissingArgument        = errors.New("missing argument")
	ErrEnumCase               = errors.New("unknown union case")
	ErrEnumConst              = errors.New("unknown const case")
	ErrEnumConstTooLarge      = errors.New("enum const value must be a u32 or smaller")
	ErrEnumMissingSecondValue = errors.New("union case missing its value")
	ErrBinary                 = errors.New("binary encoding failed")
	ErrJSON                   = errors.New("JSON parsing failed")
	ErrModuleRead             = errors.New("could not read spec from contract module")
	ErrUnsupported            = errors.New("unsupported type")
	ErrMaxDepth               = errors.New("max recursion depth exceeded")
)

// Wrap functions for consistent error wrapping.

func WrapInvalidValue(typeName string) error {
	if typeName == "" {
		return ErrInvalidValue
	}
	return fmt.Errorf("%w: %s", ErrInvalidValue, typeName)
}

func WrapInvalidValuef(typeName, format string, args ...interface{}) error {
	detail := fmt.Sprintf(format, args...)
	if typeName == "" {
		return fmt.Errorf("%w: %s", ErrInvalidValue, detail)
	}
	return fmt.Errorf("%w: %s: %s", ErrInvalidValue, typeName, detail)
}

func WrapMissingEntry(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingEntry, name)
}

func WrapMissingArgument(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingArgument, name)
}

func WrapEnumCase(caseName, unionName string) error {
	return fmt.Errorf("%w: %s for %s", ErrEnumCase, caseName, unionName)
}

func WrapEnumConst(value uint32) error {
	return fmt.Errorf("%w: %d", ErrEnumConst, value)
}

func WrapEnumConstTooLarge(value uint64) error {
	return fmt.Errorf("%w: got %d", ErrEnumConstTooLarge, value)
}

func WrapEnumMissingSecondValue(caseName, typeName string) error {
	return fmt.Errorf("%w: case %s expects a value of type %s", ErrEnumMissingSecondValue, caseName, typeName)
}

func WrapBinary(err error) error {
	return fmt.Errorf("%w: %w", ErrBinary, err)
}

func WrapJSON(err error) error {
	return fmt.Errorf("%w: %w", ErrJSON, err)
}

func WrapModuleRead(msg string) error {
	return fmt.Errorf("%w: %s", ErrModuleRead, msg)
}

func WrapModuleReadErr(err error) error {
	return fmt.Errorf("%w: %w", ErrModuleRead, err)
}

func WrapUnsupported(typeName string) error {
	return fmt.Errorf("%w: %s", ErrUnsupported, typeName)
}
