// Copyright 2025 dotandev
// SPDX-License-Identifier: Apache-2.0

// Package wasm walks the WebAssembly container format far enough to read
// and write custom sections. Nothing here interprets code; contract modules
// are opaque blobs with metadata attached.
package wasm

import (
	"fmt"
	"io"
)

var magic = []byte{0x00, 0x61, 0x73, 0x6d} // \0asm

const version = 1

// ExtractCustomSection returns the payload of the named custom section, or
// nil if the module has no such section.
func ExtractCustomSection(module []byte, name string) ([]byte, error) {
	if len(module) < 8 {
		return nil, fmt.Errorf("module too short")
	}
	if module[0] != magic[0] || module[1] != magic[1] ||
		module[2] != magic[2] || module[3] != magic[3] {
		return nil, fmt.Errorf("bad magic bytes")
	}
	// bytes 4-7: version (any accepted)

	offset := 8
	for offset < len(module) {
		sectionID := module[offset]
		offset++

		sectionLen, n, err := readLEB128(module, offset)
		if err != nil {
			return nil, fmt.Errorf("bad section length at offset %d: %w", offset, err)
		}
		offset += n

		if offset+int(sectionLen) > len(module) {
			return nil, fmt.Errorf("section extends past end of module")
		}
		sectionEnd := offset + int(sectionLen)

		if sectionID == 0 { // custom section
			nameLen, nn, err := readLEB128(module, offset)
			if err != nil {
				return nil, fmt.Errorf("bad custom section name length: %w", err)
			}
			offset += nn

			if offset+int(nameLen) > sectionEnd {
				return nil, fmt.Errorf("custom section name extends past section")
			}
			sectionName := string(module[offset : offset+int(nameLen)])
			offset += int(nameLen)

			if sectionName == name {
				payload := make([]byte, sectionEnd-offset)
				copy(payload, module[offset:sectionEnd])
				return payload, nil
			}
		}

		offset = sectionEnd
	}

	return nil, nil
}

// AppendCustomSection returns a copy of module with a custom section of the
// given name and payload appended. Used to build fixture modules; a nil
// module produces a minimal empty one.
func AppendCustomSection(module []byte, name string, payload []byte) []byte {
	if module == nil {
		module = EmptyModule()
	}
	body := make([]byte, 0, len(name)+len(payload)+10)
	body = appendLEB128(body, uint32(len(name)))
	body = append(body, name...)
	body = append(body, payload...)

	out := make([]byte, 0, len(module)+len(body)+6)
	out = append(out, module...)
	out = append(out, 0) // custom section id
	out = appendLEB128(out, uint32(len(body)))
	out = append(out, body...)
	return out
}

// EmptyModule returns the 8-byte header of a module with no sections.
func EmptyModule() []byte {
	return []byte{magic[0], magic[1], magic[2], magic[3], version, 0, 0, 0}
}

// readLEB128 decodes an unsigned LEB128 integer from data at the given
// offset. Returns the value, the number of bytes consumed, and any error.
func readLEB128(data []byte, offset int) (uint32, int, error) {
	var result uint32
	var shift uint
	for i := 0; i < 5; i++ { // u32 needs at most 5 bytes
		if offset+i >= len(data) {
			return 0, 0, io.ErrUnexpectedEOF
		}
		b := data[offset+i]
		result |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, i + 1, nil
		}
		shift += 7
	}
	return 0, 0, fmt.Errorf("LEB128 integer too large")
}

func appendLEB128(dst []byte, v uint32) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		dst = append(dst, b)
		if v == 0 {
			return dst
		}
	}
}
