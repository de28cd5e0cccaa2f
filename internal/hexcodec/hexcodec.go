// Copyright 2026 The mpnode Authors
// SPDX-License-Identifier: Apache-2.0

// Package hexcodec provides the small hex encode/decode helper the JSON
// bridge tools use to render Blob and Ext payloads as JSON strings. It
// is not part of the msgpack wire codec.
package hexcodec

import (
	"encoding/hex"
	"fmt"
	"unicode"
)

// EncodeString returns the lowercase hex encoding of data.
func EncodeString(data []byte) string {
	return hex.EncodeToString(data)
}

// DecodeString decodes hex text back to bytes, tolerating whitespace
// interspersed between digit pairs ("a1 63 6b 65 79" as well as
// "a1636b6579").
func DecodeString(s string) ([]byte, error) {
	cleaned := make([]byte, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		cleaned = append(cleaned, byte(r))
	}
	decoded, err := hex.DecodeString(string(cleaned))
	if err != nil {
		return nil, fmt.Errorf("hexcodec: decode: %w", err)
	}
	return decoded, nil
}
