// Copyright 2026 The mpnode Authors
// SPDX-License-Identifier: Apache-2.0

package msgpack

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying the broad category of a codec or tree
// failure. Wrap these with fmt.Errorf("%w: ...", ...) or the DecodeError
// type below to attach position information; callers that only care
// about the category can still match with errors.Is.
var (
	// ErrTruncated means fewer bytes remained in the input than the
	// header at the current position demanded.
	ErrTruncated = errors.New("msgpack: truncated input")

	// ErrBadFormat means a header byte did not match any defined
	// MessagePack family.
	ErrBadFormat = errors.New("msgpack: unrecognized header byte")

	// ErrKindMismatch means a tree operation was applied to a node
	// whose Kind does not support it, such as indexing a scalar or
	// looking up a map key on an array.
	ErrKindMismatch = errors.New("msgpack: operation not valid for node kind")

	// ErrNotFound means an array index was out of range, or a delete
	// or replace targeted a map key that does not exist. Map lookups
	// and DetachMapItem report a missing key as a nil node instead.
	ErrNotFound = errors.New("msgpack: no such item")
)

// DecodeError reports where in the input a decode failure was detected.
// Offset is the byte position of the offending header when Err is
// ErrBadFormat, and the position at which the input ran out when Err is
// ErrTruncated; Byte holds the header's value when Err is ErrBadFormat.
type DecodeError struct {
	Offset int
	Byte   byte
	Err    error
}

func (e *DecodeError) Error() string {
	if errors.Is(e.Err, ErrBadFormat) {
		return fmt.Sprintf("msgpack: offset %d: unrecognized header byte 0x%02X", e.Offset, e.Byte)
	}
	return fmt.Sprintf("msgpack: offset %d: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// AllocationError reports that decoding a length-prefixed value asked
// for more memory than the runtime would grant. Unpack recovers the
// resulting panic and returns this typed error instead of crashing the
// process.
type AllocationError struct {
	// Size is the total size of the input being decoded when the
	// failure occurred; it is not the specific oversized length field,
	// which the decoder had already discarded by the time the runtime
	// panicked.
	Size int
	Err  error
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("msgpack: allocation failed while decoding %d bytes of input: %v", e.Size, e.Err)
}

func (e *AllocationError) Unwrap() error { return e.Err }
