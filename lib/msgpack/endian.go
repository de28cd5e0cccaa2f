// Copyright 2026 The mpnode Authors
// SPDX-License-Identifier: Apache-2.0

package msgpack

import (
	"encoding/binary"
	"unsafe"
)

// hostLittleEndian reports whether the running process is little-endian.
// MessagePack floats travel on the wire in big-endian order; the host
// byte order is probed at runtime so the float encoders and decoders
// below stay correct on a big-endian build target.
var hostLittleEndian = probeHostEndian()

func probeHostEndian() bool {
	var probe uint16 = 1
	return *(*byte)(unsafe.Pointer(&probe)) == 1
}

// swapIfLittleEndian reverses b in place iff the host is little-endian.
// Integer fields never call this: they are always assembled and
// disassembled one byte at a time via explicit shifts, which is
// endianness-independent. Only the float32/float64 payloads route
// through here, written in host-native order and then byte-reversed
// into network order.
func swapIfLittleEndian(b []byte) {
	if !hostLittleEndian {
		return
	}
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

func nativeUint32(b []byte) uint32 {
	if hostLittleEndian {
		return binary.LittleEndian.Uint32(b)
	}
	return binary.BigEndian.Uint32(b)
}

func putNativeUint32(b []byte, v uint32) {
	if hostLittleEndian {
		binary.LittleEndian.PutUint32(b, v)
	} else {
		binary.BigEndian.PutUint32(b, v)
	}
}

func nativeUint64(b []byte) uint64 {
	if hostLittleEndian {
		return binary.LittleEndian.Uint64(b)
	}
	return binary.BigEndian.Uint64(b)
}

func putNativeUint64(b []byte, v uint64) {
	if hostLittleEndian {
		binary.LittleEndian.PutUint64(b, v)
	} else {
		binary.BigEndian.PutUint64(b, v)
	}
}
