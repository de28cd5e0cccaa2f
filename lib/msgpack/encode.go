// Copyright 2026 The mpnode Authors
// SPDX-License-Identifier: Apache-2.0

package msgpack

import "math"

// appendUintBE appends v as a width-byte big-endian unsigned integer.
func appendUintBE(buf *growBuffer, v uint64, width int) {
	var tmp [8]byte
	for i := width - 1; i >= 0; i-- {
		tmp[i] = byte(v)
		v >>= 8
	}
	buf.appendBytes(tmp[:width])
}

// encodeInt emits the shortest header+payload that represents v exactly,
// trying positive fixnum, negative fixnum, then widening by signedness
// and width in the order the MessagePack format defines.
func encodeInt(buf *growBuffer, v int64) {
	switch {
	case v >= 0 && v <= 0x7F:
		buf.appendByte(byte(v))
	case v >= -32 && v < 0:
		buf.appendByte(byte(v))
	case v >= 0 && v <= 0xFF:
		buf.appendByte(0xCC)
		buf.appendByte(byte(v))
	case v >= -128 && v < -32:
		buf.appendByte(0xD0)
		buf.appendByte(byte(v))
	case v >= 0 && v <= 0xFFFF:
		buf.appendByte(0xCD)
		appendUintBE(buf, uint64(v), 2)
	case v >= -32768 && v < -128:
		buf.appendByte(0xD1)
		appendUintBE(buf, uint64(uint16(v)), 2)
	case v >= 0 && v <= 0xFFFFFFFF:
		buf.appendByte(0xCE)
		appendUintBE(buf, uint64(v), 4)
	case v >= math.MinInt32 && v < -32768:
		buf.appendByte(0xD2)
		appendUintBE(buf, uint64(uint32(v)), 4)
	case v >= 0:
		buf.appendByte(0xCF)
		appendUintBE(buf, uint64(v), 8)
	default:
		buf.appendByte(0xD3)
		appendUintBE(buf, uint64(v), 8)
	}
}

// encodeUint emits v using the same shortest-header rules as encodeInt
// for any value that fits in int64, falling back to the uint64 (0xCF)
// wire form only when v's high bit is set.
func encodeUint(buf *growBuffer, v uint64) {
	if v <= math.MaxInt64 {
		encodeInt(buf, int64(v))
		return
	}
	buf.appendByte(0xCF)
	appendUintBE(buf, v, 8)
}

// encodeFloat chooses float32 (0xCA) iff v round-trips through it
// exactly, else float64 (0xCB). Either way the 4 or 8 payload bytes are
// written in big-endian order via the endian helper.
func encodeFloat(buf *growBuffer, v float64) {
	if f32 := float32(v); float64(f32) == v {
		buf.appendByte(0xCA)
		var b [4]byte
		putNativeUint32(b[:], math.Float32bits(f32))
		swapIfLittleEndian(b[:])
		buf.appendBytes(b[:])
		return
	}
	buf.appendByte(0xCB)
	var b [8]byte
	putNativeUint64(b[:], math.Float64bits(v))
	swapIfLittleEndian(b[:])
	buf.appendBytes(b[:])
}

func encodeStr(buf *growBuffer, data []byte) {
	n := len(data)
	switch {
	case n < 32:
		buf.appendByte(0xA0 | byte(n))
	case n <= 0xFF:
		buf.appendByte(0xD9)
		buf.appendByte(byte(n))
	case n <= 0xFFFF:
		buf.appendByte(0xDA)
		appendUintBE(buf, uint64(n), 2)
	default:
		buf.appendByte(0xDB)
		appendUintBE(buf, uint64(n), 4)
	}
	buf.appendBytes(data)
}

func encodeBin(buf *growBuffer, data []byte) {
	n := len(data)
	switch {
	case n <= 0xFF:
		buf.appendByte(0xC4)
		buf.appendByte(byte(n))
	case n <= 0xFFFF:
		buf.appendByte(0xC5)
		appendUintBE(buf, uint64(n), 2)
	default:
		buf.appendByte(0xC6)
		appendUintBE(buf, uint64(n), 4)
	}
	buf.appendBytes(data)
}

// fixextLog2 returns log2(n) for n in {1,2,4,8,16}, or -1 otherwise.
func fixextLog2(n int) int {
	switch n {
	case 1:
		return 0
	case 2:
		return 1
	case 4:
		return 2
	case 8:
		return 3
	case 16:
		return 4
	default:
		return -1
	}
}

// encodeExt emits a fixext header when the payload length is a power
// of two no greater than 16, else a sized ext8/16/32 header. The sized
// headers carry length before the etype byte.
func encodeExt(buf *growBuffer, etype byte, data []byte) {
	n := len(data)
	if log2 := fixextLog2(n); log2 >= 0 {
		buf.appendByte(0xD4 + byte(log2))
		buf.appendByte(etype)
		buf.appendBytes(data)
		return
	}

	switch {
	case n <= 0xFF:
		buf.appendByte(0xC7)
		buf.appendByte(byte(n))
	case n <= 0xFFFF:
		buf.appendByte(0xC8)
		appendUintBE(buf, uint64(n), 2)
	default:
		buf.appendByte(0xC9)
		appendUintBE(buf, uint64(n), 4)
	}
	buf.appendByte(etype)
	buf.appendBytes(data)
}

func encodeArrayHeader(buf *growBuffer, count int) {
	switch {
	case count <= 0x0F:
		buf.appendByte(0x90 | byte(count))
	case count <= 0xFFFF:
		buf.appendByte(0xDC)
		appendUintBE(buf, uint64(count), 2)
	default:
		buf.appendByte(0xDD)
		appendUintBE(buf, uint64(count), 4)
	}
}

func encodeMapHeader(buf *growBuffer, count int) {
	switch {
	case count <= 0x0F:
		buf.appendByte(0x80 | byte(count))
	case count <= 0xFFFF:
		buf.appendByte(0xDE)
		appendUintBE(buf, uint64(count), 2)
	default:
		buf.appendByte(0xDF)
		appendUintBE(buf, uint64(count), 4)
	}
}

func encodeArray(buf *growBuffer, n *Node) error {
	count, err := Len(n)
	if err != nil {
		return err
	}
	encodeArrayHeader(buf, count)
	for c := n.child; c != nil; c = c.next {
		if err := encodeValue(buf, c); err != nil {
			return err
		}
	}
	return nil
}

// encodeMap emits each child's key, then the child itself, in the
// map's insertion order.
func encodeMap(buf *growBuffer, n *Node) error {
	count, err := Len(n)
	if err != nil {
		return err
	}
	encodeMapHeader(buf, count)
	for c := n.child; c != nil; c = c.next {
		key := c.key
		if key == nil {
			key = NewNil()
		}
		if err := encodeValue(buf, key); err != nil {
			return err
		}
		if err := encodeValue(buf, c); err != nil {
			return err
		}
	}
	return nil
}

// encodeValue writes n's header and payload to buf, recursing into
// Array/Map children. It does not write n's Key; the caller (encodeMap)
// is responsible for emitting a map entry's key alongside its value.
func encodeValue(buf *growBuffer, n *Node) error {
	switch n.kind {
	case KindNil:
		buf.appendByte(0xC0)
	case KindBool:
		if n.boolVal {
			buf.appendByte(0xC3)
		} else {
			buf.appendByte(0xC2)
		}
	case KindInt:
		encodeInt(buf, n.intVal)
	case KindUint:
		encodeUint(buf, n.uintVal)
	case KindFloat:
		encodeFloat(buf, n.floatVal)
	case KindStr:
		encodeStr(buf, n.Bytes())
	case KindBlob:
		encodeBin(buf, n.Bytes())
	case KindExt:
		encodeExt(buf, n.extType, n.Bytes())
	case KindArray:
		return encodeArray(buf, n)
	case KindMap:
		return encodeMap(buf, n)
	default:
		return kindMismatchf("Pack", n.kind)
	}
	return nil
}

// Pack serializes exactly n to MessagePack bytes; it does not follow
// n's sibling chain. A caller that wants to emit several independent
// top-level values should either wrap them in an Array first, or call
// Pack once per value and concatenate the results — Unpack accepts the
// concatenation as a multi-value stream.
func Pack(n *Node) ([]byte, error) {
	buf := newGrowBuffer(64)
	if err := encodeValue(buf, n); err != nil {
		return nil, err
	}
	return buf.finalize(), nil
}
