// Copyright 2026 The mpnode Authors
// SPDX-License-Identifier: Apache-2.0

package msgpack

import (
	"bytes"
	"errors"
	"testing"
)

func TestUnpackScenarios(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		check func(t *testing.T, root *Node, count int)
	}{
		{
			name:  "nil",
			input: []byte{0xC0},
			check: func(t *testing.T, root *Node, count int) {
				if count != 1 || root.Kind() != KindNil {
					t.Fatalf("got kind=%v count=%d", root.Kind(), count)
				}
			},
		},
		{
			name:  "bool true",
			input: []byte{0xC3},
			check: func(t *testing.T, root *Node, count int) {
				if root.Kind() != KindBool || root.Bool() != true {
					t.Fatalf("got kind=%v bool=%v", root.Kind(), root.Bool())
				}
			},
		},
		{
			name:  "positive fixint 127",
			input: []byte{0x7F},
			check: func(t *testing.T, root *Node, count int) {
				if root.Kind() != KindInt || root.Int() != 127 {
					t.Fatalf("got kind=%v int=%d", root.Kind(), root.Int())
				}
			},
		},
		{
			name:  "uint8 255",
			input: []byte{0xCC, 0xFF},
			check: func(t *testing.T, root *Node, count int) {
				if root.Kind() != KindInt || root.Int() != 255 {
					t.Fatalf("got kind=%v int=%d", root.Kind(), root.Int())
				}
			},
		},
		{
			name:  "fixstr foo",
			input: []byte{0xA3, 0x66, 0x6F, 0x6F},
			check: func(t *testing.T, root *Node, count int) {
				if root.Kind() != KindStr || string(root.Bytes()) != "foo" {
					t.Fatalf("got kind=%v str=%q", root.Kind(), root.Bytes())
				}
			},
		},
		{
			name:  "fixarray of two ints",
			input: []byte{0x92, 0x01, 0x02},
			check: func(t *testing.T, root *Node, count int) {
				length, err := Len(root)
				if err != nil || length != 2 {
					t.Fatalf("Len: %v, %d", err, length)
				}
				a, _ := ArrayItem(root, 0)
				b, _ := ArrayItem(root, 1)
				if a.Int() != 1 || b.Int() != 2 {
					t.Fatalf("got %d, %d", a.Int(), b.Int())
				}
			},
		},
		{
			name:  "fixmap a=1 b=false",
			input: []byte{0x82, 0xA1, 0x61, 0x01, 0xA1, 0x62, 0xC2},
			check: func(t *testing.T, root *Node, count int) {
				a, err := GetMapItemExact(root, "a")
				if err != nil || a == nil || a.Int() != 1 {
					t.Fatalf("a: %v %v", a, err)
				}
				b, err := GetMapItemExact(root, "b")
				if err != nil || b == nil || b.Bool() != false {
					t.Fatalf("b: %v %v", b, err)
				}
			},
		},
		{
			name:  "empty blob",
			input: []byte{0xC4, 0x00},
			check: func(t *testing.T, root *Node, count int) {
				if root.Kind() != KindBlob || len(root.Bytes()) != 0 {
					t.Fatalf("got kind=%v len=%d", root.Kind(), len(root.Bytes()))
				}
			},
		},
		{
			name:  "fixext1",
			input: []byte{0xD4, 0x07, 0x2A},
			check: func(t *testing.T, root *Node, count int) {
				if root.Kind() != KindExt || root.ExtType() != 7 || !bytes.Equal(root.Bytes(), []byte{0x2A}) {
					t.Fatalf("got kind=%v etype=%d data=%v", root.Kind(), root.ExtType(), root.Bytes())
				}
			},
		},
		{
			name:  "three top level roots",
			input: []byte{0xC0, 0xC3, 0x7F},
			check: func(t *testing.T, root *Node, count int) {
				if count != 3 {
					t.Fatalf("count = %d, want 3", count)
				}
				if root.Kind() != KindNil {
					t.Fatalf("root kind = %v", root.Kind())
				}
				second := root.NextSibling()
				if second == nil || second.Kind() != KindBool || second.Bool() != true {
					t.Fatalf("second = %+v", second)
				}
				third := second.NextSibling()
				if third == nil || third.Kind() != KindInt || third.Int() != 127 {
					t.Fatalf("third = %+v", third)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, count, err := Unpack(tt.input)
			if err != nil {
				t.Fatalf("Unpack: %v", err)
			}
			tt.check(t, root, count)
		})
	}
}

func TestUnpackTruncated(t *testing.T) {
	tests := [][]byte{
		{},
		{0xCC},       // uint8 missing payload byte
		{0xA3, 0x66}, // fixstr declares 3 bytes, only 1 present
		{0x91},       // fixarray of 1, no element
		{0x81, 0xA1, 0x61}, // fixmap needs a value after the key
	}
	for _, input := range tests {
		_, _, err := Unpack(input)
		if !errors.Is(err, ErrTruncated) {
			t.Errorf("Unpack(%v) err = %v, want ErrTruncated", input, err)
		}
	}
}

func TestUnpackBadFormat(t *testing.T) {
	// 0xC1 is never assigned in the MessagePack format.
	_, _, err := Unpack([]byte{0xC1})
	if !errors.Is(err, ErrBadFormat) {
		t.Fatalf("err = %v, want ErrBadFormat", err)
	}
}

func TestDecodeUint64HighBit(t *testing.T) {
	// 0xFFFFFFFFFFFFFFFF: too large for int64, must land in KindUint.
	input := []byte{0xCF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	root, count, err := Unpack(input)
	if err != nil || count != 1 {
		t.Fatalf("Unpack: %v, count=%d", err, count)
	}
	if root.Kind() != KindUint || root.Uint() != ^uint64(0) {
		t.Fatalf("got kind=%v uint=%d", root.Kind(), root.Uint())
	}
}

func TestDecodeUint64FitsInInt64(t *testing.T) {
	// 0xFF: small enough to land in KindInt despite the wide wire type.
	input := []byte{0xCF, 0, 0, 0, 0, 0, 0, 0, 0xFF}
	root, _, err := Unpack(input)
	if err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	if root.Kind() != KindInt || root.Int() != 0xFF {
		t.Fatalf("got kind=%v int=%d", root.Kind(), root.Int())
	}
}

func TestDecodeExtSizedOrderIsLengthThenType(t *testing.T) {
	// ext8 with length 2: 0xC7, len=2, etype=9, data
	input := []byte{0xC7, 0x02, 0x09, 0xAA, 0xBB}
	root, _, err := Unpack(input)
	if err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	if root.Kind() != KindExt || root.ExtType() != 9 || !bytes.Equal(root.Bytes(), []byte{0xAA, 0xBB}) {
		t.Fatalf("got kind=%v etype=%d data=%v", root.Kind(), root.ExtType(), root.Bytes())
	}
}

func TestDecodeNegativeFixint(t *testing.T) {
	// 0xFF is the two's-complement encoding of -1 in the negative fixint range.
	root, _, err := Unpack([]byte{0xFF})
	if err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	if root.Kind() != KindInt || root.Int() != -1 {
		t.Fatalf("got kind=%v int=%d", root.Kind(), root.Int())
	}
}
