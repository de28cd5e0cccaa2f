// Copyright 2026 The mpnode Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"reflect"
	"testing"

	"github.com/mpnode/msgpack/lib/msgpack"
)

func TestNodeToJSONScalars(t *testing.T) {
	tests := []struct {
		name string
		n    *msgpack.Node
		want any
	}{
		{"nil", msgpack.NewNil(), nil},
		{"bool", msgpack.NewBool(true), true},
		{"int", msgpack.NewInt(42), int64(42)},
		{"uint", msgpack.NewUint(^uint64(0)), ^uint64(0)},
		{"float", msgpack.NewFloat(1.5), 1.5},
		{"str", msgpack.NewString("hi"), "hi"},
		{"blob", msgpack.NewBinary([]byte{0xDE, 0xAD}), "dead"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := nodeToJSON(tt.n)
			if err != nil {
				t.Fatalf("nodeToJSON: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestNodeToJSONExt(t *testing.T) {
	got, err := nodeToJSON(msgpack.NewExt(7, []byte{0x2A}))
	if err != nil {
		t.Fatalf("nodeToJSON: %v", err)
	}
	want := map[string]any{"etype": byte(7), "data": "2a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestNodeToJSONArrayAndMap(t *testing.T) {
	arr := msgpack.NewArray()
	_ = msgpack.AppendArrayItem(arr, msgpack.NewBool(true))
	_ = msgpack.AppendArrayItem(arr, msgpack.NewNil())

	m := msgpack.NewMap()
	_ = msgpack.SetMapItem(m, "a", msgpack.NewInt(1))
	_ = msgpack.SetMapItem(m, "b", arr)

	got, err := nodeToJSON(m)
	if err != nil {
		t.Fatalf("nodeToJSON: %v", err)
	}
	want := map[string]any{
		"a": int64(1),
		"b": []any{true, nil},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestTreeToJSONWrapsMultipleRoots(t *testing.T) {
	root, count, err := msgpack.Unpack([]byte{0xC0, 0xC3, 0x7F})
	if err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	got, err := treeToJSON(root, count)
	if err != nil {
		t.Fatalf("treeToJSON: %v", err)
	}
	want := []any{nil, true, int64(127)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}
