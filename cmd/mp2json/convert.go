// Copyright 2026 The mpnode Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/mpnode/msgpack/internal/hexcodec"
	"github.com/mpnode/msgpack/lib/msgpack"
)

// nodeToJSON converts a decoded MessagePack node to a plain Go value
// suitable for encoding/json: nil, bool, int64, uint64, float64,
// string, []any, or map[string]any. Blob becomes a hex string and Ext
// becomes {"etype": <u8>, "data": "<hex>"}; both mappings are lossy in
// the reverse direction.
func nodeToJSON(n *msgpack.Node) (any, error) {
	switch n.Kind() {
	case msgpack.KindNil:
		return nil, nil
	case msgpack.KindBool:
		return n.Bool(), nil
	case msgpack.KindInt:
		return n.Int(), nil
	case msgpack.KindUint:
		return n.Uint(), nil
	case msgpack.KindFloat:
		return n.Float(), nil
	case msgpack.KindStr:
		return string(n.Bytes()), nil
	case msgpack.KindBlob:
		return hexcodec.EncodeString(n.Bytes()), nil
	case msgpack.KindExt:
		return map[string]any{
			"etype": n.ExtType(),
			"data":  hexcodec.EncodeString(n.Bytes()),
		}, nil
	case msgpack.KindArray:
		return arrayToJSON(n)
	case msgpack.KindMap:
		return mapToJSON(n)
	default:
		return nil, fmt.Errorf("mp2json: unknown node kind %d", n.Kind())
	}
}

func arrayToJSON(n *msgpack.Node) (any, error) {
	length, err := msgpack.Len(n)
	if err != nil {
		return nil, err
	}
	out := make([]any, 0, length)
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		value, err := nodeToJSON(c)
		if err != nil {
			return nil, err
		}
		out = append(out, value)
	}
	return out, nil
}

func mapToJSON(n *msgpack.Node) (any, error) {
	out := map[string]any{}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		key := c.Key()
		var keyText string
		if key != nil {
			keyText = string(key.Bytes())
		}
		value, err := nodeToJSON(c)
		if err != nil {
			return nil, err
		}
		out[keyText] = value
	}
	return out, nil
}

// treeToJSON converts the result of msgpack.Unpack to a single JSON-
// ready value. When the input held more than one top-level value, they
// are wrapped in a synthetic JSON array in decode order, matching the
// documented multi-value bridge behavior.
func treeToJSON(root *msgpack.Node, count int) (any, error) {
	if count == 1 {
		return nodeToJSON(root)
	}
	out := make([]any, 0, count)
	for n := root; n != nil; n = n.NextSibling() {
		value, err := nodeToJSON(n)
		if err != nil {
			return nil, err
		}
		out = append(out, value)
	}
	return out, nil
}
