// Copyright 2026 The mpnode Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"

	"github.com/mpnode/msgpack/lib/msgpack"
)

// decodeJSONValue reads exactly one JSON value from dec using streaming
// Token calls, building a msgpack.Node directly rather than going
// through map[string]any/[]any first. Tokenizing preserves object key
// order, which a map[string]any intermediate cannot: MessagePack map
// entries are insertion-ordered, so losing that order here would make
// json2mp non-reproducible on structured input.
func decodeJSONValue(dec *json.Decoder) (*msgpack.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return nodeFromToken(dec, tok)
}

func nodeFromToken(dec *json.Decoder, tok json.Token) (*msgpack.Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeJSONObject(dec)
		case '[':
			return decodeJSONArray(dec)
		}
		return nil, fmt.Errorf("json2mp: unexpected delimiter %q", t)
	case nil:
		return msgpack.NewNil(), nil
	case bool:
		return msgpack.NewBool(t), nil
	case string:
		return msgpack.NewString(t), nil
	case json.Number:
		return numberToNode(t)
	default:
		return nil, fmt.Errorf("json2mp: unexpected JSON token of type %T", tok)
	}
}

// numberToNode maps a JSON number written as an integer literal (no
// fraction or exponent) that fits in int64 to an Int node, everything
// else to a Float node; "1.0" and "1e3" become Float nodes.
func numberToNode(n json.Number) (*msgpack.Node, error) {
	if i, err := n.Int64(); err == nil {
		return msgpack.NewInt(i), nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("json2mp: invalid number %q: %w", n.String(), err)
	}
	return msgpack.NewFloat(f), nil
}

func decodeJSONObject(dec *json.Decoder) (*msgpack.Node, error) {
	m := msgpack.NewMap()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("json2mp: object key %v is not a string", keyTok)
		}
		value, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		if err := msgpack.SetMapItem(m, key, value); err != nil {
			return nil, err
		}
	}
	if _, err := dec.Token(); err != nil { // consume closing '}'
		return nil, err
	}
	return m, nil
}

func decodeJSONArray(dec *json.Decoder) (*msgpack.Node, error) {
	arr := msgpack.NewArray()
	for dec.More() {
		value, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		if err := msgpack.AppendArrayItem(arr, value); err != nil {
			return nil, err
		}
	}
	if _, err := dec.Token(); err != nil { // consume closing ']'
		return nil, err
	}
	return arr, nil
}
