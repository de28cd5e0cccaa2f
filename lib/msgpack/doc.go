// Copyright 2026 The mpnode Authors
// SPDX-License-Identifier: Apache-2.0

// Package msgpack implements the MessagePack binary serialization format
// (https://msgpack.org/), end to end: a decoder that turns a byte stream
// holding one or more concatenated MessagePack values into an in-memory
// document tree, an encoder that serializes a tree back to bytes, and a
// tree API for building, inspecting, and mutating documents.
//
// The document tree is a Node: a tagged value that is either a scalar
// (Nil, Bool, Int, Uint, Float, Str, Blob, Ext) or a container (Array,
// Map) whose children form a doubly linked, insertion-ordered sibling
// chain. Map entries carry their key as a child node's Key, not as a
// separate Go map, so insertion order and non-string keys both survive a
// round trip.
//
// Decoding is strict: every header and length is bounds-checked against
// the remaining input before anything is read, and the decoder returns an
// error on the first malformed byte rather than populating a partial
// node. Encoding always emits the shortest header the MessagePack format
// allows for a given value or length.
//
// This package does not validate Str payloads as UTF-8, does not sort
// map keys, and does not support float32 round-tripping: a decoded
// float32 becomes a Float node holding a float64, and re-encoding chooses
// the float32 wire form again only if the value still round-trips
// through it exactly.
package msgpack
