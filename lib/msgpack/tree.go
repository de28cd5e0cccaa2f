// Copyright 2026 The mpnode Authors
// SPDX-License-Identifier: Apache-2.0

package msgpack

import "bytes"

// Len returns the number of children of an Array or Map node.
func Len(n *Node) (int, error) {
	if n.kind != KindArray && n.kind != KindMap {
		return 0, kindMismatchf("Len", n.kind)
	}
	count := 0
	for c := n.child; c != nil; c = c.next {
		count++
	}
	return count, nil
}

// ArrayItem returns the element at the given zero-based index of an
// Array node. It returns ErrNotFound when index is out of range.
func ArrayItem(n *Node, index int) (*Node, error) {
	if n.kind != KindArray {
		return nil, kindMismatchf("ArrayItem", n.kind)
	}
	if index < 0 {
		return nil, ErrNotFound
	}
	c := n.child
	for i := 0; i < index && c != nil; i++ {
		c = c.next
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

// GetMapItem returns the first child of a Map node whose Str key
// matches name under case-insensitive comparison, or (nil, nil) when no
// entry matches. This is a convenience lookup; use GetMapItemExact for
// byte-exact MessagePack key semantics.
func GetMapItem(n *Node, name string) (*Node, error) {
	return findMapItem(n, name, true)
}

// GetMapItemExact returns the first child of a Map node whose Str key
// is byte-exactly equal to name, or (nil, nil) when no entry matches.
func GetMapItemExact(n *Node, name string) (*Node, error) {
	return findMapItem(n, name, false)
}

func findMapItem(n *Node, name string, caseInsensitive bool) (*Node, error) {
	if n.kind != KindMap {
		return nil, kindMismatchf("GetMapItem", n.kind)
	}
	target := []byte(name)
	for c := n.child; c != nil; c = c.next {
		if c.key == nil || c.key.kind != KindStr {
			continue
		}
		if keyMatches(c.key.Bytes(), target, caseInsensitive) {
			return c, nil
		}
	}
	return nil, nil
}

func keyMatches(a, b []byte, caseInsensitive bool) bool {
	if caseInsensitive {
		return bytes.EqualFold(a, b)
	}
	return bytes.Equal(a, b)
}

// unlink removes n from parent's sibling chain, fixing up the
// neighbours' prev/next links and parent's child pointer if n was the
// head. n's own prev/next are cleared; it still owns its subtree (key
// and children, if any).
func unlink(parent *Node, n *Node) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		parent.child = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	n.prev = nil
	n.next = nil
}

// DetachArrayItem removes and returns the element at index from an
// Array node, still owning its subtree. The returned node's prev/next
// are cleared so it can be reattached elsewhere.
func DetachArrayItem(parent *Node, index int) (*Node, error) {
	item, err := ArrayItem(parent, index)
	if err != nil {
		return nil, err
	}
	unlink(parent, item)
	return item, nil
}

// DetachMapItem removes and returns the entry named name from a Map
// node (case-sensitive), or (nil, nil) if no such entry exists.
func DetachMapItem(parent *Node, name string) (*Node, error) {
	item, err := GetMapItemExact(parent, name)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	unlink(parent, item)
	return item, nil
}

// DeleteArrayItem removes the element at index from an Array node.
func DeleteArrayItem(parent *Node, index int) error {
	_, err := DetachArrayItem(parent, index)
	return err
}

// DeleteMapItem removes the entry named name from a Map node. It
// returns ErrNotFound if no such entry exists.
func DeleteMapItem(parent *Node, name string) error {
	item, err := DetachMapItem(parent, name)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrNotFound
	}
	return nil
}

// spliceInPlace replaces old with replacement at old's exact position in
// parent's sibling chain.
func spliceInPlace(parent *Node, old, replacement *Node) {
	replacement.prev = old.prev
	replacement.next = old.next
	if old.prev != nil {
		old.prev.next = replacement
	} else {
		parent.child = replacement
	}
	if old.next != nil {
		old.next.prev = replacement
	}
	old.prev = nil
	old.next = nil
}

// ReplaceArrayItem splices replacement into parent's array at index,
// taking the place of the element previously there.
func ReplaceArrayItem(parent *Node, index int, replacement *Node) error {
	old, err := ArrayItem(parent, index)
	if err != nil {
		return err
	}
	spliceInPlace(parent, old, replacement)
	return nil
}

// ReplaceMapItem splices replacement into parent's map in place of the
// entry named name, taking over that entry's key unless replacement
// already carries its own. It returns ErrNotFound if no entry named
// name exists.
func ReplaceMapItem(parent *Node, name string, replacement *Node) error {
	old, err := GetMapItemExact(parent, name)
	if err != nil {
		return err
	}
	if old == nil {
		return ErrNotFound
	}
	if replacement.key == nil {
		replacement.key = old.key
	}
	spliceInPlace(parent, old, replacement)
	return nil
}

// Clone returns a deep copy of n: scalar fields, owned payload bytes,
// key, and children are all independently allocated, so mutating the
// clone never affects n and vice versa.
func Clone(n *Node) *Node {
	if n == nil {
		return nil
	}

	twin := &Node{
		kind:     n.kind,
		boolVal:  n.boolVal,
		intVal:   n.intVal,
		uintVal:  n.uintVal,
		floatVal: n.floatVal,
		extType:  n.extType,
		length:   n.length,
	}

	if n.payload != nil {
		twin.payload = make([]byte, len(n.payload))
		copy(twin.payload, n.payload)
	}

	twin.key = Clone(n.key)

	var prevClone *Node
	for c := n.child; c != nil; c = c.next {
		childClone := Clone(c)
		childClone.prev = prevClone
		if prevClone != nil {
			prevClone.next = childClone
		} else {
			twin.child = childClone
		}
		prevClone = childClone
	}

	return twin
}
