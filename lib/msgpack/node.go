// Copyright 2026 The mpnode Authors
// SPDX-License-Identifier: Apache-2.0

package msgpack

// Kind identifies which MessagePack type family a Node holds.
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindStr
	KindBlob
	KindExt
	KindArray
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindStr:
		return "str"
	case KindBlob:
		return "blob"
	case KindExt:
		return "ext"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Node is one element of a MessagePack document tree. A Node is either a
// scalar (Nil, Bool, Int, Uint, Float, Str, Blob, Ext) or a container
// (Array, Map). Container children form a doubly linked, insertion-
// ordered sibling chain reachable from the parent's child pointer; a
// child that is a map entry additionally carries its key as a separate
// owned Node reachable only from that child, never from its parent's
// child/sibling chain directly.
//
// Integers decoded from the wire are stored as signed 64-bit whenever
// they fit; a decoded unsigned 64-bit value whose high bit is set
// (too large for int64) gets its own Kind, KindUint, rather than
// overloading the Int slot with reinterpreted bits.
type Node struct {
	kind Kind

	boolVal  bool
	intVal   int64
	uintVal  uint64
	floatVal float64

	// payload holds the owned bytes for Str, Blob, and Ext nodes, with
	// one extra trailing zero byte past length so a caller that knows
	// the payload contains no interior NUL can treat it as a C string.
	// That trailing byte is a courtesy, not part of length or of the
	// wire contract.
	payload []byte
	length  int
	extType byte

	key   *Node
	child *Node
	next  *Node
	prev  *Node
}

// Kind reports which MessagePack type family n holds.
func (n *Node) Kind() Kind { return n.kind }

// Bool returns n's boolean value. Meaningful only when Kind() == KindBool.
func (n *Node) Bool() bool { return n.boolVal }

// Int returns n's signed integer value. Meaningful only when
// Kind() == KindInt.
func (n *Node) Int() int64 { return n.intVal }

// Uint returns n's unsigned integer value. Meaningful only when
// Kind() == KindUint.
func (n *Node) Uint() uint64 { return n.uintVal }

// Float returns n's floating-point value. Meaningful only when
// Kind() == KindFloat.
func (n *Node) Float() float64 { return n.floatVal }

// Bytes returns n's payload, excluding the trailing courtesy zero byte.
// Meaningful only when Kind() is KindStr, KindBlob, or KindExt. The
// returned slice aliases n's storage; callers that need to retain it
// independently of n should copy it.
func (n *Node) Bytes() []byte {
	if n.payload == nil {
		return nil
	}
	return n.payload[:n.length]
}

// ExtType returns n's extension type byte. Meaningful only when
// Kind() == KindExt.
func (n *Node) ExtType() byte { return n.extType }

// Key returns the node that acts as n's key when n is a map entry, or
// nil when n was never given a key. A node detached from a map keeps
// its key.
func (n *Node) Key() *Node { return n.key }

// FirstChild returns the head of n's sibling chain of children, or nil
// if n is a scalar or an empty container.
func (n *Node) FirstChild() *Node { return n.child }

// NextSibling returns the next node in n's parent's sibling chain, or
// nil if n is the last child.
func (n *Node) NextSibling() *Node { return n.next }

// PrevSibling returns the previous node in n's parent's sibling chain,
// or nil if n is the first child.
func (n *Node) PrevSibling() *Node { return n.prev }

// NewNil returns a freshly allocated Nil node.
func NewNil() *Node { return &Node{kind: KindNil} }

// NewBool returns a freshly allocated Bool node.
func NewBool(v bool) *Node { return &Node{kind: KindBool, boolVal: v} }

// NewInt returns a freshly allocated signed-integer node.
func NewInt(v int64) *Node { return &Node{kind: KindInt, intVal: v} }

// NewUint returns a freshly allocated unsigned-integer node. Construct
// values that fit in int64 with NewInt instead; encoding always chooses
// the shortest wire form regardless of which constructor built the node.
func NewUint(v uint64) *Node { return &Node{kind: KindUint, uintVal: v} }

// NewFloat returns a freshly allocated float node.
func NewFloat(v float64) *Node { return &Node{kind: KindFloat, floatVal: v} }

func newPayloadNode(kind Kind, data []byte) *Node {
	n := &Node{kind: kind, length: len(data)}
	n.payload = make([]byte, len(data)+1)
	copy(n.payload, data)
	return n
}

// NewString returns a freshly allocated Str node holding a copy of s's
// bytes. Strings are stored and compared as raw bytes; they are not
// validated as UTF-8.
func NewString(s string) *Node { return newPayloadNode(KindStr, []byte(s)) }

// NewBinary returns a freshly allocated Blob node holding a copy of b.
func NewBinary(b []byte) *Node { return newPayloadNode(KindBlob, b) }

// NewExt returns a freshly allocated Ext node with the given user
// extension type and a copy of data as its payload.
func NewExt(etype byte, data []byte) *Node {
	n := newPayloadNode(KindExt, data)
	n.extType = etype
	return n
}

// NewArray returns a freshly allocated, empty Array node.
func NewArray() *Node { return &Node{kind: KindArray} }

// NewMap returns a freshly allocated, empty Map node.
func NewMap() *Node { return &Node{kind: KindMap} }

// appendSibling links n onto the tail of parent's child chain. It does
// not check parent's Kind; callers (AppendArrayItem, SetMapItem) are
// expected to have already validated it.
func appendSibling(parent *Node, n *Node) {
	n.next = nil
	if parent.child == nil {
		n.prev = nil
		parent.child = n
		return
	}
	tail := parent.child
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = n
	n.prev = tail
}

// AppendArrayItem appends item as the new last element of parent's
// array. It returns ErrKindMismatch when parent is not an Array node.
func AppendArrayItem(parent *Node, item *Node) error {
	if parent.kind != KindArray {
		return kindMismatchf("AppendArrayItem", parent.kind)
	}
	appendSibling(parent, item)
	return nil
}

// SetMapItem appends value as the new last entry of parent's map, with
// key name as a freshly constructed Str key node. It does not check
// whether name already exists; callers that want replace-or-insert
// semantics should look the key up first with GetMapItemExact and call
// ReplaceMapItem when it is found.
func SetMapItem(parent *Node, name string, value *Node) error {
	if parent.kind != KindMap {
		return kindMismatchf("SetMapItem", parent.kind)
	}
	value.key = NewString(name)
	appendSibling(parent, value)
	return nil
}

func kindMismatchf(op string, k Kind) error {
	return &nodeOpError{op: op, kind: k, err: ErrKindMismatch}
}

type nodeOpError struct {
	op   string
	kind Kind
	err  error
}

func (e *nodeOpError) Error() string {
	return "msgpack: " + e.op + ": " + e.err.Error() + " (kind=" + e.kind.String() + ")"
}

func (e *nodeOpError) Unwrap() error { return e.err }
