// Copyright (c) 2026 The locctl Authors.
// SPDX-License-Identifier: Apache-2.0

package locator

import (
	"encoding/json"
	"reflect"
	"sort"
)

// Node is one node of a locator tree: either a composite Tree or an opaque
// Leaf. The merge logic only ever asks "composite or leaf?"; leaf internals
// are never inspected or traversed.
type Node interface {
	node()
}

// Tree is a composite mapping of names to child nodes. The top level maps
// component names to their selector tables, but nesting depth is not limited.
type Tree map[string]Node

// Leaf wraps an opaque selector value. The value may be a string selector, a
// number, or a parameterized builder description (a sequence); none of that
// matters here.
type Leaf struct {
	Value any
}

func (Tree) node() {}
func (Leaf) node() {}

// FromRaw converts a decoded YAML/JSON document into a typed tree. Maps
// become subtrees, everything else becomes a leaf.
func FromRaw(raw map[string]any) Tree {
	t := make(Tree, len(raw))
	for k, v := range raw {
		t[k] = toNode(v)
	}
	return t
}

func toNode(v any) Node {
	switch m := v.(type) {
	case map[string]any:
		return FromRaw(m)
	case map[any]any:
		// Older YAML decoders produce interface-keyed maps.
		t := make(Tree, len(m))
		for k, v := range m {
			if key, ok := k.(string); ok {
				t[key] = toNode(v)
			}
		}
		return t
	default:
		return Leaf{Value: cloneAny(v)}
	}
}

// Clone returns a deep copy sharing no mutable structure with t.
func (t Tree) Clone() Tree {
	if t == nil {
		return nil
	}
	out := make(Tree, len(t))
	for k, v := range t {
		out[k] = cloneNode(v)
	}
	return out
}

func cloneNode(n Node) Node {
	switch v := n.(type) {
	case Tree:
		return v.Clone()
	case Leaf:
		return Leaf{Value: cloneAny(v.Value)}
	default:
		return n
	}
}

// cloneAny deep-copies the containers a decoded document can produce. Leaf
// values stay opaque to the merge, but they must not alias the source
// document either.
func cloneAny(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, e := range val {
			out[k] = cloneAny(e)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = cloneAny(e)
		}
		return out
	default:
		return val
	}
}

// Equal reports structural equality. Key order is irrelevant by construction.
func (t Tree) Equal(o Tree) bool {
	return reflect.DeepEqual(t, o)
}

// Walk visits every leaf in deterministic (sorted-key, depth-first) order.
// The path slice is reused between calls; copy it if it must be retained.
func (t Tree) Walk(fn func(path []string, leaf Leaf)) {
	t.walk(nil, fn)
}

func (t Tree) walk(prefix []string, fn func(path []string, leaf Leaf)) {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		path := append(prefix, k)
		switch v := t[k].(type) {
		case Tree:
			v.walk(path, fn)
		case Leaf:
			fn(path, v)
		}
	}
}

// Leaves returns the number of leaf values in the tree.
func (t Tree) Leaves() int {
	count := 0
	t.Walk(func([]string, Leaf) { count++ })
	return count
}

// ToRaw converts the tree back to plain nested maps, e.g. for YAML emission.
func (t Tree) ToRaw() map[string]any {
	out := make(map[string]any, len(t))
	for k, v := range t {
		switch n := v.(type) {
		case Tree:
			out[k] = n.ToRaw()
		case Leaf:
			out[k] = n.Value
		}
	}
	return out
}

// MarshalJSON emits the leaf's raw value.
func (l Leaf) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Value)
}

// MarshalYAML emits the leaf's raw value. The signature satisfies both
// yaml.v2 and yaml.v3 marshalers.
func (l Leaf) MarshalYAML() (any, error) {
	return l.Value, nil
}
