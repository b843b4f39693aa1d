// Copyright (c) 2026 The locctl Authors.
// SPDX-License-Identifier: Apache-2.0

package locator

// Merge layers diff onto base and returns a fresh tree. The merge is additive:
// a diff can add or replace, never delete.
//
// Rules, applied per key present in diff:
//   - both sides composite: recurse and replace the subtree with the result;
//   - otherwise: the diff's value wins, replacing whatever base had (or adding
//     entirely new structure when the path is absent from base).
//
// Keys present only in base carry through unchanged. Neither input is mutated
// and the result shares no mutable structure with either, so the same base can
// feed any number of merges.
func Merge(base, diff Tree) Tree {
	out := base.Clone()
	if out == nil {
		out = make(Tree, len(diff))
	}

	for k, dv := range diff {
		if dt, ok := dv.(Tree); ok {
			if bt, ok := out[k].(Tree); ok {
				out[k] = Merge(bt, dt)
				continue
			}
		}
		out[k] = cloneNode(dv)
	}

	return out
}
