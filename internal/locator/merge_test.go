// Copyright (c) 2026 The locctl Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package locator

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tree(raw map[string]any) Tree { return FromRaw(raw) }

func TestMergeOverridesLeaf(t *testing.T) {
	base := tree(map[string]any{
		"sideBar": map[string]any{"title": "h2.title", "section": "div.pane"},
	})
	diff := tree(map[string]any{
		"sideBar": map[string]any{"title": "h3.title"},
	})

	got := Merge(base, diff)

	want := tree(map[string]any{
		"sideBar": map[string]any{"title": "h3.title", "section": "div.pane"},
	})
	assert.Empty(t, cmp.Diff(want, got))
}

func TestMergeAddsNewComponent(t *testing.T) {
	base := tree(map[string]any{
		"editor": map[string]any{"body": "div.monaco-editor"},
	})
	diff := tree(map[string]any{
		"resultPanel": map[string]any{"frame": "iframe.webview"},
	})

	got := Merge(base, diff)

	assert.Equal(t, 2, len(got))
	assert.Empty(t, cmp.Diff(tree(map[string]any{
		"editor":      map[string]any{"body": "div.monaco-editor"},
		"resultPanel": map[string]any{"frame": "iframe.webview"},
	}), got))
}

func TestMergeLeafReplacesSubtree(t *testing.T) {
	// A leaf in the diff wins even when base has a composite at the same key,
	// and vice versa. The merge never recurses into a leaf.
	base := tree(map[string]any{
		"terminal": map[string]any{"input": map[string]any{"row": "textarea"}},
	})
	diff := tree(map[string]any{
		"terminal": map[string]any{"input": "textarea.xterm-helper-textarea"},
	})

	got := Merge(base, diff)

	leaf, ok := got["terminal"].(Tree)["input"].(Leaf)
	require.True(t, ok)
	assert.Equal(t, "textarea.xterm-helper-textarea", leaf.Value)
}

func TestMergeDeepNesting(t *testing.T) {
	base := tree(map[string]any{
		"quickInput": map[string]any{
			"list": map[string]any{"row": "div.monaco-list-row", "label": "span.label-name"},
		},
	})
	diff := tree(map[string]any{
		"quickInput": map[string]any{
			"list": map[string]any{"row": "div.monaco-list-row.focused"},
		},
	})

	got := Merge(base, diff)

	list := got["quickInput"].(Tree)["list"].(Tree)
	assert.Equal(t, "div.monaco-list-row.focused", list["row"].(Leaf).Value)
	assert.Equal(t, "span.label-name", list["label"].(Leaf).Value)
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	rawBase := map[string]any{
		"editor": map[string]any{"body": "div.editor", "tabs": []any{"a", "b"}},
	}
	rawDiff := map[string]any{
		"editor": map[string]any{"body": "div.editor-v2"},
	}

	base := tree(rawBase)
	diff := tree(rawDiff)
	baseSnapshot := base.Clone()
	diffSnapshot := diff.Clone()

	got := Merge(base, diff)

	assert.True(t, base.Equal(baseSnapshot))
	assert.True(t, diff.Equal(diffSnapshot))

	// Mutating the result must not leak back into base, including through
	// sequence-valued leaves.
	got["editor"].(Tree)["body"] = Leaf{Value: "mutated"}
	got["editor"].(Tree)["tabs"].(Leaf).Value.([]any)[0] = "mutated"
	assert.True(t, base.Equal(baseSnapshot))
}

func TestMergeEmptyDiffIsIdentity(t *testing.T) {
	base := tree(map[string]any{"statusBar": map[string]any{"item": "div.statusbar-item"}})

	got := Merge(base, Tree{})

	assert.True(t, got.Equal(base))
}

func TestMergeIntoNilBase(t *testing.T) {
	diff := tree(map[string]any{"notifications": map[string]any{"toast": "div.notification-toast"}})

	got := Merge(nil, diff)

	assert.True(t, got.Equal(diff))
}
