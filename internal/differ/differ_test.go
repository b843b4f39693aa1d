// Copyright (c) 2026 The locctl Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package differ

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func diffCommand(filter string) *cli.Command {
	return &cli.Command{
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "diff_filter", Value: filter},
			&cli.BoolFlag{Name: "color"},
		},
	}
}

func TestDiffIdentical(t *testing.T) {
	var buf bytes.Buffer
	doc := []byte(`{"editor": {"tab": "div.tab"}}`)

	require.NoError(t, Diff(diffCommand(""), [][]byte{doc, doc}, &buf))
	assert.Contains(t, buf.String(), "identical")
}

func TestDiffModified(t *testing.T) {
	var buf bytes.Buffer
	one := []byte(`{"editor": {"tab": "div.tab"}}`)
	two := []byte(`{"editor": {"tab": "div.tab-v2"}}`)

	require.NoError(t, Diff(diffCommand(""), [][]byte{one, two}, &buf))
	assert.Contains(t, buf.String(), "div.tab-v2")
}

func TestDiffFilterDropsComponent(t *testing.T) {
	var buf bytes.Buffer
	one := []byte(`{"editor": {"tab": "div.tab"}, "terminal": {"xterm": "div.xterm"}}`)
	two := []byte(`{"editor": {"tab": "div.tab-v2"}, "terminal": {"xterm": "div.xterm"}}`)

	require.NoError(t, Diff(diffCommand("terminal"), [][]byte{one, two}, &buf))
	assert.NotContains(t, buf.String(), "xterm")
	assert.Contains(t, buf.String(), "div.tab-v2")
}

func TestDiffEmptyDoc(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Diff(diffCommand(""), [][]byte{nil, []byte(`{}`)}, &buf))
	assert.Empty(t, buf.String())
}
