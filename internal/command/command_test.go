// Copyright (c) 2026 The locctl Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/locctl/locctl/internal/catalog"
	"github.com/locctl/locctl/internal/locator"
	"github.com/locctl/locctl/internal/meta"
	"github.com/locctl/locctl/internal/source"
)

func TestInitApp(t *testing.T) {
	app, err := InitApp(context.Background(), []string{"locctl", "resolve"})
	require.NoError(t, err)

	assert.Equal(t, "locctl", app.Name)

	names := make([]string, 0, len(app.Commands))
	for _, cmd := range app.Commands {
		names = append(names, cmd.Name)
	}
	assert.ElementsMatch(t,
		[]string{"resolve", "versions", "diff", "get", "check", "completion"},
		names)

	// Flags must be sorted for --help.
	for _, cmd := range app.Commands {
		assert.True(t, sort.SliceIsSorted(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		}), "flags of %s not sorted", cmd.Name)
	}
}

func TestInitAppIgnoresFlagNamespace(t *testing.T) {
	app, err := InitApp(context.Background(), []string{"locctl", "--help"})
	require.NoError(t, err)
	assert.NotNil(t, app)
}

func TestGetMeta(t *testing.T) {
	m := meta.Meta{Args: []string{"locctl", "resolve"}}
	cmd := &cli.Command{Metadata: map[string]any{"meta": m}}

	assert.Equal(t, m, GetMeta(cmd))
	assert.Equal(t, meta.Meta{}, GetMeta(nil))
	assert.Equal(t, meta.Meta{}, GetMeta(&cli.Command{}))
}

func TestBuildAttrs(t *testing.T) {
	cmd := &cli.Command{
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "attrs", Value: "component"},
		},
	}

	al := BuildAttrs(cmd, "path", "selector")
	require.Len(t, al, 3)
	assert.Equal(t, "path", al[0].Key)
	assert.Equal(t, "component", al[2].Key)
}

func TestTreeRows(t *testing.T) {
	tree := locator.FromRaw(map[string]any{
		"editor": map[string]any{
			"tab":       "div.tab",
			"container": "div.editor-container",
		},
		"activityBar": "div.activitybar",
	})

	rows := TreeRows(tree)
	require.Len(t, rows, 3)

	// Walk order is sorted, so activityBar comes first.
	assert.Equal(t, "activityBar", rows[0]["path"])
	assert.Equal(t, "editor.container", rows[1]["path"])
	assert.Equal(t, "editor", rows[1]["component"])
	assert.Equal(t, "div.tab", rows[2]["selector"])
}

func TestLoadBundleBuiltin(t *testing.T) {
	cmd := &cli.Command{
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "source", Value: "builtin"},
		},
	}

	b, err := LoadBundle(context.Background(), cmd)
	require.NoError(t, err)
	assert.Positive(t, b.Catalog.Len())
	assert.Equal(t, "builtin", b.Source)
}

func TestLoadBundleBadSource(t *testing.T) {
	cmd := &cli.Command{
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "source", Value: "/definitely/not/a/dir"},
		},
	}

	_, err := LoadBundle(context.Background(), cmd)
	assert.Error(t, err)
}

func TestOutputValidator(t *testing.T) {
	for _, valid := range []string{"text", "json", "raw", "yaml"} {
		assert.NoError(t, OutputValidator(valid))
	}
	assert.Error(t, OutputValidator("xml"))
}

// Builtin assets double as fixtures: the catalog interface and source
// implementations must agree.
func TestBuiltinSatisfiesCatalogSource(t *testing.T) {
	var _ catalog.Source = source.Builtin()
}
