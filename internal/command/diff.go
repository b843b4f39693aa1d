// Copyright (c) 2026 The locctl Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/locctl/locctl/internal/appver"
	"github.com/locctl/locctl/internal/config"
	"github.com/locctl/locctl/internal/differ"
	"github.com/locctl/locctl/internal/meta"
	"github.com/locctl/locctl/internal/resolver"
	"github.com/locctl/locctl/internal/verspec"
)

// diffCommandAction is the action handler for the "diff" subcommand. It
// resolves the locator tree at two versions and renders what changed between
// them. Versions come from the positional args, or from an interactive picker
// with --pick. With one arg the second side defaults to latest; with none it
// compares the two most recent cataloged versions.
func diffCommandAction(ctx context.Context, cmd *cli.Command) error {
	if ShortCircuitTLDR(ctx, cmd, "diff") {
		return nil
	}

	config.Config.Namespace = "diff"

	b, err := LoadBundle(ctx, cmd)
	if err != nil {
		return err
	}

	var versions []appver.Version
	if cmd.Bool("pick") {
		versions = differ.SelectVersions(b.Catalog.Versions())
		if len(versions) != 2 {
			return nil
		}
	} else {
		specs := cmd.Args().Slice()
		switch len(specs) {
		case 0:
			specs = []string{"latest~1", "latest"}
		case 1:
			specs = append(specs, "latest")
		case 2:
		default:
			return fmt.Errorf("diff takes at most two version specs, got %d", len(specs))
		}

		versions, err = verspec.Resolve(b.Catalog, specs...)
		if err != nil {
			return err
		}
	}

	docs := make([][]byte, 2)
	for i, v := range versions {
		tree := resolver.Resolve(b.Base, b.BaseVersion, v, b.Catalog)
		if docs[i], err = json.Marshal(tree); err != nil {
			return fmt.Errorf("failed to marshal tree for %s: %w", v, err)
		}
	}

	fmt.Fprintf(os.Stdout, "%s -> %s\n", versions[0], versions[1])
	return differ.Diff(cmd, docs, os.Stdout)
}

// diffCommandBuilder constructs the cli.Command for "diff", wiring metadata,
// flags, and action handlers.
func diffCommandBuilder(meta meta.Meta) *cli.Command {
	return (&BundleCommandBuilder{
		Name:      "diff",
		Usage:     "diff the resolved trees of two versions",
		UsageText: "locctl diff [version-spec [version-spec]] [options]",
		Flags: []cli.Flag{
			NewSourceFlag("diff", meta.Config.Source),
			&cli.StringFlag{
				Name:  "diff_filter",
				Usage: "comma-separated list of components to exclude from the diff",
			},
			&cli.BoolFlag{
				Name:        "pick",
				Aliases:     []string{"p"},
				Usage:       "pick the versions interactively",
				HideDefault: true,
			},
		},
		Action: diffCommandAction,
		Meta:   meta,
	}).Build()
}
