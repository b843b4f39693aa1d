// Copyright (c) 2026 The locctl Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/locctl/locctl/internal/config"
	"github.com/locctl/locctl/internal/driller"
	"github.com/locctl/locctl/internal/meta"
	"github.com/locctl/locctl/internal/resolver"
	"github.com/locctl/locctl/internal/verspec"
)

// getCommandAction is the action handler for the "get" subcommand. It
// resolves the tree at --target, drills to the selector at the given dot
// path, and prints it. Extra positional args fill {0}, {1}, ...
// placeholders in parameterized selectors.
func getCommandAction(ctx context.Context, cmd *cli.Command) error {
	if ShortCircuitTLDR(ctx, cmd, "get") {
		return nil
	}

	config.Config.Namespace = "get"

	args := cmd.Args().Slice()
	if len(args) == 0 {
		return fmt.Errorf("get requires a locator path, e.g. editor.tab")
	}
	path := args[0]
	fillArgs := args[1:]

	b, err := LoadBundle(ctx, cmd)
	if err != nil {
		return err
	}

	targets, err := verspec.Resolve(b.Catalog, cmd.String("target"))
	if err != nil {
		return err
	}

	tree := resolver.Resolve(b.Base, b.BaseVersion, targets[0], b.Catalog)

	doc, err := json.Marshal(tree)
	if err != nil {
		return fmt.Errorf("failed to marshal tree: %w", err)
	}

	result := driller.Driller(string(doc), path)
	if !result.Exists() {
		return fmt.Errorf("no locator at %s for version %s", path, targets[0])
	}

	// A non-leaf path dumps the whole subtree.
	if result.IsObject() || result.IsArray() {
		if len(fillArgs) > 0 {
			return fmt.Errorf("placeholder args need a single selector, %s is a subtree", path)
		}
		fmt.Fprintln(os.Stdout, result.Raw)
		return nil
	}

	selector := result.String()
	if len(fillArgs) > 0 {
		if selector, err = driller.Fill(selector, fillArgs...); err != nil {
			return err
		}
	}

	fmt.Fprintln(os.Stdout, selector)
	return nil
}

// getCommandBuilder constructs the cli.Command for "get", wiring metadata,
// flags, and action handlers.
func getCommandBuilder(meta meta.Meta) *cli.Command {
	return (&BundleCommandBuilder{
		Name:      "get",
		Usage:     "get a single selector by path",
		UsageText: "locctl get PATH [arg ...] [options]",
		Flags: []cli.Flag{
			NewSourceFlag("get", meta.Config.Source),
			NewTargetFlag("get", meta.Config.Source),
		},
		Action: getCommandAction,
		Meta:   meta,
	}).Build()
}
