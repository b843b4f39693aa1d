// Copyright (c) 2026 The locctl Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/locctl/locctl/internal/config"
	"github.com/locctl/locctl/internal/meta"
	"github.com/locctl/locctl/internal/output"
	"github.com/locctl/locctl/internal/resolver"
	"github.com/locctl/locctl/internal/verspec"
)

// resolveDefaultAttrs specifies the default attributes displayed for resolved
// selectors in the "resolve" command output.
var resolveDefaultAttrs = []string{"path", "selector"}

// resolveCommandAction is the action handler for the "resolve" subcommand. It
// loads the bundle from --source, folds the applicable diffs onto the
// baseline for the --target version, and emits one row per selector.
func resolveCommandAction(ctx context.Context, cmd *cli.Command) error {
	if ShortCircuitTLDR(ctx, cmd, "resolve") {
		return nil
	}

	config.Config.Namespace = "resolve"

	b, err := LoadBundle(ctx, cmd)
	if err != nil {
		return err
	}

	targets, err := verspec.Resolve(b.Catalog, cmd.String("target"))
	if err != nil {
		return err
	}
	target := targets[0]

	tree := resolver.Resolve(b.Base, b.BaseVersion, target, b.Catalog)

	// Raw skips the row pipeline and emits the resolved tree itself, the
	// shape a test harness ingests.
	if cmd.String("output") == "raw" {
		doc, err := json.Marshal(tree)
		if err != nil {
			return fmt.Errorf("failed to marshal tree: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(doc))
		return nil
	}

	raw, err := json.Marshal(TreeRows(tree))
	if err != nil {
		return fmt.Errorf("failed to marshal rows: %w", err)
	}

	al := BuildAttrs(cmd, resolveDefaultAttrs...)

	cmd.Metadata["header"] = fmt.Sprintf("%s @ %s (baseline %s)",
		b.Source, target, b.BaseVersion)

	output.SliceDiceSpit(*bytes.NewBuffer(raw), al, cmd, "", os.Stdout, nil)
	return nil
}

// resolveCommandBuilder constructs the cli.Command for "resolve", wiring
// metadata, flags, and action handlers.
func resolveCommandBuilder(meta meta.Meta) *cli.Command {
	return (&BundleCommandBuilder{
		Name:      "resolve",
		Usage:     "resolve the locator tree for a version",
		UsageText: "locctl resolve [options]",
		Flags: []cli.Flag{
			NewSourceFlag("resolve", meta.Config.Source),
			NewTargetFlag("resolve", meta.Config.Source),
		},
		Action: resolveCommandAction,
		Meta:   meta,
	}).Build()
}
