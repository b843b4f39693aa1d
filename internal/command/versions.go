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
)

// versionsDefaultAttrs specifies the default attributes displayed for
// cataloged versions in the "versions" command output.
var versionsDefaultAttrs = []string{"version", "kind", "name", "leaves"}

// versionsCommandAction is the action handler for the "versions" subcommand.
// It lists the baseline and every cataloged override set in ascending version
// order.
func versionsCommandAction(ctx context.Context, cmd *cli.Command) error {
	if ShortCircuitTLDR(ctx, cmd, "versions") {
		return nil
	}

	config.Config.Namespace = "versions"

	b, err := LoadBundle(ctx, cmd)
	if err != nil {
		return err
	}

	rows := []map[string]interface{}{{
		"version": b.BaseVersion.String(),
		"kind":    "baseline",
		"name":    b.Source,
		"leaves":  b.Base.Leaves(),
	}}
	for _, e := range b.Catalog.Entries() {
		rows = append(rows, map[string]interface{}{
			"version": e.Version.String(),
			"kind":    "diff",
			"name":    e.Name,
			"leaves":  e.Diff.Leaves(),
		})
	}

	raw, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("failed to marshal rows: %w", err)
	}

	al := BuildAttrs(cmd, versionsDefaultAttrs...)

	cmd.Metadata["footer"] = fmt.Sprintf("%d diffs on baseline %s",
		b.Catalog.Len(), b.BaseVersion)

	output.SliceDiceSpit(*bytes.NewBuffer(raw), al, cmd, "", os.Stdout, nil)
	return nil
}

// versionsCommandBuilder constructs the cli.Command for "versions", wiring
// metadata, flags, and action handlers.
func versionsCommandBuilder(meta meta.Meta) *cli.Command {
	return (&BundleCommandBuilder{
		Name:      "versions",
		Usage:     "list bundle versions",
		UsageText: "locctl versions [options]",
		Flags: []cli.Flag{
			NewSourceFlag("versions", meta.Config.Source),
		},
		Action: versionsCommandAction,
		Meta:   meta,
	}).Build()
}
