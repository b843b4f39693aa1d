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

	"github.com/locctl/locctl/internal/catalog"
	"github.com/locctl/locctl/internal/config"
	"github.com/locctl/locctl/internal/meta"
	"github.com/locctl/locctl/internal/output"
	"github.com/locctl/locctl/internal/resolver"
	"github.com/locctl/locctl/internal/source"
)

// checkDefaultAttrs specifies the default attributes displayed for skipped
// documents in the "check" command output.
var checkDefaultAttrs = []string{"name", "error"}

// checkCommandAction is the action handler for the "check" subcommand. It
// loads the bundle, reports every skipped diff document, and exercises a full
// resolve to the newest version to prove the bundle is usable. With --strict
// any skipped document fails the command.
func checkCommandAction(ctx context.Context, cmd *cli.Command) error {
	if ShortCircuitTLDR(ctx, cmd, "check") {
		return nil
	}

	config.Config.Namespace = "check"

	// Load by hand instead of through LoadBundle: the warnings are the
	// payload here, not a side note.
	src, err := source.New(ctx, cmd.String("source"))
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}

	b, err := catalog.Load(src)
	if err != nil {
		return err
	}

	// A bundle that loads but cannot resolve is still broken.
	if versions := b.Catalog.Versions(); len(versions) > 0 {
		latest := versions[len(versions)-1]
		if tree := resolver.Resolve(b.Base, b.BaseVersion, latest, b.Catalog); tree.Leaves() == 0 {
			return fmt.Errorf("resolved tree for %s has no selectors", latest)
		}
	}

	rows := make([]map[string]interface{}, 0, len(b.Warnings))
	for _, w := range b.Warnings {
		rows = append(rows, map[string]interface{}{
			"name":  w.Name,
			"error": w.Err.Error(),
		})
	}

	raw, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("failed to marshal rows: %w", err)
	}

	al := BuildAttrs(cmd, checkDefaultAttrs...)

	cmd.Metadata["header"] = fmt.Sprintf("%s: %d diffs, %d skipped",
		b.Source, b.Catalog.Len(), len(b.Warnings))

	output.SliceDiceSpit(*bytes.NewBuffer(raw), al, cmd, "", os.Stdout, nil)

	if cmd.Bool("strict") && len(b.Warnings) > 0 {
		return fmt.Errorf("%d diff documents were skipped", len(b.Warnings))
	}

	return nil
}

// checkCommandBuilder constructs the cli.Command for "check", wiring
// metadata, flags, and action handlers.
func checkCommandBuilder(meta meta.Meta) *cli.Command {
	return (&BundleCommandBuilder{
		Name:      "check",
		Usage:     "validate a bundle",
		UsageText: "locctl check [options]",
		Flags: []cli.Flag{
			NewSourceFlag("check", meta.Config.Source),
			&cli.BoolFlag{
				Name:        "strict",
				Usage:       "fail when any diff document is skipped",
				HideDefault: true,
			},
		},
		Action: checkCommandAction,
		Meta:   meta,
	}).Build()
}
