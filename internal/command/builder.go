// Copyright (c) 2026 The locctl Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/locctl/locctl/internal/meta"
)

// BundleCommandBuilder constructs a cli.Command for the bundle subcommands
// (resolve, versions, diff, get, check) using a consistent pattern. It accepts
// the command name, usage text, optional UsageText, custom flags, the action
// handler, and meta. The builder automatically wires metadata, adds the tldr
// flag, applies global flags, and sets up validators.
type BundleCommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (bcb *BundleCommandBuilder) Build() *cli.Command {
	return &cli.Command{
		Name:      bcb.Name,
		Usage:     bcb.Usage,
		UsageText: bcb.UsageText,
		Metadata: map[string]any{
			"meta": bcb.Meta,
		},
		Flags: append(bcb.Flags, append([]cli.Flag{
			tldrFlag,
		}, NewGlobalFlags(bcb.Name)...)...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: bcb.Action,
	}
}
