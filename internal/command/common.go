// Copyright (c) 2026 The locctl Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/locctl/locctl/internal/attrs"
	"github.com/locctl/locctl/internal/catalog"
	"github.com/locctl/locctl/internal/locator"
	"github.com/locctl/locctl/internal/meta"
	"github.com/locctl/locctl/internal/source"
)

// BuildAttrs constructs an AttrList with defaults and optional extras from
// --attrs, then applies the global transform spec.
func BuildAttrs(cmd *cli.Command, defaults ...string) (al attrs.AttrList) {
	//nolint:errcheck
	{
		for _, d := range defaults {
			al.Set(d)
		}
		if extras := cmd.String("attrs"); extras != "" {
			al.Set(extras)
		}
		al.SetGlobalTransformSpec()
	}
	return
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// LoadBundle resolves the --source flag to a backing store and loads the
// bundle from it. Skipped diff documents are reported on stderr but never
// fail the load.
func LoadBundle(ctx context.Context, cmd *cli.Command) (*catalog.Bundle, error) {
	src, err := source.New(ctx, cmd.String("source"))
	if err != nil {
		return nil, fmt.Errorf("failed to open source: %w", err)
	}

	b, err := catalog.Load(src)
	if err != nil {
		return nil, err
	}

	for _, w := range b.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	return b, nil
}

// TreeRows flattens a locator tree into one row per leaf selector, the shape
// every command feeds to the output pipeline.
func TreeRows(t locator.Tree) []map[string]interface{} {
	var rows []map[string]interface{}
	t.Walk(func(path []string, leaf locator.Leaf) {
		rows = append(rows, map[string]interface{}{
			"component": path[0],
			"path":      strings.Join(path, "."),
			"selector":  leaf.Value,
		})
	})
	return rows
}

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr locctl <subcmd>` and returns true so the caller can exit early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "locctl", subcmd)
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}
