// Copyright (c) 2026 The locctl Authors.
// SPDX-License-Identifier: Apache-2.0

package resolver

import (
	"fmt"

	"github.com/locctl/locctl/internal/appver"
	"github.com/locctl/locctl/internal/catalog"
	"github.com/locctl/locctl/internal/locator"
	"github.com/locctl/locctl/internal/log"
)

// Resolve folds the applicable catalog diffs onto base and returns the
// effective locator tree for target. The result never shares mutable
// structure with base or with any diff.
//
// Diff selection is a half-open window: exclusive at baseVersion (the
// baseline already reflects it), inclusive at target. Upgrades apply diffs in
// ascending version order, downgrades in descending order. Each diff encodes
// what changed going into its version, so the set replays like a changelog in
// the direction of travel.
//
// Downgrade is best-effort: a diff is a forward delta, not an invertible
// patch. Replaying diffs in reverse cannot remove a key below the version
// that introduced it, and an overridden value only falls back to the nearest
// surviving older override. Callers downgrading across aggressive override
// sets should validate the result against the application under test.
//
// A target with no reachable diffs is not an error: the baseline is assumed
// valid wherever no closer override is known.
func Resolve(base locator.Tree, baseVersion, target appver.Version, cat *catalog.Catalog) locator.Tree {
	cmp := baseVersion.Compare(target)
	if cmp == 0 {
		return base.Clone()
	}
	upgrade := cmp < 0

	// Entries come back ascending; keep the matching window.
	var selected []catalog.Entry
	for _, e := range cat.Entries() {
		var in bool
		if upgrade {
			in = baseVersion.Less(e.Version) && !target.Less(e.Version)
		} else {
			in = e.Version.Less(baseVersion) && !e.Version.Less(target)
		}
		if in {
			selected = append(selected, e)
		}
	}

	if !upgrade {
		for i, j := 0, len(selected)-1; i < j; i, j = i+1, j-1 {
			selected[i], selected[j] = selected[j], selected[i]
		}
	}

	log.Debugf("resolve: base=%s, target=%s, upgrade=%v, diffs=%d",
		baseVersion, target, upgrade, len(selected))

	out := base.Clone()
	for _, e := range selected {
		out = locator.Merge(out, e.Diff)
	}
	return out
}

// ResolveTarget resolves a bundle for a target version string. An unparseable
// target fails fast with appver.ErrInvalidFormat before any merge work.
func ResolveTarget(b *catalog.Bundle, target string) (locator.Tree, error) {
	v, err := appver.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("target version: %w", err)
	}
	return Resolve(b.Base, b.BaseVersion, v, b.Catalog), nil
}
