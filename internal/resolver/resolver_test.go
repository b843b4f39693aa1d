// Copyright (c) 2026 The locctl Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locctl/locctl/internal/appver"
	"github.com/locctl/locctl/internal/catalog"
	"github.com/locctl/locctl/internal/locator"
)

type mapSource struct {
	baseline []byte
	diffs    map[string][]byte
}

func (m mapSource) Baseline() ([]byte, error)         { return m.baseline, nil }
func (m mapSource) Diffs() (map[string][]byte, error) { return m.diffs, nil }
func (m mapSource) String() string                    { return "test" }

// ladder is a catalog where versions 1.1, 1.2 and 1.3 each override the same
// key with a distinct value, plus one version-specific addition each.
func ladder(t *testing.T) *catalog.Bundle {
	t.Helper()

	b, err := catalog.Load(mapSource{
		baseline: []byte("version: \"1.0\"\nlocators: {panel: {tab: base, fixed: stays}}"),
		diffs: map[string][]byte{
			// Names deliberately out of version order.
			"z.yaml": []byte("version: \"1.1\"\nlocators: {panel: {tab: v11, only11: x}}"),
			"a.yaml": []byte("version: \"1.3\"\nlocators: {panel: {tab: v13}}"),
			"m.yaml": []byte("version: \"1.2\"\nlocators: {panel: {tab: v12, only12: y}}"),
		},
	})
	require.NoError(t, err)
	require.Empty(t, b.Warnings)
	return b
}

func leaf(t *testing.T, tr locator.Tree, component, selector string) any {
	t.Helper()
	sub, ok := tr[component].(locator.Tree)
	require.True(t, ok, "component %s", component)
	l, ok := sub[selector].(locator.Leaf)
	require.True(t, ok, "selector %s", selector)
	return l.Value
}

func TestResolveIdentityOnEqualVersions(t *testing.T) {
	b := ladder(t)

	got := Resolve(b.Base, b.BaseVersion, appver.MustParse("1.0.0"), b.Catalog)

	assert.True(t, got.Equal(b.Base))

	// Equal content, independent ownership.
	got["panel"].(locator.Tree)["tab"] = locator.Leaf{Value: "mutated"}
	assert.Equal(t, "base", leaf(t, b.Base, "panel", "tab"))
}

func TestResolveUpgradeLastDiffWins(t *testing.T) {
	b := ladder(t)

	got, err := ResolveTarget(b, "1.3")
	require.NoError(t, err)

	assert.Equal(t, "v13", leaf(t, got, "panel", "tab"))
	assert.Equal(t, "stays", leaf(t, got, "panel", "fixed"))
	assert.Equal(t, "x", leaf(t, got, "panel", "only11"))
	assert.Equal(t, "y", leaf(t, got, "panel", "only12"))
}

func TestResolveUpgradeWindowIsInclusiveAtTarget(t *testing.T) {
	b := ladder(t)

	got, err := ResolveTarget(b, "1.2")
	require.NoError(t, err)

	assert.Equal(t, "v12", leaf(t, got, "panel", "tab"))
	sub := got["panel"].(locator.Tree)
	_, ok := sub["only12"]
	assert.True(t, ok)
}

func TestResolveUpgradeBeyondLastDiff(t *testing.T) {
	b := ladder(t)

	got, err := ResolveTarget(b, "1.9.9")
	require.NoError(t, err)

	// Degrades gracefully to the closest reachable state.
	assert.Equal(t, "v13", leaf(t, got, "panel", "tab"))
}

func TestResolveNoReachableDiffs(t *testing.T) {
	b := ladder(t)

	got, err := ResolveTarget(b, "1.0.5")
	require.NoError(t, err)

	assert.True(t, got.Equal(b.Base))
}

func TestResolveDowngradeAppliesInReverse(t *testing.T) {
	b := ladder(t)

	// Baseline 1.3 state is the fully upgraded tree.
	high := Resolve(b.Base, b.BaseVersion, appver.MustParse("1.3"), b.Catalog)

	got := Resolve(high, appver.MustParse("1.3"), appver.MustParse("1.1"), b.Catalog)

	// The window excludes the baseline's own diff (1.3) and includes the
	// target's (1.1), applied descending: 1.2 then 1.1, so 1.1 lands last.
	assert.Equal(t, "v11", leaf(t, got, "panel", "tab"))
	// Forward-only delta limitation: only12 cannot be removed by downgrade.
	assert.Equal(t, "y", leaf(t, got, "panel", "only12"))
}

func TestResolveDeterminism(t *testing.T) {
	b := ladder(t)

	one, err := ResolveTarget(b, "1.3")
	require.NoError(t, err)
	two, err := ResolveTarget(b, "1.3")
	require.NoError(t, err)

	assert.True(t, one.Equal(two))
}

func TestResolveDoesNotMutateBaseline(t *testing.T) {
	b := ladder(t)
	snapshot := b.Base.Clone()

	_, err := ResolveTarget(b, "1.3")
	require.NoError(t, err)

	assert.True(t, b.Base.Equal(snapshot))
}

func TestResolveTargetInvalidVersion(t *testing.T) {
	b := ladder(t)

	_, err := ResolveTarget(b, "one.two")

	require.Error(t, err)
	assert.ErrorIs(t, err, appver.ErrInvalidFormat)
}

func TestResolveChannelSuffixOnTarget(t *testing.T) {
	b := ladder(t)

	got, err := ResolveTarget(b, "1.2.0-insider")
	require.NoError(t, err)

	assert.Equal(t, "v12", leaf(t, got, "panel", "tab"))
}
