// Copyright (c) 2026 The locctl Authors.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/locctl/locctl/internal/appver"
	"github.com/locctl/locctl/internal/locator"
	"github.com/locctl/locctl/internal/log"
)

// Source supplies the raw documents of a locator bundle. Implementations live
// in internal/source; the catalog only needs the bytes.
type Source interface {
	// Baseline returns the canonical baseline document.
	Baseline() ([]byte, error)
	// Diffs returns all per-version diff documents keyed by entry name
	// (file name, object key, ...). The name is only used in diagnostics.
	Diffs() (map[string][]byte, error)
	String() string
}

// Entry is one per-version override set.
type Entry struct {
	Version appver.Version
	Diff    locator.Tree
	// Name identifies the backing document the entry came from.
	Name string
}

// Warning records a diff document that was skipped during load. Warnings are
// diagnostics, never fatal: the rest of the catalog stays usable.
type Warning struct {
	Name string
	Err  error
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %v", w.Name, w.Err)
}

// Catalog is the set of known per-version diffs, sorted ascending by version.
// It is immutable after Load; concurrent readers need no locking.
type Catalog struct {
	entries []Entry
	byKey   map[string]int
}

// Entries returns the entries in ascending version order. The slice is a
// copy; the trees it references are shared and must be treated as read-only.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Versions lists the versions with an explicit override set, ascending.
func (c *Catalog) Versions() []appver.Version {
	out := make([]appver.Version, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Version
	}
	return out
}

// Get returns the entry whose version orders equal to v.
func (c *Catalog) Get(v appver.Version) (Entry, bool) {
	i, ok := c.byKey[v.Key()]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Bundle is a loaded locator bundle: the baseline tree, its version, the diff
// catalog, and any load warnings.
type Bundle struct {
	BaseVersion appver.Version
	Base        locator.Tree
	Catalog     *Catalog
	Warnings    []Warning
	Source      string
}

// document is the on-disk shape of both the baseline and each diff.
type document struct {
	Version  string         `yaml:"version"`
	Locators map[string]any `yaml:"locators"`
}

// Load builds a Bundle from a source. A baseline that fails to parse is
// fatal; a diff that fails to parse is skipped with a Warning.
func Load(src Source) (*Bundle, error) {
	raw, err := src.Baseline()
	if err != nil {
		return nil, fmt.Errorf("failed to read baseline from %s: %w", src, err)
	}

	baseVersion, baseTree, err := parseDocument(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse baseline from %s: %w", src, err)
	}

	docs, err := src.Diffs()
	if err != nil {
		return nil, fmt.Errorf("failed to list diffs from %s: %w", src, err)
	}

	// Walk the documents in name order so duplicate handling and warning
	// order don't depend on map iteration.
	names := make([]string, 0, len(docs))
	for name := range docs {
		names = append(names, name)
	}
	sort.Strings(names)

	cat := &Catalog{byKey: make(map[string]int, len(docs))}
	var warnings []Warning
	for _, name := range names {
		v, tree, err := parseDocument(docs[name])
		if err != nil {
			log.Warnf("skipping diff %s: %v", name, err)
			warnings = append(warnings, Warning{Name: name, Err: err})
			continue
		}

		if prev, ok := cat.byKey[v.Key()]; ok {
			warnings = append(warnings, Warning{
				Name: name,
				Err:  fmt.Errorf("duplicate diff for version %s (already defined by %s)", v, cat.entries[prev].Name),
			})
			continue
		}

		cat.byKey[v.Key()] = len(cat.entries)
		cat.entries = append(cat.entries, Entry{Version: v, Diff: tree, Name: name})
	}

	sort.SliceStable(cat.entries, func(i, j int) bool {
		return cat.entries[i].Version.Less(cat.entries[j].Version)
	})
	for i, e := range cat.entries {
		cat.byKey[e.Version.Key()] = i
	}

	log.Debugf("catalog loaded: source=%s, entries=%d, warnings=%d", src, cat.Len(), len(warnings))

	return &Bundle{
		BaseVersion: baseVersion,
		Base:        baseTree,
		Catalog:     cat,
		Warnings:    warnings,
		Source:      src.String(),
	}, nil
}

func parseDocument(raw []byte) (appver.Version, locator.Tree, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return appver.Version{}, nil, fmt.Errorf("invalid document: %w", err)
	}

	v, err := appver.Parse(doc.Version)
	if err != nil {
		return appver.Version{}, nil, err
	}

	if doc.Locators == nil {
		return appver.Version{}, nil, fmt.Errorf("document for %s has no locators key", doc.Version)
	}

	return v, locator.FromRaw(doc.Locators), nil
}
