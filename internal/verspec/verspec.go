// Copyright (c) 2026 The locctl Authors.
// SPDX-License-Identifier: Apache-2.0

package verspec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/locctl/locctl/internal/appver"
	"github.com/locctl/locctl/internal/catalog"
)

// Resolve takes a catalog plus version specs and returns the version each
// spec selects. A spec can be in any of the formats shown below.
//
//	empty     - the newest cataloged version.
//	latest    - ditto.
//	latest~N  - the Nth version before the newest.
//	prefix    - the newest cataloged version whose string starts with prefix.
//	version   - that exact version, when no cataloged version matches.
func Resolve(cat *catalog.Catalog, specs ...string) ([]appver.Version, error) {
	// Short circuit if no spec was provided and return the most recent.
	if len(specs) == 0 {
		specs = []string{"latest"}
	}

	result := make([]appver.Version, 0, len(specs))
	for _, spec := range specs {
		v, err := resolveSpec(spec, cat)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}

	return result, nil
}

// resolveSpec takes a single spec string and returns the matching version.
func resolveSpec(spec string, cat *catalog.Catalog) (appver.Version, error) {
	spec = strings.TrimSpace(spec)

	switch {
	case spec == "" || strings.EqualFold(spec, "latest"):
		return resolveLatestSpec("latest~0", cat)

	case strings.HasPrefix(strings.ToLower(spec), "latest~"):
		return resolveLatestSpec(spec, cat)

	default:
		// Prefer a cataloged version the spec is a prefix of, so "1.72"
		// selects 1.72.1 rather than a bare 1.72. Fall back to an exact
		// parse; the resolver degrades gracefully for versions without a
		// cataloged diff.
		if v, err := resolvePrefixSpec(spec, cat); err == nil {
			return v, nil
		}
		return appver.Parse(spec)
	}
}

// resolveLatestSpec handles latest~N format specs. The versions are indexed
// most recent first, so latest~0 is the newest cataloged version.
func resolveLatestSpec(spec string, cat *catalog.Catalog) (appver.Version, error) {
	parts := strings.Split(spec, "~")
	if len(parts) != 2 {
		return appver.Version{}, fmt.Errorf("invalid latest spec format: %s", spec)
	}

	index, err := strconv.Atoi(parts[1])
	if err != nil {
		return appver.Version{}, fmt.Errorf("invalid latest index: %s", parts[1])
	}

	versions := cat.Versions()
	if index < 0 || index > len(versions)-1 {
		return appver.Version{}, fmt.Errorf("index %d out of range for catalog of %d versions", index, len(versions))
	}

	// Versions() is ascending; count back from the end.
	return versions[len(versions)-1-index], nil
}

// resolvePrefixSpec finds the newest cataloged version whose string starts
// with the spec.
func resolvePrefixSpec(spec string, cat *catalog.Catalog) (appver.Version, error) {
	versions := cat.Versions()
	for i := len(versions) - 1; i >= 0; i-- {
		if strings.HasPrefix(versions[i].String(), spec) {
			return versions[i], nil
		}
	}

	return appver.Version{}, fmt.Errorf("failed to find cataloged version matching: %s", spec)
}
