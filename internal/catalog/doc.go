// Copyright (c) 2026 The locctl Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package catalog loads locator bundles: one baseline document plus the set
// of per-version diff documents layered onto it at resolution time. Malformed
// diff entries are skipped with warnings so a single bad document never
// blocks resolution with the remaining valid entries.
package catalog
