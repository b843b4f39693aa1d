// Copyright (c) 2026 The locctl Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package driller extracts individual selectors from a resolved locator tree
// by dot path and fills parameterized selectors with caller arguments.
package driller
