// Copyright (c) 2026 The locctl Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ computes and renders differences between resolved locator
// trees, with an interactive picker for choosing the versions to compare.
package differ
