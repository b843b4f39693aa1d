// Copyright (c) 2026 The locctl Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders command result sets. Every command funnels its rows
// through SliceDiceSpit, which filters, transforms, sorts and then emits
// text, json or yaml per the global output flags.
package output
