// Copyright (c) 2026 The locctl Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters implements --filter expression parsing and row filtering
// for command output.
package filters
