// Copyright (c) 2026 The locctl Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the locctl subcommands. Each command is assembled
// by a builder that wires shared metadata and the global output flags, and an
// action that loads the bundle, does its work, and hands rows to the output
// pipeline.
package command
