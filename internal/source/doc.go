// Copyright (c) 2026 The locctl Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package source provides the backing stores a locator bundle can be loaded
// from: the built-in bundle embedded in the binary, a local directory, or an
// S3 bucket. Each source hands raw documents to the catalog; none of them
// interpret bundle content.
package source
