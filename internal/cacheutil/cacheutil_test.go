// Copyright (c) 2026 The locctl Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package cacheutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirPrecedence(t *testing.T) {
	t.Setenv("LOCCTL_CACHE_DIR", "/tmp/locctl-cache-test")

	dir, ok := Dir()
	require.True(t, ok)
	assert.Equal(t, "/tmp/locctl-cache-test", dir)
}

func TestEnabled(t *testing.T) {
	t.Setenv("LOCCTL_CACHE", "")
	assert.True(t, Enabled())

	t.Setenv("LOCCTL_CACHE", "0")
	assert.False(t, Enabled())

	t.Setenv("LOCCTL_CACHE", "false")
	assert.False(t, Enabled())

	t.Setenv("LOCCTL_CACHE", "1")
	assert.True(t, Enabled())
}

func TestWriteReadRoundTrip(t *testing.T) {
	t.Setenv("LOCCTL_CACHE_DIR", t.TempDir())
	t.Setenv("LOCCTL_CACHE", "1")

	key := "s3://bundles/locators/diffs/1.72.0.yaml"
	data := []byte("version: 1.72.0\nlocators: {a: {b: c}}")

	require.NoError(t, Write([]string{"s3", "bundles"}, key, data))

	entry, ok := Read([]string{"s3", "bundles"}, key)
	require.True(t, ok)
	assert.Equal(t, key, entry.Key)
	assert.Equal(t, data, entry.Data)
	assert.Len(t, entry.EncodedKey, 64)
}

func TestReadMiss(t *testing.T) {
	t.Setenv("LOCCTL_CACHE_DIR", t.TempDir())
	t.Setenv("LOCCTL_CACHE", "1")

	_, ok := Read([]string{"s3"}, "never-written")
	assert.False(t, ok)
}

func TestReadDisabled(t *testing.T) {
	t.Setenv("LOCCTL_CACHE_DIR", t.TempDir())
	t.Setenv("LOCCTL_CACHE", "0")

	require.NoError(t, Write(nil, "k", []byte("v")))
	_, ok := Read(nil, "k")
	assert.False(t, ok)
}

func TestPurge(t *testing.T) {
	base := t.TempDir()
	t.Setenv("LOCCTL_CACHE_DIR", base)
	t.Setenv("LOCCTL_CACHE", "1")

	require.NoError(t, Write(nil, "old", []byte("old")))
	require.NoError(t, Write(nil, "new", []byte("new")))

	// Age the "old" entry past the cutoff.
	oldPath, ok := EntryPath(nil, "old")
	require.True(t, ok)
	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(oldPath, past, past))

	require.NoError(t, Purge(24))

	_, ok = Read(nil, "old")
	assert.False(t, ok)
	_, ok = Read(nil, "new")
	assert.True(t, ok)
}

func TestPurgeDisabled(t *testing.T) {
	base := t.TempDir()
	t.Setenv("LOCCTL_CACHE_DIR", base)

	require.NoError(t, Write(nil, "keep", []byte("keep")))
	require.NoError(t, Purge(0))

	entries, err := os.ReadDir(base)
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
}

func TestEnsureBaseDir(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "cache")
	t.Setenv("LOCCTL_CACHE_DIR", base)
	t.Setenv("LOCCTL_CACHE", "1")

	got, ok, err := EnsureBaseDir()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, base, got)
	assert.DirExists(t, base)
}
