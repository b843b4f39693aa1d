// Copyright (c) 2026 The locctl Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locctl/locctl/internal/catalog"
)

func TestBuiltinBundleLoads(t *testing.T) {
	b, err := catalog.Load(Builtin())
	require.NoError(t, err)

	assert.Empty(t, b.Warnings)
	assert.Equal(t, "1.70.0", b.BaseVersion.String())
	assert.Equal(t, 3, b.Catalog.Len())
	assert.Positive(t, b.Base.Leaves())
}

func TestFSSourceDiffs(t *testing.T) {
	fsys := fstest.MapFS{
		"baseline.yaml":      {Data: []byte("version: 1.0.0\nlocators: {a: {b: c}}")},
		"diffs/1.1.0.yaml":   {Data: []byte("version: 1.1.0\nlocators: {a: {b: d}}")},
		"diffs/1.2.0.yml":    {Data: []byte("version: 1.2.0\nlocators: {a: {b: e}}")},
		"diffs/notes.txt":    {Data: []byte("not a diff")},
		"diffs/nested/x.yml": {Data: []byte("ignored")},
	}
	src := NewFS(fsys, "test")

	docs, err := src.Diffs()
	require.NoError(t, err)

	assert.Len(t, docs, 2)
	assert.Contains(t, docs, "1.1.0.yaml")
	assert.Contains(t, docs, "1.2.0.yml")
}

func TestFSSourceNoDiffsDir(t *testing.T) {
	fsys := fstest.MapFS{
		"baseline.yaml": {Data: []byte("version: 1.0.0\nlocators: {a: {b: c}}")},
	}

	docs, err := NewFS(fsys, "test").Diffs()
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestFSSourceMissingBaseline(t *testing.T) {
	_, err := NewFS(fstest.MapFS{}, "test").Baseline()
	assert.Error(t, err)
}

func TestNewLocalDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "baseline.yaml"),
		[]byte("version: 1.0.0\nlocators: {a: {b: c}}"), 0o600))

	src, err := New(context.Background(), dir)
	require.NoError(t, err)

	data, err := src.Baseline()
	require.NoError(t, err)
	assert.Contains(t, string(data), "locators")
}

func TestNewRejectsMissingDirectory(t *testing.T) {
	_, err := New(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestNewRejectsFileSpec(t *testing.T) {
	file := filepath.Join(t.TempDir(), "f.yaml")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	_, err := New(context.Background(), file)
	assert.Error(t, err)
}

func TestParseS3Spec(t *testing.T) {
	bucket, prefix, err := parseS3Spec("s3://bundles/teams/sdk/")
	require.NoError(t, err)
	assert.Equal(t, "bundles", bucket)
	assert.Equal(t, "teams/sdk", prefix)

	bucket, prefix, err = parseS3Spec("s3://bundles")
	require.NoError(t, err)
	assert.Equal(t, "bundles", bucket)
	assert.Equal(t, "", prefix)

	_, _, err = parseS3Spec("s3://")
	assert.Error(t, err)
}
