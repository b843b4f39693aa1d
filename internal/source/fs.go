// Copyright (c) 2026 The locctl Authors.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
)

//go:embed assets
var assetsFS embed.FS

// FSSource reads a bundle laid out as baseline.yaml plus diffs/*.yaml from
// any fs.FS. It serves both local bundle directories and the built-in bundle.
type FSSource struct {
	fsys fs.FS
	name string
}

// NewFS wraps an fs.FS as a Source. name is used in diagnostics only.
func NewFS(fsys fs.FS, name string) *FSSource {
	return &FSSource{fsys: fsys, name: name}
}

// Builtin returns the bundle compiled into the binary. It tracks the
// application versions the project's UI tests are pinned against.
func Builtin() *FSSource {
	sub, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		// The assets tree is embedded at build time; this cannot fail at
		// runtime with a well-formed binary.
		panic(err)
	}
	return NewFS(sub, "builtin")
}

// Baseline returns baseline.yaml (or baseline.yml).
func (s *FSSource) Baseline() ([]byte, error) {
	for _, name := range []string{"baseline.yaml", "baseline.yml"} {
		data, err := fs.ReadFile(s.fsys, name)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("no baseline.yaml in %s: %w", s.name, fs.ErrNotExist)
}

// Diffs returns every YAML document under diffs/, keyed by file name. A
// missing diffs directory is an empty catalog, not an error.
func (s *FSSource) Diffs() (map[string][]byte, error) {
	entries, err := fs.ReadDir(s.fsys, "diffs")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string][]byte{}, nil
		}
		return nil, err
	}

	docs := make(map[string][]byte, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := path.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		data, err := fs.ReadFile(s.fsys, path.Join("diffs", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read diff %s: %w", entry.Name(), err)
		}
		docs[entry.Name()] = data
	}
	return docs, nil
}

func (s *FSSource) String() string { return s.name }
