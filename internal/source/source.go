// Copyright (c) 2026 The locctl Authors.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/locctl/locctl/internal/log"
	"github.com/locctl/locctl/internal/source/s3"
)

// Source supplies the raw documents of a locator bundle: one baseline plus
// zero or more per-version diffs. Implementations must be safe for use by a
// single catalog load; they are not required to be concurrency-safe.
type Source interface {
	Baseline() ([]byte, error)
	Diffs() (map[string][]byte, error)
	String() string
}

// New resolves a source spec to a Source. A spec can be -
//
//	empty        - the built-in bundle compiled into the binary.
//	s3://b/p     - an S3 bucket/prefix holding baseline.yaml and diffs/.
//	dir          - a local bundle directory (absolute or relative).
func New(ctx context.Context, spec string) (Source, error) {
	switch {
	case spec == "" || spec == "builtin":
		return Builtin(), nil

	case strings.HasPrefix(spec, "s3://"):
		bucket, prefix, err := parseS3Spec(spec)
		if err != nil {
			return nil, err
		}
		return s3.New(ctx, bucket, prefix)

	default:
		dir, err := parseDirSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("failed to parse source (%s): %w", spec, err)
		}
		log.Debugf("local source: dir=%s", dir)
		return NewFS(os.DirFS(dir), dir), nil
	}
}

// parseS3Spec splits s3://bucket/prefix into its parts. The prefix may be
// empty (bundle at the bucket root).
func parseS3Spec(spec string) (string, string, error) {
	rest := strings.TrimPrefix(spec, "s3://")
	bucket, prefix, _ := strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", fmt.Errorf("invalid s3 source %q: missing bucket", spec)
	}
	return bucket, strings.TrimSuffix(prefix, "/"), nil
}

// parseDirSpec validates a local bundle directory spec and returns its
// absolute path. The fs entry must exist and be a directory.
func parseDirSpec(spec string) (string, error) {
	if spec == "" {
		return "", os.ErrInvalid
	}

	dir := spec
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(cwd, dir)
	}

	if r, err := os.Stat(dir); err != nil {
		return "", err
	} else if !r.IsDir() {
		return "", os.ErrInvalid
	}

	return dir, nil
}
