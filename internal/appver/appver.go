// Copyright (c) 2026 The locctl Authors.
// SPDX-License-Identifier: Apache-2.0

package appver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned when a version string cannot be parsed into
// comparable numeric segments.
var ErrInvalidFormat = errors.New("invalid version format")

// Version is an immutable application version: dotted numeric segments plus
// an optional channel marker ("1.70.0-insider" has channel "insider"). The
// channel identifies a release train and carries no ordering weight.
type Version struct {
	segments []int
	channel  string
	raw      string
}

// Parse parses a dotted numeric version string with an optional "-channel"
// suffix. Missing trailing segments are treated as zero by Compare, so
// "1.70" and "1.70.0" order as equal.
func Parse(s string) (Version, error) {
	raw := s

	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Version{}, fmt.Errorf("%w: empty version", ErrInvalidFormat)
	}

	// Split off the channel marker before looking at the numbers. Only the
	// first dash matters; the rest of the suffix is part of the channel name.
	var channel string
	if idx := strings.IndexByte(trimmed, '-'); idx != -1 {
		channel = trimmed[idx+1:]
		trimmed = trimmed[:idx]
		if trimmed == "" || channel == "" {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
		}
	}

	parts := strings.Split(trimmed, ".")
	segments := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("%w: %q has non-numeric segment %q", ErrInvalidFormat, raw, part)
		}
		segments = append(segments, n)
	}

	return Version{segments: segments, channel: channel, raw: raw}, nil
}

// MustParse is Parse for hard-coded versions. It panics on error.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Compare returns -1, 0 or 1 as v orders before, equal to or after o.
// Segments compare left to right; the shorter version is padded with zeros.
// Channels are ignored.
func (v Version) Compare(o Version) int {
	n := len(v.segments)
	if len(o.segments) > n {
		n = len(o.segments)
	}

	for i := 0; i < n; i++ {
		a, b := 0, 0
		if i < len(v.segments) {
			a = v.segments[i]
		}
		if i < len(o.segments) {
			b = o.segments[i]
		}

		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
	}

	return 0
}

// Equal reports whether the two versions order equally. "1.70.0-insider"
// equals "1.70.0".
func (v Version) Equal(o Version) bool { return v.Compare(o) == 0 }

// Less reports whether v orders strictly before o.
func (v Version) Less(o Version) bool { return v.Compare(o) < 0 }

// Channel returns the release channel marker, or "" for the stable train.
func (v Version) Channel() string { return v.channel }

// String returns the original input string.
func (v Version) String() string { return v.raw }

// Key returns the normalized dotted numeric form without the channel. Two
// versions that order equally share a Key, which makes it suitable as a map
// key for catalog lookups.
func (v Version) Key() string {
	parts := make([]string, len(v.segments))
	for i, seg := range v.segments {
		parts[i] = strconv.Itoa(seg)
	}
	// Normalize away implicit zero segments so "1.70" and "1.70.0" collide.
	for len(parts) > 1 && parts[len(parts)-1] == "0" {
		parts = parts[:len(parts)-1]
	}
	return strings.Join(parts, ".")
}
