// Copyright (c) 2026 The locctl Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package appver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		channel string
		wantErr bool
	}{
		{name: "plain", input: "1.70.0"},
		{name: "two segments", input: "1.70"},
		{name: "single segment", input: "2"},
		{name: "insider channel", input: "1.70.0-insider", channel: "insider"},
		{name: "multi dash channel", input: "1.70.0-insider-nightly", channel: "insider-nightly"},
		{name: "whitespace tolerated", input: " 1.70.2 "},
		{name: "empty", input: "", wantErr: true},
		{name: "non numeric segment", input: "1.70.x", wantErr: true},
		{name: "empty segment", input: "1..0", wantErr: true},
		{name: "bare channel", input: "-insider", wantErr: true},
		{name: "trailing dash", input: "1.70.0-", wantErr: true},
		{name: "not a version", input: "latest", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.channel, v.Channel())
			assert.Equal(t, tt.input, v.String())
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "equal", a: "1.70.0", b: "1.70.0", want: 0},
		{name: "patch greater", a: "1.70.1", b: "1.70.0", want: 1},
		{name: "minor less", a: "1.69.3", b: "1.70.0", want: -1},
		{name: "major wins over minor", a: "2.0.0", b: "1.99.9", want: 1},
		{name: "implicit zero segments", a: "1.70", b: "1.70.0", want: 0},
		{name: "shorter less", a: "1.70", b: "1.70.1", want: -1},
		{name: "channel ignored", a: "1.70.0-insider", b: "1.70.0", want: 0},
		{name: "channel ignored both sides", a: "1.71.0-insider", b: "1.70.0-exploration", want: 1},
		{name: "double digit segments numeric", a: "1.9.0", b: "1.10.0", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := MustParse(tt.a)
			b := MustParse(tt.b)
			assert.Equal(t, tt.want, a.Compare(b))
			assert.Equal(t, -tt.want, b.Compare(a))
		})
	}
}

func TestKey(t *testing.T) {
	assert.Equal(t, MustParse("1.70.0").Key(), MustParse("1.70").Key())
	assert.Equal(t, MustParse("1.70.0").Key(), MustParse("1.70.0-insider").Key())
	assert.NotEqual(t, MustParse("1.70.0").Key(), MustParse("1.70.1").Key())
	assert.Equal(t, "0", MustParse("0.0.0").Key())
}

func TestEqualAndLess(t *testing.T) {
	assert.True(t, MustParse("1.70.0-insider").Equal(MustParse("1.70")))
	assert.True(t, MustParse("1.69.0").Less(MustParse("1.70.0")))
	assert.False(t, MustParse("1.70.0").Less(MustParse("1.70.0")))
}
