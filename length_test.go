// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package mutf8_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/hashicorp/go-mutf8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// repeatUnits returns n copies of the code unit u.
func repeatUnits(u uint16, n int) []uint16 {
	units := make([]uint16, n)
	for i := range units {
		units[i] = u
	}
	return units
}

func TestEncodedLen(t *testing.T) {
	tests := []struct {
		name    string
		units   []uint16
		want    int
		wantErr error
	}{
		{
			name:  "empty",
			units: []uint16{},
			want:  0,
		},
		{
			name:  "nil",
			units: nil,
			want:  0,
		},
		{
			name:  "one byte units",
			units: []uint16{0x01, 0x41, 0x7f},
			want:  3,
		},
		{
			name:  "null unit takes two bytes",
			units: []uint16{0},
			want:  2,
		},
		{
			name:  "two byte units",
			units: []uint16{0x80, 0x7ff},
			want:  4,
		},
		{
			name:  "three byte units",
			units: []uint16{0x800, 0xffff},
			want:  6,
		},
		{
			name:  "surrogate halves",
			units: []uint16{0xd83d, 0xde42},
			want:  6,
		},
		{
			name:  "mixed",
			units: []uint16{0x41, 0x00, 0xe9, 0x4e16, 0xd83d, 0xde42},
			want:  14,
		},
		{
			name:  "exactly at the bound",
			units: repeatUnits(0x4e16, 21845),
			want:  65535,
		},
		{
			name:    "one unit past the bound",
			units:   repeatUnits(0x4e16, 21846),
			wantErr: errors.New("mutf8.EncodedLen: sequence encodes beyond 65535 bytes: maximum encoded length exceeded"),
		},
		{
			name:    "one byte past the bound",
			units:   append(repeatUnits(0x4e16, 21845), 0x41),
			wantErr: errors.New("mutf8.EncodedLen: sequence encodes beyond 65535 bytes: maximum encoded length exceeded"),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := mutf8.EncodedLen(tc.units)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.EqualError(t, err, tc.wantErr.Error())
				assert.ErrorIs(t, err, mutf8.ErrLengthExceeded)
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLongEncodedLen(t *testing.T) {
	tests := []struct {
		name  string
		units []uint16
		want  int64
	}{
		{
			name:  "empty",
			units: nil,
			want:  0,
		},
		{
			name:  "mixed",
			units: []uint16{0x41, 0x00, 0xe9, 0x4e16},
			want:  8,
		},
		{
			name:  "beyond the sixteen bit bound",
			units: repeatUnits(0x4e16, 100000),
			want:  300000,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, mutf8.LongEncodedLen(tc.units))
		})
	}

	t.Run("agrees with EncodedLen in bounds", func(t *testing.T) {
		units := []uint16{0x00, 0x01, 0x7f, 0x80, 0x7ff, 0x800, 0xffff, 0xd83d, 0xde42}
		bounded, err := mutf8.EncodedLen(units)
		require.NoError(t, err)
		assert.Equal(t, int64(bounded), mutf8.LongEncodedLen(units))
	})
}

func TestStringEncodedLen(t *testing.T) {
	tests := []struct {
		name    string
		s       string
		want    int
		wantErr error
	}{
		{
			name: "empty",
			s:    "",
			want: 0,
		},
		{
			name: "ascii",
			s:    "boundary",
			want: 8,
		},
		{
			name: "embedded null",
			s:    "a\x00b",
			want: 4,
		},
		{
			name: "latin accents",
			s:    "héllo",
			want: 6,
		},
		{
			name: "cjk",
			s:    "世界",
			want: 6,
		},
		{
			name: "emoji needs a surrogate pair",
			s:    "🙂",
			want: 6,
		},
		{
			name: "invalid utf8 counts as replacement runes",
			s:    "\xff\xfe",
			want: 6,
		},
		{
			name: "exactly at the bound",
			s:    strings.Repeat("世", 21845),
			want: 65535,
		},
		{
			name:    "past the bound",
			s:       strings.Repeat("世", 21846),
			wantErr: errors.New("mutf8.StringEncodedLen: string encodes beyond 65535 bytes: maximum encoded length exceeded"),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := mutf8.StringEncodedLen(tc.s)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.EqualError(t, err, tc.wantErr.Error())
				assert.ErrorIs(t, err, mutf8.ErrLengthExceeded)
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			// The direct measurement must match measuring the converted
			// unit sequence.
			viaUnits, err := mutf8.EncodedLen(mutf8.StringToUnits(tc.s))
			require.NoError(t, err)
			assert.Equal(t, viaUnits, got)
		})
	}
}

func TestLongStringEncodedLen(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want int64
	}{
		{
			name: "empty",
			s:    "",
			want: 0,
		},
		{
			name: "mixed",
			s:    "a\x00é世🙂",
			want: 14,
		},
		{
			name: "beyond the sixteen bit bound",
			s:    strings.Repeat("世", 30000),
			want: 90000,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := mutf8.LongStringEncodedLen(tc.s)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, mutf8.LongEncodedLen(mutf8.StringToUnits(tc.s)), got)
		})
	}
}
