// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package mutf8

import (
	"fmt"
	"io"
	"unicode/utf16"

	"github.com/hashicorp/go-mutf8/internal/is"
)

// surrSelf is the first code point that needs a surrogate pair in UTF-16,
// mirroring unicode/utf16.
const surrSelf = 0x10000

// StringToUnits converts s to the UTF-16 code unit sequence the codec
// operates on. Runes outside the Basic Multilingual Plane become
// surrogate pairs, two units that encode independently.
func StringToUnits(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// UnitsToString converts decoded code units to a Go string. Well-formed
// surrogate pairs combine into their rune; an unpaired surrogate half
// becomes U+FFFD. Callers that must preserve arbitrary unit sequences
// exactly should stay on the []uint16 form.
func UnitsToString(units []uint16) string {
	return string(utf16.Decode(units))
}

// EncodeString writes the modified UTF-8 encoding of s to w. It is
// equivalent to Encode(w, StringToUnits(s)).
func EncodeString(w io.ByteWriter, s string) error {
	const op = "mutf8.EncodeString"
	if is.Nil(w) {
		return fmt.Errorf("%s: missing sink: %w", op, ErrInvalidParameter)
	}
	return Encode(w, StringToUnits(s))
}

// StringEncodedLen returns the number of bytes the modified UTF-8
// encoding of s occupies, failing with ErrLengthExceeded as soon as the
// running total passes MaxEncodedLen. It agrees exactly with
// EncodedLen(StringToUnits(s)) without building the unit sequence.
func StringEncodedLen(s string) (int, error) {
	const op = "mutf8.StringEncodedLen"
	l := 0
	for _, r := range s {
		l += runeLen(r)
		if l > MaxEncodedLen {
			return 0, fmt.Errorf("%s: string encodes beyond %d bytes: %w", op, MaxEncodedLen, ErrLengthExceeded)
		}
	}
	return l, nil
}

// LongStringEncodedLen returns the number of bytes the modified UTF-8
// encoding of s occupies, with no upper bound.
func LongStringEncodedLen(s string) int64 {
	var l int64
	for _, r := range s {
		l += int64(runeLen(r))
	}
	return l
}

// runeLen returns the encoded size of the code units a rune converts to.
// A supplementary rune becomes two surrogate units of three bytes each.
func runeLen(r rune) int {
	if r >= surrSelf {
		return 6
	}
	return unitLen(uint16(r))
}

// ReadUnitsString decodes exactly n code units from r and returns them as
// a string, with ReadUnits semantics.
func ReadUnitsString(r io.ByteReader, n int) (string, error) {
	const op = "mutf8.ReadUnitsString"
	switch {
	case is.Nil(r):
		return "", fmt.Errorf("%s: missing source: %w", op, ErrInvalidParameter)
	case n < 0:
		return "", fmt.Errorf("%s: negative unit count %d: %w", op, n, ErrInvalidParameter)
	}
	units, err := ReadUnits(r, n)
	if err != nil {
		return "", err
	}
	return UnitsToString(units), nil
}

// ReadBytesString decodes code units from exactly n bytes of r and
// returns them as a string, with ReadBytes semantics.
func ReadBytesString(r io.ByteReader, n int64) (string, error) {
	const op = "mutf8.ReadBytesString"
	switch {
	case is.Nil(r):
		return "", fmt.Errorf("%s: missing source: %w", op, ErrInvalidParameter)
	case n < 0:
		return "", fmt.Errorf("%s: negative byte count %d: %w", op, n, ErrInvalidParameter)
	}
	units, err := ReadBytes(r, n)
	if err != nil {
		return "", err
	}
	return UnitsToString(units), nil
}

// ReadZString decodes code units from r up to a raw 0x00 terminator and
// returns them as a string, with ReadZ semantics.
func ReadZString(r io.ByteReader) (string, error) {
	const op = "mutf8.ReadZString"
	if is.Nil(r) {
		return "", fmt.Errorf("%s: missing source: %w", op, ErrInvalidParameter)
	}
	units, err := ReadZ(r)
	if err != nil {
		return "", err
	}
	return UnitsToString(units), nil
}
