// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package mutf8

import (
	"fmt"
)

// MaxEncodedLen is the largest encoded size measurable with EncodedLen.
// It matches the bound of formats that store the encoded length in an
// unsigned 16-bit prefix.
const MaxEncodedLen = 65535

// EncodedLen returns the number of bytes the modified UTF-8 encoding of
// units occupies. It fails with ErrLengthExceeded as soon as the running
// total passes MaxEncodedLen, without measuring the rest of the sequence,
// and returns no partial total. Use LongEncodedLen when the bound does
// not apply.
func EncodedLen(units []uint16) (int, error) {
	const op = "mutf8.EncodedLen"
	l := 0
	for _, c := range units {
		l += unitLen(c)
		if l > MaxEncodedLen {
			return 0, fmt.Errorf("%s: sequence encodes beyond %d bytes: %w", op, MaxEncodedLen, ErrLengthExceeded)
		}
	}
	return l, nil
}

// LongEncodedLen returns the number of bytes the modified UTF-8 encoding
// of units occupies, with no upper bound.
func LongEncodedLen(units []uint16) int64 {
	var l int64
	for _, c := range units {
		l += int64(unitLen(c))
	}
	return l
}

// unitLen returns the encoded size of a single code unit. The null unit
// takes the two-byte overlong form.
func unitLen(c uint16) int {
	switch {
	case c != 0 && c <= unit1Max:
		return 1
	case c <= unit2Max:
		return 2
	default:
		return 3
	}
}
