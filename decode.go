// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package mutf8

import (
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-mutf8/internal/is"
)

// ReadUnits decodes exactly n code units from r. Every unit must be
// complete; a source that ends early fails with ErrEndOfStream. A raw
// 0x00 byte counts as one unit and decodes to the null unit, so inputs
// that use the terminator convention and inputs that use the overlong
// form both come back as n units.
//
// The number of bytes consumed depends on the data. When the source
// carries a byte-length prefix instead of a unit count, use ReadBytes.
func ReadUnits(r io.ByteReader, n int) ([]uint16, error) {
	const op = "mutf8.ReadUnits"
	switch {
	case is.Nil(r):
		return nil, fmt.Errorf("%s: missing source: %w", op, ErrInvalidParameter)
	case n < 0:
		return nil, fmt.Errorf("%s: negative unit count %d: %w", op, n, ErrInvalidParameter)
	}
	units := make([]uint16, n)
	for i := range units {
		// A terminator byte comes back as a zero unit with the flag
		// set; dropping the flag leaves the null unit, which is the
		// substitution this form wants.
		u, _, err := readUnit(r)
		if err != nil {
			return nil, err
		}
		units[i] = u
	}
	return units, nil
}

// ReadBytes decodes code units from exactly n bytes of r. In this form a
// raw 0x00 byte is ordinary data for the null unit, not a terminator. A
// multi-byte sequence that would run past the n-byte budget fails with
// ErrMalformedSequence even if the source holds further bytes; a source
// that dries up inside the budget fails with ErrEndOfStream.
//
// On success exactly n bytes have been consumed.
func ReadBytes(r io.ByteReader, n int64) ([]uint16, error) {
	const op = "mutf8.ReadBytes"
	switch {
	case is.Nil(r):
		return nil, fmt.Errorf("%s: missing source: %w", op, ErrInvalidParameter)
	case n < 0:
		return nil, fmt.Errorf("%s: negative byte count %d: %w", op, n, ErrInvalidParameter)
	}
	units := make([]uint16, 0)
	for i := int64(0); i < n; i++ {
		a, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%s: %w", op, ErrEndOfStream)
			}
			return nil, err
		}
		switch {
		case a < tx:
			units = append(units, uint16(a))
		case a < t2:
			return nil, fmt.Errorf("%s: invalid lead byte 0x%02x: %w", op, a, ErrInvalidByte)
		case a < t3:
			i++
			if i >= n {
				return nil, fmt.Errorf("%s: declared length %d truncates a two-byte sequence: %w", op, n, ErrMalformedSequence)
			}
			b, err := readContinuation(r)
			if err != nil {
				return nil, err
			}
			units = append(units, uint16(a&mask2)<<6|uint16(b&maskx))
		case a < t4:
			i++
			if i >= n {
				return nil, fmt.Errorf("%s: declared length %d truncates a three-byte sequence: %w", op, n, ErrMalformedSequence)
			}
			b, err := readContinuation(r)
			if err != nil {
				return nil, err
			}
			i++
			if i >= n {
				return nil, fmt.Errorf("%s: declared length %d truncates a three-byte sequence: %w", op, n, ErrMalformedSequence)
			}
			c, err := readContinuation(r)
			if err != nil {
				return nil, err
			}
			units = append(units, uint16(a&mask3)<<12|uint16(b&maskx)<<6|uint16(c&maskx))
		default:
			return nil, fmt.Errorf("%s: invalid lead byte 0x%02x: %w", op, a, ErrInvalidByte)
		}
	}
	return units, nil
}

// ReadZ decodes code units from r until a raw 0x00 terminator byte. The
// terminator is consumed but not included in the result, and nothing past
// it is read. A source that ends cleanly between units yields everything
// decoded so far without an error; only an end inside a multi-byte
// sequence fails with ErrEndOfStream.
func ReadZ(r io.ByteReader) ([]uint16, error) {
	const op = "mutf8.ReadZ"
	if is.Nil(r) {
		return nil, fmt.Errorf("%s: missing source: %w", op, ErrInvalidParameter)
	}
	units := make([]uint16, 0)
	for {
		a, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// The stream ended cleanly between units. Everything
				// decoded so far stands.
				return units, nil
			}
			return nil, err
		}
		if a == 0 {
			return units, nil
		}
		u, err := decodeUnit(a, r)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}
}

// readUnit decodes one code unit from r. A raw 0x00 byte is the string
// terminator in this encoding and is reported through the second return
// value instead of as data.
func readUnit(r io.ByteReader) (uint16, bool, error) {
	const op = "mutf8.readUnit"
	a, err := r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, false, fmt.Errorf("%s: %w", op, ErrEndOfStream)
		}
		return 0, false, err
	}
	if a == 0 {
		return 0, true, nil
	}
	u, err := decodeUnit(a, r)
	return u, false, err
}

// decodeUnit decodes the code unit whose lead byte a has already been
// read. The caller has already dealt with a zero lead byte.
func decodeUnit(a byte, r io.ByteReader) (uint16, error) {
	const op = "mutf8.decodeUnit"
	switch {
	case a < tx:
		return uint16(a), nil
	case a < t2:
		return 0, fmt.Errorf("%s: invalid lead byte 0x%02x: %w", op, a, ErrInvalidByte)
	case a < t3:
		b, err := readContinuation(r)
		if err != nil {
			return 0, err
		}
		return uint16(a&mask2)<<6 | uint16(b&maskx), nil
	case a < t4:
		b, err := readContinuation(r)
		if err != nil {
			return 0, err
		}
		c, err := readContinuation(r)
		if err != nil {
			return 0, err
		}
		return uint16(a&mask3)<<12 | uint16(b&maskx)<<6 | uint16(c&maskx), nil
	default:
		return 0, fmt.Errorf("%s: invalid lead byte 0x%02x: %w", op, a, ErrInvalidByte)
	}
}

// readContinuation reads one continuation byte, which must carry 10 in
// its top two bits.
func readContinuation(r io.ByteReader) (byte, error) {
	const op = "mutf8.readContinuation"
	b, err := r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("%s: %w", op, ErrEndOfStream)
		}
		return 0, err
	}
	if b&t2 != tx {
		return 0, fmt.Errorf("%s: invalid continuation byte 0x%02x: %w", op, b, ErrInvalidByte)
	}
	return b, nil
}
