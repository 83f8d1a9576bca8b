// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package mutf8

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-mutf8/internal/is"
)

// Encode writes the modified UTF-8 encoding of units to w, one code unit
// at a time. Surrogate halves are encoded independently like any other
// unit, and the null unit is written in its two-byte overlong form.
//
// Encode imposes no length bound; callers holding a 16-bit length prefix
// should measure with EncodedLen first. A sink error is returned to the
// caller unchanged, and any bytes accepted before the failure remain in
// the sink.
func Encode(w io.ByteWriter, units []uint16) error {
	const op = "mutf8.Encode"
	if is.Nil(w) {
		return fmt.Errorf("%s: missing sink: %w", op, ErrInvalidParameter)
	}
	for _, c := range units {
		if err := writeUnit(w, c); err != nil {
			return err
		}
	}
	return nil
}

// writeUnit emits the one to three byte encoding of a single code unit.
func writeUnit(w io.ByteWriter, c uint16) error {
	switch {
	case c != 0 && c <= unit1Max:
		return w.WriteByte(byte(c))
	case c <= unit2Max:
		if err := w.WriteByte(t2 | byte(c>>6)&mask2); err != nil {
			return err
		}
		return w.WriteByte(tx | byte(c)&maskx)
	default:
		if err := w.WriteByte(t3 | byte(c>>12)&mask3); err != nil {
			return err
		}
		if err := w.WriteByte(tx | byte(c>>6)&maskx); err != nil {
			return err
		}
		return w.WriteByte(tx | byte(c)&maskx)
	}
}
