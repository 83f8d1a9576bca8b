// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package mutf8 encodes and decodes modified UTF-8, the string encoding
// used by the Java class file format, java.io.DataInput/DataOutput, and
// serialization protocols derived from them.
//
// Modified UTF-8 differs from standard UTF-8 in two ways:
//
//   - The null code unit U+0000 is written as the two-byte overlong form
//     0xC0 0x80 instead of a single zero byte. An encoded stream therefore
//     never contains a raw 0x00, which lets a raw 0x00 act as an
//     unambiguous string terminator.
//   - Text is treated as a sequence of 16-bit UTF-16 code units, each
//     encoded independently. Surrogate pairs are not combined into a
//     four-byte sequence; each half is written as its own three-byte
//     sequence, and lead bytes of 0xF0 and above never occur.
//
// A code unit occupies one to three bytes:
//
//	unit range          bytes
//	0x0001 - 0x007F     0xxxxxxx
//	0x0000              11000000 10000000
//	0x0080 - 0x07FF     110xxxxx 10xxxxxx
//	0x0800 - 0xFFFF     1110xxxx 10xxxxxx 10xxxxxx
//
// The package operates on []uint16 code unit sequences, with string
// conversions layered on top for callers that work with Go strings.
// Encoding targets an io.ByteWriter and decoding draws from an
// io.ByteReader, so any buffer or stream that can supply or accept single
// bytes will do.
package mutf8

// Byte markers and payload masks for the encoded forms. A continuation
// byte carries 10 in its top two bits; lead bytes carry their sequence
// length in unary.
const (
	tx = 0b10000000
	t2 = 0b11000000
	t3 = 0b11100000
	t4 = 0b11110000

	maskx = 0b00111111
	mask2 = 0b00011111
	mask3 = 0b00001111
)

// Largest code unit representable in one and two bytes. Everything above
// unit2Max takes three.
const (
	unit1Max = 1<<7 - 1
	unit2Max = 1<<11 - 1
)
