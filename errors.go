// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package mutf8

import (
	"errors"
)

// ErrEndOfStream indicates the byte source was exhausted where more bytes
// were required: in the middle of a multi-byte sequence, or before a
// requested count was satisfied.
var ErrEndOfStream = errors.New("unexpected end of stream")

// ErrInvalidByte indicates a byte that violates the structural rules for
// its position: a bad lead byte or a bad continuation byte.
var ErrInvalidByte = errors.New("invalid byte")

// ErrMalformedSequence indicates a multi-byte sequence cut short by an
// explicit byte-count budget before its continuation bytes could be read.
// The source itself may hold more bytes; it is the declared length that is
// insufficient.
var ErrMalformedSequence = errors.New("malformed sequence")

// ErrLengthExceeded indicates a sequence whose encoded form is larger than
// MaxEncodedLen.
var ErrLengthExceeded = errors.New("maximum encoded length exceeded")

// ErrInvalidParameter represents an invalid parameter error
var ErrInvalidParameter = errors.New("invalid parameter")
