// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package bytetest provides in-memory byte sinks and sources for
// exercising codec success and failure paths in tests. A Sink can refuse
// writes past a limit and a Source can fail mid-stream, both with a
// caller-chosen error, so tests can check how errors travel through the
// codec.
package bytetest

import (
	"errors"
	"io"
)

var (
	_ io.ByteWriter = (*Sink)(nil)
	_ io.ByteReader = (*Source)(nil)
)

// ErrLimitReached is the default error for a Sink that has used up its
// write limit.
var ErrLimitReached = errors.New("write limit reached")

// ErrSourceFault is the default error for a Source that has reached its
// fault position.
var ErrSourceFault = errors.New("source fault")

// Sink is an in-memory io.ByteWriter that can be set up to fail after a
// fixed number of accepted writes.
type Sink struct {
	buf   []byte
	limit int
	err   error
}

// NewSink creates a Sink that accepts every write.
func NewSink() *Sink {
	return &Sink{limit: -1}
}

// NewLimitedSink creates a Sink that accepts limit writes and fails every
// later write with err. A nil err means ErrLimitReached.
func NewLimitedSink(limit int, err error) *Sink {
	if err == nil {
		err = ErrLimitReached
	}
	return &Sink{limit: limit, err: err}
}

// WriteByte implements io.ByteWriter.
func (s *Sink) WriteByte(b byte) error {
	if s.limit >= 0 && len(s.buf) >= s.limit {
		return s.err
	}
	s.buf = append(s.buf, b)
	return nil
}

// Bytes returns the bytes accepted so far.
func (s *Sink) Bytes() []byte {
	return s.buf
}

// Len returns the number of bytes accepted so far.
func (s *Sink) Len() int {
	return len(s.buf)
}

// Source is an io.ByteReader over a fixed byte sequence. It returns
// io.EOF once the sequence is exhausted, or fails early at a chosen
// position with an injected error.
type Source struct {
	data  []byte
	pos   int
	fault int
	err   error
}

// NewSource creates a Source that yields data followed by io.EOF.
func NewSource(data []byte) *Source {
	return &Source{data: data, fault: -1}
}

// NewFaultySource creates a Source that yields the first after bytes of
// data and then fails every read with err. A nil err means
// ErrSourceFault.
func NewFaultySource(data []byte, after int, err error) *Source {
	if err == nil {
		err = ErrSourceFault
	}
	return &Source{data: data, fault: after, err: err}
}

// ReadByte implements io.ByteReader.
func (s *Source) ReadByte() (byte, error) {
	if s.fault >= 0 && s.pos >= s.fault {
		return 0, s.err
	}
	if s.pos >= len(s.data) {
		return 0, io.EOF
	}
	b := s.data[s.pos]
	s.pos++
	return b, nil
}

// Offset returns the number of bytes read so far.
func (s *Source) Offset() int {
	return s.pos
}

// Remaining returns the number of unread bytes.
func (s *Source) Remaining() int {
	return len(s.data) - s.pos
}
