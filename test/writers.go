// This file is part of Gotic.
//
// Gotic is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gotic is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gotic.  If not, see <https://www.gnu.org/licenses/>.

package test

import (
	"fmt"
	"strings"
)

// CompareWriter accumulates everything written to it.
type CompareWriter struct {
	buffer []byte
}

func (w *CompareWriter) Write(p []byte) (n int, err error) {
	w.buffer = append(w.buffer, p...)
	return len(p), nil
}

// Clear the accumulated output.
func (w *CompareWriter) Clear() {
	w.buffer = w.buffer[:0]
}

// Compare accumulated output with a string.
func (w *CompareWriter) Compare(s string) bool {
	return s == string(w.buffer)
}

func (w *CompareWriter) String() string {
	return string(w.buffer)
}

// CappedWriter accepts bytes until it is full and then silently discards
// anything more.
type CappedWriter struct {
	buffer []byte
	size   int
}

// NewCappedWriter is the preferred method of initialisation for the
// CappedWriter type.
func NewCappedWriter(size int) (*CappedWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("test: invalid size for CappedWriter (%d)", size)
	}
	return &CappedWriter{
		size:   size,
		buffer: make([]byte, 0, size),
	}, nil
}

func (w *CappedWriter) Write(p []byte) (n int, err error) {
	remaining := w.size - len(w.buffer)
	if len(p) > remaining {
		p = p[:remaining]
	}
	w.buffer = append(w.buffer, p...)
	return len(p), nil
}

// Reset empties the writer.
func (w *CappedWriter) Reset() {
	w.buffer = w.buffer[:0]
}

func (w *CappedWriter) String() string {
	return string(w.buffer)
}

// RingWriter keeps only the most recent bytes written to it.
type RingWriter struct {
	buffer  []byte
	cursor  int
	wrapped bool
}

// NewRingWriter is the preferred method of initialisation for the RingWriter
// type.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("test: invalid size for RingWriter (%d)", size)
	}
	return &RingWriter{
		buffer: make([]byte, size),
	}, nil
}

func (r *RingWriter) Write(p []byte) (n int, err error) {
	n = len(p)

	// only the tail end of an oversized write can survive
	if len(p) >= len(r.buffer) {
		copy(r.buffer, p[len(p)-len(r.buffer):])
		r.cursor = 0
		r.wrapped = true
		return n, nil
	}

	c := copy(r.buffer[r.cursor:], p)
	if c < len(p) {
		copy(r.buffer, p[c:])
		r.wrapped = true
	}
	r.cursor = (r.cursor + len(p)) % len(r.buffer)
	if r.cursor == 0 && len(p) > 0 {
		r.wrapped = true
	}

	return n, nil
}

// Reset empties the writer.
func (r *RingWriter) Reset() {
	r.cursor = 0
	r.wrapped = false
}

func (r *RingWriter) String() string {
	var s strings.Builder
	if r.wrapped {
		s.Write(r.buffer[r.cursor:])
	}
	s.Write(r.buffer[:r.cursor])
	return s.String()
}
