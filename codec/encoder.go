// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package codec

import "strconv"

// Encoder accumulates the wire encoding of an event into a growing
// byte buffer. Every scalar-writing method appends its token followed
// by a trailing comma; Finish strips the final trailing comma. A
// sequence's trailing comma is overwritten with the closing bracket
// instead, so the buffer never needs a separate "is this the last
// field" check at each call site.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an Encoder with a small pre-sized buffer, matching
// the typical length of one encounter-log line.
func NewEncoder() *Encoder {
	return &Encoder{buf: make([]byte, 0, 128)}
}

func (e *Encoder) pushToken(s string) {
	e.buf = append(e.buf, s...)
	e.buf = append(e.buf, ',')
}

// Bool writes "T" or "F".
func (e *Encoder) Bool(v bool) {
	if v {
		e.pushToken("T")
	} else {
		e.pushToken("F")
	}
}

// Uint64 writes v in base 10.
func (e *Encoder) Uint64(v uint64) {
	e.buf = strconv.AppendUint(e.buf, v, 10)
	e.buf = append(e.buf, ',')
}

// Int64 writes v in base 10 with an explicit leading '-' for negatives.
func (e *Encoder) Int64(v int64) {
	e.buf = strconv.AppendInt(e.buf, v, 10)
	e.buf = append(e.buf, ',')
}

// Uint32 writes v in base 10.
func (e *Encoder) Uint32(v uint32) {
	e.buf = strconv.AppendUint(e.buf, uint64(v), 10)
	e.buf = append(e.buf, ',')
}

// Int32 writes v in base 10 with an explicit leading '-' for negatives.
func (e *Encoder) Int32(v int32) {
	e.buf = strconv.AppendInt(e.buf, int64(v), 10)
	e.buf = append(e.buf, ',')
}

// Float32 writes v using the shortest round-trip decimal form.
func (e *Encoder) Float32(v float32) {
	e.buf = strconv.AppendFloat(e.buf, float64(v), 'f', -1, 32)
	e.buf = append(e.buf, ',')
}

// Float64 writes v using the shortest round-trip decimal form.
func (e *Encoder) Float64(v float64) {
	e.buf = strconv.AppendFloat(e.buf, v, 'f', -1, 64)
	e.buf = append(e.buf, ',')
}

// String writes v verbatim: callers that need quotes around a value
// (e.g. a realm name) pass a string that already carries them, mirror
// of Decoder.String returning quotes unstripped.
func (e *Encoder) String(v string) {
	e.pushToken(v)
}

// Tag writes an enum's upper-snake-case wire spelling.
func (e *Encoder) Tag(v string) {
	e.pushToken(v)
}

// Star writes the literal absent/same-as-source sentinel token.
func (e *Encoder) Star() {
	e.pushToken("*")
}

// Pair writes a "current/max" composite token.
func (e *Encoder) Pair(current, max uint64) {
	e.buf = strconv.AppendUint(e.buf, current, 10)
	e.buf = append(e.buf, '/')
	e.buf = strconv.AppendUint(e.buf, max, 10)
	e.buf = append(e.buf, ',')
}

// BeginList opens a bracketed list. Callers write each element with
// the usual scalar/struct methods, then call EndList.
func (e *Encoder) BeginList() {
	e.buf = append(e.buf, '[')
}

// EndList closes the most recently opened list, overwriting a trailing
// element comma with the closing bracket, or appending one to an empty
// list.
func (e *Encoder) EndList() {
	if len(e.buf) > 0 && e.buf[len(e.buf)-1] == ',' {
		e.buf[len(e.buf)-1] = ']'
	} else {
		e.buf = append(e.buf, ']')
	}
	e.buf = append(e.buf, ',')
}

// Map always fails: map serialization is outside this codec's remit.
func (e *Encoder) Map() error {
	return New(CodeUnsupportedOperation, "map serialization is not supported by this encoder")
}

// Finish returns the completed line, stripping the final trailing
// comma left by the last field write.
func (e *Encoder) Finish() []byte {
	if len(e.buf) > 0 && e.buf[len(e.buf)-1] == ',' {
		return e.buf[:len(e.buf)-1]
	}
	return e.buf
}
