// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package codec

import (
	"github.com/KirkDiggler/esoparser/numeric"
	"github.com/KirkDiggler/esoparser/token"
)

// Decoder drives a token.Reader against the shape of a target value.
// It carries no knowledge of any event kind; event.Event's Decode
// methods call back into it field by field, in declaration order.
type Decoder struct {
	r token.Reader
}

// NewDecoder wraps a bounds-checked token.Reader over line.
func NewDecoder(line []byte) *Decoder {
	return &Decoder{r: token.NewReader(line)}
}

// NewUnguardedDecoder wraps an unguarded token.Reader over line. The
// same safety contract as token.NewUnguardedReader applies to line.
func NewUnguardedDecoder(line []byte) *Decoder {
	return &Decoder{r: token.NewUnguardedReader(line)}
}

// Depleted reports whether every token has been consumed.
func (d *Decoder) Depleted() bool {
	return d.r.Depleted()
}

// Finish asserts the reader is fully consumed, per the top-level
// parse_one contract: unread tokens after a complete event indicate
// schema drift.
func (d *Decoder) Finish() error {
	if !d.r.Depleted() {
		return New(CodeReaderNotExhausted, "unread tokens remain after decoding")
	}
	return nil
}

func (d *Decoder) next() ([]byte, error) {
	tok, ok := d.r.Next()
	if !ok {
		return nil, New(CodeUnexpectedEnd, "expected a field, found end of input")
	}
	return tok, nil
}

// Bool consumes a "T"/"F" token.
func (d *Decoder) Bool() (bool, error) {
	tok, err := d.next()
	if err != nil {
		return false, err
	}
	switch string(tok) {
	case "T":
		return true, nil
	case "F":
		return false, nil
	}
	return false, Newf(CodeInvalidToken, "expected T or F, got %q", tok)
}

// Uint64 parses an unsigned integer from the reader's remainder,
// folding delimiter consumption into the numeric parse.
func (d *Decoder) Uint64() (uint64, error) {
	v, n, err := numeric.ParseUint64(d.r.Remainder())
	if err != nil {
		return 0, Wrap(CodeParseIntError, "invalid unsigned integer token", err)
	}
	d.r.Advance(n)
	return v, nil
}

// Uint32 is Uint64 narrowed to 32 bits.
func (d *Decoder) Uint32() (uint32, error) {
	v, err := d.Uint64()
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// Int64 parses a signed integer from the reader's remainder.
func (d *Decoder) Int64() (int64, error) {
	v, n, err := numeric.ParseInt64(d.r.Remainder())
	if err != nil {
		return 0, Wrap(CodeParseIntError, "invalid signed integer token", err)
	}
	d.r.Advance(n)
	return v, nil
}

// Int32 is Int64 narrowed to 32 bits.
func (d *Decoder) Int32() (int32, error) {
	v, err := d.Int64()
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// Float32 parses a float from the reader's remainder.
func (d *Decoder) Float32() (float32, error) {
	v, n, err := numeric.ParseFloat32(d.r.Remainder())
	if err != nil {
		return 0, Wrap(CodeParseFloatError, "invalid float token", err)
	}
	d.r.Advance(n)
	return v, nil
}

// Float64 parses a float from the reader's remainder.
func (d *Decoder) Float64() (float64, error) {
	v, n, err := numeric.ParseFloat64(d.r.Remainder())
	if err != nil {
		return 0, Wrap(CodeParseFloatError, "invalid float token", err)
	}
	d.r.Advance(n)
	return v, nil
}

// String consumes the next token verbatim, quotes and all: the wire
// grammar treats a quoted token's value as the quote-delimited text
// itself, so that re-emitting it unmodified round-trips.
func (d *Decoder) String() (string, error) {
	tok, err := d.next()
	if err != nil {
		return "", err
	}
	return string(tok), nil
}

// Tag consumes the next token as a closed-enum identifier, returning
// the raw bytes so callers can hash them directly for dispatch without
// an intermediate string allocation.
func (d *Decoder) Tag() ([]byte, error) {
	return d.next()
}

// Optional peeks the next token. If the stream is already depleted or
// the next token is the literal sentinel "*", it reports absent
// (consuming the sentinel in the latter case). Otherwise it reports
// present without consuming anything, leaving the token for the
// caller's subsequent decode of the inner value.
func (d *Decoder) Optional() (present bool, err error) {
	if d.r.Depleted() {
		return false, nil
	}

	save := d.r
	tok, ok := d.r.Next()
	if !ok {
		return false, nil
	}
	if string(tok) == "*" {
		return false, nil
	}

	d.r = save
	return true, nil
}

// BeginList consumes a bracketed list token and returns a sub-Decoder
// scoped to its contents (brackets stripped), sharing this Decoder's
// guarded/unguarded mode. Callers drive the returned Decoder until
// Depleted to visit every element.
func (d *Decoder) BeginList() (*Decoder, error) {
	tok, err := d.next()
	if err != nil {
		return nil, err
	}
	if len(tok) < 2 || tok[0] != '[' || tok[len(tok)-1] != ']' {
		return nil, Newf(CodeNotAList, "expected a bracketed list, got %q", tok)
	}
	return &Decoder{r: d.r.WithBuf(tok[1 : len(tok)-1])}, nil
}

// Pair consumes a "current/max" composite token and parses both
// halves as unsigned integers.
func (d *Decoder) Pair() (current, max uint64, err error) {
	tok, err := d.next()
	if err != nil {
		return 0, 0, err
	}
	a, b, ok := token.SplitPair(tok, '/')
	if !ok {
		return 0, 0, Newf(CodeInvalidToken, "expected a current/max pair, got %q", tok)
	}
	current, err = numeric.ParseUint64Exact(a)
	if err != nil {
		return 0, 0, Wrap(CodeParseIntError, "invalid current half of pair", err)
	}
	max, err = numeric.ParseUint64Exact(b)
	if err != nil {
		return 0, 0, Wrap(CodeParseIntError, "invalid max half of pair", err)
	}
	return current, max, nil
}
