// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package token

// Reader yields the field tokens of a single encounter-log line,
// left to right. Tokens are borrowed substrings of the line passed to
// NewReader/NewUnguardedReader: no allocation happens during scanning.
//
// A Reader is a plain value; copying it (e.g. to peek ahead and decide
// whether to commit) is always safe and cheap, since the underlying
// buffer is never mutated, only reslicing as the reader advances.
type Reader struct {
	buf       []byte
	unguarded bool
}

// NewReader constructs a guarded reader: every delimiter search is
// bounds-checked and never reads outside line.
func NewReader(line []byte) Reader {
	return Reader{buf: line}
}

// NewUnguardedReader constructs a reader that scans for delimiters in
// wide, unchecked strides.
//
// Safety contract: the backing array of line must have at least 31
// bytes of additional, readable capacity past len(line), i.e.
// cap(line) >= len(line)+31, and those padding bytes may contain
// arbitrary data (they are never interpreted as anything but opaque
// bytes, and any delimiter match found inside them is discarded).
// Violating this precondition is undefined behavior: the reader will
// read past the end of the backing array. Callers that cannot make
// this guarantee must use NewReader instead.
func NewUnguardedReader(line []byte) Reader {
	return Reader{buf: line, unguarded: true}
}

// WithBuf returns a Reader over buf carrying this Reader's
// guarded/unguarded mode. It lets a caller that has already sliced out
// a sub-token (e.g. the contents of a bracketed list) re-tokenize that
// sub-slice without losing the unguarded read-ahead guarantee, which
// the sub-slice still has since it shares the same backing array as
// the original line.
func (r *Reader) WithBuf(buf []byte) Reader {
	return Reader{buf: buf, unguarded: r.unguarded}
}

// Depleted reports whether every token has been consumed.
func (r *Reader) Depleted() bool {
	return len(r.buf) == 0
}

// Remainder returns the bytes not yet consumed. Scalar-number decoding
// reads directly from this slice and then calls Advance, folding the
// delimiter scan into the numeric parse instead of tokenizing twice.
func (r *Reader) Remainder() []byte {
	return r.buf
}

// Advance drops n bytes from the front of the unconsumed buffer. The
// caller must ensure n <= len(r.Remainder()).
func (r *Reader) Advance(n int) {
	r.buf = r.buf[n:]
}

// Next returns the next token shape-aware: a quoted string (quotes
// kept), a balanced bracketed list (brackets kept), or a plain atom up
// to the next comma. The returned token is a borrowed sub-slice of the
// original line. Next reports false once the reader is depleted; an
// empty trailing token after a final comma is never emitted.
func (r *Reader) Next() ([]byte, bool) {
	if len(r.buf) == 0 {
		return nil, false
	}

	var end int
	switch r.buf[0] {
	case '"':
		end = r.findQuoteEnd()
	case '[':
		end = findListEnd(r.buf)
	default:
		end = r.find(r.buf, ',')
	}

	tok := r.buf[:end]
	rest := r.buf[end:]
	if len(rest) > 0 && rest[0] == ',' {
		rest = rest[1:]
	}
	r.buf = rest

	return tok, true
}

func (r *Reader) findQuoteEnd() int {
	rel := r.find(r.buf[1:], '"')
	end := 1 + rel + 1
	if end > len(r.buf) {
		// unterminated quote: treat the rest of the line as the token.
		end = len(r.buf)
	}
	return end
}

func (r *Reader) find(buf []byte, delim byte) int {
	if r.unguarded {
		return findDelimUnguarded(buf, delim)
	}
	return findDelimGuarded(buf, delim)
}

// findListEnd scans a balanced bracketed list starting at buf[0] == '['
// and returns the index one past its closing ']'. Depth counting is
// inherently sequential and is not a candidate for the wide delimiter
// scans above.
func findListEnd(buf []byte) int {
	depth := 0
	for i, c := range buf {
		switch c {
		case '[':
			depth++
		case ']':
			depth--
		}
		if depth == 0 {
			return i + 1
		}
	}
	return len(buf)
}

// SplitPair splits a current/max style token on sep, e.g. "10000/20000"
// on '/'. Both halves are already comma-bounded (the token was produced
// by Reader.Next), so a single bounded scan is enough; no unguarded
// variant is needed here.
func SplitPair(tok []byte, sep byte) (a, b []byte, ok bool) {
	for i, c := range tok {
		if c == sep {
			return tok[:i], tok[i+1:], true
		}
	}
	return nil, nil, false
}
