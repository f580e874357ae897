// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package numeric

import "math"

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// ParseUint64 consumes the longest leading run of decimal digits in b
// and requires the following byte (if any) to be a comma. It returns
// the parsed value and the number of bytes consumed, including that
// trailing comma when present, so the caller can advance its reader in
// one step.
func ParseUint64(b []byte) (uint64, int, error) {
	var v uint64
	i := 0
	for i < len(b) && isDigit(b[i]) {
		v = v*10 + uint64(b[i]-'0')
		i++
	}
	if i == 0 {
		return 0, 0, ErrInvalidInt
	}
	if i == len(b) {
		return v, i, nil
	}
	if b[i] == ',' {
		return v, i + 1, nil
	}
	return 0, 0, ErrInvalidInt
}

// ParseUint32 is ParseUint64 narrowed to 32 bits.
func ParseUint32(b []byte) (uint32, int, error) {
	v, n, err := ParseUint64(b)
	if err != nil {
		return 0, 0, err
	}
	return uint32(v), n, nil
}

// ParseInt64 is ParseUint64 extended with an optional leading sign.
func ParseInt64(b []byte) (int64, int, error) {
	i := 0
	neg := false
	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		neg = b[i] == '-'
		i++
	}

	start := i
	var v int64
	for i < len(b) && isDigit(b[i]) {
		v = v*10 + int64(b[i]-'0')
		i++
	}
	if i == start {
		return 0, 0, ErrInvalidInt
	}
	if neg {
		v = -v
	}

	if i == len(b) {
		return v, i, nil
	}
	if b[i] == ',' {
		return v, i + 1, nil
	}
	return 0, 0, ErrInvalidInt
}

// ParseUint64Exact parses b as an unsigned integer with no trailing
// delimiter expected: every byte of b must be a digit. It is used for
// the two halves of a current/max pair, which are already bounded by
// the pair separator and the enclosing token, not by a comma.
func ParseUint64Exact(b []byte) (uint64, error) {
	if len(b) == 0 {
		return 0, ErrInvalidInt
	}
	var v uint64
	for _, c := range b {
		if !isDigit(c) {
			return 0, ErrInvalidInt
		}
		v = v*10 + uint64(c-'0')
	}
	return v, nil
}

// ParseFloat64 consumes a leading signed decimal (optionally with a
// fractional part) from b, requiring the following byte (if any) to be
// a comma, and returns the value plus bytes consumed including that
// comma.
func ParseFloat64(b []byte) (float64, int, error) {
	return parseFloat(b)
}

// ParseFloat32 is ParseFloat64 narrowed to 32 bits.
func ParseFloat32(b []byte) (float32, int, error) {
	v, n, err := parseFloat(b)
	return float32(v), n, err
}

func parseFloat(b []byte) (float64, int, error) {
	i := 0
	neg := false
	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		neg = b[i] == '-'
		i++
	}

	intStart := i
	var intPart float64
	for i < len(b) && isDigit(b[i]) {
		intPart = intPart*10 + float64(b[i]-'0')
		i++
	}
	if i == intStart {
		return 0, 0, ErrInvalidFloat
	}

	magnitude := intPart
	if i < len(b) && b[i] == '.' {
		i++
		fracStart := i
		var fracPart float64
		for i < len(b) && isDigit(b[i]) {
			fracPart = fracPart*10 + float64(b[i]-'0')
			i++
		}
		digits := i - fracStart
		if digits == 0 {
			return 0, 0, ErrInvalidFloat
		}

		if digits == 4 {
			// A four-digit fraction is exactly fracPart/10000; expressed
			// as a single fused multiply-add it skips a division.
			magnitude = math.FMA(0.0001, fracPart, intPart)
		} else {
			magnitude = intPart + fracPart/pow10(digits)
		}
	}

	if neg {
		magnitude = -magnitude
	}

	if i == len(b) {
		return magnitude, i, nil
	}
	if b[i] == ',' {
		return magnitude, i + 1, nil
	}
	return 0, 0, ErrInvalidFloat
}

func pow10(n int) float64 {
	v := 1.0
	for ; n > 0; n-- {
		v *= 10
	}
	return v
}
