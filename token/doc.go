// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package token splits a single encounter-log line into the flat sequence
// of field tokens the codec package deserializes. It understands three
// token shapes — quoted strings, bracketed (possibly nested) lists, and
// plain comma-delimited atoms — and exposes two interchangeable scanning
// strategies behind the same Reader type: a bounds-checked scan safe for
// any input, and an opt-in unguarded scan that trades a caller-supplied
// read-ahead guarantee for wider, branch-free delimiter search.
package token
