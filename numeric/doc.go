// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package numeric converts a leading run of digits in a token.Reader's
// remaining buffer directly into a value, folding delimiter consumption
// into the same pass: the parser both produces the value and reports
// how many bytes (including a trailing comma, if one followed) the
// caller should advance past. This lets codec.Decoder skip a separate
// tokenize-then-parse step for every number field in the schema.
package numeric
