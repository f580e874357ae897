// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package codec drives a token.Reader against the shape of a target Go
// value: booleans, integers, floats, strings, optionals, lists, and
// structs with fields in fixed declaration order. It is the engine
// event.Event's Decode/Encode methods are written against; it carries
// no knowledge of any specific event kind.
package codec
