// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package esoparser parses the Elder Scrolls Online encounter log
// format into typed events and, optionally, a live world-state
// projection.
//
// ParseOne decodes a single line. ParseMany and ParseManyFast decode a
// whole buffer's lines, the latter trading the tokenizer's bounds
// checks for throughput on the guarantee that buf carries a small
// read-ahead margin past its last line. ParseManyParallel fans the same
// work out across goroutines for large logs. Dump is the inverse,
// encoding an Event back to its wire form.
package esoparser
