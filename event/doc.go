// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package event defines the closed set of encounter-log event kinds,
// their field layouts, and the shared value types they carry. Every
// body type implements Decode/Encode against a *codec.Decoder /
// *codec.Encoder; package event itself never touches a token.Reader
// directly.
package event
