// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package state folds a stream of parsed events into a live model of
// units, their equipment, their active effects, and combat-phase flags.
// State is single-threaded and not safe for concurrent mutation;
// concurrent readers must clone or externally synchronize.
package state
