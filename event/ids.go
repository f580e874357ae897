// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package event

import "github.com/KirkDiggler/esoparser/codec"

// Id is a generic 64-bit identifier, used where the log does not
// distinguish a more specific id kind (character id, player-per-session
// id, the undocumented EndCast trailing field).
type Id uint64

// UnitId identifies a unit for the lifetime of a log (or until reused
// after the unit is removed).
type UnitId uint64

// SetId identifies an equipment set.
type SetId uint64

// Level is a character or item level.
type Level uint64

// AbilityId identifies a named ability, shared across every cast or
// effect instance of it.
type AbilityId uint64

// TrackId identifies one in-flight cast or applied effect instance.
type TrackId uint64

// MonsterId identifies a monster template; zero means "not a monster"
// (used by the EndCombat enemy sweep).
type MonsterId uint64

// StackCount is the stack depth of a long-term effect.
type StackCount uint64

// PowerType, RaceId, and ClassId are carried as opaque ids rather than
// closed enums: the log emits them as plain integers, and no
// authoritative mapping from integer to named variant ships with this
// library. See DESIGN.md for this Open Question's resolution.
type PowerType uint64
type RaceId uint64
type ClassId uint64

func decodeUint64Id[T ~uint64](d *codec.Decoder) (T, error) {
	v, err := d.Uint64()
	return T(v), err
}

func (v Id) Encode(e *codec.Encoder)        { e.Uint64(uint64(v)) }
func (v UnitId) Encode(e *codec.Encoder)    { e.Uint64(uint64(v)) }
func (v SetId) Encode(e *codec.Encoder)     { e.Uint64(uint64(v)) }
func (v Level) Encode(e *codec.Encoder)     { e.Uint64(uint64(v)) }
func (v AbilityId) Encode(e *codec.Encoder) { e.Uint64(uint64(v)) }
func (v TrackId) Encode(e *codec.Encoder)   { e.Uint64(uint64(v)) }
func (v MonsterId) Encode(e *codec.Encoder) { e.Uint64(uint64(v)) }
func (v StackCount) Encode(e *codec.Encoder) { e.Uint64(uint64(v)) }
func (v PowerType) Encode(e *codec.Encoder) { e.Uint64(uint64(v)) }
func (v RaceId) Encode(e *codec.Encoder)    { e.Uint64(uint64(v)) }
func (v ClassId) Encode(e *codec.Encoder)   { e.Uint64(uint64(v)) }

func decodeId(d *codec.Decoder) (Id, error)               { return decodeUint64Id[Id](d) }
func decodeUnitId(d *codec.Decoder) (UnitId, error)       { return decodeUint64Id[UnitId](d) }
func decodeSetId(d *codec.Decoder) (SetId, error)         { return decodeUint64Id[SetId](d) }
func decodeLevel(d *codec.Decoder) (Level, error)         { return decodeUint64Id[Level](d) }
func decodeAbilityId(d *codec.Decoder) (AbilityId, error) { return decodeUint64Id[AbilityId](d) }
func decodeTrackId(d *codec.Decoder) (TrackId, error)     { return decodeUint64Id[TrackId](d) }
func decodeMonsterId(d *codec.Decoder) (MonsterId, error) { return decodeUint64Id[MonsterId](d) }
func decodeStackCount(d *codec.Decoder) (StackCount, error) {
	return decodeUint64Id[StackCount](d)
}
func decodePowerType(d *codec.Decoder) (PowerType, error) { return decodeUint64Id[PowerType](d) }
func decodeRaceId(d *codec.Decoder) (RaceId, error)       { return decodeUint64Id[RaceId](d) }
func decodeClassId(d *codec.Decoder) (ClassId, error)     { return decodeUint64Id[ClassId](d) }
