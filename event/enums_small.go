// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package event

import "github.com/KirkDiggler/esoparser/codec"

// DisplayQuality ranks an item's rarity tier.
type DisplayQuality string

const (
	DisplayQualityMythicOverride DisplayQuality = "MYTHIC_OVERRIDE"
	DisplayQualityLegendary      DisplayQuality = "LEGENDARY"
	DisplayQualityArtifact       DisplayQuality = "ARTIFACT"
	DisplayQualityArcane         DisplayQuality = "ARCANE"
	DisplayQualityMagic          DisplayQuality = "MAGIC"
	DisplayQualityNormal         DisplayQuality = "NORMAL"
	DisplayQualityTrash          DisplayQuality = "TRASH"
)

// EffectType classifies an effect as beneficial, harmful, or neither.
type EffectType string

const (
	EffectTypeBuff        EffectType = "BUFF"
	EffectTypeDebuff       EffectType = "DEBUFF"
	EffectTypeNotAnEffect EffectType = "NOT_AN_EFFECT"
)

// DisplayBehaviour controls whether an effect's icon appears on the
// unit frame.
type DisplayBehaviour string

const (
	DisplayBehaviourDefault DisplayBehaviour = "DEFAULT"
	DisplayBehaviourAlways  DisplayBehaviour = "ALWAYS"
	DisplayBehaviourNever   DisplayBehaviour = "NEVER"
)

// EffectChangeType is the kind of transition an EFFECT_CHANGED event
// reports for its track id.
type EffectChangeType string

const (
	EffectChangeTypeGained  EffectChangeType = "GAINED"
	EffectChangeTypeFaded   EffectChangeType = "FADED"
	EffectChangeTypeUpdated EffectChangeType = "UPDATED"
)

// EndCastReason is why a cast stopped.
type EndCastReason string

const (
	EndCastReasonCompleted       EndCastReason = "COMPLETED"
	EndCastReasonFailed          EndCastReason = "FAILED"
	EndCastReasonInterrupted     EndCastReason = "INTERRUPTED"
	EndCastReasonPlayerCancelled EndCastReason = "PLAYER_CANCELLED"
)

// UnitType classifies what kind of actor a unit is.
type UnitType string

const (
	UnitTypeMonster     UnitType = "MONSTER"
	UnitTypeObject      UnitType = "OBJECT"
	UnitTypePlayer      UnitType = "PLAYER"
	UnitTypeSiegeWeapon UnitType = "SIEGE_WEAPON"
)

// UnitReactionType is a unit's disposition toward the local player.
type UnitReactionType string

const (
	UnitReactionTypeCompanion   UnitReactionType = "COMPANION"
	UnitReactionTypeDefault     UnitReactionType = "DEFAULT"
	UnitReactionTypeFriendly    UnitReactionType = "FRIENDLY"
	UnitReactionTypeHostile     UnitReactionType = "HOSTILE"
	UnitReactionTypeNeutral     UnitReactionType = "NEUTRAL"
	UnitReactionTypeNpcAlly     UnitReactionType = "NPC_ALLY"
	UnitReactionTypePlayerAlly  UnitReactionType = "PLAYER_ALLY"
)

// DungeonDifficulty is the instance difficulty a zone was entered at.
type DungeonDifficulty string

const (
	DungeonDifficultyNone    DungeonDifficulty = "NONE"
	DungeonDifficultyNormal  DungeonDifficulty = "NORMAL"
	DungeonDifficultyVeteran DungeonDifficulty = "VETERAN"
)

// Trait and EnchantType are carried as opaque wire strings rather than
// closed enums: the variant list for either never appeared in the
// retrieved original source, so there is no authoritative set to
// validate against. Same treatment as PowerType/RaceId/ClassId.
type Trait string
type EnchantType string

func (v Trait) Encode(e *codec.Encoder)       { e.Tag(string(v)) }
func (v EnchantType) Encode(e *codec.Encoder) { e.Tag(string(v)) }

func decodeTrait(d *codec.Decoder) (Trait, error) {
	tok, err := d.Tag()
	if err != nil {
		return "", err
	}
	return Trait(tok), nil
}

func decodeEnchantType(d *codec.Decoder) (EnchantType, error) {
	tok, err := d.Tag()
	if err != nil {
		return "", err
	}
	return EnchantType(tok), nil
}

type smallEnum interface {
	~string
}

func decodeSmallEnum[T smallEnum](d *codec.Decoder, valid map[T]struct{}, name string) (T, error) {
	tok, err := d.Tag()
	if err != nil {
		var zero T
		return zero, err
	}
	v := T(tok)
	if _, ok := valid[v]; !ok {
		var zero T
		return zero, codec.Newf(codec.CodeInvalidToken, "unknown %s %q", name, tok)
	}
	return v, nil
}

func (v DisplayQuality) Encode(e *codec.Encoder)    { e.Tag(string(v)) }
func (v EffectType) Encode(e *codec.Encoder)        { e.Tag(string(v)) }
func (v DisplayBehaviour) Encode(e *codec.Encoder)  { e.Tag(string(v)) }
func (v EffectChangeType) Encode(e *codec.Encoder)  { e.Tag(string(v)) }
func (v EndCastReason) Encode(e *codec.Encoder)     { e.Tag(string(v)) }
func (v UnitType) Encode(e *codec.Encoder)          { e.Tag(string(v)) }
func (v UnitReactionType) Encode(e *codec.Encoder)  { e.Tag(string(v)) }
func (v DungeonDifficulty) Encode(e *codec.Encoder) { e.Tag(string(v)) }

var displayQualityValid = map[DisplayQuality]struct{}{
	DisplayQualityMythicOverride: {}, DisplayQualityLegendary: {}, DisplayQualityArtifact: {},
	DisplayQualityArcane: {}, DisplayQualityMagic: {}, DisplayQualityNormal: {}, DisplayQualityTrash: {},
}

var effectTypeValid = map[EffectType]struct{}{
	EffectTypeBuff: {}, EffectTypeDebuff: {}, EffectTypeNotAnEffect: {},
}

var displayBehaviourValid = map[DisplayBehaviour]struct{}{
	DisplayBehaviourDefault: {}, DisplayBehaviourAlways: {}, DisplayBehaviourNever: {},
}

var effectChangeTypeValid = map[EffectChangeType]struct{}{
	EffectChangeTypeGained: {}, EffectChangeTypeFaded: {}, EffectChangeTypeUpdated: {},
}

var endCastReasonValid = map[EndCastReason]struct{}{
	EndCastReasonCompleted: {}, EndCastReasonFailed: {}, EndCastReasonInterrupted: {}, EndCastReasonPlayerCancelled: {},
}

var unitTypeValid = map[UnitType]struct{}{
	UnitTypeMonster: {}, UnitTypeObject: {}, UnitTypePlayer: {}, UnitTypeSiegeWeapon: {},
}

var unitReactionTypeValid = map[UnitReactionType]struct{}{
	UnitReactionTypeCompanion: {}, UnitReactionTypeDefault: {}, UnitReactionTypeFriendly: {},
	UnitReactionTypeHostile: {}, UnitReactionTypeNeutral: {}, UnitReactionTypeNpcAlly: {}, UnitReactionTypePlayerAlly: {},
}

var dungeonDifficultyValid = map[DungeonDifficulty]struct{}{
	DungeonDifficultyNone: {}, DungeonDifficultyNormal: {}, DungeonDifficultyVeteran: {},
}

func decodeDisplayQuality(d *codec.Decoder) (DisplayQuality, error) {
	return decodeSmallEnum(d, displayQualityValid, "DisplayQuality")
}

func decodeEffectType(d *codec.Decoder) (EffectType, error) {
	return decodeSmallEnum(d, effectTypeValid, "EffectType")
}

func decodeDisplayBehaviour(d *codec.Decoder) (DisplayBehaviour, error) {
	return decodeSmallEnum(d, displayBehaviourValid, "DisplayBehaviour")
}

func decodeEffectChangeType(d *codec.Decoder) (EffectChangeType, error) {
	return decodeSmallEnum(d, effectChangeTypeValid, "EffectChangeType")
}

func decodeEndCastReason(d *codec.Decoder) (EndCastReason, error) {
	return decodeSmallEnum(d, endCastReasonValid, "EndCastReason")
}

func decodeUnitType(d *codec.Decoder) (UnitType, error) {
	return decodeSmallEnum(d, unitTypeValid, "UnitType")
}

func decodeUnitReactionType(d *codec.Decoder) (UnitReactionType, error) {
	return decodeSmallEnum(d, unitReactionTypeValid, "UnitReactionType")
}

func decodeDungeonDifficulty(d *codec.Decoder) (DungeonDifficulty, error) {
	return decodeSmallEnum(d, dungeonDifficultyValid, "DungeonDifficulty")
}
