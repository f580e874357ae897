// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package event

import (
	"github.com/KirkDiggler/esoparser/codec"
	"github.com/cespare/xxhash/v2"
)

// These four enums carry the log's largest closed vocabularies
// (ActionResult alone has well over a hundred variants). Rather than a
// long if/else or switch chain, each is backed by a dense
// ordinal-to-string table for encoding and an xxhash-keyed lookup
// table, built once at package init, for decoding.

type ActionResult uint8

const (
	ActionResultAbilityOnCooldown ActionResult = iota
	ActionResultAbsorbed
	ActionResultBadTarget
	ActionResultBattleStandardsDisabled
	ActionResultBattleStandardAlreadyExistsForGuild
	ActionResultBattleStandardLimit
	ActionResultBattleStandardNoPermission
	ActionResultBattleStandardTabardMismatch
	ActionResultBattleStandardTooCloseToCapturable
	ActionResultBladeturn
	ActionResultBlocked
	ActionResultBlockedDamage
	ActionResultBusy
	ActionResultCannotUse
	ActionResultCantSeeTarget
	ActionResultCantSwapHotbarIsOverridden
	ActionResultCantSwapWhileChangingGear
	ActionResultCasterDead
	ActionResultCriticalDamage
	ActionResultCriticalHeal
	ActionResultDamage
	ActionResultDamageShielded
	ActionResultDefended
	ActionResultDied
	ActionResultDiedCompanionXp
	ActionResultDiedXp
	ActionResultDisarmed
	ActionResultDisoriented
	ActionResultDodged
	ActionResultDotTick
	ActionResultDotTickCritical
	ActionResultFailed
	ActionResultFailedRequirements
	ActionResultFailedSiegeCreationRequirements
	ActionResultFalling
	ActionResultFallDamage
	ActionResultFeared
	ActionResultForwardCampAlreadyExistsForGuild
	ActionResultForwardCampNoPermission
	ActionResultForwardCampTabardMismatch
	ActionResultGraveyardDisallowedInInstance
	ActionResultGraveyardTooClose
	ActionResultHeal
	ActionResultHealAbsorbed
	ActionResultHotTick
	ActionResultHotTickCritical
	ActionResultImmune
	ActionResultInsufficientResource
	ActionResultIntercepted
	ActionResultInterrupt
	ActionResultInvalid
	ActionResultInvalidFixture
	ActionResultInvalidJusticeTarget
	ActionResultInvalidTerrain
	ActionResultInAir
	ActionResultInCombat
	ActionResultInEnemyKeep
	ActionResultInEnemyOutpost
	ActionResultInEnemyResource
	ActionResultInEnemyTown
	ActionResultInHideyhole
	ActionResultKilledByDaedricWeapon
	ActionResultKilledBySubzone
	ActionResultKillingBlow
	ActionResultKnockback
	ActionResultLevitated
	ActionResultMercenaryLimit
	ActionResultMiss
	ActionResultMissingEmptySoulGem
	ActionResultMissingFilledSoulGem
	ActionResultMobileGraveyardLimit
	ActionResultMounted
	ActionResultMustBeInOwnKeep
	ActionResultNotEnoughInventorySpace
	ActionResultNotEnoughInventorySpaceSoulGem
	ActionResultNotEnoughSpaceForSiege
	ActionResultNoLocationFound
	ActionResultNoRamAttackableTargetWithinRange
	ActionResultNoWeaponsToSwapTo
	ActionResultNpcTooClose
	ActionResultOffbalance
	ActionResultPacified
	ActionResultParried
	ActionResultPartialResist
	ActionResultPowerDrain
	ActionResultPowerEnergize
	ActionResultPreciseDamage
	ActionResultQueued
	ActionResultRamAttackableTargetsAllDestroyed
	ActionResultRamAttackableTargetsAllOccupied
	ActionResultRecalling
	ActionResultReflected
	ActionResultReincarnating
	ActionResultResist
	ActionResultResurrect
	ActionResultRooted
	ActionResultSiegeLimit
	ActionResultSiegeNotAllowedInZone
	ActionResultSiegeTooClose
	ActionResultSilenced
	ActionResultSnared
	ActionResultSoulGemResurrectionAccepted
	ActionResultSprinting
	ActionResultStaggered
	ActionResultStunned
	ActionResultSwimming
	ActionResultTargetDead
	ActionResultTargetNotInView
	ActionResultTargetNotPvpFlagged
	ActionResultTargetOutOfRange
	ActionResultTargetTooClose
	ActionResultUnevenTerrain
	ActionResultWeaponswap
	ActionResultWreckingDamage
	ActionResultWrongWeapon
	ActionResultLinkedCast
	actionResultCount
)

var actionResultWire = [actionResultCount]string{
	ActionResultAbilityOnCooldown: "ABILITY_ON_COOLDOWN",
	ActionResultAbsorbed: "ABSORBED",
	ActionResultBadTarget: "BAD_TARGET",
	ActionResultBattleStandardsDisabled: "BATTLE_STANDARDS_DISABLED",
	ActionResultBattleStandardAlreadyExistsForGuild: "BATTLE_STANDARD_ALREADY_EXISTS_FOR_GUILD",
	ActionResultBattleStandardLimit: "BATTLE_STANDARD_LIMIT",
	ActionResultBattleStandardNoPermission: "BATTLE_STANDARD_NO_PERMISSION",
	ActionResultBattleStandardTabardMismatch: "BATTLE_STANDARD_TABARD_MISMATCH",
	ActionResultBattleStandardTooCloseToCapturable: "BATTLE_STANDARD_TOO_CLOSE_TO_CAPTURABLE",
	ActionResultBladeturn: "BLADETURN",
	ActionResultBlocked: "BLOCKED",
	ActionResultBlockedDamage: "BLOCKED_DAMAGE",
	ActionResultBusy: "BUSY",
	ActionResultCannotUse: "CANNOT_USE",
	ActionResultCantSeeTarget: "CANT_SEE_TARGET",
	ActionResultCantSwapHotbarIsOverridden: "CANT_SWAP_HOTBAR_IS_OVERRIDDEN",
	ActionResultCantSwapWhileChangingGear: "CANT_SWAP_WHILE_CHANGING_GEAR",
	ActionResultCasterDead: "CASTER_DEAD",
	ActionResultCriticalDamage: "CRITICAL_DAMAGE",
	ActionResultCriticalHeal: "CRITICAL_HEAL",
	ActionResultDamage: "DAMAGE",
	ActionResultDamageShielded: "DAMAGE_SHIELDED",
	ActionResultDefended: "DEFENDED",
	ActionResultDied: "DIED",
	ActionResultDiedCompanionXp: "DIED_COMPANION_XP",
	ActionResultDiedXp: "DIED_XP",
	ActionResultDisarmed: "DISARMED",
	ActionResultDisoriented: "DISORIENTED",
	ActionResultDodged: "DODGED",
	ActionResultDotTick: "DOT_TICK",
	ActionResultDotTickCritical: "DOT_TICK_CRITICAL",
	ActionResultFailed: "FAILED",
	ActionResultFailedRequirements: "FAILED_REQUIREMENTS",
	ActionResultFailedSiegeCreationRequirements: "FAILED_SIEGE_CREATION_REQUIREMENTS",
	ActionResultFalling: "FALLING",
	ActionResultFallDamage: "FALL_DAMAGE",
	ActionResultFeared: "FEARED",
	ActionResultForwardCampAlreadyExistsForGuild: "FORWARD_CAMP_ALREADY_EXISTS_FOR_GUILD",
	ActionResultForwardCampNoPermission: "FORWARD_CAMP_NO_PERMISSION",
	ActionResultForwardCampTabardMismatch: "FORWARD_CAMP_TABARD_MISMATCH",
	ActionResultGraveyardDisallowedInInstance: "GRAVEYARD_DISALLOWED_IN_INSTANCE",
	ActionResultGraveyardTooClose: "GRAVEYARD_TOO_CLOSE",
	ActionResultHeal: "HEAL",
	ActionResultHealAbsorbed: "HEAL_ABSORBED",
	ActionResultHotTick: "HOT_TICK",
	ActionResultHotTickCritical: "HOT_TICK_CRITICAL",
	ActionResultImmune: "IMMUNE",
	ActionResultInsufficientResource: "INSUFFICIENT_RESOURCE",
	ActionResultIntercepted: "INTERCEPTED",
	ActionResultInterrupt: "INTERRUPT",
	ActionResultInvalid: "INVALID",
	ActionResultInvalidFixture: "INVALID_FIXTURE",
	ActionResultInvalidJusticeTarget: "INVALID_JUSTICE_TARGET",
	ActionResultInvalidTerrain: "INVALID_TERRAIN",
	ActionResultInAir: "IN_AIR",
	ActionResultInCombat: "IN_COMBAT",
	ActionResultInEnemyKeep: "IN_ENEMY_KEEP",
	ActionResultInEnemyOutpost: "IN_ENEMY_OUTPOST",
	ActionResultInEnemyResource: "IN_ENEMY_RESOURCE",
	ActionResultInEnemyTown: "IN_ENEMY_TOWN",
	ActionResultInHideyhole: "IN_HIDEYHOLE",
	ActionResultKilledByDaedricWeapon: "KILLED_BY_DAEDRIC_WEAPON",
	ActionResultKilledBySubzone: "KILLED_BY_SUBZONE",
	ActionResultKillingBlow: "KILLING_BLOW",
	ActionResultKnockback: "KNOCKBACK",
	ActionResultLevitated: "LEVITATED",
	ActionResultMercenaryLimit: "MERCENARY_LIMIT",
	ActionResultMiss: "MISS",
	ActionResultMissingEmptySoulGem: "MISSING_EMPTY_SOUL_GEM",
	ActionResultMissingFilledSoulGem: "MISSING_FILLED_SOUL_GEM",
	ActionResultMobileGraveyardLimit: "MOBILE_GRAVEYARD_LIMIT",
	ActionResultMounted: "MOUNTED",
	ActionResultMustBeInOwnKeep: "MUST_BE_IN_OWN_KEEP",
	ActionResultNotEnoughInventorySpace: "NOT_ENOUGH_INVENTORY_SPACE",
	ActionResultNotEnoughInventorySpaceSoulGem: "NOT_ENOUGH_INVENTORY_SPACE_SOUL_GEM",
	ActionResultNotEnoughSpaceForSiege: "NOT_ENOUGH_SPACE_FOR_SIEGE",
	ActionResultNoLocationFound: "NO_LOCATION_FOUND",
	ActionResultNoRamAttackableTargetWithinRange: "NO_RAM_ATTACKABLE_TARGET_WITHIN_RANGE",
	ActionResultNoWeaponsToSwapTo: "NO_WEAPONS_TO_SWAP_TO",
	ActionResultNpcTooClose: "NPC_TOO_CLOSE",
	ActionResultOffbalance: "OFFBALANCE",
	ActionResultPacified: "PACIFIED",
	ActionResultParried: "PARRIED",
	ActionResultPartialResist: "PARTIAL_RESIST",
	ActionResultPowerDrain: "POWER_DRAIN",
	ActionResultPowerEnergize: "POWER_ENERGIZE",
	ActionResultPreciseDamage: "PRECISE_DAMAGE",
	ActionResultQueued: "QUEUED",
	ActionResultRamAttackableTargetsAllDestroyed: "RAM_ATTACKABLE_TARGETS_ALL_DESTROYED",
	ActionResultRamAttackableTargetsAllOccupied: "RAM_ATTACKABLE_TARGETS_ALL_OCCUPIED",
	ActionResultRecalling: "RECALLING",
	ActionResultReflected: "REFLECTED",
	ActionResultReincarnating: "REINCARNATING",
	ActionResultResist: "RESIST",
	ActionResultResurrect: "RESURRECT",
	ActionResultRooted: "ROOTED",
	ActionResultSiegeLimit: "SIEGE_LIMIT",
	ActionResultSiegeNotAllowedInZone: "SIEGE_NOT_ALLOWED_IN_ZONE",
	ActionResultSiegeTooClose: "SIEGE_TOO_CLOSE",
	ActionResultSilenced: "SILENCED",
	ActionResultSnared: "SNARED",
	ActionResultSoulGemResurrectionAccepted: "SOUL_GEM_RESURRECTION_ACCEPTED",
	ActionResultSprinting: "SPRINTING",
	ActionResultStaggered: "STAGGERED",
	ActionResultStunned: "STUNNED",
	ActionResultSwimming: "SWIMMING",
	ActionResultTargetDead: "TARGET_DEAD",
	ActionResultTargetNotInView: "TARGET_NOT_IN_VIEW",
	ActionResultTargetNotPvpFlagged: "TARGET_NOT_PVP_FLAGGED",
	ActionResultTargetOutOfRange: "TARGET_OUT_OF_RANGE",
	ActionResultTargetTooClose: "TARGET_TOO_CLOSE",
	ActionResultUnevenTerrain: "UNEVEN_TERRAIN",
	ActionResultWeaponswap: "WEAPONSWAP",
	ActionResultWreckingDamage: "WRECKING_DAMAGE",
	ActionResultWrongWeapon: "WRONG_WEAPON",
	ActionResultLinkedCast: "LINKED_CAST",
}

var actionResultByHash map[uint64]ActionResult

func init() {
	actionResultByHash = make(map[uint64]ActionResult, len(actionResultWire))
	for v, wire := range actionResultWire {
		actionResultByHash[xxhash.Sum64String(wire)] = ActionResult(v)
	}
}

// ParseActionResult looks up the wire spelling tok against a table hashed
// with xxhash at package init, rather than a long chain of string
// comparisons.
func ParseActionResult(tok []byte) (ActionResult, bool) {
	v, ok := actionResultByHash[xxhash.Sum64(tok)]
	return v, ok
}

func (v ActionResult) String() string {
	if int(v) < len(actionResultWire) {
		return actionResultWire[v]
	}
	return ""
}

func (v ActionResult) Encode(e *codec.Encoder) { e.Tag(v.String()) }

// IsCritical reports whether v is one of the four critical-hit variants.
func (v ActionResult) IsCritical() bool {
	switch v {
	case ActionResultCriticalDamage, ActionResultCriticalHeal, ActionResultDotTickCritical, ActionResultHotTickCritical:
		return true
	}
	return false
}

type DamageType uint8

const (
	DamageTypeBleed DamageType = iota
	DamageTypeCold
	DamageTypeDisease
	DamageTypeDrown
	DamageTypeEarth
	DamageTypeFire
	DamageTypeGeneric
	DamageTypeMagic
	DamageTypeNone
	DamageTypeOblivion
	DamageTypePhysical
	DamageTypePoison
	DamageTypeShock
	damageTypeCount
)

var damageTypeWire = [damageTypeCount]string{
	DamageTypeBleed: "BLEED",
	DamageTypeCold: "COLD",
	DamageTypeDisease: "DISEASE",
	DamageTypeDrown: "DROWN",
	DamageTypeEarth: "EARTH",
	DamageTypeFire: "FIRE",
	DamageTypeGeneric: "GENERIC",
	DamageTypeMagic: "MAGIC",
	DamageTypeNone: "NONE",
	DamageTypeOblivion: "OBLIVION",
	DamageTypePhysical: "PHYSICAL",
	DamageTypePoison: "POISON",
	DamageTypeShock: "SHOCK",
}

var damageTypeByHash map[uint64]DamageType

func init() {
	damageTypeByHash = make(map[uint64]DamageType, len(damageTypeWire))
	for v, wire := range damageTypeWire {
		damageTypeByHash[xxhash.Sum64String(wire)] = DamageType(v)
	}
}

// ParseDamageType looks up the wire spelling tok against a table hashed
// with xxhash at package init, rather than a long chain of string
// comparisons.
func ParseDamageType(tok []byte) (DamageType, bool) {
	v, ok := damageTypeByHash[xxhash.Sum64(tok)]
	return v, ok
}

func (v DamageType) String() string {
	if int(v) < len(damageTypeWire) {
		return damageTypeWire[v]
	}
	return ""
}

func (v DamageType) Encode(e *codec.Encoder) { e.Tag(v.String()) }

type EquipSlot uint8

const (
	EquipSlotBackupMain EquipSlot = iota
	EquipSlotBackupOff
	EquipSlotBackupPoison
	EquipSlotChest
	EquipSlotClass1
	EquipSlotClass2
	EquipSlotClass3
	EquipSlotCostume
	EquipSlotFeet
	EquipSlotHand
	EquipSlotHead
	EquipSlotLegs
	EquipSlotMainHand
	EquipSlotNeck
	EquipSlotNone
	EquipSlotOffHand
	EquipSlotPoison
	EquipSlotRanged
	EquipSlotRing1
	EquipSlotRing2
	EquipSlotShoulders
	EquipSlotWaist
	EquipSlotWrist
	equipSlotCount
)

var equipSlotWire = [equipSlotCount]string{
	EquipSlotBackupMain: "BACKUP_MAIN",
	EquipSlotBackupOff: "BACKUP_OFF",
	EquipSlotBackupPoison: "BACKUP_POISON",
	EquipSlotChest: "CHEST",
	EquipSlotClass1: "CLASS1",
	EquipSlotClass2: "CLASS2",
	EquipSlotClass3: "CLASS3",
	EquipSlotCostume: "COSTUME",
	EquipSlotFeet: "FEET",
	EquipSlotHand: "HAND",
	EquipSlotHead: "HEAD",
	EquipSlotLegs: "LEGS",
	EquipSlotMainHand: "MAIN_HAND",
	EquipSlotNeck: "NECK",
	EquipSlotNone: "NONE",
	EquipSlotOffHand: "OFF_HAND",
	EquipSlotPoison: "POISON",
	EquipSlotRanged: "RANGED",
	EquipSlotRing1: "RING1",
	EquipSlotRing2: "RING2",
	EquipSlotShoulders: "SHOULDERS",
	EquipSlotWaist: "WAIST",
	EquipSlotWrist: "WRIST",
}

var equipSlotByHash map[uint64]EquipSlot

func init() {
	equipSlotByHash = make(map[uint64]EquipSlot, len(equipSlotWire))
	for v, wire := range equipSlotWire {
		equipSlotByHash[xxhash.Sum64String(wire)] = EquipSlot(v)
	}
}

// ParseEquipSlot looks up the wire spelling tok against a table hashed
// with xxhash at package init, rather than a long chain of string
// comparisons.
func ParseEquipSlot(tok []byte) (EquipSlot, bool) {
	v, ok := equipSlotByHash[xxhash.Sum64(tok)]
	return v, ok
}

func (v EquipSlot) String() string {
	if int(v) < len(equipSlotWire) {
		return equipSlotWire[v]
	}
	return ""
}

func (v EquipSlot) Encode(e *codec.Encoder) { e.Tag(v.String()) }

type StatusEffectType uint8

const (
	StatusEffectTypeBleed StatusEffectType = iota
	StatusEffectTypeBlind
	StatusEffectTypeCharm
	StatusEffectTypeDazed
	StatusEffectTypeDisease
	StatusEffectTypeEnvironment
	StatusEffectTypeFear
	StatusEffectTypeLevitate
	StatusEffectTypeMagic
	StatusEffectTypeMesmerize
	StatusEffectTypeNearsight
	StatusEffectTypeNone
	StatusEffectTypePacify
	StatusEffectTypePoison
	StatusEffectTypePuncture
	StatusEffectTypeRoot
	StatusEffectTypeSilence
	StatusEffectTypeSnare
	StatusEffectTypeStun
	StatusEffectTypeTrauma
	StatusEffectTypeWeakness
	StatusEffectTypeWound
	statusEffectTypeCount
)

var statusEffectTypeWire = [statusEffectTypeCount]string{
	StatusEffectTypeBleed: "BLEED",
	StatusEffectTypeBlind: "BLIND",
	StatusEffectTypeCharm: "CHARM",
	StatusEffectTypeDazed: "DAZED",
	StatusEffectTypeDisease: "DISEASE",
	StatusEffectTypeEnvironment: "ENVIRONMENT",
	StatusEffectTypeFear: "FEAR",
	StatusEffectTypeLevitate: "LEVITATE",
	StatusEffectTypeMagic: "MAGIC",
	StatusEffectTypeMesmerize: "MESMERIZE",
	StatusEffectTypeNearsight: "NEARSIGHT",
	StatusEffectTypeNone: "NONE",
	StatusEffectTypePacify: "PACIFY",
	StatusEffectTypePoison: "POISON",
	StatusEffectTypePuncture: "PUNCTURE",
	StatusEffectTypeRoot: "ROOT",
	StatusEffectTypeSilence: "SILENCE",
	StatusEffectTypeSnare: "SNARE",
	StatusEffectTypeStun: "STUN",
	StatusEffectTypeTrauma: "TRAUMA",
	StatusEffectTypeWeakness: "WEAKNESS",
	StatusEffectTypeWound: "WOUND",
}

var statusEffectTypeByHash map[uint64]StatusEffectType

func init() {
	statusEffectTypeByHash = make(map[uint64]StatusEffectType, len(statusEffectTypeWire))
	for v, wire := range statusEffectTypeWire {
		statusEffectTypeByHash[xxhash.Sum64String(wire)] = StatusEffectType(v)
	}
}

// ParseStatusEffectType looks up the wire spelling tok against a table hashed
// with xxhash at package init, rather than a long chain of string
// comparisons.
func ParseStatusEffectType(tok []byte) (StatusEffectType, bool) {
	v, ok := statusEffectTypeByHash[xxhash.Sum64(tok)]
	return v, ok
}

func (v StatusEffectType) String() string {
	if int(v) < len(statusEffectTypeWire) {
		return statusEffectTypeWire[v]
	}
	return ""
}

func (v StatusEffectType) Encode(e *codec.Encoder) { e.Tag(v.String()) }


func decodeActionResult(d *codec.Decoder) (ActionResult, error) {
	tok, err := d.Tag()
	if err != nil {
		return 0, err
	}
	v, ok := ParseActionResult(tok)
	if !ok {
		return 0, codec.Newf(codec.CodeInvalidToken, "unknown ActionResult %q", tok)
	}
	return v, nil
}

func decodeDamageType(d *codec.Decoder) (DamageType, error) {
	tok, err := d.Tag()
	if err != nil {
		return 0, err
	}
	v, ok := ParseDamageType(tok)
	if !ok {
		return 0, codec.Newf(codec.CodeInvalidToken, "unknown DamageType %q", tok)
	}
	return v, nil
}

func decodeEquipSlot(d *codec.Decoder) (EquipSlot, error) {
	tok, err := d.Tag()
	if err != nil {
		return 0, err
	}
	v, ok := ParseEquipSlot(tok)
	if !ok {
		return 0, codec.Newf(codec.CodeInvalidToken, "unknown EquipSlot %q", tok)
	}
	return v, nil
}

func decodeStatusEffectType(d *codec.Decoder) (StatusEffectType, error) {
	tok, err := d.Tag()
	if err != nil {
		return 0, err
	}
	v, ok := ParseStatusEffectType(tok)
	if !ok {
		return 0, codec.Newf(codec.CodeInvalidToken, "unknown StatusEffectType %q", tok)
	}
	return v, nil
}
