// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package event

import "github.com/KirkDiggler/esoparser/codec"

// AbilityInfo documents one ability referenced elsewhere by AbilityId.
//
// ABILITY_INFO - abilityId, name, iconPath, interruptible, blockable
type AbilityInfo struct {
	AbilityId     AbilityId
	Name          string
	IconPath      string
	Interruptible bool
	Blockable     bool
}

func (b *AbilityInfo) Kind() string { return "ABILITY_INFO" }

func (b *AbilityInfo) decodeFields(d *codec.Decoder) error {
	var err error
	if b.AbilityId, err = decodeAbilityId(d); err != nil {
		return err
	}
	if b.Name, err = d.String(); err != nil {
		return err
	}
	if b.IconPath, err = d.String(); err != nil {
		return err
	}
	if b.Interruptible, err = d.Bool(); err != nil {
		return err
	}
	if b.Blockable, err = d.Bool(); err != nil {
		return err
	}
	return nil
}

func (b *AbilityInfo) encodeFields(e *codec.Encoder) {
	b.AbilityId.Encode(e)
	e.String(b.Name)
	e.String(b.IconPath)
	e.Bool(b.Interruptible)
	e.Bool(b.Blockable)
}

// BeginCast is emitted when a unit starts casting an ability.
//
// BEGIN_CAST - durationMS, channeled, castTrackId, abilityId, <sourceUnitState>, <targetUnitState>
type BeginCast struct {
	DurationMs uint64
	Channeled  bool
	CastId     TrackId
	AbilityId  AbilityId
	SourceUnit UnitState
	TargetUnit TargetUnitState
}

func (b *BeginCast) Kind() string { return "BEGIN_CAST" }

func (b *BeginCast) decodeFields(d *codec.Decoder) error {
	var err error
	if b.DurationMs, err = d.Uint64(); err != nil {
		return err
	}
	if b.Channeled, err = d.Bool(); err != nil {
		return err
	}
	if b.CastId, err = decodeTrackId(d); err != nil {
		return err
	}
	if b.AbilityId, err = decodeAbilityId(d); err != nil {
		return err
	}
	if b.SourceUnit, err = decodeUnitState(d); err != nil {
		return err
	}
	if b.TargetUnit, err = decodeTargetUnitState(d); err != nil {
		return err
	}
	return nil
}

func (b *BeginCast) encodeFields(e *codec.Encoder) {
	e.Uint64(b.DurationMs)
	e.Bool(b.Channeled)
	b.CastId.Encode(e)
	b.AbilityId.Encode(e)
	b.SourceUnit.Encode(e)
	b.TargetUnit.Encode(e)
}

// Target resolves the "same as source" sentinel against SourceUnit.
func (b *BeginCast) Target() UnitState { return b.TargetUnit.Get(b.SourceUnit) }

// BeginCombat marks the start of an encounter. It carries no fields.
type BeginCombat struct{}

func (b *BeginCombat) Kind() string                          { return "BEGIN_COMBAT" }
func (b *BeginCombat) decodeFields(d *codec.Decoder) error    { return nil }
func (b *BeginCombat) encodeFields(e *codec.Encoder)          {}

// BeginLog opens a log file.
//
// BEGIN_LOG - timeSinceEpochMS, logVersion, realmName, language, gameVersion
type BeginLog struct {
	EpochMs     uint64
	LogVersion  string
	RealmName   string
	Language    string
	GameVersion string
}

func (b *BeginLog) Kind() string { return "BEGIN_LOG" }

func (b *BeginLog) decodeFields(d *codec.Decoder) error {
	var err error
	if b.EpochMs, err = d.Uint64(); err != nil {
		return err
	}
	if b.LogVersion, err = d.String(); err != nil {
		return err
	}
	if b.RealmName, err = d.String(); err != nil {
		return err
	}
	if b.Language, err = d.String(); err != nil {
		return err
	}
	if b.GameVersion, err = d.String(); err != nil {
		return err
	}
	return nil
}

func (b *BeginLog) encodeFields(e *codec.Encoder) {
	e.Uint64(b.EpochMs)
	e.String(b.LogVersion)
	e.String(b.RealmName)
	e.String(b.Language)
	e.String(b.GameVersion)
}

// BeginTrial marks the start of a scored trial attempt.
//
// BEGIN_TRIAL - id, startTimeMS
type BeginTrial struct {
	Id        Id
	StartTime uint64
}

func (b *BeginTrial) Kind() string { return "BEGIN_TRIAL" }

func (b *BeginTrial) decodeFields(d *codec.Decoder) error {
	var err error
	if b.Id, err = decodeId(d); err != nil {
		return err
	}
	if b.StartTime, err = d.Uint64(); err != nil {
		return err
	}
	return nil
}

func (b *BeginTrial) encodeFields(e *codec.Encoder) {
	b.Id.Encode(e)
	e.Uint64(b.StartTime)
}

// CombatEvent is the workhorse event: one damage, heal, or status tick.
//
// COMBAT_EVENT - actionResult, damageType, powerType, hitValue, overflow, castTrackId, abilityId, <sourceUnitState>, <targetUnitState>
type CombatEvent struct {
	ActionResult ActionResult
	DamageType   DamageType
	PowerType    PowerType
	HitValue     uint32
	Overflow     uint32
	CastId       TrackId
	AbilityId    AbilityId
	SourceUnit   UnitState
	TargetUnit   TargetUnitState
}

func (b *CombatEvent) Kind() string { return "COMBAT_EVENT" }

func (b *CombatEvent) decodeFields(d *codec.Decoder) error {
	var err error
	if b.ActionResult, err = decodeActionResult(d); err != nil {
		return err
	}
	if b.DamageType, err = decodeDamageType(d); err != nil {
		return err
	}
	if b.PowerType, err = decodePowerType(d); err != nil {
		return err
	}
	if b.HitValue, err = d.Uint32(); err != nil {
		return err
	}
	if b.Overflow, err = d.Uint32(); err != nil {
		return err
	}
	if b.CastId, err = decodeTrackId(d); err != nil {
		return err
	}
	if b.AbilityId, err = decodeAbilityId(d); err != nil {
		return err
	}
	if b.SourceUnit, err = decodeUnitState(d); err != nil {
		return err
	}
	if b.TargetUnit, err = decodeTargetUnitState(d); err != nil {
		return err
	}
	return nil
}

func (b *CombatEvent) encodeFields(e *codec.Encoder) {
	b.ActionResult.Encode(e)
	b.DamageType.Encode(e)
	b.PowerType.Encode(e)
	e.Uint32(b.HitValue)
	e.Uint32(b.Overflow)
	b.CastId.Encode(e)
	b.AbilityId.Encode(e)
	b.SourceUnit.Encode(e)
	b.TargetUnit.Encode(e)
}

// Target resolves the "same as source" sentinel against SourceUnit.
func (b *CombatEvent) Target() UnitState { return b.TargetUnit.Get(b.SourceUnit) }

// EffectChanged reports a buff/debuff instance gaining, updating, or
// fading.
//
// EFFECT_CHANGED - changeType, stackCount, castTrackId, abilityId, <sourceUnitState>, <targetUnitState>, playerInitiatedRemoveCastTrackId:optional
type EffectChanged struct {
	ChangeType                   EffectChangeType
	StackCount                   StackCount
	CastId                       TrackId
	AbilityId                    AbilityId
	SourceUnit                   UnitState
	TargetUnit                   TargetUnitState
	PlayerInitiatedRemoveCastId  *TrackId
}

func (b *EffectChanged) Kind() string { return "EFFECT_CHANGED" }

func (b *EffectChanged) decodeFields(d *codec.Decoder) error {
	var err error
	if b.ChangeType, err = decodeEffectChangeType(d); err != nil {
		return err
	}
	if b.StackCount, err = decodeStackCount(d); err != nil {
		return err
	}
	if b.CastId, err = decodeTrackId(d); err != nil {
		return err
	}
	if b.AbilityId, err = decodeAbilityId(d); err != nil {
		return err
	}
	if b.SourceUnit, err = decodeUnitState(d); err != nil {
		return err
	}
	if b.TargetUnit, err = decodeTargetUnitState(d); err != nil {
		return err
	}
	present, err := d.Optional()
	if err != nil {
		return err
	}
	if present {
		id, err := decodeTrackId(d)
		if err != nil {
			return err
		}
		b.PlayerInitiatedRemoveCastId = &id
	}
	return nil
}

func (b *EffectChanged) encodeFields(e *codec.Encoder) {
	b.ChangeType.Encode(e)
	b.StackCount.Encode(e)
	b.CastId.Encode(e)
	b.AbilityId.Encode(e)
	b.SourceUnit.Encode(e)
	b.TargetUnit.Encode(e)
	if b.PlayerInitiatedRemoveCastId != nil {
		b.PlayerInitiatedRemoveCastId.Encode(e)
	}
}

// Target resolves the "same as source" sentinel against SourceUnit.
func (b *EffectChanged) Target() UnitState { return b.TargetUnit.Get(b.SourceUnit) }

// EffectInfo documents one status effect referenced elsewhere by
// AbilityId.
//
// EFFECT_INFO - abilityId, effectType, statusEffectType, effectBarDisplayBehaviour, grantsSynergyAbilityId:optional
type EffectInfo struct {
	AbilityId            AbilityId
	EffectType            EffectType
	StatusEffectType      StatusEffectType
	DisplayBehaviour      DisplayBehaviour
	GrantsSynergyAbility  *AbilityId
}

func (b *EffectInfo) Kind() string { return "EFFECT_INFO" }

func (b *EffectInfo) decodeFields(d *codec.Decoder) error {
	var err error
	if b.AbilityId, err = decodeAbilityId(d); err != nil {
		return err
	}
	if b.EffectType, err = decodeEffectType(d); err != nil {
		return err
	}
	if b.StatusEffectType, err = decodeStatusEffectType(d); err != nil {
		return err
	}
	if b.DisplayBehaviour, err = decodeDisplayBehaviour(d); err != nil {
		return err
	}
	present, err := d.Optional()
	if err != nil {
		return err
	}
	if present {
		id, err := decodeAbilityId(d)
		if err != nil {
			return err
		}
		b.GrantsSynergyAbility = &id
	}
	return nil
}

func (b *EffectInfo) encodeFields(e *codec.Encoder) {
	b.AbilityId.Encode(e)
	b.EffectType.Encode(e)
	b.StatusEffectType.Encode(e)
	b.DisplayBehaviour.Encode(e)
	if b.GrantsSynergyAbility != nil {
		b.GrantsSynergyAbility.Encode(e)
	}
}

// EndCast is emitted when a cast completes, fails, or is interrupted.
//
// END_CAST - endReason, castTrackId, interruptingAbilityId:optional, interruptingUnitId:optional, extra:optional
//
// The trailing field is undocumented upstream; it is carried through
// unchanged for round-trip fidelity rather than interpreted.
type EndCast struct {
	Reason                EndCastReason
	CastId                TrackId
	InterruptingAbilityId *AbilityId
	InterruptingUnitId    *UnitId
	Extra                 *Id
}

func (b *EndCast) Kind() string { return "END_CAST" }

func (b *EndCast) decodeFields(d *codec.Decoder) error {
	var err error
	if b.Reason, err = decodeEndCastReason(d); err != nil {
		return err
	}
	if b.CastId, err = decodeTrackId(d); err != nil {
		return err
	}
	if present, err := d.Optional(); err != nil {
		return err
	} else if present {
		id, err := decodeAbilityId(d)
		if err != nil {
			return err
		}
		b.InterruptingAbilityId = &id
	}
	if present, err := d.Optional(); err != nil {
		return err
	} else if present {
		id, err := decodeUnitId(d)
		if err != nil {
			return err
		}
		b.InterruptingUnitId = &id
	}
	if present, err := d.Optional(); err != nil {
		return err
	} else if present {
		id, err := decodeId(d)
		if err != nil {
			return err
		}
		b.Extra = &id
	}
	return nil
}

func (b *EndCast) encodeFields(e *codec.Encoder) {
	b.Reason.Encode(e)
	b.CastId.Encode(e)

	// A trailing run of absent optionals contributes no tokens; a star
	// is only needed to hold the place of an absent field that precedes
	// a present later one.
	switch {
	case b.Extra != nil:
		if b.InterruptingAbilityId != nil {
			b.InterruptingAbilityId.Encode(e)
		} else {
			e.Star()
		}
		if b.InterruptingUnitId != nil {
			b.InterruptingUnitId.Encode(e)
		} else {
			e.Star()
		}
		b.Extra.Encode(e)
	case b.InterruptingUnitId != nil:
		if b.InterruptingAbilityId != nil {
			b.InterruptingAbilityId.Encode(e)
		} else {
			e.Star()
		}
		b.InterruptingUnitId.Encode(e)
	case b.InterruptingAbilityId != nil:
		b.InterruptingAbilityId.Encode(e)
	}
}

// EndCombat marks the end of an encounter. It carries no fields.
type EndCombat struct{}

func (b *EndCombat) Kind() string                       { return "END_COMBAT" }
func (b *EndCombat) decodeFields(d *codec.Decoder) error { return nil }
func (b *EndCombat) encodeFields(e *codec.Encoder)       {}

// EndLog closes a log file. It carries no fields.
type EndLog struct{}

func (b *EndLog) Kind() string                       { return "END_LOG" }
func (b *EndLog) decodeFields(d *codec.Decoder) error { return nil }
func (b *EndLog) encodeFields(e *codec.Encoder)       {}

// EndTrial closes a scored trial attempt.
//
// END_TRIAL - id, durationMS, success, finalScore, finalVitalityBonus
type EndTrial struct {
	Id                  Id
	DurationMs          uint64
	Success             bool
	FinalScore          uint32
	FinalVitalityBonus  uint32
}

func (b *EndTrial) Kind() string { return "END_TRIAL" }

func (b *EndTrial) decodeFields(d *codec.Decoder) error {
	var err error
	if b.Id, err = decodeId(d); err != nil {
		return err
	}
	if b.DurationMs, err = d.Uint64(); err != nil {
		return err
	}
	if b.Success, err = d.Bool(); err != nil {
		return err
	}
	if b.FinalScore, err = d.Uint32(); err != nil {
		return err
	}
	if b.FinalVitalityBonus, err = d.Uint32(); err != nil {
		return err
	}
	return nil
}

func (b *EndTrial) encodeFields(e *codec.Encoder) {
	b.Id.Encode(e)
	e.Uint64(b.DurationMs)
	e.Bool(b.Success)
	e.Uint32(b.FinalScore)
	e.Uint32(b.FinalVitalityBonus)
}

// HealthRegen reports a unit's periodic passive health regeneration.
//
// HEALTH_REGEN - effectiveRegen, <unitState>
type HealthRegen struct {
	EffectiveRegen uint32
	Unit           UnitState
}

func (b *HealthRegen) Kind() string { return "HEALTH_REGEN" }

func (b *HealthRegen) decodeFields(d *codec.Decoder) error {
	var err error
	if b.EffectiveRegen, err = d.Uint32(); err != nil {
		return err
	}
	if b.Unit, err = decodeUnitState(d); err != nil {
		return err
	}
	return nil
}

func (b *HealthRegen) encodeFields(e *codec.Encoder) {
	e.Uint32(b.EffectiveRegen)
	b.Unit.Encode(e)
}

// MapChanged reports the current map. The log also spells this tag
// MAP_INFO; both are accepted on decode, MapChanged is always written.
//
// MAP_INFO - id, name, texturePath
type MapChanged struct {
	Id          Id
	Name        string
	TexturePath string
}

func (b *MapChanged) Kind() string { return "MAP_CHANGED" }

func (b *MapChanged) decodeFields(d *codec.Decoder) error {
	var err error
	if b.Id, err = decodeId(d); err != nil {
		return err
	}
	if b.Name, err = d.String(); err != nil {
		return err
	}
	if b.TexturePath, err = d.String(); err != nil {
		return err
	}
	return nil
}

func (b *MapChanged) encodeFields(e *codec.Encoder) {
	b.Id.Encode(e)
	e.String(b.Name)
	e.String(b.TexturePath)
}

// LongTermEffect pairs a long-term (passed-down) buff's ability with
// its current stack depth, as carried by PlayerInfo.
type LongTermEffect struct {
	Ability    AbilityId
	StackCount StackCount
}

// PlayerInfo is a periodic snapshot of one player's full build.
//
// PLAYER_INFO - unitId, [longTermEffectAbilityId,...], [longTermEffectStackCounts,...], [<equipmentInfo>,...], [primaryAbilityId,...], [backupAbilityId,...]
//
// The two long-term-effect lists travel as parallel arrays on the wire;
// this type zips them into pairs on decode and unzips them back on
// encode. A length mismatch between the two arrays (never observed,
// but not ruled out by the grammar) truncates to the shorter length.
type PlayerInfo struct {
	UnitId            UnitId
	LongTermEffects   []LongTermEffect
	EquipmentInfo     []EquipmentInfo
	PrimaryAbilities  []AbilityId
	BackupAbilities   []AbilityId
}

func (b *PlayerInfo) Kind() string { return "PLAYER_INFO" }

func decodeAbilityIdList(d *codec.Decoder) ([]AbilityId, error) {
	ld, err := d.BeginList()
	if err != nil {
		return nil, err
	}
	var out []AbilityId
	for !ld.Depleted() {
		id, err := decodeAbilityId(ld)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

func decodeStackCountList(d *codec.Decoder) ([]StackCount, error) {
	ld, err := d.BeginList()
	if err != nil {
		return nil, err
	}
	var out []StackCount
	for !ld.Depleted() {
		sc, err := decodeStackCount(ld)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, nil
}

func decodeEquipmentInfoList(d *codec.Decoder) ([]EquipmentInfo, error) {
	ld, err := d.BeginList()
	if err != nil {
		return nil, err
	}
	var out []EquipmentInfo
	for !ld.Depleted() {
		info, err := decodeEquipmentInfo(ld)
		if err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	return out, nil
}

func (b *PlayerInfo) decodeFields(d *codec.Decoder) error {
	var err error
	if b.UnitId, err = decodeUnitId(d); err != nil {
		return err
	}
	abilities, err := decodeAbilityIdList(d)
	if err != nil {
		return err
	}
	stackCounts, err := decodeStackCountList(d)
	if err != nil {
		return err
	}
	n := len(abilities)
	if len(stackCounts) < n {
		n = len(stackCounts)
	}
	b.LongTermEffects = make([]LongTermEffect, n)
	for i := 0; i < n; i++ {
		b.LongTermEffects[i] = LongTermEffect{Ability: abilities[i], StackCount: stackCounts[i]}
	}
	if b.EquipmentInfo, err = decodeEquipmentInfoList(d); err != nil {
		return err
	}
	if b.PrimaryAbilities, err = decodeAbilityIdList(d); err != nil {
		return err
	}
	if b.BackupAbilities, err = decodeAbilityIdList(d); err != nil {
		return err
	}
	return nil
}

func (b *PlayerInfo) encodeFields(e *codec.Encoder) {
	b.UnitId.Encode(e)

	e.BeginList()
	for _, lte := range b.LongTermEffects {
		lte.Ability.Encode(e)
	}
	e.EndList()

	e.BeginList()
	for _, lte := range b.LongTermEffects {
		lte.StackCount.Encode(e)
	}
	e.EndList()

	e.BeginList()
	for _, info := range b.EquipmentInfo {
		info.Encode(e)
	}
	e.EndList()

	e.BeginList()
	for _, id := range b.PrimaryAbilities {
		id.Encode(e)
	}
	e.EndList()

	e.BeginList()
	for _, id := range b.BackupAbilities {
		id.Encode(e)
	}
	e.EndList()
}

// TrialInit reports the current trial's scoring state at log-open time.
//
// TRIAL_INIT - id, inProgress, completed, startTimeMS, durationMS, success, finalScore
type TrialInit struct {
	Id          Id
	InProgress  bool
	Completed   bool
	StartTime   uint64
	DurationMs  uint64
	Success     bool
	FinalScore  uint32
}

func (b *TrialInit) Kind() string { return "TRIAL_INIT" }

func (b *TrialInit) decodeFields(d *codec.Decoder) error {
	var err error
	if b.Id, err = decodeId(d); err != nil {
		return err
	}
	if b.InProgress, err = d.Bool(); err != nil {
		return err
	}
	if b.Completed, err = d.Bool(); err != nil {
		return err
	}
	if b.StartTime, err = d.Uint64(); err != nil {
		return err
	}
	if b.DurationMs, err = d.Uint64(); err != nil {
		return err
	}
	if b.Success, err = d.Bool(); err != nil {
		return err
	}
	if b.FinalScore, err = d.Uint32(); err != nil {
		return err
	}
	return nil
}

func (b *TrialInit) encodeFields(e *codec.Encoder) {
	b.Id.Encode(e)
	e.Bool(b.InProgress)
	e.Bool(b.Completed)
	e.Uint64(b.StartTime)
	e.Uint64(b.DurationMs)
	e.Bool(b.Success)
	e.Uint32(b.FinalScore)
}

// UnitAdded introduces a unit (player, monster, or object) into the log.
//
// UNIT_ADDED - unitId, unitType, isLocalPlayer, playerPerSessionId, monsterId, isBoss, classId, raceId, name, displayName, characterId, level, championPoints, ownerUnitId, reaction, isGroupedWithLocalPlayer
type UnitAdded struct {
	UnitId                   UnitId
	UnitType                 UnitType
	IsLocalPlayer            bool
	PlayerPerSessionId       Id
	MonsterId                MonsterId
	IsBoss                   bool
	ClassId                  ClassId
	RaceId                   RaceId
	Name                     string
	DisplayName              string
	CharacterId              Id
	Level                    uint32
	ChampionPoints           uint32
	OwnerUnitId              UnitId
	Reaction                 UnitReactionType
	IsGroupedWithLocalPlayer bool
}

func (b *UnitAdded) Kind() string { return "UNIT_ADDED" }

func (b *UnitAdded) decodeFields(d *codec.Decoder) error {
	var err error
	if b.UnitId, err = decodeUnitId(d); err != nil {
		return err
	}
	if b.UnitType, err = decodeUnitType(d); err != nil {
		return err
	}
	if b.IsLocalPlayer, err = d.Bool(); err != nil {
		return err
	}
	if b.PlayerPerSessionId, err = decodeId(d); err != nil {
		return err
	}
	if b.MonsterId, err = decodeMonsterId(d); err != nil {
		return err
	}
	if b.IsBoss, err = d.Bool(); err != nil {
		return err
	}
	if b.ClassId, err = decodeClassId(d); err != nil {
		return err
	}
	if b.RaceId, err = decodeRaceId(d); err != nil {
		return err
	}
	if b.Name, err = d.String(); err != nil {
		return err
	}
	if b.DisplayName, err = d.String(); err != nil {
		return err
	}
	if b.CharacterId, err = decodeId(d); err != nil {
		return err
	}
	if b.Level, err = d.Uint32(); err != nil {
		return err
	}
	if b.ChampionPoints, err = d.Uint32(); err != nil {
		return err
	}
	if b.OwnerUnitId, err = decodeUnitId(d); err != nil {
		return err
	}
	if b.Reaction, err = decodeUnitReactionType(d); err != nil {
		return err
	}
	if b.IsGroupedWithLocalPlayer, err = d.Bool(); err != nil {
		return err
	}
	return nil
}

func (b *UnitAdded) encodeFields(e *codec.Encoder) {
	b.UnitId.Encode(e)
	b.UnitType.Encode(e)
	e.Bool(b.IsLocalPlayer)
	b.PlayerPerSessionId.Encode(e)
	b.MonsterId.Encode(e)
	e.Bool(b.IsBoss)
	b.ClassId.Encode(e)
	b.RaceId.Encode(e)
	e.String(b.Name)
	e.String(b.DisplayName)
	b.CharacterId.Encode(e)
	e.Uint32(b.Level)
	e.Uint32(b.ChampionPoints)
	b.OwnerUnitId.Encode(e)
	b.Reaction.Encode(e)
	e.Bool(b.IsGroupedWithLocalPlayer)
}

// UnitChanged reports a mutation of a previously added unit's identity
// fields (level, name, group, reaction, and so on).
//
// UNIT_CHANGED - unitId, classId, raceId, name, displayName, characterId, level, championPoints, ownerUnitId, reaction, isGroupedWithLocalPlayer
type UnitChanged struct {
	UnitId                   UnitId
	ClassId                  ClassId
	RaceId                   RaceId
	Name                     string
	DisplayName              string
	CharacterId              Id
	Level                    uint32
	ChampionPoints           uint32
	OwnerId                  Id
	Reaction                 UnitReactionType
	IsGroupedWithLocalPlayer bool
}

func (b *UnitChanged) Kind() string { return "UNIT_CHANGED" }

func (b *UnitChanged) decodeFields(d *codec.Decoder) error {
	var err error
	if b.UnitId, err = decodeUnitId(d); err != nil {
		return err
	}
	if b.ClassId, err = decodeClassId(d); err != nil {
		return err
	}
	if b.RaceId, err = decodeRaceId(d); err != nil {
		return err
	}
	if b.Name, err = d.String(); err != nil {
		return err
	}
	if b.DisplayName, err = d.String(); err != nil {
		return err
	}
	if b.CharacterId, err = decodeId(d); err != nil {
		return err
	}
	if b.Level, err = d.Uint32(); err != nil {
		return err
	}
	if b.ChampionPoints, err = d.Uint32(); err != nil {
		return err
	}
	if b.OwnerId, err = decodeId(d); err != nil {
		return err
	}
	if b.Reaction, err = decodeUnitReactionType(d); err != nil {
		return err
	}
	if b.IsGroupedWithLocalPlayer, err = d.Bool(); err != nil {
		return err
	}
	return nil
}

func (b *UnitChanged) encodeFields(e *codec.Encoder) {
	b.UnitId.Encode(e)
	b.ClassId.Encode(e)
	b.RaceId.Encode(e)
	e.String(b.Name)
	e.String(b.DisplayName)
	b.CharacterId.Encode(e)
	e.Uint32(b.Level)
	e.Uint32(b.ChampionPoints)
	b.OwnerId.Encode(e)
	b.Reaction.Encode(e)
	e.Bool(b.IsGroupedWithLocalPlayer)
}

// UnitRemoved retires a unit from the log.
//
// UNIT_REMOVED - unitId
type UnitRemoved struct {
	UnitId UnitId
}

func (b *UnitRemoved) Kind() string { return "UNIT_REMOVED" }

func (b *UnitRemoved) decodeFields(d *codec.Decoder) error {
	var err error
	b.UnitId, err = decodeUnitId(d)
	return err
}

func (b *UnitRemoved) encodeFields(e *codec.Encoder) {
	b.UnitId.Encode(e)
}

// ZoneChanged reports the current zone. The log also spells this tag
// ZONE_INFO; both are accepted on decode, ZoneChanged is always
// written.
//
// ZONE_INFO - id, name, dungeonDifficulty
type ZoneChanged struct {
	Id                Id
	Name              string
	DungeonDifficulty DungeonDifficulty
}

func (b *ZoneChanged) Kind() string { return "ZONE_CHANGED" }

func (b *ZoneChanged) decodeFields(d *codec.Decoder) error {
	var err error
	if b.Id, err = decodeId(d); err != nil {
		return err
	}
	if b.Name, err = d.String(); err != nil {
		return err
	}
	if b.DungeonDifficulty, err = decodeDungeonDifficulty(d); err != nil {
		return err
	}
	return nil
}

func (b *ZoneChanged) encodeFields(e *codec.Encoder) {
	b.Id.Encode(e)
	e.String(b.Name)
	b.DungeonDifficulty.Encode(e)
}
