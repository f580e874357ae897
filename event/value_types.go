// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package event

import (
	"math"

	"github.com/KirkDiggler/esoparser/codec"
)

// Pos is a unit's position and facing at the moment of the event.
type Pos struct {
	X        float32
	Y        float32
	Rotation float32
}

// Distance returns the planar Euclidean distance between two positions,
// ignoring rotation.
func (p Pos) Distance(other Pos) float32 {
	x := p.X - other.X
	y := p.Y - other.Y
	return float32(math.Sqrt(float64(x*x + y*y)))
}

func decodePos(d *codec.Decoder) (Pos, error) {
	x, err := d.Float32()
	if err != nil {
		return Pos{}, err
	}
	y, err := d.Float32()
	if err != nil {
		return Pos{}, err
	}
	r, err := d.Float32()
	if err != nil {
		return Pos{}, err
	}
	return Pos{X: x, Y: y, Rotation: r}, nil
}

func (p Pos) Encode(e *codec.Encoder) {
	e.Float32(p.X)
	e.Float32(p.Y)
	e.Float32(p.Rotation)
}

// CurrentMax is a current/max pair, the wire shape for health, magicka,
// stamina, ultimate, and werewolf transformation meters.
type CurrentMax struct {
	Current uint64
	Max     uint64
}

func decodeCurrentMax(d *codec.Decoder) (CurrentMax, error) {
	cur, max, err := d.Pair()
	if err != nil {
		return CurrentMax{}, err
	}
	return CurrentMax{Current: cur, Max: max}, nil
}

func (c CurrentMax) Encode(e *codec.Encoder) { e.Pair(c.Current, c.Max) }

// UnitState is a snapshot of a unit's resources and position, carried
// by COMBAT_EVENT's source and target fields.
//
// <unitState> unitId, health/max, magicka/max, stamina/max, ultimate/max,
// werewolf/max, shield, x, y, headingRadians
type UnitState struct {
	UnitId   UnitId
	Health   CurrentMax
	Magicka  CurrentMax
	Stamina  CurrentMax
	Ultimate CurrentMax
	Werewolf CurrentMax
	Shield   uint32
	Pos      Pos
}

func decodeUnitState(d *codec.Decoder) (UnitState, error) {
	var u UnitState
	var err error
	if u.UnitId, err = decodeUnitId(d); err != nil {
		return UnitState{}, err
	}
	if u.Health, err = decodeCurrentMax(d); err != nil {
		return UnitState{}, err
	}
	if u.Magicka, err = decodeCurrentMax(d); err != nil {
		return UnitState{}, err
	}
	if u.Stamina, err = decodeCurrentMax(d); err != nil {
		return UnitState{}, err
	}
	if u.Ultimate, err = decodeCurrentMax(d); err != nil {
		return UnitState{}, err
	}
	if u.Werewolf, err = decodeCurrentMax(d); err != nil {
		return UnitState{}, err
	}
	if u.Shield, err = d.Uint32(); err != nil {
		return UnitState{}, err
	}
	if u.Pos, err = decodePos(d); err != nil {
		return UnitState{}, err
	}
	return u, nil
}

func (u UnitState) Encode(e *codec.Encoder) {
	u.UnitId.Encode(e)
	u.Health.Encode(e)
	u.Magicka.Encode(e)
	u.Stamina.Encode(e)
	u.Ultimate.Encode(e)
	u.Werewolf.Encode(e)
	e.Uint32(u.Shield)
	u.Pos.Encode(e)
}

// TargetUnitState is a COMBAT_EVENT target field: either a full
// UnitState, or the literal token "*" meaning "same as source". Get
// resolves the sentinel against the event's source state.
type TargetUnitState struct {
	state   UnitState
	present bool
}

func decodeTargetUnitState(d *codec.Decoder) (TargetUnitState, error) {
	present, err := d.Optional()
	if err != nil {
		return TargetUnitState{}, err
	}
	if !present {
		return TargetUnitState{}, nil
	}
	u, err := decodeUnitState(d)
	if err != nil {
		return TargetUnitState{}, err
	}
	return TargetUnitState{state: u, present: true}, nil
}

func (t TargetUnitState) Encode(e *codec.Encoder) {
	if !t.present {
		e.Star()
		return
	}
	t.state.Encode(e)
}

// Get returns the target's own state if one was recorded on the wire,
// otherwise fallback (the source unit's state).
func (t TargetUnitState) Get(fallback UnitState) UnitState {
	if t.present {
		return t.state
	}
	return fallback
}

// EquipmentInfo describes one piece of gear in a PLAYER_INFO event's
// equipment list.
//
// <equipmentInfo> slot, id, isCP, level, trait, displayQuality, setId,
// enchantType, isEnchantCP, enchantLevel, enchantQuality
type EquipmentInfo struct {
	Slot           EquipSlot
	Id             Id
	IsCP           bool
	Level          Level
	Trait          Trait
	DisplayQuality DisplayQuality
	SetId          SetId
	EnchantType    EnchantType
	IsEnchantCP    bool
	EnchantLevel   Level
	EnchantQuality DisplayQuality
}

func decodeEquipmentInfo(d *codec.Decoder) (EquipmentInfo, error) {
	ld, err := d.BeginList()
	if err != nil {
		return EquipmentInfo{}, err
	}
	var info EquipmentInfo
	if info.Slot, err = decodeEquipSlot(ld); err != nil {
		return EquipmentInfo{}, err
	}
	if info.Id, err = decodeId(ld); err != nil {
		return EquipmentInfo{}, err
	}
	if info.IsCP, err = ld.Bool(); err != nil {
		return EquipmentInfo{}, err
	}
	if info.Level, err = decodeLevel(ld); err != nil {
		return EquipmentInfo{}, err
	}
	if info.Trait, err = decodeTrait(ld); err != nil {
		return EquipmentInfo{}, err
	}
	if info.DisplayQuality, err = decodeDisplayQuality(ld); err != nil {
		return EquipmentInfo{}, err
	}
	if info.SetId, err = decodeSetId(ld); err != nil {
		return EquipmentInfo{}, err
	}
	if info.EnchantType, err = decodeEnchantType(ld); err != nil {
		return EquipmentInfo{}, err
	}
	if info.IsEnchantCP, err = ld.Bool(); err != nil {
		return EquipmentInfo{}, err
	}
	if info.EnchantLevel, err = decodeLevel(ld); err != nil {
		return EquipmentInfo{}, err
	}
	if info.EnchantQuality, err = decodeDisplayQuality(ld); err != nil {
		return EquipmentInfo{}, err
	}
	if err := ld.Finish(); err != nil {
		return EquipmentInfo{}, err
	}
	return info, nil
}

func (info EquipmentInfo) Encode(e *codec.Encoder) {
	e.BeginList()
	info.Slot.Encode(e)
	info.Id.Encode(e)
	e.Bool(info.IsCP)
	info.Level.Encode(e)
	info.Trait.Encode(e)
	info.DisplayQuality.Encode(e)
	info.SetId.Encode(e)
	info.EnchantType.Encode(e)
	e.Bool(info.IsEnchantCP)
	info.EnchantLevel.Encode(e)
	info.EnchantQuality.Encode(e)
	e.EndList()
}
