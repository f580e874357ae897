// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package state

import "github.com/KirkDiggler/esoparser/event"

// Unit is the projected, continuously-updated view of one actor seen
// in the log: a player, monster, or object.
type Unit struct {
	UnitType    event.UnitType
	State       event.UnitState
	Reaction    event.UnitReactionType
	Equipment   map[event.EquipSlot]event.EquipmentInfo
	Name        string
	DisplayName string
	MonsterId   event.MonsterId
	RaceId      event.RaceId
	ClassId     event.ClassId
	IsBoss      bool
}

func newUnit(e *event.UnitAdded) *Unit {
	return &Unit{
		UnitType:    e.UnitType,
		State:       event.UnitState{UnitId: e.UnitId},
		Reaction:    e.Reaction,
		Equipment:   make(map[event.EquipSlot]event.EquipmentInfo),
		Name:        e.Name,
		DisplayName: e.DisplayName,
		MonsterId:   e.MonsterId,
		RaceId:      e.RaceId,
		ClassId:     e.ClassId,
		IsBoss:      e.IsBoss,
	}
}
