// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package state_test

import (
	"strconv"
	"testing"

	"github.com/KirkDiggler/esoparser/codec"
	"github.com/KirkDiggler/esoparser/event"
	"github.com/KirkDiggler/esoparser/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeLine builds an event.Event from a wire line. Several fixtures below
// need an EffectChanged's SourceUnit/TargetUnit, whose TargetUnitState shape
// is only buildable through the codec, so those fixtures go through the
// same path a real caller would use; the others are plain struct literals.
func decodeLine(t *testing.T, line string) event.Event {
	t.Helper()
	d := codec.NewDecoder([]byte(line))
	var ev event.Event
	require.NoError(t, ev.Decode(d))
	require.NoError(t, d.Finish())
	return ev
}

// unitStateLine renders a full <unitState> token sequence for unitID with
// every resource pair empty and position at the origin.
func unitStateLine(unitID event.UnitId) string {
	return strconv.FormatUint(uint64(unitID), 10) + ",0/0,0/0,0/0,0/0,0/0,0,0,0,0"
}

func TestState_New_HasWorldUnit(t *testing.T) {
	s := state.New()
	world, ok := s.Entities()[state.WorldUnitId]
	require.True(t, ok)
	assert.Equal(t, "World", world.Name)
	assert.Equal(t, event.UnitReactionTypeHostile, world.Reaction)
}

func TestState_UnitAdded(t *testing.T) {
	s := state.New()
	s.HandleEvent(event.Event{Timestamp: 42, Body: &event.UnitAdded{
		UnitId:   7,
		UnitType: event.UnitTypePlayer,
		IsBoss:   false,
	}})

	u, ok := s.Entities()[7]
	require.True(t, ok)
	assert.Equal(t, event.UnitTypePlayer, u.UnitType)
	assert.False(t, u.IsBoss)
}

func TestState_CombatEvent_UpdatesUnitStateOnly(t *testing.T) {
	s := state.New()
	s.HandleEvent(event.Event{Timestamp: 1, Body: &event.UnitAdded{UnitId: 7, Name: "Tester"}})

	s.HandleEvent(event.Event{Timestamp: 100, Body: &event.CombatEvent{
		ActionResult: event.ActionResultDamage,
		DamageType:   event.DamageTypePhysical,
		HitValue:     1500,
		SourceUnit:   event.UnitState{UnitId: 7, Shield: 50},
	}})

	u := s.Entities()[7]
	assert.Equal(t, uint32(50), u.State.Shield)
	assert.Equal(t, "Tester", u.Name)
}

func TestState_EffectMap_GainedThenFaded(t *testing.T) {
	s := state.New()
	s.HandleEvent(event.Event{Timestamp: 1, Body: &event.UnitAdded{UnitId: 7}})
	s.HandleEvent(event.Event{Timestamp: 1, Body: &event.UnitAdded{UnitId: 3}})

	gainedLine := "200,EFFECT_CHANGED,GAINED,1,99,38788," + unitStateLine(7) + ",*"
	s.HandleEvent(decodeLine(t, gainedLine))

	_, ok := s.Effects().GetByID(99)
	require.True(t, ok)
	assert.Contains(t, s.Effects().GetGrantedEffects(7), event.TrackId(99))
	assert.Contains(t, s.Effects().GetReceivedEffects(7), event.TrackId(99))

	fadedLine := "300,EFFECT_CHANGED,FADED,1,99,38788," + unitStateLine(7) + ",*"
	s.HandleEvent(decodeLine(t, fadedLine))

	_, ok = s.Effects().GetByID(99)
	assert.False(t, ok)
	assert.NotContains(t, s.Effects().GetGrantedEffects(7), event.TrackId(99))
	assert.NotContains(t, s.Effects().GetReceivedEffects(7), event.TrackId(99))
}

func TestState_UnitRemoved_CleansUpReceivedEffects(t *testing.T) {
	s := state.New()
	s.HandleEvent(event.Event{Timestamp: 1, Body: &event.UnitAdded{UnitId: 7}})
	s.HandleEvent(event.Event{Timestamp: 1, Body: &event.UnitAdded{UnitId: 3}})

	line1 := "10,EFFECT_CHANGED,GAINED,1,99,1," + unitStateLine(7) + "," + unitStateLine(3)
	s.HandleEvent(decodeLine(t, line1))
	line2 := "11,EFFECT_CHANGED,GAINED,1,101,2," + unitStateLine(7) + "," + unitStateLine(3)
	s.HandleEvent(decodeLine(t, line2))

	require.Contains(t, s.Effects().GetReceivedEffects(3), event.TrackId(99))
	require.Contains(t, s.Effects().GetReceivedEffects(3), event.TrackId(101))

	s.HandleEvent(event.Event{Timestamp: 400, Body: &event.UnitRemoved{UnitId: 3}})

	_, ok := s.Entities()[3]
	assert.False(t, ok)
	assert.Empty(t, s.Effects().GetReceivedEffects(3))
	_, ok = s.Effects().GetByID(99)
	assert.False(t, ok)
	_, ok = s.Effects().GetByID(101)
	assert.False(t, ok)
	assert.NotContains(t, s.Effects().GetGrantedEffects(7), event.TrackId(99))
	assert.NotContains(t, s.Effects().GetGrantedEffects(7), event.TrackId(101))
}

func TestState_EndCombat_SweepsMonsters(t *testing.T) {
	s := state.New()
	s.HandleEvent(event.Event{Timestamp: 10, Body: &event.BeginCombat{}})
	s.HandleEvent(event.Event{Timestamp: 11, Body: &event.UnitAdded{UnitId: 500, MonsterId: 555}})
	s.HandleEvent(event.Event{Timestamp: 12, Body: &event.UnitAdded{UnitId: 7, MonsterId: 0}})

	assert.True(t, s.InCombat())

	s.HandleEvent(event.Event{Timestamp: 30, Body: &event.EndCombat{}})

	assert.False(t, s.InCombat())
	_, ok := s.Entities()[500]
	assert.False(t, ok)
	_, ok = s.Entities()[7]
	assert.True(t, ok)
}

func TestState_BeginLog_ResetsToNew(t *testing.T) {
	s := state.New()
	s.HandleEvent(event.Event{Timestamp: 1, Body: &event.UnitAdded{UnitId: 7}})
	require.Len(t, s.Entities(), 2) // world + unit 7

	s.HandleEvent(event.Event{Timestamp: 2, Body: &event.BeginLog{RealmName: `"NA Megaserver"`}})

	assert.Len(t, s.Entities(), 1) // only the World unit remains
	_, ok := s.Entities()[7]
	assert.False(t, ok)
}

func TestState_PlayerInfo_UpdatesEquipmentBySlot(t *testing.T) {
	s := state.New()
	s.HandleEvent(event.Event{Timestamp: 1, Body: &event.UnitAdded{UnitId: 7}})

	s.HandleEvent(event.Event{Timestamp: 2, Body: &event.PlayerInfo{
		UnitId: 7,
		EquipmentInfo: []event.EquipmentInfo{
			{Slot: event.EquipSlotHead, Id: 1001, DisplayQuality: event.DisplayQualityLegendary},
		},
	}})

	eq, ok := s.Entities()[7].Equipment[event.EquipSlotHead]
	require.True(t, ok)
	assert.Equal(t, event.Id(1001), eq.Id)
}

func TestStream_SnapshotPrecedesEvent(t *testing.T) {
	events := []event.Event{
		{Timestamp: 1, Body: &event.UnitAdded{UnitId: 7}},
		{Timestamp: 2, Body: &event.CombatEvent{SourceUnit: event.UnitState{UnitId: 7, Shield: 99}}},
	}
	stream := state.NewStream(events)

	snap, ev, ok := stream.Next()
	require.True(t, ok)
	assert.Equal(t, uint64(1), ev.Timestamp)
	_, hasUnit7 := snap.Entities()[7]
	assert.False(t, hasUnit7, "UnitAdded not yet folded into the snapshot yielded alongside it")

	snap, ev, ok = stream.Next()
	require.True(t, ok)
	assert.Equal(t, uint64(2), ev.Timestamp)
	u, ok := snap.Entities()[7]
	require.True(t, ok)
	assert.Equal(t, uint32(0), u.State.Shield, "CombatEvent not yet folded into the snapshot yielded alongside it")

	_, _, ok = stream.Next()
	assert.False(t, ok)
	finalUnit := stream.State().Entities()[7]
	assert.Equal(t, uint32(99), finalUnit.State.Shield)
}
