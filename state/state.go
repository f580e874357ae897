// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package state

import "github.com/KirkDiggler/esoparser/event"

// WorldUnitId is the synthetic unit State pre-inserts on New, used as
// an owner/sentinel for world-originated effects and events that carry
// no real source unit.
const WorldUnitId event.UnitId = 0

// State is a live projection of a combat log: every known unit, every
// active effect, cached ability/effect documentation, and whether a
// combat encounter is currently open.
type State struct {
	entities    map[event.UnitId]*Unit
	effects     EffectMap
	abilityInfo map[event.AbilityId]event.AbilityInfo
	effectInfo  map[event.AbilityId]event.EffectInfo
	inCombat    bool
}

// New returns a fresh State containing only the synthetic World unit.
func New() *State {
	s := &State{
		entities:    make(map[event.UnitId]*Unit),
		effects:     newEffectMap(),
		abilityInfo: make(map[event.AbilityId]event.AbilityInfo),
		effectInfo:  make(map[event.AbilityId]event.EffectInfo),
	}

	s.entities[WorldUnitId] = &Unit{
		UnitType:    event.UnitTypeObject,
		State:       event.UnitState{UnitId: WorldUnitId},
		Reaction:    event.UnitReactionTypeHostile,
		Equipment:   make(map[event.EquipSlot]event.EquipmentInfo),
		Name:        "World",
		DisplayName: "World",
	}

	return s
}

// Entities exposes the live unit table for read-only access.
func (s *State) Entities() map[event.UnitId]*Unit {
	return s.entities
}

// Effects exposes the live effect map for read-only access.
func (s *State) Effects() *EffectMap {
	return &s.effects
}

// AbilityInfo looks up a cached ABILITY_INFO record.
func (s *State) AbilityInfo(id event.AbilityId) (event.AbilityInfo, bool) {
	v, ok := s.abilityInfo[id]
	return v, ok
}

// EffectInfo looks up a cached EFFECT_INFO record.
func (s *State) EffectInfo(id event.AbilityId) (event.EffectInfo, bool) {
	v, ok := s.effectInfo[id]
	return v, ok
}

// InCombat reports whether a BEGIN_COMBAT has been seen without a
// matching END_COMBAT.
func (s *State) InCombat() bool { return s.inCombat }

// HandleEvent folds one event into the state, in place.
func (s *State) HandleEvent(ev event.Event) {
	switch b := ev.Body.(type) {
	case *event.AbilityInfo:
		s.insertAbilityInfo(b)
	case *event.BeginCombat:
		s.inCombat = true
	case *event.BeginLog:
		*s = *New()
	case *event.CombatEvent:
		s.updateUnitState(b.SourceUnit)
		s.updateUnitState(b.Target())
	case *event.EffectChanged:
		s.effects.handleEffectChanged(b)
	case *event.EffectInfo:
		s.insertEffectInfo(b)
	case *event.EndCombat:
		s.removeEnemyUnits()
		s.inCombat = false
	case *event.HealthRegen:
		s.updateUnitState(b.Unit)
	case *event.PlayerInfo:
		s.updatePlayer(b)
	case *event.UnitAdded:
		s.addUnit(b)
	case *event.UnitChanged:
		s.updateUnit(b)
	case *event.UnitRemoved:
		s.removeUnit(b.UnitId)
	}
	// BeginCast, BeginTrial, EndCast, EndLog, EndTrial, MapChanged,
	// TrialInit, ZoneChanged carry no state change.
}

// HandleEvents folds a sequence of events in order.
func (s *State) HandleEvents(events []event.Event) {
	for _, ev := range events {
		s.HandleEvent(ev)
	}
}

func (s *State) addUnit(e *event.UnitAdded) {
	s.entities[e.UnitId] = newUnit(e)
}

func (s *State) updateUnit(e *event.UnitChanged) {
	if u, ok := s.entities[e.UnitId]; ok {
		u.Reaction = e.Reaction
	}
}

func (s *State) removeUnit(unitID event.UnitId) {
	delete(s.entities, unitID)
	s.effects.removeAllReceivedBy(unitID)
}

// removeEnemyUnits sweeps every unit whose MonsterId is non-zero, the
// policy this projector adopts for EndCombat cleanup.
func (s *State) removeEnemyUnits() {
	var toRemove []event.UnitId
	for id, u := range s.entities {
		if u.MonsterId != 0 {
			toRemove = append(toRemove, id)
		}
	}
	for _, id := range toRemove {
		s.removeUnit(id)
	}
}

func (s *State) updatePlayer(e *event.PlayerInfo) {
	u, ok := s.entities[e.UnitId]
	if !ok {
		return
	}
	for _, eq := range e.EquipmentInfo {
		u.Equipment[eq.Slot] = eq
	}
	// Ability bars and long-term effects are carried on the parsed
	// event but not yet projected into per-unit state.
}

func (s *State) updateUnitState(us event.UnitState) {
	if u, ok := s.entities[us.UnitId]; ok {
		u.State = us
	}
}

func (s *State) insertAbilityInfo(e *event.AbilityInfo) {
	if _, ok := s.abilityInfo[e.AbilityId]; !ok {
		s.abilityInfo[e.AbilityId] = *e
	}
}

func (s *State) insertEffectInfo(e *event.EffectInfo) {
	if _, ok := s.effectInfo[e.AbilityId]; !ok {
		s.effectInfo[e.AbilityId] = *e
	}
}
