// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package state

import "github.com/KirkDiggler/esoparser/event"

// EffectMap holds every currently active buff/debuff instance, indexed
// three ways: by its own track id, by the unit that granted it, and by
// the unit that received it.
//
// Invariant: every TrackId present in effects appears exactly once in
// grantedEffects[source] and exactly once in receivedEffects[target];
// removing a row removes both cross-references in the same step.
type EffectMap struct {
	effects         map[event.TrackId]event.EffectChanged
	grantedEffects  map[event.UnitId][]event.TrackId
	receivedEffects map[event.UnitId][]event.TrackId
}

func newEffectMap() EffectMap {
	return EffectMap{
		effects:         make(map[event.TrackId]event.EffectChanged),
		grantedEffects:  make(map[event.UnitId][]event.TrackId),
		receivedEffects: make(map[event.UnitId][]event.TrackId),
	}
}

// GetByID returns the live row for trackID, if any.
func (m *EffectMap) GetByID(trackID event.TrackId) (event.EffectChanged, bool) {
	v, ok := m.effects[trackID]
	return v, ok
}

// GetGrantedEffects returns the track ids of effects unitID is the
// source of.
func (m *EffectMap) GetGrantedEffects(unitID event.UnitId) []event.TrackId {
	return m.grantedEffects[unitID]
}

// GetReceivedEffects returns the track ids of effects unitID is the
// target of.
func (m *EffectMap) GetReceivedEffects(unitID event.UnitId) []event.TrackId {
	return m.receivedEffects[unitID]
}

// Effects exposes the live effect rows for read-only iteration.
func (m *EffectMap) Effects() map[event.TrackId]event.EffectChanged {
	return m.effects
}

func (m *EffectMap) handleEffectChanged(e *event.EffectChanged) {
	switch e.ChangeType {
	case event.EffectChangeTypeGained, event.EffectChangeTypeUpdated:
		m.insert(*e)
	case event.EffectChangeTypeFaded:
		m.remove(e.CastId)
	}
}

func (m *EffectMap) insert(e event.EffectChanged) {
	source := e.SourceUnit.UnitId
	target := e.Target().UnitId

	_, existed := m.effects[e.CastId]
	m.effects[e.CastId] = e

	if !existed {
		m.grantedEffects[source] = append(m.grantedEffects[source], e.CastId)
		m.receivedEffects[target] = append(m.receivedEffects[target], e.CastId)
	}
}

func (m *EffectMap) remove(trackID event.TrackId) {
	e, ok := m.effects[trackID]
	if !ok {
		return
	}
	delete(m.effects, trackID)
	m.removeFromList(m.grantedEffects, e.SourceUnit.UnitId, trackID)
	m.removeFromList(m.receivedEffects, e.Target().UnitId, trackID)
}

// removeAllReceivedBy drops unitID's received-effects list and, for
// each track id it held, removes the live row and the cross-reference
// on the granting unit.
func (m *EffectMap) removeAllReceivedBy(unitID event.UnitId) {
	for _, trackID := range m.receivedEffects[unitID] {
		e, ok := m.effects[trackID]
		if !ok {
			continue
		}
		delete(m.effects, trackID)
		m.removeFromList(m.grantedEffects, e.SourceUnit.UnitId, trackID)
	}
	delete(m.receivedEffects, unitID)
}

func (m *EffectMap) removeFromList(lists map[event.UnitId][]event.TrackId, unitID event.UnitId, trackID event.TrackId) {
	list := lists[unitID]
	for i, id := range list {
		if id == trackID {
			lists[unitID] = append(list[:i], list[i+1:]...)
			return
		}
	}
}
