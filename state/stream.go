// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package state

import "github.com/KirkDiggler/esoparser/event"

// Snapshot is a read-only view of a State as of one Stream.Next call.
// It is a thin wrapper over the stream's live State, so it stops
// reflecting "before the next event" truth as soon as Next is called
// again; callers that need the data to outlive that call must copy out
// the fields they care about.
type Snapshot struct {
	state *State
}

func (s Snapshot) Entities() map[event.UnitId]*Unit { return s.state.entities }
func (s Snapshot) Effects() *EffectMap              { return &s.state.effects }
func (s Snapshot) InCombat() bool                   { return s.state.inCombat }

// Stream presents a (snapshot, event) pair per advancement: the
// snapshot yielded alongside event E is the state before E is applied,
// except that EndCombat is a boundary whose snapshot is the pre-sweep
// state, with the sweep applied before the following event is fetched.
//
// This is implemented by lagging the fold by one step: each call to
// Next first applies the previously yielded event, then computes the
// snapshot for the event it is about to yield.
type Stream struct {
	state   *State
	events  []event.Event
	pos     int
	pending *event.Event
}

// NewStream returns a Stream that folds events into a fresh State one
// at a time.
func NewStream(events []event.Event) *Stream {
	return &Stream{state: New(), events: events}
}

// Next advances the stream by one event, returning the pre-event
// snapshot, the event itself, and whether an event was available. The
// returned snapshot's validity ends at the next call to Next.
func (s *Stream) Next() (Snapshot, event.Event, bool) {
	if s.pending != nil {
		s.state.HandleEvent(*s.pending)
		s.pending = nil
	}

	if s.pos >= len(s.events) {
		return Snapshot{}, event.Event{}, false
	}

	ev := s.events[s.pos]
	s.pos++

	snap := Snapshot{state: s.state}
	s.pending = &ev
	return snap, ev, true
}

// State returns the live State backing this stream. Its contents
// reflect every event fed to a Next call that has since returned,
// including the pending one from the most recent call only once Next
// is called again (or the stream is exhausted).
func (s *Stream) State() *State { return s.state }
