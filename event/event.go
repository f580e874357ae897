// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package event

import "github.com/KirkDiggler/esoparser/codec"

// Body is one event kind's field set. Kind returns the canonical
// upper-snake-case wire tag written on encode; decodeFields/encodeFields
// read or write the fields that follow the tag token.
type Body interface {
	Kind() string
	decodeFields(d *codec.Decoder) error
	encodeFields(e *codec.Encoder)
}

// Event is a single parsed encounter-log line: a millisecond timestamp
// paired with one of the closed Body kinds.
type Event struct {
	Timestamp uint64
	Body      Body
}

var bodyConstructors = map[string]func() Body{
	"ABILITY_INFO":   func() Body { return &AbilityInfo{} },
	"BEGIN_CAST":     func() Body { return &BeginCast{} },
	"BEGIN_COMBAT":   func() Body { return &BeginCombat{} },
	"BEGIN_LOG":      func() Body { return &BeginLog{} },
	"BEGIN_TRIAL":    func() Body { return &BeginTrial{} },
	"COMBAT_EVENT":   func() Body { return &CombatEvent{} },
	"EFFECT_CHANGED": func() Body { return &EffectChanged{} },
	"EFFECT_INFO":    func() Body { return &EffectInfo{} },
	"END_CAST":       func() Body { return &EndCast{} },
	"END_COMBAT":     func() Body { return &EndCombat{} },
	"END_LOG":        func() Body { return &EndLog{} },
	"END_TRIAL":      func() Body { return &EndTrial{} },
	"HEALTH_REGEN":   func() Body { return &HealthRegen{} },
	"MAP_CHANGED":    func() Body { return &MapChanged{} },
	"MAP_INFO":       func() Body { return &MapChanged{} }, // alias, decode-only
	"PLAYER_INFO":    func() Body { return &PlayerInfo{} },
	"TRIAL_INIT":     func() Body { return &TrialInit{} },
	"UNIT_ADDED":     func() Body { return &UnitAdded{} },
	"UNIT_CHANGED":   func() Body { return &UnitChanged{} },
	"UNIT_REMOVED":   func() Body { return &UnitRemoved{} },
	"ZONE_CHANGED":   func() Body { return &ZoneChanged{} },
	"ZONE_INFO":      func() Body { return &ZoneChanged{} }, // alias, decode-only
}

// Decode reads one complete event (timestamp, tag, and fields) from d.
// It does not require d to be exhausted afterward; callers that parse a
// whole line should call d.Finish() themselves, matching the codec's
// separation between "decode a value" and "confirm nothing is left".
func (ev *Event) Decode(d *codec.Decoder) error {
	ts, err := d.Uint64()
	if err != nil {
		return err
	}
	tag, err := d.Tag()
	if err != nil {
		return err
	}
	ctor, ok := bodyConstructors[string(tag)]
	if !ok {
		return codec.Newf(codec.CodeInvalidToken, "unknown event kind %q", tag)
	}
	body := ctor()
	if err := body.decodeFields(d); err != nil {
		return err
	}
	ev.Timestamp = ts
	ev.Body = body
	return nil
}

// Encode writes the event's timestamp, canonical tag, and fields to e.
func (ev *Event) Encode(e *codec.Encoder) {
	e.Uint64(ev.Timestamp)
	e.Tag(ev.Body.Kind())
	ev.Body.encodeFields(e)
}
