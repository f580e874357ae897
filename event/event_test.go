// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package event_test

import (
	"testing"

	"github.com/KirkDiggler/esoparser/codec"
	"github.com/KirkDiggler/esoparser/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, line string) event.Event {
	t.Helper()
	d := codec.NewDecoder([]byte(line))
	var ev event.Event
	require.NoError(t, ev.Decode(d))
	require.NoError(t, d.Finish())
	return ev
}

func TestEvent_BeginLog_RoundTrip(t *testing.T) {
	line := `3,BEGIN_LOG,1700000000000,"15","NA Megaserver","en","10.2.5"`
	ev := decodeLine(t, line)

	body, ok := ev.Body.(*event.BeginLog)
	require.True(t, ok)
	assert.Equal(t, uint64(3), ev.Timestamp)
	assert.Equal(t, uint64(1700000000000), body.EpochMs)
	assert.Equal(t, `"15"`, body.LogVersion)
	assert.Equal(t, `"NA Megaserver"`, body.RealmName)
	assert.Equal(t, `"en"`, body.Language)
	assert.Equal(t, `"10.2.5"`, body.GameVersion)

	e := codec.NewEncoder()
	ev.Encode(e)
	assert.Equal(t, line, string(e.Finish()))
}

func TestEvent_UnitAdded_RoundTrip(t *testing.T) {
	line := `42,UNIT_ADDED,7,PLAYER,T,1,0,F,117,6,"Tester","@tester",0,50,3600,0,PLAYER_ALLY,T`
	ev := decodeLine(t, line)

	body, ok := ev.Body.(*event.UnitAdded)
	require.True(t, ok)
	assert.Equal(t, event.UnitId(7), body.UnitId)
	assert.Equal(t, event.UnitTypePlayer, body.UnitType)
	assert.True(t, body.IsLocalPlayer)
	assert.False(t, body.IsBoss)
	assert.Equal(t, event.UnitReactionTypePlayerAlly, body.Reaction)

	e := codec.NewEncoder()
	ev.Encode(e)
	assert.Equal(t, line, string(e.Finish()))
}

func TestEvent_CombatEvent_RoundTrip(t *testing.T) {
	line := "100,COMBAT_EVENT,DAMAGE,PHYSICAL,0,1500,0,99,38788,7,10000/20000,15000/15000,10000/10000,500/500,0/0,0,1.5,2.25,0,*"
	ev := decodeLine(t, line)

	body, ok := ev.Body.(*event.CombatEvent)
	require.True(t, ok)
	assert.Equal(t, event.ActionResultDamage, body.ActionResult)
	assert.Equal(t, event.DamageTypePhysical, body.DamageType)
	assert.Equal(t, uint32(1500), body.HitValue)
	assert.Equal(t, event.UnitId(7), body.SourceUnit.UnitId)
	assert.Equal(t, body.SourceUnit, body.Target())

	e := codec.NewEncoder()
	ev.Encode(e)
	assert.Equal(t, line, string(e.Finish()))
}

func TestEvent_UnknownKind(t *testing.T) {
	d := codec.NewDecoder([]byte("1,NOT_A_REAL_EVENT"))
	var ev event.Event
	err := ev.Decode(d)
	require.Error(t, err)
	assert.Equal(t, codec.CodeInvalidToken, codec.GetCode(err))
}

func TestEvent_MapChanged_AliasDecodesToCanonicalEncode(t *testing.T) {
	line := `5,MAP_INFO,12,"Blackreach","art/maps/blackreach"`
	ev := decodeLine(t, line)

	body, ok := ev.Body.(*event.MapChanged)
	require.True(t, ok)
	assert.Equal(t, "MAP_CHANGED", body.Kind())

	e := codec.NewEncoder()
	ev.Encode(e)
	assert.Equal(t, `5,MAP_CHANGED,12,"Blackreach","art/maps/blackreach"`, string(e.Finish()))
}

func TestEvent_ZoneChanged_AliasDecodesToCanonicalEncode(t *testing.T) {
	line := `6,ZONE_INFO,99,"Stonefalls",NONE`
	ev := decodeLine(t, line)

	body, ok := ev.Body.(*event.ZoneChanged)
	require.True(t, ok)
	assert.Equal(t, "ZONE_CHANGED", body.Kind())

	e := codec.NewEncoder()
	ev.Encode(e)
	assert.Equal(t, `6,ZONE_CHANGED,99,"Stonefalls",NONE`, string(e.Finish()))
}

func TestEvent_EndCast_TwoTrailingOptionals(t *testing.T) {
	line := "7,END_CAST,COMPLETED,55,*,*"
	ev := decodeLine(t, line)

	body, ok := ev.Body.(*event.EndCast)
	require.True(t, ok)
	assert.Nil(t, body.InterruptingAbilityId)
	assert.Nil(t, body.InterruptingUnitId)
	assert.Nil(t, body.Extra)

	e := codec.NewEncoder()
	ev.Encode(e)
	assert.Equal(t, "7,END_CAST,COMPLETED,55", string(e.Finish()))
}

func TestEvent_EndCast_FourthUndocumentedField(t *testing.T) {
	line := "8,END_CAST,INTERRUPTED,55,12,7,999"
	ev := decodeLine(t, line)

	body, ok := ev.Body.(*event.EndCast)
	require.True(t, ok)
	require.NotNil(t, body.InterruptingAbilityId)
	assert.Equal(t, event.AbilityId(12), *body.InterruptingAbilityId)
	require.NotNil(t, body.InterruptingUnitId)
	assert.Equal(t, event.UnitId(7), *body.InterruptingUnitId)
	require.NotNil(t, body.Extra)
	assert.Equal(t, event.Id(999), *body.Extra)

	e := codec.NewEncoder()
	ev.Encode(e)
	assert.Equal(t, line, string(e.Finish()))
}

func TestEvent_EffectChanged_OptionalPlayerInitiatedRemove(t *testing.T) {
	line := "9,EFFECT_CHANGED,FADED,1,99,38788,7,100/100,50/50,50/50,0/500,0/0,0,0,0,0,*,3"
	ev := decodeLine(t, line)

	body, ok := ev.Body.(*event.EffectChanged)
	require.True(t, ok)
	assert.Equal(t, event.EffectChangeTypeFaded, body.ChangeType)
	assert.Equal(t, event.UnitId(7), body.SourceUnit.UnitId)
	assert.Equal(t, body.SourceUnit, body.Target())
	require.NotNil(t, body.PlayerInitiatedRemoveCastId)
	assert.Equal(t, event.TrackId(3), *body.PlayerInitiatedRemoveCastId)

	e := codec.NewEncoder()
	ev.Encode(e)
	assert.Equal(t, line, string(e.Finish()))
}

func TestEvent_PlayerInfo_ZipUnzip(t *testing.T) {
	line := "11,PLAYER_INFO,7,[100,200],[1,2],[],[300,301],[400]"
	ev := decodeLine(t, line)

	body, ok := ev.Body.(*event.PlayerInfo)
	require.True(t, ok)
	require.Len(t, body.LongTermEffects, 2)
	assert.Equal(t, event.AbilityId(100), body.LongTermEffects[0].Ability)
	assert.Equal(t, event.StackCount(1), body.LongTermEffects[0].StackCount)
	assert.Equal(t, event.AbilityId(200), body.LongTermEffects[1].Ability)
	assert.Equal(t, event.StackCount(2), body.LongTermEffects[1].StackCount)

	e := codec.NewEncoder()
	ev.Encode(e)
	assert.Equal(t, line, string(e.Finish()))
}

func TestEvent_PlayerInfo_MismatchedZipTruncates(t *testing.T) {
	line := "12,PLAYER_INFO,7,[100,200,300],[1],[],[],[]"
	ev := decodeLine(t, line)

	body, ok := ev.Body.(*event.PlayerInfo)
	require.True(t, ok)
	require.Len(t, body.LongTermEffects, 1)
	assert.Equal(t, event.AbilityId(100), body.LongTermEffects[0].Ability)
}

func TestEvent_AbilityInfo_RoundTrip(t *testing.T) {
	line := `13,ABILITY_INFO,38788,"Wrecking Blow","/esoui/art/icons/ability_weapon_005.dds",T,F`
	ev := decodeLine(t, line)

	body, ok := ev.Body.(*event.AbilityInfo)
	require.True(t, ok)
	assert.Equal(t, event.AbilityId(38788), body.AbilityId)
	assert.True(t, body.Interruptible)
	assert.False(t, body.Blockable)

	e := codec.NewEncoder()
	ev.Encode(e)
	assert.Equal(t, line, string(e.Finish()))
}

func TestEvent_EffectInfo_OptionalSynergy(t *testing.T) {
	withSynergy := "14,EFFECT_INFO,12345,BUFF,NONE,DEFAULT,678"
	ev := decodeLine(t, withSynergy)
	body, ok := ev.Body.(*event.EffectInfo)
	require.True(t, ok)
	require.NotNil(t, body.GrantsSynergyAbility)
	assert.Equal(t, event.AbilityId(678), *body.GrantsSynergyAbility)

	e := codec.NewEncoder()
	ev.Encode(e)
	assert.Equal(t, withSynergy, string(e.Finish()))

	withoutSynergy := "15,EFFECT_INFO,12345,DEBUFF,POISON,ALWAYS,*"
	ev = decodeLine(t, withoutSynergy)
	body, ok = ev.Body.(*event.EffectInfo)
	require.True(t, ok)
	assert.Nil(t, body.GrantsSynergyAbility)

	e = codec.NewEncoder()
	ev.Encode(e)
	assert.Equal(t, "15,EFFECT_INFO,12345,DEBUFF,POISON,ALWAYS", string(e.Finish()))
}

func TestEvent_UnitRemoved_RoundTrip(t *testing.T) {
	line := "16,UNIT_REMOVED,3"
	ev := decodeLine(t, line)
	body, ok := ev.Body.(*event.UnitRemoved)
	require.True(t, ok)
	assert.Equal(t, event.UnitId(3), body.UnitId)

	e := codec.NewEncoder()
	ev.Encode(e)
	assert.Equal(t, line, string(e.Finish()))
}

func TestEvent_EmptyBodyKinds(t *testing.T) {
	for _, line := range []string{"10,BEGIN_COMBAT", "20,END_COMBAT", "30,END_LOG"} {
		ev := decodeLine(t, line)
		e := codec.NewEncoder()
		ev.Encode(e)
		assert.Equal(t, line, string(e.Finish()))
	}
}
