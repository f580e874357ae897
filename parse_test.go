// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package esoparser_test

import (
	"bytes"
	"testing"

	"github.com/KirkDiggler/esoparser"
	"github.com/KirkDiggler/esoparser/event"
	"github.com/KirkDiggler/esoparser/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestParseOne_Dump_RoundTrip(t *testing.T) {
	line := []byte(`3,BEGIN_LOG,1700000000000,"15","NA Megaserver","en","10.2.5"`)

	ev, err := esoparser.ParseOne(line)
	require.NoError(t, err)

	body, ok := ev.Body.(*event.BeginLog)
	require.True(t, ok)
	assert.Equal(t, uint64(1700000000000), body.EpochMs)

	assert.Equal(t, line, esoparser.Dump(ev))
}

func TestParseMany(t *testing.T) {
	buf := []byte("10,BEGIN_COMBAT\n20,END_COMBAT\n")

	events, err := esoparser.ParseMany(buf)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.IsType(t, &event.BeginCombat{}, events[0].Body)
	assert.IsType(t, &event.EndCombat{}, events[1].Body)
}

func TestParseMany_TrimsCarriageReturnAndBlankLines(t *testing.T) {
	buf := []byte("10,BEGIN_COMBAT\r\n\n20,END_COMBAT\r\n")

	events, err := esoparser.ParseMany(buf)
	require.NoError(t, err)
	require.Len(t, events, 2)
}

func TestParseMany_PropagatesError(t *testing.T) {
	buf := []byte("1,NOT_A_REAL_EVENT\n")

	_, err := esoparser.ParseMany(buf)
	assert.Error(t, err)
}

func TestParseManyParallel_MatchesSequential(t *testing.T) {
	defer goleak.VerifyNone(t)

	var buf bytes.Buffer
	for i := 0; i < 200; i++ {
		buf.WriteString("10,BEGIN_COMBAT\n20,END_COMBAT\n")
	}

	sequential, err := esoparser.ParseMany(buf.Bytes())
	require.NoError(t, err)

	parallel, err := esoparser.ParseManyParallel(buf.Bytes(), 4)
	require.NoError(t, err)

	require.Equal(t, len(sequential), len(parallel))
	for i := range sequential {
		assert.Equal(t, sequential[i], parallel[i])
	}
}

func TestParseManyParallel_DefaultWorkers(t *testing.T) {
	defer goleak.VerifyNone(t)

	buf := []byte("10,BEGIN_COMBAT\n20,END_COMBAT\n")
	events, err := esoparser.ParseManyParallel(buf, 0)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestParseManyParallel_Empty(t *testing.T) {
	events, err := esoparser.ParseManyParallel(nil, 2)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestParseOneThenHandleEvent(t *testing.T) {
	ev, err := esoparser.ParseOne([]byte(`1,UNIT_ADDED,7,PLAYER,T,1,0,F,117,6,"Tester","@tester",0,50,3600,0,PLAYER_ALLY,T`))
	require.NoError(t, err)

	s := state.New()
	s.HandleEvent(ev)

	u, ok := s.Entities()[7]
	require.True(t, ok)
	assert.Equal(t, event.UnitTypePlayer, u.UnitType)
}

func BenchmarkParseMany(b *testing.B) {
	var buf bytes.Buffer
	for i := 0; i < 1000; i++ {
		buf.WriteString("10,BEGIN_COMBAT\n20,END_COMBAT\n")
	}
	data := buf.Bytes()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := esoparser.ParseMany(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseManyAndHandleState(b *testing.B) {
	var buf bytes.Buffer
	for i := 0; i < 1000; i++ {
		buf.WriteString("10,BEGIN_COMBAT\n20,END_COMBAT\n")
	}
	data := buf.Bytes()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := state.New()
		events, err := esoparser.ParseMany(data)
		if err != nil {
			b.Fatal(err)
		}
		s.HandleEvents(events)
	}
}
