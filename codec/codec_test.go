// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package codec_test

import (
	"testing"

	"github.com/KirkDiggler/esoparser/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoder_Scalars(t *testing.T) {
	d := codec.NewDecoder([]byte("T,F,42,-7,1.5,hello"))

	b, err := d.Bool()
	require.NoError(t, err)
	assert.True(t, b)

	b, err = d.Bool()
	require.NoError(t, err)
	assert.False(t, b)

	u, err := d.Uint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), u)

	i, err := d.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(-7), i)

	f, err := d.Float64()
	require.NoError(t, err)
	assert.Equal(t, 1.5, f)

	s, err := d.String()
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	assert.NoError(t, d.Finish())
}

func TestDecoder_Optional(t *testing.T) {
	d := codec.NewDecoder([]byte("*,5"))

	present, err := d.Optional()
	require.NoError(t, err)
	assert.False(t, present)

	present, err = d.Optional()
	require.NoError(t, err)
	assert.True(t, present)

	u, err := d.Uint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(5), u)
}

func TestDecoder_Pair(t *testing.T) {
	d := codec.NewDecoder([]byte("10000/20000"))

	cur, max, err := d.Pair()
	require.NoError(t, err)
	assert.Equal(t, uint64(10000), cur)
	assert.Equal(t, uint64(20000), max)
}

func TestDecoder_List(t *testing.T) {
	d := codec.NewDecoder([]byte("[1,2,3]"))

	inner, err := d.BeginList()
	require.NoError(t, err)

	var got []uint64
	for !inner.Depleted() {
		v, err := inner.Uint64()
		require.NoError(t, err)
		got = append(got, v)
	}

	assert.Equal(t, []uint64{1, 2, 3}, got)
}

func TestDecoder_NotAList(t *testing.T) {
	d := codec.NewDecoder([]byte("5"))

	_, err := d.BeginList()
	require.Error(t, err)
	assert.Equal(t, codec.CodeNotAList, codec.GetCode(err))
}

func TestDecoder_ReaderNotExhausted(t *testing.T) {
	d := codec.NewDecoder([]byte("1,2"))

	_, err := d.Uint64()
	require.NoError(t, err)

	err = d.Finish()
	require.Error(t, err)
	assert.Equal(t, codec.CodeReaderNotExhausted, codec.GetCode(err))
}

func TestEncoder_Scalars(t *testing.T) {
	e := codec.NewEncoder()
	e.Bool(true)
	e.Uint64(42)
	e.Int64(-7)
	e.Float64(1.5)
	e.String("hello")

	assert.Equal(t, "T,42,-7,1.5,hello", string(e.Finish()))
}

func TestEncoder_List(t *testing.T) {
	e := codec.NewEncoder()
	e.BeginList()
	e.Uint64(1)
	e.Uint64(2)
	e.Uint64(3)
	e.EndList()

	assert.Equal(t, "[1,2,3]", string(e.Finish()))
}

func TestEncoder_EmptyList(t *testing.T) {
	e := codec.NewEncoder()
	e.BeginList()
	e.EndList()

	assert.Equal(t, "[]", string(e.Finish()))
}

func TestEncoder_Pair(t *testing.T) {
	e := codec.NewEncoder()
	e.Pair(10000, 20000)

	assert.Equal(t, "10000/20000", string(e.Finish()))
}

func TestEncoder_Map_Unsupported(t *testing.T) {
	e := codec.NewEncoder()
	err := e.Map()
	require.Error(t, err)
	assert.Equal(t, codec.CodeUnsupportedOperation, codec.GetCode(err))
}
