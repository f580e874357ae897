// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package token_test

import (
	"testing"

	"github.com/KirkDiggler/esoparser/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_Atoms(t *testing.T) {
	r := token.NewReader([]byte("3,BEGIN_LOG,1700000000000"))

	tok, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, "3", string(tok))

	tok, ok = r.Next()
	require.True(t, ok)
	assert.Equal(t, "BEGIN_LOG", string(tok))

	tok, ok = r.Next()
	require.True(t, ok)
	assert.Equal(t, "1700000000000", string(tok))

	_, ok = r.Next()
	assert.False(t, ok, "no empty trailing token after the last field")
}

func TestReader_QuotedString(t *testing.T) {
	r := token.NewReader([]byte(`"NA Megaserver","en"`))

	tok, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, `"NA Megaserver"`, string(tok))

	tok, ok = r.Next()
	require.True(t, ok)
	assert.Equal(t, `"en"`, string(tok))
}

func TestReader_NestedList(t *testing.T) {
	r := token.NewReader([]byte(`7,[1,2,[3,4],5],T`))

	tok, _ := r.Next()
	assert.Equal(t, "7", string(tok))

	tok, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, "[1,2,[3,4],5]", string(tok))

	tok, _ = r.Next()
	assert.Equal(t, "T", string(tok))
}

func TestReader_EmptyList(t *testing.T) {
	r := token.NewReader([]byte(`[]`))

	tok, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, "[]", string(tok))

	_, ok = r.Next()
	assert.False(t, ok)
}

func TestReader_NoTrailingEmptyToken(t *testing.T) {
	r := token.NewReader([]byte("a,b,"))

	vals := []string{}
	for {
		tok, ok := r.Next()
		if !ok {
			break
		}
		vals = append(vals, string(tok))
	}

	assert.Equal(t, []string{"a", "b"}, vals)
}

func TestGuardedAndUnguardedAgree(t *testing.T) {
	lines := []string{
		"3,BEGIN_LOG,1700000000000",
		`100,COMBAT_EVENT,DAMAGE,PHYSICAL,0,1500,0,99,38788,7,10000/20000,15000/15000,10000/10000,500/500,0,0,1.0,2.0,0.0,*`,
		"",
		"a",
		"[1,2,3],[4,[5,6]],x",
	}

	for _, line := range lines {
		// pad with plenty of slack so the unguarded reader's contract holds.
		padded := make([]byte, len(line), len(line)+64)
		copy(padded, line)

		guarded := token.NewReader([]byte(line))
		unguarded := token.NewUnguardedReader(padded)

		for {
			gTok, gOk := guarded.Next()
			uTok, uOk := unguarded.Next()

			require.Equal(t, gOk, uOk, "line %q", line)
			if !gOk {
				break
			}
			assert.Equal(t, string(gTok), string(uTok), "line %q", line)
		}
	}
}

func TestSplitPair(t *testing.T) {
	a, b, ok := token.SplitPair([]byte("10000/20000"), '/')
	require.True(t, ok)
	assert.Equal(t, "10000", string(a))
	assert.Equal(t, "20000", string(b))

	_, _, ok = token.SplitPair([]byte("10000"), '/')
	assert.False(t, ok)
}
