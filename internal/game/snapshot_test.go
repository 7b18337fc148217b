package game

import (
	"math/rand"
	"testing"

	"github.com/littlemonopoly/simulator-go/internal/game/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotCapturesState(t *testing.T) {
	m := NewMatch("snap", newScriptedRand(t, 2), nil)
	_, ok := m.PlayTurn()
	require.True(t, ok)

	s := m.Snapshot()
	assert.Equal(t, "snap", s.Label)
	assert.Equal(t, rules.MatchStateRunning, s.State)
	assert.Equal(t, 1, s.Turn)
	assert.Equal(t, []int{1, 2, 3, 4}, s.TurnOrder)
	assert.Equal(t, 340, s.Players[0].Balance)
	assert.Equal(t, 1, s.Properties[3].OwnerID)
	assert.Equal(t, map[int]int{1: 4, 2: 1, 3: 1, 4: 1}, s.Positions)
}

func TestChecksumIgnoresLabel(t *testing.T) {
	a := NewMatch("left", rand.New(rand.NewSource(5)), nil)
	b := NewMatch("right", rand.New(rand.NewSource(5)), nil)
	for i := 0; i < 25; i++ {
		a.PlayTurn()
		b.PlayTurn()
	}

	ca, err := a.Snapshot().ComputeChecksum()
	require.NoError(t, err)
	cb, err := b.Snapshot().ComputeChecksum()
	require.NoError(t, err)

	assert.Equal(t, ca.Hash, cb.Hash)
	assert.Equal(t, 1, ca.Version)
	assert.Len(t, ca.Hash, 64)
}

func TestChecksumChangesWithState(t *testing.T) {
	m := NewMatch("drift", newScriptedRand(t, 2), nil)

	before, err := m.Snapshot().ComputeChecksum()
	require.NoError(t, err)

	_, ok := m.PlayTurn()
	require.True(t, ok)

	after, err := m.Snapshot().ComputeChecksum()
	require.NoError(t, err)
	assert.NotEqual(t, before.Hash, after.Hash)
}

func TestSnapshotOmitsEliminatedPlayers(t *testing.T) {
	m := NewMatch("gone", newScriptedRand(t), nil)
	m.players[2].Active = false
	m.board.Remove(3)

	s := m.Snapshot()
	_, ok := s.Positions[3]
	assert.False(t, ok)
	assert.Len(t, s.Positions, 3)
}
