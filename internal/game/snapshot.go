package game

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/littlemonopoly/simulator-go/internal/game/board"
	"github.com/littlemonopoly/simulator-go/internal/game/rules"
)

// Snapshot is a point-in-time copy of a match's state.
type Snapshot struct {
	Label      string
	State      rules.MatchState
	Turn       int
	TurnOrder  []int
	Players    []Player
	Properties []board.Property
	Positions  map[int]int // playerID -> slot id, active players only
}

// SerializationChecksum is a deterministic fingerprint of a snapshot.
type SerializationChecksum struct {
	Hash    string // SHA-256 of the canonical representation
	Version int
}

// Snapshot captures the current state of the match.
func (m *Match) Snapshot() *Snapshot {
	positions := make(map[int]int, PlayerCount)
	for i := range m.players {
		if slot, ok := m.board.Position(m.players[i].ID); ok {
			positions[m.players[i].ID] = slot
		}
	}
	return &Snapshot{
		Label:      m.label,
		State:      m.state,
		Turn:       m.turns.TurnNumber(),
		TurnOrder:  m.turns.Order(),
		Players:    m.Players(),
		Properties: m.board.Properties(),
		Positions:  positions,
	}
}

// ComputeChecksum hashes the snapshot. The label is left out so two matches
// replayed from the same seed produce the same checksum.
func (s *Snapshot) ComputeChecksum() (*SerializationChecksum, error) {
	hash := sha256.New()
	if _, err := hash.Write(s.canonical()); err != nil {
		return nil, fmt.Errorf("failed to compute hash: %w", err)
	}
	return &SerializationChecksum{
		Hash:    hex.EncodeToString(hash.Sum(nil)),
		Version: 1,
	}, nil
}

func (s *Snapshot) canonical() []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "MATCH:%s|%d|%v\n", s.State, s.Turn, s.TurnOrder)

	// Players are already ordered by id.
	for _, p := range s.Players {
		slot := s.Positions[p.ID]
		fmt.Fprintf(&buf, "PLAYER:%d|%s|%d|%t|%d\n", p.ID, p.Profile, p.Balance, p.Active, slot)
	}
	for _, p := range s.Properties {
		fmt.Fprintf(&buf, "PROPERTY:%d|%d|%d|%d|%t\n", p.ID, p.Price, p.Rent, p.OwnerID, p.Available)
	}

	return buf.Bytes()
}
