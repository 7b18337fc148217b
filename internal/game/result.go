package game

import (
	"fmt"

	"github.com/littlemonopoly/simulator-go/internal/game/strategy"
	"go.uber.org/zap/zapcore"
)

// EndReason tells how a match finished.
type EndReason int

const (
	EndElimination EndReason = iota
	EndTimeout
)

func (r EndReason) String() string {
	switch r {
	case EndElimination:
		return "ELIMINATION"
	case EndTimeout:
		return "TIMEOUT"
	default:
		return fmt.Sprintf("REASON_%d", int(r))
	}
}

// MatchStats summarizes what the watchers saw during a match.
type MatchStats struct {
	Purchases        int
	RentPayments     int
	RentVolume       int
	EliminationOrder []strategy.Kind
	Players          [PlayerCount]PlayerStats // indexed by player id - 1
}

// PlayerStats is one player's activity over a match.
type PlayerStats struct {
	PlayerID        int
	Profile         strategy.Kind
	Purchases       []int // slot ids in purchase order
	Spent           int
	RentPaid        int
	RentReceived    int
	EliminatedRound int // 0 if the player survived
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (s PlayerStats) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("player_id", s.PlayerID)
	enc.AddString("profile", s.Profile.String())
	enc.AddInt("purchases", len(s.Purchases))
	enc.AddInt("spent", s.Spent)
	enc.AddInt("rent_paid", s.RentPaid)
	enc.AddInt("rent_received", s.RentReceived)
	if s.EliminatedRound > 0 {
		enc.AddInt("eliminated_round", s.EliminatedRound)
	}
	return nil
}

// Result is the immutable outcome of one finished match.
type Result struct {
	Label         string
	Rounds        int
	WinnerID      int
	WinnerProfile strategy.Kind
	WinnerBalance int
	Reason        EndReason
	Stats         MatchStats
}

// Action is what happened on the property a player landed on.
type Action string

const (
	ActionPurchased    Action = "PURCHASED"
	ActionDeclined     Action = "DECLINED"
	ActionRentPaid     Action = "RENT_PAID"
	ActionOwnProperty  Action = "OWN_PROPERTY"
	ActionUnaffordable Action = "UNAFFORDABLE"
)

// TurnRecord is the trace of a single turn.
type TurnRecord struct {
	Turn           int
	PlayerID       int
	Profile        strategy.Kind
	Die            int
	From           int
	To             int
	Action         Action
	Amount         int // price paid or rent paid
	CounterpartyID int // owner that collected rent
	Eliminated     bool
	Released       []int
	Balances       [PlayerCount]int // indexed by player id - 1
}
