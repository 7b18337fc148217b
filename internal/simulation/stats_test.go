package simulation

import (
	"bytes"
	"testing"

	"github.com/littlemonopoly/simulator-go/internal/game"
	"github.com/littlemonopoly/simulator-go/internal/game/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeResult(label string, rounds int, profile strategy.Kind, balance int, reason game.EndReason) game.Result {
	return game.Result{
		Label:         label,
		Rounds:        rounds,
		WinnerProfile: profile,
		WinnerBalance: balance,
		Reason:        reason,
	}
}

func TestSummarize(t *testing.T) {
	results := []game.Result{
		makeResult("match-1", 120, strategy.Cautious, 500, game.EndElimination),
		makeResult("match-2", 1000, strategy.Impulsive, 900, game.EndTimeout),
		makeResult("match-3", 85, strategy.Cautious, 620, game.EndElimination),
		makeResult("match-4", 201, strategy.Demanding, 410, game.EndElimination),
		makeResult("match-5", 60, strategy.Impulsive, 300, game.EndElimination),
		makeResult("match-6", 77, strategy.Cautious, 350, game.EndElimination),
	}

	s := Summarize(results)

	assert.Equal(t, 6, s.Total)
	assert.Equal(t, 1, s.Timeouts)
	assert.Equal(t, 257, s.MeanRounds, "1543/6 truncated")
	assert.Equal(t, map[strategy.Kind]int{
		strategy.Cautious:  3,
		strategy.Impulsive: 2,
		strategy.Demanding: 1,
	}, s.Wins)

	require.Len(t, s.Standings, 3)
	assert.Equal(t, Standing{Place: 1, Profile: strategy.Cautious, Wins: 3, Percent: 50}, s.Standings[0])
	assert.Equal(t, strategy.Impulsive, s.Standings[1].Profile)
	assert.Equal(t, 2, s.Standings[1].Place)
	assert.InDelta(t, 33.33, s.Standings[1].Percent, 0.01)
	assert.Equal(t, strategy.Demanding, s.Standings[2].Profile)

	assert.Equal(t, 900, s.BestBalance)
	assert.Equal(t, strategy.Impulsive, s.BestBalanceProfile)
	assert.Equal(t, "match-2", s.BestBalanceMatch)
}

func TestSummarizeTiesKeepProfileOrder(t *testing.T) {
	s := Summarize([]game.Result{
		makeResult("a", 10, strategy.Random, 1, game.EndElimination),
		makeResult("b", 10, strategy.Demanding, 1, game.EndElimination),
	})

	require.Len(t, s.Standings, 2)
	assert.Equal(t, strategy.Demanding, s.Standings[0].Profile)
	assert.Equal(t, strategy.Random, s.Standings[1].Profile)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.Total)
	assert.Zero(t, s.MeanRounds)
	assert.Empty(t, s.Standings)
}

func TestSummarizeProfileActivity(t *testing.T) {
	first := makeResult("match-1", 100, strategy.Cautious, 700, game.EndElimination)
	first.Stats.Players = [game.PlayerCount]game.PlayerStats{
		{PlayerID: 1, Profile: strategy.Impulsive, Purchases: []int{4, 8}, Spent: 160, RentPaid: 46, EliminatedRound: 31},
		{PlayerID: 2, Profile: strategy.Demanding, RentPaid: 20, RentReceived: 13, EliminatedRound: 57},
		{PlayerID: 3, Profile: strategy.Cautious, Purchases: []int{6}, Spent: 80, RentReceived: 53},
		{PlayerID: 4, Profile: strategy.Random, EliminatedRound: 12},
	}
	second := makeResult("match-2", 50, strategy.Random, 420, game.EndElimination)
	second.Stats.Players = [game.PlayerCount]game.PlayerStats{
		{PlayerID: 1, Profile: strategy.Impulsive, Purchases: []int{2}, Spent: 40, EliminatedRound: 9},
		{PlayerID: 2, Profile: strategy.Demanding},
		{PlayerID: 3, Profile: strategy.Cautious},
		{PlayerID: 4, Profile: strategy.Random},
	}
	// Results without per-player stats contribute nothing.
	third := makeResult("match-3", 30, strategy.Random, 380, game.EndElimination)

	s := Summarize([]game.Result{first, second, third})

	assert.Equal(t, []ProfileActivity{
		{Profile: strategy.Impulsive, Purchases: 3, Spent: 200, RentPaid: 46, Eliminations: 2, MeanEliminationRound: 20},
		{Profile: strategy.Demanding, RentPaid: 20, RentReceived: 13, Eliminations: 1, MeanEliminationRound: 57},
		{Profile: strategy.Cautious, Purchases: 1, Spent: 80, RentReceived: 53},
		{Profile: strategy.Random, Eliminations: 1, MeanEliminationRound: 12},
	}, s.Activity)
}

func TestWriteReport(t *testing.T) {
	first := makeResult("match-1", 100, strategy.Cautious, 700, game.EndElimination)
	first.Stats.Players = [game.PlayerCount]game.PlayerStats{
		{PlayerID: 1, Profile: strategy.Impulsive, Purchases: []int{4, 8}, Spent: 160, RentPaid: 46, EliminatedRound: 31},
		{PlayerID: 2, Profile: strategy.Demanding, RentPaid: 20, RentReceived: 13, EliminatedRound: 57},
		{PlayerID: 3, Profile: strategy.Cautious, Purchases: []int{6}, Spent: 80, RentReceived: 53},
		{PlayerID: 4, Profile: strategy.Random, EliminatedRound: 12},
	}
	s := Summarize([]game.Result{
		first,
		makeResult("match-2", 1000, strategy.Cautious, 650, game.EndTimeout),
		makeResult("match-3", 50, strategy.Random, 420, game.EndElimination),
		makeResult("match-4", 30, strategy.Random, 380, game.EndElimination),
	})

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, s))

	assert.Equal(t, `Statistics
Matches played: 4
Matches ended by timeout: 1
Mean rounds per match: 295
1. CAUTIOUS with 2 wins
2. RANDOM with 2 wins
Profile CAUTIOUS won 50.00% of matches
Profile RANDOM won 50.00% of matches
Profile IMPULSIVE bought 2 properties for 160, paid 46 rent, received 0 rent, eliminated 1 times (mean round 31)
Profile DEMANDING bought 0 properties for 0, paid 20 rent, received 13 rent, eliminated 1 times (mean round 57)
Profile CAUTIOUS bought 1 properties for 80, paid 0 rent, received 53 rent, eliminated 0 times (mean round 0)
Profile RANDOM bought 0 properties for 0, paid 0 rent, received 0 rent, eliminated 1 times (mean round 12)
Best winning balance: 700 (CAUTIOUS, match-1)
`, buf.String())
}
