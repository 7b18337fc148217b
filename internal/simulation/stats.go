package simulation

import (
	"fmt"
	"io"
	"sort"

	"github.com/littlemonopoly/simulator-go/internal/game"
	"github.com/littlemonopoly/simulator-go/internal/game/strategy"
)

// Standing is one line of the profile ranking.
type Standing struct {
	Place   int
	Profile strategy.Kind
	Wins    int
	Percent float64
}

// ProfileActivity totals one profile's play across a batch.
type ProfileActivity struct {
	Profile      strategy.Kind
	Purchases    int
	Spent        int
	RentPaid     int
	RentReceived int
	Eliminations int
	// MeanEliminationRound is truncated toward zero; 0 when never eliminated.
	MeanEliminationRound int
}

// Summary aggregates a batch of match results.
type Summary struct {
	Total      int
	Timeouts   int
	MeanRounds int // truncated toward zero
	Wins       map[strategy.Kind]int
	Standings  []Standing
	Activity   []ProfileActivity // one entry per profile, in profile order

	BestBalance        int
	BestBalanceProfile strategy.Kind
	BestBalanceMatch   string
}

// Summarize reduces results to batch statistics. Only profiles that won at
// least once are ranked, most wins first with ties kept in profile order.
func Summarize(results []game.Result) Summary {
	s := Summary{
		Total: len(results),
		Wins:  make(map[strategy.Kind]int, len(strategy.Kinds())),
	}
	if len(results) == 0 {
		return s
	}

	activity := make(map[strategy.Kind]*ProfileActivity, len(strategy.Kinds()))
	eliminationRounds := make(map[strategy.Kind]int, len(strategy.Kinds()))
	for _, kind := range strategy.Kinds() {
		activity[kind] = &ProfileActivity{Profile: kind}
	}

	rounds := 0
	for i, r := range results {
		for _, ps := range r.Stats.Players {
			a, ok := activity[ps.Profile]
			if !ok || ps.PlayerID == 0 {
				continue
			}
			a.Purchases += len(ps.Purchases)
			a.Spent += ps.Spent
			a.RentPaid += ps.RentPaid
			a.RentReceived += ps.RentReceived
			if ps.EliminatedRound > 0 {
				a.Eliminations++
				eliminationRounds[ps.Profile] += ps.EliminatedRound
			}
		}

		rounds += r.Rounds
		if r.Reason == game.EndTimeout {
			s.Timeouts++
		}
		s.Wins[r.WinnerProfile]++
		if i == 0 || r.WinnerBalance > s.BestBalance {
			s.BestBalance = r.WinnerBalance
			s.BestBalanceProfile = r.WinnerProfile
			s.BestBalanceMatch = r.Label
		}
	}
	s.MeanRounds = rounds / len(results)

	for _, kind := range strategy.Kinds() {
		a := activity[kind]
		if a.Eliminations > 0 {
			a.MeanEliminationRound = eliminationRounds[kind] / a.Eliminations
		}
		s.Activity = append(s.Activity, *a)
	}

	for _, kind := range strategy.Kinds() {
		if wins := s.Wins[kind]; wins > 0 {
			s.Standings = append(s.Standings, Standing{
				Profile: kind,
				Wins:    wins,
				Percent: float64(wins) / float64(len(results)) * 100,
			})
		}
	}
	sort.SliceStable(s.Standings, func(i, j int) bool {
		return s.Standings[i].Wins > s.Standings[j].Wins
	})
	for i := range s.Standings {
		s.Standings[i].Place = i + 1
	}

	return s
}

// WriteReport prints the summary in the batch report layout.
func WriteReport(w io.Writer, s Summary) error {
	lines := []string{
		"Statistics",
		fmt.Sprintf("Matches played: %d", s.Total),
		fmt.Sprintf("Matches ended by timeout: %d", s.Timeouts),
		fmt.Sprintf("Mean rounds per match: %d", s.MeanRounds),
	}
	for _, st := range s.Standings {
		lines = append(lines, fmt.Sprintf("%d. %s with %d wins", st.Place, st.Profile, st.Wins))
	}
	for _, st := range s.Standings {
		lines = append(lines, fmt.Sprintf("Profile %s won %.2f%% of matches", st.Profile, st.Percent))
	}
	for _, a := range s.Activity {
		lines = append(lines, fmt.Sprintf(
			"Profile %s bought %d properties for %d, paid %d rent, received %d rent, eliminated %d times (mean round %d)",
			a.Profile, a.Purchases, a.Spent, a.RentPaid, a.RentReceived, a.Eliminations, a.MeanEliminationRound))
	}
	if s.Total > 0 {
		lines = append(lines, fmt.Sprintf("Best winning balance: %d (%s, %s)",
			s.BestBalance, s.BestBalanceProfile, s.BestBalanceMatch))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}
