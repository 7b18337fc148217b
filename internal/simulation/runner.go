package simulation

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/littlemonopoly/simulator-go/internal/config"
	"github.com/littlemonopoly/simulator-go/internal/game"
	"go.uber.org/zap"
)

// Runner plays matches one after another. Every match gets its own random
// source seeded from the runner's, so a fixed batch seed replays the whole
// batch.
type Runner struct {
	cfg    config.SimulationConfig
	logger *zap.Logger
	runID  string
	seed   int64
	rng    *rand.Rand
}

// NewRunner creates a runner. A zero seed is replaced with a time-based one.
func NewRunner(cfg config.SimulationConfig, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	runID := uuid.New().String()
	return &Runner{
		cfg:    cfg,
		logger: logger.With(zap.String("run_id", runID)),
		runID:  runID,
		seed:   seed,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// RunID identifies this runner in log output.
func (r *Runner) RunID() string {
	return r.runID
}

// Seed returns the effective batch seed.
func (r *Runner) Seed() int64 {
	return r.seed
}

// RunMatch plays a single match to completion. The flags only control what
// gets logged.
func (r *Runner) RunMatch(label string, logTurns, logResult bool) game.Result {
	matchSeed := r.rng.Int63()

	turnLogger := zap.NewNop()
	if logTurns {
		turnLogger = r.logger.With(zap.Int64("match_seed", matchSeed))
	}

	m := game.NewMatch(label, rand.New(rand.NewSource(matchSeed)), turnLogger)
	result := m.Run()

	if logResult {
		r.logger.Info("match finished",
			zap.String("match", result.Label),
			zap.Int("rounds", result.Rounds),
			zap.Stringer("winner_profile", result.WinnerProfile),
			zap.Int("winner_balance", result.WinnerBalance),
			zap.Stringer("reason", result.Reason),
			zap.Int("purchases", result.Stats.Purchases),
			zap.Int("rent_payments", result.Stats.RentPayments),
			zap.Int("rent_volume", result.Stats.RentVolume),
			zap.Objects("players", result.Stats.Players[:]),
		)
	}

	return result
}

// RunBatch plays the configured number of matches. Cancellation is only
// observed between matches; the results gathered so far are returned with
// the error.
func (r *Runner) RunBatch(ctx context.Context) ([]game.Result, error) {
	start := time.Now()
	r.logger.Info("starting batch",
		zap.Int("matches", r.cfg.Matches),
		zap.Int64("seed", r.seed),
	)

	results := make([]game.Result, 0, r.cfg.Matches)
	for i := 1; i <= r.cfg.Matches; i++ {
		if err := ctx.Err(); err != nil {
			r.logger.Warn("batch cancelled",
				zap.Int("completed", len(results)),
				zap.Error(err),
			)
			return results, fmt.Errorf("batch cancelled after %d matches: %w", len(results), err)
		}
		label := fmt.Sprintf("match-%d", i)
		results = append(results, r.RunMatch(label, r.cfg.LogTurns, r.cfg.LogResults))
	}

	r.logger.Info("batch finished",
		zap.Int("matches", len(results)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return results, nil
}
