package game

import (
	"fmt"

	"github.com/littlemonopoly/simulator-go/internal/game/board"
	"github.com/littlemonopoly/simulator-go/internal/game/rules"
	"github.com/littlemonopoly/simulator-go/internal/game/strategy"
	"github.com/littlemonopoly/simulator-go/internal/game/watchers"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Match is a single play-through. It owns its players and board exclusively
// and is not safe for concurrent use.
type Match struct {
	label  string
	rng    Rand
	logger *zap.Logger

	state   rules.MatchState
	players [PlayerCount]Player
	board   *board.Board
	turns   *rules.TurnManager
	round   int
	history []TurnRecord
	result  *Result

	events       *rules.EventBus
	watchers     *rules.WatcherRegistry
	purchases    *watchers.PurchaseWatcher
	rents        *watchers.RentWatcher
	eliminations *watchers.EliminationWatcher
}

// NewMatch sets up a match: four players in a shuffled turn order, all of
// them on the start slot of a fresh board.
func NewMatch(label string, rng Rand, logger *zap.Logger) *Match {
	if rng == nil {
		panic("game: random source is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Match{
		label:        label,
		rng:          rng,
		logger:       logger,
		state:        rules.MatchStateRunning,
		players:      newPlayers(),
		history:      make([]TurnRecord, 0, 64),
		events:       rules.NewEventBus(),
		watchers:     rules.NewWatcherRegistry(),
		purchases:    watchers.NewPurchaseWatcher(),
		rents:        watchers.NewRentWatcher(),
		eliminations: watchers.NewEliminationWatcher(),
	}

	order := make([]int, PlayerCount)
	for i := range order {
		order[i] = m.players[i].ID
	}
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	m.board = board.Build(order)
	m.turns = rules.NewTurnManager(order)

	m.watchers.AddWatcher(m.purchases)
	m.watchers.AddWatcher(m.rents)
	m.watchers.AddWatcher(m.eliminations)
	m.events.Subscribe(m.watchers.NotifyWatchers)
	m.events.Subscribe(m.logEvent)

	m.events.Publish(rules.NewEvent(rules.EventMatchStarted, m.label, 0, 0))
	m.logger.Debug("match started",
		zap.String("match", m.label),
		zap.Ints("turn_order", order),
	)

	return m
}

// Label returns the identifier the match was created with.
func (m *Match) Label() string {
	return m.label
}

// State returns whether the match is still running.
func (m *Match) State() rules.MatchState {
	return m.state
}

// TurnOrder returns the shuffled turn order.
func (m *Match) TurnOrder() []int {
	return m.turns.Order()
}

// Player returns a copy of the player with the given id.
func (m *Match) Player(id int) Player {
	return *m.player(id)
}

// Players returns a copy of every player, ordered by id.
func (m *Match) Players() []Player {
	out := make([]Player, PlayerCount)
	copy(out, m.players[:])
	return out
}

// Property returns a copy of the property on slot id.
func (m *Match) Property(id int) board.Property {
	return *m.board.Property(id)
}

// Position returns the slot a player stands on. Eliminated players are off
// the board.
func (m *Match) Position(playerID int) (int, bool) {
	return m.board.Position(playerID)
}

// History returns the trace of every turn played so far.
func (m *Match) History() []TurnRecord {
	return append([]TurnRecord(nil), m.history...)
}

// PlayTurn advances exactly one active player. It reports false, and plays
// nothing, once fewer than two players remain.
func (m *Match) PlayTurn() (TurnRecord, bool) {
	if m.state == rules.MatchStateFinished {
		return TurnRecord{}, false
	}

	playerID, ok := m.turns.Next(m.isActive)
	if !ok {
		m.state = rules.MatchStateFinished
		m.logger.Debug("no other players left", zap.String("match", m.label))
		return TurnRecord{}, false
	}
	m.round = m.turns.TurnNumber()

	player := m.player(playerID)
	m.publish(rules.EventTurnStarted, player.ID, 0)

	die := m.rng.Intn(DieFaces) + 1
	m.publish(rules.EventDieRolled, player.ID, die)

	from, to := m.board.Move(player.ID, die)
	moved := rules.NewEvent(rules.EventPlayerMoved, m.label, m.round, player.ID)
	moved.SlotID = to
	moved.Amount = die
	moved.Balance = player.Balance
	m.events.Publish(moved)

	rec := TurnRecord{
		Turn:     m.round,
		PlayerID: player.ID,
		Profile:  player.Profile,
		Die:      die,
		From:     from,
		To:       to,
	}
	m.resolveProperty(player, to, &rec)
	rec.Balances = m.balances()

	m.history = append(m.history, rec)
	return rec, true
}

// Run plays turns until one player is left or the round cap is reached.
// Rounds counts the loop iteration that ended the match, so a match whose
// last bankruptcy happens on turn k reports k+1 rounds.
func (m *Match) Run() Result {
	if m.result != nil {
		return *m.result
	}

	rounds := 0
	for round := 1; round <= MaxRounds; round++ {
		rounds = round
		if _, ok := m.PlayTurn(); !ok {
			break
		}
	}
	m.state = rules.MatchStateFinished

	reason := EndElimination
	if m.turns.ActiveCount(m.isActive) > 1 {
		reason = EndTimeout
	}

	winner := m.winner()
	result := Result{
		Label:         m.label,
		Rounds:        rounds,
		WinnerID:      winner.ID,
		WinnerProfile: winner.Profile,
		WinnerBalance: winner.Balance,
		Reason:        reason,
		Stats:         m.stats(),
	}
	m.result = &result

	finished := rules.NewEventWithAmount(rules.EventMatchFinished, m.label, m.round, winner.ID, rounds)
	finished.Balance = winner.Balance
	m.events.Publish(finished)

	return result
}

func (m *Match) resolveProperty(player *Player, slotID int, rec *TurnRecord) {
	prop := m.board.Property(slotID)

	switch {
	case prop.Available && player.Balance >= prop.Price:
		if !player.Profile.Decide(player.Balance, *prop, m.rng) {
			rec.Action = ActionDeclined
			m.publishAt(rules.EventPurchaseDeclined, player, slotID, prop.Price, 0)
			return
		}
		prop.Sell(player.ID)
		player.Balance -= prop.Price
		rec.Action = ActionPurchased
		rec.Amount = prop.Price
		m.publishAt(rules.EventPropertyPurchased, player, slotID, prop.Price, 0)

	case prop.HasOwner() && prop.OwnerID != player.ID:
		owner := m.player(prop.OwnerID)
		if !owner.Active {
			panic(fmt.Sprintf("game: property %d owned by eliminated player %d", prop.ID, owner.ID))
		}
		player.Balance -= prop.Rent
		owner.Balance += prop.Rent
		rec.Action = ActionRentPaid
		rec.Amount = prop.Rent
		rec.CounterpartyID = owner.ID
		m.publishAt(rules.EventRentPaid, player, slotID, prop.Rent, owner.ID)
		m.publishAt(rules.EventRentReceived, owner, slotID, prop.Rent, player.ID)
		m.checkElimination(player, rec)

	case prop.OwnerID == player.ID:
		rec.Action = ActionOwnProperty

	default:
		rec.Action = ActionUnaffordable
	}
}

// checkElimination takes a bankrupt player out of the game and puts all of
// its properties back on sale.
func (m *Match) checkElimination(player *Player, rec *TurnRecord) {
	if player.Balance >= 0 {
		return
	}

	player.Active = false
	released := m.board.ReleaseOwnedBy(player.ID)
	m.board.Remove(player.ID)
	rec.Eliminated = true
	rec.Released = released

	m.publishAt(rules.EventPlayerEliminated, player, 0, len(released), 0)
	for _, id := range released {
		m.publishAt(rules.EventPropertyReleased, player, id, m.board.Property(id).Price, 0)
	}
}

// winner returns the first active player in turn order.
func (m *Match) winner() *Player {
	for _, id := range m.turns.Order() {
		if p := m.player(id); p.Active {
			return p
		}
	}
	panic(fmt.Sprintf("game: match %s finished without an active player", m.label))
}

func (m *Match) stats() MatchStats {
	order := m.eliminations.Order()
	profiles := make([]strategy.Kind, len(order))
	for i, id := range order {
		profiles[i] = m.player(id).Profile
	}
	stats := MatchStats{
		Purchases:        m.purchases.Total(),
		RentPayments:     m.rents.Payments(),
		RentVolume:       m.rents.Volume(),
		EliminationOrder: profiles,
	}
	for i := range m.players {
		id := m.players[i].ID
		round, _ := m.eliminations.RoundOf(id)
		stats.Players[i] = PlayerStats{
			PlayerID:        id,
			Profile:         m.players[i].Profile,
			Purchases:       append([]int(nil), m.purchases.GetPurchases(id)...),
			Spent:           m.purchases.GetSpent(id),
			RentPaid:        m.rents.GetPaid(id),
			RentReceived:    m.rents.GetReceived(id),
			EliminatedRound: round,
		}
	}
	return stats
}

func (m *Match) player(id int) *Player {
	if id < 1 || id > PlayerCount {
		panic(fmt.Sprintf("game: player %d out of range [1,%d]", id, PlayerCount))
	}
	return &m.players[id-1]
}

func (m *Match) isActive(id int) bool {
	return m.player(id).Active
}

func (m *Match) balances() [PlayerCount]int {
	var out [PlayerCount]int
	for i := range m.players {
		out[i] = m.players[i].Balance
	}
	return out
}

func (m *Match) publish(eventType rules.EventType, playerID, amount int) {
	evt := rules.NewEventWithAmount(eventType, m.label, m.round, playerID, amount)
	evt.Balance = m.player(playerID).Balance
	m.events.Publish(evt)
}

func (m *Match) publishAt(eventType rules.EventType, player *Player, slotID, amount, counterparty int) {
	evt := rules.NewEventWithAmount(eventType, m.label, m.round, player.ID, amount)
	evt.SlotID = slotID
	evt.Balance = player.Balance
	evt.CounterpartyID = counterparty
	m.events.Publish(evt)
}

// logEvent mirrors every event to the turn logger at debug level.
func (m *Match) logEvent(evt rules.Event) {
	ce := m.logger.Check(zapcore.DebugLevel, string(evt.Type))
	if ce == nil {
		return
	}
	fields := []zap.Field{
		zap.String("match", evt.MatchLabel),
		zap.Int("round", evt.Round),
	}
	if evt.PlayerID != 0 {
		fields = append(fields, zap.Int("player_id", evt.PlayerID))
	}
	if evt.SlotID != 0 {
		fields = append(fields, zap.Int("slot", evt.SlotID))
	}
	if evt.CounterpartyID != 0 {
		fields = append(fields, zap.Int("counterparty_id", evt.CounterpartyID))
	}
	fields = append(fields,
		zap.Int("amount", evt.Amount),
		zap.Int("balance", evt.Balance),
	)
	ce.Write(fields...)
}
