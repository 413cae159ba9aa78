package service

import (
	"context"
	"errors"
	"testing"

	"github.com/nk-nigeria/blackjack-cli/entity"
	"github.com/nk-nigeria/blackjack-cli/pkg/randutil"
	"github.com/nk-nigeria/blackjack-cli/playerdb"
	"github.com/nk-nigeria/blackjack-cli/usecase/engine"
	"github.com/nk-nigeria/blackjack-cli/usecase/processor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

type eventLog struct {
	events []entity.Event
}

func (l *eventLog) Notify(e entity.Event) { l.events = append(l.events, e) }

func (l *eventLog) count(t entity.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func TestBotSessionSavesEveryBalance(t *testing.T) {
	ctx := context.Background()
	rng := randutil.New(7)
	store := playerdb.NewMemoryStore()
	require.NoError(t, store.Put(ctx, playerdb.Record{Name: "Bot-2", Balance: 3000}))
	registry := playerdb.NewRegistry(store, 10000, zaptest.NewLogger(t))

	limit := NewRoundLimit(5)
	decisions := processor.NewRoutedDecisions(limit)
	names := AddBots(decisions, 3, rng)
	require.Equal(t, []string{"Bot-1", "Bot-2", "Bot-3"}, names)

	log := &eventLog{}
	opts := TableOptions{Shoe: engine.DefaultShoeConfig(), DealerStandsOn: entity.DealerStands, MaxPlayers: entity.MaxPlayers}
	session := NewSession(opts, rng, decisions, log, registry, zaptest.NewLogger(t))
	require.NoError(t, session.Run(ctx, names))

	state := session.State()
	assert.True(t, state.IsGameEnded())
	assert.Equal(t, entity.GameStateFinish, state.GetGameState())
	assert.GreaterOrEqual(t, state.Round(), 1)
	assert.LessOrEqual(t, state.Round(), 5)
	assert.Equal(t, 1, log.count(entity.EventSessionStarted))
	assert.Equal(t, 3, log.count(entity.EventSessionEnded))
	assert.Equal(t, state.Round(), log.count(entity.EventRoundStarted))

	start := map[string]int64{"Bot-1": 10000, "Bot-2": 3000, "Bot-3": 10000}
	delta := map[string]int64{}
	for _, e := range log.events {
		if e.Type == entity.EventHandSettled || e.Type == entity.EventInsuranceSettled {
			delta[e.Player] += e.Amount
		}
	}

	saved, err := registry.List(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 3)
	for _, rec := range saved {
		assert.Equal(t, start[rec.Name]+delta[rec.Name], rec.Balance, rec.Name)
		assert.Equal(t, state.GetPlayer(rec.Name).Balance(), rec.Balance, rec.Name)
	}
}

func TestSessionWithoutPlayersEndsAtOnce(t *testing.T) {
	ctx := context.Background()
	registry := playerdb.NewRegistry(playerdb.NewMemoryStore(), 0, nil)
	log := &eventLog{}
	session := NewSession(TableOptions{Shoe: engine.DefaultShoeConfig()}, randutil.New(1), NewRoundLimit(1), log, registry, nil)

	require.NoError(t, session.Run(ctx, nil))
	assert.Equal(t, entity.GameStateFinish, session.State().GetGameState())
	assert.Zero(t, session.State().Round())
	assert.Equal(t, entity.DefaultDealerName, session.State().Dealer().Name())
	assert.Zero(t, log.count(entity.EventRoundStarted))
}

type failingRegistry struct{}

func (failingRegistry) LookupOrCreate(_ context.Context, name string) (*entity.Participant, bool, error) {
	return entity.NewPlayer(name, 0), true, nil
}

func (failingRegistry) SaveAll(context.Context, []*entity.Participant) error {
	return errors.New("disk full")
}

func TestSessionLogsOneModuleFieldAndTheTurnOnAbort(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core).With(zap.String("module", entity.ModuleName))
	session := NewSession(TableOptions{Shoe: engine.DefaultShoeConfig()}, randutil.New(1), NewRoundLimit(1), nil, failingRegistry{}, logger)

	err := session.Run(context.Background(), []string{"alice"})
	require.Error(t, err)

	require.NotZero(t, logs.Len())
	for _, entry := range logs.All() {
		n := 0
		for _, f := range entry.Context {
			if f.Key == "module" {
				n++
			}
		}
		assert.Equal(t, 1, n, entry.Message)
	}
	aborted := logs.FilterMessage("session aborted").All()
	require.Len(t, aborted, 1)
	fields := aborted[0].ContextMap()
	assert.Contains(t, fields, "turn")
	assert.Contains(t, fields, "hand")
	assert.Equal(t, string(entity.GameStateRoundClose), fields["state"])
}

func TestBotNamesMatchSeatedBots(t *testing.T) {
	assert.Empty(t, BotNames(0))
	decisions := processor.NewRoutedDecisions(NewRoundLimit(1))
	assert.Equal(t, BotNames(2), AddBots(decisions, 2, randutil.New(5)))
}

func TestRoundLimit(t *testing.T) {
	limit := NewRoundLimit(2)
	cont := entity.NewQuestion(entity.QuestionContinue, nil, 0)

	assert.False(t, limit.AskYesNo(entity.NewQuestion(entity.QuestionInsurance, nil, 0)))
	assert.Equal(t, int64(5), limit.AskInt(entity.NewQuestion(entity.QuestionBet, nil, 0), 5, 50))
	assert.True(t, limit.AskYesNo(cont))
	assert.False(t, limit.AskYesNo(cont))
	assert.Equal(t, 2, limit.Played())
}
