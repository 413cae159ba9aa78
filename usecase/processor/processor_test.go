package processor

import (
	"context"
	"testing"

	"github.com/nk-nigeria/blackjack-cli/entity"
	"github.com/nk-nigeria/blackjack-cli/pkg/randutil"
	"github.com/nk-nigeria/blackjack-cli/usecase/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// scripted answers every question from fixed tables keyed by kind and
// records what it was asked.
type scripted struct {
	yes   map[entity.QuestionKind][]bool
	ints  map[entity.QuestionKind][]int64
	asked []entity.Question
}

func newScripted() *scripted {
	return &scripted{
		yes:  make(map[entity.QuestionKind][]bool),
		ints: make(map[entity.QuestionKind][]int64),
	}
}

func (s *scripted) AskYesNo(q entity.Question) bool {
	s.asked = append(s.asked, q)
	answers := s.yes[q.Kind]
	if len(answers) == 0 {
		return false
	}
	s.yes[q.Kind] = answers[1:]
	return answers[0]
}

func (s *scripted) AskInt(q entity.Question, lower, upper int64) int64 {
	s.asked = append(s.asked, q)
	answers := s.ints[q.Kind]
	if len(answers) == 0 {
		return lower
	}
	s.ints[q.Kind] = answers[1:]
	return answers[0]
}

func (s *scripted) kinds() []entity.QuestionKind {
	out := make([]entity.QuestionKind, 0, len(s.asked))
	for _, q := range s.asked {
		out = append(out, q.Kind)
	}
	return out
}

type recorder struct {
	events []entity.Event
}

func (r *recorder) Notify(e entity.Event) { r.events = append(r.events, e) }

func (r *recorder) ofType(t entity.EventType) []entity.Event {
	out := make([]entity.Event, 0)
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

type memRegistry struct {
	balances map[string]int64
	saved    [][]string
}

func (m *memRegistry) LookupOrCreate(_ context.Context, name string) (*entity.Participant, bool, error) {
	if b, ok := m.balances[name]; ok {
		return entity.NewPlayer(name, b), false, nil
	}
	return entity.NewPlayer(name, entity.DefaultStartingBalance), true, nil
}

func (m *memRegistry) SaveAll(ctx context.Context, players []*entity.Participant) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	names := make([]string, 0, len(players))
	for _, p := range players {
		m.balances[p.Name()] = p.Balance()
		names = append(names, p.Name())
	}
	m.saved = append(m.saved, names)
	return nil
}

func card(r entity.Rank) entity.Card {
	return entity.Card{Rank: r, Suit: entity.SuitClubs}
}

type fixture struct {
	t         *testing.T
	ctx       context.Context
	state     *entity.TableState
	decisions *scripted
	presenter *recorder
	registry  *memRegistry
	proc      IProcessor
}

// newFixture seats the players and stacks the shoe front first.
func newFixture(t *testing.T, players []*entity.Participant, shoe ...entity.Rank) *fixture {
	cards := make([]entity.Card, 0, len(shoe))
	for _, r := range shoe {
		cards = append(cards, card(r))
	}
	stack := entity.NewShoeFromCards(cards, randutil.New(1))
	stack.SetCutThreshold(0, 0)
	eng := engine.NewGameEngineWithShoe(stack, engine.DefaultShoeConfig(), randutil.New(1))

	f := &fixture{
		t:         t,
		ctx:       context.Background(),
		state:     entity.NewTableState(entity.NewDealer("", 0), entity.MaxPlayers),
		decisions: newScripted(),
		presenter: &recorder{},
		registry:  &memRegistry{balances: make(map[string]int64)},
	}
	f.proc = NewMatchProcessor(eng, f.decisions, f.presenter, f.registry)
	for _, p := range players {
		require.NoError(t, f.state.AddPlayer(p))
	}
	return f
}

// playRound runs the phases from deal to settlement with the given bets.
func (f *fixture) playRound(bets ...int64) {
	f.decisions.ints[entity.QuestionBet] = bets
	logger := zaptest.NewLogger(f.t)
	steps := []func() error{
		func() error { return f.proc.ProcessBetting(f.ctx, logger, f.state) },
		func() error { return f.proc.ProcessDeal(f.ctx, logger, f.state) },
		func() error { return f.proc.ProcessInsurance(f.ctx, logger, f.state) },
		func() error { return f.proc.ProcessPlayerTurns(f.ctx, logger, f.state) },
		func() error { return f.proc.ProcessDealerReveal(f.ctx, logger, f.state) },
		func() error { return f.proc.ProcessDealerTurn(f.ctx, logger, f.state) },
		func() error { return f.proc.ProcessFinishGame(f.ctx, logger, f.state) },
	}
	for _, step := range steps {
		require.NoError(f.t, step())
	}
}

func TestTwentyOneGetsNoOffers(t *testing.T) {
	alice := entity.NewPlayer("alice", 500)
	// deal order: alice, dealer, alice, dealer
	f := newFixture(t, []*entity.Participant{alice},
		entity.RankKing, entity.Rank9, entity.RankAce, entity.Rank8)
	f.decisions.yes[entity.QuestionSplit] = []bool{true}
	f.decisions.yes[entity.QuestionDoubleDown] = []bool{true}
	f.decisions.yes[entity.QuestionHit] = []bool{true}

	f.playRound(200)

	assert.Equal(t, []entity.QuestionKind{entity.QuestionBet}, f.decisions.kinds())
	assert.Len(t, alice.Hand(0), 2)
	assert.Equal(t, int64(700), alice.Balance(), "21 beats the dealer's 17")
	final := f.presenter.ofType(entity.EventHandFinal)
	require.NotEmpty(t, final)
	assert.Equal(t, entity.HandTwentyOne, final[0].HandType)
}

func TestSplitSevens(t *testing.T) {
	alice := entity.NewPlayer("alice", 1000)
	f := newFixture(t, []*entity.Participant{alice},
		entity.Rank7, entity.Rank10, entity.Rank7, entity.Rank8,
		// after the split: hand 1 gets a 4, hand 2 gets a King
		entity.Rank4, entity.RankKing)
	f.decisions.yes[entity.QuestionSplit] = []bool{true}

	f.playRound(100)

	assert.Equal(t, []int64{100, 100}, alice.Bets())
	assert.Equal(t, []entity.Card{card(entity.Rank7), card(entity.Rank4)}, alice.Hand(0))
	assert.Equal(t, []entity.Card{card(entity.Rank7), card(entity.RankKing)}, alice.Hand(1))

	kinds := f.decisions.kinds()
	assert.Equal(t, []entity.QuestionKind{
		entity.QuestionBet,
		entity.QuestionInsurance,
		entity.QuestionSplit,
		entity.QuestionDoubleDown, entity.QuestionHit,
		entity.QuestionDoubleDown, entity.QuestionHit,
	}, kinds)

	settled := f.presenter.ofType(entity.EventHandSettled)
	require.Len(t, settled, 2)
	assert.Equal(t, entity.OutcomeLoss, settled[0].Outcome, "11 against 18")
	assert.Equal(t, entity.OutcomeLoss, settled[1].Outcome, "17 against 18")
	assert.Equal(t, int64(800), alice.Balance())
}

func TestInsuranceLostWhenDealerHasSeventeen(t *testing.T) {
	alice := entity.NewPlayer("alice", 1000)
	bob := entity.NewPlayer("bob", 1000)
	f := newFixture(t, []*entity.Participant{alice, bob},
		entity.Rank10, entity.Rank10, entity.RankKing,
		entity.Rank10, entity.Rank7, entity.Rank7)
	f.decisions.yes[entity.QuestionInsurance] = []bool{true, true}
	f.decisions.ints[entity.QuestionInsuranceAmount] = []int64{50, 300}

	f.playRound(100, 100)

	insured := f.presenter.ofType(entity.EventInsuranceSettled)
	require.Len(t, insured, 2)
	assert.Equal(t, int64(-50), insured[0].Amount)
	assert.Equal(t, int64(-300), insured[1].Amount)
	// alice: 20 beats 17 (+100), bob: 17 pushes
	assert.Equal(t, int64(1000-50+100), alice.Balance())
	assert.Equal(t, int64(1000-300), bob.Balance())

	for _, q := range f.decisions.asked {
		if q.Kind == entity.QuestionInsurance {
			assert.Equal(t, card(entity.RankKing), q.DealerUp)
		}
	}
}

func TestInsuranceWonWhenDealerHasTwentyOne(t *testing.T) {
	alice := entity.NewPlayer("alice", 1000)
	f := newFixture(t, []*entity.Participant{alice},
		entity.Rank10, entity.RankAce, entity.Rank9, entity.RankKing)
	f.decisions.yes[entity.QuestionInsurance] = []bool{true}
	f.decisions.ints[entity.QuestionInsuranceAmount] = []int64{100}

	f.playRound(100)

	assert.Equal(t, int64(1000+100-100), alice.Balance(), "insurance pays, the 19 loses to 21")
	assert.Empty(t, f.presenter.ofType(entity.EventCardDrawn), "the dealer stands on 21")
}

func TestInsuranceNotOfferedUnderTen(t *testing.T) {
	alice := entity.NewPlayer("alice", 1000)
	f := newFixture(t, []*entity.Participant{alice},
		entity.Rank10, entity.Rank9, entity.Rank9, entity.Rank9)

	f.playRound(100)

	assert.NotContains(t, f.decisions.kinds(), entity.QuestionInsurance)
	assert.Equal(t, int64(1100), alice.Balance(), "19 beats 18")
}

func TestDealerBustIsAWin(t *testing.T) {
	alice := entity.NewPlayer("alice", 1000)
	f := newFixture(t, []*entity.Participant{alice},
		entity.Rank10, entity.Rank10, entity.Rank10, entity.Rank4, entity.RankKing)

	f.playRound(250)

	total, ok := f.state.Dealer().RevealTotal()
	require.True(t, ok)
	assert.Equal(t, 24, total)
	assert.Equal(t, int64(1250), alice.Balance())
}

func TestPushLeavesBalance(t *testing.T) {
	alice := entity.NewPlayer("alice", 1000)
	f := newFixture(t, []*entity.Participant{alice},
		entity.Rank10, entity.Rank10, entity.Rank8, entity.Rank8)

	f.playRound(400)

	settled := f.presenter.ofType(entity.EventHandSettled)
	require.Len(t, settled, 1)
	assert.Equal(t, entity.OutcomePush, settled[0].Outcome)
	assert.Equal(t, int64(1000), alice.Balance())
}

func TestDealerStandsWhenEveryoneBusts(t *testing.T) {
	alice := entity.NewPlayer("alice", 1000)
	f := newFixture(t, []*entity.Participant{alice},
		entity.Rank10, entity.Rank10, entity.Rank6, entity.Rank2, entity.RankKing)
	f.decisions.yes[entity.QuestionHit] = []bool{true}

	f.playRound(100)

	assert.Equal(t, 26, alice.HandTotal(0))
	assert.Len(t, f.state.Dealer().Hand(0), 2, "dealer stays on 12")
	decisions := f.presenter.ofType(entity.EventDealerDecision)
	require.Len(t, decisions, 1)
	assert.Equal(t, entity.DecisionStand, decisions[0].Decision)
	assert.Equal(t, int64(900), alice.Balance())
}

func TestDoubleDownEndsTheHand(t *testing.T) {
	alice := entity.NewPlayer("alice", 1000)
	f := newFixture(t, []*entity.Participant{alice},
		entity.Rank5, entity.Rank10, entity.Rank4, entity.Rank7, entity.Rank2)
	f.decisions.yes[entity.QuestionDoubleDown] = []bool{true}
	f.decisions.yes[entity.QuestionHit] = []bool{true, true}

	f.playRound(300)

	assert.Equal(t, 11, alice.HandTotal(0))
	assert.Equal(t, int64(600), alice.Bet(0))
	assert.NotContains(t, f.decisions.kinds(), entity.QuestionHit)
	assert.Equal(t, int64(400), alice.Balance(), "11 loses to 17")
}

func TestHitLoopStopsAtTwentyOne(t *testing.T) {
	alice := entity.NewPlayer("alice", 1000)
	f := newFixture(t, []*entity.Participant{alice},
		entity.Rank5, entity.Rank10, entity.Rank6, entity.Rank9, entity.RankKing)
	f.decisions.yes[entity.QuestionHit] = []bool{true, true, true}

	f.playRound(100)

	assert.Equal(t, 21, alice.HandTotal(0))
	hits := 0
	for _, k := range f.decisions.kinds() {
		if k == entity.QuestionHit {
			hits++
		}
	}
	assert.Equal(t, 1, hits)
	assert.Equal(t, int64(1100), alice.Balance())
}

func TestBettingSkipsBrokePlayers(t *testing.T) {
	alice := entity.NewPlayer("alice", 0)
	f := newFixture(t, []*entity.Participant{alice})
	err := f.proc.ProcessBetting(f.ctx, zaptest.NewLogger(t), f.state)
	assert.ErrorIs(t, err, entity.ErrNoPlayers)
	require.Len(t, f.presenter.ofType(entity.EventSatOut), 1)
	assert.Empty(t, f.decisions.asked)
}

func TestBettingRejectsOutOfRangeWager(t *testing.T) {
	alice := entity.NewPlayer("alice", 100)
	f := newFixture(t, []*entity.Participant{alice})
	f.decisions.ints[entity.QuestionBet] = []int64{101}
	err := f.proc.ProcessBetting(f.ctx, zaptest.NewLogger(t), f.state)
	assert.ErrorIs(t, err, entity.ErrInvalidWager)
}

func TestRoundClose(t *testing.T) {
	alice := entity.NewPlayer("alice", 1000)
	f := newFixture(t, []*entity.Participant{alice},
		entity.Rank10, entity.Rank10, entity.Rank9, entity.Rank7)
	f.playRound(100)
	logger := zaptest.NewLogger(t)

	f.decisions.yes[entity.QuestionContinue] = []bool{true}
	require.NoError(t, f.proc.ProcessRoundClose(f.ctx, logger, f.state))
	assert.False(t, f.state.IsGameEnded())
	assert.False(t, alice.IsBetting())
	assert.Empty(t, alice.Hand(0))
	assert.Empty(t, f.registry.saved)

	require.NoError(t, f.proc.ProcessRoundClose(f.ctx, logger, f.state))
	assert.True(t, f.state.IsGameEnded())
	assert.Equal(t, [][]string{{"alice"}}, f.registry.saved)
	assert.Equal(t, int64(1100), f.registry.balances["alice"])
	ended := f.presenter.ofType(entity.EventSessionEnded)
	require.Len(t, ended, 1)
	assert.Equal(t, int64(1100), ended[0].Balance)
}

func TestRoundCloseAfterCancelSavesWithoutAsking(t *testing.T) {
	alice := entity.NewPlayer("alice", 1000)
	f := newFixture(t, []*entity.Participant{alice},
		entity.Rank10, entity.Rank10, entity.Rank9, entity.Rank7)
	f.playRound(100)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f.decisions.asked = nil
	f.decisions.yes[entity.QuestionContinue] = []bool{true}
	require.NoError(t, f.proc.ProcessRoundClose(ctx, zaptest.NewLogger(t), f.state))

	assert.Empty(t, f.decisions.asked)
	assert.True(t, f.state.IsGameEnded())
	assert.Equal(t, int64(1100), f.registry.balances["alice"])
}

func TestProcessJoin(t *testing.T) {
	f := newFixture(t, nil)
	f.registry.balances["bob"] = 42
	require.NoError(t, f.proc.ProcessJoin(f.ctx, zaptest.NewLogger(t), f.state, []string{"alice", "bob"}))

	joined := f.presenter.ofType(entity.EventPlayerJoined)
	require.Len(t, joined, 2)
	assert.True(t, joined[0].Created)
	assert.Equal(t, int64(entity.DefaultStartingBalance), joined[0].Balance)
	assert.False(t, joined[1].Created)
	assert.Equal(t, int64(42), f.state.GetPlayer("bob").Balance())

	err := f.proc.ProcessJoin(f.ctx, zaptest.NewLogger(t), f.state, []string{"alice"})
	assert.ErrorIs(t, err, entity.ErrIllegalAction)
}

func TestNewGameReportsReplenish(t *testing.T) {
	f := newFixture(t, nil, entity.Rank2)
	require.NoError(t, f.proc.ProcessNewGame(f.ctx, zaptest.NewLogger(t), f.state))
	require.Len(t, f.presenter.ofType(entity.EventShoeReplenished), 1)
	assert.Equal(t, 1, f.state.Round())
}
