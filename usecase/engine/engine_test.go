package engine

import (
	"testing"

	"github.com/nk-nigeria/blackjack-cli/entity"
	"github.com/nk-nigeria/blackjack-cli/pkg/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func card(r entity.Rank) entity.Card {
	return entity.Card{Rank: r, Suit: entity.SuitHearts}
}

func stacked(ranks ...entity.Rank) *entity.Shoe {
	cards := make([]entity.Card, 0, len(ranks))
	for _, r := range ranks {
		cards = append(cards, card(r))
	}
	shoe := entity.NewShoeFromCards(cards, randutil.New(1))
	shoe.SetCutThreshold(0, 0)
	return shoe
}

func TestNewGameEngineBuildsShoe(t *testing.T) {
	eng := NewGameEngine(DefaultShoeConfig(), randutil.New(1))
	shoe := eng.Shoe()
	assert.Equal(t, 8*entity.CardsPerDeck, shoe.Len())
	assert.GreaterOrEqual(t, shoe.CutCard(), 60)
	assert.Less(t, shoe.CutCard(), 80)
	assert.False(t, shoe.NeedsReplenishment())

	s := entity.NewTableState(entity.NewDealer("", 0), 1)
	require.NoError(t, eng.NewGame(s))
	assert.False(t, s.IsReplenished(), "a fresh shoe is not rebuilt")
	assert.Same(t, shoe, eng.Shoe())
	assert.Equal(t, 1, s.Round())
}

func TestNewGameReplenishes(t *testing.T) {
	cfg := ShoeConfig{DeckCount: 2, ShufflePasses: 2, CutCardMin: 20, CutCardMax: 30}
	low := stacked(entity.RankAce, entity.Rank2, entity.Rank3)
	eng := NewGameEngineWithShoe(low, cfg, randutil.New(2))
	require.True(t, low.NeedsReplenishment())

	s := entity.NewTableState(entity.NewDealer("", 0), 1)
	require.NoError(t, eng.NewGame(s))
	assert.True(t, s.IsReplenished())
	assert.NotSame(t, low, eng.Shoe())
	assert.Equal(t, 2*entity.CardsPerDeck, eng.Shoe().Len())
	assert.GreaterOrEqual(t, eng.Shoe().CutCard(), 20)
	assert.Less(t, eng.Shoe().CutCard(), 30)

	require.NoError(t, eng.NewGame(s))
	assert.False(t, s.IsReplenished(), "flag is per round")
}

func TestDrawAndExhaustion(t *testing.T) {
	eng := NewGameEngineWithShoe(stacked(entity.RankKing), DefaultShoeConfig(), randutil.New(1))
	p := entity.NewPlayer("alice", 100)
	got, err := eng.Draw(p, 0)
	require.NoError(t, err)
	assert.Equal(t, card(entity.RankKing), got)
	assert.Equal(t, []entity.Card{card(entity.RankKing)}, p.Hand(0))

	_, err = eng.Draw(p, 0)
	assert.ErrorIs(t, err, entity.ErrExhaustedShoe)
}

func TestSplitDealsOneCardToEachHand(t *testing.T) {
	eng := NewGameEngineWithShoe(stacked(entity.Rank3, entity.RankKing), DefaultShoeConfig(), randutil.New(1))
	p := entity.NewPlayer("alice", 1000)
	require.NoError(t, p.PlaceBet(100))
	require.NoError(t, p.AddCard(card(entity.Rank7), 0))
	require.NoError(t, p.AddCard(card(entity.Rank7), 0))

	require.NoError(t, eng.Split(p))
	assert.Equal(t, []int64{100, 100}, p.Bets())
	assert.Equal(t, []entity.Card{card(entity.Rank7), card(entity.Rank3)}, p.Hand(0))
	assert.Equal(t, []entity.Card{card(entity.Rank7), card(entity.RankKing)}, p.Hand(1))

	q := entity.NewPlayer("bob", 1000)
	require.NoError(t, q.PlaceBet(100))
	assert.ErrorIs(t, eng.Split(q), entity.ErrIllegalAction)
}

func TestDoubleDownAddsExactlyOneCard(t *testing.T) {
	eng := NewGameEngineWithShoe(stacked(entity.Rank2, entity.Rank9), DefaultShoeConfig(), randutil.New(1))
	p := entity.NewPlayer("alice", 1000)
	require.NoError(t, p.PlaceBet(300))
	require.NoError(t, p.AddCard(card(entity.Rank5), 0))
	require.NoError(t, p.AddCard(card(entity.Rank4), 0))

	got, err := eng.DoubleDown(p, 0)
	require.NoError(t, err)
	assert.Equal(t, card(entity.Rank2), got)
	assert.Equal(t, int64(600), p.Bet(0))
	assert.Len(t, p.Hand(0), 3)
	assert.Equal(t, 1, eng.Shoe().Len())

	_, err = eng.DoubleDown(p, 0)
	assert.ErrorIs(t, err, entity.ErrIllegalAction)
}

func TestFinishSettlesEverySubHand(t *testing.T) {
	dealer := entity.NewDealer("", 0)
	s := entity.NewTableState(dealer, 3)
	alice := entity.NewPlayer("alice", 1000)
	bob := entity.NewPlayer("bob", 1000)
	idle := entity.NewPlayer("carol", 1000)
	for _, p := range []*entity.Participant{alice, bob, idle} {
		require.NoError(t, s.AddPlayer(p))
	}
	require.NoError(t, alice.PlaceBet(100))
	require.NoError(t, bob.PlaceBet(200))
	for _, r := range []entity.Rank{entity.Rank10, entity.Rank8} {
		require.NoError(t, dealer.AddCard(card(r), 0))
	}
	for _, r := range []entity.Rank{entity.Rank10, entity.Rank10} {
		require.NoError(t, alice.AddCard(card(r), 0))
	}
	for _, r := range []entity.Rank{entity.Rank8, entity.Rank8} {
		require.NoError(t, bob.AddCard(card(r), 0))
	}
	require.NoError(t, bob.Split())
	require.NoError(t, bob.AddCard(card(entity.RankQueen), 0))
	require.NoError(t, bob.AddCard(card(entity.Rank9), 1))

	eng := NewGameEngineWithShoe(stacked(), DefaultShoeConfig(), randutil.New(1))
	results := eng.Finish(s)
	require.Len(t, results, 3)

	assert.Equal(t, "alice", results[0].Player.Name())
	assert.Equal(t, entity.OutcomeWin, results[0].Outcome)
	assert.Equal(t, int64(100), results[0].Delta)

	assert.Equal(t, 0, results[1].HandIndex)
	assert.Equal(t, entity.OutcomePush, results[1].Outcome)
	assert.Equal(t, 1, results[2].HandIndex)
	assert.Equal(t, entity.OutcomeLoss, results[2].Outcome)
	assert.Equal(t, int64(-200), results[2].Delta)

	assert.Equal(t, int64(1100), alice.Balance())
	assert.Equal(t, int64(800), bob.Balance())
	assert.Equal(t, int64(1000), idle.Balance())
}
