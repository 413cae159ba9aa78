package engine

import (
	"fmt"
	"math/rand/v2"

	"github.com/nk-nigeria/blackjack-cli/entity"
)

// ShoeConfig describes how a shoe is (re)built.
type ShoeConfig struct {
	DeckCount     int
	ShufflePasses int
	CutCardMin    int
	CutCardMax    int
}

func DefaultShoeConfig() ShoeConfig {
	return ShoeConfig{
		DeckCount:     8,
		ShufflePasses: 1,
		CutCardMin:    60,
		CutCardMax:    80,
	}
}

// HandResult is the settlement of one player sub-hand.
type HandResult struct {
	Player    *entity.Participant
	HandIndex int
	Total     int
	Outcome   entity.Outcome
	Delta     int64
}

type Engine struct {
	deck *entity.Shoe
	cfg  ShoeConfig
	rng  *rand.Rand
}

// NewGameEngine builds the session's first shoe immediately.
func NewGameEngine(cfg ShoeConfig, rng *rand.Rand) UseCase {
	m := &Engine{cfg: cfg, rng: rng}
	m.deck = m.buildShoe()
	return m
}

// NewGameEngineWithShoe starts from a prepared shoe; replenishment still
// rebuilds from cfg.
func NewGameEngineWithShoe(shoe *entity.Shoe, cfg ShoeConfig, rng *rand.Rand) UseCase {
	return &Engine{deck: shoe, cfg: cfg, rng: rng}
}

func (m *Engine) buildShoe() *entity.Shoe {
	deckCount := m.cfg.DeckCount
	if deckCount < 1 {
		deckCount = 1
	}
	shoe := entity.NewDeck(m.rng)
	shoe.SetCutThreshold(m.cfg.CutCardMin, m.cfg.CutCardMax)
	for i := 1; i < deckCount; i++ {
		shoe.Merge(entity.NewDeck(m.rng))
	}
	passes := m.cfg.ShufflePasses
	if passes < 1 {
		passes = 1
	}
	shoe.ShuffleAndCut(passes)
	return shoe
}

// NewGame opens a round, rebuilding the shoe first when the cut card has
// been reached.
func (m *Engine) NewGame(s *entity.TableState) error {
	s.NewRound()
	if m.deck == nil || m.deck.NeedsReplenishment() {
		m.deck = m.buildShoe()
		s.SetReplenished(true)
	}
	return nil
}

func (m *Engine) Shoe() *entity.Shoe { return m.deck }

func (m *Engine) Draw(p *entity.Participant, handIndex int) (entity.Card, error) {
	cards, err := m.deck.Deal(1)
	if err != nil {
		return entity.Card{}, err
	}
	if err := p.AddCard(cards[0], handIndex); err != nil {
		return entity.Card{}, err
	}
	return cards[0], nil
}

// DoubleDown doubles the sub-hand's stake and adds its single last card.
func (m *Engine) DoubleDown(p *entity.Participant, handIndex int) (entity.Card, error) {
	if err := p.DoubleDown(handIndex); err != nil {
		return entity.Card{}, err
	}
	return m.Draw(p, handIndex)
}

// Split forks the hand and completes each sub-hand with a fresh card.
func (m *Engine) Split(p *entity.Participant) error {
	if err := p.Split(); err != nil {
		return err
	}
	for i := 0; i < 2; i++ {
		if _, err := m.Draw(p, i); err != nil {
			return fmt.Errorf("split %s: %w", p.Name(), err)
		}
	}
	return nil
}

func (m *Engine) Insurance(p *entity.Participant, amount int64) error {
	return p.PlaceInsurance(amount)
}

// Finish settles every active sub-hand of every betting player against the
// dealer's total.
func (m *Engine) Finish(s *entity.TableState) []*HandResult {
	dealerTotal := s.Dealer().HandTotal(0)
	results := make([]*HandResult, 0)
	for _, p := range s.PlayingPlayers() {
		for i := 0; i < p.ActiveHands(); i++ {
			outcome, delta := p.Settle(i, dealerTotal)
			results = append(results, &HandResult{
				Player:    p,
				HandIndex: i,
				Total:     p.HandTotal(i),
				Outcome:   outcome,
				Delta:     delta,
			})
		}
	}
	return results
}
