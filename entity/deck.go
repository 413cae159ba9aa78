package entity

import (
	"fmt"
	"math/rand/v2"
)

const (
	CardsPerDeck   = 52
	DefaultCutCard = 10
)

// Shoe is the working supply of undealt cards. Deals always come off the
// front; the shoe only shrinks during a round.
type Shoe struct {
	cards   []Card
	cutCard int
	rng     *rand.Rand
}

// NewDeck builds a single ordered 52-card deck.
func NewDeck(rng *rand.Rand) *Shoe {
	return NewShoe(1, rng)
}

// NewShoe concatenates deckCount ordered decks. No shuffling is done here.
func NewShoe(deckCount int, rng *rand.Rand) *Shoe {
	s := &Shoe{
		cards:   make([]Card, 0, deckCount*CardsPerDeck),
		cutCard: DefaultCutCard,
		rng:     rng,
	}
	for i := 0; i < deckCount; i++ {
		for _, suit := range suits {
			for _, rank := range ranks {
				s.cards = append(s.cards, Card{Rank: rank, Suit: suit})
			}
		}
	}
	return s
}

// NewShoeFromCards stacks a shoe in the given order, front first.
func NewShoeFromCards(cards []Card, rng *rand.Rand) *Shoe {
	s := &Shoe{
		cards:   make([]Card, len(cards)),
		cutCard: DefaultCutCard,
		rng:     rng,
	}
	copy(s.cards, cards)
	return s
}

// Shuffle permutes the whole shoe once per pass.
func (s *Shoe) Shuffle(passes int) {
	for p := 0; p < passes; p++ {
		s.rng.Shuffle(len(s.cards), func(i, j int) {
			s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
		})
	}
}

// Cut splits near the middle, offset by up to 20% of the length either way,
// and moves the bottom part to the front.
func (s *Shoe) Cut() {
	n := len(s.cards)
	if n < 2 {
		return
	}
	half := n / 2
	if pos := n / 5; pos > 0 {
		half += s.rng.IntN(2*pos) - pos
	}
	cut := make([]Card, 0, n)
	cut = append(cut, s.cards[half:]...)
	cut = append(cut, s.cards[:half]...)
	s.cards = cut
}

func (s *Shoe) ShuffleAndCut(passes int) {
	s.Shuffle(passes)
	s.Cut()
}

// SetCutThreshold fixes the cut card. Zero bounds select DefaultCutCard,
// otherwise the position is drawn from [min, max).
func (s *Shoe) SetCutThreshold(min, max int) {
	switch {
	case min == 0 && max == 0:
		s.cutCard = DefaultCutCard
	case max <= min:
		s.cutCard = min
	default:
		s.cutCard = min + s.rng.IntN(max-min)
	}
}

func (s *Shoe) Deal(n int) ([]Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("deal %d cards: %w", n, ErrIllegalAction)
	}
	if n > len(s.cards) {
		return nil, fmt.Errorf("deal %d cards with %d remaining: %w", n, len(s.cards), ErrExhaustedShoe)
	}
	dealt := make([]Card, n)
	copy(dealt, s.cards[:n])
	s.cards = s.cards[n:]
	return dealt, nil
}

func (s *Shoe) NeedsReplenishment() bool {
	return len(s.cards) <= s.cutCard
}

// Merge appends the other shoe's cards to the back.
func (s *Shoe) Merge(other *Shoe) {
	s.cards = append(s.cards, other.cards...)
}

func (s *Shoe) Len() int     { return len(s.cards) }
func (s *Shoe) CutCard() int { return s.cutCard }

// Cards returns a copy of the undealt cards, front first.
func (s *Shoe) Cards() []Card {
	out := make([]Card, len(s.cards))
	copy(out, s.cards)
	return out
}
