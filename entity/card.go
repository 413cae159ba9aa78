package entity

import "fmt"

type Rank int8

const (
	RankUnspecified Rank = iota
	RankAce
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJack
	RankQueen
	RankKing
)

var ranks = []Rank{
	RankAce, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7,
	Rank8, Rank9, Rank10, RankJack, RankQueen, RankKing,
}

func (r Rank) String() string {
	switch r {
	case RankAce:
		return "Ace"
	case RankJack:
		return "Jack"
	case RankQueen:
		return "Queen"
	case RankKing:
		return "King"
	case RankUnspecified:
		return "?"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

func (r Rank) short() string {
	switch r {
	case RankAce:
		return "A"
	case RankJack:
		return "J"
	case RankQueen:
		return "Q"
	case RankKing:
		return "K"
	default:
		return r.String()
	}
}

type Suit int8

const (
	SuitUnspecified Suit = iota
	SuitClubs
	SuitHearts
	SuitSpades
	SuitDiamonds
)

var suits = []Suit{SuitClubs, SuitHearts, SuitSpades, SuitDiamonds}

func (s Suit) String() string {
	switch s {
	case SuitClubs:
		return "Clubs"
	case SuitHearts:
		return "Hearts"
	case SuitSpades:
		return "Spades"
	case SuitDiamonds:
		return "Diamonds"
	default:
		return "?"
	}
}

func (s Suit) symbol() string {
	switch s {
	case SuitClubs:
		return "♣"
	case SuitHearts:
		return "♥"
	case SuitSpades:
		return "♠"
	case SuitDiamonds:
		return "♦"
	default:
		return "?"
	}
}

// first code point of each suit's run in the Unicode playing cards block
func (s Suit) glyphBase() rune {
	switch s {
	case SuitSpades:
		return 0x1F0A1
	case SuitHearts:
		return 0x1F0B1
	case SuitDiamonds:
		return 0x1F0C1
	default:
		return 0x1F0D1
	}
}

// Card is a value object; a shoe built from several decks holds duplicates.
type Card struct {
	Rank Rank
	Suit Suit
}

// Value is the base scoring value: Ace=1, 2-10 face value, picture cards 10.
func (c Card) Value() int {
	switch v := int(c.Rank); {
	case v <= 10:
		return v
	default:
		return 10
	}
}

func (c Card) IsAce() bool { return c.Rank == RankAce }

// String renders the Unicode playing card glyph. The block carries a Knight
// between Jack and Queen, so Queen and King are shifted by one.
func (c Card) String() string {
	if c.Rank == RankUnspecified || c.Suit == SuitUnspecified {
		return "🂠"
	}
	offset := rune(c.Rank) - 1
	if c.Rank == RankQueen || c.Rank == RankKing {
		offset++
	}
	return string(c.Suit.glyphBase() + offset)
}

// Label renders the card as plain text, e.g. "K♠".
func (c Card) Label() string {
	return c.Rank.short() + c.Suit.symbol()
}

func Labels(cards []Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Label())
	}
	return out
}
