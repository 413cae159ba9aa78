package entity

import "strconv"

const (
	TwentyOne    = 21
	aceUpgrade   = 10
	DealerStands = 17
)

type HandType int

const (
	HandEmpty HandType = iota
	HandNormal
	HandTwentyOne
	HandBusted
)

func (t HandType) String() string {
	switch t {
	case HandNormal:
		return "normal"
	case HandTwentyOne:
		return "twenty-one"
	case HandBusted:
		return "busted"
	default:
		return "empty"
	}
}

// Point is a hand's evaluation. Min counts every Ace as 1; Total is the best
// total; Soft is set when one Ace was counted as 11.
type Point struct {
	Total int
	Min   int
	Soft  bool
}

// Label renders "7/17" for soft hands and the plain total otherwise.
func (p Point) Label() string {
	if p.Soft {
		return strconv.Itoa(p.Min) + "/" + strconv.Itoa(p.Total)
	}
	return strconv.Itoa(p.Total)
}

func Eval(cards []Card) Point {
	sum := 0
	haveAce := false
	for _, c := range cards {
		if c.IsAce() {
			haveAce = true
		}
		sum += c.Value()
	}
	p := Point{Total: sum, Min: sum}
	// only one Ace is ever counted high
	if haveAce && sum+aceUpgrade <= TwentyOne {
		p.Total = sum + aceUpgrade
		p.Soft = true
	}
	return p
}

// Total is the best hand total: base values, plus 10 once if an Ace is
// present and that does not pass 21.
func Total(cards []Card) int {
	return Eval(cards).Total
}

func IsBust(cards []Card) bool {
	return Total(cards) > TwentyOne
}

func ReachesTwentyOne(cards []Card) bool {
	return Total(cards) == TwentyOne
}

// CanSplit requires exactly two cards of the same rank and a balance that
// covers the doubled wager.
func CanSplit(cards []Card, bet, balance int64) bool {
	return len(cards) == 2 &&
		cards[0].Rank == cards[1].Rank &&
		2*bet <= balance
}

func TypeOf(cards []Card) HandType {
	if len(cards) == 0 {
		return HandEmpty
	}
	switch total := Total(cards); {
	case total > TwentyOne:
		return HandBusted
	case total == TwentyOne:
		return HandTwentyOne
	default:
		return HandNormal
	}
}

// DealerMustDraw applies the house rule on its own: draw below standsOn.
func DealerMustDraw(cards []Card, standsOn int) bool {
	return Total(cards) < standsOn
}

// OffersInsurance reports whether a dealer up card allows insurance.
func OffersInsurance(up Card) bool {
	return up.IsAce() || up.Value() >= 10
}

type Outcome int

const (
	OutcomeLoss Outcome = iota - 1
	OutcomePush
	OutcomeWin
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomePush:
		return "push"
	default:
		return "loss"
	}
}

// Compare settles one sub-hand total against the dealer total.
func Compare(total, dealerTotal int) Outcome {
	switch {
	case total <= TwentyOne && dealerTotal > TwentyOne:
		return OutcomeWin
	case dealerTotal < total && total <= TwentyOne:
		return OutcomeWin
	case total == dealerTotal && total <= TwentyOne:
		return OutcomePush
	default:
		return OutcomeLoss
	}
}
