package entity

import (
	"math/rand/v2"
)

const (
	RiskConservative = "conservative"
	RiskModerate     = "moderate"
	RiskAggressive   = "aggressive"
)

var chipValues = []int64{100, 500, 1000, 5000, 10000}

// BetAmountStrategy sizes wagers as a share of the current balance.
type BetAmountStrategy struct {
	BaseBetPercentage float64
	MaxBetPercentage  float64
}

// BlackjackBotLogic answers engine questions for an automated player: it
// sizes bets from its balance and plays basic strategy, occasionally taking
// an extra card depending on its risk tolerance.
type BlackjackBotLogic struct {
	rng           *rand.Rand
	riskLevel     string
	riskTolerance int
	betStrategy   BetAmountStrategy
	actionHistory []QuestionKind
}

func NewBlackjackBotLogic(rng *rand.Rand) *BlackjackBotLogic {
	b := &BlackjackBotLogic{rng: rng}
	b.SetRiskLevel(RiskModerate)
	return b
}

// SetRiskLevel changes the bot's risk level; unknown levels are ignored.
func (b *BlackjackBotLogic) SetRiskLevel(level string) {
	switch level {
	case RiskConservative:
		b.riskTolerance = b.rng.IntN(21) + 10 // 10-30
		b.betStrategy = BetAmountStrategy{BaseBetPercentage: 0.02, MaxBetPercentage: 0.10}
	case RiskModerate:
		b.riskTolerance = b.rng.IntN(41) + 30 // 30-70
		b.betStrategy = BetAmountStrategy{BaseBetPercentage: 0.05, MaxBetPercentage: 0.20}
	case RiskAggressive:
		b.riskTolerance = b.rng.IntN(31) + 70 // 70-100
		b.betStrategy = BetAmountStrategy{BaseBetPercentage: 0.10, MaxBetPercentage: 0.40}
	default:
		return
	}
	b.riskLevel = level
}

func (b *BlackjackBotLogic) GetRiskLevel() string                    { return b.riskLevel }
func (b *BlackjackBotLogic) GetRiskTolerance() int                   { return b.riskTolerance }
func (b *BlackjackBotLogic) GetBetAmountStrategy() BetAmountStrategy { return b.betStrategy }
func (b *BlackjackBotLogic) GetActionHistory() []QuestionKind        { return b.actionHistory }

func (b *BlackjackBotLogic) AskYesNo(q Question) bool {
	b.actionHistory = append(b.actionHistory, q.Kind)
	switch q.Kind {
	case QuestionContinue:
		return true
	case QuestionSplit:
		return b.shouldSplit(q.Cards, q.DealerUp)
	case QuestionDoubleDown:
		return b.shouldDoubleDown(q.Cards, q.DealerUp)
	case QuestionHit:
		return b.DecideHit(q.Cards, q.DealerUp)
	default:
		// rules and insurance are always declined
		return false
	}
}

func (b *BlackjackBotLogic) AskInt(q Question, lower, upper int64) int64 {
	b.actionHistory = append(b.actionHistory, q.Kind)
	switch q.Kind {
	case QuestionBet:
		return clamp(b.DecideBetAmount(q.Balance), lower, upper)
	default:
		return lower
	}
}

// DecideBetAmount picks a chip-rounded share of the balance.
func (b *BlackjackBotLogic) DecideBetAmount(balance int64) int64 {
	amount := int64(float64(balance) * b.betStrategy.BaseBetPercentage)
	maxAmount := int64(float64(balance) * b.betStrategy.MaxBetPercentage)
	if amount > maxAmount {
		amount = maxAmount
	}
	amount = roundToChipValue(amount)
	if amount > balance {
		amount = balance
	}
	return amount
}

// DecideHit applies basic strategy, then sometimes hits anyway when the
// bot's risk tolerance allows.
func (b *BlackjackBotLogic) DecideHit(cards []Card, dealerUp Card) bool {
	hit := basicStrategy(cards, dealerUp)
	if !hit && Total(cards) < 17 && b.rng.IntN(100) < b.riskTolerance && b.rng.IntN(100) < 20 {
		hit = true
	}
	return hit
}

func basicStrategy(cards []Card, dealerUp Card) bool {
	p := Eval(cards)
	dealerPoints := upCardValue(dealerUp)
	if p.Total >= TwentyOne {
		return false
	}
	if p.Soft {
		return softTotalStrategy(p.Total, dealerPoints)
	}
	return hardTotalStrategy(p.Total, dealerPoints)
}

// softTotalStrategy handles totals counting an Ace as 11.
func softTotalStrategy(points, dealerPoints int) bool {
	switch points {
	case 20, 21:
		return false
	case 19:
		return dealerPoints < 6
	case 18:
		return dealerPoints >= 9
	case 17:
		return dealerPoints >= 7
	default:
		return true
	}
}

func hardTotalStrategy(points, dealerPoints int) bool {
	switch {
	case points >= 17:
		return false
	case points >= 13:
		return dealerPoints >= 7
	case points == 12:
		return dealerPoints < 4 || dealerPoints > 6
	default:
		return true
	}
}

func (b *BlackjackBotLogic) shouldSplit(cards []Card, dealerUp Card) bool {
	if len(cards) != 2 || cards[0].Rank != cards[1].Rank {
		return false
	}
	dealerPoints := upCardValue(dealerUp)
	switch cards[0].Rank {
	case RankAce, Rank8:
		return true
	case Rank2, Rank3, Rank7:
		return dealerPoints >= 2 && dealerPoints <= 7
	case Rank6:
		return dealerPoints >= 2 && dealerPoints <= 6
	case Rank9:
		return dealerPoints >= 2 && dealerPoints <= 9 && dealerPoints != 7
	default:
		return false
	}
}

func (b *BlackjackBotLogic) shouldDoubleDown(cards []Card, dealerUp Card) bool {
	if len(cards) != 2 {
		return false
	}
	p := Eval(cards)
	dealerPoints := upCardValue(dealerUp)
	if p.Soft {
		return p.Total >= 13 && p.Total <= 18 && dealerPoints >= 5 && dealerPoints <= 6
	}
	switch p.Total {
	case 11:
		return true
	case 10:
		return dealerPoints <= 9
	case 9:
		return dealerPoints >= 3 && dealerPoints <= 6
	default:
		return false
	}
}

// upCardValue counts a dealer Ace as 11.
func upCardValue(c Card) int {
	if c.IsAce() {
		return 11
	}
	return c.Value()
}

// roundToChipValue rounds the bet amount to the nearest valid chip value
func roundToChipValue(amount int64) int64 {
	closest := chipValues[0]
	minDiff := abs(amount - closest)
	for _, chipValue := range chipValues[1:] {
		if diff := abs(amount - chipValue); diff < minDiff {
			minDiff = diff
			closest = chipValue
		}
	}
	return closest
}

func clamp(v, lower, upper int64) int64 {
	return MaxInt64(lower, MinInt64(v, upper))
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
