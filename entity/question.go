package entity

import "fmt"

type QuestionKind int

const (
	QuestionShowRules QuestionKind = iota
	QuestionPlayerCount
	QuestionBet
	QuestionInsurance
	QuestionInsuranceAmount
	QuestionSplit
	QuestionDoubleDown
	QuestionHit
	QuestionContinue
)

func (k QuestionKind) String() string {
	switch k {
	case QuestionShowRules:
		return "show_rules"
	case QuestionPlayerCount:
		return "player_count"
	case QuestionBet:
		return "bet"
	case QuestionInsurance:
		return "insurance"
	case QuestionInsuranceAmount:
		return "insurance_amount"
	case QuestionSplit:
		return "split"
	case QuestionDoubleDown:
		return "double_down"
	case QuestionHit:
		return "hit"
	case QuestionContinue:
		return "continue"
	default:
		return "unknown"
	}
}

// Question is what the engine asks its decision source. Answers are
// expected to be validated already.
type Question struct {
	Kind      QuestionKind
	Player    string
	HandIndex int
	Split     bool
	Balance   int64
	Cards     []Card
	DealerUp  Card
	Text      string
}

func NewQuestion(kind QuestionKind, p *Participant, handIndex int) Question {
	q := Question{Kind: kind, HandIndex: handIndex}
	if p != nil {
		q.Player = p.Name()
		q.Split = p.HasSplit()
		q.Balance = p.Balance()
		q.Cards = p.Hand(handIndex)
	}
	q.Text = q.render()
	return q
}

// WithDealerUp attaches the dealer's face-up card.
func (q Question) WithDealerUp(dealer *Participant) Question {
	if dealer != nil {
		q.DealerUp, _ = dealer.VisibleCard()
	}
	return q
}

func (q Question) handName() string {
	if q.Split {
		return fmt.Sprintf("hand %d", q.HandIndex+1)
	}
	return "your hand"
}

func (q Question) render() string {
	switch q.Kind {
	case QuestionShowRules:
		return "Do you want to read the rules before playing?"
	case QuestionPlayerCount:
		return "Please enter the total number of players"
	case QuestionBet:
		return fmt.Sprintf("%s, you have $%d in your account. How much would you like to wager?", q.Player, q.Balance)
	case QuestionInsurance:
		return fmt.Sprintf("%s, do you want to buy insurance?", q.Player)
	case QuestionInsuranceAmount:
		return "How much insurance do you want to buy?"
	case QuestionSplit:
		return fmt.Sprintf("%s, do you want to split your hand?", q.Player)
	case QuestionDoubleDown:
		return fmt.Sprintf("%s, do you want to double down on %s?", q.Player, q.handName())
	case QuestionHit:
		return fmt.Sprintf("%s, do you want to hit on %s?", q.Player, q.handName())
	case QuestionContinue:
		return "Do you all want to play again?"
	default:
		return ""
	}
}

const RulesText = `HOW TO PLAY

Each player wagers an amount they can afford, then everyone is dealt two
cards face up, except the dealer, whose second card stays face down. Get as
close to 21 as you can without going over.

- Cards 2 through 10 are worth their rank; Jack, Queen and King are worth 10.
- An Ace is worth 11 unless that takes the hand over 21, then it is worth 1.

- Go over 21 and you bust and lose your wager.
- Tie the dealer at 21 or under and you push: no money changes hands.
- Beat the dealer without going over 21, or stay in while the dealer
  busts, and you win an amount equal to your wager.

Double down to double your wager and take exactly one more card.
When the dealer shows a card worth 10 or an Ace you may buy insurance; it
pays if the dealer's hidden card makes 21 and is lost otherwise.
When your first two cards share a rank you may split them into two hands,
each with its own copy of your wager.
After that, hit to take a card or stand to end your turn.`
