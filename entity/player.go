package entity

import "fmt"

const (
	DefaultStartingBalance = 10000
	DefaultDealerName      = "Dealer"
	maxHands               = 2
)

type Role int

const (
	RolePlayer Role = iota
	RoleDealer
)

func (r Role) String() string {
	if r == RoleDealer {
		return "dealer"
	}
	return "player"
}

type Decision int

const (
	DecisionStand Decision = iota
	DecisionHit
)

func (d Decision) String() string {
	if d == DecisionHit {
		return "hit"
	}
	return "stand"
}

// Participant is either a wagering player or the house. Role-specific rules
// (split, double down, insurance, hit/stand policy) dispatch on the role tag.
type Participant struct {
	name      string
	role      Role
	balance   int64
	hands     [maxHands][]Card
	bets      []int64
	doubled   [maxHands]bool
	insurance int64
	hidden    bool
	standsOn  int
}

func NewPlayer(name string, balance int64) *Participant {
	return &Participant{
		name:    name,
		role:    RolePlayer,
		balance: balance,
	}
}

// NewDealer creates the house participant; it stands on standsOn or more.
func NewDealer(name string, standsOn int) *Participant {
	if name == "" {
		name = DefaultDealerName
	}
	if standsOn <= 0 {
		standsOn = DealerStands
	}
	return &Participant{
		name:     name,
		role:     RoleDealer,
		hidden:   true,
		standsOn: standsOn,
	}
}

func (p *Participant) Name() string     { return p.name }
func (p *Participant) Role() Role       { return p.role }
func (p *Participant) IsDealer() bool   { return p.role == RoleDealer }
func (p *Participant) Balance() int64   { return p.balance }
func (p *Participant) Insurance() int64 { return p.insurance }
func (p *Participant) IsBetting() bool  { return len(p.bets) > 0 }

func (p *Participant) String() string {
	return fmt.Sprintf("%s(%s, %d)", p.role, p.name, p.balance)
}

func (p *Participant) checkIndex(handIndex int) error {
	if handIndex < 0 || handIndex >= maxHands || (p.IsDealer() && handIndex != 0) {
		return fmt.Errorf("%s hand %d: %w", p.name, handIndex, ErrIllegalAction)
	}
	return nil
}

func (p *Participant) AddCard(card Card, handIndex int) error {
	if err := p.checkIndex(handIndex); err != nil {
		return err
	}
	p.hands[handIndex] = append(p.hands[handIndex], card)
	return nil
}

// Hand returns a copy of one sub-hand.
func (p *Participant) Hand(handIndex int) []Card {
	if handIndex < 0 || handIndex >= maxHands {
		return nil
	}
	out := make([]Card, len(p.hands[handIndex]))
	copy(out, p.hands[handIndex])
	return out
}

func (p *Participant) HandTotal(handIndex int) int {
	return Total(p.Hand(handIndex))
}

func (p *Participant) HandPoint(handIndex int) Point {
	return Eval(p.Hand(handIndex))
}

func (p *Participant) HasSplit() bool {
	return len(p.hands[1]) > 0
}

func (p *Participant) ActiveHands() int {
	if p.HasSplit() {
		return 2
	}
	return 1
}

func (p *Participant) Bet(handIndex int) int64 {
	if handIndex < 0 || handIndex >= len(p.bets) {
		return 0
	}
	return p.bets[handIndex]
}

func (p *Participant) Bets() []int64 {
	out := make([]int64, len(p.bets))
	copy(out, p.bets)
	return out
}

func (p *Participant) IsDoubled(handIndex int) bool {
	return handIndex >= 0 && handIndex < maxHands && p.doubled[handIndex]
}

func (p *Participant) PlaceBet(amount int64) error {
	if p.IsDealer() || p.IsBetting() {
		return fmt.Errorf("%s place bet: %w", p.name, ErrIllegalAction)
	}
	if amount < 1 || amount > p.balance {
		return fmt.Errorf("%s bet %d with balance %d: %w", p.name, amount, p.balance, ErrInvalidWager)
	}
	p.bets = []int64{amount}
	return nil
}

// InsuranceLimit is the largest insurance stake the balance still covers.
func (p *Participant) InsuranceLimit() int64 {
	if p.IsDealer() || !p.IsBetting() {
		return 0
	}
	return p.balance - p.bets[0]
}

func (p *Participant) PlaceInsurance(amount int64) error {
	if p.IsDealer() || !p.IsBetting() || p.insurance > 0 {
		return fmt.Errorf("%s place insurance: %w", p.name, ErrIllegalAction)
	}
	if amount < 1 || amount > p.InsuranceLimit() {
		return fmt.Errorf("%s insurance %d with limit %d: %w", p.name, amount, p.InsuranceLimit(), ErrInvalidWager)
	}
	p.insurance = amount
	return nil
}

// CanSplit is only true for a player still holding the two dealt cards.
func (p *Participant) CanSplit() bool {
	switch p.role {
	case RoleDealer:
		return false
	default:
		return len(p.bets) == 1 && !p.HasSplit() && CanSplit(p.hands[0], p.bets[0], p.balance)
	}
}

// Split moves the second card into sub-hand 1 and clones the bet onto it.
// Each sub-hand then needs one fresh card from the caller.
func (p *Participant) Split() error {
	if !p.CanSplit() {
		return fmt.Errorf("%s split: %w", p.name, ErrIllegalAction)
	}
	second := p.hands[0][1]
	p.hands[0] = p.hands[0][:1:1]
	p.hands[1] = []Card{second}
	p.bets = append(p.bets, p.bets[0])
	return nil
}

// CanDoubleDown holds once per sub-hand, before it takes a third card.
func (p *Participant) CanDoubleDown(handIndex int) bool {
	switch p.role {
	case RoleDealer:
		return false
	default:
		return handIndex >= 0 && handIndex < len(p.bets) &&
			!p.doubled[handIndex] &&
			len(p.hands[handIndex]) == 2 &&
			2*p.bets[handIndex] <= p.balance
	}
}

func (p *Participant) DoubleDown(handIndex int) error {
	if !p.CanDoubleDown(handIndex) {
		return fmt.Errorf("%s double down hand %d: %w", p.name, handIndex, ErrIllegalAction)
	}
	p.bets[handIndex] *= 2
	p.doubled[handIndex] = true
	return nil
}

// DecideHitOrStand stands without consulting anyone when the sub-hand is bust
// or at 21. Players otherwise defer to ask; the dealer applies the house rule
// against the snapshot of every player's sub-hands.
func (p *Participant) DecideHitOrStand(handIndex int, snapshot TableSnapshot, ask func() bool) Decision {
	total := p.HandTotal(handIndex)
	if total >= TwentyOne {
		return DecisionStand
	}
	switch p.role {
	case RoleDealer:
		if snapshot.AllBust() {
			return DecisionStand
		}
		if DealerMustDraw(p.hands[0], p.standsOn) {
			return DecisionHit
		}
		return DecisionStand
	default:
		if ask != nil && ask() {
			return DecisionHit
		}
		return DecisionStand
	}
}

// SettleInsurance pays or collects the insurance stake and returns the
// balance change.
func (p *Participant) SettleInsurance(dealerHasTwentyOne bool) int64 {
	if p.insurance == 0 {
		return 0
	}
	delta := -p.insurance
	if dealerHasTwentyOne {
		delta = p.insurance
	}
	p.balance += delta
	return delta
}

// Settle resolves one sub-hand against the dealer total and returns the
// outcome with the balance change.
func (p *Participant) Settle(handIndex int, dealerTotal int) (Outcome, int64) {
	bet := p.Bet(handIndex)
	outcome := Compare(p.HandTotal(handIndex), dealerTotal)
	var delta int64
	switch outcome {
	case OutcomeWin:
		delta = bet
	case OutcomeLoss:
		delta = -bet
	}
	p.balance += delta
	return outcome, delta
}

func (p *Participant) Reveal()      { p.hidden = false }
func (p *Participant) Hidden() bool { return p.IsDealer() && p.hidden }

// VisibleCard is the dealer's face-up card.
func (p *Participant) VisibleCard() (Card, bool) {
	if len(p.hands[0]) == 0 {
		return Card{}, false
	}
	return p.hands[0][0], true
}

// VisibleHand hides everything but the first card until the dealer reveals.
func (p *Participant) VisibleHand() []Card {
	if !p.Hidden() {
		return p.Hand(0)
	}
	up, ok := p.VisibleCard()
	if !ok {
		return nil
	}
	return []Card{up, {}}
}

// RevealTotal reports the dealer total once revealed.
func (p *Participant) RevealTotal() (int, bool) {
	if p.Hidden() {
		return 0, false
	}
	return p.HandTotal(0), true
}

// Reset clears hands, bets and insurance. The balance carries over.
func (p *Participant) Reset() {
	p.hands = [maxHands][]Card{}
	p.bets = nil
	p.doubled = [maxHands]bool{}
	p.insurance = 0
	p.hidden = p.IsDealer()
}

// HandTotal is one active sub-hand's total, as seen by the dealer policy.
type HandTotal struct {
	Player string
	Index  int
	Total  int
}

// TableSnapshot is a read-only view of every player's active sub-hands.
type TableSnapshot []HandTotal

func Snapshot(players []*Participant) TableSnapshot {
	snap := make(TableSnapshot, 0, len(players))
	for _, p := range players {
		if p.IsDealer() || len(p.hands[0]) == 0 {
			continue
		}
		for i := 0; i < p.ActiveHands(); i++ {
			snap = append(snap, HandTotal{Player: p.name, Index: i, Total: p.HandTotal(i)})
		}
	}
	return snap
}

// AllBust is false for an empty table.
func (s TableSnapshot) AllBust() bool {
	if len(s) == 0 {
		return false
	}
	for _, h := range s {
		if h.Total <= TwentyOne {
			return false
		}
	}
	return true
}
