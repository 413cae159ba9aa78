package entity

type GameState string

const (
	GameStateUnknown    GameState = "unknown"
	GameStateIdle       GameState = "idle"
	GameStatePreparing  GameState = "preparing"
	GameStateDeal       GameState = "deal"
	GameStateInsurance  GameState = "insurance"
	GameStatePlay       GameState = "play"
	GameStateReveal     GameState = "reveal"
	GameStateDealerTurn GameState = "dealer_turn"
	GameStateReward     GameState = "reward"
	GameStateRoundClose GameState = "round_close"
	GameStateFinish     GameState = "finish"
)

// TableState is the state of one session: the seated players in turn order,
// the dealer, and the bookkeeping of the round in progress.
type TableState struct {
	baseTableState

	sessionID   string
	roundID     string
	round       int
	gameState   GameState
	dealer      *Participant
	currentTurn string
	currentHand int
	replenished bool
	isGameEnded bool
}

func NewTableState(dealer *Participant, maxPlayers int) *TableState {
	return &TableState{
		baseTableState: newBaseTableState(maxPlayers),
		sessionID:      NewID(),
		gameState:      GameStateUnknown,
		dealer:         dealer,
	}
}

func (s *TableState) SessionID() string { return s.sessionID }
func (s *TableState) RoundID() string   { return s.roundID }
func (s *TableState) Round() int        { return s.round }

func (s *TableState) Dealer() *Participant { return s.dealer }

func (s *TableState) GetGameState() GameState  { return s.gameState }
func (s *TableState) SetGameState(v GameState) { s.gameState = v }

func (s *TableState) SetCurrentTurn(name string, handIndex int) {
	s.currentTurn = name
	s.currentHand = handIndex
}
func (s *TableState) GetCurrentTurn() (string, int) { return s.currentTurn, s.currentHand }

func (s *TableState) SetReplenished(v bool) { s.replenished = v }
func (s *TableState) IsReplenished() bool   { return s.replenished }

// SetIsGameEnded marks the session over; the round close phase persists
// balances and stops the machine.
func (s *TableState) SetIsGameEnded(v bool) { s.isGameEnded = v }
func (s *TableState) IsGameEnded() bool     { return s.isGameEnded }

// NewRound stamps a fresh round identifier.
func (s *TableState) NewRound() {
	s.round++
	s.roundID = NewID()
	s.currentTurn = ""
	s.currentHand = 0
	s.replenished = false
}

// PlayingPlayers are the seated players who placed a bet this round.
func (s *TableState) PlayingPlayers() []*Participant {
	playing := make([]*Participant, 0, s.GetPlayerSize())
	for _, p := range s.GetPlayers() {
		if p.IsBetting() {
			playing = append(playing, p)
		}
	}
	return playing
}

// Participants lists the round's participants in turn order, dealer last.
func (s *TableState) Participants() []*Participant {
	return append(s.PlayingPlayers(), s.dealer)
}

// IsReadyToPlay reports whether any seated player can afford a bet.
func (s *TableState) IsReadyToPlay() bool {
	for _, p := range s.GetPlayers() {
		if p.Balance() >= 1 {
			return true
		}
	}
	return false
}

func (s *TableState) Snapshot() TableSnapshot {
	return Snapshot(s.PlayingPlayers())
}

// Init clears every participant's round state; balances carry over.
func (s *TableState) Init() {
	for _, p := range s.GetPlayers() {
		p.Reset()
	}
	s.dealer.Reset()
	s.currentTurn = ""
	s.currentHand = 0
}

// NewEvent fills the session and round identifiers.
func (s *TableState) NewEvent(t EventType) Event {
	return Event{
		Type:      t,
		SessionID: s.sessionID,
		RoundID:   s.roundID,
		Round:     s.round,
	}
}

// HandEvent describes one participant's sub-hand, hiding the dealer's hole
// card until it is revealed.
func (s *TableState) HandEvent(t EventType, p *Participant, handIndex int) Event {
	e := s.NewEvent(t)
	e.Player = p.Name()
	e.Dealer = p.IsDealer()
	e.HandIndex = handIndex
	e.Split = p.HasSplit()
	e.Balance = p.Balance()
	e.Amount = p.Bet(handIndex)
	if p.Hidden() {
		e.Cards = p.VisibleHand()
		e.Hidden = true
		return e
	}
	e.Cards = p.Hand(handIndex)
	e.Point = p.HandPoint(handIndex)
	e.HandType = TypeOf(e.Cards)
	return e
}
