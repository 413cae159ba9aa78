package processor

import (
	"context"
	"fmt"

	"github.com/nk-nigeria/blackjack-cli/entity"
	"github.com/nk-nigeria/blackjack-cli/usecase/engine"
	"go.uber.org/zap"
)

type Processor struct {
	*BaseProcessor
	decisions DecisionSource
	registry  Registry
}

func NewMatchProcessor(
	engine engine.UseCase,
	decisions DecisionSource,
	presenter Presenter,
	registry Registry,
) IProcessor {
	return &Processor{
		BaseProcessor: NewBaseProcessor(engine, presenter),
		decisions:     decisions,
		registry:      registry,
	}
}

// ProcessJoin seats the named players, loading their balances from the
// registry or creating them with the starting balance.
func (p *Processor) ProcessJoin(ctx context.Context, logger *zap.Logger, s *entity.TableState, names []string) error {
	for _, name := range names {
		player, created, err := p.registry.LookupOrCreate(ctx, name)
		if err != nil {
			return fmt.Errorf("lookup player %q: %w", name, err)
		}
		if err := s.AddPlayer(player); err != nil {
			return err
		}
		logger.Info("player joined",
			zap.String("player", name),
			zap.Int64("balance", player.Balance()),
			zap.Bool("created", created))
		e := s.NewEvent(entity.EventPlayerJoined)
		e.Player = name
		e.Balance = player.Balance()
		e.Created = created
		p.NotifyEvent(logger, e)
	}
	return nil
}

// ProcessNewGame opens a round, replenishing the shoe when needed.
func (p *Processor) ProcessNewGame(ctx context.Context, logger *zap.Logger, s *entity.TableState) error {
	if err := p.engine.NewGame(s); err != nil {
		return err
	}
	logger.Info("round started",
		zap.Int("round", s.Round()),
		zap.String("round_id", s.RoundID()),
		zap.Int("shoe", p.engine.Shoe().Len()),
		zap.Int("cut_card", p.engine.Shoe().CutCard()))
	p.NotifyEvent(logger, s.NewEvent(entity.EventRoundStarted))
	if s.IsReplenished() {
		e := s.NewEvent(entity.EventShoeReplenished)
		e.Amount = int64(p.engine.Shoe().Len())
		p.NotifyEvent(logger, e)
	}
	return nil
}

// ProcessBetting takes a primary wager from every player who can afford one.
func (p *Processor) ProcessBetting(ctx context.Context, logger *zap.Logger, s *entity.TableState) error {
	for _, player := range s.GetPlayers() {
		if player.Balance() < 1 {
			e := s.NewEvent(entity.EventSatOut)
			e.Player = player.Name()
			e.Balance = player.Balance()
			e.Reason = "insufficient balance"
			p.NotifyEvent(logger, e)
			continue
		}
		q := entity.NewQuestion(entity.QuestionBet, player, 0)
		amount := p.decisions.AskInt(q, 1, player.Balance())
		if err := player.PlaceBet(amount); err != nil {
			return err
		}
		logger.Info("bet placed",
			zap.Int("round", s.Round()),
			zap.String("player", player.Name()),
			zap.Int64("amount", amount))
		e := s.NewEvent(entity.EventBetPlaced)
		e.Player = player.Name()
		e.Amount = amount
		e.Balance = player.Balance()
		p.NotifyEvent(logger, e)
	}
	if len(s.PlayingPlayers()) == 0 {
		return entity.ErrNoPlayers
	}
	return nil
}

// ProcessDeal deals two passes of one card each, players in seat order and
// the dealer last.
func (p *Processor) ProcessDeal(ctx context.Context, logger *zap.Logger, s *entity.TableState) error {
	participants := s.Participants()
	for pass := 0; pass < 2; pass++ {
		for _, participant := range participants {
			if _, err := p.engine.Draw(participant, 0); err != nil {
				return fmt.Errorf("deal round %d: %w", s.Round(), err)
			}
		}
	}
	for _, participant := range participants {
		p.notifyHand(logger, s, entity.EventHandDealt, participant, 0)
	}
	return nil
}

// ProcessInsurance offers insurance when the dealer shows an Ace or a card
// worth ten.
func (p *Processor) ProcessInsurance(ctx context.Context, logger *zap.Logger, s *entity.TableState) error {
	dealer := s.Dealer()
	up, ok := dealer.VisibleCard()
	if !ok || !entity.OffersInsurance(up) {
		return nil
	}
	for _, player := range s.PlayingPlayers() {
		limit := player.InsuranceLimit()
		if limit < 1 {
			continue
		}
		q := entity.NewQuestion(entity.QuestionInsurance, player, 0).WithDealerUp(dealer)
		if !p.decisions.AskYesNo(q) {
			continue
		}
		q = entity.NewQuestion(entity.QuestionInsuranceAmount, player, 0).WithDealerUp(dealer)
		amount := p.decisions.AskInt(q, 1, limit)
		if err := p.engine.Insurance(player, amount); err != nil {
			return err
		}
		logger.Info("insurance placed",
			zap.Int("round", s.Round()),
			zap.String("player", player.Name()),
			zap.Int64("amount", amount))
		e := s.NewEvent(entity.EventInsurancePlaced)
		e.Player = player.Name()
		e.Amount = amount
		e.Balance = player.Balance()
		p.NotifyEvent(logger, e)
	}
	return nil
}

// ProcessPlayerTurns plays every player in seat order: split offer, then
// per sub-hand a double down offer and the hit loop.
func (p *Processor) ProcessPlayerTurns(ctx context.Context, logger *zap.Logger, s *entity.TableState) error {
	dealer := s.Dealer()
	for _, player := range s.PlayingPlayers() {
		s.SetCurrentTurn(player.Name(), 0)
		p.notifyHand(logger, s, entity.EventTurnStarted, player, 0)
		if entity.ReachesTwentyOne(player.Hand(0)) {
			p.notifyHand(logger, s, entity.EventHandFinal, player, 0)
			continue
		}
		if player.CanSplit() {
			q := entity.NewQuestion(entity.QuestionSplit, player, 0).WithDealerUp(dealer)
			if p.decisions.AskYesNo(q) {
				if err := p.engine.Split(player); err != nil {
					return err
				}
				logger.Info("split",
					zap.Int("round", s.Round()),
					zap.String("player", player.Name()),
					zap.Int64s("bets", player.Bets()))
				for i := 0; i < player.ActiveHands(); i++ {
					p.notifyHand(logger, s, entity.EventSplit, player, i)
				}
			}
		}
		for i := 0; i < player.ActiveHands(); i++ {
			if err := p.playHand(logger, s, player, i); err != nil {
				return err
			}
		}
	}
	s.SetCurrentTurn("", 0)
	return nil
}

func (p *Processor) playHand(logger *zap.Logger, s *entity.TableState, player *entity.Participant, handIndex int) error {
	dealer := s.Dealer()
	s.SetCurrentTurn(player.Name(), handIndex)
	defer p.notifyHand(logger, s, entity.EventHandFinal, player, handIndex)
	if player.HandTotal(handIndex) >= entity.TwentyOne {
		return nil
	}
	if player.CanDoubleDown(handIndex) {
		q := entity.NewQuestion(entity.QuestionDoubleDown, player, handIndex).WithDealerUp(dealer)
		if p.decisions.AskYesNo(q) {
			if _, err := p.engine.DoubleDown(player, handIndex); err != nil {
				return err
			}
			logger.Info("double down",
				zap.Int("round", s.Round()),
				zap.String("player", player.Name()),
				zap.Int("hand", handIndex),
				zap.Int64("amount", player.Bet(handIndex)))
			p.notifyHand(logger, s, entity.EventDoubleDown, player, handIndex)
			return nil
		}
	}
	ask := func() bool {
		q := entity.NewQuestion(entity.QuestionHit, player, handIndex).WithDealerUp(dealer)
		return p.decisions.AskYesNo(q)
	}
	for player.DecideHitOrStand(handIndex, s.Snapshot(), ask) == entity.DecisionHit {
		if _, err := p.engine.Draw(player, handIndex); err != nil {
			return err
		}
		p.notifyHand(logger, s, entity.EventCardDrawn, player, handIndex)
	}
	return nil
}

// ProcessDealerReveal turns the hole card and settles insurance at once.
func (p *Processor) ProcessDealerReveal(ctx context.Context, logger *zap.Logger, s *entity.TableState) error {
	dealer := s.Dealer()
	dealer.Reveal()
	p.notifyHand(logger, s, entity.EventDealerRevealed, dealer, 0)
	dealerHasTwentyOne := entity.ReachesTwentyOne(dealer.Hand(0))
	for _, player := range s.PlayingPlayers() {
		if player.Insurance() == 0 {
			continue
		}
		delta := player.SettleInsurance(dealerHasTwentyOne)
		logger.Info("insurance settled",
			zap.Int("round", s.Round()),
			zap.String("player", player.Name()),
			zap.Int64("amount", delta))
		e := s.NewEvent(entity.EventInsuranceSettled)
		e.Player = player.Name()
		e.Amount = delta
		e.Balance = player.Balance()
		p.NotifyEvent(logger, e)
	}
	return nil
}

// ProcessDealerTurn runs the house policy against a snapshot of the
// finished player hands.
func (p *Processor) ProcessDealerTurn(ctx context.Context, logger *zap.Logger, s *entity.TableState) error {
	dealer := s.Dealer()
	s.SetCurrentTurn(dealer.Name(), 0)
	snapshot := s.Snapshot()
	for {
		decision := dealer.DecideHitOrStand(0, snapshot, nil)
		e := s.NewEvent(entity.EventDealerDecision)
		e.Player = dealer.Name()
		e.Dealer = true
		e.Decision = decision
		p.NotifyEvent(logger, e)
		if decision == entity.DecisionStand {
			break
		}
		if _, err := p.engine.Draw(dealer, 0); err != nil {
			return err
		}
		p.notifyHand(logger, s, entity.EventCardDrawn, dealer, 0)
	}
	s.SetCurrentTurn("", 0)
	p.notifyHand(logger, s, entity.EventHandFinal, dealer, 0)
	return nil
}

// ProcessFinishGame settles every player sub-hand against the dealer.
func (p *Processor) ProcessFinishGame(ctx context.Context, logger *zap.Logger, s *entity.TableState) error {
	for _, r := range p.engine.Finish(s) {
		logger.Info("hand settled",
			zap.Int("round", s.Round()),
			zap.String("player", r.Player.Name()),
			zap.Int("hand", r.HandIndex),
			zap.Int("total", r.Total),
			zap.Stringer("outcome", r.Outcome),
			zap.Int64("amount", r.Delta))
		e := s.HandEvent(entity.EventHandSettled, r.Player, r.HandIndex)
		e.Outcome = r.Outcome
		e.Amount = r.Delta
		p.NotifyEvent(logger, e)
	}
	return nil
}

// ProcessRoundClose asks whether to go on. Stopping, a cancelled ctx, or a
// session that can no longer continue saves every balance and ends the
// session. The save runs even when ctx is cancelled.
func (p *Processor) ProcessRoundClose(ctx context.Context, logger *zap.Logger, s *entity.TableState) error {
	p.NotifyEvent(logger, s.NewEvent(entity.EventRoundEnded))
	if !s.IsGameEnded() {
		if ctx.Err() == nil && s.IsReadyToPlay() && p.decisions.AskYesNo(entity.NewQuestion(entity.QuestionContinue, nil, 0)) {
			s.Init()
			return nil
		}
		s.SetIsGameEnded(true)
	}
	players := s.GetPlayers()
	if err := p.registry.SaveAll(context.WithoutCancel(ctx), players); err != nil {
		return fmt.Errorf("save roster: %w", err)
	}
	logger.Info("session ended", zap.String("session_id", s.SessionID()), zap.Int("rounds", s.Round()))
	for _, player := range players {
		e := s.NewEvent(entity.EventSessionEnded)
		e.Player = player.Name()
		e.Balance = player.Balance()
		p.NotifyEvent(logger, e)
	}
	return nil
}
