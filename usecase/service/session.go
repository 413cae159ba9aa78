package service

import (
	"context"
	"math/rand/v2"

	"github.com/nk-nigeria/blackjack-cli/entity"
	"github.com/nk-nigeria/blackjack-cli/pkg/packager"
	"github.com/nk-nigeria/blackjack-cli/usecase/engine"
	"github.com/nk-nigeria/blackjack-cli/usecase/processor"
	"github.com/nk-nigeria/blackjack-cli/usecase/state_machine"
	smstates "github.com/nk-nigeria/blackjack-cli/usecase/state_machine/sm_states"
	"go.uber.org/zap"
)

// TableOptions are the house settings of one session.
type TableOptions struct {
	Shoe           engine.ShoeConfig
	DealerName     string
	DealerStandsOn int
	MaxPlayers     int
}

// Session wires the engine, processor and state machine for one table.
type Session struct {
	state     *entity.TableState
	engine    engine.UseCase
	processor processor.IProcessor
	machine   state_machine.UseCase
	logger    *zap.Logger
}

func NewSession(
	opts TableOptions,
	rng *rand.Rand,
	decisions processor.DecisionSource,
	presenter processor.Presenter,
	registry processor.Registry,
	logger *zap.Logger,
) *Session {
	return NewSessionWithEngine(opts, engine.NewGameEngine(opts.Shoe, rng), decisions, presenter, registry, logger)
}

// NewSessionWithEngine runs the table on a prepared engine.
func NewSessionWithEngine(
	opts TableOptions,
	eng engine.UseCase,
	decisions processor.DecisionSource,
	presenter processor.Presenter,
	registry processor.Registry,
	logger *zap.Logger,
) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	dealerName := opts.DealerName
	if dealerName == "" {
		dealerName = entity.DefaultDealerName
	}
	dealer := entity.NewDealer(dealerName, opts.DealerStandsOn)
	return &Session{
		state:     entity.NewTableState(dealer, opts.MaxPlayers),
		engine:    eng,
		processor: processor.NewMatchProcessor(eng, decisions, presenter, registry),
		machine:   state_machine.NewGameStateMachine(smstates.NewStateMachineState()),
		logger:    logger,
	}
}

func (s *Session) State() *entity.TableState { return s.state }

// Run seats the named players and plays rounds until the session ends.
func (s *Session) Run(ctx context.Context, names []string) error {
	logger := s.logger.With(zap.String("session_id", s.state.SessionID()))
	s.processor.NotifyEvent(logger, s.state.NewEvent(entity.EventSessionStarted))
	if err := s.processor.ProcessJoin(ctx, logger, s.state, names); err != nil {
		return err
	}
	procPkg := packager.NewProcessorPackage(s.state, s.processor, logger, ctx)
	if err := s.machine.Run(packager.GetContextWithProcessorPackager(procPkg)); err != nil {
		turn, hand := s.state.GetCurrentTurn()
		logger.Error("session aborted",
			zap.Int("round", s.state.Round()),
			zap.String("state", string(s.state.GetGameState())),
			zap.String("turn", turn),
			zap.Int("hand", hand),
			zap.Error(err))
		return err
	}
	return nil
}
