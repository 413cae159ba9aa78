package state_machine

import (
	"context"
	"errors"

	"github.com/nk-nigeria/blackjack-cli/entity"
	"github.com/nk-nigeria/blackjack-cli/pkg/packager"
	lib "github.com/nk-nigeria/blackjack-cli/usecase/state_machine/sm_states"
	"github.com/qmuntal/stateless"
	"go.uber.org/zap"
)

const (
	StateInit       = entity.GameStateUnknown // Only for initialize
	StateIdle       = entity.GameStateIdle
	StatePreparing  = entity.GameStatePreparing
	StateDeal       = entity.GameStateDeal
	StateInsurance  = entity.GameStateInsurance
	StatePlay       = entity.GameStatePlay
	StateReveal     = entity.GameStateReveal
	StateDealerTurn = entity.GameStateDealerTurn
	StateReward     = entity.GameStateReward
	StateRoundClose = entity.GameStateRoundClose
	StateFinish     = entity.GameStateFinish
)

var (
	ErrStateMachineFinish = errors.New("state machine finish")
)

func NewGameStateMachine(stateMachineState lib.StateMachineState) UseCase {
	gs := &Machine{
		state: stateless.NewStateMachineWithMode(StateInit, stateless.FiringQueued),
	}
	gs.configure(stateMachineState)

	return gs
}

var _ UseCase = &Machine{}

type Machine struct {
	state *stateless.StateMachine
}

func (m *Machine) GetState() entity.GameState {
	if s, ok := m.state.MustState().(entity.GameState); ok {
		return s
	}
	return entity.GameStateUnknown
}

func (m *Machine) IsPlayingState() bool {
	switch m.GetState() {
	case StateDeal, StateInsurance, StatePlay, StateReveal, StateDealerTurn:
		return true
	default:
		return false
	}
}

func (m *Machine) FireProcessEvent(ctx context.Context, args ...interface{}) error {
	return m.state.FireCtx(ctx, lib.TriggerProcess, args...)
}

func (m *Machine) MustState() stateless.State {
	return m.state.MustState()
}

func (m *Machine) Trigger(ctx context.Context, trigger stateless.Trigger, args ...interface{}) error {
	return m.state.FireCtx(ctx, trigger, args...)
}

func (m *Machine) TriggerIdle(ctx context.Context, args ...interface{}) error {
	return m.state.FireCtx(ctx, lib.TriggerInit, args...)
}

// Run drives the session from idle until the machine reaches finish. ctx
// must carry a processor packager. Cancelling ctx ends the session at the
// next round boundary; a round in progress still settles.
func (m *Machine) Run(ctx context.Context) error {
	if m.MustState() == StateInit {
		if err := m.TriggerIdle(ctx); err != nil {
			return err
		}
	}
	for {
		err := m.FireProcessEvent(ctx)
		if errors.Is(err, ErrStateMachineFinish) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (m *Machine) configure(stateMachineState lib.StateMachineState) {
	m.state.Configure(StateInit).
		Permit(lib.TriggerInit, StateIdle)
	fireCtx := m.state.FireCtx
	m.state.OnTransitioning(func(ctx context.Context, t stateless.Transition) {
		procPkg := packager.GetProcessorPackagerFromContext(ctx)
		logger := procPkg.GetLogger()
		logger.Info("OnTransitioning",
			zap.Any("source", t.Source),
			zap.Any("destination", t.Destination),
			zap.Any("transition", t.Trigger))
		stateMachineState.OnTransitioning(ctx, t)
		state := procPkg.GetState()
		state.SetGameState(t.Destination.(entity.GameState))
	})

	{
		idle := stateMachineState.NewIdleState(fireCtx)
		m.state.Configure(StateIdle).
			OnEntry(idle.Enter).
			OnExit(idle.Exit).
			InternalTransition(lib.TriggerProcess, idle.Process).
			Permit(lib.TriggerStateFinishSuccess, StatePreparing).
			Permit(lib.TriggerExit, StateFinish)
	}
	{
		state := defaultFinishHandler
		m.state.Configure(StateFinish).
			OnEntry(state.Enter).
			OnExit(state.Exit).
			InternalTransition(lib.TriggerProcess, state.Process)
	}
	{
		preparing := stateMachineState.NewStatePreparing(fireCtx)
		m.state.Configure(StatePreparing).
			OnEntry(preparing.Enter).
			OnExit(preparing.Exit).
			InternalTransition(lib.TriggerProcess, preparing.Process).
			Permit(lib.TriggerStateFinishSuccess, StateDeal).
			Permit(lib.TriggerStateFinishFailed, StateRoundClose)
	}
	{
		deal := stateMachineState.NewStateDeal(fireCtx)
		m.state.Configure(StateDeal).
			OnEntry(deal.Enter).
			OnExit(deal.Exit).
			InternalTransition(lib.TriggerProcess, deal.Process).
			Permit(lib.TriggerStateFinishSuccess, StateInsurance)
	}
	{
		insurance := stateMachineState.NewStateInsurance(fireCtx)
		m.state.Configure(StateInsurance).
			OnEntry(insurance.Enter).
			OnExit(insurance.Exit).
			InternalTransition(lib.TriggerProcess, insurance.Process).
			Permit(lib.TriggerStateFinishSuccess, StatePlay)
	}
	{
		play := stateMachineState.NewStatePlay(fireCtx)
		m.state.Configure(StatePlay).
			OnEntry(play.Enter).
			OnExit(play.Exit).
			InternalTransition(lib.TriggerProcess, play.Process).
			Permit(lib.TriggerStateFinishSuccess, StateReveal)
	}
	{
		reveal := stateMachineState.NewStateReveal(fireCtx)
		m.state.Configure(StateReveal).
			OnEntry(reveal.Enter).
			OnExit(reveal.Exit).
			InternalTransition(lib.TriggerProcess, reveal.Process).
			Permit(lib.TriggerStateFinishSuccess, StateDealerTurn)
	}
	{
		dealerTurn := stateMachineState.NewStateDealerTurn(fireCtx)
		m.state.Configure(StateDealerTurn).
			OnEntry(dealerTurn.Enter).
			OnExit(dealerTurn.Exit).
			InternalTransition(lib.TriggerProcess, dealerTurn.Process).
			Permit(lib.TriggerStateFinishSuccess, StateReward)
	}
	{
		reward := stateMachineState.NewStateReward(fireCtx)
		m.state.Configure(StateReward).
			OnEntry(reward.Enter).
			OnExit(reward.Exit).
			InternalTransition(lib.TriggerProcess, reward.Process).
			Permit(lib.TriggerStateFinishSuccess, StateRoundClose)
	}
	{
		roundClose := stateMachineState.NewStateRoundClose(fireCtx)
		m.state.Configure(StateRoundClose).
			OnEntry(roundClose.Enter).
			OnExit(roundClose.Exit).
			InternalTransition(lib.TriggerProcess, roundClose.Process).
			Permit(lib.TriggerStateFinishSuccess, StatePreparing).
			Permit(lib.TriggerExit, StateFinish)
	}
}

var defaultFinishHandler lib.StateHandler = &finishHandler{}

type finishHandler struct{}

func (*finishHandler) Enter(ctx context.Context, _ ...any) error {
	return nil
}

func (*finishHandler) Exit(_ context.Context, _ ...any) error {
	return ErrStateMachineFinish
}

func (*finishHandler) Process(ctx context.Context, args ...any) error {
	return ErrStateMachineFinish
}

func (*finishHandler) Trigger(ctx context.Context, trigger any, args ...any) error {
	return nil
}
