package smstates

import (
	"context"

	"github.com/qmuntal/stateless"
)

type StateMachineState interface {
	NewIdleState(fn FireFn) StateHandler
	NewStatePreparing(fn FireFn) StateHandler
	NewStateDeal(fn FireFn) StateHandler
	NewStateInsurance(fn FireFn) StateHandler
	NewStatePlay(fn FireFn) StateHandler
	NewStateReveal(fn FireFn) StateHandler
	NewStateDealerTurn(fn FireFn) StateHandler
	NewStateReward(fn FireFn) StateHandler
	NewStateRoundClose(fn FireFn) StateHandler
	OnTransitioning(ctx context.Context, t stateless.Transition)
}

type stateMachine struct{}

func NewStateMachineState() StateMachineState {
	s := stateMachine{}
	return &s
}

func (sm *stateMachine) NewIdleState(fn FireFn) StateHandler {
	return NewIdleState(fn)
}

func (sm *stateMachine) NewStatePreparing(fn FireFn) StateHandler {
	return NewStatePreparing(fn)
}

func (sm *stateMachine) NewStateDeal(fn FireFn) StateHandler {
	return NewStateDeal(fn)
}

func (sm *stateMachine) NewStateInsurance(fn FireFn) StateHandler {
	return NewStateInsurance(fn)
}

func (sm *stateMachine) NewStatePlay(fn FireFn) StateHandler {
	return NewStatePlay(fn)
}

func (sm *stateMachine) NewStateReveal(fn FireFn) StateHandler {
	return NewStateReveal(fn)
}

func (sm *stateMachine) NewStateDealerTurn(fn FireFn) StateHandler {
	return NewStateDealerTurn(fn)
}

func (sm *stateMachine) NewStateReward(fn FireFn) StateHandler {
	return NewStateReward(fn)
}

func (sm *stateMachine) NewStateRoundClose(fn FireFn) StateHandler {
	return NewStateRoundClose(fn)
}

func (sm *stateMachine) OnTransitioning(ctx context.Context, t stateless.Transition) {}
