package smstates

import (
	"context"

	"github.com/nk-nigeria/blackjack-cli/pkg/packager"
)

type StateReveal struct {
	StateBase
}

func NewStateReveal(fn FireFn) StateHandler {
	return &StateReveal{
		StateBase: NewStateBase(fn),
	}
}

func (s *StateReveal) Process(ctx context.Context, args ...interface{}) error {
	procPkg := packager.GetProcessorPackagerFromContext(ctx)
	if err := procPkg.GetProcessor().ProcessDealerReveal(procPkg.GetContext(), procPkg.GetLogger(), procPkg.GetState()); err != nil {
		return err
	}
	return s.Trigger(ctx, TriggerStateFinishSuccess)
}

type StateDealerTurn struct {
	StateBase
}

func NewStateDealerTurn(fn FireFn) StateHandler {
	return &StateDealerTurn{
		StateBase: NewStateBase(fn),
	}
}

func (s *StateDealerTurn) Process(ctx context.Context, args ...interface{}) error {
	procPkg := packager.GetProcessorPackagerFromContext(ctx)
	if err := procPkg.GetProcessor().ProcessDealerTurn(procPkg.GetContext(), procPkg.GetLogger(), procPkg.GetState()); err != nil {
		return err
	}
	return s.Trigger(ctx, TriggerStateFinishSuccess)
}
