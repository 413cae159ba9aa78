package smstates

import (
	"context"

	"github.com/nk-nigeria/blackjack-cli/pkg/packager"
)

type StateDeal struct {
	StateBase
}

func NewStateDeal(fn FireFn) StateHandler {
	return &StateDeal{
		StateBase: NewStateBase(fn),
	}
}

func (s *StateDeal) Process(ctx context.Context, args ...interface{}) error {
	procPkg := packager.GetProcessorPackagerFromContext(ctx)
	if err := procPkg.GetProcessor().ProcessDeal(procPkg.GetContext(), procPkg.GetLogger(), procPkg.GetState()); err != nil {
		return err
	}
	return s.Trigger(ctx, TriggerStateFinishSuccess)
}

type StateInsurance struct {
	StateBase
}

func NewStateInsurance(fn FireFn) StateHandler {
	return &StateInsurance{
		StateBase: NewStateBase(fn),
	}
}

func (s *StateInsurance) Process(ctx context.Context, args ...interface{}) error {
	procPkg := packager.GetProcessorPackagerFromContext(ctx)
	if err := procPkg.GetProcessor().ProcessInsurance(procPkg.GetContext(), procPkg.GetLogger(), procPkg.GetState()); err != nil {
		return err
	}
	return s.Trigger(ctx, TriggerStateFinishSuccess)
}
