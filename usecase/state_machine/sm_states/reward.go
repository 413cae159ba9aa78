package smstates

import (
	"context"

	"github.com/nk-nigeria/blackjack-cli/pkg/packager"
)

type StateReward struct {
	StateBase
}

func NewStateReward(fn FireFn) StateHandler {
	return &StateReward{
		StateBase: NewStateBase(fn),
	}
}

func (s *StateReward) Enter(ctx context.Context, _ ...interface{}) error {
	procPkg := packager.GetProcessorPackagerFromContext(ctx)
	procPkg.GetLogger().Info("[reward] enter")
	return nil
}

func (s *StateReward) Process(ctx context.Context, args ...interface{}) error {
	procPkg := packager.GetProcessorPackagerFromContext(ctx)
	if err := procPkg.GetProcessor().ProcessFinishGame(procPkg.GetContext(), procPkg.GetLogger(), procPkg.GetState()); err != nil {
		return err
	}
	return s.Trigger(ctx, TriggerStateFinishSuccess)
}
