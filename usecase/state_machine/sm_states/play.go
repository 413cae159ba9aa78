package smstates

import (
	"context"

	"github.com/nk-nigeria/blackjack-cli/pkg/packager"
	"go.uber.org/zap"
)

type StatePlay struct {
	StateBase
}

func NewStatePlay(fn FireFn) StateHandler {
	return &StatePlay{
		StateBase: NewStateBase(fn),
	}
}

func (s *StatePlay) Enter(ctx context.Context, _ ...interface{}) error {
	procPkg := packager.GetProcessorPackagerFromContext(ctx)
	procPkg.GetLogger().Info("[play] enter",
		zap.Int("playing", len(procPkg.GetState().PlayingPlayers())))
	return nil
}

func (s *StatePlay) Process(ctx context.Context, args ...interface{}) error {
	procPkg := packager.GetProcessorPackagerFromContext(ctx)
	if err := procPkg.GetProcessor().ProcessPlayerTurns(procPkg.GetContext(), procPkg.GetLogger(), procPkg.GetState()); err != nil {
		return err
	}
	return s.Trigger(ctx, TriggerStateFinishSuccess)
}
