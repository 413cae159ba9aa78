package smstates

import (
	"context"

	"github.com/nk-nigeria/blackjack-cli/pkg/packager"
	"go.uber.org/zap"
)

type StateIdle struct {
	StateBase
}

func NewIdleState(fn FireFn) StateHandler {
	return &StateIdle{
		StateBase: NewStateBase(fn),
	}
}

func (s *StateIdle) Enter(ctx context.Context, _ ...interface{}) error {
	procPkg := packager.GetProcessorPackagerFromContext(ctx)
	state := procPkg.GetState()
	procPkg.GetLogger().Info("[idle] enter",
		zap.String("session_id", state.SessionID()),
		zap.Int("players", state.GetPlayerSize()))
	return nil
}

func (s *StateIdle) Process(ctx context.Context, args ...interface{}) error {
	procPkg := packager.GetProcessorPackagerFromContext(ctx)
	state := procPkg.GetState()
	if state.IsEnoughPlayer() {
		return s.Trigger(ctx, TriggerStateFinishSuccess)
	}
	procPkg.GetLogger().Info("[idle] no player seated => exit")
	return s.Trigger(ctx, TriggerExit)
}
