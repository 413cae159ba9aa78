package smstates

import (
	"context"
	"errors"

	"github.com/nk-nigeria/blackjack-cli/entity"
	"github.com/nk-nigeria/blackjack-cli/pkg/packager"
	"go.uber.org/zap"
)

type StatePreparing struct {
	StateBase
}

func NewStatePreparing(fn FireFn) StateHandler {
	return &StatePreparing{
		StateBase: NewStateBase(fn),
	}
}

// Process replenishes the shoe when needed and collects the wagers. A table
// where nobody can bet goes straight to round close with the session ended.
func (s *StatePreparing) Process(ctx context.Context, args ...interface{}) error {
	procPkg := packager.GetProcessorPackagerFromContext(ctx)
	state := procPkg.GetState()
	logger := procPkg.GetLogger()
	if err := procPkg.GetContext().Err(); err != nil {
		logger.Info("[preparing] session cancelled => close session", zap.Error(err))
		state.SetIsGameEnded(true)
		return s.Trigger(ctx, TriggerStateFinishFailed)
	}
	if !state.IsReadyToPlay() {
		logger.Info("[preparing] nobody can bet => close session")
		state.SetIsGameEnded(true)
		return s.Trigger(ctx, TriggerStateFinishFailed)
	}
	processor := procPkg.GetProcessor()
	if err := processor.ProcessNewGame(procPkg.GetContext(), logger, state); err != nil {
		return err
	}
	err := processor.ProcessBetting(procPkg.GetContext(), logger, state)
	if errors.Is(err, entity.ErrNoPlayers) {
		state.SetIsGameEnded(true)
		return s.Trigger(ctx, TriggerStateFinishFailed)
	}
	if err != nil {
		return err
	}
	return s.Trigger(ctx, TriggerStateFinishSuccess)
}
