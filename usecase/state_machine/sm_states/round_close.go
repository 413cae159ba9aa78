package smstates

import (
	"context"

	"github.com/nk-nigeria/blackjack-cli/pkg/packager"
)

type StateRoundClose struct {
	StateBase
}

func NewStateRoundClose(fn FireFn) StateHandler {
	return &StateRoundClose{
		StateBase: NewStateBase(fn),
	}
}

// Process either loops back to preparing for another round or, once the
// session has ended and balances are saved, exits.
func (s *StateRoundClose) Process(ctx context.Context, args ...interface{}) error {
	procPkg := packager.GetProcessorPackagerFromContext(ctx)
	state := procPkg.GetState()
	if err := procPkg.GetProcessor().ProcessRoundClose(procPkg.GetContext(), procPkg.GetLogger(), state); err != nil {
		return err
	}
	if state.IsGameEnded() {
		procPkg.GetLogger().Info("[round_close] session ended => exit")
		return s.Trigger(ctx, TriggerExit)
	}
	return s.Trigger(ctx, TriggerStateFinishSuccess)
}
