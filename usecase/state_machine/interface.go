package state_machine

import (
	"context"

	"github.com/nk-nigeria/blackjack-cli/entity"
	"github.com/qmuntal/stateless"
)

type UseCase interface {
	FireProcessEvent(ctx context.Context, args ...interface{}) error
	MustState() stateless.State
	GetState() entity.GameState
	Trigger(ctx context.Context, trigger stateless.Trigger, args ...interface{}) error
	TriggerIdle(ctx context.Context, args ...interface{}) error
	IsPlayingState() bool
	Run(ctx context.Context) error
}
