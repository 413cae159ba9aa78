package processor

import (
	"context"

	"github.com/nk-nigeria/blackjack-cli/entity"
	"go.uber.org/zap"
)

// DecisionSource answers the questions a round asks its players. Answers are
// already validated: AskInt always returns a value in [lower, upper].
type DecisionSource interface {
	AskYesNo(q entity.Question) bool
	AskInt(q entity.Question, lower, upper int64) int64
}

// Presenter receives every round notification as plain data.
type Presenter interface {
	Notify(e entity.Event)
}

// Registry is the persistent roster of named players and their balances.
type Registry interface {
	LookupOrCreate(ctx context.Context, name string) (*entity.Participant, bool, error)
	SaveAll(ctx context.Context, players []*entity.Participant) error
}

type IProcessor interface {
	ProcessJoin(ctx context.Context, logger *zap.Logger, s *entity.TableState, names []string) error
	ProcessNewGame(ctx context.Context, logger *zap.Logger, s *entity.TableState) error
	ProcessBetting(ctx context.Context, logger *zap.Logger, s *entity.TableState) error
	ProcessDeal(ctx context.Context, logger *zap.Logger, s *entity.TableState) error
	ProcessInsurance(ctx context.Context, logger *zap.Logger, s *entity.TableState) error
	ProcessPlayerTurns(ctx context.Context, logger *zap.Logger, s *entity.TableState) error
	ProcessDealerReveal(ctx context.Context, logger *zap.Logger, s *entity.TableState) error
	ProcessDealerTurn(ctx context.Context, logger *zap.Logger, s *entity.TableState) error
	ProcessFinishGame(ctx context.Context, logger *zap.Logger, s *entity.TableState) error
	ProcessRoundClose(ctx context.Context, logger *zap.Logger, s *entity.TableState) error

	IBaseProcessor
}

type IBaseProcessor interface {
	NotifyEvent(logger *zap.Logger, e entity.Event)
}
