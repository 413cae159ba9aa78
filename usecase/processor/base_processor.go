package processor

import (
	"github.com/nk-nigeria/blackjack-cli/entity"
	"github.com/nk-nigeria/blackjack-cli/usecase/engine"
	"go.uber.org/zap"
)

type BaseProcessor struct {
	engine    engine.UseCase
	presenter Presenter
}

func NewBaseProcessor(engine engine.UseCase, presenter Presenter) *BaseProcessor {
	return &BaseProcessor{
		engine:    engine,
		presenter: presenter,
	}
}

func (m *BaseProcessor) NotifyEvent(logger *zap.Logger, e entity.Event) {
	m.broadcastMessage(logger, e)
}

func (m *BaseProcessor) notifyHand(logger *zap.Logger, s *entity.TableState, t entity.EventType, p *entity.Participant, handIndex int) {
	m.broadcastMessage(logger, s.HandEvent(t, p, handIndex))
}

func (m *BaseProcessor) broadcastMessage(logger *zap.Logger, e entity.Event) {
	if e.Type != entity.EventCardDrawn && e.Type != entity.EventDealerDecision {
		logger.Debug("broadcast event",
			zap.String("type", string(e.Type)),
			zap.Int("round", e.Round),
			zap.String("player", e.Player),
			zap.Int64("amount", e.Amount))
	}
	if m.presenter == nil {
		return
	}
	m.presenter.Notify(e)
}
