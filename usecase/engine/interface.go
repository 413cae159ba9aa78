package engine

import (
	"github.com/nk-nigeria/blackjack-cli/entity"
)

type UseCase interface {
	NewGame(s *entity.TableState) error
	Draw(p *entity.Participant, handIndex int) (entity.Card, error)
	DoubleDown(p *entity.Participant, handIndex int) (entity.Card, error)
	Split(p *entity.Participant) error
	Insurance(p *entity.Participant, amount int64) error
	Finish(s *entity.TableState) []*HandResult
	Shoe() *entity.Shoe
}
