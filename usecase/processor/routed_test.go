package processor

import (
	"testing"

	"github.com/nk-nigeria/blackjack-cli/entity"
	"github.com/stretchr/testify/assert"
)

func TestRoutedDecisions(t *testing.T) {
	human := newScripted()
	human.yes[entity.QuestionHit] = []bool{true}
	bot := newScripted()
	bot.ints[entity.QuestionBet] = []int64{77}

	routed := NewRoutedDecisions(human)
	routed.Route("Bot-1", bot)

	assert.Equal(t, int64(77), routed.AskInt(entity.Question{Kind: entity.QuestionBet, Player: "Bot-1"}, 1, 100))
	assert.Equal(t, int64(1), routed.AskInt(entity.Question{Kind: entity.QuestionBet, Player: "alice"}, 1, 100))
	assert.True(t, routed.AskYesNo(entity.Question{Kind: entity.QuestionHit, Player: "alice"}))
	assert.False(t, routed.AskYesNo(entity.Question{Kind: entity.QuestionContinue}))

	assert.Len(t, bot.asked, 1)
	assert.Len(t, human.asked, 3)
}
