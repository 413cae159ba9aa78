package service

import (
	"fmt"
	"math/rand/v2"

	"github.com/nk-nigeria/blackjack-cli/entity"
	"github.com/nk-nigeria/blackjack-cli/usecase/processor"
)

var botRiskLevels = []string{entity.RiskConservative, entity.RiskModerate, entity.RiskAggressive}

// BotName is the seat name of the i-th automated player, counting from 1.
func BotName(i int) string {
	return fmt.Sprintf("Bot-%d", i)
}

// BotNames are the seat names AddBots will use for numBots bots.
func BotNames(numBots int) []string {
	names := make([]string, 0, numBots)
	for i := 1; i <= numBots; i++ {
		names = append(names, BotName(i))
	}
	return names
}

// AddBots routes numBots automated players, each with its own strategy and
// a risk level in rotation, and returns their names.
func AddBots(decisions *processor.RoutedDecisions, numBots int, rng *rand.Rand) []string {
	names := BotNames(numBots)
	for i, name := range names {
		bot := entity.NewBlackjackBotLogic(rng)
		bot.SetRiskLevel(botRiskLevels[i%len(botRiskLevels)])
		decisions.Route(name, bot)
	}
	return names
}

// RoundLimit answers the table's questions for an unattended session: it
// keeps playing until rounds rounds have been played.
type RoundLimit struct {
	rounds int
	played int
}

func NewRoundLimit(rounds int) *RoundLimit {
	return &RoundLimit{rounds: rounds}
}

func (r *RoundLimit) Played() int { return r.played }

func (r *RoundLimit) AskYesNo(q entity.Question) bool {
	if q.Kind != entity.QuestionContinue {
		return false
	}
	r.played++
	return r.played < r.rounds
}

func (r *RoundLimit) AskInt(_ entity.Question, lower, _ int64) int64 {
	return lower
}
