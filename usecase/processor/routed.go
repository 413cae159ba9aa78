package processor

import "github.com/nk-nigeria/blackjack-cli/entity"

// RoutedDecisions sends each question to the source registered for the
// asking player, falling back to a default for everyone else and for
// table-wide questions.
type RoutedDecisions struct {
	fallback DecisionSource
	routes   map[string]DecisionSource
}

func NewRoutedDecisions(fallback DecisionSource) *RoutedDecisions {
	return &RoutedDecisions{
		fallback: fallback,
		routes:   make(map[string]DecisionSource),
	}
}

func (r *RoutedDecisions) Route(player string, source DecisionSource) {
	r.routes[player] = source
}

func (r *RoutedDecisions) sourceFor(q entity.Question) DecisionSource {
	if src, ok := r.routes[q.Player]; ok && q.Player != "" {
		return src
	}
	return r.fallback
}

func (r *RoutedDecisions) AskYesNo(q entity.Question) bool {
	return r.sourceFor(q).AskYesNo(q)
}

func (r *RoutedDecisions) AskInt(q entity.Question, lower, upper int64) int64 {
	return r.sourceFor(q).AskInt(q, lower, upper)
}
