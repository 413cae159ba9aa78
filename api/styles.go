package api

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/nk-nigeria/blackjack-cli/entity"
)

// Styles contains styling for console output
type Styles struct {
	Header    lipgloss.Style
	SubHeader lipgloss.Style
	Action    lipgloss.Style
	Win       lipgloss.Style
	Loss      lipgloss.Style
	Push      lipgloss.Style
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style
	Separator lipgloss.Style
}

func NewStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#1B5E20")).
			Padding(0, 2).
			Bold(true),
		SubHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Action: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Win: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Loss: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		Push: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#B2BEC3")),
		CardRed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		CardBlack: lipgloss.NewStyle().
			Bold(true),
		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

func (s *Styles) Outcome(o entity.Outcome) lipgloss.Style {
	switch o {
	case entity.OutcomeWin:
		return s.Win
	case entity.OutcomeLoss:
		return s.Loss
	default:
		return s.Push
	}
}

func (s *Styles) Card(c entity.Card) string {
	switch c.Suit {
	case entity.SuitHearts, entity.SuitDiamonds:
		return s.CardRed.Render(c.String())
	default:
		return s.CardBlack.Render(c.String())
	}
}
