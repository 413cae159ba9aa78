package api

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/coder/quartz"
	"github.com/nk-nigeria/blackjack-cli/entity"
)

const separatorWidth = 60

const TableTitle = " ♠ ♥ Blackjack ♦ ♣ "

// Console is the terminal front end: it asks the human players, retrying
// until the answer is valid, and prints round events with typewriter pacing.
type Console struct {
	in     *bufio.Scanner
	out    io.Writer
	clock  quartz.Clock
	delay  time.Duration
	styles *Styles
	closed bool
}

func NewConsole(in io.Reader, out io.Writer, clock quartz.Clock, delay time.Duration) *Console {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Console{
		in:     bufio.NewScanner(in),
		out:    out,
		clock:  clock,
		delay:  delay,
		styles: NewStyles(),
	}
}

// Type writes text one character at a time, then a newline.
func (c *Console) Type(text string) {
	if c.delay <= 0 {
		fmt.Fprintln(c.out, text)
		return
	}
	for _, r := range text {
		fmt.Fprint(c.out, string(r))
		t := c.clock.NewTimer(c.delay, "console", "type")
		<-t.C
	}
	fmt.Fprintln(c.out)
}

func (c *Console) Separator() {
	fmt.Fprintln(c.out, c.styles.Separator.Render(strings.Repeat("-", separatorWidth)))
}

func (c *Console) Banner(title string) {
	fmt.Fprintln(c.out, c.styles.Header.Render(title))
	fmt.Fprintln(c.out)
}

func (c *Console) ShowRules() {
	c.Separator()
	c.Type(entity.RulesText)
	c.Separator()
}

func (c *Console) readLine(prompt string) (string, bool) {
	if c.closed {
		return "", false
	}
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		c.closed = true
		fmt.Fprintln(c.out)
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// AskYesNo accepts y/yes/n/no in any case. Closed input answers no.
func (c *Console) AskYesNo(q entity.Question) bool {
	for {
		line, ok := c.readLine(q.Text + " (y/n) ")
		if !ok {
			return false
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		c.Type("Please answer yes or no.")
	}
}

// AskInt repeats the question until it gets an integer in [lower, upper].
// Closed input answers lower.
func (c *Console) AskInt(q entity.Question, lower, upper int64) int64 {
	for {
		line, ok := c.readLine(fmt.Sprintf("%s [%d-%d] ", q.Text, lower, upper))
		if !ok {
			return lower
		}
		v, err := strconv.ParseInt(strings.TrimPrefix(line, "$"), 10, 64)
		if err != nil {
			c.Type("Please enter a whole number.")
			continue
		}
		if v < lower || v > upper {
			c.Type(fmt.Sprintf("Please enter a number between %d and %d.", lower, upper))
			continue
		}
		return v
	}
}

// AskName asks for a non-empty name not already taken at the table. Names
// are case-sensitive, as in the roster.
func (c *Console) AskName(seat int, taken []string) (string, bool) {
	for {
		line, ok := c.readLine(fmt.Sprintf("Please enter the name of player %d: ", seat))
		if !ok {
			return "", false
		}
		if line == "" {
			c.Type("A name cannot be empty.")
			continue
		}
		if contains(taken, line) {
			c.Type(fmt.Sprintf("%s is already at the table.", line))
			continue
		}
		return line, true
	}
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func (c *Console) cards(cards []entity.Card) string {
	parts := make([]string, 0, len(cards))
	for _, card := range cards {
		parts = append(parts, c.styles.Card(card))
	}
	return strings.Join(parts, " ")
}

func (c *Console) handLine(e entity.Event) string {
	owner := e.Player
	if e.Split && !e.Dealer {
		owner = fmt.Sprintf("%s (hand %d)", e.Player, e.HandIndex+1)
	}
	if e.Hidden {
		return fmt.Sprintf("%s: %s", owner, c.cards(e.Cards))
	}
	return fmt.Sprintf("%s: %s  %s", owner, c.cards(e.Cards), e.Point.Label())
}

// Notify renders one round event.
func (c *Console) Notify(e entity.Event) {
	switch e.Type {
	case entity.EventSessionStarted:
		c.Separator()
	case entity.EventPlayerJoined:
		if e.Created {
			c.Type(fmt.Sprintf("Welcome %s! You start with $%d.", e.Player, e.Balance))
		} else {
			c.Type(fmt.Sprintf("Welcome back %s! You have $%d.", e.Player, e.Balance))
		}
	case entity.EventRoundStarted:
		c.Separator()
		fmt.Fprintln(c.out, c.styles.SubHeader.Render(fmt.Sprintf("Round %d", e.Round)))
	case entity.EventShoeReplenished:
		c.Type("The shoe has been reshuffled.")
	case entity.EventSatOut:
		c.Type(fmt.Sprintf("%s has no money left and sits this round out.", e.Player))
	case entity.EventBetPlaced:
		c.Type(c.styles.Action.Render(fmt.Sprintf("%s bets $%d.", e.Player, e.Amount)))
	case entity.EventHandDealt:
		c.Type(c.handLine(e))
	case entity.EventInsurancePlaced:
		c.Type(c.styles.Action.Render(fmt.Sprintf("%s buys $%d of insurance.", e.Player, e.Amount)))
	case entity.EventTurnStarted:
		c.Separator()
		c.Type(fmt.Sprintf("%s's turn.", e.Player))
		c.Type(c.handLine(e))
	case entity.EventSplit:
		c.Type(c.styles.Action.Render(fmt.Sprintf("%s splits, $%d on hand %d.", e.Player, e.Amount, e.HandIndex+1)))
		c.Type(c.handLine(e))
	case entity.EventDoubleDown:
		c.Type(c.styles.Action.Render(fmt.Sprintf("%s doubles down to $%d.", e.Player, e.Amount)))
		c.Type(c.handLine(e))
	case entity.EventCardDrawn:
		c.Type(c.handLine(e))
	case entity.EventHandFinal:
		switch e.HandType {
		case entity.HandBusted:
			c.Type(c.styles.Loss.Render(fmt.Sprintf("%s busts with %d.", e.Player, e.Point.Total)))
		case entity.HandTwentyOne:
			c.Type(c.styles.Win.Render(fmt.Sprintf("%s has 21!", e.Player)))
		default:
			c.Type(fmt.Sprintf("%s stands on %d.", e.Player, e.Point.Total))
		}
	case entity.EventDealerRevealed:
		c.Separator()
		c.Type(fmt.Sprintf("%s reveals the hidden card.", e.Player))
		c.Type(c.handLine(e))
	case entity.EventInsuranceSettled:
		if e.Amount > 0 {
			c.Type(c.styles.Win.Render(fmt.Sprintf("%s wins $%d of insurance.", e.Player, e.Amount)))
		} else {
			c.Type(c.styles.Loss.Render(fmt.Sprintf("%s loses $%d of insurance.", e.Player, -e.Amount)))
		}
	case entity.EventDealerDecision:
		if e.Decision == entity.DecisionHit {
			c.Type(fmt.Sprintf("%s hits.", e.Player))
		}
	case entity.EventHandSettled:
		style := c.styles.Outcome(e.Outcome)
		var msg string
		switch e.Outcome {
		case entity.OutcomeWin:
			msg = fmt.Sprintf("%s wins $%d with %d.", e.Player, e.Amount, e.Point.Total)
		case entity.OutcomeLoss:
			msg = fmt.Sprintf("%s loses $%d with %d.", e.Player, -e.Amount, e.Point.Total)
		default:
			msg = fmt.Sprintf("%s pushes with %d.", e.Player, e.Point.Total)
		}
		if e.Split {
			msg = fmt.Sprintf("Hand %d: %s", e.HandIndex+1, msg)
		}
		c.Type(style.Render(msg) + fmt.Sprintf(" Balance: $%d", e.Balance))
	case entity.EventRoundEnded:
		c.Separator()
	case entity.EventSessionEnded:
		c.Type(fmt.Sprintf("%s leaves with $%d.", e.Player, e.Balance))
	}
}
